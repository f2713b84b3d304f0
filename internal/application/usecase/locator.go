package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"foodimages/internal/domain/entity"
	"foodimages/internal/domain/model"
	"foodimages/internal/domain/repository/broker"
	"foodimages/internal/domain/repository/database"
	"foodimages/internal/domain/repository/storage"
	"foodimages/pkg/logger"
)

const (
	DefaultLinkTTL       = 10 * time.Minute
	DefaultReportTimeout = 2 * time.Second
)

type LocatorConfig struct {
	Container     string
	Suffix        string
	LinkTTL       time.Duration
	StrictNames   bool
	ReportTimeout time.Duration
}

// Locator implements the Locator abstraction on top of a storage backend.
type Locator struct {
	store     storage.Locator
	journal   database.Writer
	publisher broker.Publisher
	cfg       LocatorConfig
	log       *logger.Logger
	now       func() time.Time
}

type LocatorOption func(*Locator)

// WithJournal records every found/not-found lookup.
func WithJournal(w database.Writer) LocatorOption {
	return func(l *Locator) { l.journal = w }
}

// WithMissPublisher announces lookups whose image does not exist.
func WithMissPublisher(p broker.Publisher) LocatorOption {
	return func(l *Locator) { l.publisher = p }
}

func WithClock(now func() time.Time) LocatorOption {
	return func(l *Locator) { l.now = now }
}

// NewLocator creates a new Locator usecase.
func NewLocator(store storage.Locator, cfg LocatorConfig, log *logger.Logger, opts ...LocatorOption) *Locator {
	if cfg.LinkTTL <= 0 {
		cfg.LinkTTL = DefaultLinkTTL
	}

	if cfg.ReportTimeout <= 0 {
		cfg.ReportTimeout = DefaultReportTimeout
	}

	l := &Locator{
		store: store,
		cfg:   cfg,
		log:   log,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Locate checks the blob derived from itemName and, if present, signs a
// read-only link to it. The returned error is set only for LookupFailed.
func (l *Locator) Locate(ctx context.Context, itemName string) (entity.LookupResult, error) {
	ref, err := model.NewBlobRef(l.cfg.Container, itemName, l.cfg.Suffix, l.cfg.StrictNames)
	if err != nil {
		return entity.LookupResult{
			Status: entity.LookupInvalid,
			Reason: err.Error(),
		}, nil
	}

	exists, err := l.store.Exists(ctx, ref.Container, ref.Name)
	if err != nil {
		return entity.LookupResult{
			Status:   entity.LookupFailed,
			BlobName: ref.Name,
		}, fmt.Errorf("checking blob %s/%s: %w", ref.Container, ref.Name, err)
	}

	if !exists {
		l.report(ctx, ref, false)

		return entity.LookupResult{
			Status:   entity.LookupNotFound,
			BlobName: ref.Name,
		}, nil
	}

	issuedAt := l.now()

	link, err := l.store.SignedURL(ctx, ref.Container, ref.Name, l.cfg.LinkTTL)
	if err != nil {
		return entity.LookupResult{
			Status:   entity.LookupFailed,
			BlobName: ref.Name,
		}, fmt.Errorf("signing blob %s/%s: %w", ref.Container, ref.Name, err)
	}

	l.report(ctx, ref, true)

	return entity.LookupResult{
		Status:    entity.LookupFound,
		BlobName:  ref.Name,
		URL:       link,
		ExpiresAt: issuedAt.Add(l.cfg.LinkTTL),
	}, nil
}

// report feeds the optional sinks. Failures are logged only.
func (l *Locator) report(ctx context.Context, ref model.BlobRef, found bool) {
	if l.journal == nil && (l.publisher == nil || found) {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.cfg.ReportTimeout)
	defer cancel()

	lookup := &model.Lookup{
		ID:          uuid.NewString(),
		ItemName:    ref.ItemName,
		BlobName:    ref.Name,
		Container:   ref.Container,
		Found:       found,
		RequestedAt: l.now().UTC(),
	}

	if l.journal != nil {
		if err := l.journal.Write(ctx, lookup); err != nil {
			l.log.Warn("can't write lookup to journal", "item", ref.ItemName, "err", err)
		}
	}

	if l.publisher != nil && !found {
		if err := l.publisher.PublishMiss(ctx, lookup); err != nil {
			l.log.Warn("can't publish image miss", "item", ref.ItemName, "err", err)
		}
	}
}
