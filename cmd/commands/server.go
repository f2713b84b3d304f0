package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"foodimages/config"
	"foodimages/internal/application/usecase"
	"foodimages/internal/domain/repository/storage"
	"foodimages/internal/infrastructure/azure"
	"foodimages/internal/infrastructure/broker"
	"foodimages/internal/infrastructure/database"
	"foodimages/internal/infrastructure/minio"
	"foodimages/internal/infrastructure/s3"
	"foodimages/internal/presentation"
	"foodimages/internal/presentation/handler"
	"foodimages/internal/presentation/middleware"
	"foodimages/pkg/logger"
)

// App is the wired service: the router plus whatever must be closed on exit.
type App struct {
	Echo    *echo.Echo
	closers []func() error
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}

	return errors.Join(errs...)
}

// Build connects the configured storage backend and optional lookup sinks
// and returns the router serving the image endpoint.
func Build(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	store, err := NewStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("storage backend %s: %w", cfg.Storage.Backend, err)
	}

	app := &App{}
	var opts []usecase.LocatorOption

	if cfg.JournalEnabled() {
		db, err := database.Connect(cfg.DBConfig)
		if err != nil {
			return nil, fmt.Errorf("lookup journal: %w", err)
		}
		app.closers = append(app.closers, db.Stop)
		opts = append(opts, usecase.WithJournal(database.NewLookupWriter(db)))
	}

	if cfg.MissReportingEnabled() {
		client, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			_ = app.Close()

			return nil, fmt.Errorf("miss publisher: %w", err)
		}
		app.closers = append(app.closers, client.Close)
		opts = append(opts, usecase.WithMissPublisher(broker.NewPublisher(client, cfg.PublisherConfig)))
	}

	locator := usecase.NewLocator(store, usecase.LocatorConfig{
		Container:     cfg.Storage.Container,
		Suffix:        cfg.Images.Suffix,
		LinkTTL:       cfg.Images.LinkDuration(),
		StrictNames:   cfg.Images.Strict(),
		ReportTimeout: time.Duration(cfg.Images.ReportTimeout) * time.Millisecond,
	}, log, opts...)

	app.Echo = NewRouter(handler.NewImageHandler(locator, log), log)

	return app, nil
}

func NewStorage(ctx context.Context, cfg *config.Config) (storage.Locator, error) {
	switch cfg.Storage.Backend {
	case config.BackendAzure:
		client, err := azure.New(cfg.Azure)
		if err != nil {
			return nil, err
		}

		return azure.NewLocator(client, cfg.Azure), nil

	case config.BackendMinIO:
		client, err := minio.New(cfg.MinIO)
		if err != nil {
			return nil, err
		}

		return minio.NewLocator(client, cfg.MinIO), nil

	case config.BackendS3:
		client, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}

		return s3.NewLocator(client, cfg.S3), nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Storage.Backend)
	}
}

func NewRouter(imageHandler *handler.ImageHandler, log *logger.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(log)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.RecoverWithConfig(echoMiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			log.Error("recovered from panic", "path", c.Request().URL.Path, "err", err, "stack", string(stack))

			return err
		},
	}))
	e.Use(echoMiddleware.Secure())

	e.GET(presentation.HealthPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET(presentation.ImagePath, imageHandler.HandleGet)
	e.GET(presentation.APIImagePath, imageHandler.HandleGet)

	return e
}
