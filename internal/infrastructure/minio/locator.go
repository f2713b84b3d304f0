package minio

import (
	"context"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

type Locator struct {
	client  *minio.Client
	timeout time.Duration
}

func NewLocator(client *minio.Client, cfg Config) *Locator {
	return &Locator{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (l *Locator) Exists(ctx context.Context, container, blob string) (bool, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	_, err := l.client.StatObject(ctx, container, blob, minio.StatObjectOptions{})
	if err != nil {
		switch minio.ToErrorResponse(err).Code {
		case "NoSuchKey", "NoSuchBucket":
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (l *Locator) SignedURL(ctx context.Context, container, blob string, ttl time.Duration) (string, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	u, err := l.client.PresignedGetObject(ctx, container, blob, ttl, url.Values{})
	if err != nil {
		return "", err
	}

	return u.String(), nil
}

func (l *Locator) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, l.timeout)
}
