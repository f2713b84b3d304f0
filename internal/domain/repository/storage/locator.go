package storage

import (
	"context"
	"time"
)

// Locator is the read-only view of an object store needed to hand out
// image links.
type Locator interface {
	// Exists reports whether blob is present in container. A missing
	// container counts as a missing blob.
	Exists(ctx context.Context, container, blob string) (bool, error)
	// SignedURL returns a read-only URL for blob valid for ttl from now.
	SignedURL(ctx context.Context, container, blob string, ttl time.Duration) (string, error)
}
