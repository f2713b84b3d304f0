package abstraction

import (
	"context"

	"foodimages/internal/domain/entity"
)

// Locator defines the interface for resolving an item name to an image link.
type Locator interface {
	Locate(ctx context.Context, itemName string) (entity.LookupResult, error)
}
