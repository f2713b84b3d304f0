package database

import (
	"context"

	"foodimages/internal/domain/model"
)

type Writer interface {
	Write(ctx context.Context, lookup *model.Lookup) error
}
