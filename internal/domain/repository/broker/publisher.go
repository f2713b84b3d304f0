package broker

import (
	"context"

	"foodimages/internal/domain/model"
)

type Publisher interface {
	PublishMiss(ctx context.Context, lookup *model.Lookup) error
}
