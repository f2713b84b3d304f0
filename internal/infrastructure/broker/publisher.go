package broker

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"foodimages/internal/domain/model"
)

// Publisher appends image misses to a redis stream so that missing
// pictures can be picked up by whoever maintains the catalog.
type Publisher struct {
	client  *Client
	timeout time.Duration
}

func NewPublisher(client *Client, cfg PublisherConfig) *Publisher {
	return &Publisher{
		client:  client,
		timeout: time.Duration(cfg.Timeout) * time.Millisecond,
	}
}

func (p *Publisher) PublishMiss(ctx context.Context, lookup *model.Lookup) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	args := &redis.XAddArgs{
		Stream: p.client.stream,
		Values: map[string]any{
			"id":           lookup.ID,
			"item_name":    lookup.ItemName,
			"blob_name":    lookup.BlobName,
			"container":    lookup.Container,
			"requested_at": lookup.RequestedAt.Format(time.RFC3339Nano),
		},
	}

	if p.client.maxLen > 0 {
		args.MaxLen = p.client.maxLen
		args.Approx = true
	}

	return p.client.redis.XAdd(ctx, args).Err()
}
