package broker

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

type Client struct {
	redis  *redis.Client
	stream string
	maxLen int64
}

// NewClient connects to redis and, when a group name is configured, makes
// sure the stream and its consumer group exist.
func NewClient(cfg Config) (*Client, error) {
	if cfg.StreamName == "" {
		return nil, errors.New("broker stream name is empty")
	}

	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)
	ctx := context.Background()

	if cfg.GroupName != "" {
		err = rdb.XGroupCreateMkStream(ctx, cfg.StreamName, cfg.GroupName, "$").Err()
		if err != nil && !isBusyGroup(err) {
			_ = rdb.Close()

			return nil, err
		}
	}

	return &Client{
		redis:  rdb,
		stream: cfg.StreamName,
		maxLen: cfg.MaxLen,
	}, nil
}

func (c *Client) Close() error {
	return c.redis.Close()
}

func isBusyGroup(err error) bool {
	return err != nil && err.Error() == "BUSYGROUP Consumer Group name already exists"
}
