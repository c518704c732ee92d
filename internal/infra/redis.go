package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// NewRedis connects the client that backs the session carts and the job
// queue. A failed ping aborts startup rather than surfacing later as cart
// reads against a dead server.
func NewRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return rdb, nil
}
