package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Redis stores entries in a redis server.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(opts *redis.Options, ttl time.Duration) *Redis {
	return &Redis{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}
}

// Ping checks that the redis server can be reached.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}

	if err != nil {
		log.Warn().Str("key", key).Err(err).Msg("Reading from cache failed")
		return nil, false
	}

	return value, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, r.ttl).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
