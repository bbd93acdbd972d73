package cache

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/gutenlab/datalake/internal/compress"
)

// Redis wraps the redis client used for the published-page cache.
type Redis struct {
	client  *redis.Client
	encoder compress.Compress
}

// NewRedis connects to the redis instance at addr. The encoder is applied
// to every cached payload.
func NewRedis(addr string, encoder compress.Compress) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{client: client, encoder: encoder}, nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
