// File: internal/cache/redis.go
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// pinger is the subset of redis.Client the constructor checks before
// handing the connection out as a Cache.
type pinger interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var newRedisBackend = func(opt *redis.Options) pinger {
	return redis.NewClient(opt)
}

// NewRedisClient dials redis and verifies the connection with a ping
// before returning it.
func NewRedisClient(addr, password string, db int) (Cache, error) {
	client := newRedisBackend(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
