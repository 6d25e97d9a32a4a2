// File: internal/cache/redis_test.go
package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type pingStub struct {
	pingErr error
	pinged  bool
}

func (p *pingStub) Ping(context.Context) *redis.StatusCmd {
	p.pinged = true
	return redis.NewStatusResult("PONG", p.pingErr)
}

func (p *pingStub) Get(context.Context, string) *redis.StringCmd {
	return redis.NewStringResult("", nil)
}

func (p *pingStub) Set(context.Context, string, interface{}, time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (p *pingStub) Del(context.Context, ...string) *redis.IntCmd {
	return redis.NewIntResult(0, nil)
}

func (p *pingStub) Close() error { return nil }

func swapBackend(t *testing.T, fn func(*redis.Options) pinger) {
	t.Cleanup(func() {
		newRedisBackend = func(opt *redis.Options) pinger { return redis.NewClient(opt) }
	})
	newRedisBackend = fn
}

func TestNewRedisClient(t *testing.T) {
	t.Run("connects and pings", func(t *testing.T) {
		stub := &pingStub{}
		var gotOpts *redis.Options
		swapBackend(t, func(o *redis.Options) pinger {
			gotOpts = o
			return stub
		})

		c, err := NewRedisClient("127.0.0.1:6379", "secret", 2)
		require.NoError(t, err)
		require.Equal(t, stub, c)
		require.True(t, stub.pinged)
		require.Equal(t, "127.0.0.1:6379", gotOpts.Addr)
		require.Equal(t, "secret", gotOpts.Password)
		require.Equal(t, 2, gotOpts.DB)
	})

	t.Run("unreachable server", func(t *testing.T) {
		swapBackend(t, func(*redis.Options) pinger {
			return &pingStub{pingErr: errors.New("connection refused")}
		})

		c, err := NewRedisClient("addr", "", 0)
		require.Error(t, err)
		require.Nil(t, c)
	})
}
