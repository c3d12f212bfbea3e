package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"cellcontrol/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_WithoutRedisIsNoop(t *testing.T) {
	throttle, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, noopThrottle{}, throttle)

	ctx := context.Background()
	for range 10 {
		require.NoError(t, throttle.RegisterFailure(ctx, "a@b.com"))
	}
	blocked, err := throttle.Blocked(ctx, "a@b.com")
	require.NoError(t, err)
	assert.False(t, blocked)
}

func TestNew_InvalidURL(t *testing.T) {
	_, err := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Redis: &config.RedisConfig{URL: "://bad"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

// TestRedisThrottle runs against a real server when REDIS_ADDR is set.
func TestRedisThrottle(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	throttle := NewRedisThrottle(client, 3, time.Minute)
	key := uuid.NewString() + "@test.com"
	t.Cleanup(func() { _ = throttle.Reset(ctx, key) })

	for range 2 {
		require.NoError(t, throttle.RegisterFailure(ctx, key))
	}
	blocked, err := throttle.Blocked(ctx, key)
	require.NoError(t, err)
	assert.False(t, blocked)

	require.NoError(t, throttle.RegisterFailure(ctx, key))
	blocked, err = throttle.Blocked(ctx, key)
	require.NoError(t, err)
	assert.True(t, blocked)

	ttl, err := client.TTL(ctx, keyPrefix+key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, throttle.Reset(ctx, key))
	blocked, err = throttle.Blocked(ctx, key)
	require.NoError(t, err)
	assert.False(t, blocked)
}
