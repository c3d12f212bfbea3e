// Package ratelimit counts failed logins in Redis.
package ratelimit

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"cellcontrol/config"
	"cellcontrol/internal/domain/lifecycle"
	"cellcontrol/internal/domain/service"
	"cellcontrol/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix            = "cellcontrol:login-failures:"
	defaultMaxFailures   = 5
	defaultFailureWindow = 15 * time.Minute
)

// redisThrottle is a fixed-window counter: the first failure starts the window.
type redisThrottle struct {
	client      redis.UniversalClient
	maxFailures int64
	window      time.Duration
}

// NewRedisThrottle wraps an existing client.
func NewRedisThrottle(client redis.UniversalClient, maxFailures int, window time.Duration) service.LoginThrottle {
	if maxFailures <= 0 {
		maxFailures = defaultMaxFailures
	}
	if window <= 0 {
		window = defaultFailureWindow
	}

	return &redisThrottle{client: client, maxFailures: int64(maxFailures), window: window}
}

func (t *redisThrottle) Blocked(ctx context.Context, key string) (bool, error) {
	failures, err := t.client.Get(ctx, keyPrefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to read login failures")
	}

	return failures >= t.maxFailures, nil
}

func (t *redisThrottle) RegisterFailure(ctx context.Context, key string) error {
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, keyPrefix+key)
	pipe.ExpireNX(ctx, keyPrefix+key, t.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "failed to record login failure")
	}

	return nil
}

func (t *redisThrottle) Reset(ctx context.Context, key string) error {
	if err := t.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to reset login failures")
	}

	return nil
}

// noopThrottle never blocks. Used when Redis is not configured.
type noopThrottle struct{}

// NewNoopThrottle returns a throttle that allows every attempt.
func NewNoopThrottle() service.LoginThrottle {
	return noopThrottle{}
}

func (noopThrottle) Blocked(context.Context, string) (bool, error) { return false, nil }

func (noopThrottle) RegisterFailure(context.Context, string) error { return nil }

func (noopThrottle) Reset(context.Context, string) error { return nil }

// Params defines the dependencies of the login throttle
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New connects to Redis from redis.url or redis.addr, or falls back to a no-op throttle.
func New(params Params) (service.LoginThrottle, error) {
	cfg := params.Config.Redis
	if cfg == nil || (strings.TrimSpace(cfg.URL) == "" && strings.TrimSpace(cfg.Addr) == "") {
		params.Logger.Info("Redis not configured, login throttle disabled")

		return NewNoopThrottle(), nil
	}

	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, errors.Wrap(err, "invalid redis url")
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}
	}
	client := redis.NewClient(opts)

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	maxFailures, window := 0, time.Duration(0)
	if auth := params.Config.Auth; auth != nil {
		maxFailures, window = auth.MaxFailedLogins, auth.FailedLoginWindow
	}
	params.Logger.Info("Login throttle enabled",
		slog.String("addr", opts.Addr),
		slog.Int("max_failures", maxFailures),
		slog.Duration("window", window),
	)

	return NewRedisThrottle(client, maxFailures, window), nil
}
