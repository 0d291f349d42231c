// Package cache keeps composed storefront payloads in Redis.
package cache

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultTTL = 5 * time.Minute
	keyPrefix  = "storefront:v1:"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis backed cache, or a cache that never hits when redis is not configured.
func New(params Params) service.StorefrontCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis is not configured, storefront cache is disabled")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// The cache is optional; an unreachable Redis only degrades to misses.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client, cfg.TTL)
}

type redisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache wraps an existing client. A non-positive ttl falls back to five minutes.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) service.StorefrontCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisCache{client: client, ttl: ttl}
}

func key(slug string) string {
	return keyPrefix + slug
}

func (c *redisCache) Get(ctx context.Context, slug string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, key(slug)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, errors.Wrap(err, "storefront cache get")
	}

	return payload, true, nil
}

func (c *redisCache) Set(ctx context.Context, slug string, payload []byte) error {
	if err := c.client.Set(ctx, key(slug), payload, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "storefront cache set")
	}

	return nil
}

func (c *redisCache) Invalidate(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, key(slug))
		}
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "storefront cache invalidate")
	}

	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (noopCache) Set(context.Context, string, []byte) error { return nil }

func (noopCache) Invalidate(context.Context, ...string) error { return nil }
