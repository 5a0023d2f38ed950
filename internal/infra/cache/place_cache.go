// Package cache stores resolved places so repeated form fills skip the provider.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"handoff/config"
	"handoff/internal/domain/entity"
	"handoff/internal/domain/lifecycle"
	"handoff/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "handoff:place:"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns a Redis-backed cache when redis is configured, otherwise a cache that
// never hits.
func New(params Params) service.PlaceCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, place cache disabled")

		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := time.Duration(0)
	if params.Config.Geocoding != nil {
		ttl = params.Config.Geocoding.CacheTTL
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Redis is an optimization; the service runs without it.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, place lookups will miss", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisPlaceCache(client, ttl)
}

// RedisPlaceCache implements service.PlaceCache on Redis strings holding JSON.
type RedisPlaceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPlaceCache creates the cache. A zero ttl keeps entries forever.
func NewRedisPlaceCache(client *redis.Client, ttl time.Duration) *RedisPlaceCache {
	return &RedisPlaceCache{client: client, ttl: ttl}
}

// Get returns nil, nil on a miss.
func (c *RedisPlaceCache) Get(ctx context.Context, placeID string) (*entity.Place, error) {
	data, err := c.client.Get(ctx, keyPrefix+placeID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "redis get place")
	}

	var place entity.Place
	if err := json.Unmarshal(data, &place); err != nil {
		return nil, errors.Wrap(err, "unmarshal place")
	}

	return &place, nil
}

func (c *RedisPlaceCache) Set(ctx context.Context, place *entity.Place) error {
	data, err := json.Marshal(place)
	if err != nil {
		return errors.Wrap(err, "marshal place")
	}

	if err := c.client.Set(ctx, keyPrefix+place.PlaceID, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set place")
	}

	return nil
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (*entity.Place, error) { return nil, nil }

func (noopCache) Set(context.Context, *entity.Place) error { return nil }
