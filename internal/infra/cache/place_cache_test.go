package cache

import (
	"context"
	"testing"
	"time"

	"handoff/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisPlaceCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisPlaceCache(client, time.Hour), mr
}

func samplePlace() *entity.Place {
	return &entity.Place{
		PlaceID:          "p1",
		FormattedAddress: "7 Xinyi Rd, Taipei",
		Components: []entity.AddressComponent{
			{LongName: "Taipei", ShortName: "Taipei", Types: []string{"locality"}},
		},
		Location: &entity.Coordinates{Lat: 25.03, Long: 121.56},
	}
}

func TestRedisPlaceCache_Miss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	place, err := cache.Get(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestRedisPlaceCache_SetThenGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, samplePlace()))
	assert.True(t, mr.Exists(keyPrefix+"p1"))
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"p1"))

	place, err := cache.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, samplePlace(), place)
}

func TestRedisPlaceCache_Expires(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, samplePlace()))
	mr.FastForward(2 * time.Hour)

	place, err := cache.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Nil(t, place)
}

func TestRedisPlaceCache_CorruptEntry(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set(keyPrefix+"p1", "{not json"))

	_, err := cache.Get(context.Background(), "p1")
	assert.ErrorContains(t, err, "unmarshal place")
}

func TestRedisPlaceCache_ServerDown(t *testing.T) {
	cache, mr := setupTestRedis(t)
	mr.Close()

	_, err := cache.Get(context.Background(), "p1")
	assert.ErrorContains(t, err, "redis get place")
}

func TestNoopCache(t *testing.T) {
	var cache noopCache
	require.NoError(t, cache.Set(context.Background(), samplePlace()))

	place, err := cache.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Nil(t, place)
}
