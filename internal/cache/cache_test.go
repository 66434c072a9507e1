package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) *Cache {
	t.Helper()
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return New(rdb, ttl)
}

func TestCache_RoundTrip(t *testing.T) {
	c := newTestCache(t, time.Minute)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var miss payload
	require.False(t, c.Get(ctx, "k", &miss), "empty cache should miss")

	c.Set(ctx, "k", payload{Name: "rooms", Count: 3})

	var hit payload
	require.True(t, c.Get(ctx, "k", &hit))
	assert.Equal(t, "rooms", hit.Name)
	assert.Equal(t, 3, hit.Count)
}

func TestCache_NilSafe(t *testing.T) {
	ctx := context.Background()

	var c *Cache
	var out int
	assert.False(t, c.Get(ctx, "k", &out), "nil cache reads as a miss")
	c.Set(ctx, "k", 1) // must not panic

	disabled := New(nil, time.Minute)
	assert.False(t, disabled.Get(ctx, "k", &out))

	zeroTTL := newTestCache(t, 0)
	zeroTTL.Set(ctx, "k", 1)
	assert.False(t, zeroTTL.Get(ctx, "k", &out), "zero TTL disables the cache")
}

func TestCache_BadPayloadReadsAsMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { rdb.Close() })
	c := New(rdb, time.Minute)
	ctx := context.Background()

	require.NoError(t, rdb.Set(ctx, "k", "not json", time.Minute).Err())

	var out map[string]int
	assert.False(t, c.Get(ctx, "k", &out))
}
