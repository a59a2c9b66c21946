package ratelimiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/pkg/ratelimiter"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore_FixedWindow(t *testing.T) {
	t.Parallel()

	mr, client := newRedis(t)
	ctx := context.Background()
	prefix := "test:" + uuid.NewString() + ":"

	store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(prefix))
	limiter, err := ratelimiter.NewFixedWindow(store, ratelimiter.Config{Limit: 3, Window: time.Minute})
	require.NoError(t, err)

	for i := range 3 {
		result, err := limiter.Allow(ctx, "client")
		require.NoError(t, err)
		assert.True(t, result.Allowed(), "request %d", i+1)
	}

	result, err := limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.False(t, result.Allowed())
	assert.Positive(t, result.RetryAfterSeconds())
	assert.LessOrEqual(t, result.RetryAfterSeconds(), 60)

	count, err := mr.Get(prefix + "client")
	require.NoError(t, err)
	assert.Equal(t, "4", count)
	assert.Positive(t, mr.TTL(prefix+"client"))

	require.NoError(t, limiter.Reset(ctx, "client"))
	assert.False(t, mr.Exists(prefix+"client"))
	result, err = limiter.Allow(ctx, "client")
	require.NoError(t, err)
	assert.True(t, result.Allowed())
}

func TestRedisStore_WindowExpires(t *testing.T) {
	t.Parallel()

	mr, client := newRedis(t)
	ctx := context.Background()

	store := ratelimiter.NewRedisStore(client)
	limiter, err := ratelimiter.NewFixedWindow(store, ratelimiter.Config{Limit: 5, Window: 15 * time.Minute})
	require.NoError(t, err)

	for range 5 {
		result, err := limiter.Allow(ctx, "198.51.100.7")
		require.NoError(t, err)
		require.True(t, result.Allowed())
	}
	result, err := limiter.Allow(ctx, "198.51.100.7")
	require.NoError(t, err)
	assert.False(t, result.Allowed())

	other, err := limiter.Allow(ctx, "198.51.100.8")
	require.NoError(t, err)
	assert.True(t, other.Allowed())

	mr.FastForward(15*time.Minute + time.Millisecond)

	result, err = limiter.Allow(ctx, "198.51.100.7")
	require.NoError(t, err)
	assert.True(t, result.Allowed())
	assert.Equal(t, 4, result.Remaining)
}

func TestRedisStore_RestoresMissingExpiry(t *testing.T) {
	t.Parallel()

	mr, client := newRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("stuck", "2"))

	store := ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(""))
	count, resetAt, err := store.Increment(ctx, "stuck", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, 3, count)
	assert.WithinDuration(t, time.Now().Add(time.Minute), resetAt, 5*time.Second)
	assert.Positive(t, mr.TTL("stuck"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	t.Parallel()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	store := ratelimiter.NewRedisStore(client)
	_, _, err := store.Increment(context.Background(), "k", time.Minute)
	assert.ErrorIs(t, err, ratelimiter.ErrStoreUnavailable)
}
