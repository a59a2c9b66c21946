package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KEYS[1] counter key, ARGV[1] window in milliseconds.
// Returns {count, pttl}.
var incrementScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('PTTL', KEYS[1])
if ttl < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
	ttl = tonumber(ARGV[1])
end
return {count, ttl}
`)

// RedisStore implements Store on top of Redis so every replica shares one window per key.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the prefix prepended to every counter key.
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) {
		rs.prefix = prefix
	}
}

// NewRedisStore creates a store backed by the given client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{
		client: client,
		prefix: "ratelimit:",
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

// Increment implements Store.
func (rs *RedisStore) Increment(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	res, err := incrementScript.Run(ctx, rs.client, []string{rs.prefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(res) != 2 {
		return 0, time.Time{}, fmt.Errorf("%w: unexpected script reply of length %d", ErrStoreUnavailable, len(res))
	}

	resetAt := rs.now().Add(time.Duration(res[1]) * time.Millisecond)
	return int(res[0]), resetAt, nil
}

// Reset implements Store.
func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
