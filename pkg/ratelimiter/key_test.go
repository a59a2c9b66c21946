package ratelimiter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viggothorell/portfolio/pkg/ratelimiter"
)

func TestHashedKey(t *testing.T) {
	t.Parallel()

	key := ratelimiter.HashedKey([]byte("secret"))

	a := key("203.0.113.7")
	assert.Len(t, a, 32)
	assert.NotContains(t, a, "203")
	assert.Equal(t, a, key("203.0.113.7"), "deterministic")
	assert.NotEqual(t, a, key("203.0.113.8"))
	assert.NotEqual(t, a, ratelimiter.HashedKey([]byte("other"))("203.0.113.7"), "depends on secret")
	assert.Empty(t, key(""))
}

func TestHashedKey_WithoutSecret(t *testing.T) {
	t.Parallel()

	key := ratelimiter.HashedKey(nil)
	assert.Equal(t, "203.0.113.7", key("203.0.113.7"))
}

func TestHashedKey_LongSecret(t *testing.T) {
	t.Parallel()

	long := make([]byte, 100)
	key := ratelimiter.HashedKey(long)
	assert.Len(t, key("x"), 32)
}
