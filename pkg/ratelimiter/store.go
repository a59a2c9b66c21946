package ratelimiter

import (
	"context"
	"time"
)

// Store defines the interface for fixed window storage backends.
type Store interface {
	// Increment records one request for key. When no window is open for key,
	// or the open one has elapsed, a new window of length window starts at the
	// current time with a count of one. It returns the count within the current
	// window and the time the window ends. Implementations must update a key
	// atomically.
	Increment(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}
