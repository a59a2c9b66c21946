package ratelimiter

import (
	"fmt"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Maximum requests per window
	Remaining int       // Requests left in the window; negative once exceeded
	ResetAt   time.Time // End of the current window

	checkedAt time.Time
}

// Allowed reports whether the request fits within the window.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long until the window resets.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(r.ResetAt.Sub(r.checkedAt), 0)
}

// RetryAfterSeconds rounds RetryAfter up to whole seconds for the Retry-After
// header. A denied result never reports less than one second.
func (r *Result) RetryAfterSeconds() int {
	if r.Allowed() {
		return 0
	}
	d := r.RetryAfter()
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}
	return max(secs, 1)
}

// Config defines the fixed window configuration.
type Config struct {
	Limit  int           // Maximum requests per key within one window
	Window time.Duration // Window length
}

func (c Config) validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("%w: limit must be positive, got %d", ErrInvalidConfig, c.Limit)
	}
	if c.Window <= 0 {
		return fmt.Errorf("%w: window must be positive, got %v", ErrInvalidConfig, c.Window)
	}
	return nil
}
