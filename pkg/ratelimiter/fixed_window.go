package ratelimiter

import (
	"context"
	"time"
)

// FixedWindow implements a fixed window counter rate limiter.
type FixedWindow struct {
	store  Store
	config Config
	now    func() time.Time
}

// Option configures a FixedWindow.
type Option func(*FixedWindow)

// WithClock replaces the time source used to compute retry hints.
func WithClock(now func() time.Time) Option {
	return func(fw *FixedWindow) {
		fw.now = now
	}
}

// NewFixedWindow creates a new fixed window rate limiter.
func NewFixedWindow(store Store, config Config, opts ...Option) (*FixedWindow, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	fw := &FixedWindow{
		store:  store,
		config: config,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(fw)
	}

	return fw, nil
}

// Allow records a request for key and reports whether it fits within the
// current window.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	count, resetAt, err := fw.store.Increment(ctx, key, fw.config.Window)
	if err != nil {
		return nil, err
	}

	return &Result{
		Limit:     fw.config.Limit,
		Remaining: fw.config.Limit - count,
		ResetAt:   resetAt,
		checkedAt: fw.now(),
	}, nil
}

// Reset clears the window for key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	return fw.store.Reset(ctx, key)
}

// Config returns the limiter configuration.
func (fw *FixedWindow) Config() Config {
	return fw.config
}
