package ratelimiter

import "errors"

var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyKey indicates that no key was supplied for a rate limit check.
	ErrEmptyKey = errors.New("empty rate limit key")

	// ErrStoreUnavailable indicates that the store backend is unavailable.
	ErrStoreUnavailable = errors.New("store unavailable")
)
