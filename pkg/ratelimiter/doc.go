// Package ratelimiter provides fixed window rate limiting with in-memory and
// Redis storage.
//
// Time is divided into windows of a configured length per key. The first
// request of a window opens it with a count of one; each later request within
// the window increments the count and is allowed while the count does not
// exceed the limit. Once the window has elapsed the next request opens a new
// one.
//
// # Basic Usage
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewFixedWindow(store, ratelimiter.Config{
//		Limit:  5,
//		Window: 15 * time.Minute,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := limiter.Allow(ctx, clientIP)
//	if err != nil {
//		// store failure, decide whether to fail open
//	}
//	if !result.Allowed() {
//		w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfterSeconds()))
//	}
//
// # Shared State
//
// RedisStore keeps the counters in Redis so several replicas enforce one
// window. Increment, expiry and TTL lookup run in a single Lua script, so
// concurrent requests for a key never lose an increment.
//
// # Accuracy
//
// Fixed windows are approximate: a client can send up to twice the limit
// across a window boundary. That is acceptable for abuse prevention and is not
// a precision guarantee.
//
// # Keys
//
// HashedKey derives a pseudonymous key with keyed BLAKE2b so raw client
// addresses are not written to shared storage.
package ratelimiter
