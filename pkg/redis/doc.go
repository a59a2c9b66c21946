// Package redis connects to an optional Redis server used as shared storage
// for rate limit counters.
//
// Connect retries the initial ping according to Config, and Healthcheck adapts
// the client to a readiness probe:
//
//	cfg := redis.Config{ConnectionURL: "redis://localhost:6379/0", RetryAttempts: 3}
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	ready := redis.Healthcheck(client)
//
// Errors wrap the underlying go-redis errors with errors.Join so callers can
// match the sentinels in this package.
package redis
