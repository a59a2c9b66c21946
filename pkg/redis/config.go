package redis

import "time"

// Config holds connection settings. An empty ConnectionURL means Redis is not
// used and callers should fall back to in-process storage.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                             // redis://:password@localhost:6379/0
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`   // Ping attempts before giving up.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`  // Pause between attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"15s"` // Upper bound for the whole connect phase.
}

// Enabled reports whether a connection URL is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
