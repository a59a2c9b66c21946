package contact

import "time"

// Config holds contact form settings.
type Config struct {
	// Recipient receives submissions. Empty means the SMTP user, resolved at startup.
	Recipient       string        `env:"CONTACT_RECIPIENT"`
	RateLimitWindow time.Duration `env:"CONTACT_RATE_LIMIT_WINDOW" envDefault:"15m"`
	RateLimitMax    int           `env:"CONTACT_RATE_LIMIT_MAX" envDefault:"5"`
	MaxBodyBytes    int64         `env:"CONTACT_MAX_BODY_BYTES" envDefault:"25600"`
	SendTimeout     time.Duration `env:"MAIL_SEND_TIMEOUT" envDefault:"10s"`
}
