package securityheaders

import (
	"net/http"
	"strconv"
	"time"
)

// Config describes the headers written on every response.
type Config struct {
	Policy         Policy
	ReferrerPolicy string
	FrameOptions   string
	// HSTSMaxAge enables Strict-Transport-Security when positive.
	HSTSMaxAge time.Duration
}

// Option configures the middleware.
type Option func(*Config)

// WithPolicy replaces the Content-Security-Policy.
func WithPolicy(p Policy) Option {
	return func(c *Config) {
		c.Policy = p
	}
}

// WithReferrerPolicy overrides the Referrer-Policy value.
func WithReferrerPolicy(v string) Option {
	return func(c *Config) {
		c.ReferrerPolicy = v
	}
}

// WithHSTS enables Strict-Transport-Security. Only use it behind TLS.
func WithHSTS(maxAge time.Duration) Option {
	return func(c *Config) {
		c.HSTSMaxAge = maxAge
	}
}

// Middleware sets the security headers before calling next.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := Config{
		Policy:         DefaultPolicy(),
		ReferrerPolicy: "strict-origin-when-cross-origin",
		FrameOptions:   "SAMEORIGIN",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	headers := http.Header{}
	if len(cfg.Policy) > 0 {
		headers.Set("Content-Security-Policy", cfg.Policy.String())
	}
	headers.Set("Referrer-Policy", cfg.ReferrerPolicy)
	headers.Set("X-Frame-Options", cfg.FrameOptions)
	headers.Set("X-Content-Type-Options", "nosniff")
	headers.Set("Cross-Origin-Opener-Policy", "same-origin")
	headers.Set("Cross-Origin-Resource-Policy", "same-origin")
	headers.Set("X-DNS-Prefetch-Control", "off")
	headers.Set("X-Permitted-Cross-Domain-Policies", "none")
	if cfg.HSTSMaxAge > 0 {
		headers.Set("Strict-Transport-Security",
			"max-age="+strconv.Itoa(int(cfg.HSTSMaxAge.Seconds()))+"; includeSubDomains")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dst := w.Header()
			for k, v := range headers {
				dst[k] = v
			}
			next.ServeHTTP(w, r)
		})
	}
}
