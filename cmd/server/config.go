package main

import (
	"time"

	"github.com/viggothorell/portfolio/modules/contact"
	"github.com/viggothorell/portfolio/pkg/email"
	"github.com/viggothorell/portfolio/pkg/httpserver"
	"github.com/viggothorell/portfolio/pkg/redis"
)

// Config is the process configuration assembled from the environment.
type Config struct {
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	AppName string `env:"APP_NAME" envDefault:"portfolio"`
	// SiteURL is the public origin used for canonical links and the sitemap.
	SiteURL string `env:"SITE_URL" envDefault:"http://localhost:8080"`
	// TrustProxyHops is the number of reverse proxies in front of the server.
	// It must be set explicitly since a wrong value lets clients spoof their address.
	TrustProxyHops     int           `env:"TRUST_PROXY_HOPS,required"`
	TrustRequestID     bool          `env:"REQUEST_ID_TRUST" envDefault:"false"`
	RateLimitKeySecret string        `env:"RATE_LIMIT_KEY_SECRET"`
	HSTSMaxAge         time.Duration `env:"HSTS_MAX_AGE" envDefault:"4320h"`

	HTTP    httpserver.Config
	Redis   redis.Config
	Email   email.Config
	Contact contact.Config
}
