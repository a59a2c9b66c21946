package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/viggothorell/portfolio/modules/contact"
	"github.com/viggothorell/portfolio/pkg/config"
	"github.com/viggothorell/portfolio/pkg/email"
	"github.com/viggothorell/portfolio/pkg/environment"
	"github.com/viggothorell/portfolio/pkg/httpserver"
	"github.com/viggothorell/portfolio/pkg/i18n"
	"github.com/viggothorell/portfolio/pkg/logger"
	"github.com/viggothorell/portfolio/pkg/ratelimiter"
	"github.com/viggothorell/portfolio/pkg/redis"
	"github.com/viggothorell/portfolio/pkg/requestid"
	"github.com/viggothorell/portfolio/web"
	"github.com/viggothorell/portfolio/web/views"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	env := environment.Parse(cfg.AppEnv)
	log := logger.New(
		logger.WithEnvironment(env, cfg.AppName),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	if err := run(context.Background(), cfg, env, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, env environment.Environment, log *slog.Logger) error {
	tr, err := i18n.NewFromFS(web.Locales(), ".",
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(!env.IsProduction()),
	)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	renderer, err := views.New(tr, views.WithSiteURL(cfg.SiteURL))
	if err != nil {
		return fmt.Errorf("parse views: %w", err)
	}

	store, checks, closeStore, err := rateLimitStore(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter, err := ratelimiter.NewFixedWindow(store, ratelimiter.Config{
		Limit:  cfg.Contact.RateLimitMax,
		Window: cfg.Contact.RateLimitWindow,
	})
	if err != nil {
		return fmt.Errorf("create rate limiter: %w", err)
	}

	router, err := newRouter(deps{
		Config:     cfg,
		Env:        env,
		Log:        log,
		Translator: tr,
		Renderer:   renderer,
		Limiter:    limiter,
		Mailer:     newMailer(ctx, cfg, renderer, log),
		Checks:     checks,
	})
	if err != nil {
		return err
	}

	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

// rateLimitStore returns the shared Redis store when REDIS_URL is set and an
// in-process store otherwise.
func rateLimitStore(ctx context.Context, cfg redis.Config, log *slog.Logger) (ratelimiter.Store, []httpserver.Check, func(), error) {
	if !cfg.Enabled() {
		log.Info("rate limiter uses in-memory store", logger.Component("ratelimiter"))
		mem := ratelimiter.NewMemoryStore()
		return mem, nil, mem.Close, nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	log.Info("rate limiter uses redis store", logger.Component("ratelimiter"))

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Warn("failed to close redis client", logger.Error(err))
		}
	}
	return ratelimiter.NewRedisStore(client), []httpserver.Check{redis.Healthcheck(client)}, closeFn, nil
}

// newMailer builds the contact mailer. Missing or broken mail configuration
// does not stop the site: the form answers 503 and the cause is logged once here.
func newMailer(ctx context.Context, cfg Config, renderer *views.Renderer, log *slog.Logger) *contact.Mailer {
	log = log.With(logger.Component("mailer"))

	sender, err := email.New(cfg.Email)
	if err != nil {
		if errors.Is(err, email.ErrNotConfigured) {
			log.Warn("mail is not configured, contact form is disabled", logger.Error(err))
		} else {
			log.Error("failed to create mail transport, contact form is disabled", logger.Error(err))
		}
		return contact.UnavailableMailer(err)
	}

	if v, ok := sender.(email.Verifier); ok {
		if err := v.Verify(ctx); err != nil {
			log.Warn("mail transport verification failed", logger.Error(err))
		} else {
			log.Info("mail transport verified", slog.String("transport", cfg.Email.Transport))
		}
	}

	recipient := cfg.Contact.Recipient
	if recipient == "" {
		recipient = cfg.Email.SenderAddress()
	}

	mailer, err := contact.NewMailer(sender, recipient,
		contact.WithSendTimeout(cfg.Contact.SendTimeout),
		contact.WithHTMLTemplate(renderer.ContactEmail),
	)
	if err != nil {
		log.Error("invalid contact recipient, contact form is disabled", logger.Error(err))
		return contact.UnavailableMailer(err)
	}
	return mailer
}
