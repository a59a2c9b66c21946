package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/viggothorell/portfolio/handler"
	"github.com/viggothorell/portfolio/modules/contact"
	"github.com/viggothorell/portfolio/modules/pages"
	"github.com/viggothorell/portfolio/pkg/clientip"
	"github.com/viggothorell/portfolio/pkg/environment"
	"github.com/viggothorell/portfolio/pkg/httpserver"
	"github.com/viggothorell/portfolio/pkg/i18n"
	"github.com/viggothorell/portfolio/pkg/logger"
	"github.com/viggothorell/portfolio/pkg/ratelimiter"
	"github.com/viggothorell/portfolio/pkg/requestid"
	"github.com/viggothorell/portfolio/pkg/securityheaders"
	"github.com/viggothorell/portfolio/web"
	"github.com/viggothorell/portfolio/web/views"
)

// deps are the long-lived collaborators the router is built from.
type deps struct {
	Config     Config
	Env        environment.Environment
	Log        *slog.Logger
	Translator *i18n.Translator
	Renderer   *views.Renderer
	Limiter    contact.Limiter
	Mailer     *contact.Mailer
	Checks     []httpserver.Check
}

func newRouter(d deps) (http.Handler, error) {
	errCfg := d.Renderer.ErrorHandlerConfig()
	errCfg.Environment = d.Env
	errs := handler.NewErrorHandler(d.Log, errCfg)
	production := d.Env.IsProduction()

	keyFunc := ratelimiter.PlainKey
	if d.Config.RateLimitKeySecret != "" {
		keyFunc = ratelimiter.HashedKey([]byte(d.Config.RateLimitKeySecret))
	}

	contactSvc := contact.NewService(d.Config.Contact, d.Limiter, d.Mailer, d.Translator, d.Renderer.ContactViews(),
		contact.WithKeyFunc(keyFunc),
		contact.WithErrorHandler(errs),
		contact.WithLogger(d.Log),
	)
	pageSvc, err := pages.NewService(d.Config.SiteURL, d.Renderer.PageViews(), errs)
	if err != nil {
		return nil, fmt.Errorf("build pages: %w", err)
	}

	// Datastar evaluates expressions with Function() and is served from jsDelivr.
	policy := securityheaders.DefaultPolicy().With("script-src", "https://cdn.jsdelivr.net", "'unsafe-eval'")
	secOpts := []securityheaders.Option{securityheaders.WithPolicy(policy)}
	if production {
		secOpts = append(secOpts, securityheaders.WithHSTS(d.Config.HSTSMaxAge))
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware(d.Config.TrustRequestID),
		environment.Middleware(d.Env),
		middleware.RequestLogger(logger.NewAccessLog(d.Log)),
		handler.Recoverer(errs),
		clientip.NewResolver(d.Config.TrustProxyHops).Middleware,
		d.Translator.Middleware,
		securityheaders.Middleware(secOpts...),
		middleware.Compress(5),
	)

	r.NotFound(handler.NotFound(errs))
	r.MethodNotAllowed(handler.MethodNotAllowed(errs))

	r.Get("/healthz", httpserver.Liveness())
	r.Get("/readyz", httpserver.Readiness(d.Log, d.Checks...))
	r.Handle(web.StaticPrefix+"*", web.Static(production))

	contactRoutes := contactSvc.Handle()
	r.Handle(pages.ContactPath, contactRoutes)
	r.Handle("/send-email", contactRoutes)
	r.Mount("/", pageSvc.Handle())

	return r, nil
}
