package contact

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/viggothorell/portfolio/handler"
	"github.com/viggothorell/portfolio/pkg/binder"
	"github.com/viggothorell/portfolio/pkg/clientip"
	"github.com/viggothorell/portfolio/pkg/logger"
	"github.com/viggothorell/portfolio/pkg/ratelimiter"
	"github.com/viggothorell/portfolio/pkg/sanitizer"
	"github.com/viggothorell/portfolio/pkg/validator"
)

// FormTarget is the selector patched by Datastar responses.
const FormTarget = "#contact-form"

// MessagePreviewLength caps the message excerpt written to failure logs.
const MessagePreviewLength = 40

// Translation keys of the form status messages.
const (
	KeySent        = "contact.sent"
	KeyRateLimited = "contact.rate_limited"
	KeyUnavailable = "contact.unavailable"
	KeySendFailed  = "contact.send_failed"
)

// Limiter decides whether a client key may submit again.
type Limiter interface {
	Allow(ctx context.Context, key string) (*ratelimiter.Result, error)
}

// Translator turns message keys into user-facing text for the request locale.
type Translator interface {
	Tc(ctx context.Context, key string, args ...string) string
}

// Views renders the contact page and its form fragment.
type Views struct {
	ContactPage func(ContactPageParams) templ.Component
	ContactForm func(ContactFormParams) templ.Component
}

// Service serves the contact page and processes submissions.
type Service struct {
	cfg          Config
	limiter      Limiter
	keyFunc      ratelimiter.KeyFunc
	mailer       *Mailer
	translator   Translator
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	log          *slog.Logger
}

// ServiceOption configures optional Service dependencies.
type ServiceOption func(*Service)

// WithKeyFunc derives the rate limit key from the client address.
func WithKeyFunc(fn ratelimiter.KeyFunc) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.keyFunc = fn
		}
	}
}

// WithErrorHandler sets the handler for binding and rendering failures.
func WithErrorHandler(h handler.ErrorHandler[handler.Context]) ServiceOption {
	return func(s *Service) {
		s.errorHandler = h
	}
}

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService wires the contact pipeline. The limiter and mailer are owned by
// the caller so tests and replicas can share or replace them.
func NewService(cfg Config, limiter Limiter, mailer *Mailer, translator Translator, views *Views, opts ...ServiceOption) *Service {
	if mailer == nil {
		mailer = UnavailableMailer(nil)
	}
	s := &Service{
		cfg:        cfg,
		limiter:    limiter,
		keyFunc:    ratelimiter.PlainKey,
		mailer:     mailer,
		translator: translator,
		views:      views,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("contact"))
	return s
}

// Handle returns the contact routes: GET /kontakt and POST /send-email.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	if s.errorHandler != nil {
		r.MethodNotAllowed(handler.MethodNotAllowed(s.errorHandler))
	}

	r.Get("/kontakt", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Post("/send-email", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, Submission](
			binder.Form(s.cfg.MaxBodyBytes),
			binder.JSON(s.cfg.MaxBodyBytes),
		),
		handler.WithErrorHandler[handler.Context, Submission](s.errorHandler),
	))

	return r
}

func (s *Service) page(_ handler.Context, _ struct{}) handler.Response {
	return s.render(EmptyForm())
}

// submit runs sanitize, validate, rate check and dispatch in that order.
// Invalid submissions return before the rate check and are not counted.
func (s *Service) submit(ctx handler.Context, req Submission) handler.Response {
	clean := Sanitize(req)

	if err := Validate(clean); err != nil {
		return s.render(FormState{
			StatusCode: http.StatusBadRequest,
			FormStatus: &FormStatus{Type: StatusError, Message: s.validationMessage(ctx, err)},
			OldInput:   clean,
		})
	}

	if res, denied := s.rateCheck(ctx); denied {
		return s.render(FormState{
			StatusCode: http.StatusTooManyRequests,
			FormStatus: &FormStatus{
				Type: StatusError,
				Message: s.translator.Tc(ctx, KeyRateLimited,
					"minutes", strconv.Itoa((res.RetryAfterSeconds()+59)/60),
					"seconds", strconv.Itoa(res.RetryAfterSeconds()),
				),
			},
			OldInput: clean,
		}, handler.WithHeader("Retry-After", strconv.Itoa(res.RetryAfterSeconds())))
	}

	if err := s.mailer.Send(ctx, clean); err != nil {
		if errors.Is(err, ErrMailerUnavailable) {
			s.log.WarnContext(ctx, "contact form submitted without a configured mailer",
				logger.Error(err),
				logger.Event("mailer_unavailable"),
			)
			return s.render(FormState{
				StatusCode: http.StatusServiceUnavailable,
				FormStatus: &FormStatus{Type: StatusError, Message: s.translator.Tc(ctx, KeyUnavailable)},
				OldInput:   clean,
			})
		}

		s.log.ErrorContext(ctx, "failed to send contact email",
			logger.Error(err),
			logger.Event("send_failed"),
			slog.String("message_preview", sanitizer.MaxLength(clean.Message, MessagePreviewLength)),
		)
		return s.render(FormState{
			StatusCode: http.StatusInternalServerError,
			FormStatus: &FormStatus{Type: StatusError, Message: s.translator.Tc(ctx, KeySendFailed)},
			OldInput:   clean,
		})
	}

	s.log.InfoContext(ctx, "contact email sent", logger.Event("sent"))
	return s.render(FormState{
		StatusCode: http.StatusOK,
		FormStatus: &FormStatus{Type: StatusSuccess, Message: s.translator.Tc(ctx, KeySent)},
	})
}

// rateCheck reports whether the client exceeded its window. Store failures
// let the request through.
func (s *Service) rateCheck(ctx handler.Context) (*ratelimiter.Result, bool) {
	ip := clientip.FromContext(ctx)
	if ip == "" {
		ip = clientip.NewResolver(0).IP(ctx.Request())
	}
	key := s.keyFunc(ip)

	res, err := s.limiter.Allow(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "rate limiter unavailable, allowing request",
			logger.Error(err),
			logger.ClientKey(key),
		)
		return nil, false
	}
	if !res.Allowed() {
		s.log.InfoContext(ctx, "contact form rate limited",
			logger.ClientKey(key),
			slog.Int("retry_after", res.RetryAfterSeconds()),
		)
		return res, true
	}
	return res, false
}

// validationMessage joins the translated rule messages with a space.
func (s *Service) validationMessage(ctx context.Context, err error) string {
	errs := validator.ExtractValidationErrors(err)
	msgs := make([]string, 0, len(errs))
	for _, key := range errs.Keys() {
		msgs = append(msgs, s.translator.Tc(ctx, key))
	}
	return strings.Join(msgs, " ")
}

func (s *Service) render(state FormState, opts ...handler.TemplOption) handler.Response {
	opts = append(opts,
		handler.WithStatus(state.StatusCode),
		handler.WithTarget(FormTarget),
	)
	return handler.TemplPartial(
		s.views.ContactForm(ContactFormParams{Form: state}),
		s.views.ContactPage(ContactPageParams{Form: state}),
		opts...,
	)
}
