package handler

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/viggothorell/portfolio/pkg/environment"
	"github.com/viggothorell/portfolio/pkg/logger"
	"github.com/viggothorell/portfolio/pkg/requestid"
)

// ErrorPageParams contains data for rendering error pages and toasts.
type ErrorPageParams struct {
	StatusCode int
	MessageKey string
	// Detail holds the raw error text. It is empty in production.
	Detail    string
	RequestID string
}

// ErrorHandlerConfig configures the default error handler.
type ErrorHandlerConfig struct {
	// ErrorPage renders the full error page for regular HTTP requests.
	ErrorPage func(ErrorPageParams) templ.Component

	// ErrorToast renders a notification patched in for Datastar requests.
	ErrorToast func(ErrorPageParams) templ.Component

	// ToastTarget is the selector the toast is patched into (default "#toast-container").
	ToastTarget string

	// Environment decides whether error detail is shown. When empty the
	// environment stored in the request context is used.
	Environment environment.Environment
}

// NewErrorHandler creates the error handler shared by all modules.
// Regular requests get a full error page with the classified status,
// Datastar requests get a toast patch. Client errors log at warn level,
// server errors at error level.
func NewErrorHandler(log *slog.Logger, cfg ErrorHandlerConfig) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ToastTarget == "" {
		cfg.ToastTarget = "#toast-container"
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := Classify(err)

		level := slog.LevelError
		if info.Code < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "request error",
			logger.Error(err),
			logger.Status(info.Code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("datastar", IsDatastar(r)),
			logger.Component("error_handler"),
		)

		params := ErrorPageParams{
			StatusCode: info.Code,
			MessageKey: info.Key,
			RequestID:  requestid.FromContext(ctx),
		}
		env := cfg.Environment
		if env == "" {
			env = environment.FromContext(ctx)
		}
		if !env.IsProduction() {
			params.Detail = err.Error()
		}

		var resp Response
		switch {
		case IsDatastar(r) && cfg.ErrorToast != nil:
			resp = Templ(cfg.ErrorToast(params), WithTarget(cfg.ToastTarget), WithPatchMode(PatchInner))
		case cfg.ErrorPage != nil:
			resp = Templ(cfg.ErrorPage(params), WithStatus(info.Code))
		default:
			http.Error(ctx.ResponseWriter(), http.StatusText(info.Code), info.Code)
			return
		}

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(ctx, "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_page"),
			)
			http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// NotFound adapts the error handler to chi's NotFound hook.
func NotFound(h ErrorHandler[Context]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(NewContext(w, r), ErrNotFound)
	}
}

// MethodNotAllowed adapts the error handler to chi's MethodNotAllowed hook.
func MethodNotAllowed(h ErrorHandler[Context]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(NewContext(w, r), ErrMethodNotAllowed)
	}
}
