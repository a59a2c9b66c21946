package handler

import (
	"errors"
	"net/http"

	"github.com/viggothorell/portfolio/pkg/binder"
)

// HandlerFunc provides type-safe HTTP request handling.
// R is the request type populated by the configured binders.
//
// Example:
//
//	h := handler.HandlerFunc[handler.Context, SubmitRequest](
//		func(ctx handler.Context, req SubmitRequest) handler.Response {
//			return handler.Templ(views.Thanks(req.Name))
//		},
//	)
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
// Implementations set headers, status code and write the body.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler handles errors from binding or rendering.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc to add cross-cutting functionality.
// The first decorator in the list is the outermost wrapper.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures the Wrap function.
type WrapOption[C Context, R any] func(*wrapConfig[C, R])

type wrapConfig[C Context, R any] struct {
	binders        []Bind
	errorHandler   ErrorHandler[C]
	contextFactory func(http.ResponseWriter, *http.Request) C
	decorators     []Decorator[C, R]
}

// WithBinders sets request binders that are tried in order.
// Binders returning binder.ErrBinderNotApplicable are skipped and the first
// applicable one binds the request. When none applies, the error handler
// receives binder.ErrUnsupportedMediaType.
//
// Example:
//
//	r.Post("/send-email", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](
//			binder.Form(maxBytes),
//			binder.JSON(maxBytes),
//		),
//	))
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithContextFactory sets a custom context factory.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		if f != nil {
			c.contextFactory = f
		}
	}
}

// WithDecorators adds decorators to wrap the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(c *wrapConfig[C, R]) {
		c.decorators = append(c.decorators, decorators...)
	}
}

// defaultErrorHandler writes a plain text error using the status of an
// HTTPError, or 500 for anything else.
func defaultErrorHandler[C Context](ctx C, err error) {
	code := StatusCode(err)
	http.Error(ctx.ResponseWriter(), http.StatusText(code), code)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	cfg := &wrapConfig[C, R]{
		errorHandler: defaultErrorHandler[C],
		contextFactory: func(w http.ResponseWriter, r *http.Request) C {
			if c, ok := any(NewContext(w, r)).(C); ok {
				return c
			}
			panic("handler: cannot use default context factory with custom context type, provide WithContextFactory")
		},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	final := h
	for i := len(cfg.decorators) - 1; i >= 0; i-- {
		final = cfg.decorators[i](final)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := cfg.contextFactory(w, r)

		var req R
		applied := len(cfg.binders) == 0
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				if errors.Is(err, binder.ErrBinderNotApplicable) {
					continue
				}
				cfg.errorHandler(ctx, err)
				return
			}
			applied = true
			break
		}
		if !applied {
			cfg.errorHandler(ctx, binder.ErrUnsupportedMediaType)
			return
		}

		response := final(ctx, req)
		if response == nil {
			cfg.errorHandler(ctx, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(ctx, err)
		}
	}
}
