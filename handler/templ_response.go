package handler

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures a templ response.
type TemplOption func(*templConfig)

type templConfig struct {
	status  int
	headers http.Header
	patch   []datastar.PatchElementOption
}

// WithStatus sets the HTTP status of a full page render.
// Datastar event streams always answer 200.
func WithStatus(code int) TemplOption {
	return func(c *templConfig) {
		c.status = code
	}
}

// WithHeader adds a response header to both full page and Datastar renders.
func WithHeader(key, value string) TemplOption {
	return func(c *templConfig) {
		c.headers.Add(key, value)
	}
}

// WithTarget sets the selector of the element patched by Datastar.
func WithTarget(selector string) TemplOption {
	return func(c *templConfig) {
		c.patch = append(c.patch, datastar.WithSelector(selector))
	}
}

// WithPatchMode sets how Datastar merges the fragment into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return func(c *templConfig) {
		c.patch = append(c.patch, datastar.WithMode(mode))
	}
}

type templResponse struct {
	partial templ.Component
	full    templ.Component
	cfg     templConfig
}

// Render patches the partial component over SSE for Datastar requests and
// writes the full component as HTML otherwise. The HTML is rendered into a
// buffer first so a failing component never leaves a half written page.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	for key, values := range t.cfg.headers {
		for _, v := range values {
			w.Header().Add(key, v)
		}
	}

	if IsDatastar(r) {
		sse := datastar.NewSSE(w, r)
		return sse.PatchElementTempl(t.partial, t.cfg.patch...)
	}

	var buf bytes.Buffer
	if err := t.full.Render(r.Context(), &buf); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(t.cfg.status)
	_, err := buf.WriteTo(w)
	return err
}

func newTemplConfig(opts []TemplOption) templConfig {
	cfg := templConfig{status: http.StatusOK, headers: http.Header{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Templ creates a response from a templ component.
//
// Example:
//
//	return handler.Templ(views.Page(data), handler.WithStatus(http.StatusNotFound))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{
		partial: component,
		full:    component,
		cfg:     newTemplConfig(opts),
	}
}

// TemplPartial renders only the partial component for Datastar requests and
// the full component for regular requests.
//
// Example:
//
//	return handler.TemplPartial(
//		views.ContactForm(model),
//		views.ContactPage(model),
//		handler.WithTarget("#contact-form"),
//		handler.WithStatus(model.StatusCode),
//	)
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{
		partial: partial,
		full:    full,
		cfg:     newTemplConfig(opts),
	}
}
