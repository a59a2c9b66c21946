package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"
)

// Context provides request-scoped access to the HTTP request, the response
// writer and, for Datastar requests, a server-sent event generator.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SSE() *datastar.ServerSentEventGenerator
}

// NewContext creates a new Context from HTTP request and response writer.
// The SSE generator is created on first use because it writes the event
// stream headers immediately.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &httpContext{w: w, r: r}
}

type httpContext struct {
	w   http.ResponseWriter
	r   *http.Request
	sse *datastar.ServerSentEventGenerator
}

func (c *httpContext) Request() *http.Request {
	return c.r
}

func (c *httpContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

// SSE returns the event generator for Datastar requests and nil otherwise.
func (c *httpContext) SSE() *datastar.ServerSentEventGenerator {
	if c.sse == nil && IsDatastar(c.r) {
		c.sse = datastar.NewSSE(c.w, c.r)
	}
	return c.sse
}

func (c *httpContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *httpContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *httpContext) Err() error {
	return c.r.Context().Err()
}

func (c *httpContext) Value(key any) any {
	return c.r.Context().Value(key)
}
