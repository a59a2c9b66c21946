package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/handler"
	"github.com/viggothorell/portfolio/pkg/binder"
)

type greetRequest struct {
	Name string `form:"name" json:"name"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func greet(_ handler.Context, req greetRequest) handler.Response {
	return handler.Templ(text("hej " + req.Name))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	wrapped := handler.Wrap(greet,
		handler.WithBinders[handler.Context, greetRequest](binder.Form(1024), binder.JSON(1024)),
	)

	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		wantBody    string
	}{
		{"form body", "application/x-www-form-urlencoded", "name=Anna", http.StatusOK, "hej Anna"},
		{"json body", "application/json", `{"name":"Erik"}`, http.StatusOK, "hej Erik"},
		{"unsupported media type", "text/plain", "Anna", http.StatusUnsupportedMediaType, ""},
		{"malformed json", "application/json", `{`, http.StatusBadRequest, ""},
		{"oversize body", "application/json", `{"name":"` + strings.Repeat("a", 2000) + `"}`, http.StatusRequestEntityTooLarge, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()

			wrapped(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestWrapWithoutBinders(t *testing.T) {
	t.Parallel()

	wrapped := handler.Wrap(greet)
	rec := httptest.NewRecorder()
	wrapped(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hej ", rec.Body.String())
}

func TestWrapNilResponse(t *testing.T) {
	t.Parallel()

	var got error
	wrapped := handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return nil },
		handler.WithErrorHandler[handler.Context, struct{}](func(_ handler.Context, err error) { got = err }),
	)
	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.ErrorIs(t, got, handler.ErrNilResponse)
}

func TestWrapDecorators(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Decorator[handler.Context, struct{}] {
		return func(next handler.HandlerFunc[handler.Context, struct{}]) handler.HandlerFunc[handler.Context, struct{}] {
			return func(ctx handler.Context, req struct{}) handler.Response {
				order = append(order, name)
				return next(ctx, req)
			}
		}
	}

	wrapped := handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return handler.Templ(text("ok")) },
		handler.WithDecorators(trace("outer"), trace("inner")),
	)
	wrapped(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want handler.HTTPError
	}{
		{"http error", handler.ErrNotFound, handler.ErrNotFound},
		{"wrapped http error", errors.Join(handler.ErrMethodNotAllowed, errors.New("cause")), handler.ErrMethodNotAllowed},
		{"too large", binder.ErrRequestTooLarge, handler.ErrEntityTooLarge},
		{"bad json", binder.ErrFailedToParseJSON, handler.ErrBadRequest},
		{"media type", binder.ErrUnsupportedMediaType, handler.ErrUnsupportedMedia},
		{"unknown", errors.New("boom"), handler.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, handler.Classify(tt.err))
		})
	}
}

func TestIsDatastar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		method  string
		target  string
		headers map[string]string
		want    bool
	}{
		{"datastar request header", http.MethodPost, "/", map[string]string{"Datastar-Request": "true"}, true},
		{"event stream accept", http.MethodPost, "/", map[string]string{"Accept": "text/event-stream, application/json"}, true},
		{"signals query on get", http.MethodGet, "/?datastar=%7B%7D", nil, true},
		{"plain form post", http.MethodPost, "/", map[string]string{"Accept": "text/html"}, false},
		{"no headers", http.MethodGet, "/", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, handler.IsDatastar(req))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	type key struct{}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), key{}, "value"))
	rec := httptest.NewRecorder()

	ctx := handler.NewContext(rec, req)

	assert.Same(t, req, ctx.Request())
	assert.Equal(t, "value", ctx.Value(key{}))
	assert.Nil(t, ctx.SSE())
	require.NoError(t, ctx.Err())
}
