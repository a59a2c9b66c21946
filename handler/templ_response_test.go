package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/handler"
)

func TestTemplPartial(t *testing.T) {
	t.Parallel()

	resp := handler.TemplPartial(
		text(`<div id="contact-form">fragment</div>`),
		text("<html>full page</html>"),
		handler.WithTarget("#contact-form"),
		handler.WithStatus(http.StatusTooManyRequests),
		handler.WithHeader("Retry-After", "900"),
	)

	t.Run("regular request renders full page with status", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, httptest.NewRequest(http.MethodPost, "/", nil)))

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "900", rec.Header().Get("Retry-After"))
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<html>full page</html>", rec.Body.String())
	})

	t.Run("datastar request receives patch event", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.Header.Set("Datastar-Request", "true")
		rec := httptest.NewRecorder()
		require.NoError(t, resp.Render(rec, req))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "900", rec.Header().Get("Retry-After"))
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")
		assert.Contains(t, rec.Body.String(), "datastar-patch-elements")
		assert.Contains(t, rec.Body.String(), "#contact-form")
		assert.Contains(t, rec.Body.String(), "fragment")
		assert.NotContains(t, rec.Body.String(), "full page")
	})
}

func TestTemplRenderFailureWritesNothing(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "partial output")
		return errors.New("render failed")
	})

	rec := httptest.NewRecorder()
	err := handler.Templ(failing).Render(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Error(t, err)
	assert.Empty(t, rec.Body.String())
}

func TestBlob(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	err := handler.Blob("text/plain; charset=utf-8", "public, max-age=3600", []byte("User-agent: *")).
		Render(rec, httptest.NewRequest(http.MethodGet, "/robots.txt", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "User-agent: *", rec.Body.String())
}
