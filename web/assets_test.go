package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/pkg/i18n"
	"github.com/viggothorell/portfolio/web"
)

func TestCacheControl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		production bool
		want       string
	}{
		{"stylesheet in production", "/static/css/style.css", true, web.CacheMedium},
		{"script in production", "/static/js/site.js", true, web.CacheMedium},
		{"image in production", "/static/images/favicon.svg", true, web.CacheLong},
		{"uppercase extension", "/static/images/photo.WEBP", true, web.CacheLong},
		{"no extension", "/static/LICENSE", true, web.CacheLong},
		{"development", "/static/css/style.css", false, web.CacheRevalidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, web.CacheControl(tt.path, tt.production))
		})
	}
}

func TestStatic(t *testing.T) {
	t.Parallel()

	h := web.Static(true)

	t.Run("serves embedded file", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/style.css", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, web.CacheMedium, rec.Header().Get("Cache-Control"))
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	})

	t.Run("no directory listing", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/nope.js", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestLocales(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewFromFS(web.Locales(), ".")
	require.NoError(t, err)

	assert.Equal(t, []string{"sv", "en"}, tr.Languages())
	for _, key := range []string{
		"contact.sent", "contact.rate_limited", "contact.unavailable", "contact.send_failed",
		"validation.name.length", "validation.name.charset",
		"validation.email.invalid", "validation.message.length",
		"error.not_found", "error.internal", "error.too_large",
	} {
		assert.True(t, tr.Has("sv", key), "sv missing %s", key)
		assert.True(t, tr.Has("en", key), "en missing %s", key)
	}
	assert.Equal(t, "För många försök. Vänta 15 minuter och försök igen.",
		tr.T("sv", "contact.rate_limited", "minutes", "15"))
}
