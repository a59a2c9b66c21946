package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/pkg/i18n"
)

const svCatalog = `
sv:
  contact:
    success: "Tack, %{name}!"
    error: "Något gick fel."
  only_sv: "bara svenska"
`

const enCatalog = `
en:
  contact:
    success: "Thanks, %{name}!"
    error: "Something went wrong."
`

func newTranslator(t *testing.T) *i18n.Translator {
	t.Helper()

	fsys := fstest.MapFS{
		"locales/sv.yaml":   {Data: []byte(svCatalog)},
		"locales/en.yml":    {Data: []byte(enCatalog)},
		"locales/README.md": {Data: []byte("ignored")},
	}

	tr, err := i18n.NewFromFS(fsys, "locales", i18n.WithDefaultLanguage("sv"))
	require.NoError(t, err)
	return tr
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		name     string
		lang     string
		key      string
		args     []string
		expected string
	}{
		{"nested key with param", "sv", "contact.success", []string{"name", "Anna"}, "Tack, Anna!"},
		{"other language", "en", "contact.success", []string{"name", "Anna"}, "Thanks, Anna!"},
		{"missing in en falls back to default", "en", "only_sv", nil, "bara svenska"},
		{"unknown language uses default", "de", "contact.error", nil, "Något gick fel."},
		{"unknown key returns key", "sv", "nope.missing", nil, "nope.missing"},
		{"unknown param kept", "sv", "contact.success", []string{"other", "x"}, "Tack, %{name}!"},
		{"odd args ignore last", "sv", "contact.success", []string{"name"}, "Tack, %{name}!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tr.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_Languages(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	assert.Equal(t, []string{"sv", "en"}, tr.Languages())
	assert.Equal(t, "sv", tr.DefaultLanguage())
	assert.True(t, tr.Supports("EN"))
	assert.False(t, tr.Supports("de"))
	assert.True(t, tr.Has("sv", "only_sv"))
	assert.False(t, tr.Has("en", "only_sv"))
}

func TestTranslator_Negotiate(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	tests := []struct {
		header   string
		expected string
	}{
		{"", "sv"},
		{"en-US,en;q=0.9", "en"},
		{"sv-SE,sv;q=0.9,en;q=0.8", "sv"},
		{"de-DE,de;q=0.9", "sv"},
		{"fr;q=0.9,en;q=0.5", "en"},
		{";;;garbage", "sv"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tr.Negotiate(tt.header))
		})
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := i18n.New(nil)
	assert.ErrorIs(t, err, i18n.ErrNoCatalogs)

	_, err = i18n.New(map[string]map[string]string{"en": {"a": "b"}}, i18n.WithDefaultLanguage("sv"))
	assert.ErrorIs(t, err, i18n.ErrDefaultLanguageAbsent)

	_, err = i18n.NewFromFS(fstest.MapFS{}, "missing")
	assert.ErrorIs(t, err, i18n.ErrFailedToReadCatalog)

	_, err = i18n.NewFromFS(fstest.MapFS{"l/sv.yaml": {Data: []byte("sv: [1, 2]")}}, "l")
	assert.ErrorIs(t, err, i18n.ErrInvalidCatalog)

	_, err = i18n.NewFromFS(fstest.MapFS{"l/sv.yaml": {Data: []byte("sv: {a: [")}}, "l")
	assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)

	var got string
	h := tr.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = tr.Tc(r.Context(), "contact.error")
	}))

	t.Run("accept-language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Accept-Language", "en-GB")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "Something went wrong.", got)
		assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	})

	t.Run("query overrides header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=sv", nil)
		req.Header.Set("Accept-Language", "en")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "Något gick fel.", got)
	})

	t.Run("unsupported query ignored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?lang=xx", nil)
		req.Header.Set("Accept-Language", "en")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "Something went wrong.", got)
	})
}

func TestTc_WithoutLocale(t *testing.T) {
	t.Parallel()

	tr := newTranslator(t)
	assert.Equal(t, "Något gick fel.", tr.Tc(context.Background(), "contact.error"))
	assert.Equal(t, "en", i18n.Locale(i18n.WithLocale(context.Background(), "en")))
}
