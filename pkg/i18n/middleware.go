package i18n

import (
	"net/http"
	"strings"
)

// QueryParam lets a visitor override the negotiated language.
const QueryParam = "lang"

// Middleware negotiates the request language and stores it in the context.
// The response carries Content-Language and varies on Accept-Language.
func (t *Translator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lang := t.Negotiate(r.Header.Get("Accept-Language"))
		if q := strings.ToLower(r.URL.Query().Get(QueryParam)); q != "" && t.Supports(q) {
			lang = q
		}

		w.Header().Set("Content-Language", lang)
		w.Header().Add("Vary", "Accept-Language")

		next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), lang)))
	})
}
