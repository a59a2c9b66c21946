package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"
)

//go:embed static
var staticFS embed.FS

// StaticPrefix is the URL prefix static assets are served under.
const StaticPrefix = "/static/"

// Cache-Control values for static assets.
const (
	CacheLong       = "public, max-age=31536000, immutable"
	CacheMedium     = "public, max-age=2592000, immutable"
	CacheRevalidate = "public, max-age=0, must-revalidate"
)

// Static serves the embedded assets below StaticPrefix. In production
// stylesheets and scripts are cached for 30 days and everything else for a
// year. Outside production every response must be revalidated.
func Static(production bool) http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	files := http.StripPrefix(StaticPrefix, http.FileServerFS(sub))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", CacheControl(r.URL.Path, production))
		files.ServeHTTP(w, r)
	})
}

// CacheControl returns the Cache-Control value for an asset path.
func CacheControl(name string, production bool) string {
	if !production {
		return CacheRevalidate
	}
	switch strings.ToLower(path.Ext(name)) {
	case ".css", ".js":
		return CacheMedium
	default:
		return CacheLong
	}
}
