package web

import (
	"embed"
	"io/fs"
)

//go:embed locales/*.yaml
var localesFS embed.FS

// Locales returns the translation catalogs, one YAML file per language.
func Locales() fs.FS {
	sub, err := fs.Sub(localesFS, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}
