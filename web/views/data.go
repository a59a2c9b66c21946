package views

import (
	"context"

	"github.com/viggothorell/portfolio/handler"
	"github.com/viggothorell/portfolio/modules/contact"
	"github.com/viggothorell/portfolio/modules/pages"
	"github.com/viggothorell/portfolio/pkg/i18n"
)

type navItem struct {
	Path     string
	LabelKey string
	Current  bool
}

// viewData is the value every template executes against.
type viewData struct {
	Lang           string
	AltLang        string
	AltLangURL     string
	TitleKey       string
	DescriptionKey string
	CanonicalURL   string
	DatastarURL    string
	Year           int
	Nav            []navItem
	Form           contact.FormState
	Error          handler.ErrorPageParams

	translator *i18n.Translator
}

// T translates key for the page language.
func (d viewData) T(key string, args ...string) string {
	return d.translator.T(d.Lang, key, args...)
}

func (r *Renderer) data(ctx context.Context, path string) viewData {
	lang := i18n.Locale(ctx)
	if lang == "" {
		lang = r.translator.DefaultLanguage()
	}

	alt := r.translator.DefaultLanguage()
	for _, l := range r.translator.Languages() {
		if l != lang {
			alt = l
			break
		}
	}

	d := viewData{
		Lang:        lang,
		AltLang:     alt,
		AltLangURL:  path + "?" + i18n.QueryParam + "=" + alt,
		DatastarURL: r.datastarURL,
		Year:        r.now().Year(),
		Form:        contact.EmptyForm(),
		translator:  r.translator,
	}
	if path == "" {
		return d
	}
	if r.siteURL != "" {
		d.CanonicalURL = r.siteURL + path
	}
	for _, p := range pages.Routes() {
		d.Nav = append(d.Nav, navItem{Path: p.Path, LabelKey: p.NavKey, Current: p.Path == path})
	}
	return d
}
