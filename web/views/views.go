package views

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/viggothorell/portfolio/handler"
	"github.com/viggothorell/portfolio/modules/contact"
	"github.com/viggothorell/portfolio/modules/pages"
	"github.com/viggothorell/portfolio/pkg/i18n"
	"github.com/viggothorell/portfolio/pkg/sanitizer"
)

//go:embed templates
var templatesFS embed.FS

// DefaultDatastarURL is the Datastar client bundle loaded by the layout.
const DefaultDatastarURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

const errorPage = "error"

// Renderer turns the embedded html/template files into templ components.
// Each page is parsed into its own set with the layout and partials, so
// every page can define its own "content" block.
type Renderer struct {
	pages       map[string]*template.Template
	partials    *template.Template
	translator  *i18n.Translator
	siteURL     string
	datastarURL string
	now         func() time.Time
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSiteURL sets the public origin used for canonical links.
func WithSiteURL(u string) Option {
	return func(r *Renderer) {
		r.siteURL = strings.TrimRight(u, "/")
	}
}

// WithDatastarURL overrides where the Datastar client is loaded from.
func WithDatastarURL(u string) Option {
	return func(r *Renderer) {
		if u != "" {
			r.datastarURL = u
		}
	}
}

// WithClock replaces the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		r.now = now
	}
}

// New parses every template up front so a broken template fails at startup.
func New(translator *i18n.Translator, opts ...Option) (*Renderer, error) {
	r := &Renderer{
		pages:       make(map[string]*template.Template),
		translator:  translator,
		datastarURL: DefaultDatastarURL,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	base, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	r.partials = base

	names := []string{errorPage}
	for _, p := range pages.Routes() {
		names = append(names, p.Name)
	}
	for _, name := range names {
		set, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := set.ParseFS(templatesFS, "templates/pages/"+name+".html"); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = set
	}

	return r, nil
}

// Page renders a static page inside the layout.
func (r *Renderer) Page(p pages.PageParams) templ.Component {
	return r.layout(p.Page.Name, p.Page.Path, func(d *viewData) {
		d.TitleKey = p.Page.TitleKey
		d.DescriptionKey = p.Page.DescriptionKey
	})
}

// ContactPage renders the contact page with the given form state.
func (r *Renderer) ContactPage(p contact.ContactPageParams) templ.Component {
	page, _ := pages.Lookup(pages.ContactPath)
	return r.layout(page.Name, page.Path, func(d *viewData) {
		d.TitleKey = page.TitleKey
		d.DescriptionKey = page.DescriptionKey
		d.Form = p.Form
	})
}

// ContactForm renders only the #contact-form element.
func (r *Renderer) ContactForm(p contact.ContactFormParams) templ.Component {
	return r.partial("contact-form", func(d *viewData) {
		d.Form = p.Form
	})
}

// ErrorPage renders the full error page.
func (r *Renderer) ErrorPage(p handler.ErrorPageParams) templ.Component {
	return r.layout(errorPage, "/", func(d *viewData) {
		d.TitleKey = "error.heading"
		d.DescriptionKey = p.MessageKey
		d.Error = p
	})
}

// ErrorToast renders the notification patched into #toast-container.
func (r *Renderer) ErrorToast(p handler.ErrorPageParams) templ.Component {
	return r.partial("error-toast", func(d *viewData) {
		d.Error = p
	})
}

// ContactEmail renders the HTML body of a contact notification. The
// message is escaped before its line breaks become <br> tags.
func (r *Renderer) ContactEmail(s contact.Submission) templ.Component {
	return contactEmail(s.Name, s.Email, sanitizer.LineBreaksToHTML(s.Message))
}

// ContactViews returns the contact module views.
func (r *Renderer) ContactViews() *contact.Views {
	return &contact.Views{
		ContactPage: r.ContactPage,
		ContactForm: r.ContactForm,
	}
}

// PageViews returns the pages module views.
func (r *Renderer) PageViews() *pages.Views {
	return &pages.Views{Page: r.Page}
}

// ErrorHandlerConfig returns the error views for handler.NewErrorHandler.
func (r *Renderer) ErrorHandlerConfig() handler.ErrorHandlerConfig {
	return handler.ErrorHandlerConfig{
		ErrorPage:  r.ErrorPage,
		ErrorToast: r.ErrorToast,
	}
}

func (r *Renderer) layout(page, path string, fill func(*viewData)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		set, ok := r.pages[page]
		if !ok {
			return fmt.Errorf("unknown page %q", page)
		}
		d := r.data(ctx, path)
		fill(&d)
		return templ.FromGoHTML(set.Lookup("layout"), d).Render(ctx, w)
	})
}

func (r *Renderer) partial(name string, fill func(*viewData)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		d := r.data(ctx, "")
		fill(&d)
		return templ.FromGoHTML(r.partials.Lookup(name), d).Render(ctx, w)
	})
}
