package pages

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/viggothorell/portfolio/handler"
)

// PageParams contains data for rendering a static page.
type PageParams struct {
	Page Page
}

// Views renders the static pages.
type Views struct {
	Page func(PageParams) templ.Component
}

// Service serves the static pages, sitemap.xml and robots.txt.
type Service struct {
	siteURL      string
	views        *Views
	errorHandler handler.ErrorHandler[handler.Context]
	sitemap      []byte
	robots       []byte
}

// NewService builds the page service. The sitemap is rendered once here so
// a broken route table fails at startup.
func NewService(siteURL string, views *Views, errorHandler handler.ErrorHandler[handler.Context]) (*Service, error) {
	sitemap, err := Sitemap(siteURL)
	if err != nil {
		return nil, err
	}
	return &Service{
		siteURL:      siteURL,
		views:        views,
		errorHandler: errorHandler,
		sitemap:      sitemap,
		robots:       Robots(siteURL),
	}, nil
}

// Handle returns a router with one GET route per local page plus
// /sitemap.xml and /robots.txt.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	if s.errorHandler != nil {
		r.NotFound(handler.NotFound(s.errorHandler))
		r.MethodNotAllowed(handler.MethodNotAllowed(s.errorHandler))
	}

	for _, p := range routes {
		if p.External {
			continue
		}
		r.Get(p.Path, handler.Wrap(s.page(p),
			handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		))
	}

	r.Get("/sitemap.xml", handler.Wrap(s.blob("application/xml; charset=utf-8", s.sitemap),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))
	r.Get("/robots.txt", handler.Wrap(s.blob("text/plain; charset=utf-8", s.robots),
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	return r
}

func (s *Service) page(p Page) handler.HandlerFunc[handler.Context, struct{}] {
	return func(_ handler.Context, _ struct{}) handler.Response {
		return handler.Templ(s.views.Page(PageParams{Page: p}))
	}
}

func (s *Service) blob(contentType string, body []byte) handler.HandlerFunc[handler.Context, struct{}] {
	return func(_ handler.Context, _ struct{}) handler.Response {
		return handler.Blob(contentType, "public, max-age=3600", body)
	}
}
