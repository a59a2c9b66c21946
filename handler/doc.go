// Package handler provides type-safe HTTP request handling on top of net/http.
//
// A handler is a generic function that receives a bound request value and
// returns a Response. Wrap turns it into an http.HandlerFunc, running the
// configured binders first and routing every failure through one
// ErrorHandler:
//
//	type SubmitRequest struct {
//		Name string `form:"name" json:"name"`
//	}
//
//	func submit(ctx handler.Context, req SubmitRequest) handler.Response {
//		return handler.Templ(views.Thanks(req.Name))
//	}
//
//	r.Post("/send", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, SubmitRequest](binder.Form(1<<14), binder.JSON(1<<14)),
//		handler.WithErrorHandler[handler.Context, SubmitRequest](errorHandler),
//	))
//
// # Responses
//
// Templ renders a templ component as a full HTML page. TemplPartial renders a
// smaller fragment for Datastar requests and the full page otherwise, so the
// same handler serves progressive enhancement and plain form posts:
//
//	handler.TemplPartial(views.Form(m), views.Page(m),
//		handler.WithTarget("#contact-form"),
//		handler.WithStatus(http.StatusTooManyRequests),
//		handler.WithHeader("Retry-After", "900"),
//	)
//
// Blob writes raw bytes such as sitemap.xml.
//
// # Errors
//
// HTTPError pairs a status code with a translation key. Classify maps binder
// and validation errors to the matching HTTPError. NewErrorHandler renders
// the site's error page and includes the raw error text only outside
// production. Recoverer turns panics into the same 500 page.
package handler
