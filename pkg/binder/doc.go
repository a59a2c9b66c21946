// Package binder binds HTTP request bodies to Go structs.
//
// Form handles urlencoded and multipart bodies through the `form` tag, JSON
// handles application/json through the standard `json` tag. Both cap the
// body size and report oversize bodies with ErrRequestTooLarge. A binder
// that does not understand the request content type returns
// ErrBinderNotApplicable so several binders can be chained:
//
//	handler.Wrap(submit, handler.WithBinders[handler.Context, Req](
//		binder.Form(maxBytes),
//		binder.JSON(maxBytes),
//	))
//
// Missing fields keep their zero value.
package binder
