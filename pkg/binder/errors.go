package binder

import "errors"

var (
	// ErrBinderNotApplicable signals that the request content type belongs to
	// another binder. handler.Wrap skips binders returning it.
	ErrBinderNotApplicable  = errors.New("binder not applicable to request")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseForm    = errors.New("failed to parse form data")
	ErrRequestTooLarge      = errors.New("request body too large")
)
