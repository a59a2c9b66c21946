package handler

import (
	"errors"
	"net/http"

	"github.com/viggothorell/portfolio/pkg/binder"
	"github.com/viggothorell/portfolio/pkg/validator"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")
	// ErrPanic marks errors produced from a recovered panic.
	ErrPanic = errors.New("handler panicked")
)

// Predefined HTTP errors. Key is a translation key for the user-facing message.
var (
	ErrBadRequest       = HTTPError{Code: http.StatusBadRequest, Key: "error.bad_request"}
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "error.not_found"}
	ErrMethodNotAllowed = HTTPError{Code: http.StatusMethodNotAllowed, Key: "error.method_not_allowed"}
	ErrEntityTooLarge   = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "error.too_large"}
	ErrUnsupportedMedia = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "error.unsupported_media"}
	ErrInternal         = HTTPError{Code: http.StatusInternalServerError, Key: "error.internal"}
)

// HTTPError carries an HTTP status and a translation key for the
// user-facing message. Attach a cause with fmt.Errorf("%w: %w", ...) or
// errors.Join so the value itself stays comparable.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// Classify maps an error to the HTTPError that describes it to the client.
func Classify(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, binder.ErrRequestTooLarge):
		return ErrEntityTooLarge
	case errors.Is(err, binder.ErrUnsupportedMediaType):
		return ErrUnsupportedMedia
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, validator.ErrValidationFailed):
		return ErrBadRequest
	default:
		return ErrInternal
	}
}

// StatusCode returns the HTTP status for err.
func StatusCode(err error) int {
	return Classify(err).Code
}
