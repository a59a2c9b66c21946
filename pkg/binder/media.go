package binder

import (
	"errors"
	"mime"
	"net/http"
)

// mediaType returns the request media type without parameters.
func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}

// limitBody caps the request body at maxBytes. A non-positive limit leaves
// the body untouched.
func limitBody(r *http.Request, maxBytes int64) {
	if maxBytes > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(nil, r.Body, maxBytes)
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
