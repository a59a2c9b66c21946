package binder

import (
	"errors"
	"fmt"
	"net/http"
)

// DefaultMaxMemory is the in-memory cap for multipart forms.
const DefaultMaxMemory = 1 << 20 // 1 MB

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies. Only body values are bound, never the query
// string. Fields are matched by the `form` tag.
//
// Supported field types: string, []string, int kinds, bool and pointers to them.
//
// Example:
//
//	type ContactRequest struct {
//		Name    string `form:"name"`
//		Email   string `form:"email"`
//		Message string `form:"message"`
//	}
func Form(maxBytes int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		var values map[string][]string

		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			limitBody(r, maxBytes)
			if err := r.ParseForm(); err != nil {
				if isTooLarge(err) {
					return errors.Join(ErrRequestTooLarge, err)
				}
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			limitBody(r, maxBytes)
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				if isTooLarge(err) {
					return errors.Join(ErrRequestTooLarge, err)
				}
				return fmt.Errorf("%w: %v", ErrFailedToParseForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return ErrBinderNotApplicable
		}

		return bindToStruct(v, "form", values, ErrFailedToParseForm)
	}
}
