package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// JSON creates a binder for application/json bodies capped at maxBytes.
// Unknown fields are ignored because Datastar posts every page signal.
//
// Example:
//
//	r.Post("/send-email", handler.Wrap(submit,
//		handler.WithBinders[handler.Context, ContactRequest](binder.JSON(25<<10)),
//	))
func JSON(maxBytes int64) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/json" {
			return ErrBinderNotApplicable
		}

		limitBody(r, maxBytes)
		body, err := io.ReadAll(r.Body)
		if err != nil {
			if isTooLarge(err) {
				return errors.Join(ErrRequestTooLarge, err)
			}
			return fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return fmt.Errorf("%w: empty body", ErrFailedToParseJSON)
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		if err := decoder.Decode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		if decoder.More() {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
		}

		return nil
	}
}
