package validator

import "errors"

var (
	// ErrValidationFailed is the sentinel matched by ValidationErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")
)
