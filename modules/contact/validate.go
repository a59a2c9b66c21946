package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/viggothorell/portfolio/pkg/sanitizer"
	"github.com/viggothorell/portfolio/pkg/validator"
)

const (
	MinNameLength    = 2
	MaxNameLength    = 80
	MinMessageLength = 5
	MaxMessageLength = 2000
)

// Translation keys of the contact rules, in rule order.
const (
	KeyNameLength    = "validation.name.length"
	KeyNameCharset   = "validation.name.charset"
	KeyEmailInvalid  = "validation.email.invalid"
	KeyMessageLength = "validation.message.length"
)

// Letters, combining marks, whitespace, apostrophe, hyphen and period.
var nameRegex = regexp.MustCompile(`^[\p{L}\p{M}\s.'-]+$`)

// Validate checks a sanitized submission and reports every failing rule in
// order as validator.ValidationErrors. The charset rule only runs for a name
// of valid length, so an out of range name reports the length error alone.
func Validate(s Submission) error {
	name := strings.TrimSpace(s.Name)
	nameLen := utf8.RuneCountInString(name)
	message := strings.TrimSpace(sanitizer.StripHTML(s.Message))

	return validator.Apply(
		validator.WithKey(
			validator.LengthBetween("name", name, MinNameLength, MaxNameLength),
			KeyNameLength, "must be between 2 and 80 characters long",
		),
		validator.When(nameLen >= MinNameLength && nameLen <= MaxNameLength, validator.WithKey(
			validator.Matches("name", name, nameRegex),
			KeyNameCharset, "may only contain letters, spaces, apostrophes, hyphens and periods",
		)),
		validator.WithKey(
			validator.Email("email", s.Email),
			KeyEmailInvalid, "must be a valid email address",
		),
		validator.WithKey(
			validator.LengthBetween("message", message, MinMessageLength, MaxMessageLength),
			KeyMessageLength, "must be between 5 and 2000 characters long",
		),
	)
}
