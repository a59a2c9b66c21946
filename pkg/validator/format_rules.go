package validator

import (
	"regexp"
	"strings"
)

// Deliberately permissive: one @, no whitespace, a dot in the domain part.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email validates a local@domain.tld shaped address that contains no line breaks,
// which keeps it safe to use as a mail header value.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.ContainsAny(value, "\r\n") {
				return false
			}
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// IsEmail reports whether value passes the Email rule.
func IsEmail(value string) bool {
	return Email("", value).Check()
}
