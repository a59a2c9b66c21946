package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// LengthBetween validates that the trimmed value has between min and max runes.
func LengthBetween(field, value string, min, max int) Rule {
	return Rule{
		Check: func() bool {
			n := utf8.RuneCountInString(strings.TrimSpace(value))
			return n >= min && n <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %d and %d characters long", min, max),
			TranslationKey: "validation.length_between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}

// Matches validates the value against a precompiled pattern.
func Matches(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "has an invalid format",
			TranslationKey: "validation.format",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// SingleLine validates that the value contains no CR or LF characters.
func SingleLine(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsAny(value, "\r\n")
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain line breaks",
			TranslationKey: "validation.single_line",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// WithKey overrides the error of a rule, keeping its check.
// Useful when several low-level checks should surface as one user-facing message.
func WithKey(rule Rule, key, message string) Rule {
	rule.Error.TranslationKey = key
	rule.Error.Message = message
	return rule
}
