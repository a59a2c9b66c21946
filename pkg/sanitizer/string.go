package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Compose chains transforms left to right into a reusable pipeline.
func Compose(transforms ...func(string) string) func(string) string {
	return func(s string) string {
		for _, transform := range transforms {
			s = transform(s)
		}
		return s
	}
}

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace replaces every run of whitespace, line breaks included,
// with a single space and trims both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeLineBreaks converts CRLF and lone CR line endings to LF.
func NormalizeLineBreaks(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// NormalizeUnicode returns the NFC form of s so that a letter typed as base
// character plus combining mark compares and counts like its precomposed form.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// MaxLength truncates s to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	return string(runes[:maxLen])
}
