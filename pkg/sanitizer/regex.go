package sanitizer

import "regexp"

var (
	// An unterminated tag is consumed up to the end of the input.
	htmlTagRegex = regexp.MustCompile(`<[^>]*>?`)
)
