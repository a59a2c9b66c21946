package sanitizer

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// StripHTML removes tag-shaped substrings and any stray closing angle bracket,
// returning plain text that contains neither '<' nor '>'.
//
// This is a best-effort regular expression strip, not an HTML parser: entities
// are left untouched and text between tags is kept.
func StripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	s = htmlTagRegex.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, ">", "")
}

// EscapeHTML escapes & < > " and ' for interpolation into HTML markup.
// It is not idempotent: escaping twice escapes the ampersands of the first pass.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// LineBreaksToHTML escapes s and turns every LF into a <br> tag.
func LineBreaksToHTML(s string) string {
	return strings.ReplaceAll(EscapeHTML(NormalizeLineBreaks(s)), "\n", "<br>")
}
