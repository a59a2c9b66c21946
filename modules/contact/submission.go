package contact

import (
	"strings"

	"github.com/viggothorell/portfolio/pkg/sanitizer"
)

// Submission is the contact form payload. A missing field binds to "".
type Submission struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
}

var (
	sanitizeName = sanitizer.Compose(
		sanitizer.NormalizeUnicode,
		sanitizer.StripHTML,
		sanitizer.CollapseWhitespace,
	)
	sanitizeMessage = sanitizer.Compose(
		sanitizer.NormalizeUnicode,
		sanitizer.StripHTML,
		sanitizer.NormalizeLineBreaks,
		sanitizer.Trim,
	)
)

// Sanitize returns the cleaned submission. The name loses tags and every
// line break, the email is only trimmed so that embedded line breaks still
// fail validation, and the message keeps its lines with LF endings.
func Sanitize(s Submission) Submission {
	return Submission{
		Name:    sanitizeName(s.Name),
		Email:   strings.TrimSpace(sanitizer.NormalizeUnicode(s.Email)),
		Message: sanitizeMessage(s.Message),
	}
}
