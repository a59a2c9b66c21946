// Package sanitizer provides the pure string transforms applied to user input
// before it is validated, echoed back into a form or interpolated into an
// outgoing email.
//
// The helpers fall into two groups:
//
//   - Text – whitespace collapsing, line break normalisation, Unicode
//     normalisation and rune-safe truncation.
//
//   - Security – best-effort tag stripping and HTML escaping for safe
//     interpolation into markup.
//
// Transforms can be chained with Compose:
//
//	cleanName := sanitizer.Compose(
//	    sanitizer.StripHTML,
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.CollapseWhitespace,
//	)
//
//	name := cleanName("  <b>Anna</b>\n Svensson ") // "Anna Svensson"
//
// None of the helpers returns an error and none holds state, so they are safe
// for concurrent use.
package sanitizer
