// Package i18n loads YAML translation catalogs and negotiates the response
// language for each request.
//
// Catalog files are keyed by language at the top level; nested maps are
// flattened to dot separated keys:
//
//	sv:
//	  contact:
//	    success: "Tack, %{name}!"
//
// Translations use named placeholders in the form %{name}, filled from
// key/value argument pairs:
//
//	tr, err := i18n.NewFromFS(locales, "locales", i18n.WithDefaultLanguage("sv"))
//	msg := tr.T("sv", "contact.success", "name", "Anna") // "Tack, Anna!"
//
// A missing key falls back to the default language and then to the key
// itself, so a gap in a catalog never renders as an empty string.
//
// Middleware picks the language from the "lang" query parameter or the
// Accept-Language header, matched against the loaded catalogs with
// golang.org/x/text/language, and stores it in the request context for Tc.
package i18n
