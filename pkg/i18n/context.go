package i18n

import "context"

type localeContextKey struct{}

// WithLocale stores the negotiated language in ctx.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, lang)
}

// Locale returns the language stored in ctx, or "" when none was set.
func Locale(ctx context.Context) string {
	lang, _ := ctx.Value(localeContextKey{}).(string)
	return lang
}
