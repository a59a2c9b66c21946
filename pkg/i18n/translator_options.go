package i18n

import (
	"log/slog"
	"strings"
)

// Option is a function that configures a Translator instance.
type Option func(*Translator)

// WithDefaultLanguage sets the fallback language. It must have a catalog.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = strings.ToLower(lang)
		}
	}
}

// WithLogger provides a logger for missing translation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing translations
// are logged. Default is false to avoid excessive logging.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}
