package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no option overrides it.
const DefaultLanguage = "sv"

// Translator resolves translation keys against loaded catalogs.
// It is immutable after construction and safe for concurrent use.
type Translator struct {
	catalogs       map[string]map[string]string
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger

	langs   []string
	matcher language.Matcher
}

// New creates a Translator from already parsed catalogs.
func New(catalogs map[string]map[string]string, opts ...Option) (*Translator, error) {
	if len(catalogs) == 0 {
		return nil, ErrNoCatalogs
	}

	t := &Translator{
		catalogs:    catalogs,
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}

	if _, ok := catalogs[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageAbsent, t.defaultLang)
	}

	// The matcher falls back to its first tag, so the default goes first.
	t.langs = []string{t.defaultLang}
	for _, lang := range slices.Sorted(maps.Keys(catalogs)) {
		if lang != t.defaultLang {
			t.langs = append(t.langs, lang)
		}
	}

	tags := make([]language.Tag, 0, len(t.langs))
	for _, lang := range t.langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %v", ErrInvalidCatalog, lang, err)
		}
		tags = append(tags, tag)
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// NewFromFS loads every .yaml or .yml file in dir and merges them per language.
func NewFromFS(fsys fs.FS, dir string, opts ...Option) (*Translator, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}

	catalogs := make(map[string]map[string]string)
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadCatalog, err)
		}

		parsed, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}

		for lang, entries := range parsed {
			if catalogs[lang] == nil {
				catalogs[lang] = make(map[string]string, len(entries))
			}
			maps.Copy(catalogs[lang], entries)
		}
	}

	return New(catalogs, opts...)
}

// Languages returns the supported languages, default first.
func (t *Translator) Languages() []string {
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Supports reports whether a catalog exists for lang.
func (t *Translator) Supports(lang string) bool {
	_, ok := t.catalogs[strings.ToLower(lang)]
	return ok
}

// Has reports whether lang has its own entry for key.
func (t *Translator) Has(lang, key string) bool {
	_, ok := t.catalogs[lang][key]
	return ok
}

// T translates key for lang, substituting %{name} placeholders from key/value args.
// Unknown keys fall back to the default language, then to the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	tmpl, ok := t.catalogs[lang][key]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		tmpl, ok = t.catalogs[t.defaultLang][key]
		if !ok {
			tmpl = key
		}
	}
	return interpolate(tmpl, args)
}

// Tc translates key for the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(t.contextLanguage(ctx), key, args...)
}

// Negotiate picks the best supported language for an Accept-Language header value.
func (t *Translator) Negotiate(acceptLanguage string) string {
	if acceptLanguage == "" {
		return t.defaultLang
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.langs[idx]
}

func (t *Translator) contextLanguage(ctx context.Context) string {
	if lang := Locale(ctx); lang != "" {
		return lang
	}
	return t.defaultLang
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} placeholders; unknown names are left as is.
func interpolate(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
