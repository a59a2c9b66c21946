package i18n

import "errors"

var (
	ErrFailedToParseYAML     = errors.New("failed to parse YAML content")
	ErrFailedToReadCatalog   = errors.New("failed to read translation catalog")
	ErrNoCatalogs            = errors.New("no translation catalogs found")
	ErrInvalidCatalog        = errors.New("invalid translation catalog")
	ErrDefaultLanguageAbsent = errors.New("default language has no catalog")
)
