package email

import (
	"fmt"
	"strings"
)

// New returns the sender selected by cfg.Transport.
// It returns ErrNotConfigured when the transport has no credentials and
// ErrInvalidConfig when the configuration is present but unusable.
func New(cfg Config) (EmailSender, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case TransportSMTP, "":
		if cfg.SMTPUser == "" || cfg.SMTPPass == "" {
			return nil, fmt.Errorf("%w: SMTP_USER and SMTP_PASS are required", ErrNotConfigured)
		}
		return NewSMTPClient(cfg)
	case TransportPostmark:
		if cfg.PostmarkServerToken == "" {
			return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrNotConfigured)
		}
		return NewPostmarkClient(cfg)
	case TransportDev:
		return NewDevSender(cfg.DevDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransport, cfg.Transport)
	}
}
