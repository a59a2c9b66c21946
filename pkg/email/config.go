package email

import (
	"net/mail"
	"time"
)

// Transport names accepted by Config.Transport.
const (
	TransportSMTP     = "smtp"
	TransportPostmark = "postmark"
	TransportDev      = "dev"
)

// Config holds email service configuration.
// Credentials are optional so the site can start without mail; New reports
// ErrNotConfigured in that case.
type Config struct {
	Transport   string `env:"MAIL_TRANSPORT" envDefault:"smtp"`
	SenderEmail string `env:"SENDER_EMAIL"` // defaults to SMTPUser
	SenderName  string `env:"SENDER_NAME" envDefault:"Viggo Thorell Portfolio"`

	SMTPHost    string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort    int           `env:"SMTP_PORT" envDefault:"465"`
	SMTPSecure  *bool         `env:"SMTP_SECURE"` // implicit TLS; defaults to SMTPPort == 465
	SMTPUser    string        `env:"SMTP_USER"`
	SMTPPass    string        `env:"SMTP_PASS"`
	SMTPTimeout time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`

	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	DevDir string `env:"MAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// Secure reports whether SMTP uses implicit TLS.
func (c Config) Secure() bool {
	if c.SMTPSecure != nil {
		return *c.SMTPSecure
	}
	return c.SMTPPort == 465
}

// SenderAddress returns the envelope sender, falling back to the SMTP user.
func (c Config) SenderAddress() string {
	if c.SenderEmail != "" {
		return c.SenderEmail
	}
	return c.SMTPUser
}

// From returns the formatted From header value, e.g. "Name" <addr>.
func (c Config) From() string {
	addr := c.SenderAddress()
	if c.SenderName == "" {
		return addr
	}
	return (&mail.Address{Name: c.SenderName, Address: addr}).String()
}
