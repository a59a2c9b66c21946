package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/a-h/templ"

	"github.com/viggothorell/portfolio/pkg/email"
	"github.com/viggothorell/portfolio/pkg/email/templates"
	"github.com/viggothorell/portfolio/pkg/sanitizer"
	"github.com/viggothorell/portfolio/pkg/validator"
)

const (
	// DefaultSendTimeout bounds one send attempt.
	DefaultSendTimeout = 10 * time.Second

	subjectFormat = "Nytt meddelande från %s"
	textFormat    = "Namn: %s\nE-post: %s\n\n%s"
	htmlFormat    = "<p><strong>Namn:</strong> %s</p>\n" +
		"<p><strong>E-post:</strong> %s</p>\n" +
		"<p><strong>Meddelande:</strong><br>%s</p>"

	mailTag = "contact-form"
)

// Mailer relays contact submissions to the site owner. It is either ready,
// holding a transport, or unavailable, which is decided once at startup.
type Mailer struct {
	sender    email.EmailSender
	recipient string
	timeout   time.Duration
	html      func(Submission) templ.Component
	cause     error
}

// MailerOption configures a ready Mailer.
type MailerOption func(*Mailer)

// WithSendTimeout bounds each send attempt. Non-positive values keep the default.
func WithSendTimeout(d time.Duration) MailerOption {
	return func(m *Mailer) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithHTMLTemplate renders the HTML body with tpl instead of the built-in markup.
// The component receives the sanitized, unescaped submission and must escape it.
func WithHTMLTemplate(tpl func(Submission) templ.Component) MailerOption {
	return func(m *Mailer) {
		if tpl != nil {
			m.html = tpl
		}
	}
}

// NewMailer returns a ready Mailer sending to recipient through sender.
func NewMailer(sender email.EmailSender, recipient string, opts ...MailerOption) (*Mailer, error) {
	if sender == nil {
		return nil, fmt.Errorf("%w: nil sender", ErrMailerUnavailable)
	}
	if !validator.IsEmail(recipient) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRecipient, recipient)
	}

	m := &Mailer{
		sender:    sender,
		recipient: recipient,
		timeout:   DefaultSendTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// UnavailableMailer returns a Mailer whose Send always fails with
// ErrMailerUnavailable without touching the network. cause is kept for logs.
func UnavailableMailer(cause error) *Mailer {
	return &Mailer{cause: cause}
}

// Available reports whether the mailer holds a transport.
func (m *Mailer) Available() bool {
	return m != nil && m.sender != nil
}

// Cause returns why the mailer is unavailable.
func (m *Mailer) Cause() error {
	if m == nil {
		return nil
	}
	return m.cause
}

// Send makes a single delivery attempt for a sanitized submission.
// The attempt is detached from the caller's cancellation so a client that
// disconnects does not abort a send already in flight; the send timeout
// still applies.
func (m *Mailer) Send(ctx context.Context, s Submission) error {
	if !m.Available() {
		return errors.Join(ErrMailerUnavailable, m.Cause())
	}

	params, err := m.message(ctx, s)
	if err != nil {
		return errors.Join(ErrTransport, err)
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.timeout)
	defer cancel()

	if err := m.sender.SendEmail(sendCtx, params); err != nil {
		return errors.Join(ErrTransport, err)
	}
	return nil
}

func (m *Mailer) message(ctx context.Context, s Submission) (email.SendEmailParams, error) {
	params := email.SendEmailParams{
		SendTo:   m.recipient,
		ReplyTo:  s.Email,
		Subject:  fmt.Sprintf(subjectFormat, s.Name),
		BodyText: fmt.Sprintf(textFormat, s.Name, s.Email, s.Message),
		Tag:      mailTag,
	}

	if m.html == nil {
		params.BodyHTML = fmt.Sprintf(htmlFormat,
			sanitizer.EscapeHTML(s.Name),
			sanitizer.EscapeHTML(s.Email),
			sanitizer.LineBreaksToHTML(s.Message),
		)
		return params, nil
	}

	body, err := templates.Render(ctx, m.html(s))
	if err != nil {
		return params, fmt.Errorf("render email body: %w", err)
	}
	params.BodyHTML = body
	return params, nil
}
