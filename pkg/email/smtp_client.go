package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/viggothorell/portfolio/pkg/validator"
)

// SMTPClient delivers email through an authenticated SMTP relay.
type SMTPClient struct {
	client *mail.Client
	from   string
	sender string
}

// NewSMTPClient creates an SMTP sender. Port 465 implies implicit TLS unless
// SMTPSecure says otherwise; other ports require STARTTLS.
func NewSMTPClient(cfg Config) (*SMTPClient, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if cfg.SMTPPort <= 0 {
		return nil, fmt.Errorf("%w: SMTPPort must be positive", ErrInvalidConfig)
	}
	if !validator.IsEmail(cfg.SenderAddress()) {
		return nil, fmt.Errorf("%w: sender must be a valid email address", ErrInvalidConfig)
	}

	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPass),
	}
	if cfg.SMTPTimeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.SMTPTimeout))
	}
	if cfg.Secure() {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &SMTPClient{
		client: client,
		from:   cfg.From(),
		sender: cfg.SenderAddress(),
	}, nil
}

// SendEmail implements EmailSender. One connection per message, no retries.
func (c *SMTPClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	msg, err := c.message(params)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}

	if err := c.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return nil
}

// Verify dials the relay and authenticates without sending anything.
func (c *SMTPClient) Verify(ctx context.Context) error {
	if err := c.client.DialWithContext(ctx); err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	return c.client.Close()
}

func (c *SMTPClient) message(params SendEmailParams) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(c.from); err != nil {
		return nil, err
	}
	if err := msg.EnvelopeFrom(c.sender); err != nil {
		return nil, err
	}
	if err := msg.To(params.SendTo); err != nil {
		return nil, err
	}
	if params.ReplyTo != "" {
		if err := msg.ReplyTo(params.ReplyTo); err != nil {
			return nil, err
		}
	}
	msg.Subject(params.Subject)
	msg.SetDate()
	msg.SetMessageID()
	if params.Tag != "" {
		msg.SetGenHeader(mail.Header("X-Mail-Tag"), params.Tag)
	}

	switch {
	case params.BodyText != "" && params.BodyHTML != "":
		msg.SetBodyString(mail.TypeTextPlain, params.BodyText)
		msg.AddAlternativeString(mail.TypeTextHTML, params.BodyHTML)
	case params.BodyHTML != "":
		msg.SetBodyString(mail.TypeTextHTML, params.BodyHTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, params.BodyText)
	}

	return msg, nil
}
