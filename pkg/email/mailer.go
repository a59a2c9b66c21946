package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/viggothorell/portfolio/pkg/validator"
)

// EmailSender represents an interface for sending emails.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// Verifier is implemented by transports that can check connectivity up front.
type Verifier interface {
	Verify(ctx context.Context) error
}

// SendEmailParams represents the parameters for sending an email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`            // Email address of the recipient
	ReplyTo  string `json:"reply_to,omitempty"` // Optional Reply-To address
	Subject  string `json:"subject"`            // Subject of the email
	BodyText string `json:"body_text"`          // Plain text body
	BodyHTML string `json:"body_html"`          // HTML body
	Tag      string `json:"tag,omitempty"`      // Optional
}

// Validate checks the parameters before any transport is involved.
// Header values must be single-line to rule out header injection.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.Email("send_to", p.SendTo),
		validator.When(p.ReplyTo != "", validator.Email("reply_to", p.ReplyTo)),
		validator.LengthBetween("subject", p.Subject, 1, 998),
		validator.SingleLine("subject", p.Subject),
		validator.SingleLine("tag", p.Tag),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	if strings.TrimSpace(p.BodyText) == "" && strings.TrimSpace(p.BodyHTML) == "" {
		return fmt.Errorf("%w: message body is required", ErrInvalidParams)
	}
	return nil
}
