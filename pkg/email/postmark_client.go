package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"

	"github.com/viggothorell/portfolio/pkg/validator"
)

type postmarkClient struct {
	client *postmark.Client
	from   string
}

// NewPostmarkClient creates a Postmark-backed email sender.
// The account token is optional; it is only used for administrative calls.
func NewPostmarkClient(cfg Config) (EmailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("%w: PostmarkServerToken is required", ErrInvalidConfig)
	}
	if cfg.SenderAddress() == "" {
		return nil, fmt.Errorf("%w: SenderEmail is required", ErrInvalidConfig)
	}
	if !validator.IsEmail(cfg.SenderAddress()) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	return &postmarkClient{
		client: postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:   cfg.From(),
	}, nil
}

// SendEmail implements EmailSender using Postmark's transactional API.
// Tracking stays off; the messages are personal correspondence.
func (c *postmarkClient) SendEmail(ctx context.Context, params SendEmailParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:     c.from,
		ReplyTo:  params.ReplyTo,
		To:       params.SendTo,
		Subject:  params.Subject,
		Tag:      params.Tag,
		TextBody: params.BodyText,
		HTMLBody: params.BodyHTML,
	})
	if err != nil {
		return errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
