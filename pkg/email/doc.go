// Package email provides a provider-agnostic interface for sending
// transactional email.
//
// The package is built around the EmailSender interface so the transport can
// be swapped by configuration without touching application code:
//   - SMTPClient delivers through an SMTP relay using github.com/wneessen/go-mail
//   - the Postmark client uses Postmark's transactional API
//   - DevSender writes every message to disk for local development
//
// New picks the implementation from Config.Transport and reports
// ErrNotConfigured when the selected transport lacks credentials, letting the
// caller decide whether to run without mail.
//
// # Usage
//
//	sender, err := email.New(cfg)
//	if errors.Is(err, email.ErrNotConfigured) {
//	    // run without mail
//	}
//
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "owner@example.com",
//	    ReplyTo:  "visitor@example.com",
//	    Subject:  "Hello",
//	    BodyText: "plain text",
//	    BodyHTML: "<p>html</p>",
//	})
//
// Parameters are validated before anything touches the network; every
// transport wraps delivery failures with ErrFailedToSendEmail so callers can
// use errors.Is regardless of provider.
package email
