package contact

import (
	"errors"

	"github.com/viggothorell/portfolio/pkg/email"
	"github.com/viggothorell/portfolio/pkg/validator"
)

var (
	// ErrValidation reports a submission that fails the contact rules.
	ErrValidation = validator.ErrValidationFailed
	// ErrRateLimited reports a client that exceeded the submission window.
	ErrRateLimited = errors.New("contact: too many submissions")
	// ErrMailerUnavailable reports that no mail transport is configured.
	ErrMailerUnavailable = errors.New("contact: mailer unavailable")
	// ErrTransport reports a failed send attempt.
	ErrTransport = email.ErrFailedToSendEmail
	// ErrInvalidRecipient reports a recipient address that cannot be used.
	ErrInvalidRecipient = errors.New("contact: invalid recipient address")
)
