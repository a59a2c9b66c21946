// Package contact implements the site's contact form.
//
// A submission passes through Sanitize, Validate, the rate limiter and the
// Mailer before the form is rendered again with a status banner:
//
//	400  the submission failed validation
//	429  the client exceeded its window, with Retry-After in seconds
//	503  no mail transport is configured
//	500  the transport failed
//	200  the message was sent and the form is cleared
//
// Plain form posts receive the whole contact page. Datastar requests receive
// the same state as a patch of the #contact-form element.
package contact
