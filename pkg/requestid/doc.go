// Package requestid assigns every request an identifier, echoes it in the
// X-Request-ID response header and exposes it to handlers and log records.
//
// An incoming X-Request-ID is reused only when the middleware is told to trust
// it (the service sits behind a proxy that sets the header) and it is a short
// token of letters, digits, dashes and underscores. Otherwise a time-ordered
// UUID is generated.
package requestid
