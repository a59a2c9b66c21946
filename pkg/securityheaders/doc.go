// Package securityheaders sets browser security headers on every response:
// Content-Security-Policy, Referrer-Policy, X-Frame-Options,
// X-Content-Type-Options and a few cross-origin isolation headers.
//
//	r.Use(securityheaders.Middleware(
//		securityheaders.WithPolicy(securityheaders.DefaultPolicy().
//			With("script-src", "https://cdn.jsdelivr.net", "'unsafe-eval'")),
//	))
package securityheaders
