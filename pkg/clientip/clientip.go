package clientip

import (
	"net"
	"net/http"
	"strings"
)

// HeaderForwardedFor is the header carrying the proxy chain.
const HeaderForwardedFor = "X-Forwarded-For"

// Resolver extracts client addresses trusting a fixed number of proxy hops.
type Resolver struct {
	hops int
}

// NewResolver creates a resolver trusting the given number of proxies.
// Negative values are treated as zero.
func NewResolver(trustedHops int) *Resolver {
	return &Resolver{hops: max(trustedHops, 0)}
}

// TrustedHops returns the configured hop count.
func (res *Resolver) TrustedHops() int {
	return res.hops
}

// IP returns the normalized client address of r.
func (res *Resolver) IP(r *http.Request) string {
	remote := remoteIP(r.RemoteAddr)
	if res.hops == 0 {
		return remote
	}

	var chain []string
	for _, header := range r.Header.Values(HeaderForwardedFor) {
		for entry := range strings.SplitSeq(header, ",") {
			if entry = strings.TrimSpace(entry); entry != "" {
				chain = append(chain, entry)
			}
		}
	}
	chain = append(chain, remote)

	idx := max(len(chain)-1-res.hops, 0)
	return parseIP(chain[idx])
}

func remoteIP(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return parseIP(addr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an address. Returns "" when invalid.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	// Some proxies append the port or wrap IPv6 in brackets.
	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")

	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
