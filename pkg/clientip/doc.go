// Package clientip resolves the originating client address of a request when
// the service runs behind a known number of reverse proxies.
//
// Forwarding headers are only as trustworthy as the proxy that wrote them, so
// the resolver does not pick "the first X-Forwarded-For entry". Instead it is
// told how many proxy hops sit in front of the service and walks the
// X-Forwarded-For chain from the right, skipping exactly that many trusted
// hops:
//
//	chain := X-Forwarded-For entries, then RemoteAddr
//	client := chain[len(chain)-1-hops] (clamped to the first entry)
//
// With zero hops the TCP peer address is used and forwarding headers are
// ignored, which is the only safe setting when the service is exposed
// directly.
//
// # Usage
//
//	resolver := clientip.NewResolver(1) // behind one reverse proxy
//	r.Use(resolver.Middleware)
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    ip := clientip.FromContext(r.Context())
//	}
//
// Resolution never fails. Unparseable entries yield an empty string so callers
// can decide how to proceed.
package clientip
