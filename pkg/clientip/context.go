package clientip

import "context"

type clientIPContextKey struct{}

// WithIP stores the resolved client address in ctx.
func WithIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPContextKey{}, ip)
}

// FromContext returns the client address stored by the middleware, or "".
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPContextKey{}).(string)
	return ip
}
