package environment

import (
	"context"
	"log/slog"
	"net/http"
)

type contextKey struct{}

// WithContext adds environment to context
func WithContext(ctx context.Context, env Environment) context.Context {
	return context.WithValue(ctx, contextKey{}, env)
}

// FromContext retrieves environment from context. Missing values mean Development.
func FromContext(ctx context.Context) Environment {
	if env, ok := ctx.Value(contextKey{}).(Environment); ok {
		return env
	}
	return Development
}

// IsProduction checks if the environment from context is production.
func IsProduction(ctx context.Context) bool {
	return FromContext(ctx).IsProduction()
}

// Middleware attaches env to every request context.
func Middleware(env Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), env)))
		})
	}
}

// LoggerExtractor adds an "env" attribute when the context carries one.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if env, ok := ctx.Value(contextKey{}).(Environment); ok {
			return slog.String("env", string(env)), true
		}
		return slog.Attr{}, false
	}
}
