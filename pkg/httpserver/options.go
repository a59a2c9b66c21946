package httpserver

import (
	"io"
	"log/slog"
)

// Option configures the HTTP server.
type Option func(*Server)

// WithLogger supplies the logger for lifecycle messages and http.Server errors.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStartHook registers a callback that runs once the listener is bound.
func WithStartHook(h func(addr string)) Option {
	return func(s *Server) {
		if h != nil {
			s.startHooks = append(s.startHooks, h)
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
