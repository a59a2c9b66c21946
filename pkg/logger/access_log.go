package logger

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// AccessLog implements chi's middleware.LogFormatter on top of slog.
type AccessLog struct {
	log *slog.Logger
}

// NewAccessLog returns a formatter for middleware.RequestLogger.
func NewAccessLog(log *slog.Logger) *AccessLog {
	return &AccessLog{log: log}
}

// NewLogEntry implements middleware.LogFormatter.
func (a *AccessLog) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &accessLogEntry{
		log: a.log,
		ctx: r.Context(),
		attrs: []slog.Attr{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("proto", r.Proto),
		},
	}
}

type accessLogEntry struct {
	log   *slog.Logger
	ctx   context.Context
	attrs []slog.Attr
}

// Write logs the finished request; 5xx at error level, 4xx at warn.
func (e *accessLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ any) {
	level := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		level = slog.LevelError
	case status >= http.StatusBadRequest:
		level = slog.LevelWarn
	}

	attrs := append(e.attrs, Status(status), slog.Int("bytes", bytes), Duration(elapsed))
	e.log.LogAttrs(e.ctx, level, "request completed", attrs...)
}

// Panic logs a recovered panic with its stack.
func (e *accessLogEntry) Panic(v any, stack []byte) {
	e.log.LogAttrs(e.ctx, slog.LevelError, "request panicked",
		append(e.attrs, slog.String("panic", fmt.Sprint(v)), slog.String("stack", string(stack)))...)
}
