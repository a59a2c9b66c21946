package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/viggothorell/portfolio/pkg/logger"
)

// Check is a readiness dependency probe.
type Check func(ctx context.Context) error

// Liveness answers 200 "ALIVE" as long as the process serves requests.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte("ALIVE"))
	}
}

// Readiness runs every check with a short deadline and answers 200 "READY",
// or 503 "NOT_READY" when any check fails.
func Readiness(log *slog.Logger, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.WarnContext(ctx, "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		_, _ = w.Write([]byte("READY"))
	}
}
