package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/pkg/environment"
	"github.com/viggothorell/portfolio/pkg/logger"
	"github.com/viggothorell/portfolio/pkg/requestid"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestNew_Production(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithEnvironment(environment.Production, "portfolio"),
		logger.WithOutput(&buf),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	log.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug is off in production")

	ctx := requestid.WithContext(context.Background(), "req-1")
	log.InfoContext(ctx, "hello", logger.Component("contact"), logger.Error(errors.New("boom")))

	rec := decode(t, &buf)
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "portfolio", rec["service"])
	assert.Equal(t, "production", rec["env"])
	assert.Equal(t, "req-1", rec["request_id"])
	assert.Equal(t, "contact", rec["component"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNew_Development(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithEnvironment(environment.Development, "portfolio"), logger.WithOutput(&buf))

	log.Debug("visible", slog.String("k", "v"))
	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "msg=visible")
	assert.Contains(t, out, "env=development")
}

func TestWithFormat_Invalid(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { logger.New(logger.WithFormat("xml")) })
}

func TestError_Nil(t *testing.T) {
	t.Parallel()
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestAccessLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelDebug))

	h := middleware.RequestLogger(logger.NewAccessLog(log))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("slow down"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/send-email", nil))

	rec := decode(t, &buf)
	assert.Equal(t, "request completed", rec["msg"])
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "POST", rec["method"])
	assert.Equal(t, "/send-email", rec["path"])
	assert.EqualValues(t, 429, rec["status"])
	assert.EqualValues(t, 9, rec["bytes"])
}

func TestAccessLog_Panic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	h := middleware.RequestLogger(logger.NewAccessLog(log))(
		middleware.Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("kaboom")
		})),
	)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.Contains(buf.String(), "kaboom"))
}
