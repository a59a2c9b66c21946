package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/pkg/httpserver"
)

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()

	started := make(chan string, 1)
	srv := httpserver.New(
		httpserver.Config{Addr: "127.0.0.1:0", ShutdownTimeout: time.Second},
		httpserver.WithStartHook(func(addr string) { started <- addr }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("hej"))
		}))
	}()

	var addr string
	select {
	case addr = <-started:
	case <-time.After(2 * time.Second):
		require.Fail(t, "server did not start")
	}

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "hej", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}

	assert.NoError(t, srv.Shutdown(context.Background()), "repeated shutdown is a no-op")
}

func TestRun_AddressInUse(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := httpserver.New(httpserver.Config{Addr: ln.Addr().String()})
	err = srv.Run(context.Background(), http.NotFoundHandler())
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestShutdown_BeforeRun(t *testing.T) {
	t.Parallel()
	assert.NoError(t, httpserver.New(httpserver.Config{}).Shutdown(context.Background()))
}

func TestHealthChecks(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.Liveness()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		ok := func(context.Context) error { return nil }
		rec := httptest.NewRecorder()
		httpserver.Readiness(log, ok, ok)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("ready without checks", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		httpserver.Readiness(log)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()

		failing := func(context.Context) error { return errors.New("redis down") }
		rec := httptest.NewRecorder()
		httpserver.Readiness(log, failing)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
