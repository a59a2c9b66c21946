package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viggothorell/portfolio/pkg/requestid"
)

func serve(t *testing.T, trust bool, incoming string) (ctxID, headerID string) {
	t.Helper()

	handler := requestid.Middleware(trust)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(requestid.Header, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return ctxID, rec.Header().Get(requestid.Header)
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("generates uuid when missing", func(t *testing.T) {
		t.Parallel()

		ctxID, headerID := serve(t, true, "")
		require.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, headerID)
		_, err := uuid.Parse(ctxID)
		assert.NoError(t, err)
	})

	t.Run("reuses trusted incoming id", func(t *testing.T) {
		t.Parallel()

		ctxID, headerID := serve(t, true, "edge-abc_123")
		assert.Equal(t, "edge-abc_123", ctxID)
		assert.Equal(t, "edge-abc_123", headerID)
	})

	t.Run("replaces untrusted incoming id", func(t *testing.T) {
		t.Parallel()

		ctxID, _ := serve(t, false, "edge-abc_123")
		assert.NotEqual(t, "edge-abc_123", ctxID)
	})

	t.Run("replaces invalid incoming id", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"has space", "<script>", strings.Repeat("a", 129)} {
			ctxID, _ := serve(t, true, bad)
			assert.NotEqual(t, bad, ctxID)
		}
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(requestid.WithContext(context.Background(), "abc"))
	assert.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.String())
}
