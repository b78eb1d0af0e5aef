package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/ratelimit/models"
	"roster/internal/ratelimit/store"
	"roster/pkg/requestcontext"
)

type failingStore struct{}

func (failingStore) Allow(context.Context, string, models.Policy) (*models.Result, error) {
	return nil, errors.New("redis unavailable")
}

func serveFrom(h http.Handler, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/enlistments", nil)
	req = req.WithContext(requestcontext.WithClientIP(req.Context(), ip))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPerIP(t *testing.T) {
	policy := models.Policy{Limit: 2, Window: time.Hour}
	h := New(store.NewInMemoryStore(), discard()).PerIP("submit", policy)(okHandler())

	first := serveFrom(h, "10.0.0.1")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusCreated, serveFrom(h, "10.0.0.1").Code)

	limited := serveFrom(h, "10.0.0.1")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.NotEmpty(t, limited.Header().Get("Retry-After"))
	assert.Contains(t, limited.Body.String(), "rate_limit_exceeded")

	assert.Equal(t, http.StatusCreated, serveFrom(h, "10.0.0.2").Code)
}

func TestPerIPFailsOpen(t *testing.T) {
	h := New(failingStore{}, discard()).PerIP("submit", models.Policy{Limit: 1, Window: time.Minute})(okHandler())
	for range 3 {
		assert.Equal(t, http.StatusCreated, serveFrom(h, "10.0.0.1").Code)
	}
}

func TestPerIPDisabledPolicy(t *testing.T) {
	h := New(failingStore{}, discard()).PerIP("submit", models.Policy{})(okHandler())
	rec := serveFrom(h, "10.0.0.1")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
