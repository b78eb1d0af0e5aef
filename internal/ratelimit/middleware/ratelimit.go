package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"roster/internal/ratelimit/metrics"
	"roster/internal/ratelimit/models"
	"roster/pkg/platform/httputil"
	"roster/pkg/requestcontext"
)

// Store counts requests per key.
type Store interface {
	Allow(ctx context.Context, key string, policy models.Policy) (*models.Result, error)
}

type Middleware struct {
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Middleware)

func WithMetrics(m *metrics.Metrics) Option {
	return func(mw *Middleware) {
		mw.metrics = m
	}
}

func New(store Store, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{store: store, logger: logger}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PerIP limits each client IP to policy under the given name. A disabled policy
// passes everything through. Store failures fail open.
func (m *Middleware) PerIP(name string, policy models.Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !policy.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := requestcontext.ClientIP(ctx)

			result, err := m.store.Allow(ctx, name+":"+ip, policy)
			if err != nil {
				m.metrics.IncrementCheckErrors(name)
				m.logger.ErrorContext(ctx, "rate limit check failed",
					"policy", name,
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				next.ServeHTTP(w, r)
				return
			}

			addHeaders(w, result)
			if !result.Allowed {
				m.metrics.IncrementRejections(name)
				m.logger.WarnContext(ctx, "rate limit exceeded",
					"policy", name,
					"client_ip", ip,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeExceeded(w, result)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func addHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	httputil.WriteJSON(w, http.StatusTooManyRequests, &models.ExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "Too many requests from this address. Please try again later.",
		RetryAfter: result.RetryAfter,
	})
}
