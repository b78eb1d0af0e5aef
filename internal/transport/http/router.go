package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"roster/internal/platform/metrics"
	"roster/internal/platform/middleware"
	dErrors "roster/pkg/domain-errors"
	"roster/pkg/platform/httputil"
)

// RouteRegistrar mounts a module's endpoints on a router.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// PublicRegistrar mounts endpoints that accept anonymous callers.
type PublicRegistrar interface {
	RegisterPublic(r chi.Router)
}

// HealthCheck reports whether one backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Dependencies is everything the router needs from main. Public routes sit behind
// PublicLimit; PublicReads are anonymous but unthrottled.
type Dependencies struct {
	Identity       middleware.IdentityValidator
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration
	TrustedProxies []netip.Prefix
	Checks         map[string]HealthCheck
	PublicLimit    func(http.Handler) http.Handler
	Public         []PublicRegistrar
	PublicReads    []PublicRegistrar
	Protected      []RouteRegistrar
}

// NewRouter wires platform middleware, health endpoints and every module's routes.
// Handlers stay thin and delegate to their services.
func NewRouter(deps Dependencies, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata(deps.TrustedProxies))
	r.Use(middleware.Logger(logger, deps.Metrics))
	r.Use(middleware.Recovery(logger))

	r.Get("/healthz", handleLiveness)
	r.Get("/readyz", handleReadiness(deps.Checks, logger))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if deps.RequestTimeout > 0 {
			r.Use(chimw.Timeout(deps.RequestTimeout))
		}

		r.Group(func(r chi.Router) {
			if deps.PublicLimit != nil {
				r.Use(deps.PublicLimit)
			}
			r.Use(middleware.OptionalIdentity(deps.Identity, logger))
			for _, h := range deps.Public {
				h.RegisterPublic(r)
			}
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalIdentity(deps.Identity, logger))
			for _, h := range deps.PublicReads {
				h.RegisterPublic(r)
			}
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireIdentity(deps.Identity, logger))
			for _, h := range deps.Protected {
				h.Register(r)
			}
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"error":             "method_not_allowed",
			"error_description": "method not allowed",
		})
	})
	return r
}

func handleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleReadiness(checks map[string]HealthCheck, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		results := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.WarnContext(ctx, "readiness check failed", "dependency", name, "error", err)
				results[name] = "unavailable"
				status = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}
		httputil.WriteJSON(w, status, map[string]any{
			"status":       http.StatusText(status),
			"dependencies": results,
		})
	}
}
