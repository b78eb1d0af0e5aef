package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Rejections  *prometheus.CounterVec
	CheckErrors *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		Rejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_ratelimit_rejections_total",
			Help: "Requests rejected by rate limiting, by policy",
		}, []string{"policy"}),
		CheckErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_ratelimit_check_errors_total",
			Help: "Rate limit checks that failed and let the request through, by policy",
		}, []string{"policy"}),
	}
}

func (m *Metrics) IncrementRejections(policy string) {
	if m == nil {
		return
	}
	m.Rejections.WithLabelValues(policy).Inc()
}

func (m *Metrics) IncrementCheckErrors(policy string) {
	if m == nil {
		return
	}
	m.CheckErrors.WithLabelValues(policy).Inc()
}
