package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for personnel actions.
type Metrics struct {
	ActionsApplied *prometheus.CounterVec
	ActionsFailed  *prometheus.CounterVec
	ActionLatency  *prometheus.HistogramVec
}

// New creates a new Metrics instance with all personnel metrics registered.
func New() *Metrics {
	return &Metrics{
		ActionsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_personnel_actions_total",
			Help: "Personnel actions applied by action",
		}, []string{"action"}),
		ActionsFailed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_personnel_action_failures_total",
			Help: "Personnel actions that failed after authorization by action",
		}, []string{"action"}),
		ActionLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_personnel_action_duration_seconds",
			Help:    "Time to apply a personnel action",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"action"}),
	}
}

func (m *Metrics) IncrementApplied(action string) {
	if m != nil {
		m.ActionsApplied.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) IncrementFailed(action string) {
	if m != nil {
		m.ActionsFailed.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) ObserveLatency(action string, seconds float64) {
	if m != nil {
		m.ActionLatency.WithLabelValues(action).Observe(seconds)
	}
}
