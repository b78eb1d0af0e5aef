package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for enlistment review and acceptance.
type Metrics struct {
	Submissions       prometheus.Counter
	Transitions       *prometheus.CounterVec
	Acceptances       *prometheus.CounterVec
	SoldiersCreated   prometheus.Counter
	AcceptanceLatency prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_enlistment_submissions_total",
			Help: "Enlistment applications submitted",
		}),
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_enlistment_transitions_total",
			Help: "Enlistment status transitions applied",
		}, []string{"from", "to"}),
		Acceptances: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_enlistment_acceptances_total",
			Help: "Acceptance attempts by outcome (converted, already_converted, failed)",
		}, []string{"outcome"}),
		SoldiersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_soldiers_created_total",
			Help: "Soldiers created from accepted enlistments",
		}),
		AcceptanceLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "roster_enlistment_acceptance_duration_seconds",
			Help:    "Time to convert an accepted enlistment into a soldier",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) IncrementSubmissions() {
	if m != nil {
		m.Submissions.Inc()
	}
}

func (m *Metrics) IncrementTransition(from, to string) {
	if m != nil {
		m.Transitions.WithLabelValues(from, to).Inc()
	}
}

func (m *Metrics) IncrementAcceptance(outcome string) {
	if m != nil {
		m.Acceptances.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) IncrementSoldiersCreated() {
	if m != nil {
		m.SoldiersCreated.Inc()
	}
}

func (m *Metrics) ObserveAcceptanceLatency(seconds float64) {
	if m != nil {
		m.AcceptanceLatency.Observe(seconds)
	}
}
