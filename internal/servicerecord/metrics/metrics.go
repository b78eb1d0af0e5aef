package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the service record ledger.
type Metrics struct {
	EntriesAppended  *prometheus.CounterVec
	AppendFailures   *prometheus.CounterVec
	PublishFailures  prometheus.Counter
	EntriesPublished prometheus.Counter
}

// New creates a new Metrics instance with all ledger metrics registered.
func New() *Metrics {
	return &Metrics{
		EntriesAppended: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_service_records_appended_total",
			Help: "Service record entries appended by action type",
		}, []string{"action_type"}),
		AppendFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_service_record_append_failures_total",
			Help: "Service record appends that failed and were skipped by the caller",
		}, []string{"action_type"}),
		PublishFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_service_record_publish_failures_total",
			Help: "Service record entries that could not be published to the event stream",
		}),
		EntriesPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_service_records_published_total",
			Help: "Service record entries published to the event stream",
		}),
	}
}

func (m *Metrics) IncrementAppended(action string) {
	if m != nil {
		m.EntriesAppended.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) IncrementAppendFailure(action string) {
	if m != nil {
		m.AppendFailures.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) IncrementPublished() {
	if m != nil {
		m.EntriesPublished.Inc()
	}
}

func (m *Metrics) IncrementPublishFailure() {
	if m != nil {
		m.PublishFailures.Inc()
	}
}
