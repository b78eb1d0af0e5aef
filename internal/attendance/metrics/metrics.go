package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for operations and attendance.
type Metrics struct {
	OperationsCreated  prometheus.Counter
	AttendanceRecorded *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		OperationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "roster_operations_created_total",
			Help: "Operations created",
		}),
		AttendanceRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_attendance_recorded_total",
			Help: "Attendance rows written by status",
		}, []string{"status"}),
	}
}

func (m *Metrics) IncrementOperationsCreated() {
	if m != nil {
		m.OperationsCreated.Inc()
	}
}

func (m *Metrics) IncrementAttendanceRecorded(status string) {
	if m != nil {
		m.AttendanceRecorded.WithLabelValues(status).Inc()
	}
}
