package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/plandesk/plandesk/internal/domain"
)

var (
	eventsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "plandesk_events_total",
			Help: "Current number of events per status",
		},
		[]string{"status"},
	)

	pendingCancellations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "plandesk_pending_cancellations_total",
			Help: "Events with an open cancellation request",
		},
	)

	awaitingReview = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "plandesk_awaiting_review_total",
			Help: "Submitted events with no open cancellation request",
		},
	)

	transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plandesk_transitions_total",
			Help: "Lifecycle transitions by kind and result",
		},
		[]string{"kind", "result"},
	)
)

// RecordStatusCounts publishes a freshly computed summary.
func RecordStatusCounts(s domain.StatusSummary) {
	for status, count := range s.Counts {
		eventsByStatus.WithLabelValues(string(status)).Set(float64(count))
	}
	pendingCancellations.Set(float64(s.PendingCancellations))
	awaitingReview.Set(float64(s.AwaitingReview))
}

func RecordTransition(kind string, ok bool) {
	result := "applied"
	if !ok {
		result = "rejected"
	}
	transitions.WithLabelValues(kind, result).Inc()
}
