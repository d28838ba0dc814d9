// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IntentInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_intent_invocations_total",
			Help: "Total number of intent invocations handled",
		},
		[]string{"intent"},
	)

	IntentFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_intent_failures_total",
			Help: "Total number of intent invocations that failed",
		},
		[]string{"intent", "error_code"},
	)

	DialogActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_dialog_actions_total",
			Help: "Total number of dialog actions returned by type",
		},
		[]string{"type"},
	)

	InvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "bot_invocation_duration_seconds",
			Help: "Duration of code hook invocations in seconds",
		},
		[]string{"intent"},
	)
)
