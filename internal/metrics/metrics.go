package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the platform backend
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Preference reconciliation
	PreferenceUpdatesTotal prometheus.CounterVec
	RewardReordersTotal    prometheus.Counter
	ReminderEmailsQueued   prometheus.Counter
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "platform_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "platform_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		PreferenceUpdatesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "platform_preference_updates_total",
				Help: "Account settings updates by outcome",
			},
			[]string{"outcome"},
		),
		RewardReordersTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "platform_reward_reorders_total",
				Help: "Reward position writes from dashboard drag-and-drop",
			},
		),
		ReminderEmailsQueued: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "platform_reminder_emails_queued_total",
				Help: "Reminder emails handed to the delivery stream",
			},
		),
	}
}
