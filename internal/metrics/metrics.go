package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the webhook pipeline
var (
	WebhookRequestsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_requests_total",
			Help: "Total number of webhook POST requests received",
		},
	)

	TicketsProcessedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_processed_total",
			Help: "Total number of tickets issued successfully",
		},
	)

	EventsIgnoredTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_events_ignored_total",
			Help: "Total number of events ignored (unsupported or filtered)",
		},
	)

	PayloadsRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_payloads_rejected_total",
			Help: "Total number of requests rejected for bad signature or payload",
		},
	)

	ProcessingFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_processing_failures_total",
			Help: "Total number of failures after normalization (storage, email, encoding)",
		},
	)

	ProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "webhook_processing_duration_seconds",
			Help:    "Duration of webhook event processing",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(WebhookRequestsTotal)
	prometheus.MustRegister(TicketsProcessedTotal)
	prometheus.MustRegister(EventsIgnoredTotal)
	prometheus.MustRegister(PayloadsRejectedTotal)
	prometheus.MustRegister(ProcessingFailuresTotal)
	prometheus.MustRegister(ProcessingDuration)
}
