package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcore_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitcore_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EnrollmentsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcore_enrollments_created_total",
			Help: "Total number of enrollment requests submitted",
		},
		[]string{"payment_method"},
	)

	EnrollmentDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcore_enrollment_decisions_total",
			Help: "Total number of enrollment decisions applied",
		},
		[]string{"decision"},
	)

	GymStatusTogglesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitcore_gym_status_toggles_total",
			Help: "Total number of gym active-flag toggles",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitcore_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitcore_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordEnrollmentCreated(paymentMethod string) {
	EnrollmentsCreatedTotal.WithLabelValues(paymentMethod).Inc()
}

func RecordEnrollmentDecision(decision string) {
	EnrollmentDecisionsTotal.WithLabelValues(decision).Inc()
}

func RecordGymStatusToggle() {
	GymStatusTogglesTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
