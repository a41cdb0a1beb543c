// Package metrics registers the portal's Prometheus collectors on the
// default registry and offers small helpers to record them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aura_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Auth
	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_logins_total",
			Help: "Login attempts by outcome",
		},
		[]string{"outcome"},
	)

	SessionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_sessions_created_total",
			Help: "Sessions created by role",
		},
		[]string{"role"},
	)

	// Membership
	ApplicationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aura_applications_total",
			Help: "Membership applications stored",
		},
	)

	NotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_notifications_total",
			Help: "Application notification results",
		},
		[]string{"result"},
	)

	// Uploads
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_uploads_total",
			Help: "Uploaded files by result",
		},
		[]string{"result"},
	)
)

// RecordHTTPRequest records one finished request. route is the matched
// route pattern, not the raw path, to keep label cardinality bounded.
func RecordHTTPRequest(method, route, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}

// RecordLogin records a login attempt outcome (e.g. "user_ok",
// "user_error").
func RecordLogin(outcome string) {
	LoginsTotal.WithLabelValues(outcome).Inc()
}

func RecordSessionCreated(role string) {
	SessionsCreatedTotal.WithLabelValues(role).Inc()
}

func RecordApplication() {
	ApplicationsTotal.Inc()
}

// RecordNotification records "sent", "skipped" or "failed".
func RecordNotification(result string) {
	NotificationsTotal.WithLabelValues(result).Inc()
}

// RecordUpload records "stored" or "rejected".
func RecordUpload(result string) {
	UploadsTotal.WithLabelValues(result).Inc()
}
