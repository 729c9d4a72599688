// Package monitoring provides Prometheus metrics for OSM API traffic.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API request metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osmlib_api_requests_total",
			Help: "Total number of OSM API requests issued",
		},
		[]string{"operation", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "osmlib_api_request_duration_seconds",
			Help:    "OSM API request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
		},
		[]string{"operation"},
	)

	// Decode metrics
	DecodeErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osmlib_decode_errors_total",
			Help: "Total number of response bodies that failed to parse",
		},
		[]string{"operation"},
	)

	// Rate limiting metrics
	RateLimitWaitTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "osmlib_rate_limit_wait_duration_seconds",
			Help:    "Time spent waiting for the client-side rate limit",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"operation"},
	)
)

// Helper functions for common metric updates

// RecordAPIRequest records one completed (or failed) API request.
func RecordAPIRequest(operation, status string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(operation, status).Inc()
	APIRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDecodeError records a response body that could not be parsed.
func RecordDecodeError(operation string) {
	DecodeErrorsTotal.WithLabelValues(operation).Inc()
}

// RecordRateLimitWait records time spent blocked on the rate limiter.
func RecordRateLimitWait(operation string, duration time.Duration) {
	RateLimitWaitTime.WithLabelValues(operation).Observe(duration.Seconds())
}
