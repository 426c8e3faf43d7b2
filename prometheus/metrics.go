package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Counter metrics
var (
	// Application submissions received
	SubmissionCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Total number of submission attempts",
		},
	)

	// Review decisions by outcome
	ReviewCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_reviews_total",
			Help: "Total number of review decisions",
		},
		[]string{"decision"}, // "approved" or "rejected"
	)

	// Login attempts
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_login_total",
			Help: "Total number of admin login attempts",
		},
	)

	// Authentication errors
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // "invalid_credentials", "missing_token", "invalid_token", etc.
	)

	// Submission intake errors
	SubmissionErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_submission_errors_total",
			Help: "Total number of rejected submission attempts",
		},
		[]string{"type"}, // "validation_failed", "duplicate_email", "db_error"
	)

	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intake_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intake_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)

	// Database operation duration
	DBOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "intake_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"}, // "query", "insert", "update"
	)
)

// Gauge metrics
var (
	// Submissions by review status, refreshed whenever stats are computed
	SubmissionsByStatusGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "intake_submissions_by_status",
			Help: "Number of submissions per review status",
		},
		[]string{"status"}, // "pending", "approved", "rejected"
	)

	// System info
	InfoGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "intake_info",
			Help: "Information about the intake service",
		},
		[]string{"version"},
	)
)

func init() {
	prometheus.MustRegister(SubmissionCounter)
	prometheus.MustRegister(ReviewCounter)
	prometheus.MustRegister(LoginCounter)
	prometheus.MustRegister(AuthErrorCounter)
	prometheus.MustRegister(SubmissionErrorCounter)
	prometheus.MustRegister(HTTPRequestCounter)

	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(DBOperationDuration)

	prometheus.MustRegister(SubmissionsByStatusGauge)
	prometheus.MustRegister(InfoGauge)

	InfoGauge.With(prometheus.Labels{"version": "1.0.0"}).Set(1)
}

// GetPrometheusHandler returns an HTTP handler for the Prometheus metrics
func GetPrometheusHandler() http.Handler {
	return promhttp.Handler()
}

// TrackDBOperation measures database operation durations
func TrackDBOperation(operation string) func(time.Time) {
	startTime := time.Now()
	return func(endTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DBOperationDuration.With(prometheus.Labels{
			"operation": operation,
		}).Observe(duration)
	}
}

// MetricsMiddleware creates a middleware function that captures metrics for each request
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(c.Response().Status)
			endpoint := c.Path()
			method := c.Request().Method

			RequestDuration.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Observe(duration)

			HTTPRequestCounter.With(prometheus.Labels{
				"endpoint": endpoint,
				"method":   method,
				"status":   status,
			}).Inc()

			return err
		}
	}
}

// RecordAuthError records an authentication error by type
func RecordAuthError(errorType string) {
	AuthErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordSubmissionError records a failed submission attempt by type
func RecordSubmissionError(errorType string) {
	SubmissionErrorCounter.With(prometheus.Labels{"type": errorType}).Inc()
}

// RecordReview records a review decision
func RecordReview(decision string) {
	ReviewCounter.With(prometheus.Labels{"decision": decision}).Inc()
}

// UpdateStatusCounts refreshes the per-status submission gauges
func UpdateStatusCounts(approved, pending, rejected int64) {
	SubmissionsByStatusGauge.With(prometheus.Labels{"status": "approved"}).Set(float64(approved))
	SubmissionsByStatusGauge.With(prometheus.Labels{"status": "pending"}).Set(float64(pending))
	SubmissionsByStatusGauge.With(prometheus.Labels{"status": "rejected"}).Set(float64(rejected))
}
