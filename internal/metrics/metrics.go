// Package metrics provides Prometheus metrics collection for the batch service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// BatchAssignmentsTotal tracks batch assignment calls by mode and outcome.
	BatchAssignmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "batch_assignments_total",
			Help: "Total number of batch assignment calls",
		},
		[]string{"mode", "result"},
	)

	// EstimationDuration tracks processing-time estimation duration.
	EstimationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "batch_estimation_duration_seconds",
			Help:    "Processing-time estimation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// InventoryDispatchTotal tracks inventory reconciliation task outcomes.
	InventoryDispatchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_dispatch_total",
			Help: "Total number of inventory reconciliation task events",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordBatchAssignment records the outcome of a batch assignment call.
func RecordBatchAssignment(mode, result string) {
	BatchAssignmentsTotal.WithLabelValues(mode, result).Inc()
}

// RecordEstimation records the duration of a processing-time estimation.
func RecordEstimation(duration time.Duration) {
	EstimationDuration.Observe(duration.Seconds())
}

// RecordInventoryDispatch records an inventory reconciliation task event.
func RecordInventoryDispatch(result string) {
	InventoryDispatchTotal.WithLabelValues(result).Inc()
}
