// Package metrics provides Prometheus metrics collection for the meal planner.
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

	// SuggestionGenerationsTotal tracks suggestion generations by outcome.
	SuggestionGenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_generations_total",
			Help: "Total number of meal suggestion generations",
		},
		[]string{"status"},
	)

	// SuggestionGenerationDuration tracks suggestion generation duration.
	SuggestionGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "suggestion_generation_duration_seconds",
			Help:    "Meal suggestion generation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// CookingPlansTotal tracks cooking plans by kind (SUGGESTION or NEEDS_SHOPPING).
	CookingPlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cooking_plans_total",
			Help: "Total number of cooking plans by outcome kind",
		},
		[]string{"kind"},
	)

	// SuggestionTransitionsTotal tracks suggestion lifecycle transitions.
	SuggestionTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestion_transitions_total",
			Help: "Total number of suggestion status transitions",
		},
		[]string{"status"},
	)

	// InventoryOperationsTotal tracks applied inventory operations.
	InventoryOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_operations_total",
			Help: "Total number of applied inventory operations",
		},
		[]string{"type"},
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

// RecordSuggestionGeneration records metrics for a suggestion generation.
func RecordSuggestionGeneration(duration time.Duration, status string) {
	SuggestionGenerationDuration.Observe(duration.Seconds())
	SuggestionGenerationsTotal.WithLabelValues(status).Inc()
}

// RecordCookingPlan records the outcome kind of a cooking plan.
func RecordCookingPlan(kind string) {
	CookingPlansTotal.WithLabelValues(kind).Inc()
}

// RecordSuggestionTransition records a suggestion status transition.
func RecordSuggestionTransition(status string) {
	SuggestionTransitionsTotal.WithLabelValues(status).Inc()
}

// RecordInventoryOperations records a batch of applied inventory operations.
func RecordInventoryOperations(operationType string, count int) {
	InventoryOperationsTotal.WithLabelValues(operationType).Add(float64(count))
}
