// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Store Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_query_duration_seconds",
			Help:    "Duration of row store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_query_errors_total",
			Help: "Total number of row store operation errors",
		},
		[]string{"backend", "operation", "table", "error_type"},
	)

	// StreakConflicts counts lost compare-and-swap rounds during streak updates.
	StreakConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_streak_conflicts_total",
			Help: "Total number of concurrent streak modifications that had to re-read",
		},
		[]string{"backend"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Language Model Metrics
	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duration of language model calls in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
		},
		[]string{"provider", "model"},
	)

	LLMRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_request_errors_total",
			Help: "Total number of failed language model calls",
		},
		[]string{"provider", "model", "error_type"},
	)

	LLMRateLimitWaits = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_rate_limit_wait_seconds",
			Help:    "Time spent waiting for the outbound language model rate limiter",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"provider"},
	)

	// Domain Metrics
	RecommendationsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_generated_total",
			Help: "Total number of recommendations returned to clients",
		},
		[]string{"kind", "source"}, // kind: "plan", "daily"; source: "model", "fallback"
	)

	CorpusMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_corpus_matches",
			Help:    "Number of corpus entries matched per recommendation request",
			Buckets: []float64{0, 1, 2, 3, 4, 6, 8},
		},
	)

	StreakUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "streak_updates_total",
			Help: "Total number of streak updates by outcome",
		},
		[]string{"outcome"}, // "started", "incremented", "unchanged", "reset"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version", "store_backend", "llm_provider"},
	)
)

// ErrorType maps an error to a bounded label value.
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

// RecordDBQuery records a store operation metric
func RecordDBQuery(backend, operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(backend, operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(backend, operation, table, ErrorType(err)).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordLLMRequest records a language model call
func RecordLLMRequest(provider, model string, duration time.Duration, err error) {
	LLMRequestDuration.WithLabelValues(provider, model).Observe(duration.Seconds())
	if err != nil {
		LLMRequestErrors.WithLabelValues(provider, model, ErrorType(err)).Inc()
	}
}

// RecordRecommendation records a recommendation returned to a client
func RecordRecommendation(kind, source string) {
	RecommendationsGenerated.WithLabelValues(kind, source).Inc()
}

// RecordStreakUpdate records the outcome of a streak update
func RecordStreakUpdate(outcome string) {
	StreakUpdates.WithLabelValues(outcome).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
