// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package middleware provides HTTP middleware shared by the API router.
//
// Middleware here uses the http.HandlerFunc form; the router adapts it to
// chi's func(http.Handler) http.Handler signature.
//
//   - RequestID: propagates or generates X-Request-ID and seeds logging context
//   - PrometheusMetrics: request count, latency and in-flight gauge per route
//   - AccessLog: one structured log line per request, warning on slow requests
package middleware
