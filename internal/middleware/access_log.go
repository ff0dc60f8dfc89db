// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/seniorfit/internal/logging"
)

// DefaultSlowRequestThreshold marks requests worth a warning. Recommendation
// requests include a model round trip, so the bar sits well above typical
// CRUD latency.
const DefaultSlowRequestThreshold = 10 * time.Second

// AccessLog writes one structured log line per request. Requests slower
// than threshold are logged at warn level, server errors at error level.
func AccessLog(threshold time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusResponseWriter(w)

			next(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case duration > threshold:
				event = logger.Warn().Dur("threshold", threshold)
			}

			event.
				Str("method", r.Method).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Int64("duration_ms", duration.Milliseconds()).
				Msg("HTTP request")
		}
	}
}
