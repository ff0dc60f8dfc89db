// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

/*
Package api provides the HTTP surface of the Senior Fitness API.

Routing uses the Chi router with production middleware from the Chi
ecosystem (go-chi/cors, go-chi/httprate) plus the shared middleware in
internal/middleware for request IDs, access logs and Prometheus metrics.

# Endpoints

	POST /api/recommend-exercises   corpus matches plus a generated exercise plan
	POST /api/update-streak         advance the caller's activity streak
	GET  /api/streak                read the current streak
	GET  /api/check-user            resolve a user by id or email
	POST /api/daily-recommendation  today's coach suggestion
	GET  /api/exercises             the exercise corpus
	GET  /api/health[/live|/ready]  health and probes
	GET  /metrics                   Prometheus exposition
	GET  /swagger/*                 Swagger UI and doc.json (generated docs package)

# Errors

Every non-2xx response has the body {detail, code, request_id}. Domain
errors map to status codes in one place (classifyError):

	*models.ValidationError   400 VALIDATION_FAILED
	models.ErrUserNotFound    404 NOT_FOUND
	*models.UpstreamError     502 UPSTREAM_FAILURE
	anything else             500 INTERNAL_ERROR
*/
package api
