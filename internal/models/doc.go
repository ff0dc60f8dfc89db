// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package models defines the domain types, request/response payloads and
// the error taxonomy shared by the store, service and api layers.
//
// JSON field names follow the contract of the existing mobile client and
// database tables: corpus entries keep their Spanish keys (condicion,
// ejercicio, banderas_rojas, ...), table columns are snake_case.
//
// # Error Taxonomy
//
// Services return one of three classes of failure, which the api package
// maps to HTTP status codes:
//
//   - ErrUserNotFound (wrapped with %w): 404
//   - *ValidationError: 400
//   - *UpstreamError (store or language model failure): 502
//
// Anything else is an unexpected internal error (500).
package models
