// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered with the default registry through promauto at
// package initialization. Record* helpers keep label usage consistent
// across the store, llm and api packages.
//
// Label values are bounded: errors are reduced to an error_type with
// ErrorType, and endpoints are recorded by route pattern, never by raw URL.
package metrics
