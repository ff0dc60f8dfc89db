// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package store

import (
	"errors"
	"time"

	"github.com/tomtom215/seniorfit/internal/metrics"
)

// Observe records a backend query. A missing row is a normal answer and is
// not counted as a query error.
func Observe(backend, operation, table string, start time.Time, err error) {
	if errors.Is(err, ErrNotFound) {
		err = nil
	}
	metrics.RecordDBQuery(backend, operation, table, time.Since(start), err)
}
