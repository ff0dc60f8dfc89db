// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package metrics

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestErrorType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"deadline", context.DeadlineExceeded, "timeout"},
		{"wrapped deadline", fmt.Errorf("call model: %w", context.DeadlineExceeded), "timeout"},
		{"canceled", context.Canceled, "canceled"},
		{"generic", errors.New("connection refused"), "error"},
	}

	for _, tt := range tests {
		if got := ErrorType(tt.err); got != tt.want {
			t.Errorf("%s: ErrorType() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRecordDBQuery(t *testing.T) {
	t.Parallel()

	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("test-backend", "select", "users", "error"))

	RecordDBQuery("test-backend", "select", "users", 5*time.Millisecond, nil)
	RecordDBQuery("test-backend", "select", "users", 5*time.Millisecond, errors.New("boom"))

	after := testutil.ToFloat64(DBQueryErrors.WithLabelValues("test-backend", "select", "users", "error"))
	if after-before != 1 {
		t.Errorf("expected 1 new error, got %v", after-before)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	t.Parallel()

	counter := APIRequestsTotal.WithLabelValues("POST", "/test/record", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("POST", "/test/record", "200", 20*time.Millisecond)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected counter increment of 1, got %v", got)
	}
}

func TestRecordLLMRequest(t *testing.T) {
	t.Parallel()

	counter := LLMRequestErrors.WithLabelValues("test-provider", "test-model", "timeout")
	before := testutil.ToFloat64(counter)

	RecordLLMRequest("test-provider", "test-model", time.Second, context.DeadlineExceeded)
	RecordLLMRequest("test-provider", "test-model", time.Second, nil)

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected 1 timeout error, got %v", got)
	}
}

func TestRecordDomainCounters(t *testing.T) {
	t.Parallel()

	rec := RecommendationsGenerated.WithLabelValues("daily", "fallback")
	streak := StreakUpdates.WithLabelValues("reset")
	recBefore := testutil.ToFloat64(rec)
	streakBefore := testutil.ToFloat64(streak)

	RecordRecommendation("daily", "fallback")
	RecordStreakUpdate("reset")

	if got := testutil.ToFloat64(rec) - recBefore; got != 1 {
		t.Errorf("expected recommendation increment of 1, got %v", got)
	}
	if got := testutil.ToFloat64(streak) - streakBefore; got != 1 {
		t.Errorf("expected streak increment of 1, got %v", got)
	}
}
