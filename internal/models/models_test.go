// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package models

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestUpstreamError(t *testing.T) {
	t.Parallel()

	cause := context.DeadlineExceeded
	err := NewUpstreamError(DependencyLLM, fmt.Errorf("chat completion: %w", cause))

	if !IsUpstream(err) {
		t.Fatal("expected upstream error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected cause to be reachable through Unwrap")
	}
	if !strings.HasPrefix(err.Error(), "llm: ") {
		t.Errorf("expected dependency prefix, got %q", err.Error())
	}

	// Wrapping twice keeps the original dependency
	again := NewUpstreamError(DependencyStore, fmt.Errorf("outer: %w", err))
	var upstream *UpstreamError
	if !errors.As(again, &upstream) || upstream.Dependency != DependencyLLM {
		t.Errorf("expected llm dependency preserved, got %v", again)
	}

	if NewUpstreamError(DependencyStore, nil) != nil {
		t.Error("expected nil for nil cause")
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("decode: %w", NewValidationError("user_email is required", "user_email"))
	if !IsValidation(err) {
		t.Fatal("expected validation error")
	}
	if IsUpstream(err) {
		t.Error("validation error must not classify as upstream")
	}
	if got := NewValidationError("bad body").Error(); got != "bad body" {
		t.Errorf("unexpected message %q", got)
	}
}

func TestUserNotFoundWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup ana@example.com: %w", ErrUserNotFound)
	if !errors.Is(err, ErrUserNotFound) {
		t.Error("expected wrapped ErrUserNotFound to match")
	}
	if IsValidation(err) || IsUpstream(err) {
		t.Error("not found must not classify as validation or upstream")
	}
}

func TestExerciseJSONKeys(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Exercise{ID: 1, Condition: "Hipertensión", RedFlags: "Evitar subidas"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, key := range []string{`"id":1`, `"condicion":"Hipertensión"`, `"banderas_rojas":"Evitar subidas"`, `"ejercicio"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("expected %s in %s", key, data)
		}
	}
}

func TestStreakStatusResponse_NullLastActivity(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(StreakStatusResponse{UserEmail: "a@b.c"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"last_activity":null`) {
		t.Errorf("expected null last_activity, got %s", data)
	}
}
