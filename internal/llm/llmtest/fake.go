// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package llmtest provides a scripted llm.Generator for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/tomtom215/seniorfit/internal/llm"
)

// Fake returns Response (or Err) and records every request.
type Fake struct {
	Response string
	Err      error
	ModelID  string

	mu       sync.Mutex
	requests []llm.Request
}

var _ llm.Generator = (*Fake)(nil)

// Generate implements llm.Generator
func (f *Fake) Generate(ctx context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Response, nil
}

// Model implements llm.Generator
func (f *Fake) Model() string {
	if f.ModelID == "" {
		return "fake-model"
	}
	return f.ModelID
}

// Provider implements llm.Generator
func (f *Fake) Provider() string { return "fake" }

// Requests returns a copy of the recorded requests
func (f *Fake) Requests() []llm.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]llm.Request(nil), f.requests...)
}

// Calls returns the number of Generate calls
func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}
