// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package llm

import (
	"context"

	"github.com/tomtom215/seniorfit/internal/breaker"
)

// CircuitBreakerGenerator fails fast while the provider is unhealthy
type CircuitBreakerGenerator struct {
	next Generator
	cb   *breaker.Breaker
}

var _ Generator = (*CircuitBreakerGenerator)(nil)

// NewCircuitBreakerGenerator wraps next with the default breaker settings.
// A client that hangs up does not count against the provider.
func NewCircuitBreakerGenerator(next Generator) *CircuitBreakerGenerator {
	s := breaker.DefaultSettings(next.Provider() + "-llm")
	s.IsSuccessful = breaker.IgnoreCanceled
	return &CircuitBreakerGenerator{next: next, cb: breaker.New(s)}
}

// Generate implements Generator
func (g *CircuitBreakerGenerator) Generate(ctx context.Context, req Request) (string, error) {
	return breaker.Execute(g.cb, func() (string, error) {
		return g.next.Generate(ctx, req)
	})
}

// Model implements Generator
func (g *CircuitBreakerGenerator) Model() string { return g.next.Model() }

// Provider implements Generator
func (g *CircuitBreakerGenerator) Provider() string { return g.next.Provider() }

// BreakerState returns "closed", "half-open" or "open"
func (g *CircuitBreakerGenerator) BreakerState() string { return g.cb.State() }

// Unwrap returns the wrapped generator
func (g *CircuitBreakerGenerator) Unwrap() Generator { return g.next }
