// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package llm

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/seniorfit/internal/metrics"
)

// RateLimitedGenerator caps the outbound call rate to stay within
// provider quota. Callers wait for a token; a canceled context stops the wait.
type RateLimitedGenerator struct {
	next    Generator
	limiter *rate.Limiter
}

var _ Generator = (*RateLimitedGenerator)(nil)

// NewRateLimitedGenerator allows rps calls per second with the given burst
func NewRateLimitedGenerator(next Generator, rps float64, burst int) *RateLimitedGenerator {
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedGenerator{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Generate implements Generator
func (g *RateLimitedGenerator) Generate(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("waiting for %s rate limit: %w", g.next.Provider(), err)
	}
	metrics.LLMRateLimitWaits.WithLabelValues(g.next.Provider()).Observe(time.Since(start).Seconds())

	return g.next.Generate(ctx, req)
}

// Model implements Generator
func (g *RateLimitedGenerator) Model() string { return g.next.Model() }

// Provider implements Generator
func (g *RateLimitedGenerator) Provider() string { return g.next.Provider() }

// Unwrap returns the wrapped generator
func (g *RateLimitedGenerator) Unwrap() Generator { return g.next }
