// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package llm is the boundary to the hosted language model that writes
// exercise plans and daily coaching messages.
//
// Two providers implement Generator: OpenAI chat completions over HTTP and
// Google Gemini through google.golang.org/genai. New builds the configured
// provider and wraps it, outermost first, in a rate limiter and a circuit
// breaker:
//
//	RateLimitedGenerator -> CircuitBreakerGenerator -> provider
//
// Calls are never retried. A failed call surfaces to the API as an
// upstream failure.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/seniorfit/internal/config"
	"github.com/tomtom215/seniorfit/internal/logging"
)

// ErrEmptyResponse is returned when the provider answered without text
var ErrEmptyResponse = errors.New("model returned no text")

// Request is one single-turn generation
type Request struct {
	// System is the system role / instruction. Optional.
	System string

	// Prompt is the user message.
	Prompt string

	MaxTokens   int
	Temperature float64

	// TopP is nucleus sampling; zero leaves the provider default.
	TopP float64
}

// Generator produces text from a prompt
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)

	// Model returns the model identifier sent to the provider.
	Model() string

	// Provider returns "openai" or "gemini".
	Provider() string
}

// New builds the generator chain for cfg
func New(ctx context.Context, cfg *config.LLMConfig) (Generator, error) {
	var (
		base   Generator
		apiKey string
		err    error
	)

	switch strings.ToLower(cfg.Provider) {
	case config.ProviderOpenAI:
		apiKey = cfg.OpenAI.APIKey
		base, err = NewOpenAIClient(&cfg.OpenAI, cfg.Timeout)
	case config.ProviderGemini:
		apiKey = cfg.Gemini.APIKey
		base, err = NewGeminiClient(ctx, &cfg.Gemini, cfg.Timeout)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	var gen Generator = NewCircuitBreakerGenerator(base)
	if cfg.RequestsPerSecond > 0 {
		gen = NewRateLimitedGenerator(gen, cfg.RequestsPerSecond, cfg.Burst)
	}

	logging.Info().
		Str("provider", base.Provider()).
		Str("model", base.Model()).
		Str("api_key", logging.SanitizeToken(apiKey)).
		Float64("requests_per_second", cfg.RequestsPerSecond).
		Msg("LLM generator ready")
	return gen, nil
}

// BreakerState reports the circuit breaker state of the first
// CircuitBreakerGenerator in the chain, following Unwrap.
func BreakerState(g Generator) (string, bool) {
	for g != nil {
		if cb, ok := g.(*CircuitBreakerGenerator); ok {
			return cb.BreakerState(), true
		}
		u, ok := g.(interface{ Unwrap() Generator })
		if !ok {
			return "", false
		}
		g = u.Unwrap()
	}
	return "", false
}
