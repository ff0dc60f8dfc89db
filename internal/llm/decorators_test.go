// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package llm_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seniorfit/internal/breaker"
	"github.com/tomtom215/seniorfit/internal/config"
	"github.com/tomtom215/seniorfit/internal/llm"
	"github.com/tomtom215/seniorfit/internal/llm/llmtest"
	"github.com/tomtom215/seniorfit/internal/logging"
)

func TestCircuitBreakerGenerator_OpensAndRejects(t *testing.T) {
	fake := &llmtest.Fake{Err: errors.New("503 from provider")}
	gen := llm.NewCircuitBreakerGenerator(fake)

	for i := 0; i < 10; i++ {
		_, err := gen.Generate(context.Background(), llm.Request{Prompt: "x"})
		require.Error(t, err)
	}
	assert.Equal(t, "open", gen.BreakerState())

	_, err := gen.Generate(context.Background(), llm.Request{Prompt: "x"})
	assert.True(t, breaker.IsRejected(err))
	assert.Equal(t, 10, fake.Calls())
}

func TestCircuitBreakerGenerator_CanceledDoesNotTrip(t *testing.T) {
	fake := &llmtest.Fake{Response: "ok"}
	gen := llm.NewCircuitBreakerGenerator(fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 15; i++ {
		_, err := gen.Generate(ctx, llm.Request{Prompt: "x"})
		require.ErrorIs(t, err, context.Canceled)
	}
	assert.Equal(t, "closed", gen.BreakerState())

	text, err := gen.Generate(context.Background(), llm.Request{Prompt: "x"})
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, "fake-model", gen.Model())
	assert.Equal(t, "fake", gen.Provider())
}

func TestRateLimitedGenerator_Paces(t *testing.T) {
	fake := &llmtest.Fake{Response: "ok"}
	gen := llm.NewRateLimitedGenerator(fake, 20, 1) // one call every 50ms

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := gen.Generate(context.Background(), llm.Request{Prompt: "x"})
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	assert.Equal(t, 3, fake.Calls())
}

func TestRateLimitedGenerator_ContextEndsWait(t *testing.T) {
	fake := &llmtest.Fake{Response: "ok"}
	gen := llm.NewRateLimitedGenerator(fake, 0.01, 1)

	_, err := gen.Generate(context.Background(), llm.Request{Prompt: "first"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = gen.Generate(ctx, llm.Request{Prompt: "second"})
	require.Error(t, err)
	assert.Equal(t, 1, fake.Calls(), "second call must not reach the provider")
}

func TestNew_BuildsChain(t *testing.T) {
	gen, err := llm.New(context.Background(), &config.LLMConfig{
		Provider:          "openai",
		Timeout:           time.Second,
		RequestsPerSecond: 2,
		Burst:             1,
		OpenAI:            config.OpenAIConfig{APIKey: "k", Model: "gpt-4o-mini"},
	})
	require.NoError(t, err)
	assert.IsType(t, &llm.RateLimitedGenerator{}, gen)
	assert.Equal(t, "gpt-4o-mini", gen.Model())
	assert.Equal(t, "openai", gen.Provider())

	gen, err = llm.New(context.Background(), &config.LLMConfig{
		Provider: "openai",
		OpenAI:   config.OpenAIConfig{APIKey: "k"},
	})
	require.NoError(t, err)
	assert.IsType(t, &llm.CircuitBreakerGenerator{}, gen)
}

func TestNew_MasksAPIKeyInLog(t *testing.T) {
	var buf bytes.Buffer
	logging.Init(logging.Config{Level: "info", Format: "json", Output: &buf})
	t.Cleanup(func() { logging.Init(logging.DefaultConfig()) })

	_, err := llm.New(context.Background(), &config.LLMConfig{
		Provider: "openai",
		OpenAI:   config.OpenAIConfig{APIKey: "sk-abcdefghijklmnop", Model: "gpt-4o-mini"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "LLM generator ready")
	assert.Contains(t, out, `"api_key":"sk-a...mnop"`)
	assert.NotContains(t, out, "sk-abcdefghijklmnop")
}

func TestNew_Errors(t *testing.T) {
	_, err := llm.New(context.Background(), &config.LLMConfig{Provider: "claude"})
	assert.Error(t, err)

	_, err = llm.New(context.Background(), &config.LLMConfig{Provider: "openai"})
	assert.Error(t, err, "missing API key")
}

func TestBreakerState_FollowsChain(t *testing.T) {
	chain := llm.NewRateLimitedGenerator(llm.NewCircuitBreakerGenerator(&llmtest.Fake{}), 10, 1)

	state, ok := llm.BreakerState(chain)
	assert.True(t, ok)
	assert.Equal(t, "closed", state)

	_, ok = llm.BreakerState(&llmtest.Fake{})
	assert.False(t, ok)
}
