// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seniorfit/internal/breaker"
	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
	"github.com/tomtom215/seniorfit/internal/store/storetest"
)

// failingStore fails every call with errUpstream.
type failingStore struct {
	*store.MemoryStore
	calls int
}

var errUpstream = errors.New("connection refused")

func (f *failingStore) Name() string { return "failing" }

func (f *failingStore) GetUserByEmail(context.Context, string) (*models.User, error) {
	f.calls++
	return nil, errUpstream
}

func TestCircuitBreakerStore_Conformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T, users []models.User) store.Store {
		return store.NewCircuitBreakerStore(newMemory(t, users))
	}, storetest.Options{})
}

func TestCircuitBreakerStore_OpensOnUpstreamFailures(t *testing.T) {
	inner := &failingStore{MemoryStore: store.NewMemoryStore()}
	s := store.NewCircuitBreakerStore(inner)

	for i := 0; i < 10; i++ {
		_, err := s.GetUserByEmail(context.Background(), "ana@example.com")
		require.ErrorIs(t, err, errUpstream)
	}
	assert.Equal(t, "open", s.BreakerState())

	_, err := s.GetUserByEmail(context.Background(), "ana@example.com")
	assert.True(t, breaker.IsRejected(err), "expected rejection, got %v", err)
	assert.Equal(t, 10, inner.calls, "open circuit must not reach the store")

	// Ping bypasses the breaker
	assert.NoError(t, s.Ping(context.Background()))
}

func TestCircuitBreakerStore_NotFoundDoesNotTrip(t *testing.T) {
	s := store.NewCircuitBreakerStore(store.NewMemoryStore())

	for i := 0; i < 25; i++ {
		_, err := s.GetUserByEmail(context.Background(), "nobody@example.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	}
	assert.Equal(t, "closed", s.BreakerState())
}

func TestCircuitBreakerStore_Unwrap(t *testing.T) {
	inner := store.NewMemoryStore()
	s := store.NewCircuitBreakerStore(inner)
	assert.Same(t, inner, s.Unwrap())
	assert.Equal(t, "memory", s.Name())
}
