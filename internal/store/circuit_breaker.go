// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package store

import (
	"context"
	"errors"

	"github.com/tomtom215/seniorfit/internal/breaker"
	"github.com/tomtom215/seniorfit/internal/models"
)

// CircuitBreakerStore wraps a remote Store with a circuit breaker.
// Missing rows and client cancellations do not count as failures.
type CircuitBreakerStore struct {
	next Store
	cb   *breaker.Breaker
}

var _ Store = (*CircuitBreakerStore)(nil)

// NewCircuitBreakerStore wraps next with the default breaker settings.
func NewCircuitBreakerStore(next Store) *CircuitBreakerStore {
	s := breaker.DefaultSettings(next.Name() + "-api")
	s.IsSuccessful = func(err error) bool {
		return breaker.IgnoreCanceled(err) || errors.Is(err, ErrNotFound)
	}
	return &CircuitBreakerStore{next: next, cb: breaker.New(s)}
}

// BreakerState returns "closed", "half-open" or "open".
func (c *CircuitBreakerStore) BreakerState() string {
	return c.cb.State()
}

// Name implements Store.
func (c *CircuitBreakerStore) Name() string {
	return c.next.Name()
}

// GetUserByEmail implements Store.
func (c *CircuitBreakerStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return breaker.Execute(c.cb, func() (*models.User, error) {
		return c.next.GetUserByEmail(ctx, email)
	})
}

// GetUserByID implements Store.
func (c *CircuitBreakerStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return breaker.Execute(c.cb, func() (*models.User, error) {
		return c.next.GetUserByID(ctx, id)
	})
}

// InsertRecommendation implements Store.
func (c *CircuitBreakerStore) InsertRecommendation(ctx context.Context, rec models.RecommendationRecord) error {
	_, err := breaker.Execute(c.cb, func() (struct{}, error) {
		return struct{}{}, c.next.InsertRecommendation(ctx, rec)
	})
	return err
}

// GetStreak implements Store.
func (c *CircuitBreakerStore) GetStreak(ctx context.Context, email string) (*models.StreakRecord, error) {
	return breaker.Execute(c.cb, func() (*models.StreakRecord, error) {
		return c.next.GetStreak(ctx, email)
	})
}

// ModifyStreak implements Store.
func (c *CircuitBreakerStore) ModifyStreak(ctx context.Context, email string, advance AdvanceFunc) (*models.StreakRecord, error) {
	return breaker.Execute(c.cb, func() (*models.StreakRecord, error) {
		return c.next.ModifyStreak(ctx, email, advance)
	})
}

// Ping implements Store. Health checks bypass the breaker so readiness
// reports the real upstream state.
func (c *CircuitBreakerStore) Ping(ctx context.Context) error {
	return c.next.Ping(ctx)
}

// Close implements Store.
func (c *CircuitBreakerStore) Close() error {
	return c.next.Close()
}

// Unwrap returns the wrapped store.
func (c *CircuitBreakerStore) Unwrap() Store {
	return c.next
}
