// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package storetest holds the behavior every store.Store backend must share.
// Backend packages call Run from their own tests.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

// Factory returns a fresh, empty store seeded with users. The store is
// closed by the suite.
type Factory func(t *testing.T, users []models.User) store.Store

// Options tunes the suite for backends with different characteristics.
type Options struct {
	// Concurrency is the number of parallel ModifyStreak calls in the
	// atomicity test. Zero means 20.
	Concurrency int

	// CountRecommendations reads back the number of plans stored for
	// email. The recommendation log cases are skipped when it is nil.
	CountRecommendations func(t *testing.T, s store.Store, email string) int
}

// Users returns the fixture users loaded into every store under test.
func Users() []models.User {
	return []models.User{
		{
			ID:                "u-1",
			Email:             "ana@example.com",
			Name:              "Ana",
			Age:               70,
			Gender:            "Femenino",
			ChronicConditions: []string{"Hipertensión"},
			FitnessLevel:      "principiante",
		},
		{
			ID:                "u-2",
			Email:             "luis@example.com",
			Name:              "Luis",
			Age:               81,
			Gender:            "Masculino",
			ChronicConditions: []string{"Artrosis", "Diabetes tipo 2"},
		},
	}
}

// Increment is the per-call advance policy used by the suite.
func Increment(current *models.StreakRecord) models.StreakRecord {
	next := models.StreakRecord{CurrentStreak: 1, LastActivity: time.Now().UTC()}
	if current != nil {
		next.CurrentStreak = current.CurrentStreak + 1
	}
	return next
}

// Run executes the conformance suite against the backend built by newStore.
func Run(t *testing.T, newStore Factory, opts Options) {
	t.Helper()
	if opts.Concurrency == 0 {
		opts.Concurrency = 20
	}

	open := func(t *testing.T) store.Store {
		s := newStore(t, Users())
		t.Cleanup(func() { _ = s.Close() })
		return s
	}

	t.Run("Name", func(t *testing.T) {
		s := open(t)
		assert.NotEmpty(t, s.Name())
	})

	t.Run("Ping", func(t *testing.T) {
		s := open(t)
		require.NoError(t, s.Ping(context.Background()))
	})

	t.Run("GetUserByEmail", func(t *testing.T) {
		s := open(t)
		u, err := s.GetUserByEmail(context.Background(), "luis@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Luis", u.Name)
		assert.Equal(t, 81, u.Age)
		assert.Equal(t, "Masculino", u.Gender)
		assert.Equal(t, []string{"Artrosis", "Diabetes tipo 2"}, u.ChronicConditions)
	})

	t.Run("GetUserByEmailNotFound", func(t *testing.T) {
		s := open(t)
		_, err := s.GetUserByEmail(context.Background(), "nobody@example.com")
		require.Error(t, err)
		assert.True(t, errors.Is(err, store.ErrNotFound), "want ErrNotFound, got %v", err)
	})

	t.Run("GetUserByID", func(t *testing.T) {
		s := open(t)
		u, err := s.GetUserByID(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.Equal(t, "principiante", u.FitnessLevel)

		_, err = s.GetUserByID(context.Background(), "missing")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("InsertRecommendation", func(t *testing.T) {
		s := open(t)
		err := s.InsertRecommendation(context.Background(), models.RecommendationRecord{
			UserEmail:      "ana@example.com",
			Recommendation: "Caminar 20 minutos",
			Conditions:     []string{"Hipertensión"},
		})
		require.NoError(t, err)
	})

	t.Run("InsertRecommendationSameInstant", func(t *testing.T) {
		if opts.CountRecommendations == nil {
			t.Skip("backend cannot read back recommendations")
		}
		s := open(t)
		ctx := context.Background()
		stamp := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

		for _, plan := range []string{"plan A", "plan B"} {
			require.NoError(t, s.InsertRecommendation(ctx, models.RecommendationRecord{
				UserEmail:      "ana@example.com",
				Recommendation: plan,
				Conditions:     []string{},
				CreatedAt:      stamp,
			}))
		}
		assert.Equal(t, 2, opts.CountRecommendations(t, s, "ana@example.com"))
		assert.Equal(t, 0, opts.CountRecommendations(t, s, "luis@example.com"))
	})

	t.Run("GetStreakNotFound", func(t *testing.T) {
		s := open(t)
		_, err := s.GetStreak(context.Background(), "ana@example.com")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("ModifyStreakCreatesThenIncrements", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()

		var sawNil bool
		first, err := s.ModifyStreak(ctx, "new@example.com", func(cur *models.StreakRecord) models.StreakRecord {
			sawNil = cur == nil
			return Increment(cur)
		})
		require.NoError(t, err)
		assert.True(t, sawNil, "first advance must see no current record")
		assert.Equal(t, 1, first.CurrentStreak)
		assert.Equal(t, "new@example.com", first.UserEmail)

		second, err := s.ModifyStreak(ctx, "new@example.com", Increment)
		require.NoError(t, err)
		assert.Equal(t, 2, second.CurrentStreak)

		got, err := s.GetStreak(ctx, "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, 2, got.CurrentStreak)
		assert.False(t, got.LastActivity.IsZero())
	})

	t.Run("ModifyStreakPreservesLastActivity", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		stamp := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

		_, err := s.ModifyStreak(ctx, "ana@example.com", func(*models.StreakRecord) models.StreakRecord {
			return models.StreakRecord{CurrentStreak: 5, LastActivity: stamp}
		})
		require.NoError(t, err)

		var seen time.Time
		_, err = s.ModifyStreak(ctx, "ana@example.com", func(cur *models.StreakRecord) models.StreakRecord {
			require.NotNil(t, cur)
			seen = cur.LastActivity
			return *cur
		})
		require.NoError(t, err)
		assert.True(t, stamp.Equal(seen), "last activity round trip: got %v want %v", seen, stamp)
	})

	t.Run("ModifyStreakIsolatesEmails", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		for i := 0; i < 3; i++ {
			_, err := s.ModifyStreak(ctx, "ana@example.com", Increment)
			require.NoError(t, err)
		}
		other, err := s.ModifyStreak(ctx, "luis@example.com", Increment)
		require.NoError(t, err)
		assert.Equal(t, 1, other.CurrentStreak)
	})

	t.Run("ModifyStreakConcurrent", func(t *testing.T) {
		s := open(t)
		ctx := context.Background()
		email := "race@example.com"

		var wg sync.WaitGroup
		errs := make(chan error, opts.Concurrency)
		for i := 0; i < opts.Concurrency; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if _, err := s.ModifyStreak(ctx, email, Increment); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			t.Errorf("concurrent modify: %v", err)
		}

		got, err := s.GetStreak(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, opts.Concurrency, got.CurrentStreak, fmt.Sprintf("%d concurrent increments", opts.Concurrency))
	})

	t.Run("CanceledContext", func(t *testing.T) {
		s := open(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.GetUserByEmail(ctx, "ana@example.com")
		assert.Error(t, err)
	})
}
