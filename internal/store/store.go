// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package store defines the persistence boundary of the service.
//
// Three tables back the API: users (read-only here), exercise_recommendations
// (append-only) and streaks (one row per email, mutated only through
// ModifyStreak). Backends live in their own packages:
//
//   - internal/supabase: hosted PostgREST tables (production default)
//   - internal/database: embedded DuckDB file
//   - internal/kvstore: embedded BadgerDB
//   - this package: in-memory maps for development and tests
//
// Every backend must pass the conformance suite in store/storetest.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/seniorfit/internal/models"
)

// ErrNotFound is returned when a user or streak row does not exist.
var ErrNotFound = errors.New("record not found")

// Table names shared by every backend.
const (
	TableUsers           = "users"
	TableRecommendations = "exercise_recommendations"
	TableStreaks         = "streaks"
)

// AdvanceFunc computes the next streak record from the current one.
// current is nil when the email has no streak yet. Implementations must be
// pure: backends may call them more than once when a write races.
type AdvanceFunc func(current *models.StreakRecord) models.StreakRecord

// Store is the row store used by the recommendation and streak services.
type Store interface {
	// GetUserByEmail returns the user with the exact email, or ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns the user with the given id, or ErrNotFound.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// InsertRecommendation appends a generated plan.
	InsertRecommendation(ctx context.Context, rec models.RecommendationRecord) error

	// GetStreak returns the streak row for email, or ErrNotFound.
	GetStreak(ctx context.Context, email string) (*models.StreakRecord, error)

	// ModifyStreak atomically replaces the streak row for email with
	// advance(current) and returns the stored result. Concurrent calls for
	// the same email are serialized: none of them observes a stale value.
	ModifyStreak(ctx context.Context, email string, advance AdvanceFunc) (*models.StreakRecord, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error

	// Name identifies the backend in logs, metrics and health output.
	Name() string
}

// Seeder is implemented by embedded backends that own their users table.
type Seeder interface {
	SeedUsers(ctx context.Context, users []models.User) error
}

// Maintainer is implemented by embedded backends with periodic upkeep
// (value log GC, WAL checkpoints). It runs from the supervisor tree.
type Maintainer interface {
	Maintain(ctx context.Context) error
}

// Apply runs advance and stamps the email so backends cannot store a row
// under the wrong key.
func Apply(email string, current *models.StreakRecord, advance AdvanceFunc) models.StreakRecord {
	var snapshot *models.StreakRecord
	if current != nil {
		c := *current
		snapshot = &c
	}
	next := advance(snapshot)
	next.UserEmail = email
	if next.CurrentStreak < 0 {
		next.CurrentStreak = 0
	}
	if next.LastActivity.IsZero() {
		next.LastActivity = time.Now().UTC()
	}
	return next
}
