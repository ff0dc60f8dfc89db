// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

// queryRower is satisfied by *sql.DB and *sql.Tx
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// GetStreak implements store.Store
func (db *DB) GetStreak(ctx context.Context, email string) (*models.StreakRecord, error) {
	start := time.Now()
	rec, err := getStreak(ctx, db.conn, email)
	store.Observe(backendName, "select", store.TableStreaks, start, err)
	return rec, err
}

func getStreak(ctx context.Context, q queryRower, email string) (*models.StreakRecord, error) {
	rec := models.StreakRecord{UserEmail: email}
	err := q.QueryRowContext(ctx,
		`SELECT current_streak, last_activity FROM streaks WHERE user_email = ?`, email,
	).Scan(&rec.CurrentStreak, &rec.LastActivity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("streak %q: %w", email, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query streak: %w", err)
	}
	rec.LastActivity = rec.LastActivity.UTC()
	return &rec, nil
}

// ModifyStreak implements store.Store. The read and the upsert share one
// transaction and writers are serialized by writeMu.
func (db *DB) ModifyStreak(ctx context.Context, email string, advance store.AdvanceFunc) (*models.StreakRecord, error) {
	start := time.Now()
	rec, err := db.modifyStreak(ctx, email, advance)
	store.Observe(backendName, "upsert", store.TableStreaks, start, err)
	return rec, err
}

func (db *DB) modifyStreak(ctx context.Context, email string, advance store.AdvanceFunc) (*models.StreakRecord, error) {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	current, err := getStreak(ctx, tx, email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	next := store.Apply(email, current, advance)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO streaks (user_email, current_streak, last_activity) VALUES (?, ?, ?)
		 ON CONFLICT (user_email) DO UPDATE SET
		   current_streak = excluded.current_streak,
		   last_activity = excluded.last_activity`,
		next.UserEmail, next.CurrentStreak, next.LastActivity.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert streak: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit streak: %w", err)
	}

	next.LastActivity = next.LastActivity.UTC()
	return &next, nil
}
