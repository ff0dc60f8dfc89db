// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

// InsertRecommendation implements store.Store
func (db *DB) InsertRecommendation(ctx context.Context, rec models.RecommendationRecord) error {
	start := time.Now()
	err := db.insertRecommendation(ctx, rec)
	store.Observe(backendName, "insert", store.TableRecommendations, start, err)
	return err
}

func (db *DB) insertRecommendation(ctx context.Context, rec models.RecommendationRecord) error {
	conditions, err := encodeList(rec.Conditions)
	if err != nil {
		return err
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO exercise_recommendations (id, user_email, recommendation, conditions, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), rec.UserEmail, rec.Recommendation, conditions, createdAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert recommendation: %w", err)
	}
	return nil
}

// CountRecommendations returns the number of stored plans for email
func (db *DB) CountRecommendations(ctx context.Context, email string) (int, error) {
	var n int
	err := db.conn.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM exercise_recommendations WHERE user_email = ?`, email,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count recommendations: %w", err)
	}
	return n, nil
}
