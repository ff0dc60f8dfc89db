// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/seniorfit/internal/logging"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// initialize creates tables and indexes
func (db *DB) initialize() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, query := range indexCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	if err := db.Checkpoint(ctx); err != nil {
		logging.Warn().Err(err).Msg("Failed to checkpoint after schema initialization")
	}

	return nil
}

// tableCreationQueries returns the CREATE TABLE statements.
// Timestamps are stored as UTC TIMESTAMP so the ICU extension is not required.
func tableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR PRIMARY KEY,
			email VARCHAR NOT NULL UNIQUE,
			name VARCHAR NOT NULL DEFAULT '',
			age INTEGER NOT NULL DEFAULT 0,
			gender VARCHAR NOT NULL DEFAULT '',
			chronic_conditions VARCHAR NOT NULL DEFAULT '[]',
			fitness_level VARCHAR NOT NULL DEFAULT '',
			mood VARCHAR NOT NULL DEFAULT '',
			last_exercise_completed VARCHAR NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS exercise_recommendations (
			id VARCHAR PRIMARY KEY,
			user_email VARCHAR NOT NULL,
			recommendation VARCHAR NOT NULL,
			conditions VARCHAR NOT NULL DEFAULT '[]',
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS streaks (
			user_email VARCHAR PRIMARY KEY,
			current_streak INTEGER NOT NULL DEFAULT 0,
			last_activity TIMESTAMP NOT NULL
		)`,
	}
}

// indexCreationQueries returns secondary indexes
func indexCreationQueries() []string {
	return []string{
		`CREATE INDEX IF NOT EXISTS idx_recommendations_user_email ON exercise_recommendations(user_email)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendations_created_at ON exercise_recommendations(created_at)`,
	}
}
