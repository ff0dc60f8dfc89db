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

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

const userColumns = `id, email, name, age, gender, chronic_conditions, fitness_level, mood, last_exercise_completed`

// GetUserByEmail implements store.Store
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	user, err := db.queryUser(ctx, "email", email)
	store.Observe(backendName, "select", store.TableUsers, start, err)
	return user, err
}

// GetUserByID implements store.Store
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	start := time.Now()
	user, err := db.queryUser(ctx, "id", id)
	store.Observe(backendName, "select", store.TableUsers, start, err)
	return user, err
}

// queryUser loads one user by a unique column. column is never user input.
func (db *DB) queryUser(ctx context.Context, column, value string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s = ? LIMIT 1", userColumns, column)

	var (
		u          models.User
		conditions string
	)
	err := db.conn.QueryRowContext(ctx, query, value).Scan(
		&u.ID, &u.Email, &u.Name, &u.Age, &u.Gender, &conditions,
		&u.FitnessLevel, &u.Mood, &u.LastExerciseCompleted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s=%q: %w", column, value, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if err := json.Unmarshal([]byte(conditions), &u.ChronicConditions); err != nil {
		return nil, fmt.Errorf("failed to decode chronic conditions for user %s: %w", u.ID, err)
	}
	return &u, nil
}

// SeedUsers implements store.Seeder. Users are replaced by email or id.
func (db *DB) SeedUsers(ctx context.Context, users []models.User) error {
	start := time.Now()
	err := db.seedUsers(ctx, users)
	store.Observe(backendName, "seed", store.TableUsers, start, err)
	return err
}

func (db *DB) seedUsers(ctx context.Context, users []models.User) error {
	db.writeMu.Lock()
	defer db.writeMu.Unlock()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer rollbackQuietly(tx)

	for i := range users {
		u := users[i]
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		conditions, err := encodeList(u.ChronicConditions)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM users WHERE email = ? OR id = ?`, u.Email, u.ID); err != nil {
			return fmt.Errorf("failed to replace user %s: %w", u.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.Email, u.Name, u.Age, u.Gender, conditions,
			u.FitnessLevel, u.Mood, u.LastExerciseCompleted,
		)
		if err != nil {
			return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit users: %w", err)
	}
	return nil
}

// encodeList stores a string list as JSON text; nil becomes [].
func encodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	b, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}
