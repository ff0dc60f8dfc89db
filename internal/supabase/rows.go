// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package supabase

import (
	"bytes"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/seniorfit/internal/models"
)

// rowID accepts both text (uuid) and numeric (bigserial) primary keys.
type rowID string

func (id *rowID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = rowID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", b, err)
	}
	*id = rowID(n.String())
	return nil
}

// pgTime parses both timestamptz and timestamp (no zone) columns.
type pgTime struct {
	time.Time
}

// Layouts PostgREST uses for timestamp columns
var pgTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07",
	"2006-01-02 15:04:05.999999",
}

func (t *pgTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range pgTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

func (t pgTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

// userRow is a row of the users table. Older rows carry "level" instead of
// "fitness_level".
type userRow struct {
	ID                    rowID    `json:"id"`
	Email                 string   `json:"email"`
	Name                  string   `json:"name"`
	Age                   int      `json:"age"`
	Gender                string   `json:"gender"`
	ChronicConditions     []string `json:"chronic_conditions"`
	FitnessLevel          string   `json:"fitness_level"`
	Level                 string   `json:"level"`
	Mood                  string   `json:"mood"`
	LastExerciseCompleted string   `json:"last_exercise_completed"`
}

func (r *userRow) toModel() *models.User {
	level := r.FitnessLevel
	if level == "" {
		level = r.Level
	}
	return &models.User{
		ID:                    string(r.ID),
		Email:                 r.Email,
		Name:                  r.Name,
		Age:                   r.Age,
		Gender:                r.Gender,
		ChronicConditions:     r.ChronicConditions,
		FitnessLevel:          level,
		Mood:                  r.Mood,
		LastExerciseCompleted: r.LastExerciseCompleted,
	}
}

// recommendationRow is the insert payload for exercise_recommendations.
// created_at is left to the column default unless set.
type recommendationRow struct {
	UserEmail      string     `json:"user_email"`
	Recommendation string     `json:"recommendation"`
	Conditions     []string   `json:"conditions"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// streakRow is a row of the streaks table
type streakRow struct {
	UserEmail     string `json:"user_email"`
	CurrentStreak int    `json:"current_streak"`
	LastActivity  pgTime `json:"last_activity"`
}

func newStreakRow(rec models.StreakRecord) streakRow {
	return streakRow{
		UserEmail:     rec.UserEmail,
		CurrentStreak: rec.CurrentStreak,
		LastActivity:  pgTime{Time: rec.LastActivity},
	}
}

func (r *streakRow) toModel() *models.StreakRecord {
	return &models.StreakRecord{
		UserEmail:     r.UserEmail,
		CurrentStreak: r.CurrentStreak,
		LastActivity:  r.LastActivity.Time,
	}
}
