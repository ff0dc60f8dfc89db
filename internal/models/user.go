// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package models

// User is a registered app user as stored in the users table.
// The service only reads users; rows are created by the mobile app.
type User struct {
	ID                    string   `json:"id,omitempty"`
	Email                 string   `json:"email"`
	Name                  string   `json:"name"`
	Age                   int      `json:"age"`
	Gender                string   `json:"gender"`
	ChronicConditions     []string `json:"chronic_conditions"`
	FitnessLevel          string   `json:"fitness_level,omitempty"`
	Mood                  string   `json:"mood,omitempty"`
	LastExerciseCompleted string   `json:"last_exercise_completed,omitempty"`
}
