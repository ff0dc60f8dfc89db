// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package models

import "time"

// StreakRecord is a user's activity streak (streaks table, unique on user_email).
type StreakRecord struct {
	UserEmail     string    `json:"user_email"`
	CurrentStreak int       `json:"current_streak"`
	LastActivity  time.Time `json:"last_activity"`
}

// StreakRequest is the JSON body form of POST /api/update-streak.
// The email may also arrive as the user_email query parameter.
type StreakRequest struct {
	UserEmail string `json:"user_email" validate:"notblank"`
}

// StreakResponse is returned by POST /api/update-streak.
type StreakResponse struct {
	CurrentStreak int `json:"current_streak"`
}

// StreakStatusResponse is returned by GET /api/streak.
// LastActivity is null when the user has no streak yet.
type StreakStatusResponse struct {
	UserEmail     string     `json:"user_email"`
	CurrentStreak int        `json:"current_streak"`
	LastActivity  *time.Time `json:"last_activity"`
}
