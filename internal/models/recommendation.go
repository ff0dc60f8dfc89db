// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package models

import "time"

// RecommendationRecord is the append-only log entry written for every
// generated exercise plan (exercise_recommendations table).
type RecommendationRecord struct {
	UserEmail      string    `json:"user_email"`
	Recommendation string    `json:"recommendation"`
	Conditions     []string  `json:"conditions"`
	CreatedAt      time.Time `json:"created_at"`
}

// ExerciseRequest is the body of POST /api/recommend-exercises.
// Conditions must be present but may be empty.
type ExerciseRequest struct {
	UserEmail     string   `json:"user_email" validate:"notblank"`
	Conditions    []string `json:"conditions" validate:"required"`
	ActivityLevel string   `json:"activity_level,omitempty"`
}

// ExerciseRecommendationResponse is returned by POST /api/recommend-exercises.
type ExerciseRecommendationResponse struct {
	RecommendedExercises []Exercise `json:"recommended_exercises"`
	AIRecommendation     string     `json:"ai_recommendation"`
}

// Recommendation sources reported by the daily recommendation.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

// DailyRecommendationRequest is the body of POST /api/daily-recommendation.
// Either the user ID or the email identifies the user.
type DailyRecommendationRequest struct {
	UserID    string `json:"user_id" validate:"required_without=UserEmail"`
	UserEmail string `json:"user_email"`
}

// DailyExercise is the single exercise suggested by the daily coach.
type DailyExercise struct {
	Name     string `json:"nombre"`
	Duration string `json:"duracion"`
	Type     string `json:"tipo"`
	Level    string `json:"nivel"`
	Tip      string `json:"consejo"`
}

// DailyRecommendation is the coach message plus one suggested exercise.
// Its JSON shape is the format the model is asked to produce.
type DailyRecommendation struct {
	Message  string        `json:"mensaje"`
	Exercise DailyExercise `json:"ejercicio"`
}

// DailyRecommendationResponse is returned by POST /api/daily-recommendation.
type DailyRecommendationResponse struct {
	Recommendation DailyRecommendation `json:"recommendation"`
	UserID         string              `json:"user_id"`
	Source         string              `json:"source"`
	Model          string              `json:"model"`
	Timestamp      time.Time           `json:"timestamp"`
}
