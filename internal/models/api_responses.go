// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package models

import "time"

// ErrorResponse is the body of every non-2xx response.
// Detail is human readable; Code is stable for clients to branch on.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// CheckUserResponse is returned by GET /api/check-user.
type CheckUserResponse struct {
	Found      bool   `json:"found"`
	FoundBy    string `json:"found_by,omitempty"` // "id" or "email"
	RealUserID string `json:"real_user_id,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Age        int    `json:"age,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Level      string `json:"level,omitempty"`
}

// ExerciseCatalogResponse is returned by GET /api/exercises.
type ExerciseCatalogResponse struct {
	Exercises []Exercise `json:"exercises"`
	Count     int        `json:"count"`
}

// HealthStatus is returned by the health endpoints.
type HealthStatus struct {
	Status      string            `json:"status"` // "healthy", "degraded"
	Version     string            `json:"version"`
	Store       string            `json:"store"`
	LLMProvider string            `json:"llm_provider"`
	Uptime      float64           `json:"uptime_seconds"`
	Checks      map[string]string `json:"checks,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}
