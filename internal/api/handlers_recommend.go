// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package api

import (
	"net/http"

	"github.com/tomtom215/seniorfit/internal/models"
)

// RecommendExercises handles POST /api/recommend-exercises.
// The body is {user_email, conditions, activity_level?}; the response holds
// the matching corpus entries and the generated plan.
//
// @Summary Recommend exercises for a user's conditions
// @Description Matches the conditions against the exercise catalog, asks the model for a personalized weekly plan and logs it.
// @Description Conditions may be an empty list.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.ExerciseRequest true "User email, conditions and optional activity level"
// @Success 200 {object} models.ExerciseRecommendationResponse "Matched exercises and generated plan"
// @Failure 400 {object} models.ErrorResponse "Malformed or incomplete body"
// @Failure 404 {object} models.ErrorResponse "Unknown user"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Store or model failure"
// @Router /recommend-exercises [post]
func (h *Handler) RecommendExercises(w http.ResponseWriter, r *http.Request) {
	var req models.ExerciseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.recommender.Recommend(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// DailyRecommendation handles POST /api/daily-recommendation.
// The body is {user_id} where user_id may also be an email.
//
// @Summary Get today's coach recommendation
// @Description Builds a short motivational message and one exercise from the user's profile.
// @Description Falls back to a fixed stretching suggestion when the model fails or answers with invalid JSON.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.DailyRecommendationRequest true "User ID or email"
// @Success 200 {object} models.DailyRecommendationResponse "Daily recommendation"
// @Failure 400 {object} models.ErrorResponse "Neither user_id nor user_email given"
// @Failure 404 {object} models.ErrorResponse "Unknown user"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /daily-recommendation [post]
func (h *Handler) DailyRecommendation(w http.ResponseWriter, r *http.Request) {
	var req models.DailyRecommendationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.recommender.Daily(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// CheckUser handles GET /api/check-user?user_id=&email=.
// userId is accepted as an alias for user_id.
//
// @Summary Look up a user profile
// @Description Looks the user up by ID first, then by email, and returns a profile summary.
// @Tags Users
// @Produce json
// @Param user_id query string false "User ID (alias userId)"
// @Param email query string false "User email"
// @Success 200 {object} models.CheckUserResponse "Profile summary"
// @Failure 404 {object} models.ErrorResponse "Unknown user"
// @Router /check-user [get]
func (h *Handler) CheckUser(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("user_id")
	if userID == "" {
		userID = q.Get("userId")
	}

	resp, err := h.recommender.CheckUser(r.Context(), userID, q.Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// Exercises handles GET /api/exercises
//
// @Summary List the exercise catalog
// @Tags Recommendations
// @Produce json
// @Success 200 {object} models.ExerciseCatalogResponse "Exercise catalog"
// @Router /exercises [get]
func (h *Handler) Exercises(w http.ResponseWriter, r *http.Request) {
	exercises := h.recommender.Corpus().All()
	respondJSON(w, http.StatusOK, &models.ExerciseCatalogResponse{
		Exercises: exercises,
		Count:     len(exercises),
	})
}
