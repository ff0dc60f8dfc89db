// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package api

import (
	"net/http"
	"strings"

	"github.com/tomtom215/seniorfit/internal/models"
)

// UpdateStreak handles POST /api/update-streak.
//
// The email is read from the user_email query parameter; when that is
// absent a JSON body {user_email} is accepted instead.
//
// @Summary Record activity and advance the streak
// @Description Creates the streak at 1 or advances it according to the configured streak mode.
// @Tags Streaks
// @Accept json
// @Produce json
// @Param user_email query string false "User email"
// @Param request body models.StreakRequest false "User email, when the query parameter is absent"
// @Success 200 {object} models.StreakResponse "Updated streak"
// @Failure 400 {object} models.ErrorResponse "Missing email"
// @Failure 502 {object} models.ErrorResponse "Store failure"
// @Router /update-streak [post]
func (h *Handler) UpdateStreak(w http.ResponseWriter, r *http.Request) {
	req := models.StreakRequest{UserEmail: r.URL.Query().Get("user_email")}
	if strings.TrimSpace(req.UserEmail) == "" && r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, err)
			return
		}
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.streaks.Update(r.Context(), req.UserEmail)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// GetStreak handles GET /api/streak?user_email=
//
// @Summary Get the current streak
// @Tags Streaks
// @Produce json
// @Param user_email query string true "User email"
// @Success 200 {object} models.StreakStatusResponse "Current streak; zero with null last_activity when none exists"
// @Failure 400 {object} models.ErrorResponse "Missing email"
// @Failure 502 {object} models.ErrorResponse "Store failure"
// @Router /streak [get]
func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	resp, err := h.streaks.Get(r.Context(), r.URL.Query().Get("user_email"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
