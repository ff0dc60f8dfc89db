// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/seniorfit/internal/models"
)

// Error codes for API responses
const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeUpstreamFailure    = "UPSTREAM_FAILURE"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// userNotFoundDetail is the detail clients already match on
const userNotFoundDetail = "Usuario no encontrado"

// classifyError maps a service error onto status, code and detail
func classifyError(err error) (int, string, string) {
	var (
		validationErr *models.ValidationError
		upstreamErr   *models.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, ErrCodeValidationFailed, validationErr.Message
	case errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound, ErrCodeNotFound, userNotFoundDetail
	case errors.As(err, &upstreamErr):
		return http.StatusBadGateway, ErrCodeUpstreamFailure, upstreamErr.Error()
	default:
		return http.StatusInternalServerError, ErrCodeInternalError, err.Error()
	}
}
