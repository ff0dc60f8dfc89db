// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/validation"
)

// maxBodyBytes bounds request bodies; the largest legitimate payload is a
// list of condition names.
const maxBodyBytes = 1 << 20

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondError sends the error body with the request ID attached
func respondError(w http.ResponseWriter, r *http.Request, status int, code, detail string) {
	respondJSON(w, status, &models.ErrorResponse{
		Detail:    detail,
		Code:      code,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

// writeError classifies err, logs it and sends the error body.
// Client errors log at debug, dependency failures at warn and the rest at error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, detail := classifyError(err)

	logger := logging.Ctx(r.Context())
	event := logger.Error()
	switch {
	case status < http.StatusInternalServerError:
		event = logger.Debug()
	case status == http.StatusBadGateway:
		event = logger.Warn()
	}
	event.
		Str("code", code).
		Int("status", status).
		Str("error", logging.SanitizeValue(err.Error())).
		Msg("API error")

	respondError(w, r, status, code, detail)
}

// decodeJSON reads a single JSON document from the request body into dst.
// Decoding failures are returned as validation errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return models.NewValidationError("request body is required")
		case errors.As(err, &maxErr):
			return models.NewValidationError("request body too large")
		default:
			return models.NewValidationError("invalid JSON body: " + err.Error())
		}
	}
	return nil
}

// validateRequest runs the struct's validate tags
func validateRequest(v interface{}) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return models.NewValidationError(verr.Error(), verr.Fields()...)
	}
	return nil
}
