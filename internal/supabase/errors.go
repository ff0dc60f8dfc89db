// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package supabase

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ErrContention is returned when a streak row keeps changing under a
// compare-and-swap update.
var ErrContention = errors.New("streak update lost too many races")

// maxErrorBodySize limits the amount of response body read for error reporting
const maxErrorBodySize = 64 * 1024 // 64KB

// APIError is a PostgREST error response
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "unexpected response"
	}
	if e.Code != "" {
		return fmt.Sprintf("supabase: status %d (%s): %s", e.StatusCode, e.Code, msg)
	}
	return fmt.Sprintf("supabase: status %d: %s", e.StatusCode, msg)
}

// parseAPIError builds an APIError from a failed response body. Bodies that
// are not PostgREST JSON are kept verbatim as the message.
func parseAPIError(statusCode int, body io.Reader) *APIError {
	raw := readBodyForError(body)
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = string(raw)
	}
	return apiErr
}

// readBodyForError reads the response body for error reporting (max 64KB)
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}
