// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package logging

import (
	"strings"
	"unicode"
)

// maxLogValueLength caps client-supplied values written to logs.
const maxLogValueLength = 200

// SanitizeEmail masks an email address for logging.
// Example: "maria.lopez@example.com" -> "ma***@example.com"
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}

	atIndex := strings.Index(email, "@")
	if atIndex <= 0 {
		return "***"
	}

	localPart := email[:atIndex]
	domain := SanitizeValue(email[atIndex:])

	if len(localPart) <= 2 {
		return "***" + domain
	}
	return localPart[:2] + "***" + domain
}

// SanitizeToken masks a credential, showing only the first and last 4 characters.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeValue strips control characters (log injection) and truncates
// client-supplied values before they are logged.
func SanitizeValue(value string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)

	if len(cleaned) > maxLogValueLength {
		return cleaned[:maxLogValueLength] + "..."
	}
	return cleaned
}
