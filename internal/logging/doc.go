// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package logging provides centralized zerolog-based structured logging.
//
// JSON output is used in production and console output for development.
// Request-scoped fields (request_id, correlation_id) travel in the
// context and are attached by Ctx:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Msg("Server starting")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Model call failed")
//
// Always terminate log chains with .Msg() or .Send(); an unterminated
// event is never emitted.
//
// # Privacy
//
// User emails identify older adults and their health conditions. Log them
// through SanitizeEmail, and pass any other client-supplied string through
// SanitizeValue.
//
// # Supervisor Integration
//
// NewSlogLogger returns an slog.Logger backed by the global zerolog logger
// so that suture events (through sutureslog) share the same output.
package logging
