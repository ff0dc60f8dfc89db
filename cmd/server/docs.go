// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// General API information for swag. Regenerate the docs package with:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title Senior Fitness API
// @version 1.0
// @description Exercise recommendations and activity streaks for older adults.
// @description Plans are generated by a language model from a fixed exercise catalog keyed by chronic condition.
// @description Every error response has the shape {"detail": "...", "code": "ERROR_CODE", "request_id": "..."}.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/seniorfit/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness endpoints
//
// @tag.name Recommendations
// @tag.description Exercise plans, the daily coach message and the exercise catalog
//
// @tag.name Streaks
// @tag.description Activity streak tracking
//
// @tag.name Users
// @tag.description User profile lookup
package main
