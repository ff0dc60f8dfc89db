// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package api

import (
	"time"

	"github.com/tomtom215/seniorfit/internal/llm"
	"github.com/tomtom215/seniorfit/internal/recommend"
	"github.com/tomtom215/seniorfit/internal/store"
	"github.com/tomtom215/seniorfit/internal/streak"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: JSON encoding, decoding and error responses
//   - handlers_recommend.go: exercise plan, daily suggestion, user lookup, corpus
//   - handlers_streak.go: streak update and read
//   - handlers_health.go: health and probe endpoints
type Handler struct {
	store       store.Store
	recommender *recommend.Service
	streaks     *streak.Service
	generator   llm.Generator
	version     string
	startTime   time.Time
}

// NewHandler creates a new API handler.
//
// The store is only used directly for health checks; request handling goes
// through the recommendation and streak services.
//
// Example:
//
//	handler := api.NewHandler(st, recommender, streaks, gen, version)
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
//	http.ListenAndServe(":8000", router.SetupChi())
func NewHandler(st store.Store, recommender *recommend.Service, streaks *streak.Service, gen llm.Generator, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		store:       st,
		recommender: recommender,
		streaks:     streaks,
		generator:   gen,
		version:     version,
		startTime:   time.Now(),
	}
}
