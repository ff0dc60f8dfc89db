// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package streak tracks per-user activity streaks.
//
// Every update goes through store.Store.ModifyStreak, which applies the
// advance policy atomically at the storage layer, so concurrent updates for
// one email never lose an increment.
//
// Two policies are available (streak.mode):
//
//	per_call  every update adds one; a new email starts at 1
//	daily     consecutive calendar days in streak.timezone: same day keeps
//	          the value, the next day adds one, a longer gap restarts at 1
package streak

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/seniorfit/internal/config"
	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/metrics"
	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

// Update outcomes, used as metric labels
const (
	OutcomeStarted     = "started"
	OutcomeIncremented = "incremented"
	OutcomeUnchanged   = "unchanged"
	OutcomeReset       = "reset"
)

// Service updates and reads streaks
type Service struct {
	store store.Store
	mode  string
	loc   *time.Location
	now   func() time.Time
}

// NewService creates a streak service. An unknown mode behaves as per_call
// and a nil location as UTC.
func NewService(st store.Store, mode string, loc *time.Location) *Service {
	if mode != config.StreakModeDaily {
		mode = config.StreakModePerCall
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{store: st, mode: mode, loc: loc, now: time.Now}
}

// Mode returns the active policy
func (s *Service) Mode() string {
	return s.mode
}

// Update records activity for email and returns the new streak value
func (s *Service) Update(ctx context.Context, email string) (*models.StreakResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, models.NewValidationError("user_email is required", "user_email")
	}

	now := s.now()

	// outcome is overwritten if the store re-runs the advance function
	var outcome string
	rec, err := s.store.ModifyStreak(ctx, email, func(current *models.StreakRecord) models.StreakRecord {
		next, o := Advance(s.mode, s.loc, now, current)
		outcome = o
		return next
	})
	if err != nil {
		return nil, models.NewUpstreamError(models.DependencyStore, fmt.Errorf("update streak: %w", err))
	}

	metrics.RecordStreakUpdate(outcome)
	logging.Ctx(ctx).Debug().
		Str("user_email", logging.SanitizeEmail(email)).
		Str("outcome", outcome).
		Int("current_streak", rec.CurrentStreak).
		Msg("Streak updated")

	return &models.StreakResponse{CurrentStreak: rec.CurrentStreak}, nil
}

// Get returns the stored streak for email. An email without a streak
// reports zero and no last activity.
func (s *Service) Get(ctx context.Context, email string) (*models.StreakStatusResponse, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, models.NewValidationError("user_email is required", "user_email")
	}

	rec, err := s.store.GetStreak(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return &models.StreakStatusResponse{UserEmail: email}, nil
	}
	if err != nil {
		return nil, models.NewUpstreamError(models.DependencyStore, fmt.Errorf("get streak: %w", err))
	}

	last := rec.LastActivity
	return &models.StreakStatusResponse{
		UserEmail:     email,
		CurrentStreak: rec.CurrentStreak,
		LastActivity:  &last,
	}, nil
}

// Advance computes the next streak record for mode at time now. It is pure
// and safe to run more than once per update.
func Advance(mode string, loc *time.Location, now time.Time, current *models.StreakRecord) (models.StreakRecord, string) {
	next := models.StreakRecord{LastActivity: now.UTC()}
	if current != nil {
		next.UserEmail = current.UserEmail
	}

	if current == nil || current.CurrentStreak <= 0 {
		next.CurrentStreak = 1
		return next, OutcomeStarted
	}

	if mode != config.StreakModeDaily {
		next.CurrentStreak = current.CurrentStreak + 1
		return next, OutcomeIncremented
	}

	switch gap := calendarDays(current.LastActivity, now, loc); {
	case gap < 0:
		// Clock moved backwards; keep the stored record untouched
		return *current, OutcomeUnchanged
	case gap == 0:
		next.CurrentStreak = current.CurrentStreak
		return next, OutcomeUnchanged
	case gap == 1:
		next.CurrentStreak = current.CurrentStreak + 1
		return next, OutcomeIncremented
	default:
		next.CurrentStreak = 1
		return next, OutcomeReset
	}
}

// calendarDays returns the number of calendar days from a to b in loc
func calendarDays(a, b time.Time, loc *time.Location) int {
	return int(dayIndex(b, loc) - dayIndex(a, loc))
}

func dayIndex(t time.Time, loc *time.Location) int64 {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
