// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package streak

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seniorfit/internal/config"
	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("time zone %s unavailable: %v", name, err)
	}
	return loc
}

func TestAdvance_PerCall(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	next, outcome := Advance(config.StreakModePerCall, time.UTC, now, nil)
	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, OutcomeStarted, outcome)
	assert.True(t, next.LastActivity.Equal(now))

	// Same instant still increments in per_call mode
	current := &models.StreakRecord{UserEmail: "ana@example.com", CurrentStreak: 4, LastActivity: now}
	next, outcome = Advance(config.StreakModePerCall, time.UTC, now, current)
	assert.Equal(t, 5, next.CurrentStreak)
	assert.Equal(t, OutcomeIncremented, outcome)
	assert.Equal(t, "ana@example.com", next.UserEmail)
	assert.Equal(t, 4, current.CurrentStreak, "input must not be mutated")
}

func TestAdvance_Daily(t *testing.T) {
	t.Parallel()

	last := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		current int
		want    int
		outcome string
	}{
		{"same day", last.Add(2 * time.Hour), 3, 3, OutcomeUnchanged},
		{"next day", last.Add(20 * time.Hour), 3, 4, OutcomeIncremented},
		{"next day just after midnight", time.Date(2026, 3, 11, 0, 0, 1, 0, time.UTC), 3, 4, OutcomeIncremented},
		{"two day gap", last.Add(48 * time.Hour), 3, 1, OutcomeReset},
		{"long gap", last.Add(30 * 24 * time.Hour), 9, 1, OutcomeReset},
		{"zero value restarts", last.Add(time.Hour), 0, 1, OutcomeStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := &models.StreakRecord{UserEmail: "ana@example.com", CurrentStreak: tt.current, LastActivity: last}
			next, outcome := Advance(config.StreakModeDaily, time.UTC, tt.now, rec)
			assert.Equal(t, tt.want, next.CurrentStreak)
			assert.Equal(t, tt.outcome, outcome)
			assert.True(t, next.LastActivity.Equal(tt.now))
		})
	}
}

func TestAdvance_DailyClockBackwards(t *testing.T) {
	t.Parallel()

	last := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	rec := &models.StreakRecord{UserEmail: "ana@example.com", CurrentStreak: 5, LastActivity: last}

	next, outcome := Advance(config.StreakModeDaily, time.UTC, last.Add(-48*time.Hour), rec)
	assert.Equal(t, *rec, next)
	assert.Equal(t, OutcomeUnchanged, outcome)
}

func TestAdvance_DailyUsesTimezone(t *testing.T) {
	t.Parallel()

	madrid := mustLoad(t, "Europe/Madrid")

	// 22:30 UTC on Mar 10 is 23:30 in Madrid; 23:30 UTC is already Mar 11 there
	last := time.Date(2026, 3, 10, 22, 30, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	rec := &models.StreakRecord{CurrentStreak: 2, LastActivity: last}

	next, outcome := Advance(config.StreakModeDaily, time.UTC, now, rec)
	assert.Equal(t, 2, next.CurrentStreak)
	assert.Equal(t, OutcomeUnchanged, outcome)

	next, outcome = Advance(config.StreakModeDaily, madrid, now, rec)
	assert.Equal(t, 3, next.CurrentStreak)
	assert.Equal(t, OutcomeIncremented, outcome)
}

func TestNewService_Defaults(t *testing.T) {
	t.Parallel()

	svc := NewService(store.NewMemoryStore(), "weekly", nil)
	assert.Equal(t, config.StreakModePerCall, svc.Mode())
	assert.Equal(t, time.UTC, svc.loc)

	svc = NewService(store.NewMemoryStore(), config.StreakModeDaily, nil)
	assert.Equal(t, config.StreakModeDaily, svc.Mode())
}

func TestService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(store.NewMemoryStore(), config.StreakModePerCall, time.UTC)

	for want := 1; want <= 3; want++ {
		resp, err := svc.Update(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, want, resp.CurrentStreak)
	}

	// Emails are tracked independently
	resp, err := svc.Update(ctx, "luis@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentStreak)
}

func TestService_UpdateDaily(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewService(store.NewMemoryStore(), config.StreakModeDaily, time.UTC)
	svc.now = func() time.Time { return now }

	steps := []struct {
		advance time.Duration
		want    int
	}{
		{0, 1},
		{3 * time.Hour, 1},
		{24 * time.Hour, 2},
		{24 * time.Hour, 3},
		{72 * time.Hour, 1},
	}
	for i, step := range steps {
		now = now.Add(step.advance)
		resp, err := svc.Update(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, step.want, resp.CurrentStreak, "step %d", i)
	}
}

func TestService_UpdateRequiresEmail(t *testing.T) {
	t.Parallel()

	svc := NewService(store.NewMemoryStore(), "", nil)
	_, err := svc.Update(context.Background(), "   ")

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"user_email"}, ve.Fields)
}

func TestService_UpdateConcurrent(t *testing.T) {
	t.Parallel()

	const n = 40
	svc := NewService(store.NewMemoryStore(), config.StreakModePerCall, time.UTC)

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Update(context.Background(), "ana@example.com"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("Update() error = %v", err)
	}

	got, err := svc.Get(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, n, got.CurrentStreak)
}

func TestService_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewService(store.NewMemoryStore(), config.StreakModePerCall, time.UTC)
	svc.now = func() time.Time { return now }

	got, err := svc.Get(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.UserEmail)
	assert.Zero(t, got.CurrentStreak)
	assert.Nil(t, got.LastActivity)

	_, err = svc.Update(ctx, "ana@example.com")
	require.NoError(t, err)

	got, err = svc.Get(ctx, " ana@example.com ")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.UserEmail)
	assert.Equal(t, 1, got.CurrentStreak)
	require.NotNil(t, got.LastActivity)
	assert.True(t, got.LastActivity.Equal(now))
}

type brokenStore struct {
	*store.MemoryStore
}

var errBroken = errors.New("connection refused")

func (brokenStore) GetStreak(context.Context, string) (*models.StreakRecord, error) {
	return nil, errBroken
}

func (brokenStore) ModifyStreak(context.Context, string, store.AdvanceFunc) (*models.StreakRecord, error) {
	return nil, errBroken
}

func TestService_StoreFailuresAreUpstream(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewService(brokenStore{store.NewMemoryStore()}, "", nil)

	_, err := svc.Update(ctx, "ana@example.com")
	require.Error(t, err)
	assert.True(t, models.IsUpstream(err))
	assert.ErrorIs(t, err, errBroken)

	_, err = svc.Get(ctx, "ana@example.com")
	require.Error(t, err)
	assert.True(t, models.IsUpstream(err))
}
