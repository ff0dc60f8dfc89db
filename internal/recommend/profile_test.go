// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seniorfit/internal/models"
)

func TestCheckUser(t *testing.T) {
	f := newFixture(t, "", nil)
	ctx := context.Background()

	tests := []struct {
		name    string
		userID  string
		email   string
		foundBy string
		wantID  string
	}{
		{"by id", "u-1", "", FoundByID, "u-1"},
		{"id wins over email", "u-1", "beto@example.com", FoundByID, "u-1"},
		{"unknown id falls back to email", "missing", "beto@example.com", FoundByEmail, "u-2"},
		{"email is lowercased", "", "  ANA@Example.COM ", FoundByEmail, "u-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.CheckUser(ctx, tt.userID, tt.email)
			require.NoError(t, err)
			assert.True(t, resp.Found)
			assert.Equal(t, tt.foundBy, resp.FoundBy)
			assert.Equal(t, tt.wantID, resp.RealUserID)
		})
	}
}

func TestCheckUser_ProfileDefaults(t *testing.T) {
	f := newFixture(t, "", nil)

	resp, err := f.svc.CheckUser(context.Background(), "u-2", "")
	require.NoError(t, err)
	assert.Equal(t, "Sin nombre", resp.Name)
	assert.Equal(t, "No especificado", resp.Gender)
	assert.Equal(t, "principiante", resp.Level)
	assert.Equal(t, "beto@example.com", resp.Email)

	resp, err = f.svc.CheckUser(context.Background(), "u-1", "")
	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, 70, resp.Age)
	assert.Equal(t, "intermedio", resp.Level)
}

func TestCheckUser_NotFound(t *testing.T) {
	f := newFixture(t, "", nil)

	_, err := f.svc.CheckUser(context.Background(), "missing", "")
	assert.True(t, errors.Is(err, models.ErrUserNotFound))

	_, err = f.svc.CheckUser(context.Background(), "", "nadie@example.com")
	assert.True(t, errors.Is(err, models.ErrUserNotFound))
}

func TestCheckUser_RequiresKey(t *testing.T) {
	f := newFixture(t, "", nil)

	_, err := f.svc.CheckUser(context.Background(), " ", "")
	assert.True(t, models.IsValidation(err))
}
