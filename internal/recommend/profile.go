// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package recommend

import (
	"context"
	"errors"
	"strings"

	"github.com/tomtom215/seniorfit/internal/models"
)

// Lookup keys reported in CheckUserResponse.FoundBy
const (
	FoundByID    = "id"
	FoundByEmail = "email"
)

// Profile display defaults
const (
	defaultDisplayName   = "Sin nombre"
	defaultDisplayGender = "No especificado"
)

// CheckUser resolves a user by id, then by email, and returns the profile
// summary the app shows after sign-in. Emails are matched lowercased.
func (s *Service) CheckUser(ctx context.Context, userID, email string) (*models.CheckUserResponse, error) {
	userID = strings.TrimSpace(userID)
	email = strings.ToLower(strings.TrimSpace(email))
	if userID == "" && email == "" {
		return nil, models.NewValidationError("user_id or email is required", "user_id", "email")
	}

	user, foundBy, err := s.findUser(ctx, userID, email)
	if err != nil {
		return nil, err
	}

	return &models.CheckUserResponse{
		Found:      true,
		FoundBy:    foundBy,
		RealUserID: user.ID,
		Name:       firstNonEmpty(user.Name, defaultDisplayName),
		Email:      user.Email,
		Age:        user.Age,
		Gender:     firstNonEmpty(user.Gender, defaultDisplayGender),
		Level:      firstNonEmpty(user.FitnessLevel, defaultLevel),
	}, nil
}

// findUser tries the id first and falls back to the email. A miss on both
// returns models.ErrUserNotFound.
func (s *Service) findUser(ctx context.Context, id, email string) (*models.User, string, error) {
	if id != "" {
		user, err := s.lookupUser(ctx, func(ctx context.Context) (*models.User, error) {
			return s.store.GetUserByID(ctx, id)
		})
		if !errors.Is(err, models.ErrUserNotFound) {
			return user, FoundByID, err
		}
		if email == "" {
			return nil, "", err
		}
	}

	user, err := s.lookupUser(ctx, func(ctx context.Context) (*models.User, error) {
		return s.store.GetUserByEmail(ctx, email)
	})
	if err != nil {
		return nil, "", err
	}
	return user, FoundByEmail, nil
}
