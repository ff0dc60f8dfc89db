// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package store

import (
	"context"

	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/models"
)

// DemoUsers returns the accounts seeded into embedded backends when
// database.seed_demo_data is enabled.
func DemoUsers() []models.User {
	return []models.User{
		{
			ID:                "demo-0001",
			Email:             "maria.lopez@example.com",
			Name:              "María López",
			Age:               72,
			Gender:            "Femenino",
			ChronicConditions: []string{"Hipertensión", "Artrosis"},
			FitnessLevel:      "principiante",
			Mood:              "animada",
		},
		{
			ID:                    "demo-0002",
			Email:                 "jose.garcia@example.com",
			Name:                  "José García",
			Age:                   68,
			Gender:                "Masculino",
			ChronicConditions:     []string{"Diabetes tipo 2"},
			FitnessLevel:          "intermedio",
			Mood:                  "neutral",
			LastExerciseCompleted: "Caminata ligera",
		},
		{
			ID:                "demo-0003",
			Email:             "carmen.ruiz@example.com",
			Name:              "Carmen Ruiz",
			Age:               79,
			Gender:            "Femenino",
			ChronicConditions: []string{"Osteoporosis"},
		},
	}
}

// SeedIfSupported seeds users when s implements Seeder.
func SeedIfSupported(ctx context.Context, s Store, users []models.User) error {
	seeder, ok := s.(Seeder)
	if !ok {
		logging.Debug().Str("backend", s.Name()).Msg("Store does not support seeding, skipping")
		return nil
	}
	if err := seeder.SeedUsers(ctx, users); err != nil {
		return err
	}
	logging.Info().Str("backend", s.Name()).Int("users", len(users)).Msg("Seeded demo users")
	return nil
}
