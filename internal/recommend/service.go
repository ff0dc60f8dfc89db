// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/seniorfit/internal/config"
	"github.com/tomtom215/seniorfit/internal/corpus"
	"github.com/tomtom215/seniorfit/internal/llm"
	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/metrics"
	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

// Recommendation kinds used as metric labels
const (
	KindPlan  = "plan"
	KindDaily = "daily"
)

// Settings are the fixed generation parameters
type Settings struct {
	SystemRole           string
	MaxTokens            int
	Temperature          float64
	DefaultActivityLevel string

	DailyMaxTokens   int
	DailyTemperature float64
	DailyTopP        float64
}

// SettingsFromConfig maps recommend configuration to Settings
func SettingsFromConfig(cfg *config.RecommendConfig) Settings {
	return Settings{
		SystemRole:           PhysiotherapistRole,
		MaxTokens:            cfg.MaxTokens,
		Temperature:          cfg.Temperature,
		DefaultActivityLevel: cfg.DefaultActivityLevel,
		DailyMaxTokens:       cfg.DailyMaxTokens,
		DailyTemperature:     cfg.DailyTemperature,
		DailyTopP:            cfg.DailyTopP,
	}
}

// Service generates recommendations
type Service struct {
	store    store.Store
	corpus   *corpus.Corpus
	gen      llm.Generator
	settings Settings
	now      func() time.Time
}

// NewService creates a Service. Empty settings fields fall back to the
// documented defaults.
func NewService(st store.Store, c *corpus.Corpus, gen llm.Generator, settings Settings) *Service {
	if settings.SystemRole == "" {
		settings.SystemRole = PhysiotherapistRole
	}
	if settings.MaxTokens <= 0 {
		settings.MaxTokens = 500
	}
	if settings.DefaultActivityLevel == "" {
		settings.DefaultActivityLevel = "beginner"
	}
	if settings.DailyMaxTokens <= 0 {
		settings.DailyMaxTokens = 512
	}

	return &Service{
		store:    st,
		corpus:   c,
		gen:      gen,
		settings: settings,
		now:      time.Now,
	}
}

// Corpus returns the exercise corpus used for matching
func (s *Service) Corpus() *corpus.Corpus {
	return s.corpus
}

// Recommend returns the corpus matches and a generated plan for the user,
// and appends the plan to the recommendation log.
func (s *Service) Recommend(ctx context.Context, req models.ExerciseRequest) (*models.ExerciseRecommendationResponse, error) {
	email := strings.TrimSpace(req.UserEmail)
	if email == "" {
		return nil, models.NewValidationError("user_email is required", "user_email")
	}
	if req.Conditions == nil {
		return nil, models.NewValidationError("conditions is required", "conditions")
	}
	activityLevel := strings.TrimSpace(req.ActivityLevel)
	if activityLevel == "" {
		activityLevel = s.settings.DefaultActivityLevel
	}

	logger := logging.Ctx(ctx).With().Str("user_email", logging.SanitizeEmail(email)).Logger()

	user, err := s.lookupUser(ctx, func(ctx context.Context) (*models.User, error) {
		return s.store.GetUserByEmail(ctx, email)
	})
	if err != nil {
		return nil, err
	}

	exercises := s.corpus.Match(req.Conditions)
	metrics.CorpusMatches.Observe(float64(len(exercises)))

	prompt, err := buildPlanPrompt(user, req.Conditions, activityLevel, exercises)
	if err != nil {
		return nil, err
	}

	plan, err := s.gen.Generate(ctx, llm.Request{
		System:      s.settings.SystemRole,
		Prompt:      prompt,
		MaxTokens:   s.settings.MaxTokens,
		Temperature: s.settings.Temperature,
	})
	if err != nil {
		return nil, models.NewUpstreamError(models.DependencyLLM, err)
	}

	err = s.store.InsertRecommendation(ctx, models.RecommendationRecord{
		UserEmail:      email,
		Recommendation: plan,
		Conditions:     req.Conditions,
	})
	if err != nil {
		return nil, models.NewUpstreamError(models.DependencyStore, fmt.Errorf("save recommendation: %w", err))
	}

	metrics.RecordRecommendation(KindPlan, models.SourceModel)
	logger.Info().
		Int("conditions", len(req.Conditions)).
		Int("matched_exercises", len(exercises)).
		Str("activity_level", activityLevel).
		Msg("Exercise plan generated")

	return &models.ExerciseRecommendationResponse{
		RecommendedExercises: exercises,
		AIRecommendation:     plan,
	}, nil
}

// lookupUser maps store errors onto the API taxonomy
func (s *Service) lookupUser(ctx context.Context, get func(context.Context) (*models.User, error)) (*models.User, error) {
	user, err := get(ctx)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("%w: %v", models.ErrUserNotFound, err)
	default:
		return nil, models.NewUpstreamError(models.DependencyStore, err)
	}
}
