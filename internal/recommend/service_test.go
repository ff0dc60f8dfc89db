// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package recommend

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/seniorfit/internal/corpus"
	"github.com/tomtom215/seniorfit/internal/llm/llmtest"
	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

var testUsers = []models.User{
	{
		ID:                "u-1",
		Email:             "ana@example.com",
		Name:              "Ana",
		Age:               70,
		Gender:            "Femenino",
		ChronicConditions: []string{"Hipertensión"},
		FitnessLevel:      "intermedio",
		Mood:              "motivada",
	},
	{
		ID:    "u-2",
		Email: "beto@example.com",
	},
}

type fixture struct {
	store *store.MemoryStore
	gen   *llmtest.Fake
	svc   *Service
}

func newFixture(t *testing.T, response string, genErr error) *fixture {
	t.Helper()
	st := store.NewMemoryStore()
	require.NoError(t, st.SeedUsers(context.Background(), testUsers))

	gen := &llmtest.Fake{Response: response, Err: genErr, ModelID: "gpt-3.5-turbo"}
	svc := NewService(st, corpus.Default(), gen, Settings{
		MaxTokens:   500,
		Temperature: 0.7,

		DailyMaxTokens:   512,
		DailyTemperature: 0.8,
		DailyTopP:        0.9,
	})
	svc.now = func() time.Time { return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC) }
	return &fixture{store: st, gen: gen, svc: svc}
}

func TestRecommend_HappyPath(t *testing.T) {
	f := newFixture(t, "Plan: caminar 20 minutos", nil)

	resp, err := f.svc.Recommend(context.Background(), models.ExerciseRequest{
		UserEmail:  "ana@example.com",
		Conditions: []string{"hipertensión"},
	})
	require.NoError(t, err)

	require.Len(t, resp.RecommendedExercises, 1)
	assert.Equal(t, 1, resp.RecommendedExercises[0].ID)
	assert.Equal(t, "Plan: caminar 20 minutos", resp.AIRecommendation)

	reqs := f.gen.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, PhysiotherapistRole, reqs[0].System)
	assert.Equal(t, 500, reqs[0].MaxTokens)
	assert.Equal(t, 0.7, reqs[0].Temperature)
	assert.Contains(t, reqs[0].Prompt, "Usuario: Ana, 70 años, Femenino")
	assert.Contains(t, reqs[0].Prompt, "Nivel de actividad: beginner")
	assert.Contains(t, reqs[0].Prompt, "Caminata ligera", "matched exercises are embedded")
	assert.Contains(t, reqs[0].Prompt, "Hipertensión", "non-ASCII kept as UTF-8")
	assert.NotContains(t, reqs[0].Prompt, `\u00f3`, "no ASCII escapes in embedded JSON")

	recs := f.store.Recommendations()
	require.Len(t, recs, 1)
	assert.Equal(t, "ana@example.com", recs[0].UserEmail)
	assert.Equal(t, "Plan: caminar 20 minutos", recs[0].Recommendation)
	assert.Equal(t, []string{"hipertensión"}, recs[0].Conditions)
}

func TestRecommend_EmptyConditions(t *testing.T) {
	f := newFixture(t, "Plan general", nil)

	resp, err := f.svc.Recommend(context.Background(), models.ExerciseRequest{
		UserEmail:     "ana@example.com",
		Conditions:    []string{},
		ActivityLevel: "intermedio",
	})
	require.NoError(t, err)
	assert.NotNil(t, resp.RecommendedExercises)
	assert.Empty(t, resp.RecommendedExercises)
	assert.Contains(t, f.gen.Requests()[0].Prompt, "Ejercicios recomendados del corpus: []")
	assert.Contains(t, f.gen.Requests()[0].Prompt, "Nivel de actividad: intermedio")
}

func TestRecommend_DuplicateConditionsKeepDuplicates(t *testing.T) {
	f := newFixture(t, "Plan", nil)

	resp, err := f.svc.Recommend(context.Background(), models.ExerciseRequest{
		UserEmail:  "ana@example.com",
		Conditions: []string{"Artrosis", "ARTROSIS", "Gota"},
	})
	require.NoError(t, err)
	require.Len(t, resp.RecommendedExercises, 2)
	assert.Equal(t, 3, resp.RecommendedExercises[0].ID)
	assert.Equal(t, 3, resp.RecommendedExercises[1].ID)
}

func TestRecommend_UserNotFound(t *testing.T) {
	f := newFixture(t, "Plan", nil)

	_, err := f.svc.Recommend(context.Background(), models.ExerciseRequest{
		UserEmail:  "nadie@example.com",
		Conditions: []string{"Artrosis"},
	})
	require.ErrorIs(t, err, models.ErrUserNotFound)
	assert.Equal(t, 0, f.gen.Calls(), "no model call for unknown users")
	assert.Empty(t, f.store.Recommendations(), "no write for unknown users")
}

func TestRecommend_Validation(t *testing.T) {
	f := newFixture(t, "Plan", nil)

	tests := []struct {
		name string
		req  models.ExerciseRequest
	}{
		{"missing email", models.ExerciseRequest{Conditions: []string{}}},
		{"blank email", models.ExerciseRequest{UserEmail: "   ", Conditions: []string{}}},
		{"missing conditions", models.ExerciseRequest{UserEmail: "ana@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Recommend(context.Background(), tt.req)
			assert.True(t, models.IsValidation(err), "want validation error, got %v", err)
		})
	}
	assert.Equal(t, 0, f.gen.Calls())
}

func TestRecommend_GeneratorFailureIsUpstream(t *testing.T) {
	f := newFixture(t, "", errors.New("openai: status 503"))

	_, err := f.svc.Recommend(context.Background(), models.ExerciseRequest{
		UserEmail:  "ana@example.com",
		Conditions: []string{"Artrosis"},
	})
	var upstream *models.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, models.DependencyLLM, upstream.Dependency)
	assert.Empty(t, f.store.Recommendations())
}

// failingInsertStore fails writes to the recommendation log
type failingInsertStore struct {
	*store.MemoryStore
}

func (failingInsertStore) InsertRecommendation(context.Context, models.RecommendationRecord) error {
	return errors.New("insert timed out")
}

func TestRecommend_PersistFailureIsUpstream(t *testing.T) {
	mem := store.NewMemoryStore()
	require.NoError(t, mem.SeedUsers(context.Background(), testUsers))
	svc := NewService(failingInsertStore{mem}, corpus.Default(), &llmtest.Fake{Response: "Plan"}, Settings{})

	_, err := svc.Recommend(context.Background(), models.ExerciseRequest{
		UserEmail:  "ana@example.com",
		Conditions: []string{},
	})
	var upstream *models.UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, models.DependencyStore, upstream.Dependency)
	assert.True(t, strings.Contains(err.Error(), "insert timed out"))
}

func TestNewService_Defaults(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), corpus.Default(), &llmtest.Fake{}, Settings{})
	assert.Equal(t, PhysiotherapistRole, svc.settings.SystemRole)
	assert.Equal(t, 500, svc.settings.MaxTokens)
	assert.Equal(t, "beginner", svc.settings.DefaultActivityLevel)
	assert.Equal(t, 512, svc.settings.DailyMaxTokens)
	assert.Equal(t, 4, svc.Corpus().Len())
}
