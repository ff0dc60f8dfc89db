// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package recommend

import (
	"context"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/seniorfit/internal/llm"
	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/metrics"
	"github.com/tomtom215/seniorfit/internal/models"
)

// Daily returns today's coach suggestion for the user. The user is looked
// up by id, then by email; UserID may also hold an email.
func (s *Service) Daily(ctx context.Context, req models.DailyRecommendationRequest) (*models.DailyRecommendationResponse, error) {
	ref := strings.TrimSpace(req.UserID)
	email := strings.TrimSpace(req.UserEmail)
	if ref == "" && email == "" {
		return nil, models.NewValidationError("user_id is required", "user_id")
	}

	user, err := s.findDailyUser(ctx, ref, email)
	if err != nil {
		return nil, err
	}

	profile := newDailyProfile(user)
	logger := logging.Ctx(ctx).With().Str("user_email", logging.SanitizeEmail(user.Email)).Logger()

	resp := &models.DailyRecommendationResponse{
		UserID:    firstNonEmpty(user.ID, firstNonEmpty(ref, email)),
		Model:     s.gen.Model(),
		Timestamp: s.now().UTC(),
	}

	prompt, err := buildDailyPrompt(profile)
	if err != nil {
		return nil, err
	}

	raw, err := s.gen.Generate(ctx, llm.Request{
		Prompt:      prompt,
		MaxTokens:   s.settings.DailyMaxTokens,
		Temperature: s.settings.DailyTemperature,
		TopP:        s.settings.DailyTopP,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn().Err(err).Msg("Daily recommendation generation failed, using fallback")
		resp.Recommendation = fallbackRecommendation(profile.Level)
		resp.Source = models.SourceFallback
		metrics.RecordRecommendation(KindDaily, models.SourceFallback)
		return resp, nil
	}

	rec, ok := parseDailyRecommendation(raw)
	if !ok {
		logger.Warn().Str("raw", logging.SanitizeValue(raw)).Msg("Could not parse daily recommendation, using fallback")
		resp.Recommendation = fallbackRecommendation(profile.Level)
		resp.Source = models.SourceFallback
		metrics.RecordRecommendation(KindDaily, models.SourceFallback)
		return resp, nil
	}

	resp.Recommendation = rec
	resp.Source = models.SourceModel
	metrics.RecordRecommendation(KindDaily, models.SourceModel)
	logger.Info().Str("exercise", rec.Exercise.Name).Msg("Daily recommendation generated")
	return resp, nil
}

// findDailyUser accepts an email in the id field, as older app builds send one
func (s *Service) findDailyUser(ctx context.Context, ref, email string) (*models.User, error) {
	if email == "" {
		email = ref
	}
	user, _, err := s.findUser(ctx, ref, email)
	return user, err
}

// extractJSONObject strips markdown code fences and any text before the
// first '{' or after the last '}'.
func extractJSONObject(raw string) string {
	text := strings.ReplaceAll(raw, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	if i := strings.Index(text, "{"); i >= 0 {
		text = text[i:]
	}
	if j := strings.LastIndex(text, "}"); j >= 0 {
		text = text[:j+1]
	}
	return strings.TrimSpace(text)
}

// parseDailyRecommendation decodes model output. A reply without a message
// is rejected.
func parseDailyRecommendation(raw string) (models.DailyRecommendation, bool) {
	var rec models.DailyRecommendation
	if err := json.Unmarshal([]byte(extractJSONObject(raw)), &rec); err != nil {
		return models.DailyRecommendation{}, false
	}
	if strings.TrimSpace(rec.Message) == "" {
		return models.DailyRecommendation{}, false
	}
	return rec, true
}

// fallbackRecommendation is the fixed suggestion used when the model
// cannot provide one. level is the user's fitness level.
func fallbackRecommendation(level string) models.DailyRecommendation {
	return models.DailyRecommendation{
		Message: "¡Hola! 🌞 Hoy te recomiendo hacer algunos estiramientos suaves y mantenerte hidratado.",
		Exercise: models.DailyExercise{
			Name:     "Estiramiento de cuello y hombros",
			Duration: "5 minutos",
			Type:     "flexibilidad",
			Level:    level,
			Tip:      "Haz movimientos lentos y suaves, sin forzar.",
		},
	}
}
