// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package supabase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/seniorfit/internal/config"
	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/metrics"
	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

const (
	backendName = "supabase"

	// maxSwapAttempts bounds the compare-and-swap loop in ModifyStreak
	maxSwapAttempts = 5

	preferMinimal         = "return=minimal"
	preferRepresentation  = "return=representation"
	preferInsertIfAbsent  = "return=representation,resolution=ignore-duplicates"
	defaultRequestTimeout = 10 * time.Second
)

// Client talks to the Supabase REST API
type Client struct {
	restURL string
	apiKey  string
	client  *http.Client
}

// Compile-time interface check
var _ store.Store = (*Client)(nil)

// NewClient creates a Supabase client. timeout bounds every HTTP call.
func NewClient(cfg *config.SupabaseConfig, timeout time.Duration) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("supabase URL is required")
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("supabase key is required")
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &Client{
		restURL: strings.TrimSuffix(cfg.URL, "/") + "/rest/v1",
		apiKey:  cfg.Key,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Name implements store.Store
func (c *Client) Name() string {
	return backendName
}

// Ping checks that the REST endpoint answers with the configured key
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "", nil, nil, "", nil)
}

// Close releases idle connections
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// GetUserByEmail implements store.Store
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return c.getUser(ctx, "email", email)
}

// GetUserByID implements store.Store
func (c *Client) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return c.getUser(ctx, "id", id)
}

func (c *Client) getUser(ctx context.Context, column, value string) (*models.User, error) {
	start := time.Now()

	query := url.Values{}
	query.Set("select", "*")
	query.Set(column, "eq."+value)
	query.Set("limit", "1")

	var rows []userRow
	err := c.do(ctx, http.MethodGet, store.TableUsers, query, nil, "", &rows)
	if err == nil && len(rows) == 0 {
		err = fmt.Errorf("user %s=%q: %w", column, value, store.ErrNotFound)
	}
	store.Observe(backendName, "select", store.TableUsers, start, err)
	if err != nil {
		return nil, err
	}
	return rows[0].toModel(), nil
}

// InsertRecommendation implements store.Store
func (c *Client) InsertRecommendation(ctx context.Context, rec models.RecommendationRecord) error {
	start := time.Now()

	row := recommendationRow{
		UserEmail:      rec.UserEmail,
		Recommendation: rec.Recommendation,
		Conditions:     rec.Conditions,
	}
	if row.Conditions == nil {
		row.Conditions = []string{}
	}
	if !rec.CreatedAt.IsZero() {
		createdAt := rec.CreatedAt.UTC()
		row.CreatedAt = &createdAt
	}

	err := c.do(ctx, http.MethodPost, store.TableRecommendations, nil, row, preferMinimal, nil)
	store.Observe(backendName, "insert", store.TableRecommendations, start, err)
	return err
}

// GetStreak implements store.Store
func (c *Client) GetStreak(ctx context.Context, email string) (*models.StreakRecord, error) {
	start := time.Now()
	rec, err := c.getStreak(ctx, email)
	store.Observe(backendName, "select", store.TableStreaks, start, err)
	return rec, err
}

func (c *Client) getStreak(ctx context.Context, email string) (*models.StreakRecord, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("user_email", "eq."+email)
	query.Set("limit", "1")

	var rows []streakRow
	if err := c.do(ctx, http.MethodGet, store.TableStreaks, query, nil, "", &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("streak %q: %w", email, store.ErrNotFound)
	}
	return rows[0].toModel(), nil
}

// ModifyStreak implements store.Store with a compare-and-swap loop on
// current_streak.
func (c *Client) ModifyStreak(ctx context.Context, email string, advance store.AdvanceFunc) (*models.StreakRecord, error) {
	start := time.Now()
	rec, err := c.modifyStreak(ctx, email, advance)
	store.Observe(backendName, "upsert", store.TableStreaks, start, err)
	return rec, err
}

func (c *Client) modifyStreak(ctx context.Context, email string, advance store.AdvanceFunc) (*models.StreakRecord, error) {
	for attempt := 1; attempt <= maxSwapAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current, err := c.getStreak(ctx, email)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}

		next := store.Apply(email, current, advance)

		var rows []streakRow
		if current == nil {
			query := url.Values{}
			query.Set("on_conflict", "user_email")
			err = c.do(ctx, http.MethodPost, store.TableStreaks, query, newStreakRow(next), preferInsertIfAbsent, &rows)
		} else {
			query := url.Values{}
			query.Set("user_email", "eq."+email)
			query.Set("current_streak", fmt.Sprintf("eq.%d", current.CurrentStreak))
			patch := map[string]any{
				"current_streak": next.CurrentStreak,
				"last_activity":  pgTime{Time: next.LastActivity},
			}
			err = c.do(ctx, http.MethodPatch, store.TableStreaks, query, patch, preferRepresentation, &rows)
		}
		if err != nil {
			return nil, err
		}

		if len(rows) > 0 {
			return rows[0].toModel(), nil
		}

		metrics.StreakConflicts.WithLabelValues(backendName).Inc()
		logging.Ctx(ctx).Debug().
			Str("user_email", logging.SanitizeEmail(email)).
			Int("attempt", attempt).
			Msg("Streak changed concurrently, re-reading")
	}

	return nil, fmt.Errorf("streak %q: %w", email, ErrContention)
}

// do executes one PostgREST request. table "" addresses the API root.
// out, when non-nil, receives the decoded JSON body.
func (c *Client) do(ctx context.Context, method, table string, query url.Values, body any, prefer string, out any) error {
	reqURL := c.restURL + "/" + table
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s payload: %w", table, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s request failed: %w", method, tableLabel(table), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseAPIError(resp.StatusCode, resp.Body)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", tableLabel(table), err)
	}
	return nil
}

func tableLabel(table string) string {
	if table == "" {
		return "root"
	}
	return table
}
