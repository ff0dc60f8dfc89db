// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/seniorfit/internal/models"
)

const memoryBackend = "memory"

// MemoryStore keeps all tables in process memory. Data is lost on restart.
type MemoryStore struct {
	mu              sync.RWMutex
	usersByEmail    map[string]models.User
	usersByID       map[string]string
	streaks         map[string]models.StreakRecord
	recommendations []models.RecommendationRecord
	closed          bool
}

// Compile-time interface checks
var (
	_ Store  = (*MemoryStore)(nil)
	_ Seeder = (*MemoryStore)(nil)
)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		usersByEmail: make(map[string]models.User),
		usersByID:    make(map[string]string),
		streaks:      make(map[string]models.StreakRecord),
	}
}

// Name implements Store.
func (m *MemoryStore) Name() string {
	return memoryBackend
}

// SeedUsers implements Seeder. Existing users with the same email are replaced.
func (m *MemoryStore) SeedUsers(ctx context.Context, users []models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range users {
		u := cloneUser(users[i])
		m.usersByEmail[u.Email] = u
		if u.ID != "" {
			m.usersByID[u.ID] = u.Email
		}
	}
	return nil
}

// GetUserByEmail implements Store.
func (m *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	start := time.Now()
	user, err := m.getUserByEmail(ctx, email)
	Observe(memoryBackend, "select", TableUsers, start, err)
	return user, err
}

func (m *MemoryStore) getUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.usersByEmail[email]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", email, ErrNotFound)
	}
	c := cloneUser(u)
	return &c, nil
}

// GetUserByID implements Store.
func (m *MemoryStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	email, ok := m.usersByID[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("user id %q: %w", id, ErrNotFound)
	}
	return m.GetUserByEmail(ctx, email)
}

// InsertRecommendation implements Store.
func (m *MemoryStore) InsertRecommendation(ctx context.Context, rec models.RecommendationRecord) error {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.Conditions = append([]string(nil), rec.Conditions...)

	m.mu.Lock()
	m.recommendations = append(m.recommendations, rec)
	m.mu.Unlock()

	Observe(memoryBackend, "insert", TableRecommendations, start, nil)
	return nil
}

// Recommendations returns a copy of every stored recommendation.
func (m *MemoryStore) Recommendations() []models.RecommendationRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.RecommendationRecord, len(m.recommendations))
	copy(out, m.recommendations)
	return out
}

// GetStreak implements Store.
func (m *MemoryStore) GetStreak(ctx context.Context, email string) (*models.StreakRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.streaks[email]
	if !ok {
		return nil, fmt.Errorf("streak %q: %w", email, ErrNotFound)
	}
	return &rec, nil
}

// ModifyStreak implements Store. The write lock is held across read and write.
func (m *MemoryStore) ModifyStreak(ctx context.Context, email string, advance AdvanceFunc) (*models.StreakRecord, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var current *models.StreakRecord
	if rec, ok := m.streaks[email]; ok {
		current = &rec
	}
	next := Apply(email, current, advance)
	m.streaks[email] = next

	Observe(memoryBackend, "upsert", TableStreaks, start, nil)
	return &next, nil
}

// Ping implements Store.
func (m *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return fmt.Errorf("memory store is closed")
	}
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	return nil
}

func cloneUser(u models.User) models.User {
	u.ChronicConditions = append([]string(nil), u.ChronicConditions...)
	return u
}
