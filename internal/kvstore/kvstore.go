// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package kvstore implements store.Store on an embedded BadgerDB.
//
// Rows are JSON values under prefixed keys:
//
//	user/<email>                  models.User
//	user_id/<id>                  email of the user
//	streak/<email>                models.StreakRecord
//	rec/<email>/<unix-nanos>/<id> models.RecommendationRecord
//
// The email segment of recommendation keys is path-escaped so one
// user's prefix never matches another's. The random id suffix keeps
// plans stamped with the same instant apart.
//
// BadgerDB transactions are serializable: a transaction that read a key
// changed by a concurrent commit fails with badger.ErrConflict.
// ModifyStreak re-runs the transaction in that case.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/seniorfit/internal/config"
	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/metrics"
	"github.com/tomtom215/seniorfit/internal/models"
	"github.com/tomtom215/seniorfit/internal/store"
)

const backendName = "badger"

// Key prefixes for BadgerDB storage
const (
	userKeyPrefix   = "user/"
	userIDKeyPrefix = "user_id/"
	streakKeyPrefix = "streak/"
	recKeyPrefix    = "rec/"
)

// gcDiscardRatio is the value log rewrite threshold for Maintain
const gcDiscardRatio = 0.5

// maxConflictRetries bounds ModifyStreak transaction re-runs
const maxConflictRetries = 100

// Store implements store.Store using BadgerDB
type Store struct {
	db *badger.DB
}

// Compile-time interface checks
var (
	_ store.Store      = (*Store)(nil)
	_ store.Seeder     = (*Store)(nil)
	_ store.Maintainer = (*Store)(nil)
)

// Open opens (or creates) the database described by cfg
func Open(cfg *config.BadgerConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create badger directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil // Disable BadgerDB's internal logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	logging.Info().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Badger store ready")
	return &Store{db: db}, nil
}

// NewFromDB wraps an already open database
func NewFromDB(db *badger.DB) *Store {
	return &Store{db: db}
}

// Name implements store.Store
func (s *Store) Name() string {
	return backendName
}

// Ping implements store.Store
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.db.IsClosed() {
		return errors.New("badger db is closed")
	}
	return s.db.View(func(*badger.Txn) error { return nil })
}

// Close implements store.Store
func (s *Store) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

// Maintain implements store.Maintainer. It runs value log GC until
// nothing is left to rewrite.
func (s *Store) Maintain(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := s.db.RunValueLogGC(gcDiscardRatio)
		switch {
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrGCInMemoryMode):
			return nil
		case err != nil:
			return fmt.Errorf("run GC: %w", err)
		}
	}
}

// SeedUsers implements store.Seeder
func (s *Store) SeedUsers(ctx context.Context, users []models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()
	err := s.db.Update(func(txn *badger.Txn) error {
		for i := range users {
			u := users[i]
			if err := setJSON(txn, userKeyPrefix+u.Email, u); err != nil {
				return fmt.Errorf("set user: %w", err)
			}
			if u.ID != "" {
				if err := txn.Set([]byte(userIDKeyPrefix+u.ID), []byte(u.Email)); err != nil {
					return fmt.Errorf("set user id mapping: %w", err)
				}
			}
		}
		return nil
	})
	store.Observe(backendName, "seed", store.TableUsers, start, err)
	return err
}

// GetUserByEmail implements store.Store
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	var user models.User
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKeyPrefix+email, &user)
	})
	store.Observe(backendName, "select", store.TableUsers, start, err)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", email, err)
	}
	return &user, nil
}

// GetUserByID implements store.Store
func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	var user models.User
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userIDKeyPrefix + id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return store.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get user id mapping: %w", err)
		}
		email, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return getJSON(txn, userKeyPrefix+string(email), &user)
	})
	store.Observe(backendName, "select", store.TableUsers, start, err)
	if err != nil {
		return nil, fmt.Errorf("user id %q: %w", id, err)
	}
	return &user, nil
}

// InsertRecommendation implements store.Store
func (s *Store) InsertRecommendation(ctx context.Context, rec models.RecommendationRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	start := time.Now()
	key := fmt.Sprintf("%s%020d/%s", recPrefix(rec.UserEmail), rec.CreatedAt.UnixNano(), uuid.NewString())
	err := s.db.Update(func(txn *badger.Txn) error {
		return setJSON(txn, key, rec)
	})
	store.Observe(backendName, "insert", store.TableRecommendations, start, err)
	return err
}

// Recommendations returns the stored plans for email, oldest first
func (s *Store) Recommendations(ctx context.Context, email string) ([]models.RecommendationRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var recs []models.RecommendationRecord
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := []byte(recPrefix(email))
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec models.RecommendationRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			recs = append(recs, rec)
		}
		return nil
	})
	return recs, err
}

// GetStreak implements store.Store
func (s *Store) GetStreak(ctx context.Context, email string) (*models.StreakRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	var rec models.StreakRecord
	err := s.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, streakKeyPrefix+email, &rec)
	})
	store.Observe(backendName, "select", store.TableStreaks, start, err)
	if err != nil {
		return nil, fmt.Errorf("streak %q: %w", email, err)
	}
	return &rec, nil
}

// ModifyStreak implements store.Store
func (s *Store) ModifyStreak(ctx context.Context, email string, advance store.AdvanceFunc) (*models.StreakRecord, error) {
	start := time.Now()
	rec, err := s.modifyStreak(ctx, email, advance)
	store.Observe(backendName, "upsert", store.TableStreaks, start, err)
	return rec, err
}

func (s *Store) modifyStreak(ctx context.Context, email string, advance store.AdvanceFunc) (*models.StreakRecord, error) {
	key := streakKeyPrefix + email

	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var next models.StreakRecord
		err := s.db.Update(func(txn *badger.Txn) error {
			var current *models.StreakRecord
			var existing models.StreakRecord
			err := getJSON(txn, key, &existing)
			switch {
			case err == nil:
				current = &existing
			case !errors.Is(err, store.ErrNotFound):
				return err
			}

			next = store.Apply(email, current, advance)
			return setJSON(txn, key, next)
		})

		if errors.Is(err, badger.ErrConflict) {
			metrics.StreakConflicts.WithLabelValues(backendName).Inc()
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update streak: %w", err)
		}
		return &next, nil
	}

	return nil, fmt.Errorf("update streak %q: %w", email, badger.ErrConflict)
}

// recPrefix is the key prefix shared by every recommendation of email
func recPrefix(email string) string {
	return recKeyPrefix + url.PathEscape(email) + "/"
}

// getJSON decodes the value at key, mapping a missing key to store.ErrNotFound
func getJSON(txn *badger.Txn, key string, v any) error {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return store.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, v)
	})
}

// setJSON encodes v and stores it at key
func setJSON(txn *badger.Txn, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}
