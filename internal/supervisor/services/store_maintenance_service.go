// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package services

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/metrics"
)

// Maintainer matches store.Maintainer.
//
// Satisfied by:
//   - *database.DB (DuckDB checkpoint)
//   - *kvstore.Store (Badger value log GC)
type Maintainer interface {
	Maintain(ctx context.Context) error
}

// StoreMaintenanceService runs periodic upkeep on an embedded store.
//
// A failed run is logged and counted, then retried on the next tick; it
// does not return from Serve, so a flaky GC never triggers supervisor
// backoff for the data layer.
//
// Example usage:
//
//	svc := services.NewStoreMaintenanceService(db, "duckdb", 10*time.Minute)
//	tree.AddDataService(svc)
type StoreMaintenanceService struct {
	target   Maintainer
	backend  string
	interval time.Duration
	timeout  time.Duration
	name     string
}

// NewStoreMaintenanceService creates a maintenance service for the named
// backend. Non-positive intervals default to 10 minutes.
func NewStoreMaintenanceService(target Maintainer, backend string, interval time.Duration) *StoreMaintenanceService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &StoreMaintenanceService{
		target:   target,
		backend:  backend,
		interval: interval,
		timeout:  interval / 2,
		name:     "store-maintenance",
	}
}

// Serve implements suture.Service.
func (s *StoreMaintenanceService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(s.name).With().Str("backend", s.backend).Logger()
	logger.Debug().Dur("interval", s.interval).Msg("Store maintenance started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.runOnce(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logger.Warn().Err(err).Msg("Store maintenance failed")
			}
		}
	}
}

func (s *StoreMaintenanceService) runOnce(ctx context.Context) error {
	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	err := s.target.Maintain(runCtx)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		// Over budget; the next tick continues where this one stopped.
		err = nil
	}
	metrics.RecordDBQuery(s.backend, "maintain", "", time.Since(start), err)
	return err
}

// String implements fmt.Stringer for suture log messages.
func (s *StoreMaintenanceService) String() string {
	return s.name
}
