// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	_ "github.com/tomtom215/seniorfit/docs" // Import generated swagger docs
	"github.com/tomtom215/seniorfit/internal/api"
	"github.com/tomtom215/seniorfit/internal/config"
	"github.com/tomtom215/seniorfit/internal/corpus"
	"github.com/tomtom215/seniorfit/internal/database"
	"github.com/tomtom215/seniorfit/internal/kvstore"
	"github.com/tomtom215/seniorfit/internal/llm"
	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/metrics"
	"github.com/tomtom215/seniorfit/internal/recommend"
	"github.com/tomtom215/seniorfit/internal/store"
	"github.com/tomtom215/seniorfit/internal/streak"
	"github.com/tomtom215/seniorfit/internal/supabase"
	"github.com/tomtom215/seniorfit/internal/supervisor"
	"github.com/tomtom215/seniorfit/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("store_backend", cfg.Database.Backend).
		Str("llm_provider", cfg.LLM.Provider).
		Str("streak_mode", cfg.Streak.Mode).
		Msg("Starting Senior Fitness API")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStore(&cfg.Database)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Database.Backend, err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Err(err).Str("backend", st.Name()).Msg("Error closing store")
		}
	}()

	if cfg.Database.SeedDemoData {
		seedCtx, seedCancel := context.WithTimeout(ctx, cfg.Database.Timeout)
		err := store.SeedIfSupported(seedCtx, st, store.DemoUsers())
		seedCancel()
		if err != nil {
			return fmt.Errorf("seed demo users: %w", err)
		}
	}

	gen, err := llm.New(ctx, &cfg.LLM)
	if err != nil {
		return fmt.Errorf("create %s generator: %w", cfg.LLM.Provider, err)
	}

	recommender := recommend.NewService(st, corpus.Default(), gen, recommend.SettingsFromConfig(&cfg.Recommend))
	streaks := streak.NewService(st, cfg.Streak.Mode, cfg.StreakLocation())

	handler := api.NewHandler(st, recommender, streaks, gen, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))

	metrics.AppInfo.WithLabelValues(version, runtime.Version(), st.Name(), gen.Provider()).Set(1)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.Timeout + 5*time.Second,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if m, ok := st.(store.Maintainer); ok && cfg.Database.MaintenanceInterval > 0 {
		tree.AddDataService(services.NewStoreMaintenanceService(m, st.Name(), cfg.Database.MaintenanceInterval))
		logging.Info().
			Str("backend", st.Name()).
			Dur("interval", cfg.Database.MaintenanceInterval).
			Msg("Store maintenance service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.Timeout))

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", treeErr)
	}
	return nil
}

// openStore opens the configured backend. The hosted backend is wrapped in a
// circuit breaker; embedded backends fail locally and are not.
func openStore(cfg *config.DatabaseConfig) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendSupabase:
		client, err := supabase.NewClient(&cfg.Supabase, cfg.Timeout)
		if err != nil {
			return nil, err
		}
		return store.NewCircuitBreakerStore(client), nil
	case config.BackendDuckDB:
		db, err := database.New(&cfg.DuckDB)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.BackendBadger:
		kv, err := kvstore.Open(&cfg.Badger)
		if err != nil {
			return nil, err
		}
		return kv, nil
	case config.BackendMemory:
		logging.Warn().Msg("Using in-memory store; data is lost on restart")
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
