// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/seniorfit/internal/llm"
	"github.com/tomtom215/seniorfit/internal/logging"
	"github.com/tomtom215/seniorfit/internal/models"
)

// healthCheckTimeout bounds the store ping so probes answer promptly
const healthCheckTimeout = 3 * time.Second

// Health status values
const (
	statusHealthy  = "healthy"
	statusDegraded = "degraded"
)

// breakerReporter is implemented by store.CircuitBreakerStore
type breakerReporter interface {
	BreakerState() string
}

// Health handles GET /api/health.
// It always answers 200; Status reports "degraded" when the store is unreachable.
//
// @Summary Get service health
// @Description Reports store reachability and circuit breaker states. Always 200; status is "degraded" when the store is unreachable.
// @Tags Core
// @Produce json
// @Success 200 {object} models.HealthStatus "Health status"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]string, 3)
	status := statusHealthy

	if err := h.pingStore(r.Context()); err != nil {
		status = statusDegraded
		checks["store"] = "unreachable"
	} else {
		checks["store"] = "ok"
	}
	if b, ok := h.store.(breakerReporter); ok {
		checks["store_circuit"] = b.BreakerState()
	}
	if state, ok := llm.BreakerState(h.generator); ok {
		checks["llm_circuit"] = state
	}

	health := models.HealthStatus{
		Status:    status,
		Version:   h.version,
		Store:     h.store.Name(),
		Uptime:    time.Since(h.startTime).Seconds(),
		Checks:    checks,
		Timestamp: time.Now().UTC(),
	}
	if h.generator != nil {
		health.LLMProvider = h.generator.Provider()
	}

	respondJSON(w, http.StatusOK, &health)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
//
// @Summary Kubernetes liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the store answers a ping, 503 otherwise
//
// @Summary Kubernetes readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} models.ErrorResponse "Store unavailable"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.pingStore(r.Context()); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Str("store", h.store.Name()).Msg("Readiness check failed")
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "store unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"ready": true,
		"store": h.store.Name(),
	})
}

func (h *Handler) pingStore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return h.store.Ping(ctx)
}
