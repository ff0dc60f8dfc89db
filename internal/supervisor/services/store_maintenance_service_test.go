// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/seniorfit/internal/metrics"
)

var _ suture.Service = (*StoreMaintenanceService)(nil)

type fakeMaintainer struct {
	calls atomic.Int32
	err   error
	block bool
}

func (f *fakeMaintainer) Maintain(ctx context.Context) error {
	f.calls.Add(1)
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func waitForCalls(t *testing.T, f *fakeMaintainer, n int32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for f.calls.Load() < n {
		if time.Now().After(deadline) {
			t.Fatalf("Maintain calls = %d, want at least %d", f.calls.Load(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNewStoreMaintenanceService_Defaults(t *testing.T) {
	svc := NewStoreMaintenanceService(&fakeMaintainer{}, "badger", 0)
	if svc.interval != 10*time.Minute {
		t.Errorf("interval = %v, want 10m", svc.interval)
	}
	if svc.timeout != 5*time.Minute {
		t.Errorf("timeout = %v, want 5m", svc.timeout)
	}
	if svc.String() != "store-maintenance" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestStoreMaintenanceService_RunsOnInterval(t *testing.T) {
	target := &fakeMaintainer{}
	svc := NewStoreMaintenanceService(target, "duckdb", 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitForCalls(t, target, 3)
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestStoreMaintenanceService_FailureKeepsRunning(t *testing.T) {
	target := &fakeMaintainer{err: errors.New("checkpoint: disk full")}
	svc := NewStoreMaintenanceService(target, "maint-fail-test", 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitForCalls(t, target, 2)
	cancel()
	<-errCh

	errs := testutil.ToFloat64(metrics.DBQueryErrors.WithLabelValues("maint-fail-test", "maintain", "", "error"))
	if errs < 2 {
		t.Errorf("maintain errors recorded = %v, want at least 2", errs)
	}
}

func TestStoreMaintenanceService_OverBudgetIsNotAnError(t *testing.T) {
	target := &fakeMaintainer{block: true}
	svc := NewStoreMaintenanceService(target, "maint-slow-test", 20*time.Millisecond)

	if err := svc.runOnce(context.Background()); err != nil {
		t.Errorf("runOnce() = %v, want nil after hitting the run timeout", err)
	}
}

func TestStoreMaintenanceService_CancelDuringRun(t *testing.T) {
	target := &fakeMaintainer{block: true}
	svc := NewStoreMaintenanceService(target, "maint-cancel-test", 10*time.Millisecond)
	svc.timeout = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitForCalls(t, target, 1)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return while Maintain was running")
	}
}
