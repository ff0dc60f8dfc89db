// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

/*
Package supervisor runs the long-lived parts of the API under suture v4.

# Tree

	RootSupervisor ("seniorfit")
	├── DataSupervisor ("data-layer")
	│   └── StoreMaintenanceService (duckdb and badger backends only)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Each layer counts failures independently, so a maintenance job that keeps
failing backs off without restarting the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.Timeout,
	})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.Timeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Supervisor events (restarts, backoff, timeouts) are logged through
sutureslog into the zerolog pipeline via logging.NewSlogLogger.

After Serve returns, UnstoppedServiceReport lists services that did not
stop within ShutdownTimeout.
*/
package supervisor
