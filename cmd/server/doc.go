// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

/*
Package main is the entry point for the Senior Fitness API server.

The server recommends exercises for older adults from a fixed corpus keyed
by chronic condition, asks a language model for a personalized plan, and
tracks activity streaks per user.

# Application Architecture

	RootSupervisor ("seniorfit")
	├── DataSupervisor ("data-layer")
	│   └── Store maintenance (duckdb and badger only)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Store: Supabase (default), DuckDB, Badger or in-memory
 4. Generator: OpenAI chat completions or Gemini, behind a circuit breaker
 5. Services: recommendation and streak services
 6. HTTP Server: Chi router with CORS, rate limiting and Prometheus metrics
 7. Supervisor Tree: Suture v4 process supervision

# Configuration

Minimum configuration for the default backends:

	export SUPABASE_URL=https://xyzcompany.supabase.co
	export SUPABASE_KEY=service-role-key
	export OPENAI_API_KEY=sk-...
	./seniorfit

Local development without external services other than the model:

	export STORE_BACKEND=badger
	export BADGER_IN_MEMORY=true
	export SEED_DEMO_DATA=true
	export LOG_FORMAT=console
	./seniorfit

# API Documentation

Swagger documentation is served at /swagger/index.html. The docs package
is generated from the handler annotations; regenerate it after changing
an endpoint (see docs.go).

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and waits up to server.timeout for in-flight
requests, then the store is closed.
*/
package main
