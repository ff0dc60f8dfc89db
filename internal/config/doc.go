// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

// Package config loads and validates application configuration.
//
// Configuration is layered with Koanf v2:
//
//  1. Built-in defaults (defaultConfig)
//  2. Optional YAML file (CONFIG_PATH, ./config.yaml, /etc/seniorfit/config.yaml)
//  3. Environment variables, mapped explicitly through envMappings
//
// Example config.yaml:
//
//	database:
//	  backend: duckdb
//	  duckdb:
//	    path: ./seniorfit.duckdb
//	llm:
//	  provider: gemini
//	streak:
//	  mode: daily
//	  timezone: America/Santiago
//
// The names used by the mobile client deployment are kept as environment
// variables: SUPABASE_URL, SUPABASE_KEY and OPENAI_API_KEY.
package config
