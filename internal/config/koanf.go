// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/seniorfit/config.yaml",
	"/etc/seniorfit/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8000,
			Host:        "0.0.0.0",
			Timeout:     60 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Backend:             BackendSupabase,
			Timeout:             10 * time.Second,
			SeedDemoData:        false,
			MaintenanceInterval: 10 * time.Minute,
			DuckDB: DuckDBConfig{
				Path:      "/data/seniorfit.duckdb",
				MaxMemory: "512MB",
			},
			Badger: BadgerConfig{
				Path: "/data/badger",
			},
		},
		LLM: LLMConfig{
			Provider:          ProviderOpenAI,
			Timeout:           45 * time.Second,
			RequestsPerSecond: 0,
			Burst:             1,
			OpenAI: OpenAIConfig{
				BaseURL: "https://api.openai.com/v1",
				Model:   "gpt-3.5-turbo",
			},
			Gemini: GeminiConfig{
				Model: "gemini-2.5-flash",
			},
		},
		Recommend: RecommendConfig{
			MaxTokens:            500,
			Temperature:          0.7,
			DefaultActivityLevel: "beginner",
			DailyMaxTokens:       512,
			DailyTemperature:     0.8,
			DailyTopP:            0.9,
		},
		Streak: StreakConfig{
			Mode:     StreakModePerCall,
			Timezone: "UTC",
		},
		Security: SecurityConfig{
			RateLimitReqs:     60,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// SUPABASE_URL -> database.supabase.url, OPENAI_API_KEY -> llm.openai.api_key
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// Unmapped variables are ignored so unrelated environment does not leak
// into the configuration.
var envMappings = map[string]string{
	// Server mappings
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Database mappings
	"store_backend":                 "database.backend",
	"database_timeout":              "database.timeout",
	"seed_demo_data":                "database.seed_demo_data",
	"database_maintenance_interval": "database.maintenance_interval",
	"supabase_url":                  "database.supabase.url",
	"supabase_key":                  "database.supabase.key",
	"duckdb_path":                   "database.duckdb.path",
	"duckdb_max_memory":             "database.duckdb.max_memory",
	"duckdb_threads":                "database.duckdb.threads",
	"badger_path":                   "database.badger.path",
	"badger_in_memory":              "database.badger.in_memory",

	// LLM mappings
	"llm_provider":            "llm.provider",
	"llm_timeout":             "llm.timeout",
	"llm_requests_per_second": "llm.requests_per_second",
	"llm_burst":               "llm.burst",
	"openai_api_key":          "llm.openai.api_key",
	"openai_base_url":         "llm.openai.base_url",
	"openai_model":            "llm.openai.model",
	"gemini_api_key":          "llm.gemini.api_key",
	"gemini_base_url":         "llm.gemini.base_url",
	"gemini_model":            "llm.gemini.model",

	// Recommendation mappings
	"recommend_max_tokens":             "recommend.max_tokens",
	"recommend_temperature":            "recommend.temperature",
	"recommend_default_activity_level": "recommend.default_activity_level",
	"daily_max_tokens":                 "recommend.daily_max_tokens",
	"daily_temperature":                "recommend.daily_temperature",
	"daily_top_p":                      "recommend.daily_top_p",

	// Streak mappings
	"streak_mode":     "streak.mode",
	"streak_timezone": "streak.timezone",

	// Security mappings
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging mappings
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - SUPABASE_URL -> database.supabase.url
//   - OPENAI_API_KEY -> llm.openai.api_key
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
