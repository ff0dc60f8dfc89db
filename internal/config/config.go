// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package config

import (
	"time"
)

// Config holds all application configuration.
//
// Configuration is loaded in layers by Load(): built-in defaults, then an
// optional YAML file, then environment variables.
//
// Thread Safety:
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	LLM       LLMConfig       `koanf:"llm"`
	Recommend RecommendConfig `koanf:"recommend"`
	Streak    StreakConfig    `koanf:"streak"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`     // Read/write timeout; must exceed llm.timeout
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// DatabaseConfig selects and configures the row store holding users,
// recommendation records and streaks.
//
// Environment Variables:
//   - STORE_BACKEND: supabase, duckdb, badger or memory (default: supabase)
//   - SUPABASE_URL: project URL, e.g. https://xyzcompany.supabase.co
//   - SUPABASE_KEY: service or anon key sent as apikey and bearer token
//   - DUCKDB_PATH: database file for the duckdb backend
//   - BADGER_PATH: data directory for the badger backend
//   - SEED_DEMO_DATA: insert demo users into embedded backends (default: false)
//   - DATABASE_MAINTENANCE_INTERVAL: checkpoint/GC interval for embedded backends, 0 disables
type DatabaseConfig struct {
	Backend             string         `koanf:"backend"`
	Timeout             time.Duration  `koanf:"timeout"`
	SeedDemoData        bool           `koanf:"seed_demo_data"`
	MaintenanceInterval time.Duration  `koanf:"maintenance_interval"`
	Supabase            SupabaseConfig `koanf:"supabase"`
	DuckDB              DuckDBConfig   `koanf:"duckdb"`
	Badger              BadgerConfig   `koanf:"badger"`
}

// SupabaseConfig holds the hosted PostgREST endpoint settings.
type SupabaseConfig struct {
	URL string `koanf:"url"`
	Key string `koanf:"key"`
}

// DuckDBConfig holds embedded DuckDB settings.
type DuckDBConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = DuckDB default
}

// BadgerConfig holds embedded BadgerDB settings.
type BadgerConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

// LLMConfig selects the text generation provider.
//
// Environment Variables:
//   - LLM_PROVIDER: openai or gemini (default: openai)
//   - OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_MODEL
//   - GEMINI_API_KEY, GEMINI_BASE_URL, GEMINI_MODEL
//   - LLM_TIMEOUT: per-call timeout (default: 45s)
//   - LLM_REQUESTS_PER_SECOND: outbound call rate, 0 disables limiting
type LLMConfig struct {
	Provider          string        `koanf:"provider"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
	OpenAI            OpenAIConfig  `koanf:"openai"`
	Gemini            GeminiConfig  `koanf:"gemini"`
}

// OpenAIConfig holds settings for the chat completions API.
type OpenAIConfig struct {
	APIKey  string `koanf:"api_key"`
	BaseURL string `koanf:"base_url"`
	Model   string `koanf:"model"`
}

// GeminiConfig holds settings for the Gemini API.
type GeminiConfig struct {
	APIKey  string `koanf:"api_key"`
	BaseURL string `koanf:"base_url"` // Empty uses the SDK default endpoint
	Model   string `koanf:"model"`
}

// RecommendConfig holds the fixed generation parameters for both
// recommendation flows.
type RecommendConfig struct {
	MaxTokens            int     `koanf:"max_tokens"`
	Temperature          float64 `koanf:"temperature"`
	DefaultActivityLevel string  `koanf:"default_activity_level"`
	DailyMaxTokens       int     `koanf:"daily_max_tokens"`
	DailyTemperature     float64 `koanf:"daily_temperature"`
	DailyTopP            float64 `koanf:"daily_top_p"`
}

// StreakConfig controls how activity streaks advance.
//
// Environment Variables:
//   - STREAK_MODE: per_call (every update increments) or daily (consecutive days)
//   - STREAK_TIMEZONE: IANA zone used to derive calendar days in daily mode
type StreakConfig struct {
	Mode     string `koanf:"mode"`
	Timezone string `koanf:"timezone"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Store backends.
const (
	BackendSupabase = "supabase"
	BackendDuckDB   = "duckdb"
	BackendBadger   = "badger"
	BackendMemory   = "memory"
)

// LLM providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Streak modes.
const (
	StreakModePerCall = "per_call"
	StreakModeDaily   = "daily"
)

// Load reads configuration from defaults, an optional config file and
// environment variables, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// StreakLocation returns the time zone used for calendar-day streaks.
// Validate guarantees the zone name loads.
func (c *Config) StreakLocation() *time.Location {
	loc, err := time.LoadLocation(c.Streak.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
