// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package config

import (
	"fmt"
	"time"
)

// Rate limiting bounds
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateLLM(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateStreak(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateDatabase validates the selected store backend
func (c *Config) validateDatabase() error {
	if c.Database.Timeout <= 0 {
		return fmt.Errorf("DATABASE_TIMEOUT must be positive")
	}
	if c.Database.MaintenanceInterval < 0 {
		return fmt.Errorf("DATABASE_MAINTENANCE_INTERVAL must not be negative")
	}

	switch c.Database.Backend {
	case BackendSupabase:
		return c.validateSupabase()
	case BackendDuckDB:
		if c.Database.DuckDB.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when STORE_BACKEND=duckdb")
		}
	case BackendBadger:
		if c.Database.Badger.Path == "" && !c.Database.Badger.InMemory {
			return fmt.Errorf("BADGER_PATH is required when STORE_BACKEND=badger (or set BADGER_IN_MEMORY=true)")
		}
	case BackendMemory:
		if c.IsProduction() {
			return fmt.Errorf("STORE_BACKEND=memory is not allowed with ENVIRONMENT=production")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be one of: supabase, duckdb, badger, memory")
	}
	return nil
}

// validateSupabase validates hosted store credentials
func (c *Config) validateSupabase() error {
	if c.Database.Supabase.URL == "" {
		return fmt.Errorf("SUPABASE_URL is required when STORE_BACKEND=supabase")
	}
	if err := validateHTTPURL(c.Database.Supabase.URL, "SUPABASE_URL", false); err != nil {
		return err
	}
	if c.Database.Supabase.Key == "" {
		return fmt.Errorf("SUPABASE_KEY is required when STORE_BACKEND=supabase")
	}
	return nil
}

// validateLLM validates the selected text generation provider
func (c *Config) validateLLM() error {
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}
	if c.LLM.RequestsPerSecond < 0 {
		return fmt.Errorf("LLM_REQUESTS_PER_SECOND must not be negative")
	}
	if c.LLM.RequestsPerSecond > 0 && c.LLM.Burst < 1 {
		return fmt.Errorf("LLM_BURST must be at least 1 when rate limiting is enabled")
	}

	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		if c.LLM.OpenAI.Model == "" {
			return fmt.Errorf("OPENAI_MODEL must not be empty")
		}
		return validateHTTPURL(c.LLM.OpenAI.BaseURL, "OPENAI_BASE_URL", true)
	case ProviderGemini:
		if c.LLM.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
		if c.LLM.Gemini.Model == "" {
			return fmt.Errorf("GEMINI_MODEL must not be empty")
		}
		if c.LLM.Gemini.BaseURL != "" {
			return validateHTTPURL(c.LLM.Gemini.BaseURL, "GEMINI_BASE_URL", true)
		}
		return nil
	default:
		return fmt.Errorf("LLM_PROVIDER must be one of: openai, gemini")
	}
}

// validateRecommend validates generation parameters
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.MaxTokens < 1 || r.DailyMaxTokens < 1 {
		return fmt.Errorf("RECOMMEND_MAX_TOKENS and DAILY_MAX_TOKENS must be positive")
	}
	if r.Temperature < 0 || r.Temperature > 2 || r.DailyTemperature < 0 || r.DailyTemperature > 2 {
		return fmt.Errorf("RECOMMEND_TEMPERATURE and DAILY_TEMPERATURE must be between 0 and 2")
	}
	if r.DailyTopP <= 0 || r.DailyTopP > 1 {
		return fmt.Errorf("DAILY_TOP_P must be in (0, 1]")
	}
	if r.DefaultActivityLevel == "" {
		return fmt.Errorf("RECOMMEND_DEFAULT_ACTIVITY_LEVEL must not be empty")
	}
	return nil
}

// validateStreak validates streak policy settings
func (c *Config) validateStreak() error {
	if c.Streak.Mode != StreakModePerCall && c.Streak.Mode != StreakModeDaily {
		return fmt.Errorf("STREAK_MODE must be one of: per_call, daily")
	}
	if _, err := time.LoadLocation(c.Streak.Timezone); err != nil {
		return fmt.Errorf("STREAK_TIMEZONE is not a valid IANA time zone: %w", err)
	}
	return nil
}

// validateRateLimits validates rate limiting configuration
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
