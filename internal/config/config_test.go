// Senior Fitness API - Exercise Recommendations and Activity Streaks for Older Adults
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seniorfit

package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns defaults with the credentials required by the default backends.
func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Database.Supabase.URL = "https://project.supabase.co"
	cfg.Database.Supabase.Key = "service-key"
	cfg.LLM.OpenAI.APIKey = "sk-test"
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"unknown backend", func(c *Config) { c.Database.Backend = "mysql" }, "STORE_BACKEND"},
		{"negative maintenance interval", func(c *Config) { c.Database.MaintenanceInterval = -time.Second }, "DATABASE_MAINTENANCE_INTERVAL"},
		{"supabase missing url", func(c *Config) { c.Database.Supabase.URL = "" }, "SUPABASE_URL is required"},
		{"supabase bad scheme", func(c *Config) { c.Database.Supabase.URL = "ftp://x.supabase.co" }, "scheme"},
		{"supabase url with path", func(c *Config) { c.Database.Supabase.URL = "https://x.supabase.co/rest/v1" }, "base URL only"},
		{"supabase missing key", func(c *Config) { c.Database.Supabase.Key = "" }, "SUPABASE_KEY"},
		{"duckdb missing path", func(c *Config) {
			c.Database.Backend = BackendDuckDB
			c.Database.DuckDB.Path = ""
		}, "DUCKDB_PATH"},
		{"badger missing path", func(c *Config) {
			c.Database.Backend = BackendBadger
			c.Database.Badger.Path = ""
		}, "BADGER_PATH"},
		{"memory in production", func(c *Config) {
			c.Database.Backend = BackendMemory
			c.Server.Environment = "production"
		}, "not allowed"},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "llama" }, "LLM_PROVIDER"},
		{"openai missing key", func(c *Config) { c.LLM.OpenAI.APIKey = "" }, "OPENAI_API_KEY"},
		{"gemini missing key", func(c *Config) { c.LLM.Provider = ProviderGemini }, "GEMINI_API_KEY"},
		{"negative rps", func(c *Config) { c.LLM.RequestsPerSecond = -1 }, "LLM_REQUESTS_PER_SECOND"},
		{"zero burst", func(c *Config) {
			c.LLM.RequestsPerSecond = 2
			c.LLM.Burst = 0
		}, "LLM_BURST"},
		{"zero max tokens", func(c *Config) { c.Recommend.MaxTokens = 0 }, "MAX_TOKENS"},
		{"temperature too high", func(c *Config) { c.Recommend.Temperature = 3 }, "TEMPERATURE"},
		{"top p zero", func(c *Config) { c.Recommend.DailyTopP = 0 }, "DAILY_TOP_P"},
		{"unknown streak mode", func(c *Config) { c.Streak.Mode = "weekly" }, "STREAK_MODE"},
		{"bad timezone", func(c *Config) { c.Streak.Timezone = "Mars/Olympus" }, "STREAK_TIMEZONE"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate window too short", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_EmbeddedBackendsNeedNoCredentials(t *testing.T) {
	t.Parallel()

	for _, backend := range []string{BackendDuckDB, BackendBadger, BackendMemory} {
		cfg := defaultConfig()
		cfg.Database.Backend = backend
		cfg.LLM.OpenAI.APIKey = "sk-test"

		if err := cfg.Validate(); err != nil {
			t.Errorf("backend %s: expected valid config, got %v", backend, err)
		}
	}
}

func TestValidate_RateLimitDisabledSkipsBounds(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected disabled rate limit to skip bounds, got %v", err)
	}
}

func TestStreakLocation(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Streak.Timezone = "America/Santiago"
	if got := cfg.StreakLocation().String(); got != "America/Santiago" {
		t.Errorf("StreakLocation() = %s, want America/Santiago", got)
	}

	cfg.Streak.Timezone = "Invalid/Zone"
	if cfg.StreakLocation() != time.UTC {
		t.Error("expected UTC fallback for invalid zone")
	}
}

func TestValidateHTTPURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url       string
		allowPath bool
		wantErr   bool
	}{
		{"https://api.openai.com/v1", true, false},
		{"https://api.openai.com/v1", false, true},
		{"http://localhost:54321", false, false},
		{"https://example.com/", false, false},
		{"example.com", false, true},
		{"https://example.com?x=1", true, true},
		{"https://", false, true},
	}

	for _, tt := range tests {
		err := validateHTTPURL(tt.url, "TEST_URL", tt.allowPath)
		if (err != nil) != tt.wantErr {
			t.Errorf("validateHTTPURL(%q, %v) error = %v, wantErr %v", tt.url, tt.allowPath, err, tt.wantErr)
		}
	}
}
