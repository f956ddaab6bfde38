// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "HTTP_PORT"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "HTTP_PORT"},
		{name: "page size above max", mutate: func(c *Config) { c.API.DefaultPageSize = 51 }, wantErr: "API_DEFAULT_PAGE_SIZE"},
		{name: "hot words zero", mutate: func(c *Config) { c.API.DefaultHotWordsLimit = 0 }, wantErr: "API_DEFAULT_HOT_WORDS_LIMIT"},
		{name: "recommend above max", mutate: func(c *Config) { c.API.DefaultRecommendLimit = 21 }, wantErr: "API_DEFAULT_RECOMMEND_LIMIT"},
		{name: "empty cors origin", mutate: func(c *Config) { c.Security.CORSOrigins = []string{" "} }, wantErr: "CORS_ORIGINS"},
		{name: "rate limit zero", mutate: func(c *Config) { c.Security.RateLimitReqs = 0 }, wantErr: "RATE_LIMIT_REQUESTS"},
		{name: "rate window too short", mutate: func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, wantErr: "RATE_LIMIT_WINDOW"},
		{
			name: "rate limit disabled skips bounds",
			mutate: func(c *Config) {
				c.Security.RateLimitDisabled = true
				c.Security.RateLimitReqs = 0
			},
		},
		{name: "cache capacity zero", mutate: func(c *Config) { c.Cache.Capacity = 0 }, wantErr: "CACHE_CAPACITY"},
		{
			name: "disabled cache ignores capacity",
			mutate: func(c *Config) {
				c.Cache.Enabled = false
				c.Cache.Capacity = 0
			},
		},
		{name: "events buffer zero", mutate: func(c *Config) { c.Events.BufferSize = 0 }, wantErr: "EVENTS_BUFFER_SIZE"},
		{name: "breaker threshold zero", mutate: func(c *Config) { c.Events.BreakerFailureThreshold = 0 }, wantErr: "EVENTS_BREAKER_FAILURE_THRESHOLD"},
		{name: "metrics path relative", mutate: func(c *Config) { c.Metrics.Path = "metrics" }, wantErr: "METRICS_PATH"},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8000}
	if got := s.Addr(); got != "127.0.0.1:8000" {
		t.Errorf("Addr() = %q", got)
	}
}

func TestHasWildcardCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if !cfg.HasWildcardCORS() {
		t.Error("default config should allow every origin")
	}
	cfg.Security.CORSOrigins = []string{"https://search.example"}
	if cfg.HasWildcardCORS() {
		t.Error("explicit origin list reported as wildcard")
	}
}
