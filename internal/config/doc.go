// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

/*
Package config provides centralized configuration management for Searchrec.

# Configuration Sources

LoadWithKoanf layers three sources, later ones winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, else the first of
    DefaultConfigPaths that exists
 3. Environment variables listed in the mapping table below

Comma-separated environment values for list settings (CORS_ORIGINS) are
split into slices after loading. The merged result is validated before it
is returned.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production

API defaults (used when a query parameter is omitted):
  - API_DEFAULT_PAGE_SIZE (default: 10, max 50)
  - API_DEFAULT_HOT_WORDS_LIMIT (default: 10, max 50)
  - API_DEFAULT_RECOMMEND_LIMIT (default: 5, max 20)

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: Per-IP limit (default: 100/1m)
  - DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER

Catalog and search cache:
  - CATALOG_SEED_FILE: YAML catalog replacing the built-in seed
  - CACHE_ENABLED, CACHE_CAPACITY, CACHE_TTL

Event bus:
  - EVENTS_ENABLED, EVENTS_BUFFER_SIZE, EVENTS_CLOSE_TIMEOUT
  - EVENTS_BREAKER_FAILURE_THRESHOLD, EVENTS_BREAKER_TIMEOUT

Metrics:
  - METRICS_ENABLED, METRICS_PATH (default: /metrics)

# Example

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}
*/
package config
