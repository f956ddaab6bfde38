// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

// Package main is the entry point for the Searchrec server.
//
// Searchrec serves keyword search over an in-memory content catalog, counts
// search keywords into a hot-word ranking, records item clicks and
// recommends items from the categories a visitor clicks most.
//
// # Startup Order
//
//  1. Configuration: defaults, optional YAML file, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Catalog: built-in seed, or CATALOG_SEED_FILE
//  4. Store, search ranker, hot-word aggregator, recommendation engine
//  5. Event bus (optional): Watermill gochannel, publisher, consumer
//  6. Core service, Chi router, HTTP server
//  7. Supervisor tree: event consumer (messaging layer), HTTP server (api layer)
//
// All state lives in memory for the life of the process.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
// server (draining for HTTP_SHUTDOWN_TIMEOUT) and the event consumer, then
// the event bus is closed.
//
// # Example Usage
//
//	HTTP_PORT=8000 LOG_FORMAT=console ./searchrec
//	curl 'http://localhost:8000/api/search?q=python'
//	curl -X POST http://localhost:8000/api/click/5
//	curl 'http://localhost:8000/api/recommend?limit=3'
package main
