// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

/*
Package api provides the HTTP surface of Searchrec on the Chi router.

# Endpoints

	GET  /api/search?q=&page=1&size=10   ranked, paginated keyword search
	GET  /api/hot-words?limit=10         most frequent search keywords
	POST /api/click/{item_id}            record a click on a catalog item
	GET  /api/recommend?limit=5          click-history recommendations
	GET  /api/stats                      catalog size and log lengths
	GET  /health                         liveness: {status, timestamp}
	GET  /metrics                        Prometheus exposition (configurable)

Omitted query parameters take their defaults from config.APIConfig.

# Response Envelope

Every /api response is a models.APIResponse:

	{"code": 200, "message": "success", "data": {...}}

code mirrors the HTTP status. Rejected parameters produce 422 with one
entry per field in "errors"; clicking an unknown item produces 404 with
message "Item not found". A recommendation served without any click
history carries the message "success (no click history, using popular
items)".

# Middleware Stack

Global: request ID, real IP, panic recovery, CORS (every origin by
default). /api routes add per-IP rate limiting (go-chi/httprate), gzip
and Prometheus instrumentation.
*/
package api
