// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: X-Request-ID propagation into the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation

Both are written against http.HandlerFunc and adapted to chi's
func(http.Handler) http.Handler shape by the api package:

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Request IDs:

An X-Request-ID header from an upstream proxy is reused (up to 128 bytes);
otherwise a UUID v4 is generated. The ID is echoed in the response header
and stored with logging.ContextWithRequestID, so logging.Ctx(r.Context())
tags every line with request_id.

Metrics Labels:

PrometheusMetrics labels requests with the matched chi route pattern, e.g.
"/api/click/{item_id}", keeping label cardinality bounded by the route
table rather than by item IDs.
*/
package middleware
