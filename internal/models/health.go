// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package models

import "time"

// HealthStatusHealthy is the only status the service reports while it can answer requests.
const HealthStatusHealthy = "healthy"

// Health represents the health check response.
type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// StoreStats summarizes the in-memory state.
type StoreStats struct {
	CatalogItems int `json:"catalog_items"`
	SearchLogLen int `json:"search_log_len"`
	ClickLogLen  int `json:"click_log_len"`
}
