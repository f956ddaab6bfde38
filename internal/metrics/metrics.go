// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

// Package metrics defines the Prometheus collectors exported by Searchrec.
//
// Collectors are registered on the default registry through promauto and
// served by promhttp at the configured metrics path. Components record
// through the Record* helpers rather than touching collectors directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values shared by the operation counters.
const (
	OutcomeSuccess  = "success"
	OutcomeInvalid  = "invalid_argument"
	OutcomeNotFound = "not_found"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "searchrec_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "searchrec_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Search Metrics
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_searches_total",
			Help: "Total number of search operations by outcome",
		},
		[]string{"outcome"},
	)

	SearchMatches = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "searchrec_search_matches",
			Help:    "Number of catalog items matching a search query",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)

	SearchCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_search_cache_lookups_total",
			Help: "Match cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	HotWordQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_hot_word_queries_total",
			Help: "Total number of hot-word queries by outcome",
		},
		[]string{"outcome"},
	)

	// Click Metrics
	ClicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_clicks_total",
			Help: "Total number of click operations by outcome",
		},
		[]string{"outcome"},
	)

	ClicksByCategory = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_clicks_by_category_total",
			Help: "Recorded clicks per catalog category, fed by the click event stream",
		},
		[]string{"category"},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_recommendations_total",
			Help: "Total number of recommendation requests by mode",
		},
		[]string{"mode"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "searchrec_recommendation_duration_seconds",
			Help:    "Time spent computing a recommendation list",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	// State Gauges
	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "searchrec_catalog_items",
			Help: "Number of items in the catalog",
		},
	)

	SearchLogLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "searchrec_search_log_length",
			Help: "Number of records in the search log",
		},
	)

	ClickLogLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "searchrec_click_log_length",
			Help: "Number of records in the click log",
		},
	)

	// Event Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_events_published_total",
			Help: "Domain events published by topic and result",
		},
		[]string{"topic", "result"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searchrec_events_consumed_total",
			Help: "Domain events consumed by topic and result",
		},
		[]string{"topic", "result"},
	)

	EventPublisherBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "searchrec_event_publisher_breaker_state",
			Help: "Event publisher circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSearch records a search outcome and, on success, its match count.
func RecordSearch(outcome string, matches int) {
	SearchesTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		SearchMatches.Observe(float64(matches))
	}
}

// RecordSearchCache records a match cache lookup.
func RecordSearchCache(hit bool) {
	if hit {
		SearchCacheLookups.WithLabelValues("hit").Inc()
	} else {
		SearchCacheLookups.WithLabelValues("miss").Inc()
	}
}

// RecordHotWords records a hot-word query outcome.
func RecordHotWords(outcome string) {
	HotWordQueries.WithLabelValues(outcome).Inc()
}

// RecordClick records a click outcome.
func RecordClick(outcome string) {
	ClicksTotal.WithLabelValues(outcome).Inc()
}

// RecordClickCategory counts a consumed click event against its category.
func RecordClickCategory(category string) {
	ClicksByCategory.WithLabelValues(category).Inc()
}

// SetEventBreakerState publishes the publisher breaker state (0=closed,
// 1=half-open, 2=open).
func SetEventBreakerState(state int) {
	EventPublisherBreakerState.Set(float64(state))
}

// RecordRecommendation records a recommendation by mode ("cold_start",
// "affinity" or "invalid_argument") and how long it took.
func RecordRecommendation(mode string, duration time.Duration) {
	RecommendationsTotal.WithLabelValues(mode).Inc()
	if duration > 0 {
		RecommendationDuration.Observe(duration.Seconds())
	}
}

// UpdateStateGauges sets the catalog and log size gauges.
func UpdateStateGauges(catalogItems, searchLogLen, clickLogLen int) {
	CatalogItems.Set(float64(catalogItems))
	SearchLogLength.Set(float64(searchLogLen))
	ClickLogLength.Set(float64(clickLogLen))
}

// RecordEventPublished records a publish attempt for topic.
func RecordEventPublished(topic string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsPublished.WithLabelValues(topic, result).Inc()
}

// RecordEventConsumed records a consumed event for topic.
func RecordEventConsumed(topic string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsConsumed.WithLabelValues(topic, result).Inc()
}
