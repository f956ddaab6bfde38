// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package search

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/searchrec/internal/cache"
	"github.com/tomtom215/searchrec/internal/metrics"
	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/store"
	"github.com/tomtom215/searchrec/internal/validation"
)

// Page size bounds.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Request is a validated search request.
type Request struct {
	Query string `json:"q" validate:"required"`
	Page  int    `json:"page" validate:"gte=1"`
	Size  int    `json:"size" validate:"gte=1,lte=50"`
}

// RankerConfig configures the match cache.
type RankerConfig struct {
	// CacheEnabled memoizes the match list of each lower-cased query.
	// Item text never changes, so a cached match list stays correct;
	// click counts are read fresh on every request.
	CacheEnabled  bool
	CacheCapacity int
	CacheTTL      time.Duration
}

// hit is one matching item: its catalog position and score.
type hit struct {
	pos   int
	score int
}

// Ranker runs a query over the whole catalog, ranks and paginates the
// matches, and appends the query to the search log.
type Ranker struct {
	store  *store.Store
	cache  *cache.LRU[[]hit]
	logger zerolog.Logger
}

// NewRanker creates a ranker over st.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRanker(st *store.Store, cfg RankerConfig, logger zerolog.Logger) *Ranker {
	r := &Ranker{
		store:  st,
		logger: logger.With().Str("component", "search").Logger(),
	}
	if cfg.CacheEnabled {
		r.cache = cache.NewLRU[[]hit](cfg.CacheCapacity, cfg.CacheTTL)
	}
	return r
}

// Search validates req, records the query in the search log and returns
// the requested page. An invalid request is rejected before anything is
// recorded. A page past the last match is empty but still reports Total.
func (r *Ranker) Search(req Request) (models.SearchPage, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return models.SearchPage{}, verr
	}

	r.store.AppendSearch(req.Query)

	page := models.SearchPage{Page: req.Page, Size: req.Size}
	r.store.View(func(v store.View) {
		hits := r.matches(v, req.Query)
		page.Total = len(hits)

		start, end := pageBounds(len(hits), req.Page, req.Size)
		page.Results = make([]models.ScoredItem, 0, end-start)
		for _, h := range hits[start:end] {
			page.Results = append(page.Results, models.ScoredItem{Item: v.ItemAt(h.pos), Score: h.score})
		}
	})

	r.logger.Debug().
		Str("query", req.Query).
		Int("page", req.Page).
		Int("size", req.Size).
		Int("total", page.Total).
		Int("returned", len(page.Results)).
		Msg("Search served")

	return page, nil
}

// matches returns the ranked hits for query. Ties keep catalog order.
// The returned slice is shared with the cache and must not be modified.
func (r *Ranker) matches(v store.View, query string) []hit {
	key := strings.ToLower(query)
	if r.cache != nil {
		if hits, ok := r.cache.Get(key); ok {
			metrics.RecordSearchCache(true)
			return hits
		}
		metrics.RecordSearchCache(false)
	}

	m := NewMatcher(query)
	hits := make([]hit, 0, v.Len())
	for pos := 0; pos < v.Len(); pos++ {
		if score := m.Score(v.ItemAt(pos)); score > 0 {
			hits = append(hits, hit{pos: pos, score: score})
		}
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Compare(b.score, a.score)
	})

	if r.cache != nil {
		r.cache.Add(key, hits)
	}
	return hits
}

// pageBounds returns the [start, end) slice bounds of a 1-based page.
// Pages past the end yield start == end == total.
func pageBounds(total, page, size int) (start, end int) {
	offset := page - 1
	if offset > total/size {
		return total, total
	}
	start = min(offset*size, total)
	end = min(start+size, total)
	return start, end
}

// CacheStats returns match cache counters; zero when the cache is disabled.
func (r *Ranker) CacheStats() cache.Stats {
	if r.cache == nil {
		return cache.Stats{}
	}
	return r.cache.Stats()
}
