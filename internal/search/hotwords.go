// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package search

import (
	"cmp"
	"iter"
	"slices"

	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/store"
	"github.com/tomtom215/searchrec/internal/validation"
)

// Hot-word limit bounds.
const (
	DefaultHotWordsLimit = 10
	MaxHotWordsLimit     = 50
)

// HotWordsRequest is a validated hot-words request.
type HotWordsRequest struct {
	Limit int `json:"limit" validate:"gte=1,lte=50"`
}

// HotWordAggregator ranks search keywords by how often they were issued.
type HotWordAggregator struct {
	store *store.Store
}

// NewHotWordAggregator creates an aggregator over st's search log.
func NewHotWordAggregator(st *store.Store) *HotWordAggregator {
	return &HotWordAggregator{store: st}
}

// HotWords returns up to req.Limit keywords, most searched first.
func (a *HotWordAggregator) HotWords(req HotWordsRequest) ([]models.HotWord, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}

	var words []models.HotWord
	a.store.View(func(v store.View) {
		words = RankKeywords(v.Searches(), req.Limit)
	})
	return words, nil
}

// RankKeywords counts keywords by exact, case-sensitive equality and
// returns the top limit by count. Keywords with equal counts are ordered
// by their first appearance in records.
func RankKeywords(records iter.Seq[models.SearchRecord], limit int) []models.HotWord {
	position := make(map[string]int)
	words := make([]models.HotWord, 0)

	for rec := range records {
		if i, ok := position[rec.Keyword]; ok {
			words[i].Count++
			continue
		}
		position[rec.Keyword] = len(words)
		words = append(words, models.HotWord{Word: rec.Keyword, Count: 1})
	}

	// words is in first-occurrence order; a stable sort keeps it for ties.
	slices.SortStableFunc(words, func(a, b models.HotWord) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if len(words) > limit {
		words = words[:limit]
	}
	return words
}
