// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package recommend

import (
	"cmp"
	"slices"

	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/store"
)

// Popularity ranks the whole catalog by click_count. It is the cold-start
// fallback and ignores the click log entirely.
type Popularity struct{}

// NewPopularity creates the popularity algorithm.
func NewPopularity() *Popularity {
	return &Popularity{}
}

// Name implements Algorithm.
func (p *Popularity) Name() string {
	return "popularity"
}

// Recommend returns the limit most clicked items, ties in catalog order.
func (p *Popularity) Recommend(v store.View, limit int) Result {
	items := make([]models.Item, 0, v.Len())
	for item := range v.Items() {
		items = append(items, item)
	}
	sortByClickCount(items)
	return Result{
		Items:     truncate(items, limit),
		Mode:      ModeColdStart,
		Algorithm: p.Name(),
	}
}

// sortByClickCount orders items by click_count descending, keeping the
// existing relative order of equal counts.
func sortByClickCount(items []models.Item) {
	slices.SortStableFunc(items, func(a, b models.Item) int {
		return cmp.Compare(b.ClickCount, a.ClickCount)
	})
}

func truncate(items []models.Item, limit int) []models.Item {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
