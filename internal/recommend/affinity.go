// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package recommend

import (
	"iter"

	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/store"
)

// CategoryAffinity recommends unclicked items from the most clicked
// category, backfilled with unclicked items from other categories.
type CategoryAffinity struct{}

// NewCategoryAffinity creates the category affinity algorithm.
func NewCategoryAffinity() *CategoryAffinity {
	return &CategoryAffinity{}
}

// Name implements Algorithm.
func (c *CategoryAffinity) Name() string {
	return "category_affinity"
}

// Recommend implements Algorithm. With an empty click log every item is
// outside the (empty) top category, so the result degenerates to
// popularity order; the engine never calls it in that state.
func (c *CategoryAffinity) Recommend(v store.View, limit int) Result {
	top, _ := TopCategory(v.Clicks())
	clicked := ClickedIDs(v.Clicks())

	var preferred, others []models.Item
	for item := range v.Items() {
		if _, seen := clicked[item.ID]; seen {
			continue
		}
		if item.Category == top {
			preferred = append(preferred, item)
		} else {
			others = append(others, item)
		}
	}

	sortByClickCount(preferred)
	result := make([]models.Item, 0, min(limit, len(preferred)+len(others)))
	result = append(result, truncate(preferred, limit)...)

	if len(result) < limit {
		sortByClickCount(others)
		result = append(result, truncate(others, limit-len(result))...)
	}

	return Result{
		Items:       result,
		Mode:        ModeAffinity,
		Algorithm:   c.Name(),
		TopCategory: top,
	}
}

// TopCategory returns the category with the most click records. Ties go to
// the category whose first click came earliest. ok is false for an empty log.
func TopCategory(clicks iter.Seq[models.ClickRecord]) (category string, ok bool) {
	counts := make(map[string]int)
	var order []string
	for rec := range clicks {
		if _, seen := counts[rec.Category]; !seen {
			order = append(order, rec.Category)
		}
		counts[rec.Category]++
	}

	best := 0
	for _, cat := range order {
		// Strictly greater: an earlier category keeps the lead on a tie.
		if counts[cat] > best {
			category, best = cat, counts[cat]
		}
	}
	return category, len(order) > 0
}

// ClickedIDs returns the set of item ids present in the click log.
func ClickedIDs(clicks iter.Seq[models.ClickRecord]) map[int]struct{} {
	ids := make(map[int]struct{})
	for rec := range clicks {
		ids[rec.ItemID] = struct{}{}
	}
	return ids
}
