// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package store

import (
	"iter"

	"github.com/tomtom215/searchrec/internal/models"
)

// View is a read-only window onto the store, valid only inside Store.View.
// All accessors return copies.
type View struct {
	s *Store
}

// Len returns the number of catalog items.
func (v View) Len() int {
	return len(v.s.items)
}

// ItemAt returns the item at catalog position pos (0-based insertion order).
func (v View) ItemAt(pos int) models.Item {
	return v.s.items[pos]
}

// Item returns the item with the given id.
func (v View) Item(id int) (models.Item, bool) {
	pos, ok := v.s.index[id]
	if !ok {
		return models.Item{}, false
	}
	return v.s.items[pos], true
}

// Items yields catalog items in insertion order.
func (v View) Items() iter.Seq[models.Item] {
	return func(yield func(models.Item) bool) {
		for _, item := range v.s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Searches yields search records in append order.
func (v View) Searches() iter.Seq[models.SearchRecord] {
	return func(yield func(models.SearchRecord) bool) {
		for _, rec := range v.s.searches {
			if !yield(rec) {
				return
			}
		}
	}
}

// SearchCount returns the length of the search log.
func (v View) SearchCount() int {
	return len(v.s.searches)
}

// Clicks yields click records in append order.
func (v View) Clicks() iter.Seq[models.ClickRecord] {
	return func(yield func(models.ClickRecord) bool) {
		for _, rec := range v.s.clicks {
			if !yield(rec) {
				return
			}
		}
	}
}

// ClickCount returns the length of the click log.
func (v View) ClickCount() int {
	return len(v.s.clicks)
}
