// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

// Package store holds all mutable Searchrec state: the catalog with its
// live click counters, the search log and the click log.
//
// # Concurrency
//
// A single sync.RWMutex guards everything. Each mutation (AppendSearch,
// RecordClick) runs entirely under the write lock, so a click record and
// the matching counter increment are never observed apart, and log order
// is a total order consistent with the order callers acquired the lock.
// Readers use View, which holds the read lock for the duration of the
// callback and therefore sees a prefix of the mutation history.
//
// # Ownership
//
// The store is the only mutator of Item.ClickCount and the only owner of
// the two logs. Nothing outside the package receives a reference to the
// backing slices; View hands out copies of values.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/searchrec/internal/catalog"
	"github.com/tomtom215/searchrec/internal/models"
)

// ErrItemNotFound is returned by RecordClick for an id absent from the catalog.
var ErrItemNotFound = errors.New("item not found")

// Store is the process-lifetime state shared by every request.
type Store struct {
	mu sync.RWMutex

	// seed is the construction-time catalog, restored by Reset.
	seed []models.Item

	// items is the live catalog in insertion order.
	items []models.Item

	// index maps item id to its position in items.
	index map[int]int

	searches []models.SearchRecord
	clicks   []models.ClickRecord

	clock func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used to stamp log records.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// New builds a store over items. The catalog is validated and copied; the
// caller's slice is not retained.
func New(items []models.Item, opts ...Option) (*Store, error) {
	if err := catalog.Validate(items); err != nil {
		return nil, fmt.Errorf("build store: %w", err)
	}

	s := &Store{
		seed:  append([]models.Item(nil), items...),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.resetLocked()
	return s, nil
}

// resetLocked must be called with mu held for writing (or before s is shared).
func (s *Store) resetLocked() {
	s.items = append(make([]models.Item, 0, len(s.seed)), s.seed...)
	s.index = make(map[int]int, len(s.items))
	for i := range s.items {
		s.index[s.items[i].ID] = i
	}
	s.searches = nil
	s.clicks = nil
}

// Reset restores the seeded catalog and empties both logs.
// Intended for test isolation; production code never calls it.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

// AppendSearch records a search for keyword, exactly as given, and returns the record.
func (s *Store) AppendSearch(keyword string) models.SearchRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.SearchRecord{Keyword: keyword, Timestamp: s.clock()}
	s.searches = append(s.searches, rec)
	return rec
}

// RecordClick appends a click record for itemID and increments the item's
// click counter as one atomic step. An unknown id returns ErrItemNotFound
// and changes nothing.
func (s *Store) RecordClick(itemID int) (models.ClickRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[itemID]
	if !ok {
		return models.ClickRecord{}, fmt.Errorf("%w: id %d", ErrItemNotFound, itemID)
	}

	item := &s.items[pos]
	rec := models.ClickRecord{
		ItemID:    item.ID,
		ItemTitle: item.Title,
		Category:  item.Category,
		Timestamp: s.clock(),
	}
	s.clicks = append(s.clicks, rec)
	item.ClickCount++
	return rec, nil
}

// View runs fn with a read-consistent view of the store.
// The view must not be used after fn returns.
func (s *Store) View(fn func(v View)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(View{s: s})
}

// Item returns a copy of the item with the given id.
func (s *Store) Item(id int) (models.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{s: s}.Item(id)
}

// Stats returns the catalog size and the current log lengths.
func (s *Store) Stats() models.StoreStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.StoreStats{
		CatalogItems: len(s.items),
		SearchLogLen: len(s.searches),
		ClickLogLen:  len(s.clicks),
	}
}

// Now returns the store's clock reading.
func (s *Store) Now() time.Time {
	return s.clock()
}
