// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/searchrec/internal/catalog"
	"github.com/tomtom215/searchrec/internal/models"
)

var fixedTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(catalog.Seed(), WithClock(func() time.Time { return fixedTime }))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNewRejectsInvalidCatalog(t *testing.T) {
	t.Parallel()

	_, err := New([]models.Item{{ID: 1}, {ID: 1}})
	if !errors.Is(err, catalog.ErrInvalidCatalog) {
		t.Errorf("New() error = %v, want ErrInvalidCatalog", err)
	}
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	items := catalog.Seed()
	s, err := New(items)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	items[0].Title = "mutated"

	got, _ := s.Item(1)
	if got.Title != "Python编程入门" {
		t.Errorf("store shares caller slice, title = %q", got.Title)
	}
}

func TestAppendSearchPreservesKeyword(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rec := s.AppendSearch("PyThOn ")

	if rec.Keyword != "PyThOn " {
		t.Errorf("Keyword = %q, want raw input", rec.Keyword)
	}
	if !rec.Timestamp.Equal(fixedTime) {
		t.Errorf("Timestamp = %v, want %v", rec.Timestamp, fixedTime)
	}

	var got []models.SearchRecord
	s.View(func(v View) {
		for r := range v.Searches() {
			got = append(got, r)
		}
	})
	if len(got) != 1 || got[0].Keyword != "PyThOn " {
		t.Errorf("search log = %+v, want one raw record", got)
	}
}

func TestRecordClick(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	rec, err := s.RecordClick(5)
	if err != nil {
		t.Fatalf("RecordClick(5) error = %v", err)
	}

	want := models.ClickRecord{ItemID: 5, ItemTitle: "机器学习基础", Category: "人工智能", Timestamp: fixedTime}
	if rec != want {
		t.Errorf("RecordClick(5) = %+v, want %+v", rec, want)
	}

	item, _ := s.Item(5)
	if item.ClickCount != 251 {
		t.Errorf("ClickCount = %d, want 251", item.ClickCount)
	}
	if stats := s.Stats(); stats.ClickLogLen != 1 {
		t.Errorf("ClickLogLen = %d, want 1", stats.ClickLogLen)
	}
}

func TestRecordClickNotFoundLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)

	var before []models.Item
	s.View(func(v View) {
		for item := range v.Items() {
			before = append(before, item)
		}
	})

	_, err := s.RecordClick(999)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("RecordClick(999) error = %v, want ErrItemNotFound", err)
	}

	s.View(func(v View) {
		if v.ClickCount() != 0 {
			t.Errorf("click log length = %d, want 0", v.ClickCount())
		}
		i := 0
		for item := range v.Items() {
			if item != before[i] {
				t.Errorf("item %d changed: %+v -> %+v", item.ID, before[i], item)
			}
			i++
		}
	})
}

func TestConcurrentClicksAreCounted(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	const (
		workers   = 16
		perWorker = 50
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := s.RecordClick(3); err != nil {
					t.Errorf("RecordClick(3) error = %v", err)
				}
			}
		}()
	}

	// Concurrent readers must never see a click record without its increment.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			s.View(func(v View) {
				item, _ := v.Item(3)
				if item.ClickCount-180 != v.ClickCount() {
					t.Errorf("torn read: click_count delta %d, log length %d", item.ClickCount-180, v.ClickCount())
				}
			})
		}
	}()

	wg.Wait()
	<-done

	item, _ := s.Item(3)
	if want := 180 + workers*perWorker; item.ClickCount != want {
		t.Errorf("ClickCount = %d, want %d", item.ClickCount, want)
	}

	n := 0
	s.View(func(v View) {
		for rec := range v.Clicks() {
			if rec.ItemID == 3 {
				n++
			}
		}
	})
	if n != workers*perWorker {
		t.Errorf("click records for id 3 = %d, want %d", n, workers*perWorker)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.AppendSearch("go")
	if _, err := s.RecordClick(1); err != nil {
		t.Fatalf("RecordClick(1) error = %v", err)
	}

	s.Reset()

	stats := s.Stats()
	if stats.SearchLogLen != 0 || stats.ClickLogLen != 0 {
		t.Errorf("Stats after Reset = %+v, want empty logs", stats)
	}
	if item, _ := s.Item(1); item.ClickCount != 150 {
		t.Errorf("ClickCount after Reset = %d, want 150", item.ClickCount)
	}
	if stats.CatalogItems != 8 {
		t.Errorf("CatalogItems = %d, want 8", stats.CatalogItems)
	}
}

func TestViewItemAtFollowsInsertionOrder(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.View(func(v View) {
		if v.Len() != 8 {
			t.Fatalf("Len() = %d, want 8", v.Len())
		}
		for pos := 0; pos < v.Len(); pos++ {
			if id := v.ItemAt(pos).ID; id != pos+1 {
				t.Errorf("ItemAt(%d).ID = %d, want %d", pos, id, pos+1)
			}
		}
		if _, ok := v.Item(42); ok {
			t.Error("Item(42) found, want missing")
		}
	})
}
