// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package recommend

import (
	"errors"
	"io"
	"slices"
	"testing"

	"github.com/tomtom215/searchrec/internal/catalog"
	"github.com/tomtom215/searchrec/internal/logging"
	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/store"
	"github.com/tomtom215/searchrec/internal/validation"
)

func newTestEngine(t *testing.T, clicks ...int) (*Engine, *store.Store) {
	t.Helper()
	st, err := store.New(catalog.Seed())
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	for _, id := range clicks {
		if _, err := st.RecordClick(id); err != nil {
			t.Fatalf("RecordClick(%d) error = %v", id, err)
		}
	}
	return NewEngine(st, logging.NewTestLogger(io.Discard)), st
}

func itemIDs(items []models.Item) []int {
	out := make([]int, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func TestEngineRecommend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		clicks      []int
		limit       int
		wantIDs     []int
		wantMode    Mode
		wantTopCat  string
		wantAlgName string
	}{
		{
			name:        "cold start by click count",
			limit:       3,
			wantIDs:     []int{6, 5, 4},
			wantMode:    ModeColdStart,
			wantAlgName: "popularity",
		},
		{
			name:        "cold start whole catalog",
			limit:       MaxLimit,
			wantIDs:     []int{6, 5, 4, 3, 1, 8, 2, 7},
			wantMode:    ModeColdStart,
			wantAlgName: "popularity",
		},
		{
			name:        "top category first then backfill",
			clicks:      []int{5},
			limit:       5,
			wantIDs:     []int{6, 4, 3, 1, 8},
			wantMode:    ModeAffinity,
			wantTopCat:  "人工智能",
			wantAlgName: "category_affinity",
		},
		{
			name:        "category tie goes to first clicked",
			clicks:      []int{7, 1},
			limit:       3,
			wantIDs:     []int{8, 6, 5},
			wantMode:    ModeAffinity,
			wantTopCat:  "数据库",
			wantAlgName: "category_affinity",
		},
		{
			name:        "exhausted top category backfills only",
			clicks:      []int{5, 6},
			limit:       5,
			wantIDs:     []int{4, 3, 1, 8, 2},
			wantMode:    ModeAffinity,
			wantTopCat:  "人工智能",
			wantAlgName: "category_affinity",
		},
		{
			name:        "repeated clicks outweigh single",
			clicks:      []int{1, 7, 8},
			limit:       2,
			wantIDs:     []int{6, 5},
			wantMode:    ModeAffinity,
			wantTopCat:  "数据库",
			wantAlgName: "category_affinity",
		},
		{
			name:        "everything clicked",
			clicks:      []int{1, 2, 3, 4, 5, 6, 7, 8},
			limit:       5,
			wantIDs:     []int{},
			wantMode:    ModeAffinity,
			wantTopCat:  "编程",
			wantAlgName: "category_affinity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newTestEngine(t, tt.clicks...)
			got, err := e.Recommend(Request{Limit: tt.limit})
			if err != nil {
				t.Fatalf("Recommend() error = %v", err)
			}
			if ids := itemIDs(got.Items); !slices.Equal(ids, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", ids, tt.wantIDs)
			}
			if got.Items == nil {
				t.Error("Items is nil, want empty slice")
			}
			if got.Mode != tt.wantMode {
				t.Errorf("mode = %v, want %v", got.Mode, tt.wantMode)
			}
			if got.TopCategory != tt.wantTopCat {
				t.Errorf("top category = %q, want %q", got.TopCategory, tt.wantTopCat)
			}
			if got.Algorithm != tt.wantAlgName {
				t.Errorf("algorithm = %q, want %q", got.Algorithm, tt.wantAlgName)
			}
		})
	}
}

func TestEngineNeverRecommendsClickedItems(t *testing.T) {
	t.Parallel()

	clicks := []int{3, 3, 2}
	e, _ := newTestEngine(t, clicks...)

	got, err := e.Recommend(Request{Limit: MaxLimit})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, item := range got.Items {
		if slices.Contains(clicks, item.ID) {
			t.Errorf("clicked item %d recommended", item.ID)
		}
	}
	if len(got.Items) != 6 {
		t.Errorf("len = %d, want 6", len(got.Items))
	}
}

func TestEngineSeesLiveClickCounts(t *testing.T) {
	t.Parallel()

	// Item 8 is clicked and therefore excluded; item 7 is the only
	// remaining candidate in 数据库.
	e, st := newTestEngine(t, 8, 8, 8)

	got, err := e.Recommend(Request{Limit: 1})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if ids := itemIDs(got.Items); !slices.Equal(ids, []int{7}) {
		t.Errorf("ids = %v, want [7]", ids)
	}

	item, _ := st.Item(8)
	if item.ClickCount != 133 {
		t.Errorf("click_count = %d, want 133", item.ClickCount)
	}
}

func TestEngineRecommendValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		limit int
	}{
		{name: "zero", limit: 0},
		{name: "negative", limit: -1},
		{name: "above max", limit: MaxLimit + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newTestEngine(t)
			_, err := e.Recommend(Request{Limit: tt.limit})
			if !errors.Is(err, validation.ErrInvalidArgument) {
				t.Fatalf("Recommend() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestTopCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cats   []string
		want   string
		wantOK bool
	}{
		{name: "empty", cats: nil, want: "", wantOK: false},
		{name: "single", cats: []string{"a"}, want: "a", wantOK: true},
		{name: "majority", cats: []string{"a", "b", "b"}, want: "b", wantOK: true},
		{name: "tie first seen", cats: []string{"b", "a", "a", "b"}, want: "b", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recs := make([]models.ClickRecord, len(tt.cats))
			for i, c := range tt.cats {
				recs[i] = models.ClickRecord{ItemID: i + 1, Category: c}
			}
			got, ok := TopCategory(slices.Values(recs))
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("TopCategory() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	t.Parallel()

	if ModeColdStart.String() != "cold_start" || ModeAffinity.String() != "affinity" {
		t.Errorf("unexpected mode labels %q %q", ModeColdStart, ModeAffinity)
	}
	if Mode(99).String() != "unknown" {
		t.Errorf("Mode(99) = %q", Mode(99))
	}
}
