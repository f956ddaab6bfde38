// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package models

import "time"

// Item is a catalog entry. Only ClickCount changes after seeding.
type Item struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	Content    string `json:"content"`
	ClickCount int    `json:"click_count"`
}

// ScoredItem is an Item returned by search, with the relevance score inlined.
type ScoredItem struct {
	Item
	Score int `json:"score"`
}

// SearchPage is one page of ranked search results.
// Total counts every matching item regardless of Page and Size.
type SearchPage struct {
	Total   int          `json:"total"`
	Page    int          `json:"page"`
	Size    int          `json:"size"`
	Results []ScoredItem `json:"results"`
}

// HotWord is a search keyword with the number of times it was issued.
type HotWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// SearchRecord is one entry of the search log. Keyword keeps its original case.
type SearchRecord struct {
	Keyword   string    `json:"keyword"`
	Timestamp time.Time `json:"timestamp"`
}

// ClickRecord is one entry of the click log.
// ItemTitle and Category are copied from the item when the click happens.
type ClickRecord struct {
	ItemID    int       `json:"item_id"`
	ItemTitle string    `json:"item_title"`
	Category  string    `json:"category"`
	Timestamp time.Time `json:"timestamp"`
}
