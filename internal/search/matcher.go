// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package search

import (
	"strings"

	"github.com/tomtom215/searchrec/internal/models"
)

// Field weights. A score is the sum of the weights of the fields that
// contain the query, so the possible scores are 0, 2, 3, 5, 7, 8 and 10.
const (
	TitleWeight    = 5
	ContentWeight  = 3
	CategoryWeight = 2
)

// Matcher scores items against one query by case-insensitive substring
// containment. The query must be non-empty; callers validate it first.
type Matcher struct {
	needle string
}

// NewMatcher lower-cases query once for repeated scoring.
func NewMatcher(query string) Matcher {
	return Matcher{needle: strings.ToLower(query)}
}

// Score returns the weighted match score of item. Zero means no match.
//
//nolint:gocritic // models.Item is small and passed by value for clarity
func (m Matcher) Score(item models.Item) int {
	score := 0
	if strings.Contains(strings.ToLower(item.Title), m.needle) {
		score += TitleWeight
	}
	if strings.Contains(strings.ToLower(item.Content), m.needle) {
		score += ContentWeight
	}
	if strings.Contains(strings.ToLower(item.Category), m.needle) {
		score += CategoryWeight
	}
	return score
}

// Score is shorthand for NewMatcher(query).Score(item).
//
//nolint:gocritic // models.Item is small and passed by value for clarity
func Score(item models.Item, query string) int {
	return NewMatcher(query).Score(item)
}
