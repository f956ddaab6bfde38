// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package recommend

import (
	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/store"
)

// Limit bounds for a recommendation request.
const (
	DefaultLimit = 5
	MaxLimit     = 20
)

// Mode identifies which algorithm produced a result.
type Mode int

const (
	// ModeColdStart is used while the click log is empty.
	ModeColdStart Mode = iota

	// ModeAffinity is used once at least one click has been recorded.
	ModeAffinity
)

// String returns the metric/log label for the mode.
func (m Mode) String() string {
	switch m {
	case ModeColdStart:
		return "cold_start"
	case ModeAffinity:
		return "affinity"
	default:
		return "unknown"
	}
}

// Request is a validated recommendation request.
type Request struct {
	Limit int `json:"limit" validate:"gte=1,lte=20"`
}

// Result is an ordered recommendation list.
type Result struct {
	// Items are at most Limit catalog items, best first.
	Items []models.Item

	// Mode tells cold-start results apart from affinity results.
	Mode Mode

	// Algorithm is the Name of the algorithm that produced Items.
	Algorithm string

	// TopCategory is the category favored by ModeAffinity; empty on cold start.
	TopCategory string
}

// Algorithm produces recommendations from a consistent store view.
type Algorithm interface {
	// Name returns the algorithm identifier used in logs.
	Name() string

	// Recommend returns at most limit items. It must not retain v.
	Recommend(v store.View, limit int) Result
}
