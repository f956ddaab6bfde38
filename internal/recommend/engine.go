// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package recommend

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/searchrec/internal/store"
	"github.com/tomtom215/searchrec/internal/validation"
)

// Engine selects an algorithm from the click log state and runs it.
// It is safe for concurrent use.
type Engine struct {
	store     *store.Store
	logger    zerolog.Logger
	coldStart Algorithm
	affinity  Algorithm
}

// NewEngine creates an engine with the Popularity and CategoryAffinity algorithms.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(st *store.Store, logger zerolog.Logger) *Engine {
	return &Engine{
		store:     st,
		logger:    logger.With().Str("component", "recommend").Logger(),
		coldStart: NewPopularity(),
		affinity:  NewCategoryAffinity(),
	}
}

// Recommend validates req and returns up to req.Limit items.
func (e *Engine) Recommend(req Request) (*Result, error) {
	if verr := validation.ValidateStruct(&req); verr != nil {
		return nil, verr
	}

	var result Result
	e.store.View(func(v store.View) {
		alg := e.affinity
		if v.ClickCount() == 0 {
			alg = e.coldStart
		}
		result = alg.Recommend(v, req.Limit)
	})

	e.logger.Debug().
		Str("mode", result.Mode.String()).
		Str("algorithm", result.Algorithm).
		Str("top_category", result.TopCategory).
		Int("limit", req.Limit).
		Int("returned", len(result.Items)).
		Msg("Recommendations computed")

	return &result, nil
}
