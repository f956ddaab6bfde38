// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

// Package core is the single entry point the transport layer talks to.
//
// Service composes the store, the search ranker, the hot-word aggregator,
// the recommendation engine and the optional event publisher. Every
// operation validates first, mutates the store at most once, records
// Prometheus metrics and, after a successful mutation, publishes a domain
// event. Event publishing is best effort and never fails an operation.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/searchrec/internal/events"
	"github.com/tomtom215/searchrec/internal/logging"
	"github.com/tomtom215/searchrec/internal/metrics"
	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/recommend"
	"github.com/tomtom215/searchrec/internal/search"
	"github.com/tomtom215/searchrec/internal/store"
	"github.com/tomtom215/searchrec/internal/validation"
)

// Dependencies are the components a Service is built from.
// Events may be nil to disable publishing.
type Dependencies struct {
	Store       *store.Store
	Ranker      *search.Ranker
	HotWords    *search.HotWordAggregator
	Recommender *recommend.Engine
	Events      *events.Publisher
}

// Service implements the search, hot-word, click and recommendation operations.
type Service struct {
	store       *store.Store
	ranker      *search.Ranker
	hotWords    *search.HotWordAggregator
	recommender *recommend.Engine
	events      *events.Publisher
	logger      zerolog.Logger
}

// NewService builds a Service. Store, Ranker, HotWords and Recommender are required.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewService(deps Dependencies, logger zerolog.Logger) (*Service, error) {
	switch {
	case deps.Store == nil:
		return nil, errors.New("core: store is required")
	case deps.Ranker == nil:
		return nil, errors.New("core: ranker is required")
	case deps.HotWords == nil:
		return nil, errors.New("core: hot word aggregator is required")
	case deps.Recommender == nil:
		return nil, errors.New("core: recommendation engine is required")
	}

	s := &Service{
		store:       deps.Store,
		ranker:      deps.Ranker,
		hotWords:    deps.HotWords,
		recommender: deps.Recommender,
		events:      deps.Events,
		logger:      logger.With().Str("component", "core").Logger(),
	}
	s.updateGauges()
	return s, nil
}

// Search runs a keyword search and logs the keyword.
func (s *Service) Search(ctx context.Context, req search.Request) (models.SearchPage, error) {
	page, err := s.ranker.Search(req)
	if err != nil {
		s.rejected(ctx, "search", err)
		metrics.RecordSearch(outcome(err), 0)
		return models.SearchPage{}, err
	}

	metrics.RecordSearch(metrics.OutcomeSuccess, page.Total)
	s.updateGauges()

	rec := models.SearchRecord{Keyword: req.Query, Timestamp: s.store.Now()}
	if err := s.events.PublishSearch(ctx, rec, &page); err != nil {
		s.log(ctx).Debug().Err(err).Msg("Search event not published")
	}
	return page, nil
}

// HotWords returns the most searched keywords.
func (s *Service) HotWords(ctx context.Context, req search.HotWordsRequest) ([]models.HotWord, error) {
	words, err := s.hotWords.HotWords(req)
	if err != nil {
		s.rejected(ctx, "hot_words", err)
		metrics.RecordHotWords(outcome(err))
		return nil, err
	}
	metrics.RecordHotWords(metrics.OutcomeSuccess)
	return words, nil
}

// RecordClick logs a click on itemID and increments its counter.
// An unknown id returns an error wrapping store.ErrItemNotFound.
func (s *Service) RecordClick(ctx context.Context, itemID int) (models.ClickRecord, error) {
	rec, err := s.store.RecordClick(itemID)
	if err != nil {
		metrics.RecordClick(outcome(err))
		s.log(ctx).Debug().Err(err).Int("item_id", itemID).Msg("Click rejected")
		return models.ClickRecord{}, err
	}

	metrics.RecordClick(metrics.OutcomeSuccess)
	s.updateGauges()
	s.log(ctx).Info().
		Int("item_id", rec.ItemID).
		Str("category", rec.Category).
		Msg("Click recorded")

	if err := s.events.PublishClick(ctx, rec); err != nil {
		s.log(ctx).Debug().Err(err).Msg("Click event not published")
	}
	return rec, nil
}

// Recommend returns up to req.Limit recommended items.
func (s *Service) Recommend(ctx context.Context, req recommend.Request) (*recommend.Result, error) {
	start := time.Now()
	result, err := s.recommender.Recommend(req)
	if err != nil {
		s.rejected(ctx, "recommend", err)
		metrics.RecordRecommendation(outcome(err), 0)
		return nil, err
	}
	metrics.RecordRecommendation(result.Mode.String(), time.Since(start))
	return result, nil
}

// Health reports liveness with the current time.
func (s *Service) Health(_ context.Context) models.Health {
	return models.Health{
		Status:    models.HealthStatusHealthy,
		Timestamp: s.store.Now(),
	}
}

// Stats returns the catalog size and log lengths.
func (s *Service) Stats(_ context.Context) models.StoreStats {
	return s.store.Stats()
}

func (s *Service) updateGauges() {
	st := s.store.Stats()
	metrics.UpdateStateGauges(st.CatalogItems, st.SearchLogLen, st.ClickLogLen)
}

// rejected logs a validation failure at debug. Anything else is unexpected.
func (s *Service) rejected(ctx context.Context, op string, err error) {
	if errors.Is(err, validation.ErrInvalidArgument) {
		s.log(ctx).Debug().Err(err).Str("operation", op).Msg("Request rejected")
		return
	}
	s.log(ctx).Error().Err(fmt.Errorf("%s: %w", op, err)).Msg("Operation failed")
}

func (s *Service) log(ctx context.Context) *zerolog.Logger {
	logger := s.logger
	if id := logging.RequestIDFromContext(ctx); id != "" {
		logger = logger.With().Str("request_id", id).Logger()
	}
	return &logger
}

func outcome(err error) string {
	switch {
	case errors.Is(err, validation.ErrInvalidArgument):
		return metrics.OutcomeInvalid
	case errors.Is(err, store.ErrItemNotFound):
		return metrics.OutcomeNotFound
	default:
		return "error"
	}
}
