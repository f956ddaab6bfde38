// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package main

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tomtom215/searchrec/internal/api"
	"github.com/tomtom215/searchrec/internal/catalog"
	"github.com/tomtom215/searchrec/internal/config"
	"github.com/tomtom215/searchrec/internal/core"
	"github.com/tomtom215/searchrec/internal/events"
	"github.com/tomtom215/searchrec/internal/recommend"
	"github.com/tomtom215/searchrec/internal/search"
	"github.com/tomtom215/searchrec/internal/store"
)

// application holds the wired components main supervises.
type application struct {
	store    *store.Store
	service  *core.Service
	handler  http.Handler
	bus      *events.Bus      // nil when events are disabled
	consumer *events.Consumer // nil when events are disabled
}

// buildApplication wires every component from cfg. It does not start anything.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func buildApplication(cfg *config.Config, logger zerolog.Logger) (*application, error) {
	items, err := catalog.Load(cfg.Catalog.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	st, err := store.New(items)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	app := &application{store: st}

	var publisher *events.Publisher
	if cfg.Events.Enabled {
		app.bus = events.NewBus(events.BusConfig{BufferSize: cfg.Events.BufferSize}, logger)
		publisher = events.NewPublisher(app.bus.Publisher(), events.PublisherConfig{
			FailureThreshold: cfg.Events.BreakerFailureThreshold,
			BreakerTimeout:   cfg.Events.BreakerTimeout,
			MaxRequests:      1,
		}, logger)
		app.consumer = events.NewConsumer(app.bus, events.ConsumerConfig{
			CloseTimeout: cfg.Events.CloseTimeout,
		}, logger)
	}

	app.service, err = core.NewService(core.Dependencies{
		Store: st,
		Ranker: search.NewRanker(st, search.RankerConfig{
			CacheEnabled:  cfg.Cache.Enabled,
			CacheCapacity: cfg.Cache.Capacity,
			CacheTTL:      cfg.Cache.TTL,
		}, logger),
		HotWords:    search.NewHotWordAggregator(st),
		Recommender: recommend.NewEngine(st, logger),
		Events:      publisher,
	}, logger)
	if err != nil {
		if app.bus != nil {
			_ = app.bus.Close()
		}
		return nil, fmt.Errorf("create service: %w", err)
	}

	handler := api.NewHandler(app.service, cfg.API)
	chiMw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	app.handler = api.NewRouter(handler, chiMw, cfg.Metrics).SetupChi()

	logger.Info().
		Int("catalog_items", len(items)).
		Bool("events_enabled", cfg.Events.Enabled).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("Application wired")

	return app, nil
}

// close releases resources that outlive the supervisor tree.
func (a *application) close() error {
	if a.bus == nil {
		return nil
	}
	return a.bus.Close()
}
