// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/rs/zerolog"

	"github.com/tomtom215/searchrec/internal/metrics"
)

// DefaultCloseTimeout bounds how long the router waits for in-flight handlers.
const DefaultCloseTimeout = 5 * time.Second

// ConsumerConfig configures the event consumer.
type ConsumerConfig struct {
	// CloseTimeout bounds router shutdown.
	CloseTimeout time.Duration

	// OnSearch, if set, receives every decoded search.performed event.
	OnSearch func(*SearchPerformed)

	// OnClick, if set, receives every decoded item.clicked event.
	OnClick func(*ItemClicked)
}

// Consumer runs a Watermill router over the bus as a suture service.
// Each Serve call builds a fresh router because a router can only run once.
type Consumer struct {
	sub      message.Subscriber
	wmLogger watermill.LoggerAdapter
	logger   zerolog.Logger
	cfg      ConsumerConfig

	readyOnce sync.Once
	ready     chan struct{}
}

// NewConsumer creates a consumer subscribed to bus.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewConsumer(bus *Bus, cfg ConsumerConfig, logger zerolog.Logger) *Consumer {
	if cfg.CloseTimeout <= 0 {
		cfg.CloseTimeout = DefaultCloseTimeout
	}
	return &Consumer{
		sub:      bus.Subscriber(),
		wmLogger: bus.Logger(),
		logger:   logger.With().Str("component", "events").Logger(),
		cfg:      cfg,
		ready:    make(chan struct{}),
	}
}

// Ready is closed once the first router is subscribed and running.
func (c *Consumer) Ready() <-chan struct{} {
	return c.ready
}

// Serve implements suture.Service.
func (c *Consumer) Serve(ctx context.Context) error {
	router, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: c.cfg.CloseTimeout,
	}, c.wmLogger)
	if err != nil {
		return fmt.Errorf("create event router: %w", err)
	}

	router.AddMiddleware(middleware.Recoverer)
	router.AddConsumerHandler("search_performed", TopicSearchPerformed, c.sub, c.handleSearch)
	router.AddConsumerHandler("item_clicked", TopicItemClicked, c.sub, c.handleClick)

	go func() {
		select {
		case <-router.Running():
			c.readyOnce.Do(func() { close(c.ready) })
		case <-ctx.Done():
		}
	}()

	c.logger.Info().Msg("Event consumer started")
	if err := router.Run(ctx); err != nil {
		return fmt.Errorf("event router: %w", err)
	}
	c.logger.Info().Msg("Event consumer stopped")
	return ctx.Err()
}

// String implements fmt.Stringer for suture logs.
func (c *Consumer) String() string {
	return "event-consumer"
}

func (c *Consumer) handleSearch(msg *message.Message) error {
	ev, err := DecodeSearchPerformed(msg)
	metrics.RecordEventConsumed(TopicSearchPerformed, err)
	if err != nil {
		// Malformed payloads are acked and dropped; redelivery cannot fix them.
		c.logger.Error().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed event")
		return nil
	}

	c.logger.Debug().
		Str("event_id", ev.EventID).
		Str("keyword", ev.Keyword).
		Int("total", ev.Total).
		Msg("Search performed")

	if c.cfg.OnSearch != nil {
		c.cfg.OnSearch(ev)
	}
	return nil
}

func (c *Consumer) handleClick(msg *message.Message) error {
	ev, err := DecodeItemClicked(msg)
	metrics.RecordEventConsumed(TopicItemClicked, err)
	if err != nil {
		c.logger.Error().Err(err).Str("message_uuid", msg.UUID).Msg("Dropping malformed event")
		return nil
	}

	metrics.RecordClickCategory(ev.Category)
	c.logger.Debug().
		Str("event_id", ev.EventID).
		Int("item_id", ev.ItemID).
		Str("category", ev.Category).
		Msg("Item clicked")

	if c.cfg.OnClick != nil {
		c.cfg.OnClick(ev)
	}
	return nil
}
