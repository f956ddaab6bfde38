// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/searchrec/internal/metrics"
	"github.com/tomtom215/searchrec/internal/models"
)

// PublisherConfig configures the publish circuit breaker.
type PublisherConfig struct {
	// FailureThreshold is the number of consecutive failures that opens the breaker.
	FailureThreshold uint32

	// BreakerTimeout is how long the breaker stays open before probing.
	BreakerTimeout time.Duration

	// MaxRequests is the number of probes allowed while half-open.
	MaxRequests uint32
}

// DefaultPublisherConfig returns production defaults.
func DefaultPublisherConfig() PublisherConfig {
	return PublisherConfig{
		FailureThreshold: 5,
		BreakerTimeout:   30 * time.Second,
		MaxRequests:      1,
	}
}

// Publisher publishes domain events with circuit breaker protection.
// A nil *Publisher is valid and publishes nothing.
type Publisher struct {
	pub     message.Publisher
	breaker *gobreaker.CircuitBreaker[interface{}]
	warn    *rate.Sometimes
	logger  zerolog.Logger
}

// NewPublisher wraps pub. Pass Bus.Publisher() in production.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewPublisher(pub message.Publisher, cfg PublisherConfig, logger zerolog.Logger) *Publisher {
	defaults := DefaultPublisherConfig()
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = defaults.FailureThreshold
	}
	if cfg.BreakerTimeout <= 0 {
		cfg.BreakerTimeout = defaults.BreakerTimeout
	}
	if cfg.MaxRequests == 0 {
		cfg.MaxRequests = defaults.MaxRequests
	}

	p := &Publisher{
		pub:    pub,
		warn:   &rate.Sometimes{First: 1, Interval: 10 * time.Second},
		logger: logger.With().Str("component", "events").Logger(),
	}
	p.breaker = gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        "event-publisher",
		MaxRequests: cfg.MaxRequests,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetEventBreakerState(int(to))
			p.logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Event publisher circuit breaker state changed")
		},
	})
	metrics.SetEventBreakerState(int(gobreaker.StateClosed))
	return p
}

// PublishSearch publishes a search.performed event.
func (p *Publisher) PublishSearch(ctx context.Context, rec models.SearchRecord, page *models.SearchPage) error {
	if p == nil {
		return nil
	}
	ev := NewSearchPerformed(rec, page)
	msg, err := encode(ev.EventID, TopicSearchPerformed, ev)
	if err != nil {
		return err
	}
	return p.publish(ctx, TopicSearchPerformed, msg)
}

// PublishClick publishes an item.clicked event.
func (p *Publisher) PublishClick(ctx context.Context, rec models.ClickRecord) error {
	if p == nil {
		return nil
	}
	ev := NewItemClicked(rec)
	msg, err := encode(ev.EventID, TopicItemClicked, ev)
	if err != nil {
		return err
	}
	return p.publish(ctx, TopicItemClicked, msg)
}

// BreakerState returns the current circuit breaker state.
func (p *Publisher) BreakerState() gobreaker.State {
	return p.breaker.State()
}

func (p *Publisher) publish(ctx context.Context, topic string, msg *message.Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.pub.Publish(topic, msg)
	})
	metrics.RecordEventPublished(topic, err)
	if err == nil {
		return nil
	}

	p.warn.Do(func() {
		p.logger.Warn().Err(err).
			Str("topic", topic).
			Str("event_id", msg.UUID).
			Msg("Failed to publish event")
	})
	return fmt.Errorf("publish %s: %w", topic, err)
}
