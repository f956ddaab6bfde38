// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"

	"github.com/tomtom215/searchrec/internal/logging"
)

// DefaultBufferSize is the per-subscriber channel buffer.
const DefaultBufferSize = 256

// BusConfig configures the in-process Pub/Sub.
type BusConfig struct {
	// BufferSize is the output channel buffer per subscriber.
	BufferSize int64
}

// Bus is the shared in-process Pub/Sub.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter
}

// NewBus creates a non-persistent gochannel Pub/Sub. Messages published
// while no subscriber is attached are discarded.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBus(cfg BusConfig, logger zerolog.Logger) *Bus {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	wmLogger := logging.NewWatermillLogger(logger.With().Str("component", "events").Logger())
	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: cfg.BufferSize,
		}, wmLogger),
		logger: wmLogger,
	}
}

// Publisher returns the Watermill publisher side of the bus.
func (b *Bus) Publisher() message.Publisher {
	return b.pubsub
}

// Subscriber returns the Watermill subscriber side of the bus.
func (b *Bus) Subscriber() message.Subscriber {
	return b.pubsub
}

// Logger returns the Watermill logger shared by bus components.
func (b *Bus) Logger() watermill.LoggerAdapter {
	return b.logger
}

// Close closes the Pub/Sub. Subsequent publishes fail.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}
