// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

/*
Package events carries Searchrec domain events over an in-process Watermill
Pub/Sub.

Every successful search and every recorded click is published after the
state mutation has committed. Events are observational: the store is the
source of truth, and a failed or dropped publish never fails the request
that produced it.

# Topics

  - search.performed: a SearchPerformed payload per valid search.
  - item.clicked: an ItemClicked payload per recorded click.

# Components

  - Bus: the shared gochannel Pub/Sub. Publisher and Consumer must use the
    same Bus instance.
  - Publisher: serializes payloads with goccy/go-json and publishes through
    a gobreaker circuit breaker. Failure warnings are rate limited.
  - Consumer: a suture service that runs a Watermill router with consumer
    handlers for both topics. Handlers update Prometheus counters and
    optionally forward decoded events to registered callbacks.

# Example

	bus := events.NewBus(events.BusConfig{BufferSize: 256}, logger)
	pub := events.NewPublisher(bus, events.DefaultPublisherConfig(), logger)
	consumer := events.NewConsumer(bus, events.ConsumerConfig{}, logger)
	tree.AddMessagingService(consumer)
*/
package events
