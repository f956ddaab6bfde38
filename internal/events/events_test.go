// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package events

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus/testutil"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/searchrec/internal/logging"
	"github.com/tomtom215/searchrec/internal/metrics"
	"github.com/tomtom215/searchrec/internal/models"
)

var errBroker = errors.New("broker unavailable")

type failingPublisher struct {
	calls int
}

func (f *failingPublisher) Publish(string, ...*message.Message) error {
	f.calls++
	return errBroker
}

func (f *failingPublisher) Close() error { return nil }

func startConsumer(t *testing.T, bus *Bus, cfg ConsumerConfig) {
	t.Helper()

	consumer := NewConsumer(bus, cfg, logging.NewTestLogger(io.Discard))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Serve(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("consumer did not stop")
		}
	})

	select {
	case <-consumer.Ready():
	case <-time.After(5 * time.Second):
		t.Fatal("consumer not ready")
	}
}

func TestPublishClickReachesConsumer(t *testing.T) {
	t.Parallel()

	logger := logging.NewTestLogger(io.Discard)
	bus := NewBus(BusConfig{BufferSize: 8}, logger)
	t.Cleanup(func() { _ = bus.Close() })

	got := make(chan *ItemClicked, 1)
	startConsumer(t, bus, ConsumerConfig{OnClick: func(ev *ItemClicked) { got <- ev }})

	const category = "events-test-category"
	before := testutil.ToFloat64(metrics.ClicksByCategory.WithLabelValues(category))

	pub := NewPublisher(bus.Publisher(), DefaultPublisherConfig(), logger)
	rec := models.ClickRecord{
		ItemID:    4,
		ItemTitle: "数据结构与算法",
		Category:  category,
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := pub.PublishClick(context.Background(), rec); err != nil {
		t.Fatalf("PublishClick() error = %v", err)
	}

	select {
	case ev := <-got:
		if ev.ItemID != 4 || ev.ItemTitle != rec.ItemTitle || ev.Category != category {
			t.Errorf("event = %+v, want click on item 4", ev)
		}
		if !ev.Timestamp.Equal(rec.Timestamp) {
			t.Errorf("timestamp = %v, want %v", ev.Timestamp, rec.Timestamp)
		}
		if ev.SchemaVersion != SchemaVersion || ev.EventID == "" {
			t.Errorf("missing envelope fields: %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("click event not consumed")
	}

	after := testutil.ToFloat64(metrics.ClicksByCategory.WithLabelValues(category))
	if after != before+1 {
		t.Errorf("clicks_by_category = %v, want %v", after, before+1)
	}
}

func TestPublishSearchReachesConsumer(t *testing.T) {
	t.Parallel()

	logger := logging.NewTestLogger(io.Discard)
	bus := NewBus(BusConfig{}, logger)
	t.Cleanup(func() { _ = bus.Close() })

	got := make(chan *SearchPerformed, 1)
	startConsumer(t, bus, ConsumerConfig{OnSearch: func(ev *SearchPerformed) { got <- ev }})

	pub := NewPublisher(bus.Publisher(), DefaultPublisherConfig(), logger)
	rec := models.SearchRecord{Keyword: "Python", Timestamp: time.Now()}
	page := &models.SearchPage{Total: 1, Page: 1, Size: 10}
	if err := pub.PublishSearch(context.Background(), rec, page); err != nil {
		t.Fatalf("PublishSearch() error = %v", err)
	}

	select {
	case ev := <-got:
		if ev.Keyword != "Python" || ev.Total != 1 || ev.Page != 1 || ev.Size != 10 {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("search event not consumed")
	}
}

func TestPublisherBreakerOpens(t *testing.T) {
	t.Parallel()

	failing := &failingPublisher{}
	pub := NewPublisher(failing, PublisherConfig{
		FailureThreshold: 2,
		BreakerTimeout:   time.Hour,
	}, logging.NewTestLogger(io.Discard))

	rec := models.ClickRecord{ItemID: 1, Category: "编程"}
	for i := 0; i < 2; i++ {
		if err := pub.PublishClick(context.Background(), rec); !errors.Is(err, errBroker) {
			t.Fatalf("publish %d error = %v, want errBroker", i, err)
		}
	}

	if got := pub.BreakerState(); got != gobreaker.StateOpen {
		t.Fatalf("breaker state = %v, want open", got)
	}

	err := pub.PublishClick(context.Background(), rec)
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("publish with open breaker error = %v, want ErrOpenState", err)
	}
	if failing.calls != 2 {
		t.Errorf("underlying publisher called %d times, want 2", failing.calls)
	}
}

func TestPublisherCanceledContext(t *testing.T) {
	t.Parallel()

	failing := &failingPublisher{}
	pub := NewPublisher(failing, DefaultPublisherConfig(), logging.NewTestLogger(io.Discard))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.PublishSearch(ctx, models.SearchRecord{Keyword: "x"}, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if failing.calls != 0 {
		t.Errorf("underlying publisher called %d times, want 0", failing.calls)
	}
}

func TestNilPublisherIsNoop(t *testing.T) {
	t.Parallel()

	var pub *Publisher
	if err := pub.PublishClick(context.Background(), models.ClickRecord{ItemID: 1}); err != nil {
		t.Errorf("PublishClick() on nil publisher error = %v", err)
	}
	if err := pub.PublishSearch(context.Background(), models.SearchRecord{}, nil); err != nil {
		t.Errorf("PublishSearch() on nil publisher error = %v", err)
	}
}

func TestDecodeRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	msg := message.NewMessage("bad", []byte("{not json"))
	if _, err := DecodeItemClicked(msg); err == nil {
		t.Error("DecodeItemClicked() expected error")
	}
	if _, err := DecodeSearchPerformed(msg); err == nil {
		t.Error("DecodeSearchPerformed() expected error")
	}
}

func TestEncodeSetsMetadata(t *testing.T) {
	t.Parallel()

	ev := NewItemClicked(models.ClickRecord{ItemID: 7, Category: "数据库"})
	msg, err := encode(ev.EventID, TopicItemClicked, ev)
	if err != nil {
		t.Fatalf("encode() error = %v", err)
	}
	if msg.UUID != ev.EventID {
		t.Errorf("uuid = %q, want %q", msg.UUID, ev.EventID)
	}
	if got := msg.Metadata.Get(MetadataEventType); got != TopicItemClicked {
		t.Errorf("event_type = %q", got)
	}
	if got := msg.Metadata.Get(MetadataSchema); got != "1" {
		t.Errorf("schema_version = %q", got)
	}
}
