// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package events

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/searchrec/internal/models"
)

// Topic names.
const (
	TopicSearchPerformed = "search.performed"
	TopicItemClicked     = "item.clicked"
)

// SchemaVersion is the payload schema version stamped on every event.
const SchemaVersion = 1

// Metadata keys set on every message.
const (
	MetadataEventType = "event_type"
	MetadataSchema    = "schema_version"
)

// SearchPerformed is published after a valid search has been logged.
type SearchPerformed struct {
	SchemaVersion int       `json:"schema_version"`
	EventID       string    `json:"event_id"`
	Keyword       string    `json:"keyword"`
	Total         int       `json:"total"`
	Page          int       `json:"page"`
	Size          int       `json:"size"`
	Timestamp     time.Time `json:"timestamp"`
}

// ItemClicked is published after a click has been recorded.
type ItemClicked struct {
	SchemaVersion int       `json:"schema_version"`
	EventID       string    `json:"event_id"`
	ItemID        int       `json:"item_id"`
	ItemTitle     string    `json:"item_title"`
	Category      string    `json:"category"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewSearchPerformed builds a SearchPerformed event for rec and page.
func NewSearchPerformed(rec models.SearchRecord, page *models.SearchPage) *SearchPerformed {
	ev := &SearchPerformed{
		SchemaVersion: SchemaVersion,
		EventID:       watermill.NewUUID(),
		Keyword:       rec.Keyword,
		Timestamp:     rec.Timestamp,
	}
	if page != nil {
		ev.Total, ev.Page, ev.Size = page.Total, page.Page, page.Size
	}
	return ev
}

// NewItemClicked builds an ItemClicked event for rec.
func NewItemClicked(rec models.ClickRecord) *ItemClicked {
	return &ItemClicked{
		SchemaVersion: SchemaVersion,
		EventID:       watermill.NewUUID(),
		ItemID:        rec.ItemID,
		ItemTitle:     rec.ItemTitle,
		Category:      rec.Category,
		Timestamp:     rec.Timestamp,
	}
}

// encode serializes payload into a Watermill message keyed by eventID.
func encode(eventID, eventType string, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	msg := message.NewMessage(eventID, data)
	msg.Metadata.Set(MetadataEventType, eventType)
	msg.Metadata.Set(MetadataSchema, fmt.Sprintf("%d", SchemaVersion))
	return msg, nil
}

// DecodeSearchPerformed parses a search.performed message payload.
func DecodeSearchPerformed(msg *message.Message) (*SearchPerformed, error) {
	var ev SearchPerformed
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal %s event %s: %w", TopicSearchPerformed, msg.UUID, err)
	}
	return &ev, nil
}

// DecodeItemClicked parses an item.clicked message payload.
func DecodeItemClicked(msg *message.Message) (*ItemClicked, error) {
	var ev ItemClicked
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal %s event %s: %w", TopicItemClicked, msg.UUID, err)
	}
	return &ev, nil
}
