// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package models

// APIResponse is the envelope around every /api response.
// Code mirrors the HTTP status; Data is omitted when there is nothing to return.
type APIResponse struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    interface{}     `json:"data,omitempty"`
	Errors  []APIFieldError `json:"errors,omitempty"`
}

// APIFieldError describes one rejected request parameter.
type APIFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Envelope messages shared by handlers and clients.
const (
	MessageSuccess          = "success"
	MessageColdStart        = "success (no click history, using popular items)"
	MessageItemNotFound     = "Item not found"
	MessageValidationFailed = "Validation failed"
)
