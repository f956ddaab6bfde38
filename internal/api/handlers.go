// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/searchrec/internal/config"
	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/recommend"
	"github.com/tomtom215/searchrec/internal/search"
	"github.com/tomtom215/searchrec/internal/validation"
)

// Service is the domain facade the handlers call. core.Service implements it.
type Service interface {
	Search(ctx context.Context, req search.Request) (models.SearchPage, error)
	HotWords(ctx context.Context, req search.HotWordsRequest) ([]models.HotWord, error)
	RecordClick(ctx context.Context, itemID int) (models.ClickRecord, error)
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Result, error)
	Health(ctx context.Context) models.Health
	Stats(ctx context.Context) models.StoreStats
}

// Handler serves the Searchrec HTTP endpoints.
type Handler struct {
	svc      Service
	defaults config.APIConfig
}

// NewHandler creates a handler. Omitted query parameters take defaults.
func NewHandler(svc Service, defaults config.APIConfig) *Handler {
	return &Handler{svc: svc, defaults: defaults}
}

// Search handles GET /api/search?q=&page=&size=
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	page, err := intQuery(r, "page", 1)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	size, err := intQuery(r, "size", h.defaults.DefaultPageSize)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	result, err := h.svc.Search(r.Context(), search.Request{
		Query: r.URL.Query().Get("q"),
		Page:  page,
		Size:  size,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, models.MessageSuccess, result)
}

// HotWords handles GET /api/hot-words?limit=
func (h *Handler) HotWords(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", h.defaults.DefaultHotWordsLimit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	words, err := h.svc.HotWords(r.Context(), search.HotWordsRequest{Limit: limit})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, models.MessageSuccess, words)
}

// Click handles POST /api/click/{item_id}. A successful click has no data.
func (h *Handler) Click(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "item_id")
	itemID, err := strconv.Atoi(raw)
	if err != nil {
		respondServiceError(w, r, validation.NewRequestValidationError("item_id", "item_id must be an integer"))
		return
	}

	if _, err := h.svc.RecordClick(r.Context(), itemID); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondSuccess(w, models.MessageSuccess, nil)
}

// Recommend handles GET /api/recommend?limit=
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	limit, err := intQuery(r, "limit", h.defaults.DefaultRecommendLimit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	result, err := h.svc.Recommend(r.Context(), recommend.Request{Limit: limit})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	message := models.MessageSuccess
	if result.Mode == recommend.ModeColdStart {
		message = models.MessageColdStart
	}
	respondSuccess(w, message, result.Items)
}

// Stats handles GET /api/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, models.MessageSuccess, h.svc.Stats(r.Context()))
}

// Health handles GET /health. The body is not enveloped.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Health(r.Context()))
}

// NotFound answers unknown routes with an envelope.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// intQuery parses an integer query parameter, returning def when it is absent.
// A present but malformed value is a validation error, not a silent default.
func intQuery(r *http.Request, key string, def int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, validation.NewRequestValidationError(key, key+" must be an integer")
	}
	return n, nil
}
