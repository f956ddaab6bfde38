// Searchrec - Keyword Search, Hot Words and Click-Driven Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/searchrec

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/searchrec/internal/logging"
	"github.com/tomtom215/searchrec/internal/models"
	"github.com/tomtom215/searchrec/internal/store"
	"github.com/tomtom215/searchrec/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a 200 envelope.
func respondSuccess(w http.ResponseWriter, message string, data interface{}) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// respondError sends an error envelope whose code matches status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &models.APIResponse{
		Code:    status,
		Message: message,
	})
}

// respondValidationError sends 422 with one entry per rejected field.
func respondValidationError(w http.ResponseWriter, verr *validation.RequestValidationError) {
	fieldErrs := verr.Errors()
	details := make([]models.APIFieldError, 0, len(fieldErrs))
	for i := range fieldErrs {
		details = append(details, models.APIFieldError{
			Field:   fieldErrs[i].Field,
			Message: fieldErrs[i].Message,
		})
	}

	respondJSON(w, http.StatusUnprocessableEntity, &models.APIResponse{
		Code:    http.StatusUnprocessableEntity,
		Message: models.MessageValidationFailed,
		Errors:  details,
	})
}

// respondServiceError maps a core.Service error onto an HTTP response.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validation.RequestValidationError
	switch {
	case errors.As(err, &verr):
		respondValidationError(w, verr)
	case errors.Is(err, store.ErrItemNotFound):
		respondError(w, http.StatusNotFound, models.MessageItemNotFound)
	default:
		logging.Ctx(r.Context()).Error().
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
