package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/BrandishRPG_Go/internal/eventlog"
)

// EventLogHandler serves a character's persisted event history
type EventLogHandler struct {
	service eventlog.Service
}

// NewEventLogHandler creates a new EventLogHandler
func NewEventLogHandler(service eventlog.Service) *EventLogHandler {
	return &EventLogHandler{service: service}
}

// HandleHistory returns the newest events for a character. An optional
// limit query parameter bounds the page size.
func (h *EventLogHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	characterID, ok := GetPathParam(r, w, "characterID")
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		limit = n
	}

	entries, err := h.service.History(r.Context(), characterID, limit)
	if err != nil {
		respondServiceError(w, r, ErrMsgHistoryFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
