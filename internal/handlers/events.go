package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
	"github.com/css-society/events-api/internal/services"
)

// EventsLister defines the interface that the service must implement.
type EventsLister interface {
	EventsBySection(ctx context.Context, section string) ([]models.EventDB, error)
}

// EventsResponse represents a section's event list
// swagger:model EventsResponse
type EventsResponse struct {
	// Section name
	// default: technical
	Section string `json:"section"`

	// Events in the section, dynamic rows first
	Events []models.EventDB `json:"events"`
}

// EventsErrorResponse represents an error response for the event list
// swagger:model EventsErrorResponse
type EventsErrorResponse struct {
	// Error message
	// default: Unknown section
	Error string `json:"error"`
}

// NewEventsHandler returns an HTTP handler for listing a section's events.
// @Summary List events
// @Description Returns the merged event list for a section. Bundled definitions and stored rows are deduplicated by slug, stored rows first.
// @Tags events
// @Produce json
// @Param section query string true "Section name" Enums(upcoming, yearly, cultural, technical)
// @Success 200 {object} handlers.EventsResponse "Section events"
// @Failure 400 {object} handlers.EventsErrorResponse "Unknown section"
// @Router /events [get]
func NewEventsHandler(svc EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		section := r.URL.Query().Get("section")

		events, err := svc.EventsBySection(ctx, section)
		if errors.Is(err, services.ErrUnknownSection) {
			logger.Log.Warnw("unknown event section requested", "section", section)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(EventsErrorResponse{Error: "Unknown section"})
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to list events", "section", section, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(EventsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := EventsResponse{
			Section: section,
			Events:  events,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
