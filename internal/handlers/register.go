package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/middlewares"
	"github.com/css-society/events-api/internal/services"
)

// EventRegistrar defines the interface that the service must implement.
type EventRegistrar interface {
	Register(ctx context.Context, userID uuid.UUID, slug string) (string, error)
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Registered successfully
	Message string `json:"message"`

	// Whatsapp group link of the event, empty when the event has none
	WhatsappGroupLink string `json:"whatsapp_group_link,omitempty"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// default: Event not found
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for registering the session
// user for an event.
// @Summary Register for an event
// @Description Records the user's registration and returns the event's whatsapp group link. Registering twice keeps the first registration and still returns the link.
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} handlers.RegisterResponse "Already registered"
// @Success 201 {object} handlers.RegisterResponse "Registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Event is not active"
// @Failure 401 {object} handlers.RegisterErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.RegisterErrorResponse "Event not found"
// @Failure 409 {object} handlers.RegisterErrorResponse "Event is full"
// @Router /events/{slug}/register [post]
// @Security BearerAuth
func NewRegisterHandler(svc EventRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetSessionUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		slug := chi.URLParam(r, "slug")

		link, err := svc.Register(ctx, user.ID, slug)

		w.Header().Set("Content-Type", "application/json")
		switch {
		case errors.Is(err, services.ErrEventNotFound):
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Event not found"})
		case errors.Is(err, services.ErrEventInactive):
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Event is not active"})
		case errors.Is(err, services.ErrEventFull):
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Event has reached maximum participants"})
		case errors.Is(err, services.ErrAlreadyRegistered):
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(RegisterResponse{
				Message:           "Already registered",
				WhatsappGroupLink: link,
			})
		case err != nil:
			logger.Log.Errorw("failed to register for event", "userID", user.ID, "slug", slug, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(RegisterErrorResponse{Error: "Internal server error"})
		default:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(RegisterResponse{
				Message:           "Registered successfully",
				WhatsappGroupLink: link,
			})
		}
	}
}
