package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/middlewares"
	"github.com/css-society/events-api/internal/models"
	"github.com/css-society/events-api/internal/services"
)

// ProfileGetter defines the read side the handler needs.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileCompleter defines the write side the handler needs.
type ProfileCompleter interface {
	Complete(ctx context.Context, userID uuid.UUID, fullName, scholarID string) error
}

// ProfileRequest represents the JSON body for completing a profile
// swagger:model ProfileRequest
type ProfileRequest struct {
	// Full name as it should appear on certificates
	// required: true
	// default: Priya Sharma
	FullName string `json:"full_name"`

	// University scholar id
	// required: true
	// default: 2212345
	ScholarID string `json:"scholar_id"`
}

// ProfileErrorResponse represents an error response for profile operations
// swagger:model ProfileErrorResponse
type ProfileErrorResponse struct {
	// Error message
	// default: Profile not found
	Error string `json:"error"`
}

// NewGetProfileHandler returns an HTTP handler for fetching the session
// user's profile.
// @Summary Get profile
// @Description Returns the user's profile row
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileDB "User profile"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "Profile not found"
// @Router /profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetSessionUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		profile, err := svc.Get(ctx, user.ID)
		if errors.Is(err, services.ErrProfileNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Profile not found"})
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to get profile", "userID", user.ID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// NewCompleteProfileHandler returns an HTTP handler for completing the
// session user's profile.
// @Summary Complete profile
// @Description Sets the user's full name and scholar id. Both fields are required.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body handlers.ProfileRequest true "Profile Request"
// @Success 200 {object} models.ProfileDB "Updated profile"
// @Failure 400 {object} handlers.ProfileErrorResponse "Missing fields"
// @Failure 401 {object} handlers.ProfileErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ProfileErrorResponse "Profile not found"
// @Router /profile [put]
// @Security BearerAuth
func NewCompleteProfileHandler(writer ProfileCompleter, reader ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetSessionUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode profile request", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Invalid request body"})
			return
		}

		err := writer.Complete(ctx, user.ID, req.FullName, req.ScholarID)
		if errors.Is(err, services.ErrMissingProfileFields) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Full name and scholar id are required"})
			return
		}
		if errors.Is(err, services.ErrProfileNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Profile not found"})
			return
		}
		if err != nil {
			logger.Log.Errorw("failed to complete profile", "userID", user.ID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		profile, err := reader.Get(ctx, user.ID)
		if err != nil {
			logger.Log.Errorw("failed to reread profile", "userID", user.ID, "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ProfileErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}
