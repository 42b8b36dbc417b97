package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/css-society/events-api/internal/middlewares"
	"github.com/css-society/events-api/internal/models"
)

// DashboardReader defines the interface that the service must implement.
type DashboardReader interface {
	Dashboard(ctx context.Context, userID uuid.UUID, email string) models.Dashboard
}

// NewDashboardHandler returns an HTTP handler for the user dashboard.
// @Summary Get dashboard
// @Description Returns the user's display name, scholar id, registered events and earned badges. Partial data renders with fallbacks rather than failing.
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.Dashboard "User dashboard"
// @Failure 401 {string} string "Unauthorized"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetSessionUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		d := svc.Dashboard(ctx, user.ID, user.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(d)
	}
}
