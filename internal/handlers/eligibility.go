package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/css-society/events-api/internal/middlewares"
	"github.com/css-society/events-api/internal/models"
)

// EligibilityChecker defines the interface that the service must implement.
type EligibilityChecker interface {
	Eligibility(ctx context.Context, userID uuid.UUID, email string) (*models.CertificateEligibility, error)
}

// EligibilityResponse represents the certificate eligibility of the user
// swagger:model EligibilityResponse
type EligibilityResponse struct {
	// Whether the user may download a certificate
	// default: false
	Eligible bool `json:"eligible"`

	// Slug of the attended event, present only when eligible
	EventSlug string `json:"event_slug,omitempty"`

	// Name of the attended event, present only when eligible
	EventName string `json:"event_name,omitempty"`

	// Name to prefill on the certificate, present only when eligible
	SuggestedName string `json:"suggested_name,omitempty"`
}

// NewEligibilityHandler returns an HTTP handler for checking certificate
// eligibility.
// @Summary Check certificate eligibility
// @Description Returns whether the user attended an event and may download its certificate. Any lookup failure reports not eligible.
// @Tags certificates
// @Produce json
// @Success 200 {object} handlers.EligibilityResponse "Eligibility"
// @Failure 401 {string} string "Unauthorized"
// @Router /certificates/eligibility [get]
// @Security BearerAuth
func NewEligibilityHandler(svc EligibilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		user := middlewares.GetSessionUserFromContext(ctx)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		eligibility, _ := svc.Eligibility(ctx, user.ID, user.Email)

		resp := EligibilityResponse{}
		if eligibility != nil {
			resp = EligibilityResponse{
				Eligible:      true,
				EventSlug:     eligibility.EventSlug,
				EventName:     eligibility.EventName,
				SuggestedName: eligibility.SuggestedName,
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
