package models

import (
	"time"

	"github.com/google/uuid"
)

// CertificateDB represents a certificates row: an append-only metadata log
// of generated certificates. There is intentionally no foreign key back to
// a registration.
type CertificateDB struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Event     string    `json:"event" db:"event"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CertificateEligibility describes the certificate a user may download.
// SuggestedName is editable by the user before generation, EventName is not.
type CertificateEligibility struct {
	EventSlug     string `json:"event_slug"`
	EventName     string `json:"event_name"`
	SuggestedName string `json:"suggested_name"`
}
