package models

import "github.com/google/uuid"

// SessionUser is the identity resolved from the session token issued by
// the external auth provider. Consumed read-only.
type SessionUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
