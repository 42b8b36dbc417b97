package models

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDB represents a user profile row. The row is created at signup
// by the auth provider; this service only completes and reads it.
type ProfileDB struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	ScholarID string    `json:"scholar_id" db:"scholar_id"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
