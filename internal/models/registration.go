package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatusAttended marks a registration whose physical attendance
// was confirmed by an admin. Only attended registrations unlock the
// certificate flow.
const AttendanceStatusAttended = "attended"

// RegistrationDB represents a user_events row: one registration of a user
// for an event. Identity is the (user_id, event_slug) pair, enforced by a
// uniqueness constraint. Event name and whatsapp link are denormalized
// copies taken at insert time.
type RegistrationDB struct {
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	EventSlug         string    `json:"event_slug" db:"event_slug"`
	EventName         string    `json:"event_name" db:"event_name"`
	AttendanceStatus  string    `json:"attendance_status" db:"attendance_status"`
	WhatsappGroupLink string    `json:"whatsapp_group_link" db:"whatsapp_group_link"`
	RegisteredAt      time.Time `json:"registered_at" db:"registered_at"`
}

// RegistrationRecord is the message published to Kafka for every fresh
// registration.
type RegistrationRecord struct {
	RecordID     string `json:"record_id"`
	UserID       string `json:"user_id"`
	EventSlug    string `json:"event_slug"`
	EventName    string `json:"event_name"`
	RegisteredAt int64  `json:"registered_at"`
}
