package models

import (
	"time"

	"github.com/google/uuid"
)

// Event sections. "Upcoming" is a virtual section backed only by
// dynamically stored events; the rest merge the static catalog in.
const (
	SectionUpcoming  = "Upcoming"
	SectionYearly    = "Yearly"
	SectionCultural  = "Cultural"
	SectionTechnical = "Technical"
)

// Sections lists every valid catalog section.
func Sections() []string {
	return []string{SectionUpcoming, SectionYearly, SectionCultural, SectionTechnical}
}

// EventDB represents an event row in the database. Statically bundled
// events reuse the same shape with a zero ID.
type EventDB struct {
	ID                  uuid.UUID `json:"id" db:"id"`                                     // Primary key
	Slug                string    `json:"slug" db:"slug"`                                 // Unique human-readable key
	Name                string    `json:"name" db:"name"`                                 // Display name
	Section             string    `json:"section" db:"section"`                           // Category tag
	Status              string    `json:"status" db:"status"`                             // e.g. "upcoming", "completed"
	Organizer           string    `json:"organizer" db:"organizer"`                       // Organizing body
	PosterURL           string    `json:"poster_url" db:"poster_url"`                     // Poster image URL
	MaxParticipants     int       `json:"max_participants" db:"max_participants"`         // Capacity ceiling, 0 = unlimited
	CurrentParticipants int       `json:"current_participants" db:"current_participants"` // Registered so far
	WhatsappGroupLink   string    `json:"whatsapp_group_link" db:"whatsapp_group_link"`   // Group invite shown after registration
	IsActive            bool      `json:"is_active" db:"is_active"`                       // Inactive events are hidden and closed
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}
