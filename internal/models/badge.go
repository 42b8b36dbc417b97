package models

// Badge is a dashboard achievement awarded at a registration-count
// threshold.
type Badge struct {
	Name        string `json:"name"`
	Threshold   int    `json:"threshold"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Badges lists every badge in ascending threshold order.
var Badges = []Badge{
	{Name: "Event Enthusiast", Threshold: 1, Icon: "🌟", Description: "Attended your first event!"},
	{Name: "Active Participant", Threshold: 3, Icon: "🏆", Description: "Attended 3 events."},
	{Name: "Community Pillar", Threshold: 5, Icon: "🛡️", Description: "Attended 5 events."},
	{Name: "CSS Legend", Threshold: 10, Icon: "👑", Description: "Attended 10 or more events!"},
}

// DashboardEvent is one registration as shown on the dashboard.
type DashboardEvent struct {
	EventSlug         string `json:"event_slug"`
	EventName         string `json:"event_name"`
	RegisteredAt      string `json:"registered_at"`
	WhatsappGroupLink string `json:"whatsapp_group_link,omitempty"`
}

// Dashboard aggregates everything the dashboard page renders.
type Dashboard struct {
	DisplayName    string           `json:"display_name"`
	ScholarID      string           `json:"scholar_id"`
	Email          string           `json:"email"`
	EventsAttended int              `json:"events_attended"`
	Badges         []Badge          `json:"badges"`
	Events         []DashboardEvent `json:"events"`
}
