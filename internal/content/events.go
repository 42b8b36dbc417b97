// Package content holds the statically bundled event definitions shipped
// with the site. They are immutable at runtime and merged with the
// dynamically stored events by the catalog service; a dynamic row with the
// same slug always wins.
package content

import "github.com/css-society/events-api/internal/models"

var events = []models.EventDB{
	{
		Slug:      "css-abacus",
		Name:      "CSS ABACUS",
		Section:   models.SectionYearly,
		Status:    "Annual Fest",
		Organizer: "Computer Science Society",
		PosterURL: "/images/events/abacus.png",
		IsActive:  true,
	},
	{
		Slug:      "css-olympics",
		Name:      "CSS Olympics",
		Section:   models.SectionYearly,
		Status:    "Annual Sports Meet",
		Organizer: "Computer Science Society",
		PosterURL: "/images/events/olympics.png",
		IsActive:  true,
	},
	{
		Slug:      "esperanza",
		Name:      "ESPERANZA",
		Section:   models.SectionCultural,
		Status:    "Cultural Night",
		Organizer: "Computer Science Society",
		PosterURL: "/images/events/esperanza.png",
		IsActive:  true,
	},
	{
		Slug:      "css-go",
		Name:      "CSS GO",
		Section:   models.SectionCultural,
		Status:    "Freshers' Welcome",
		Organizer: "Computer Science Society",
		PosterURL: "/images/events/css-go.png",
		IsActive:  true,
	},
	{
		Slug:      "dsa-marathon",
		Name:      "DSA Marathon",
		Section:   models.SectionTechnical,
		Status:    "Coding Contest",
		Organizer: "Computer Science Society",
		PosterURL: "/images/events/dsa-marathon.png",
		IsActive:  true,
	},
	{
		Slug:      "web-dev-workshop",
		Name:      "Web Development Workshop",
		Section:   models.SectionTechnical,
		Status:    "Workshop",
		Organizer: "Computer Science Society",
		PosterURL: "/images/events/web-dev.png",
		IsActive:  true,
	},
	{
		Slug:      "ml-workshop",
		Name:      "Machine Learning Workshop",
		Section:   models.SectionTechnical,
		Status:    "Workshop",
		Organizer: "Computer Science Society",
		PosterURL: "/images/events/ml-workshop.png",
		IsActive:  true,
	},
	{
		Slug:      "design-workshop",
		Name:      "Design Workshop",
		Section:   models.SectionTechnical,
		Status:    "Workshop",
		Organizer: "Computer Science Society",
		PosterURL: "/images/events/design.png",
		IsActive:  true,
	},
}

// Events returns a copy of the bundled event list.
func Events() []models.EventDB {
	out := make([]models.EventDB, len(events))
	copy(out, events)
	return out
}
