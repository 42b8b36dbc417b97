package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
	"github.com/css-society/events-api/internal/repositories"
)

// Error variables
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventInactive     = errors.New("event is not active")
	ErrEventFull         = errors.New("event has reached maximum participants")
	ErrAlreadyRegistered = errors.New("already registered for this event")
)

// EventGetter resolves events by slug, dynamic row preferred.
type EventGetter interface {
	EventBySlug(ctx context.Context, slug string) (*models.EventDB, error)
}

// ParticipantCounter bumps an event's registration counter.
type ParticipantCounter interface {
	IncrementParticipants(ctx context.Context, slug string) error
}

// RegistrationWriter inserts registration rows.
type RegistrationWriter interface {
	Save(ctx context.Context, userID uuid.UUID, eventSlug, eventName, whatsappLink string) error
}

// RegistrationReader reads a user's registrations.
type RegistrationReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RegistrationDB, error)
}

// ProfileReader reads profile rows.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// RegistrationService records event registrations and assembles the
// dashboard.
type RegistrationService struct {
	catalog       EventGetter
	regWriter     RegistrationWriter
	regReader     RegistrationReader
	counter       ParticipantCounter
	profileReader ProfileReader
	kafkaWriter   KafkaWriter
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	catalog EventGetter,
	regWriter RegistrationWriter,
	regReader RegistrationReader,
	counter ParticipantCounter,
	profileReader ProfileReader,
	kafkaWriter KafkaWriter,
) *RegistrationService {
	return &RegistrationService{
		catalog:       catalog,
		regWriter:     regWriter,
		regReader:     regReader,
		counter:       counter,
		profileReader: profileReader,
		kafkaWriter:   kafkaWriter,
	}
}

// Register records a registration of the user for the event and returns the
// event's whatsapp group link. A duplicate registration reports
// ErrAlreadyRegistered with the link still usable; the participant counter
// update after a fresh insert is best-effort and never undoes the
// registration.
func (svc *RegistrationService) Register(ctx context.Context, userID uuid.UUID, slug string) (string, error) {
	event, err := svc.catalog.EventBySlug(ctx, slug)
	if err != nil {
		logger.Log.Errorw("failed to fetch event", "slug", slug, "err", err)
		return "", err
	}
	if event == nil {
		return "", ErrEventNotFound
	}
	if !event.IsActive {
		return "", ErrEventInactive
	}
	if event.MaxParticipants > 0 && event.CurrentParticipants >= event.MaxParticipants {
		return "", ErrEventFull
	}

	err = svc.regWriter.Save(ctx, userID, event.Slug, event.Name, event.WhatsappGroupLink)
	if errors.Is(err, repositories.ErrDuplicateRegistration) {
		return event.WhatsappGroupLink, ErrAlreadyRegistered
	}
	if err != nil {
		logger.Log.Errorw("failed to save registration", "userID", userID, "slug", slug, "err", err)
		return "", err
	}

	if err := svc.counter.IncrementParticipants(ctx, event.Slug); err != nil {
		logger.Log.Errorw("failed to increment participant counter", "slug", event.Slug, "err", err)
	}

	rec := models.RegistrationRecord{
		RecordID:     uuid.NewString(),
		UserID:       userID.String(),
		EventSlug:    event.Slug,
		EventName:    event.Name,
		RegisteredAt: time.Now().Unix(),
	}
	svc.publishRegistration(ctx, rec)

	return event.WhatsappGroupLink, nil
}

// publishRegistration publishes a registration record to Kafka.
func (svc *RegistrationService) publishRegistration(ctx context.Context, rec models.RegistrationRecord) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "record_id", rec.RecordID)
		return
	}

	data, err := json.Marshal(rec)
	if err != nil {
		logger.Log.Errorw("Failed to marshal registration record for Kafka", "record_id", rec.RecordID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(rec.EventSlug),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish registration record to Kafka", "record_id", rec.RecordID, "error", err)
	} else {
		logger.Log.Infow("Registration record published to Kafka", "record_id", rec.RecordID, "event_slug", rec.EventSlug)
	}
}

// Dashboard assembles the user's dashboard. Read failures degrade to empty
// sections: the display name falls back to the account email and the event
// list to empty, so the dashboard always renders.
func (svc *RegistrationService) Dashboard(ctx context.Context, userID uuid.UUID, email string) models.Dashboard {
	d := models.Dashboard{
		DisplayName: email,
		Email:       email,
		Badges:      []models.Badge{},
		Events:      []models.DashboardEvent{},
	}

	profile, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to fetch profile for dashboard", "userID", userID, "err", err)
	}
	if profile != nil {
		if profile.FullName != "" {
			d.DisplayName = profile.FullName
		}
		d.ScholarID = profile.ScholarID
	}

	regs, err := svc.regReader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to fetch registrations for dashboard", "userID", userID, "err", err)
		regs = nil
	}

	for _, reg := range regs {
		name := reg.EventName
		link := reg.WhatsappGroupLink
		if name == "" || link == "" {
			// Legacy rows predate the denormalized columns.
			if event, _ := svc.catalog.EventBySlug(ctx, reg.EventSlug); event != nil {
				if name == "" {
					name = event.Name
				}
				if link == "" {
					link = event.WhatsappGroupLink
				}
			}
		}
		if name == "" {
			name = "Unknown Event"
		}
		d.Events = append(d.Events, models.DashboardEvent{
			EventSlug:         reg.EventSlug,
			EventName:         name,
			RegisteredAt:      reg.RegisteredAt.Format(time.RFC3339),
			WhatsappGroupLink: link,
		})
	}

	d.EventsAttended = len(d.Events)
	for _, b := range models.Badges {
		if d.EventsAttended >= b.Threshold {
			d.Badges = append(d.Badges, b)
		}
	}

	return d
}
