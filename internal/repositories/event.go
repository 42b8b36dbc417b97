package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

// EventReadRepository handles event read operations.
type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// GetBySlug returns the event with the given slug, or nil when absent.
func (r *EventReadRepository) GetBySlug(ctx context.Context, slug string) (*models.EventDB, error) {
	const query = `
		SELECT id, slug, name, section, status, organizer, poster_url,
		       max_participants, current_participants, whatsapp_group_link,
		       is_active, created_at
		FROM events
		WHERE slug = $1
	`

	var event models.EventDB
	err := r.db.GetContext(ctx, &event, query, slug)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"result", event,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// ListUpcoming returns active events whose status is "upcoming",
// case-insensitively.
func (r *EventReadRepository) ListUpcoming(ctx context.Context) ([]models.EventDB, error) {
	const query = `
		SELECT id, slug, name, section, status, organizer, poster_url,
		       max_participants, current_participants, whatsapp_group_link,
		       is_active, created_at
		FROM events
		WHERE is_active AND LOWER(status) = 'upcoming'
		ORDER BY created_at DESC
	`

	var events []models.EventDB
	err := r.db.SelectContext(ctx, &events, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(events),
		"error", err,
	)

	return events, err
}

// ListActiveBySection returns active events tagged with the given section,
// case-insensitively.
func (r *EventReadRepository) ListActiveBySection(ctx context.Context, section string) ([]models.EventDB, error) {
	const query = `
		SELECT id, slug, name, section, status, organizer, poster_url,
		       max_participants, current_participants, whatsapp_group_link,
		       is_active, created_at
		FROM events
		WHERE is_active AND LOWER(section) = LOWER($1)
		ORDER BY created_at DESC
	`

	var events []models.EventDB
	err := r.db.SelectContext(ctx, &events, query, section)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{section},
		"result", len(events),
		"error", err,
	)

	return events, err
}

// EventWriteRepository handles event write operations.
type EventWriteRepository struct {
	db *sqlx.DB
}

func NewEventWriteRepository(db *sqlx.DB) *EventWriteRepository {
	return &EventWriteRepository{db: db}
}

// IncrementParticipants bumps current_participants by one, but never past
// max_participants (a zero ceiling means unlimited). Returns sql.ErrNoRows
// when no row qualified.
func (r *EventWriteRepository) IncrementParticipants(ctx context.Context, slug string) error {
	const query = `
		UPDATE events
		SET current_participants = current_participants + 1
		WHERE slug = $1
		  AND (max_participants = 0 OR current_participants < max_participants)
	`

	res, err := r.db.ExecContext(ctx, query, slug)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
