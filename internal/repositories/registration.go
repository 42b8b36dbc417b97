package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

// ErrDuplicateRegistration is returned when the (user_id, event_slug)
// uniqueness constraint rejects an insert.
var ErrDuplicateRegistration = errors.New("registration already exists")

// pgUniqueViolation is the Postgres error code for unique_violation.
const pgUniqueViolation = "23505"

// RegistrationWriteRepository handles registration inserts.
type RegistrationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRegistrationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RegistrationWriteRepository {
	return &RegistrationWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts one registration row. Event name and whatsapp link are
// denormalized copies taken from the event at insert time.
func (r *RegistrationWriteRepository) Save(ctx context.Context, userID uuid.UUID, eventSlug, eventName, whatsappLink string) error {
	query := `
		INSERT INTO user_events (user_id, event_slug, event_name, attendance_status, whatsapp_group_link, registered_at)
		VALUES ($1, $2, $3, '', $4, NOW())
	`
	args := []any{userID, eventSlug, eventName, whatsappLink}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateRegistration
	}

	return err
}

// RegistrationReadRepository handles registration read operations.
type RegistrationReadRepository struct {
	db *sqlx.DB
}

func NewRegistrationReadRepository(db *sqlx.DB) *RegistrationReadRepository {
	return &RegistrationReadRepository{db: db}
}

// ListByUser returns the user's registrations, newest first.
func (r *RegistrationReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RegistrationDB, error) {
	const query = `
		SELECT user_id, event_slug, event_name, attendance_status, whatsapp_group_link, registered_at
		FROM user_events
		WHERE user_id = $1
		ORDER BY registered_at DESC
	`

	var regs []models.RegistrationDB
	err := r.db.SelectContext(ctx, &regs, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(regs),
		"error", err,
	)

	return regs, err
}

// LatestAttended returns the most recent registration marked attended,
// or nil when the user has none.
func (r *RegistrationReadRepository) LatestAttended(ctx context.Context, userID uuid.UUID) (*models.RegistrationDB, error) {
	const query = `
		SELECT user_id, event_slug, event_name, attendance_status, whatsapp_group_link, registered_at
		FROM user_events
		WHERE user_id = $1 AND attendance_status = $2
		ORDER BY registered_at DESC
		LIMIT 1
	`

	var reg models.RegistrationDB
	err := r.db.GetContext(ctx, &reg, query, userID, models.AttendanceStatusAttended)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", reg,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &reg, nil
}
