package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

// ProfileReadRepository handles profile read operations.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile row for the user, or nil when absent.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT user_id, full_name, scholar_id, email, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", profile,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// ProfileWriteRepository handles profile completion writes.
type ProfileWriteRepository struct {
	db *sqlx.DB
}

func NewProfileWriteRepository(db *sqlx.DB) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db}
}

// Update sets the user's full name and scholar id. Returns the number of
// rows updated; zero means the profile row does not exist.
func (r *ProfileWriteRepository) Update(ctx context.Context, userID uuid.UUID, fullName, scholarID string) (int64, error) {
	query := `
		UPDATE profiles
		SET full_name = $2, scholar_id = $3, updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{userID, fullName, scholarID}

	res, err := r.db.ExecContext(ctx, query, args...)
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

	return rowsAffected, err
}
