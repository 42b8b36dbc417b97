package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newProfileMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestProfileReadRepository_GetByUserID(t *testing.T) {
	sqlxDB, mock := newProfileMockDB(t)
	repo := NewProfileReadRepository(sqlxDB)
	ctx := context.Background()
	userID := uuid.New()
	now := time.Now()

	// 1. Row present
	rows := sqlmock.NewRows([]string{"user_id", "full_name", "scholar_id", "email", "created_at", "updated_at"}).
		AddRow(userID, "Priya Sharma", "2212345", "user@tezu.ac.in", now, now)
	mock.ExpectQuery("SELECT user_id, full_name, scholar_id, email, created_at, updated_at FROM profiles").
		WithArgs(userID).
		WillReturnRows(rows)

	profile, err := repo.GetByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.NotNil(t, profile)
	assert.Equal(t, "Priya Sharma", profile.FullName)
	assert.Equal(t, "2212345", profile.ScholarID)

	// 2. No row is not an error
	mock.ExpectQuery("SELECT user_id, full_name, scholar_id, email, created_at, updated_at FROM profiles").
		WithArgs(userID).
		WillReturnError(sql.ErrNoRows)

	profile, err = repo.GetByUserID(ctx, userID)
	assert.NoError(t, err)
	assert.Nil(t, profile)

	// 3. Query error
	mock.ExpectQuery("SELECT user_id, full_name, scholar_id, email, created_at, updated_at FROM profiles").
		WithArgs(userID).
		WillReturnError(errors.New("db down"))

	profile, err = repo.GetByUserID(ctx, userID)
	assert.Error(t, err)
	assert.Nil(t, profile)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileWriteRepository_Update(t *testing.T) {
	sqlxDB, mock := newProfileMockDB(t)
	repo := NewProfileWriteRepository(sqlxDB)
	ctx := context.Background()
	userID := uuid.New()

	// 1. Row updated
	mock.ExpectExec("UPDATE profiles").
		WithArgs(userID, "Priya Sharma", "2212345").
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.Update(ctx, userID, "Priya Sharma", "2212345")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	// 2. No row to update
	mock.ExpectExec("UPDATE profiles").
		WithArgs(userID, "Priya Sharma", "2212345").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err = repo.Update(ctx, userID, "Priya Sharma", "2212345")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	// 3. Exec error
	mock.ExpectExec("UPDATE profiles").
		WithArgs(userID, "Priya Sharma", "2212345").
		WillReturnError(errors.New("db down"))

	_, err = repo.Update(ctx, userID, "Priya Sharma", "2212345")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
