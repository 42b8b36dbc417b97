package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

// CertificateWriteRepository appends certificate metadata rows.
type CertificateWriteRepository struct {
	db *sqlx.DB
}

func NewCertificateWriteRepository(db *sqlx.DB) *CertificateWriteRepository {
	return &CertificateWriteRepository{db: db}
}

// Save appends one certificate metadata row.
func (r *CertificateWriteRepository) Save(ctx context.Context, name, event string) error {
	query := `
		INSERT INTO certificates (id, name, event, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	args := []any{uuid.New(), name, event}

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

	return err
}

// CertificateReadRepository reads certificate metadata rows.
type CertificateReadRepository struct {
	db *sqlx.DB
}

func NewCertificateReadRepository(db *sqlx.DB) *CertificateReadRepository {
	return &CertificateReadRepository{db: db}
}

// List returns all certificate rows, newest first.
func (r *CertificateReadRepository) List(ctx context.Context) ([]models.CertificateDB, error) {
	const query = `
		SELECT id, name, event, created_at
		FROM certificates
		ORDER BY created_at DESC
	`

	var certs []models.CertificateDB
	err := r.db.SelectContext(ctx, &certs, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(certs),
		"error", err,
	)

	return certs, err
}
