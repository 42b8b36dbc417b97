package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

var (
	// ErrProfileNotFound is returned when no profile row exists for the user.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrMissingProfileFields is returned when the completion form has blank fields.
	ErrMissingProfileFields = errors.New("full name and scholar id are required")
)

// ProfileWriter updates profile rows.
type ProfileWriter interface {
	Update(ctx context.Context, userID uuid.UUID, fullName, scholarID string) (int64, error)
}

// ProfileService completes and reads user profiles. Profile rows are
// created at signup by the auth provider; this service never inserts them.
type ProfileService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewProfileService creates a new ProfileService.
func NewProfileService(reader ProfileReader, writer ProfileWriter) *ProfileService {
	return &ProfileService{
		reader: reader,
		writer: writer,
	}
}

// Get returns the user's profile.
func (svc *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	profile, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to fetch profile", "userID", userID, "err", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// Complete fills in the user's full name and scholar id.
func (svc *ProfileService) Complete(ctx context.Context, userID uuid.UUID, fullName, scholarID string) error {
	fullName = strings.TrimSpace(fullName)
	scholarID = strings.TrimSpace(scholarID)
	if fullName == "" || scholarID == "" {
		return ErrMissingProfileFields
	}

	rows, err := svc.writer.Update(ctx, userID, fullName, scholarID)
	if err != nil {
		logger.Log.Errorw("failed to update profile", "userID", userID, "err", err)
		return err
	}
	if rows == 0 {
		return ErrProfileNotFound
	}

	return nil
}
