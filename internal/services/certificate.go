package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/css-society/events-api/internal/logger"
	"github.com/css-society/events-api/internal/models"
)

// AttendanceReader finds a user's most recent attended registration.
type AttendanceReader interface {
	LatestAttended(ctx context.Context, userID uuid.UUID) (*models.RegistrationDB, error)
}

// CertificateWriter appends certificate metadata rows.
type CertificateWriter interface {
	Save(ctx context.Context, name, event string) error
}

// CertificateReader reads certificate metadata rows.
type CertificateReader interface {
	List(ctx context.Context) ([]models.CertificateDB, error)
}

// CertificateService resolves certificate eligibility and records
// certificate metadata.
type CertificateService struct {
	attendance    AttendanceReader
	catalog       EventGetter
	profileReader ProfileReader
	certWriter    CertificateWriter
	certReader    CertificateReader
}

// NewCertificateService creates a new CertificateService.
func NewCertificateService(
	attendance AttendanceReader,
	catalog EventGetter,
	profileReader ProfileReader,
	certWriter CertificateWriter,
	certReader CertificateReader,
) *CertificateService {
	return &CertificateService{
		attendance:    attendance,
		catalog:       catalog,
		profileReader: profileReader,
		certWriter:    certWriter,
		certReader:    certReader,
	}
}

// Eligibility returns the certificate the user may download, or nil when
// they have no attended registration. Every read failure degrades to
// absent eligibility: a certificate affordance is never granted on
// ambiguous data.
func (svc *CertificateService) Eligibility(ctx context.Context, userID uuid.UUID, email string) (*models.CertificateEligibility, error) {
	reg, err := svc.attendance.LatestAttended(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to fetch attended registration", "userID", userID, "err", err)
		return nil, nil
	}
	if reg == nil {
		return nil, nil
	}

	eventName := reg.EventName
	event, err := svc.catalog.EventBySlug(ctx, reg.EventSlug)
	if err != nil {
		logger.Log.Errorw("failed to resolve event for eligibility", "slug", reg.EventSlug, "err", err)
	}
	if event != nil {
		eventName = event.Name
	}
	if eventName == "" {
		return nil, nil
	}

	suggestedName := email
	profile, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to fetch profile for eligibility", "userID", userID, "err", err)
	}
	if profile != nil && profile.FullName != "" {
		suggestedName = profile.FullName
	}

	return &models.CertificateEligibility{
		EventSlug:     reg.EventSlug,
		EventName:     eventName,
		SuggestedName: suggestedName,
	}, nil
}

// Save appends one certificate metadata row.
func (svc *CertificateService) Save(ctx context.Context, name, event string) error {
	if err := svc.certWriter.Save(ctx, name, event); err != nil {
		logger.Log.Errorw("failed to save certificate metadata", "name", name, "event", event, "err", err)
		return err
	}
	return nil
}

// List returns all certificate metadata rows.
func (svc *CertificateService) List(ctx context.Context) ([]models.CertificateDB, error) {
	certs, err := svc.certReader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list certificates", "err", err)
		return nil, err
	}
	return certs, nil
}
