package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/placement/internal/app/auth"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
)

// ApplyOutcome classifies the result of an application attempt
type ApplyOutcome string

const (
	OutcomeApplied        ApplyOutcome = "Applied"
	OutcomeUnauthorized   ApplyOutcome = "Unauthorized"
	OutcomeDriveNotFound  ApplyOutcome = "DriveNotFound"
	OutcomeNotEligible    ApplyOutcome = "NotEligible"
	OutcomeAlreadyApplied ApplyOutcome = "AlreadyApplied"
	OutcomeStorageFailure ApplyOutcome = "StorageFailure"
)

// ApplyOutcomeOf maps the error returned by Apply to its outcome
func ApplyOutcomeOf(err error) ApplyOutcome {
	switch {
	case err == nil:
		return OutcomeApplied
	case apperrors.Is(err, apperrors.ErrUnauthorized, apperrors.ErrProfileNotFound):
		return OutcomeUnauthorized
	case errors.Is(err, apperrors.ErrDriveNotFound):
		return OutcomeDriveNotFound
	case errors.Is(err, apperrors.ErrNotEligible):
		return OutcomeNotEligible
	case errors.Is(err, apperrors.ErrAlreadyApplied):
		return OutcomeAlreadyApplied
	default:
		return OutcomeStorageFailure
	}
}

// ApplicationService handles job applications
type ApplicationService struct {
	authz        *appAuth.AuthorizationService
	drives       DriveStore
	applications ApplicationStore
	logger       zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(authz *appAuth.AuthorizationService, drives DriveStore, applications ApplicationStore, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{
		authz:        authz,
		drives:       drives,
		applications: applications,
		logger:       logger,
	}
}

// Apply submits the calling student's application to a drive
func (s *ApplicationService) Apply(ctx context.Context, session *auth.Session, driveID int64) (*models.Application, error) {
	student, err := s.authz.CurrentStudent(ctx, session)
	if err != nil {
		return nil, err
	}

	drive, err := s.drives.GetByID(ctx, driveID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDriveNotFound) {
			return nil, apperrors.ErrDriveNotFound
		}
		s.logger.Error().Err(err).Int64("driveID", driveID).Msg("Error loading drive")
		return nil, apperrors.NewStorageError("load drive", err)
	}

	if !student.MeetsRequirement(drive.MinCGPA) {
		s.logger.Debug().
			Int64("studentID", student.ID).
			Int64("driveID", drive.ID).
			Float64("cgpa", student.CGPA).
			Float64("minCgpa", drive.MinCGPA).
			Msg("Student below drive CGPA requirement")
		return nil, apperrors.ErrNotEligible
	}

	exists, err := s.applications.Exists(ctx, student.ID, drive.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", student.ID).Int64("driveID", drive.ID).Msg("Error checking existing application")
		return nil, apperrors.NewStorageError("check application", err)
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.Application{
		StudentID: student.ID,
		DriveID:   drive.ID,
		Status:    models.ApplicationApplied,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		if apperrors.Is(err, apperrors.ErrAlreadyApplied, apperrors.ErrDriveNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Int64("studentID", student.ID).Int64("driveID", drive.ID).Msg("Error creating application")
		return nil, apperrors.NewStorageError("create application", err)
	}

	s.logger.Info().Int64("appID", app.ID).Int64("studentID", student.ID).Int64("driveID", drive.ID).Msg("Application submitted")
	return app, nil
}

// ViewApplications lists the applications of a drive owned by the calling company,
// oldest first
func (s *ApplicationService) ViewApplications(ctx context.Context, session *auth.Session, driveID int64) (*models.Drive, []*models.Application, error) {
	company, err := s.authz.CurrentCompany(ctx, session)
	if err != nil {
		return nil, nil, err
	}

	drive, err := s.authz.OwnedDrive(ctx, company, driveID)
	if err != nil {
		return nil, nil, err
	}

	apps, err := s.applications.ListByDrive(ctx, drive.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("driveID", drive.ID).Msg("Error listing applications")
		return nil, nil, apperrors.NewStorageError("list applications", err)
	}
	return drive, apps, nil
}
