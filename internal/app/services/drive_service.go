package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/placement/internal/app/auth"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
	"github.com/yigit/placement/internal/pkg/helpers"
	"github.com/yigit/placement/internal/pkg/validation"
)

// DriveService handles drive posting
type DriveService struct {
	authz    *appAuth.AuthorizationService
	drives   DriveStore
	location *time.Location
	now      func() time.Time
	logger   zerolog.Logger
}

// NewDriveService creates a new DriveService. Datetime-local deadlines are read in location.
func NewDriveService(authz *appAuth.AuthorizationService, drives DriveStore, location *time.Location, logger zerolog.Logger) *DriveService {
	if location == nil {
		location = time.Local
	}
	return &DriveService{
		authz:    authz,
		drives:   drives,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

// PostDrive creates a drive owned by the calling company
func (s *DriveService) PostDrive(ctx context.Context, session *auth.Session, req *dto.PostDriveRequest) (*models.Drive, error) {
	company, err := s.authz.CurrentCompany(ctx, session)
	if err != nil {
		return nil, err
	}

	minCGPA, err := validation.ParseCGPA(req.MinCGPA)
	if err != nil {
		return nil, err
	}

	deadline, err := validation.ParseDeadline(req.Deadline, s.now(), s.location)
	if err != nil {
		return nil, err
	}

	drive := &models.Drive{
		CompanyID:      company.ID,
		JobTitle:       req.JobTitle,
		MinCGPA:        minCGPA,
		Deadline:       deadline,
		Status:         models.DriveStatusPending,
		JobDescription: helpers.OptionalString(req.JobDescription),
	}
	if err := s.drives.Create(ctx, drive); err != nil {
		s.logger.Error().Err(err).Int64("companyID", company.ID).Msg("Error creating drive")
		return nil, apperrors.NewStorageError("create drive", err)
	}
	drive.Company = company

	s.logger.Info().Int64("driveID", drive.ID).Int64("companyID", company.ID).Msg("Drive posted")
	return drive, nil
}
