package auth

import (
	"context"
	"errors"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	pkgAuth "github.com/yigit/placement/internal/pkg/auth"
	"github.com/yigit/placement/internal/pkg/logger"
)

// ProfileStore resolves the profile attached to an account
type ProfileStore interface {
	GetStudentByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error)
	GetCompanyByAccountID(ctx context.Context, accountID int64) (*models.CompanyProfile, error)
}

// DriveLookup loads drives by id
type DriveLookup interface {
	GetByID(ctx context.Context, driveID int64) (*models.Drive, error)
}

// AuthorizationService resolves the caller's profile and checks drive ownership
type AuthorizationService struct {
	profiles ProfileStore
	drives   DriveLookup
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(profiles ProfileStore, drives DriveLookup) *AuthorizationService {
	return &AuthorizationService{
		profiles: profiles,
		drives:   drives,
	}
}

// RequireRole fails with apperrors.ErrUnauthorized unless the session holds role
func RequireRole(session *pkgAuth.Session, role models.RoleType) error {
	if !session.Is(role) {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// CurrentStudent returns the student profile of the session's account
func (s *AuthorizationService) CurrentStudent(ctx context.Context, session *pkgAuth.Session) (*models.StudentProfile, error) {
	if err := RequireRole(session, models.RoleStudent); err != nil {
		return nil, err
	}

	student, err := s.profiles.GetStudentByAccountID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			logger.Warn().Int64("accountID", session.AccountID).Msg("Student account has no profile")
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("accountID", session.AccountID).Msg("Error loading student profile")
		return nil, apperrors.NewStorageError("load student profile", err)
	}
	return student, nil
}

// CurrentCompany returns the company profile of the session's account
func (s *AuthorizationService) CurrentCompany(ctx context.Context, session *pkgAuth.Session) (*models.CompanyProfile, error) {
	if err := RequireRole(session, models.RoleCompany); err != nil {
		return nil, err
	}

	company, err := s.profiles.GetCompanyByAccountID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			logger.Warn().Int64("accountID", session.AccountID).Msg("Company account has no profile")
			return nil, apperrors.ErrProfileNotFound
		}
		logger.Error().Err(err).Int64("accountID", session.AccountID).Msg("Error loading company profile")
		return nil, apperrors.NewStorageError("load company profile", err)
	}
	return company, nil
}

// OwnedDrive returns the drive if the company posted it. A missing drive and a
// drive owned by another company are both reported as apperrors.ErrForbidden.
func (s *AuthorizationService) OwnedDrive(ctx context.Context, company *models.CompanyProfile, driveID int64) (*models.Drive, error) {
	drive, err := s.drives.GetByID(ctx, driveID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDriveNotFound) {
			return nil, apperrors.ErrForbidden
		}
		logger.Error().Err(err).Int64("driveID", driveID).Msg("Error loading drive for ownership check")
		return nil, apperrors.NewStorageError("load drive", err)
	}

	if !drive.IsOwnedBy(company.ID) {
		logger.Warn().Int64("driveID", driveID).Int64("companyID", company.ID).Msg("Company attempted to access a drive it does not own")
		return nil, apperrors.ErrForbidden
	}
	return drive, nil
}
