package services

import (
	"context"

	"github.com/rs/zerolog"
	appAuth "github.com/yigit/placement/internal/app/auth"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/auth"
)

// StudentDashboard is the data behind the student dashboard
type StudentDashboard struct {
	Student         *models.StudentProfile
	Drives          []*models.Drive
	AppliedDriveIDs []int64
}

// CompanyDashboard is the data behind the company dashboard
type CompanyDashboard struct {
	Company *models.CompanyProfile
	Drives  []*models.Drive
}

// AdminDashboard is the read-only admin overview
type AdminDashboard struct {
	Companies []*models.CompanyProfile
	Students  []*models.StudentProfile
}

// DashboardService builds dashboard read models
type DashboardService struct {
	authz        *appAuth.AuthorizationService
	profiles     ProfileLister
	drives       DriveStore
	applications ApplicationStore
	logger       zerolog.Logger
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	authz *appAuth.AuthorizationService,
	profiles ProfileLister,
	drives DriveStore,
	applications ApplicationStore,
	logger zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		authz:        authz,
		profiles:     profiles,
		drives:       drives,
		applications: applications,
		logger:       logger,
	}
}

// StudentDashboard returns every drive together with the ids the student applied to
func (s *DashboardService) StudentDashboard(ctx context.Context, session *auth.Session) (*StudentDashboard, error) {
	student, err := s.authz.CurrentStudent(ctx, session)
	if err != nil {
		return nil, err
	}

	drives, err := s.drives.ListAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing drives")
		return nil, apperrors.NewStorageError("list drives", err)
	}

	applied, err := s.applications.ListDriveIDsByStudent(ctx, student.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error listing applied drives")
		return nil, apperrors.NewStorageError("list applied drives", err)
	}

	return &StudentDashboard{
		Student:         student,
		Drives:          drives,
		AppliedDriveIDs: applied,
	}, nil
}

// CompanyDashboard returns the drives posted by the calling company
func (s *DashboardService) CompanyDashboard(ctx context.Context, session *auth.Session) (*CompanyDashboard, error) {
	company, err := s.authz.CurrentCompany(ctx, session)
	if err != nil {
		return nil, err
	}

	drives, err := s.drives.ListByCompany(ctx, company.ID)
	if err != nil {
		s.logger.Error().Err(err).Int64("companyID", company.ID).Msg("Error listing company drives")
		return nil, apperrors.NewStorageError("list company drives", err)
	}

	return &CompanyDashboard{
		Company: company,
		Drives:  drives,
	}, nil
}

// AdminDashboard lists all companies and students
func (s *DashboardService) AdminDashboard(ctx context.Context, session *auth.Session) (*AdminDashboard, error) {
	if err := appAuth.RequireRole(session, models.RoleAdmin); err != nil {
		return nil, err
	}

	companies, err := s.profiles.ListCompanies(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing companies")
		return nil, apperrors.NewStorageError("list companies", err)
	}

	students, err := s.profiles.ListStudents(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error listing students")
		return nil, apperrors.NewStorageError("list students", err)
	}

	return &AdminDashboard{
		Companies: companies,
		Students:  students,
	}, nil
}
