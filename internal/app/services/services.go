package services

import (
	"context"

	"github.com/yigit/placement/internal/app/models"
)

// Services defined in this package:
// - AuthService: login, logout and registration of students and companies
// - DriveService: drive posting by companies
// - ApplicationService: applying to drives and viewing a drive's applications
// - DashboardService: read models for the student, company and admin dashboards

// AccountStore is the account and profile persistence used by the services
type AccountStore interface {
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateLastLogin(ctx context.Context, accountID int64) error
	RegisterStudent(ctx context.Context, account *models.Account, student *models.StudentProfile) error
	RegisterCompany(ctx context.Context, account *models.Account, company *models.CompanyProfile) error
}

// ProfileLister lists profiles for the admin overview
type ProfileLister interface {
	ListStudents(ctx context.Context) ([]*models.StudentProfile, error)
	ListCompanies(ctx context.Context) ([]*models.CompanyProfile, error)
}

// DriveStore is the drive persistence used by the services
type DriveStore interface {
	Create(ctx context.Context, drive *models.Drive) error
	GetByID(ctx context.Context, driveID int64) (*models.Drive, error)
	ListAll(ctx context.Context) ([]*models.Drive, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*models.Drive, error)
}

// ApplicationStore is the application persistence used by the services
type ApplicationStore interface {
	Create(ctx context.Context, app *models.Application) error
	Exists(ctx context.Context, studentID, driveID int64) (bool, error)
	ListDriveIDsByStudent(ctx context.Context, studentID int64) ([]int64, error)
	ListByDrive(ctx context.Context, driveID int64) ([]*models.Application, error)
}
