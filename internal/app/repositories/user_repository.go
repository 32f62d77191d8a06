package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/repositories/user"
	"github.com/yigit/placement/internal/db"
)

// UserRepository combines account and profile repositories
type UserRepository struct {
	db      db.Pool
	common  *user.AccountRepository
	student *user.StudentRepository
	company *user.CompanyRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool db.Pool) *UserRepository {
	return &UserRepository{
		db:      pool,
		common:  user.NewAccountRepository(pool),
		student: user.NewStudentRepository(pool),
		company: user.NewCompanyRepository(pool),
	}
}

// RegisterStudent creates the account and its student profile in one transaction.
// Nothing is persisted when either insert fails.
func (r *UserRepository) RegisterStudent(ctx context.Context, account *models.Account, student *models.StudentProfile) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		accountID, err := user.NewAccountRepository(tx).Create(ctx, account)
		if err != nil {
			return err
		}

		student.AccountID = accountID
		if err := user.NewStudentRepository(tx).Create(ctx, student); err != nil {
			return fmt.Errorf("student profile creation error: %w", err)
		}
		student.Account = account
		return nil
	})
}

// RegisterCompany creates the account and its company profile in one transaction.
func (r *UserRepository) RegisterCompany(ctx context.Context, account *models.Account, company *models.CompanyProfile) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		accountID, err := user.NewAccountRepository(tx).Create(ctx, account)
		if err != nil {
			return err
		}

		company.AccountID = accountID
		if err := user.NewCompanyRepository(tx).Create(ctx, company); err != nil {
			return fmt.Errorf("company profile creation error: %w", err)
		}
		company.Account = account
		return nil
	})
}

// CreateAccount creates an account without a profile (used for the seeded admin)
func (r *UserRepository) CreateAccount(ctx context.Context, account *models.Account) (int64, error) {
	return r.common.Create(ctx, account)
}

// GetAccountByEmail retrieves an account by email
func (r *UserRepository) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.common.GetByEmail(ctx, email)
}

// GetAccountByID retrieves an account by ID
func (r *UserRepository) GetAccountByID(ctx context.Context, id int64) (*models.Account, error) {
	return r.common.GetByID(ctx, id)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// UpdateLastLogin updates the last login time
func (r *UserRepository) UpdateLastLogin(ctx context.Context, accountID int64) error {
	return r.common.UpdateLastLogin(ctx, accountID, time.Now())
}

// DeleteAccount deletes an account together with its profile
func (r *UserRepository) DeleteAccount(ctx context.Context, accountID int64) error {
	return r.common.Delete(ctx, accountID)
}

// GetStudentByAccountID retrieves a student profile by account ID
func (r *UserRepository) GetStudentByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error) {
	return r.student.GetByAccountID(ctx, accountID)
}

// ListStudents lists all student profiles
func (r *UserRepository) ListStudents(ctx context.Context) ([]*models.StudentProfile, error) {
	return r.student.List(ctx)
}

// DeleteStudentProfile deletes a student profile unless applications reference it
func (r *UserRepository) DeleteStudentProfile(ctx context.Context, studentID int64) error {
	return r.student.Delete(ctx, studentID)
}

// GetCompanyByAccountID retrieves a company profile by account ID
func (r *UserRepository) GetCompanyByAccountID(ctx context.Context, accountID int64) (*models.CompanyProfile, error) {
	return r.company.GetByAccountID(ctx, accountID)
}

// ListCompanies lists all company profiles
func (r *UserRepository) ListCompanies(ctx context.Context) ([]*models.CompanyProfile, error) {
	return r.company.List(ctx)
}
