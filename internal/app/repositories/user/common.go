package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/dberrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

// Common errors
var (
	ErrAccountNotFound    = apperrors.ErrUserNotFound
	ErrEmailAlreadyExists = apperrors.ErrEmailAlreadyExists
	ErrProfileNotFound    = apperrors.ErrProfileNotFound
)

var accountColumns = []string{"id", "email", "password_hash", "role", "created_at", "last_login_at"}

// AccountRepository handles login identity database operations
type AccountRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(q db.Querier) *AccountRepository {
	return &AccountRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an account and returns its id. The email must already be canonical.
func (r *AccountRepository) Create(ctx context.Context, account *models.Account) (int64, error) {
	sql, args, err := r.sb.Insert("accounts").
		Columns("email", "password_hash", "role").
		Values(account.Email, account.Password, string(account.Role)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create account query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.AccountEmailConstraint) {
			logger.Warn().Str("email", account.Email).Msg("Attempted to create account with duplicate email")
			return 0, ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", account.Email).Msg("Error executing create account query")
		return 0, fmt.Errorf("error creating account: %w", err)
	}

	account.ID = id
	return id, nil
}

func (r *AccountRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Account, error) {
	sql, args, err := r.sb.Select(accountColumns...).
		From("accounts").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get account query: %w", err)
	}

	var (
		account models.Account
		role    string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&account.ID, &account.Email, &account.Password, &role, &account.CreatedAt, &account.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving account: %w", err)
	}

	account.Role = models.RoleType(role)
	return &account, nil
}

// GetByEmail retrieves an account by its canonical email
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email})
}

// GetByID retrieves an account by id
func (r *AccountRepository) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// EmailExists checks if an email is already registered
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("accounts").
		Where(squirrel.Eq{"email": email}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdateLastLogin records a successful login
func (r *AccountRepository) UpdateLastLogin(ctx context.Context, accountID int64, at time.Time) error {
	sql, args, err := r.sb.Update("accounts").
		Set("last_login_at", at).
		Where(squirrel.Eq{"id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update last login query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to update last login time: %w", err)
	}
	return nil
}

// Delete removes an account. Its profile goes with it (ON DELETE CASCADE).
func (r *AccountRepository) Delete(ctx context.Context, accountID int64) error {
	sql, args, err := r.sb.Delete("accounts").Where(squirrel.Eq{"id": accountID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete account query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, dberrors.ApplicationStudentForeignKey) {
			return apperrors.ErrStudentHasApplications
		}
		return fmt.Errorf("error deleting account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}

	logger.Info().Int64("accountID", accountID).Msg("Account deleted")
	return nil
}
