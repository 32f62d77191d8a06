package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/logger"
)

var companyColumns = []string{"company_id", "account_id", "company_name", "hr_contact", "website", "approval_status", "is_blacklisted"}

// CompanyRepository handles company profile database operations
type CompanyRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewCompanyRepository creates a new CompanyRepository
func NewCompanyRepository(q db.Querier) *CompanyRepository {
	return &CompanyRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a company profile. Approval status and blacklist flag take their column defaults.
func (r *CompanyRepository) Create(ctx context.Context, company *models.CompanyProfile) error {
	sql, args, err := r.sb.Insert("company_profiles").
		Columns("account_id", "company_name", "hr_contact", "website").
		Values(company.AccountID, company.CompanyName, company.HRContact, company.Website).
		Suffix("RETURNING company_id, approval_status, is_blacklisted").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create company query: %w", err)
	}

	var status string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&company.ID, &status, &company.IsBlacklisted); err != nil {
		logger.Error().Err(err).Int64("accountID", company.AccountID).Msg("Error executing create company query")
		return fmt.Errorf("error creating company: %w", err)
	}
	company.ApprovalStatus = models.ApprovalStatus(status)

	logger.Info().Int64("accountID", company.AccountID).Int64("companyID", company.ID).Msg("Company created successfully")
	return nil
}

func scanCompany(row pgx.Row) (*models.CompanyProfile, error) {
	var (
		company models.CompanyProfile
		status  string
	)
	err := row.Scan(&company.ID, &company.AccountID, &company.CompanyName, &company.HRContact,
		&company.Website, &status, &company.IsBlacklisted)
	if err != nil {
		return nil, err
	}
	company.ApprovalStatus = models.ApprovalStatus(status)
	return &company, nil
}

func (r *CompanyRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.CompanyProfile, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("company_profiles").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get company query: %w", err)
	}

	company, err := scanCompany(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving company: %w", err)
	}
	return company, nil
}

// GetByAccountID retrieves the company profile of an account
func (r *CompanyRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.CompanyProfile, error) {
	return r.getOne(ctx, squirrel.Eq{"account_id": accountID})
}

// List returns every company profile ordered by id
func (r *CompanyRepository) List(ctx context.Context) ([]*models.CompanyProfile, error) {
	sql, args, err := r.sb.Select(companyColumns...).
		From("company_profiles").
		OrderBy("company_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list companies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing companies: %w", err)
	}
	defer rows.Close()

	companies := make([]*models.CompanyProfile, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning company row: %w", err)
		}
		companies = append(companies, company)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating company rows: %w", err)
	}
	return companies, nil
}
