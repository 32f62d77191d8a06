package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

var driveColumns = []string{"drive_id", "company_id", "job_title", "min_cgpa", "deadline", "drive_status", "job_description", "created_at"}

// DriveRepository handles placement drive database operations
type DriveRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewDriveRepository creates a new DriveRepository
func NewDriveRepository(q db.Querier) *DriveRepository {
	return &DriveRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a drive. The status is always set explicitly.
func (r *DriveRepository) Create(ctx context.Context, drive *models.Drive) error {
	if drive.Status == "" {
		drive.Status = models.DriveStatusPending
	}

	sql, args, err := r.sb.Insert("drives").
		Columns("company_id", "job_title", "min_cgpa", "deadline", "drive_status", "job_description").
		Values(drive.CompanyID, drive.JobTitle, drive.MinCGPA, drive.Deadline, string(drive.Status), drive.JobDescription).
		Suffix("RETURNING drive_id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create drive query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&drive.ID, &drive.CreatedAt); err != nil {
		logger.Error().Err(err).Int64("companyID", drive.CompanyID).Msg("Error executing create drive query")
		return fmt.Errorf("error creating drive: %w", err)
	}

	logger.Info().Int64("driveID", drive.ID).Int64("companyID", drive.CompanyID).Msg("Drive created successfully")
	return nil
}

func scanDrive(row pgx.Row) (*models.Drive, error) {
	var (
		drive  models.Drive
		status string
	)
	err := row.Scan(&drive.ID, &drive.CompanyID, &drive.JobTitle, &drive.MinCGPA, &drive.Deadline,
		&status, &drive.JobDescription, &drive.CreatedAt)
	if err != nil {
		return nil, err
	}
	drive.Status = models.DriveStatus(status)
	return &drive, nil
}

// GetByID retrieves a drive by id
func (r *DriveRepository) GetByID(ctx context.Context, driveID int64) (*models.Drive, error) {
	sql, args, err := r.sb.Select(driveColumns...).
		From("drives").
		Where(squirrel.Eq{"drive_id": driveID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get drive query: %w", err)
	}

	drive, err := scanDrive(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		logger.Error().Err(err).Int64("driveID", driveID).Msg("Error scanning drive row")
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}
	return drive, nil
}

func (r *DriveRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Drive, error) {
	sql, args, err := query.OrderBy("drive_id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list drives query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing drives: %w", err)
	}
	defer rows.Close()

	drives := make([]*models.Drive, 0)
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning drive row: %w", err)
		}
		drives = append(drives, drive)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drive rows: %w", err)
	}
	return drives, nil
}

// ListAll returns every drive in the system
func (r *DriveRepository) ListAll(ctx context.Context) ([]*models.Drive, error) {
	return r.list(ctx, r.sb.Select(driveColumns...).From("drives"))
}

// ListByCompany returns the drives posted by one company
func (r *DriveRepository) ListByCompany(ctx context.Context, companyID int64) ([]*models.Drive, error) {
	return r.list(ctx, r.sb.Select(driveColumns...).From("drives").Where(squirrel.Eq{"company_id": companyID}))
}

// Delete removes a drive and, through the cascade, its applications
func (r *DriveRepository) Delete(ctx context.Context, driveID int64) error {
	sql, args, err := r.sb.Delete("drives").Where(squirrel.Eq{"drive_id": driveID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete drive query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}
	return nil
}
