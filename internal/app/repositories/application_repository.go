package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/dberrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

// ApplicationRepository handles job application database operations
type ApplicationRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(q db.Querier) *ApplicationRepository {
	return &ApplicationRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an application. applied_at is assigned by the database.
// A concurrent duplicate surfaces as apperrors.ErrAlreadyApplied.
func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.Status == "" {
		app.Status = models.ApplicationApplied
	}

	sql, args, err := r.sb.Insert("applications").
		Columns("student_id", "drive_id", "status").
		Values(app.StudentID, app.DriveID, string(app.Status)).
		Suffix("RETURNING app_id, applied_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create application query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&app.ID, &app.AppliedAt); err != nil {
		if dberrors.IsDuplicateConstraintError(err, dberrors.ApplicationUniqueConstraint) {
			logger.Warn().Int64("studentID", app.StudentID).Int64("driveID", app.DriveID).Msg("Duplicate application rejected by constraint")
			return apperrors.ErrAlreadyApplied
		}
		if dberrors.IsForeignKeyViolation(err, "applications_drive_id_fkey") {
			return apperrors.ErrDriveNotFound
		}
		logger.Error().Err(err).Int64("studentID", app.StudentID).Int64("driveID", app.DriveID).Msg("Error executing create application query")
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// Exists reports whether the student already applied to the drive
func (r *ApplicationRepository) Exists(ctx context.Context, studentID, driveID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("applications").
		Where(squirrel.Eq{"student_id": studentID, "drive_id": driveID}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build application exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking application existence: %w", err)
	}
	return exists, nil
}

// ListDriveIDsByStudent returns the ids of the drives a student applied to
func (r *ApplicationRepository) ListDriveIDsByStudent(ctx context.Context, studentID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("drive_id").
		From("applications").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("drive_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build applied drives query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applied drives: %w", err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning applied drive id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating applied drive rows: %w", err)
	}
	return ids, nil
}

// ListByDrive returns the applications of a drive with applicant details,
// oldest first (ties broken by id, i.e. insertion order).
func (r *ApplicationRepository) ListByDrive(ctx context.Context, driveID int64) ([]*models.Application, error) {
	sql, args, err := r.sb.Select(
		"a.app_id", "a.student_id", "a.drive_id", "a.applied_at", "a.status",
		"s.account_id", "s.full_name", "s.cgpa", "s.branch", "s.resume_url").
		From("applications a").
		Join("student_profiles s ON s.student_id = a.student_id").
		Where(squirrel.Eq{"a.drive_id": driveID}).
		OrderBy("a.applied_at ASC", "a.app_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list applications query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	apps := make([]*models.Application, 0)
	for rows.Next() {
		var (
			app     models.Application
			student models.StudentProfile
			status  string
		)
		if err := rows.Scan(&app.ID, &app.StudentID, &app.DriveID, &app.AppliedAt, &status,
			&student.AccountID, &student.FullName, &student.CGPA, &student.Branch, &student.ResumeURL); err != nil {
			return nil, fmt.Errorf("error scanning application row: %w", err)
		}
		app.Status = models.ApplicationStatus(status)
		student.ID = app.StudentID
		app.Student = &student
		apps = append(apps, &app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", err)
	}
	return apps, nil
}
