package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/db"
	"github.com/yigit/placement/internal/pkg/apperrors"
	"github.com/yigit/placement/internal/pkg/dberrors"
	"github.com/yigit/placement/internal/pkg/logger"
)

var studentColumns = []string{"student_id", "account_id", "full_name", "cgpa", "branch", "resume_url"}

// StudentRepository handles student profile database operations
type StudentRepository struct {
	db db.Querier
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(q db.Querier) *StudentRepository {
	return &StudentRepository{
		db: q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a student profile
func (r *StudentRepository) Create(ctx context.Context, student *models.StudentProfile) error {
	sql, args, err := r.sb.Insert("student_profiles").
		Columns("account_id", "full_name", "cgpa", "branch", "resume_url").
		Values(student.AccountID, student.FullName, student.CGPA, student.Branch, student.ResumeURL).
		Suffix("RETURNING student_id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		logger.Error().Err(err).Int64("accountID", student.AccountID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Int64("accountID", student.AccountID).Int64("studentID", student.ID).Msg("Student created successfully")
	return nil
}

func (r *StudentRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("student_profiles").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var student models.StudentProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.AccountID, &student.FullName, &student.CGPA, &student.Branch, &student.ResumeURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		logger.Error().Err(err).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return &student, nil
}

// GetByAccountID retrieves the student profile of an account
func (r *StudentRepository) GetByAccountID(ctx context.Context, accountID int64) (*models.StudentProfile, error) {
	return r.getOne(ctx, squirrel.Eq{"account_id": accountID})
}

// List returns every student profile ordered by id
func (r *StudentRepository) List(ctx context.Context) ([]*models.StudentProfile, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("student_profiles").
		OrderBy("student_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.StudentProfile, 0)
	for rows.Next() {
		var s models.StudentProfile
		if err := rows.Scan(&s.ID, &s.AccountID, &s.FullName, &s.CGPA, &s.Branch, &s.ResumeURL); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	return students, nil
}

// Delete removes a student profile. It is refused while applications reference it.
func (r *StudentRepository) Delete(ctx context.Context, studentID int64) error {
	sql, args, err := r.sb.Delete("student_profiles").Where(squirrel.Eq{"student_id": studentID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err, dberrors.ApplicationStudentForeignKey) {
			logger.Warn().Int64("studentID", studentID).Msg("Refusing to delete student with applications")
			return apperrors.ErrStudentHasApplications
		}
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
