package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

func TestRegisterStudentCommitsAccountAndProfile(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	account := &models.Account{Email: "asha@college.edu", Password: "hash", Role: models.RoleStudent}
	student := &models.StudentProfile{FullName: "Asha Rao", CGPA: 8.2, Branch: "CSE"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("asha@college.edu", "hash", "Student").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectQuery("INSERT INTO student_profiles").
		WithArgs(int64(11), "Asha Rao", 8.2, "CSE", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"student_id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	require.NoError(t, repo.RegisterStudent(context.Background(), account, student))
	assert.Equal(t, int64(11), account.ID)
	assert.Equal(t, int64(11), student.AccountID)
	assert.Equal(t, int64(3), student.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterStudentRollsBackWhenProfileInsertFails(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))
	mock.ExpectQuery("INSERT INTO student_profiles").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.RegisterStudent(context.Background(),
		&models.Account{Email: "b@college.edu", Password: "hash", Role: models.RoleStudent},
		&models.StudentProfile{FullName: "B", CGPA: 7, Branch: "ECE"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterCompanyMapsDuplicateEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})
	mock.ExpectRollback()

	err := repo.RegisterCompany(context.Background(),
		&models.Account{Email: "hr@acme.example", Password: "hash", Role: models.RoleCompany},
		&models.CompanyProfile{CompanyName: "Acme", HRContact: "hr", Website: "acme.example"})

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterCompanyUsesColumnDefaults(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)
	company := &models.CompanyProfile{CompanyName: "Acme", HRContact: "hr@acme.example", Website: "acme.example"}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(20)))
	mock.ExpectQuery("INSERT INTO company_profiles").
		WithArgs(int64(20), "Acme", "hr@acme.example", "acme.example").
		WillReturnRows(pgxmock.NewRows([]string{"company_id", "approval_status", "is_blacklisted"}).
			AddRow(int64(4), "Pending", false))
	mock.ExpectCommit()

	require.NoError(t, repo.RegisterCompany(context.Background(),
		&models.Account{Email: "hr@acme.example", Password: "hash", Role: models.RoleCompany}, company))

	assert.Equal(t, int64(4), company.ID)
	assert.Equal(t, models.ApprovalPending, company.ApprovalStatus)
	assert.False(t, company.IsBlacklisted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccountByEmail(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	rows := pgxmock.NewRows([]string{"id", "email", "password_hash", "role", "created_at", "last_login_at"}).
		AddRow(int64(5), "a@b.c", "hash", "Company", fixedTime, nil)
	mock.ExpectQuery("SELECT (.+) FROM accounts WHERE email = \\$1").
		WithArgs("a@b.c").
		WillReturnRows(rows)

	account, err := repo.GetAccountByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	assert.Equal(t, int64(5), account.ID)
	assert.Equal(t, models.RoleCompany, account.Role)
	assert.Nil(t, account.LastLoginAt)
}

func TestGetAccountByEmailNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("FROM accounts").WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetAccountByEmail(context.Background(), "nobody@b.c")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetStudentByAccountIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectQuery("FROM student_profiles WHERE account_id = \\$1").
		WithArgs(int64(9)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetStudentByAccountID(context.Background(), 9)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestDeleteStudentProfileRefusedWhileApplicationsExist(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec("DELETE FROM student_profiles").
		WithArgs(int64(3)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "applications_student_id_fkey"})

	err := repo.DeleteStudentProfile(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrStudentHasApplications)
}

func TestDeleteAccountCascadesProfile(t *testing.T) {
	mock := newMockPool(t)
	repo := NewUserRepository(mock)

	mock.ExpectExec("DELETE FROM accounts").
		WithArgs(int64(20)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.DeleteAccount(context.Background(), 20))

	mock.ExpectExec("DELETE FROM accounts").
		WithArgs(int64(21)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.DeleteAccount(context.Background(), 21), apperrors.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
