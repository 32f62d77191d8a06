package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

var driveRowColumns = []string{"drive_id", "company_id", "job_title", "min_cgpa", "deadline", "drive_status", "job_description", "created_at"}

func TestCreateDriveDefaultsToPending(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDriveRepository(mock)
	deadline := fixedTime.Add(48 * time.Hour)
	drive := &models.Drive{CompanyID: 4, JobTitle: "SDE", MinCGPA: 7.5, Deadline: deadline}

	mock.ExpectQuery("INSERT INTO drives").
		WithArgs(int64(4), "SDE", 7.5, deadline, "Pending", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"drive_id", "created_at"}).AddRow(int64(8), fixedTime))

	require.NoError(t, repo.Create(context.Background(), drive))
	assert.Equal(t, int64(8), drive.ID)
	assert.Equal(t, models.DriveStatusPending, drive.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriveByID(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDriveRepository(mock)
	desc := "Build APIs"

	mock.ExpectQuery("FROM drives WHERE drive_id = \\$1").
		WithArgs(int64(8)).
		WillReturnRows(pgxmock.NewRows(driveRowColumns).
			AddRow(int64(8), int64(4), "SDE", 7.5, fixedTime, "Pending", &desc, fixedTime))

	drive, err := repo.GetByID(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, int64(4), drive.CompanyID)
	assert.Equal(t, models.DriveStatusPending, drive.Status)
	require.NotNil(t, drive.JobDescription)
	assert.Equal(t, desc, *drive.JobDescription)
}

func TestGetDriveByIDNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDriveRepository(mock)

	mock.ExpectQuery("FROM drives").WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrDriveNotFound)
}

func TestListByCompanyFiltersOnOwner(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDriveRepository(mock)

	mock.ExpectQuery("FROM drives WHERE company_id = \\$1 ORDER BY drive_id ASC").
		WithArgs(int64(4)).
		WillReturnRows(pgxmock.NewRows(driveRowColumns).
			AddRow(int64(1), int64(4), "SDE", 7.0, fixedTime, "Pending", nil, fixedTime).
			AddRow(int64(2), int64(4), "QA", 6.0, fixedTime, "Pending", nil, fixedTime))

	drives, err := repo.ListByCompany(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, drives, 2)
	assert.Equal(t, "QA", drives[1].JobTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllDrivesEmpty(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDriveRepository(mock)

	mock.ExpectQuery("FROM drives ORDER BY drive_id ASC").
		WillReturnRows(pgxmock.NewRows(driveRowColumns))

	drives, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, drives)
	assert.Empty(t, drives)
}

func TestDeleteDrive(t *testing.T) {
	mock := newMockPool(t)
	repo := NewDriveRepository(mock)

	mock.ExpectExec("DELETE FROM drives").WithArgs(int64(8)).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, repo.Delete(context.Background(), 8))

	mock.ExpectExec("DELETE FROM drives").WithArgs(int64(9)).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 9), apperrors.ErrDriveNotFound)
}
