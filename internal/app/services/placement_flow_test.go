package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/app/models/dto"
)

func TestPlacementFlowEndToEnd(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	authSvc, _, _ := newTestAuthService(f.users)
	driveSvc := NewDriveService(f.authz, f.drives, time.UTC, testLogger)
	appSvc := newTestApplicationService(f)

	student, err := authSvc.RegisterStudent(ctx, &dto.RegisterStudentRequest{
		Email: "s1@x.com", Password: "secret1", FullName: "Asha Rao", CGPA: "8.0", Branch: "CSE",
	})
	require.NoError(t, err)
	assert.Equal(t, 8.0, student.CGPA)

	_, err = authSvc.RegisterCompany(ctx, &dto.RegisterCompanyRequest{
		Email: "hr@x.com", Password: "secret1", CompanyName: "Acme", Website: "https://acme.example", HRContact: "hr@acme.example",
	})
	require.NoError(t, err)

	companyLogin, err := authSvc.Login(ctx, "hr@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCompany, companyLogin.Role)

	drive, err := driveSvc.PostDrive(ctx, companyLogin.Session, &dto.PostDriveRequest{
		JobTitle: "Backend Engineer",
		MinCGPA:  "7.0",
		Deadline: time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
	})
	require.NoError(t, err)

	studentLogin, err := authSvc.Login(ctx, "s1@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "/dashboard/student", studentLogin.Redirect)

	_, err = appSvc.Apply(ctx, studentLogin.Session, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, ApplyOutcomeOf(err))

	viewed, apps, err := appSvc.ViewApplications(ctx, companyLogin.Session, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, drive.ID, viewed.ID)
	require.Len(t, apps, 1)
	assert.Equal(t, student.ID, apps[0].StudentID)
	assert.Equal(t, models.ApplicationApplied, apps[0].Status)
}
