package dto

import "github.com/yigit/placement/internal/app/models"

// StudentDriveResponse is a drive as listed on the student dashboard
type StudentDriveResponse struct {
	DriveResponse
	Applied  bool `json:"applied" example:"false"`
	Eligible bool `json:"eligible" example:"true"`
}

// StudentDashboardResponse represents the student dashboard
type StudentDashboardResponse struct {
	Student         StudentProfileResponse `json:"student"`
	Drives          []StudentDriveResponse `json:"drives"`
	AppliedDriveIDs []int64                `json:"appliedDriveIds"`
}

// CompanyDashboardResponse represents the company dashboard
type CompanyDashboardResponse struct {
	Company CompanyProfileResponse `json:"company"`
	Drives  []DriveResponse        `json:"drives"`
}

// AdminDashboardResponse represents the read-only admin overview
type AdminDashboardResponse struct {
	Companies []CompanyProfileResponse `json:"companies"`
	Students  []StudentProfileResponse `json:"students"`
}

// NewStudentDashboardResponse maps the student dashboard. Every drive is listed;
// applied and eligible are informational flags.
func NewStudentDashboardResponse(student *models.StudentProfile, drives []*models.Drive, applied []int64) StudentDashboardResponse {
	appliedSet := make(map[int64]struct{}, len(applied))
	for _, id := range applied {
		appliedSet[id] = struct{}{}
	}

	resp := StudentDashboardResponse{
		Student:         NewStudentProfileResponse(student),
		Drives:          make([]StudentDriveResponse, 0, len(drives)),
		AppliedDriveIDs: applied,
	}
	if resp.AppliedDriveIDs == nil {
		resp.AppliedDriveIDs = []int64{}
	}
	for _, d := range drives {
		_, ok := appliedSet[d.ID]
		resp.Drives = append(resp.Drives, StudentDriveResponse{
			DriveResponse: NewDriveResponse(d),
			Applied:       ok,
			Eligible:      student.MeetsRequirement(d.MinCGPA),
		})
	}
	return resp
}

// NewCompanyDashboardResponse maps the company dashboard
func NewCompanyDashboardResponse(company *models.CompanyProfile, drives []*models.Drive) CompanyDashboardResponse {
	return CompanyDashboardResponse{
		Company: NewCompanyProfileResponse(company),
		Drives:  NewDriveResponses(drives),
	}
}

// NewAdminDashboardResponse maps the admin overview
func NewAdminDashboardResponse(companies []*models.CompanyProfile, students []*models.StudentProfile) AdminDashboardResponse {
	resp := AdminDashboardResponse{
		Companies: make([]CompanyProfileResponse, 0, len(companies)),
		Students:  make([]StudentProfileResponse, 0, len(students)),
	}
	for _, c := range companies {
		resp.Companies = append(resp.Companies, NewCompanyProfileResponse(c))
	}
	for _, s := range students {
		resp.Students = append(resp.Students, NewStudentProfileResponse(s))
	}
	return resp
}
