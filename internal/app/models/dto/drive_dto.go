package dto

import (
	"time"

	"github.com/yigit/placement/internal/app/models"
)

// PostDriveRequest represents the drive posting form. Deadline accepts the HTML
// datetime-local format (2006-01-02T15:04) or RFC3339.
type PostDriveRequest struct {
	JobTitle       string `json:"jobTitle" form:"job_title" binding:"required,max=100"`
	MinCGPA        string `json:"minCgpa" form:"min_cgpa"`
	Deadline       string `json:"deadline" form:"deadline"`
	JobDescription string `json:"jobDescription" form:"job_description"`
}

// DriveResponse represents a placement drive
type DriveResponse struct {
	DriveID        int64     `json:"driveId" example:"8"`
	CompanyID      int64     `json:"companyId" example:"4"`
	JobTitle       string    `json:"jobTitle" example:"Backend Engineer"`
	MinCGPA        float64   `json:"minCgpa" example:"7.5"`
	Deadline       time.Time `json:"deadline" example:"2025-01-31T17:00:00Z"`
	DriveStatus    string    `json:"driveStatus" example:"Pending"`
	JobDescription *string   `json:"jobDescription,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewDriveResponse maps a drive
func NewDriveResponse(d *models.Drive) DriveResponse {
	return DriveResponse{
		DriveID:        d.ID,
		CompanyID:      d.CompanyID,
		JobTitle:       d.JobTitle,
		MinCGPA:        d.MinCGPA,
		Deadline:       d.Deadline,
		DriveStatus:    string(d.Status),
		JobDescription: d.JobDescription,
		CreatedAt:      d.CreatedAt,
	}
}

// NewDriveResponses maps a list of drives
func NewDriveResponses(drives []*models.Drive) []DriveResponse {
	out := make([]DriveResponse, 0, len(drives))
	for _, d := range drives {
		out = append(out, NewDriveResponse(d))
	}
	return out
}
