package dto

import (
	"time"

	"github.com/yigit/placement/internal/app/models"
)

// ApplyResponse is returned when an application is accepted
type ApplyResponse struct {
	Outcome       string    `json:"outcome" example:"Applied"`
	ApplicationID int64     `json:"appId" example:"1"`
	DriveID       int64     `json:"driveId" example:"8"`
	AppliedAt     time.Time `json:"appliedAt"`
	Status        string    `json:"status" example:"Applied"`
}

// ApplicantResponse represents one application as seen by the posting company
type ApplicantResponse struct {
	ApplicationID int64     `json:"appId" example:"1"`
	StudentID     int64     `json:"studentId" example:"3"`
	FullName      string    `json:"fullName" example:"Asha Rao"`
	CGPA          float64   `json:"cgpa" example:"8.2"`
	Branch        string    `json:"branch" example:"CSE"`
	ResumeURL     *string   `json:"resumeUrl,omitempty"`
	AppliedAt     time.Time `json:"appliedAt"`
	Status        string    `json:"status" example:"Applied"`
}

// DriveApplicationsResponse lists the applications of one drive
type DriveApplicationsResponse struct {
	Drive        DriveResponse       `json:"drive"`
	Applications []ApplicantResponse `json:"applications"`
}

// NewDriveApplicationsResponse maps a drive and its applications
func NewDriveApplicationsResponse(drive *models.Drive, apps []*models.Application) DriveApplicationsResponse {
	resp := DriveApplicationsResponse{
		Drive:        NewDriveResponse(drive),
		Applications: make([]ApplicantResponse, 0, len(apps)),
	}
	for _, a := range apps {
		item := ApplicantResponse{
			ApplicationID: a.ID,
			StudentID:     a.StudentID,
			AppliedAt:     a.AppliedAt,
			Status:        string(a.Status),
		}
		if a.Student != nil {
			item.FullName = a.Student.FullName
			item.CGPA = a.Student.CGPA
			item.Branch = a.Student.Branch
			item.ResumeURL = a.Student.ResumeURL
		}
		resp.Applications = append(resp.Applications, item)
	}
	return resp
}
