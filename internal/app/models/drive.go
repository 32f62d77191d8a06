package models

import "time"

// Drive defines a placement drive based on the 'drives' table
type Drive struct {
	ID             int64       `json:"driveId" db:"drive_id" example:"1"`
	CompanyID      int64       `json:"companyId" db:"company_id" example:"1"`
	JobTitle       string      `json:"jobTitle" db:"job_title" example:"Backend Engineer"`
	MinCGPA        float64     `json:"minCgpa" db:"min_cgpa" example:"7.5"`
	Deadline       time.Time   `json:"deadline" db:"deadline" example:"2025-01-31T17:00:00Z"`
	Status         DriveStatus `json:"driveStatus" db:"drive_status" example:"Pending"`
	JobDescription *string     `json:"jobDescription,omitempty" db:"job_description"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`

	Company *CompanyProfile `json:"company,omitempty"` // Relation, no db tag
}

// IsOwnedBy reports whether the drive was posted by the given company
func (d *Drive) IsOwnedBy(companyID int64) bool {
	return d != nil && d.CompanyID == companyID
}
