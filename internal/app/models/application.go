package models

import "time"

// Application defines a student's application to a drive based on the 'applications' table
type Application struct {
	ID        int64             `json:"appId" db:"app_id" example:"1"`
	StudentID int64             `json:"studentId" db:"student_id" example:"1"`
	DriveID   int64             `json:"driveId" db:"drive_id" example:"1"`
	AppliedAt time.Time         `json:"appliedAt" db:"applied_at" example:"2024-05-01T09:00:00Z"`
	Status    ApplicationStatus `json:"status" db:"status" example:"Applied"`

	Student *StudentProfile `json:"student,omitempty"` // Relation, no db tag
}
