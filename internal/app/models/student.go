package models

// StudentProfile defines the student model based on the 'student_profiles' table
type StudentProfile struct {
	ID        int64   `json:"studentId" db:"student_id" example:"1"`
	AccountID int64   `json:"accountId" db:"account_id" example:"5"`
	FullName  string  `json:"fullName" db:"full_name" example:"Asha Rao"`
	CGPA      float64 `json:"cgpa" db:"cgpa" example:"8.2"`
	Branch    string  `json:"branch" db:"branch" example:"CSE"`
	ResumeURL *string `json:"resumeUrl,omitempty" db:"resume_url"`

	Account *Account `json:"account,omitempty"` // Relation, no db tag
}

// MeetsRequirement reports whether the student's CGPA satisfies a drive's minimum.
// The boundary is inclusive.
func (s *StudentProfile) MeetsRequirement(minCGPA float64) bool {
	return s.CGPA >= minCGPA
}
