package dto

import "github.com/yigit/placement/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResponse is returned after a successful login. The session token itself
// travels in an HTTP-only cookie.
type LoginResponse struct {
	AccountID int64  `json:"accountId" example:"11"`
	Email     string `json:"email" example:"asha@college.edu"`
	Role      string `json:"role" example:"Student"`
	Redirect  string `json:"redirect" example:"/dashboard/student"`
	ExpiresIn int64  `json:"expiresIn" example:"43200"`
}

// RegisterStudentRequest represents the student registration form. CGPA is kept
// as text so range and format errors are reported the same way. Email format is
// checked after canonicalization by the service.
type RegisterStudentRequest struct {
	Email     string `json:"email" form:"email" binding:"required"`
	Password  string `json:"password" form:"password"`
	FullName  string `json:"fullName" form:"full_name" binding:"required,max=100"`
	CGPA      string `json:"cgpa" form:"cgpa"`
	Branch    string `json:"branch" form:"branch" binding:"required,max=50"`
	ResumeURL string `json:"resumeUrl" form:"resume_url" binding:"omitempty,url,max=200"`
}

// RegisterCompanyRequest represents the company registration form
type RegisterCompanyRequest struct {
	Email       string `json:"email" form:"email" binding:"required"`
	Password    string `json:"password" form:"password"`
	CompanyName string `json:"companyName" form:"company_name" binding:"required,max=100"`
	Website     string `json:"website" form:"website" binding:"required,max=200"`
	HRContact   string `json:"hrContact" form:"hr_contact" binding:"required,max=100"`
}

// StudentProfileResponse represents a student profile
type StudentProfileResponse struct {
	StudentID int64   `json:"studentId" example:"3"`
	AccountID int64   `json:"accountId" example:"11"`
	Email     string  `json:"email,omitempty" example:"asha@college.edu"`
	FullName  string  `json:"fullName" example:"Asha Rao"`
	CGPA      float64 `json:"cgpa" example:"8.2"`
	Branch    string  `json:"branch" example:"CSE"`
	ResumeURL *string `json:"resumeUrl,omitempty"`
}

// CompanyProfileResponse represents a company profile
type CompanyProfileResponse struct {
	CompanyID      int64  `json:"companyId" example:"4"`
	AccountID      int64  `json:"accountId" example:"20"`
	Email          string `json:"email,omitempty" example:"hr@acme.example"`
	CompanyName    string `json:"companyName" example:"Acme Corp"`
	HRContact      string `json:"hrContact" example:"hr@acme.example"`
	Website        string `json:"website" example:"https://acme.example"`
	ApprovalStatus string `json:"approvalStatus" example:"Pending"`
	IsBlacklisted  bool   `json:"isBlacklisted" example:"false"`
}

// NewStudentProfileResponse maps a student profile
func NewStudentProfileResponse(s *models.StudentProfile) StudentProfileResponse {
	resp := StudentProfileResponse{
		StudentID: s.ID,
		AccountID: s.AccountID,
		FullName:  s.FullName,
		CGPA:      s.CGPA,
		Branch:    s.Branch,
		ResumeURL: s.ResumeURL,
	}
	if s.Account != nil {
		resp.Email = s.Account.Email
	}
	return resp
}

// NewCompanyProfileResponse maps a company profile
func NewCompanyProfileResponse(c *models.CompanyProfile) CompanyProfileResponse {
	resp := CompanyProfileResponse{
		CompanyID:      c.ID,
		AccountID:      c.AccountID,
		CompanyName:    c.CompanyName,
		HRContact:      c.HRContact,
		Website:        c.Website,
		ApprovalStatus: string(c.ApprovalStatus),
		IsBlacklisted:  c.IsBlacklisted,
	}
	if c.Account != nil {
		resp.Email = c.Account.Email
	}
	return resp
}
