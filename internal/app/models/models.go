package models

import "strings"

// RoleType defines the account role type
type RoleType string

const (
	RoleStudent RoleType = "Student"
	RoleCompany RoleType = "Company"
	RoleAdmin   RoleType = "Admin"
)

// ParseRole normalizes a stored or submitted role string (surrounding whitespace
// removed, first letter upper-cased, rest lower-cased) and reports whether it names
// one of the known roles.
func ParseRole(raw string) (RoleType, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", false
	}
	s = strings.ToUpper(s[:1]) + strings.ToLower(s[1:])

	switch role := RoleType(s); role {
	case RoleStudent, RoleCompany, RoleAdmin:
		return role, true
	default:
		return "", false
	}
}

// String returns the role name
func (r RoleType) String() string {
	return string(r)
}

// DashboardPath returns the landing page for the role
func (r RoleType) DashboardPath() string {
	switch r {
	case RoleStudent:
		return "/dashboard/student"
	case RoleCompany:
		return "/dashboard/company"
	case RoleAdmin:
		return "/dashboard/admin"
	default:
		return "/login"
	}
}

// ApprovalStatus of a company profile. Stored but not enforced by any workflow.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

// DriveStatus of a placement drive
type DriveStatus string

const (
	DriveStatusPending DriveStatus = "Pending"
	DriveStatusOpen    DriveStatus = "Open"
	DriveStatusClosed  DriveStatus = "Closed"
)

// ApplicationStatus of a job application
type ApplicationStatus string

const (
	ApplicationApplied     ApplicationStatus = "Applied"
	ApplicationShortlisted ApplicationStatus = "Shortlisted"
	ApplicationRejected    ApplicationStatus = "Rejected"
)

// CGPA bounds shared by student profiles and drive requirements
const (
	MinCGPA = 0.0
	MaxCGPA = 10.0
)
