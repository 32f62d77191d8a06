package models

// CompanyProfile defines the company model based on the 'company_profiles' table
type CompanyProfile struct {
	ID             int64          `json:"companyId" db:"company_id" example:"1"`
	AccountID      int64          `json:"accountId" db:"account_id" example:"7"`
	CompanyName    string         `json:"companyName" db:"company_name" example:"Acme Corp"`
	HRContact      string         `json:"hrContact" db:"hr_contact" example:"hr@acme.example"`
	Website        string         `json:"website" db:"website" example:"https://acme.example"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus" db:"approval_status" example:"Pending"`
	IsBlacklisted  bool           `json:"isBlacklisted" db:"is_blacklisted" example:"false"`

	Account *Account `json:"account,omitempty"` // Relation, no db tag
}
