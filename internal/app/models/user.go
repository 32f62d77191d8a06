package models

import (
	"time"
)

// Account defines the login identity based on the 'accounts' table
type Account struct {
	ID          int64      `json:"id" db:"id" example:"1"`                                                  // Unique identifier for the account
	Email       string     `json:"email" db:"email" example:"student@college.edu"`                          // Unique login email, stored lower-cased
	Password    string     `json:"-" db:"password_hash"`                                                    // Hashed password (excluded from JSON)
	Role        RoleType   `json:"role" db:"role" example:"Student"`                                        // Student, Company or Admin
	CreatedAt   time.Time  `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`                // Timestamp when the account was created
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at" example:"2024-04-20T18:00:00Z"` // Timestamp of the last login (nullable)
}
