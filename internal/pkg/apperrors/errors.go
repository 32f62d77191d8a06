package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTooManyRequests    = errors.New("too many requests")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")
	ErrForbidden        = ErrPermissionDenied

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidCGPA      = errors.New("CGPA must be between 0 and 10")
	ErrWeakPassword     = errors.New("password must be at least 6 characters long")
	ErrPastDeadline     = errors.New("deadline cannot be in the past")

	// Storage errors
	ErrStorageFailure = errors.New("storage failure")
)

// Account and profile errors
var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailAlreadyExists     = errors.New("email is already registered")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrStudentHasApplications = errors.New("student has applications and cannot be deleted")
)

// Drive and application errors
var (
	ErrDriveNotFound  = errors.New("this job is no longer available")
	ErrNotEligible    = errors.New("you are not eligible for this position")
	ErrAlreadyApplied = errors.New("you already applied for this job")
)

// NewStorageError wraps an unexpected storage error so callers can match ErrStorageFailure
// while the original cause stays available through errors.Unwrap chains.
func NewStorageError(op string, cause error) error {
	return &CustomError{
		Err:     ErrStorageFailure,
		Message: op + ": " + ErrStorageFailure.Error(),
		Details: map[string]interface{}{"cause": cause},
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}
