package validation

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yigit/placement/internal/app/models"
	"github.com/yigit/placement/internal/pkg/apperrors"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// Password min length
	PasswordMinLength = 6

	// DeadlineLayout is the HTML datetime-local layout accepted for drive deadlines
	DeadlineLayout = "2006-01-02T15:04"
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// ErrInvalidDeadlineFormat is wrapped into apperrors.ErrPastDeadline when a deadline cannot be parsed
var ErrInvalidDeadlineFormat = errors.New("invalid deadline format")

// String validation
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other validations for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}

	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}

	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// RangeValidation checks a float against an inclusive range
type RangeValidation struct {
	Value float64
	Min   float64
	Max   float64
}

// NewRangeValidation creates a new inclusive range validation
func NewRangeValidation(value, min, max float64) *RangeValidation {
	return &RangeValidation{Value: value, Min: min, Max: max}
}

// Validate performs validation. NaN never validates.
func (v *RangeValidation) Validate() bool {
	if math.IsNaN(v.Value) {
		return false
	}
	return v.Value >= v.Min && v.Value <= v.Max
}

// ParseCGPA parses a submitted CGPA or minimum CGPA and checks it lies in [0, 10].
func ParseCGPA(raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, apperrors.ErrInvalidCGPA
	}
	if !NewRangeValidation(value, models.MinCGPA, models.MaxCGPA).Validate() {
		return 0, apperrors.ErrInvalidCGPA
	}
	return value, nil
}

// ValidatePassword enforces the minimum password length
func ValidatePassword(password string) error {
	if !NewStringValidation(password).WithMinLength(PasswordMinLength).Validate() {
		return apperrors.ErrWeakPassword
	}
	return nil
}

// CanonicalEmail trims and lower-cases an email so lookups and the unique
// constraint agree on identity.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmail reports whether an already canonical email looks valid
func IsEmail(email string) bool {
	return NewStringValidation(email).WithMaxLength(70).WithPattern(CompiledPatterns.Email).Validate()
}

// ParseDeadline parses a drive deadline given either as a datetime-local value
// (interpreted in loc) or as RFC3339, and requires it to be strictly after now.
func ParseDeadline(raw string, now time.Time, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if loc == nil {
		loc = time.Local
	}

	deadline, err := time.ParseInLocation(DeadlineLayout, raw, loc)
	if err != nil {
		deadline, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, apperrors.NewCustomError(apperrors.ErrPastDeadline, ErrInvalidDeadlineFormat.Error())
		}
	}

	if !deadline.After(now) {
		return time.Time{}, apperrors.ErrPastDeadline
	}
	return deadline, nil
}
