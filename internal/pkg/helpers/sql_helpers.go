package helpers

import "strings"

// OptionalString converts a form value to a nullable column value.
// Blank input (after trimming) maps to nil so the column stays NULL.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
