package records

import (
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound           = fmt.Errorf("not found")
	ErrInvalidAssignment  = fmt.Errorf("department must belong to the selected company")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNoActiveSession    = fmt.Errorf("no active session found")
)

// ValidationError carries field-level messages for malformed input that the
// request binder cannot catch (phone format, unknown enum values, unique-name
// collisions, and the cross-entity assignment rule).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// errDuplicate reports a unique-field collision on the named field.
func errDuplicate(field string) *ValidationError {
	return newValidationError(field, "already exists")
}
