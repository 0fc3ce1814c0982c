package recruiting

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound signals an unknown reference ID or candidate email.
	ErrNotFound = errors.New("record not found")

	// ErrAuthFailed is the single generic login failure. Wrong reference
	// ID and wrong email are indistinguishable on purpose.
	ErrAuthFailed = errors.New("invalid credentials")

	// ErrTerminalStatus is returned when an update would move an
	// application out of Offer Sent or Rejected without the force flag.
	ErrTerminalStatus = errors.New("application status is terminal")
)

// ValidationError carries field-level messages for a rejected request.
// No write happens when validation fails.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
