package domain

import "strings"

// Validation messages shared with the frontend forms.
const (
	MsgFieldsRequired   = "All fields are required"
	MsgMarkupNotAllowed = "HTML markup is not allowed"
)

// ValidationError reports a request that failed an entity rule.
// Field names the offending JSON field; Message is safe to show to users.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// requireFields returns a ValidationError for the first blank value.
// Arguments come in name/value pairs.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return NewValidationError(pairs[i], MsgFieldsRequired)
		}
	}
	return nil
}

func oneOfFold(value string, allowed ...string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}
