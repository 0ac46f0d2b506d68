package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError describes one failed rule on one field.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is an ordered list of field errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Add appends an error.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// IsEmpty reports whether there are no errors.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Has reports whether field has an error.
func (e ValidationErrors) Has(field string) bool {
	_, ok := e.Get(field)
	return ok
}

// Get returns the first error recorded for field.
func (e ValidationErrors) Get(field string) (ValidationError, bool) {
	for _, err := range e {
		if err.Field == field {
			return err, true
		}
	}
	return ValidationError{}, false
}

// Fields returns the distinct field names with errors, in order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for _, err := range e {
		if !slices.Contains(fields, err.Field) {
			fields = append(fields, err.Field)
		}
	}
	return fields
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	var verrs ValidationErrors
	return errors.As(err, &verrs)
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
