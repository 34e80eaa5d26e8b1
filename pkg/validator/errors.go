package validator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidationFailed is used when a failed rule carries no message.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilSeed is the panic value of NewWithSeed when no seed is given.
	ErrNilSeed = errors.New("validator: seed function is nil")
)

// ValidationError describes a single failed rule for a field.
type ValidationError struct {
	Field             string
	Rule              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is a collection of failures that satisfies the error interface.
type ValidationErrors []ValidationError

// Error joins every failure as "field: message" after the ErrValidationFailed text.
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add appends err to the collection.
func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Has reports whether any failure was recorded for field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Rules returns the names of the failed rules recorded for field.
func (ve ValidationErrors) Rules(field string) []string {
	var rules []string
	for _, err := range ve {
		if err.Field == field {
			rules = append(rules, err.Rule)
		}
	}
	return rules
}

// Fields returns the distinct fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// IsEmpty reports whether no failures were recorded.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Join merges several Result.Err values into one ValidationErrors.
// Nil and non-validation errors are skipped. Returns nil when nothing failed.
func Join(errs ...error) error {
	var joined ValidationErrors
	for _, err := range errs {
		if verrs := ExtractValidationErrors(err); verrs != nil {
			joined = append(joined, verrs...)
		}
	}
	if joined.IsEmpty() {
		return nil
	}
	return joined
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

// IsValidationError reports whether err wraps ValidationErrors.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
