package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single rule failure with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of rule failures.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// Fields returns failing fields in first-failure order.
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

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Failures evaluates every rule in order and returns the failed ones.
func Failures(rules ...Rule) ValidationErrors {
	var failures ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failures = append(failures, rule.Error)
		}
	}
	return failures
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	if failures := Failures(rules...); len(failures) > 0 {
		return failures
	}
	return nil
}

// IsValidationError reports whether err carries rule failures.
func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

func newError(field, key, message string, values map[string]any) ValidationError {
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = field
	return ValidationError{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: values,
	}
}
