package validation

import (
	"errors"
	"fmt"
)

var (
	ErrUnresolvedRule   = errors.New("validation: unresolved rule")
	ErrRecordInvalid    = errors.New("validation: record is invalid")
	ErrInvalidOptions   = errors.New("validation: invalid validator options")
	ErrInvalidAttribute = errors.New("validation: invalid attribute name")
	ErrNilRecord        = errors.New("validation: nil record")
	ErrNilRegistry      = errors.New("validation: nil registry")
	ErrInvalidConfig    = errors.New("validation: invalid configuration")
)

// UnresolvedRuleError reports a rule or kind referenced by name that could not
// be found when the validator ran.
type UnresolvedRuleError struct {
	Type string // record type name
	Kind Kind   // kind of the referencing validator
	Name string // unresolved name
}

func (e *UnresolvedRuleError) Error() string {
	if e.Kind == KindMethod {
		return fmt.Sprintf("validation: undefined rule %q for %s", e.Name, e.Type)
	}
	return fmt.Sprintf("validation: unknown validator kind %q for %s", e.Name, e.Type)
}

func (e *UnresolvedRuleError) Unwrap() error {
	return ErrUnresolvedRule
}

// InvalidRecordError carries the error bag of a record that failed validation.
type InvalidRecordError struct {
	Type   string
	Errors *Errors
}

func (e *InvalidRecordError) Error() string {
	if e.Errors == nil || e.Errors.IsEmpty() {
		return fmt.Sprintf("validation: %s is invalid", e.Type)
	}
	return fmt.Sprintf("validation: %s is invalid: %s", e.Type, e.Errors.summary())
}

func (e *InvalidRecordError) Unwrap() error {
	return ErrRecordInvalid
}
