package validation

import (
	"reflect"

	"github.com/dmitrymomot/validates/pkg/validator"
)

// Kind identifies the rule type of a validator.
type Kind string

const (
	KindPresence     Kind = "presence"
	KindAbsence      Kind = "absence"
	KindLength       Kind = "length"
	KindFormat       Kind = "format"
	KindInclusion    Kind = "inclusion"
	KindExclusion    Kind = "exclusion"
	KindNumericality Kind = "numericality"
	KindAcceptance   Kind = "acceptance"
	KindConfirmation Kind = "confirmation"
	KindUUID         Kind = "uuid"
	KindEach         Kind = "each"
	KindBlock        Kind = "block"
	KindMethod       Kind = "method"
)

// Validator is a configured rule bound to zero or more attributes.
// Implementations must not change after registration.
type Validator interface {
	Kind() Kind
	Attributes() Attrs
	Options() Options
	// Validate inspects s.Record and records failures in its error bag.
	// A non-nil error means the validator is misconfigured and aborts the run.
	Validate(s *Scope) error
}

// RulesFunc builds the rules checked for one attribute value.
type RulesFunc func(s *Scope, attr string, value any) []validator.Rule

// AttributeValidator runs a set of rules against each of its attributes and
// records every failed rule. Built-in kinds are attribute validators; custom
// kinds registered with DefineKind can return one too.
type AttributeValidator struct {
	kind  Kind
	attrs Attrs
	opts  Options
	rules RulesFunc
}

// NewAttributeValidator returns a validator of kind that checks rules on every
// attribute in attrs, honouring AllowNil and AllowBlank.
func NewAttributeValidator(kind Kind, attrs Attrs, opts Options, rules RulesFunc) *AttributeValidator {
	return &AttributeValidator{kind: kind, attrs: attrs, opts: opts, rules: rules}
}

func (v *AttributeValidator) Kind() Kind        { return v.kind }
func (v *AttributeValidator) Attributes() Attrs { return v.attrs }
func (v *AttributeValidator) Options() Options  { return v.opts }

func (v *AttributeValidator) Validate(s *Scope) error {
	for _, attr := range v.attrs {
		value := s.Record.Attribute(attr)
		if skipValue(value, v.opts) {
			continue
		}
		for _, f := range validator.Failures(v.rules(s, attr, value)...) {
			s.Fail(f, value, v.opts)
		}
	}
	return nil
}

func skipValue(value any, opts Options) bool {
	if opts.AllowNil && isNil(value) {
		return true
	}
	return opts.AllowBlank && validator.IsBlank(value)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
