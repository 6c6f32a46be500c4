package validation

import (
	"fmt"

	"github.com/dmitrymomot/validates/pkg/inflect"
	"github.com/dmitrymomot/validates/pkg/validator"
)

// KindFunc builds a validator of a given kind. It returns an error wrapping
// ErrInvalidOptions when opts do not configure the kind.
type KindFunc func(attrs Attrs, opts Options) (Validator, error)

var builtinKinds = map[Kind]KindFunc{
	KindPresence:     newPresence,
	KindAbsence:      newAbsence,
	KindLength:       newLength,
	KindFormat:       newFormat,
	KindInclusion:    newInclusion,
	KindExclusion:    newExclusion,
	KindNumericality: newNumericality,
	KindAcceptance:   newAcceptance,
	KindConfirmation: newConfirmation,
	KindUUID:         newUUID,
}

func invalidOptions(kind Kind, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidOptions, kind, reason)
}

func newPresence(attrs Attrs, opts Options) (Validator, error) {
	return NewAttributeValidator(KindPresence, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		return []validator.Rule{validator.Present(attr, value)}
	}), nil
}

func newAbsence(attrs Attrs, opts Options) (Validator, error) {
	return NewAttributeValidator(KindAbsence, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		return []validator.Rule{validator.Absent(attr, value)}
	}), nil
}

func newLength(attrs Attrs, opts Options) (Validator, error) {
	if opts.Minimum == nil && opts.Maximum == nil && opts.Is == nil {
		return nil, invalidOptions(KindLength, "one of Minimum, Maximum, Is or Within is required")
	}
	if opts.Minimum != nil && opts.Maximum != nil && *opts.Minimum > *opts.Maximum {
		return nil, invalidOptions(KindLength, "minimum is greater than maximum")
	}
	return NewAttributeValidator(KindLength, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		if opts.Is != nil {
			return []validator.Rule{validator.ExactLength(attr, value, *opts.Is)}
		}
		var rules []validator.Rule
		if opts.Minimum != nil {
			rules = append(rules, validator.MinLength(attr, value, *opts.Minimum))
		}
		if opts.Maximum != nil {
			rules = append(rules, validator.MaxLength(attr, value, *opts.Maximum))
		}
		return rules
	}), nil
}

func newFormat(attrs Attrs, opts Options) (Validator, error) {
	if opts.With == nil && opts.Without == nil {
		return nil, invalidOptions(KindFormat, "Matching or NotMatching is required")
	}
	return NewAttributeValidator(KindFormat, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		var rules []validator.Rule
		if opts.With != nil {
			rules = append(rules, validator.MatchesRegex(attr, value, opts.With))
		}
		if opts.Without != nil {
			rules = append(rules, validator.DoesNotMatchRegex(attr, value, opts.Without))
		}
		return rules
	}), nil
}

func newInclusion(attrs Attrs, opts Options) (Validator, error) {
	if opts.In == nil {
		return nil, invalidOptions(KindInclusion, "In is required")
	}
	return NewAttributeValidator(KindInclusion, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		return []validator.Rule{validator.InList(attr, value, opts.In)}
	}), nil
}

func newExclusion(attrs Attrs, opts Options) (Validator, error) {
	if opts.In == nil {
		return nil, invalidOptions(KindExclusion, "In is required")
	}
	return NewAttributeValidator(KindExclusion, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		return []validator.Rule{validator.NotInList(attr, value, opts.In)}
	}), nil
}

// newNumericality checks the value is a number first; bounds are only checked
// for numbers, so a non-numeric value yields a single failure.
func newNumericality(attrs Attrs, opts Options) (Validator, error) {
	if opts.Odd && opts.Even {
		return nil, invalidOptions(KindNumericality, "Odd and Even are mutually exclusive")
	}
	return NewAttributeValidator(KindNumericality, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		if _, ok := validator.ToNumber(value); !ok {
			if opts.OnlyInteger {
				return []validator.Rule{validator.Integer(attr, value)}
			}
			return []validator.Rule{validator.Numeric(attr, value)}
		}
		if opts.OnlyInteger && !validator.IsInteger(value) {
			return []validator.Rule{validator.Integer(attr, value)}
		}

		var rules []validator.Rule
		bounds := []struct {
			bound *float64
			rule  func(string, any, float64) validator.Rule
		}{
			{opts.GreaterThan, validator.GreaterThan},
			{opts.GreaterThanOrEqualTo, validator.GreaterThanOrEqualTo},
			{opts.EqualTo, validator.EqualTo},
			{opts.OtherThan, validator.OtherThan},
			{opts.LessThan, validator.LessThan},
			{opts.LessThanOrEqualTo, validator.LessThanOrEqualTo},
		}
		for _, b := range bounds {
			if b.bound != nil {
				rules = append(rules, b.rule(attr, value, *b.bound))
			}
		}
		if opts.Odd {
			rules = append(rules, validator.Odd(attr, value))
		}
		if opts.Even {
			rules = append(rules, validator.Even(attr, value))
		}
		return rules
	}), nil
}

var defaultAccept = []any{"1", true}

// newAcceptance never fails on nil: a field that was not submitted is not
// rejected.
func newAcceptance(attrs Attrs, opts Options) (Validator, error) {
	accept := opts.Accept
	if len(accept) == 0 {
		accept = defaultAccept
	}
	return NewAttributeValidator(KindAcceptance, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		if value == nil {
			return nil
		}
		return []validator.Rule{validator.Accepted(attr, value, accept)}
	}), nil
}

// newConfirmation compares attr with attr_confirmation when the latter is set,
// recording the failure on attr_confirmation.
func newConfirmation(attrs Attrs, opts Options) (Validator, error) {
	return NewAttributeValidator(KindConfirmation, attrs, opts, func(s *Scope, attr string, value any) []validator.Rule {
		field := attr + "_confirmation"
		confirmation := s.Record.Attribute(field)
		if confirmation == nil {
			return nil
		}
		return []validator.Rule{validator.Confirmed(field, value, confirmation, inflect.Humanize(attr))}
	}), nil
}

func newUUID(attrs Attrs, opts Options) (Validator, error) {
	return NewAttributeValidator(KindUUID, attrs, opts, func(_ *Scope, attr string, value any) []validator.Rule {
		return []validator.Rule{validator.ValidUUID(attr, value)}
	}), nil
}
