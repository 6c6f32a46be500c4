package validation

import (
	"context"
	"maps"
)

// Record is the object being validated.
type Record interface {
	// Attribute returns the value of name, or nil when unset.
	Attribute(name string) any
	SetAttribute(name string, value any)
	// Errors returns the record's error bag; it must not be nil.
	Errors() *Errors
}

// RuleResolver is implemented by records that provide named rules for
// ValidateWith. Record rules take precedence over registry rules.
type RuleResolver interface {
	ResolveRule(name string) (RuleFunc, bool)
}

var defaultRunner = NewRunner()

// Model is a map-backed record bound to a registry.
type Model struct {
	registry *Registry
	runner   *Runner
	attrs    map[string]any
	errors   *Errors
}

// NewModel returns a record of reg's type holding a copy of attrs.
func NewModel(reg *Registry, attrs map[string]any) *Model {
	m := &Model{registry: reg, attrs: make(map[string]any, len(attrs))}
	maps.Copy(m.attrs, attrs)
	return m
}

// UseRunner sets the runner used by Valid, Invalid and Check.
func (m *Model) UseRunner(r *Runner) *Model {
	m.runner = r
	return m
}

func (m *Model) Registry() *Registry { return m.registry }

func (m *Model) Attribute(name string) any {
	return m.attrs[name]
}

func (m *Model) SetAttribute(name string, value any) {
	if m.attrs == nil {
		m.attrs = make(map[string]any)
	}
	m.attrs[name] = value
}

// Attributes returns a copy of all attributes.
func (m *Model) Attributes() map[string]any {
	return maps.Clone(m.attrs)
}

// Errors returns the error bag, creating it on first access.
func (m *Model) Errors() *Errors {
	if m.errors == nil {
		m.errors = NewErrors()
	}
	return m.errors
}

func (m *Model) Valid(ctx context.Context) (bool, error) {
	return runnerOrDefault(m.runner).Valid(ctx, m.registry, m)
}

func (m *Model) Invalid(ctx context.Context) (bool, error) {
	return runnerOrDefault(m.runner).Invalid(ctx, m.registry, m)
}

func (m *Model) Check(ctx context.Context) error {
	return runnerOrDefault(m.runner).Check(ctx, m.registry, m)
}

func runnerOrDefault(r *Runner) *Runner {
	if r == nil {
		return defaultRunner
	}
	return r
}
