package validation

import (
	"maps"

	"github.com/dmitrymomot/validates/pkg/inflect"
	"github.com/dmitrymomot/validates/pkg/messages"
	"github.com/dmitrymomot/validates/pkg/validator"
)

const messageKeyPrefix = "errors.messages."

// Scope is the state of one validation run, passed to every validator.
type Scope struct {
	Record   Record
	Registry *Registry

	catalog *messages.Catalog
}

// Errors returns the error bag of the record being validated.
func (s *Scope) Errors() *Errors {
	return s.Record.Errors()
}

// ResolveRule looks up a named rule on the record first, then on the registry.
func (s *Scope) ResolveRule(name string) (RuleFunc, bool) {
	if resolver, ok := s.Record.(RuleResolver); ok {
		if fn, ok := resolver.ResolveRule(name); ok && fn != nil {
			return fn, true
		}
	}
	return s.Registry.rule(name)
}

// Message renders the catalog template errors.messages.<key>.
func (s *Scope) Message(key string, values map[string]any) string {
	return s.catalog.Lookup(messageKeyPrefix+key, values)
}

// Fail records a rule failure on f.Field. The message is, in order of
// preference: the override in opts for f.TranslationKey, the catalog template,
// or the rule's own message.
func (s *Scope) Fail(f validator.ValidationError, value any, opts Options) {
	values := maps.Clone(f.TranslationValues)
	if values == nil {
		values = make(map[string]any, 3)
	}
	if _, ok := values["attribute"]; !ok {
		values["attribute"] = inflect.Humanize(f.Field)
	}
	values["value"] = validator.Text(value)
	values["model"] = s.Registry.Name()

	var text string
	switch msg := opts.MessageFor(f.TranslationKey); {
	case !msg.IsZero():
		text = messages.Interpolate(msg.Resolve(), values)
	case s.catalog.Has(messageKeyPrefix + f.TranslationKey):
		text = s.Message(f.TranslationKey, values)
	default:
		text = f.Message
	}

	s.Errors().Add(f.Field, text)
}
