package validation

// EachFunc is called once per attribute of a ValidatesEach validator.
type EachFunc func(rec Record, attr string, value any)

// BlockFunc validates a whole record.
type BlockFunc func(rec Record)

// RuleFunc is a named validation rule referenced by ValidateWith.
type RuleFunc func(rec Record)

type eachValidator struct {
	attrs Attrs
	opts  Options
	fn    EachFunc
}

func (v *eachValidator) Kind() Kind        { return KindEach }
func (v *eachValidator) Attributes() Attrs { return v.attrs }
func (v *eachValidator) Options() Options  { return v.opts }

func (v *eachValidator) Validate(s *Scope) error {
	for _, attr := range v.attrs {
		value := s.Record.Attribute(attr)
		if skipValue(value, v.opts) {
			continue
		}
		v.fn(s.Record, attr, value)
	}
	return nil
}

type blockValidator struct {
	opts Options
	fn   BlockFunc
}

func (v *blockValidator) Kind() Kind        { return KindBlock }
func (v *blockValidator) Attributes() Attrs { return nil }
func (v *blockValidator) Options() Options  { return v.opts }

func (v *blockValidator) Validate(s *Scope) error {
	v.fn(s.Record)
	return nil
}

// methodValidator runs a rule looked up by name when the validator runs.
type methodValidator struct {
	name string
	opts Options
}

func (v *methodValidator) Kind() Kind        { return KindMethod }
func (v *methodValidator) Attributes() Attrs { return nil }
func (v *methodValidator) Options() Options  { return v.opts }

func (v *methodValidator) Validate(s *Scope) error {
	fn, ok := s.ResolveRule(v.name)
	if !ok {
		return &UnresolvedRuleError{Type: s.Registry.Name(), Kind: KindMethod, Name: v.name}
	}
	fn(s.Record)
	return nil
}

// kindReference builds its validator from the kind name on every run.
type kindReference struct {
	kind  Kind
	attrs Attrs
	opts  Options
}

func (v *kindReference) Kind() Kind        { return v.kind }
func (v *kindReference) Attributes() Attrs { return v.attrs }
func (v *kindReference) Options() Options  { return v.opts }

func (v *kindReference) Validate(s *Scope) error {
	build, ok := s.Registry.kindFunc(v.kind)
	if !ok {
		return &UnresolvedRuleError{Type: s.Registry.Name(), Kind: v.kind, Name: string(v.kind)}
	}
	resolved, err := build(v.attrs, v.opts)
	if err != nil {
		return err
	}
	return resolved.Validate(s)
}
