package validation

import (
	"fmt"
	"slices"
	"sync"
)

// Registry holds the validators, named rules and custom kinds of one record
// type. Validators run in registration order.
//
// Registry is safe for concurrent reads; registering while records of the type
// are being validated is not supported.
type Registry struct {
	name string

	mu         sync.RWMutex
	validators []Validator
	rules      map[string]RuleFunc
	kinds      map[Kind]KindFunc
}

// NewRegistry returns an empty registry for the record type name.
func NewRegistry(name string) *Registry {
	return &Registry{
		name:  name,
		rules: make(map[string]RuleFunc),
		kinds: make(map[Kind]KindFunc),
	}
}

// Name returns the record type name.
func (r *Registry) Name() string {
	return r.name
}

// Add appends a validator. Nil validators are ignored.
func (r *Registry) Add(v Validator) {
	if v == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators = append(r.validators, v)
}

// Validators returns the registered validators in registration order.
func (r *Registry) Validators() []Validator {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.validators)
}

// ValidatorsOn returns the validators whose attributes include attr, in
// registration order.
func (r *Registry) ValidatorsOn(attr string) []Validator {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Validator
	for _, v := range r.validators {
		if v.Attributes().Contains(attr) {
			out = append(out, v)
		}
	}
	return out
}

// DefineRule makes fn available to ValidateWith under name. Redefining a name
// replaces the previous rule.
func (r *Registry) DefineRule(name string, fn RuleFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[name] = fn
}

// DefineKind makes a custom kind available to Validates. A custom kind may
// shadow a built-in one for this registry.
func (r *Registry) DefineKind(kind Kind, fn KindFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = fn
}

// Clear removes every validator, rule and custom kind.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators = nil
	r.rules = make(map[string]RuleFunc)
	r.kinds = make(map[Kind]KindFunc)
}

func (r *Registry) rule(name string) (RuleFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.rules[name]
	return fn, ok && fn != nil
}

func (r *Registry) kindFunc(kind Kind) (KindFunc, bool) {
	r.mu.RLock()
	fn, ok := r.kinds[kind]
	r.mu.RUnlock()
	if ok && fn != nil {
		return fn, true
	}
	fn, ok = builtinKinds[kind]
	return fn, ok
}

func (r *Registry) mustAdd(v Validator, err error) {
	if err != nil {
		panic(err)
	}
	r.Add(v)
}

func (r *Registry) builtin(kind Kind, on Attrs, opts []Option) {
	r.mustAdd(builtinKinds[kind](on, NewOptions(opts...)))
}

// Validates registers a validator of kind. Unlike the ValidatesXxxOf helpers,
// the kind is resolved when the validator runs: an unknown kind makes the run
// fail with an *UnresolvedRuleError.
func (r *Registry) Validates(kind Kind, on Attrs, opts ...Option) {
	r.Add(&kindReference{kind: kind, attrs: on, opts: NewOptions(opts...)})
}

// ValidatesPresenceOf registers a presence validator. Default message:
// "can't be blank".
func (r *Registry) ValidatesPresenceOf(on Attrs, opts ...Option) {
	r.builtin(KindPresence, on, opts)
}

// ValidatesAbsenceOf registers an absence validator. Default message:
// "must be blank".
func (r *Registry) ValidatesAbsenceOf(on Attrs, opts ...Option) {
	r.builtin(KindAbsence, on, opts)
}

// ValidatesLengthOf registers a length validator. It panics with
// ErrInvalidOptions unless Minimum, Maximum, Is or Within is given.
func (r *Registry) ValidatesLengthOf(on Attrs, opts ...Option) {
	r.builtin(KindLength, on, opts)
}

// ValidatesFormatOf registers a format validator. It panics with
// ErrInvalidOptions unless Matching or NotMatching is given.
func (r *Registry) ValidatesFormatOf(on Attrs, opts ...Option) {
	r.builtin(KindFormat, on, opts)
}

// ValidatesInclusionOf registers an inclusion validator. It panics with
// ErrInvalidOptions unless In is given.
func (r *Registry) ValidatesInclusionOf(on Attrs, opts ...Option) {
	r.builtin(KindInclusion, on, opts)
}

// ValidatesExclusionOf registers an exclusion validator. It panics with
// ErrInvalidOptions unless In is given.
func (r *Registry) ValidatesExclusionOf(on Attrs, opts ...Option) {
	r.builtin(KindExclusion, on, opts)
}

func (r *Registry) ValidatesNumericalityOf(on Attrs, opts ...Option) {
	r.builtin(KindNumericality, on, opts)
}

func (r *Registry) ValidatesAcceptanceOf(on Attrs, opts ...Option) {
	r.builtin(KindAcceptance, on, opts)
}

func (r *Registry) ValidatesConfirmationOf(on Attrs, opts ...Option) {
	r.builtin(KindConfirmation, on, opts)
}

func (r *Registry) ValidatesUUIDOf(on Attrs, opts ...Option) {
	r.builtin(KindUUID, on, opts)
}

// ValidatesEach registers one validator that calls fn once per entry of on,
// duplicates included.
func (r *Registry) ValidatesEach(on Attrs, fn EachFunc, opts ...Option) {
	if fn == nil {
		panic(fmt.Errorf("%w: %s: nil function", ErrInvalidOptions, KindEach))
	}
	r.Add(&eachValidator{attrs: on, opts: NewOptions(opts...), fn: fn})
}

// Validate registers a block run once per validation with the record.
func (r *Registry) Validate(fn BlockFunc, opts ...Option) {
	if fn == nil {
		panic(fmt.Errorf("%w: %s: nil function", ErrInvalidOptions, KindBlock))
	}
	r.Add(&blockValidator{opts: NewOptions(opts...), fn: fn})
}

// ValidateWith registers a reference to the rule called name. The rule is
// looked up when the validator runs, first on the record (RuleResolver), then
// among the rules defined with DefineRule.
func (r *Registry) ValidateWith(name string, opts ...Option) {
	r.Add(&methodValidator{name: name, opts: NewOptions(opts...)})
}
