package validation

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/validates/pkg/inflect"
)

// StructRecord exposes the exported fields of a struct as record attributes.
// A field is named by the first element of its json tag, or by its snake_case
// Go name when the tag is absent. Fields tagged json:"-" are hidden.
type StructRecord struct {
	registry *Registry
	runner   *Runner
	target   any
	value    reflect.Value
	fields   map[string][]int
	errors   *Errors
}

// Wrap binds ptr, a non-nil pointer to a struct, to reg.
func Wrap(reg *Registry, ptr any) (*StructRecord, error) {
	rv := reflect.ValueOf(ptr)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("%w: expected a non-nil pointer to a struct, got %T", ErrNilRecord, ptr)
	}
	elem := rv.Elem()
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: expected a pointer to a struct, got %T", ErrNilRecord, ptr)
	}

	fields := make(map[string][]int)
	collectFields(elem.Type(), nil, fields)

	return &StructRecord{
		registry: reg,
		target:   ptr,
		value:    elem,
		fields:   fields,
	}, nil
}

// MustWrap is like Wrap but panics on error.
func MustWrap(reg *Registry, ptr any) *StructRecord {
	rec, err := Wrap(reg, ptr)
	if err != nil {
		panic(err)
	}
	return rec
}

// collectFields walks t, promoting fields of embedded structs without a name.
// Outer fields win over promoted ones.
func collectFields(t reflect.Type, index []int, fields map[string][]int) {
	var embedded []reflect.StructField
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" && f.Type.Kind() == reflect.Struct {
			embedded = append(embedded, f)
			continue
		}
		if name == "" {
			name = inflect.Underscore(f.Name)
		}
		if _, ok := fields[name]; !ok {
			fields[name] = append(append([]int(nil), index...), i)
		}
	}
	for _, f := range embedded {
		collectFields(f.Type, append(append([]int(nil), index...), f.Index...), fields)
	}
}

// Target returns the wrapped pointer.
func (r *StructRecord) Target() any { return r.target }

func (r *StructRecord) Registry() *Registry { return r.registry }

// UseRunner sets the runner used by Valid, Invalid and Check.
func (r *StructRecord) UseRunner(runner *Runner) *StructRecord {
	r.runner = runner
	return r
}

// Attribute returns the field value, or nil for unknown names.
func (r *StructRecord) Attribute(name string) any {
	index, ok := r.fields[name]
	if !ok {
		return nil
	}
	return r.value.FieldByIndex(index).Interface()
}

// SetAttribute assigns value to the field when its type is assignable or
// convertible; other values are ignored. A nil value zeroes the field.
func (r *StructRecord) SetAttribute(name string, value any) {
	index, ok := r.fields[name]
	if !ok {
		return
	}
	field := r.value.FieldByIndex(index)
	if !field.CanSet() {
		return
	}

	v := reflect.ValueOf(value)
	switch {
	case !v.IsValid():
		field.SetZero()
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)
	case v.Type().ConvertibleTo(field.Type()) && !integerToString(v.Type(), field.Type()):
		field.Set(v.Convert(field.Type()))
	}
}

func (r *StructRecord) Errors() *Errors {
	if r.errors == nil {
		r.errors = NewErrors()
	}
	return r.errors
}

// ResolveRule delegates to the wrapped struct when it implements RuleResolver.
func (r *StructRecord) ResolveRule(name string) (RuleFunc, bool) {
	if resolver, ok := r.target.(RuleResolver); ok {
		return resolver.ResolveRule(name)
	}
	return nil, false
}

func (r *StructRecord) Valid(ctx context.Context) (bool, error) {
	return runnerOrDefault(r.runner).Valid(ctx, r.registry, r)
}

func (r *StructRecord) Invalid(ctx context.Context) (bool, error) {
	return runnerOrDefault(r.runner).Invalid(ctx, r.registry, r)
}

func (r *StructRecord) Check(ctx context.Context) error {
	return runnerOrDefault(r.runner).Check(ctx, r.registry, r)
}

// integerToString reports a conversion reflect allows but that would turn a
// number into the string of a single rune.
func integerToString(from, to reflect.Type) bool {
	if to.Kind() != reflect.String {
		return false
	}
	switch from.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}
