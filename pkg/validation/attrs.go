package validation

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Attrs is an ordered list of canonical attribute names. Duplicates are kept.
type Attrs []string

// On builds an attribute list from names given as strings, fmt.Stringer
// values, or slices of those at any depth. Arguments are flattened in literal
// order and trimmed; duplicates are kept, so
//
//	On("title", "content", []string{"title", "content"})
//
// yields four attributes. On panics with ErrInvalidAttribute on an empty name
// or an unsupported argument type.
func On(attrs ...any) Attrs {
	out := make(Attrs, 0, len(attrs))
	for _, a := range attrs {
		out = appendAttr(out, a)
	}
	return out
}

func appendAttr(out Attrs, a any) Attrs {
	switch v := a.(type) {
	case string:
		return append(out, normalizeAttr(v))
	case Attrs:
		for _, s := range v {
			out = append(out, normalizeAttr(s))
		}
		return out
	case []string:
		for _, s := range v {
			out = append(out, normalizeAttr(s))
		}
		return out
	case []any:
		for _, item := range v {
			out = appendAttr(out, item)
		}
		return out
	case fmt.Stringer:
		return append(out, normalizeAttr(v.String()))
	}
	if rv := reflect.ValueOf(a); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		for i := range rv.Len() {
			out = appendAttr(out, rv.Index(i).Interface())
		}
		return out
	}
	panic(fmt.Errorf("%w: unsupported type %T", ErrInvalidAttribute, a))
}

func normalizeAttr(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		panic(fmt.Errorf("%w: empty name", ErrInvalidAttribute))
	}
	return name
}

// Contains reports whether attr is in the list.
func (a Attrs) Contains(attr string) bool {
	return slices.Contains(a, attr)
}
