package validator

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsBlank reports whether v carries no meaningful value.
func IsBlank(v any) bool {
	if v == nil {
		return true
	}

	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val) == ""
	case bool:
		return !val
	case []byte:
		return len(val) == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
		return IsBlank(rv.Elem().Interface())
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	default:
		return false
	}
}

// Length returns the number of characters of a string value or the number of
// elements of a collection. Other values are measured through their string
// form; nil has length zero.
func Length(v any) int {
	if v == nil {
		return 0
	}
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return 0
		}
		return Length(rv.Elem().Interface())
	case reflect.String:
		return utf8.RuneCountInString(rv.String())
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len()
	default:
		return utf8.RuneCountInString(fmt.Sprint(v))
	}
}

var (
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
	integerPattern = regexp.MustCompile(`^[+-]?\d+$`)
)

// ToNumber converts numeric kinds and decimal strings to float64.
func ToNumber(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if !decimalPattern.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return ToNumber(rv.Elem().Interface())
	default:
		return 0, false
	}
}

// IsInteger reports whether v is an integer kind, a whole float or an integer
// string.
func IsInteger(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	case reflect.String:
		return integerPattern.MatchString(strings.TrimSpace(rv.String()))
	case reflect.Pointer:
		if rv.IsNil() {
			return false
		}
		return IsInteger(rv.Elem().Interface())
	default:
		return false
	}
}

// Equal compares two attribute values. Non-nil pointers are compared by the
// values they point to, numbers of different Go kinds compare by value, and
// everything else uses reflect.DeepEqual.
func Equal(a, b any) bool {
	a, b = deref(a), deref(b)
	if isNumericKind(a) && isNumericKind(b) {
		x, _ := ToNumber(a)
		y, _ := ToNumber(b)
		return x == y
	}
	return reflect.DeepEqual(a, b)
}

// Text renders a value for pattern matching.
func Text(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(v)
	}
}

func isNumericKind(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
