package validator

import (
	"fmt"
	"math"
)

// Numeric validates that a value is a number or a decimal string.
func Numeric(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ToNumber(value)
			return ok
		},
		Error: newError(field, "not_a_number", "is not a number", nil),
	}
}

// Integer validates that a value is an integer (see IsInteger).
func Integer(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsInteger(value)
		},
		Error: newError(field, "not_an_integer", "must be an integer", nil),
	}
}

// GreaterThan validates value > bound.
func GreaterThan(field string, value any, bound float64) Rule {
	return compare(field, value, bound, "greater_than", "must be greater than %v",
		func(v float64) bool { return v > bound })
}

// GreaterThanOrEqualTo validates value >= bound.
func GreaterThanOrEqualTo(field string, value any, bound float64) Rule {
	return compare(field, value, bound, "greater_than_or_equal_to", "must be greater than or equal to %v",
		func(v float64) bool { return v >= bound })
}

// EqualTo validates value == bound.
func EqualTo(field string, value any, bound float64) Rule {
	return compare(field, value, bound, "equal_to", "must be equal to %v",
		func(v float64) bool { return v == bound })
}

// OtherThan validates value != bound.
func OtherThan(field string, value any, bound float64) Rule {
	return compare(field, value, bound, "other_than", "must be other than %v",
		func(v float64) bool { return v != bound })
}

// LessThan validates value < bound.
func LessThan(field string, value any, bound float64) Rule {
	return compare(field, value, bound, "less_than", "must be less than %v",
		func(v float64) bool { return v < bound })
}

// LessThanOrEqualTo validates value <= bound.
func LessThanOrEqualTo(field string, value any, bound float64) Rule {
	return compare(field, value, bound, "less_than_or_equal_to", "must be less than or equal to %v",
		func(v float64) bool { return v <= bound })
}

// Odd validates that an integer value is odd.
func Odd(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ToNumber(value)
			return ok && math.Mod(math.Trunc(n), 2) != 0
		},
		Error: newError(field, "odd", "must be odd", nil),
	}
}

// Even validates that an integer value is even.
func Even(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			n, ok := ToNumber(value)
			return ok && math.Mod(math.Trunc(n), 2) == 0
		},
		Error: newError(field, "even", "must be even", nil),
	}
}

func compare(field string, value any, bound float64, key, format string, ok func(float64) bool) Rule {
	return Rule{
		Check: func() bool {
			n, isNumber := ToNumber(value)
			return isNumber && ok(n)
		},
		Error: newError(field, key, fmt.Sprintf(format, bound), map[string]any{"count": bound}),
	}
}
