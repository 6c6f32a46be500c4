package validator

import "fmt"

// Present validates that a value is not blank (see IsBlank).
func Present(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return !IsBlank(value)
		},
		Error: newError(field, "blank", "can't be blank", nil),
	}
}

// Absent validates that a value is blank.
func Absent(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return IsBlank(value)
		},
		Error: newError(field, "present", "must be blank", nil),
	}
}

// MinLength validates that a value has at least min characters or elements.
func MinLength(field string, value any, min int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) >= min
		},
		Error: newError(field, "too_short",
			fmt.Sprintf("is too short (minimum is %d characters)", min),
			map[string]any{"count": min},
		),
	}
}

// MaxLength validates that a value has at most max characters or elements.
func MaxLength(field string, value any, max int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) <= max
		},
		Error: newError(field, "too_long",
			fmt.Sprintf("is too long (maximum is %d characters)", max),
			map[string]any{"count": max},
		),
	}
}

// ExactLength validates that a value has exactly n characters or elements.
func ExactLength(field string, value any, n int) Rule {
	return Rule{
		Check: func() bool {
			return Length(value) == n
		},
		Error: newError(field, "wrong_length",
			fmt.Sprintf("is the wrong length (should be %d characters)", n),
			map[string]any{"count": n},
		),
	}
}
