package validator

// Accepted validates that value equals one of the accepted values, such as a
// terms-of-service checkbox set to "1" or true.
func Accepted(field string, value any, accept []any) Rule {
	return Rule{
		Check: func() bool {
			return contains(accept, value)
		},
		Error: newError(field, "accepted", "must be accepted", nil),
	}
}

// Confirmed validates that value equals its confirmation. label names the
// confirmed attribute in the message.
func Confirmed(field string, value, confirmation any, label string) Rule {
	return Rule{
		Check: func() bool {
			return Equal(value, confirmation)
		},
		Error: newError(field, "confirmation", "doesn't match "+label,
			map[string]any{"attribute": label}),
	}
}
