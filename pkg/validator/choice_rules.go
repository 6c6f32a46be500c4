package validator

// InList validates that value equals one of the allowed values (see Equal).
func InList(field string, value any, allowed []any) Rule {
	return Rule{
		Check: func() bool {
			return contains(allowed, value)
		},
		Error: newError(field, "inclusion", "is not included in the list",
			map[string]any{"value": value}),
	}
}

// NotInList validates that value equals none of the forbidden values.
func NotInList(field string, value any, forbidden []any) Rule {
	return Rule{
		Check: func() bool {
			return !contains(forbidden, value)
		},
		Error: newError(field, "exclusion", "is reserved",
			map[string]any{"value": value}),
	}
}

func contains(list []any, value any) bool {
	for _, item := range list {
		if Equal(item, value) {
			return true
		}
	}
	return false
}
