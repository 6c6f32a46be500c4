package messages

// Defaults returns the built-in English message templates.
// Every call returns a fresh copy that callers may modify.
func Defaults() map[string]any {
	return map[string]any{
		"errors": map[string]any{
			"messages": map[string]any{
				"blank":                    "can't be blank",
				"present":                  "must be blank",
				"too_short":                "is too short (minimum is %{count} characters)",
				"too_long":                 "is too long (maximum is %{count} characters)",
				"wrong_length":             "is the wrong length (should be %{count} characters)",
				"invalid":                  "is invalid",
				"inclusion":                "is not included in the list",
				"exclusion":                "is reserved",
				"not_a_number":             "is not a number",
				"not_an_integer":           "must be an integer",
				"greater_than":             "must be greater than %{count}",
				"greater_than_or_equal_to": "must be greater than or equal to %{count}",
				"equal_to":                 "must be equal to %{count}",
				"other_than":               "must be other than %{count}",
				"less_than":                "must be less than %{count}",
				"less_than_or_equal_to":    "must be less than or equal to %{count}",
				"odd":                      "must be odd",
				"even":                     "must be even",
				"accepted":                 "must be accepted",
				"confirmation":             "doesn't match %{attribute}",
				"invalid_uuid":             "is not a valid UUID",
			},
		},
	}
}
