package validator

import "regexp"

// MatchesRegex validates that the textual form of value matches regex.
// The pattern must be compiled by the caller so it is compiled once per
// validator rather than once per check.
func MatchesRegex(field string, value any, regex *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return regex.MatchString(Text(value))
		},
		Error: newError(field, "invalid", "is invalid", map[string]any{"value": value}),
	}
}

// DoesNotMatchRegex validates that the textual form of value does not match regex.
func DoesNotMatchRegex(field string, value any, regex *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return !regex.MatchString(Text(value))
		},
		Error: newError(field, "invalid", "is invalid", map[string]any{"value": value}),
	}
}
