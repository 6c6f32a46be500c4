package validator

import (
	"strings"

	"github.com/google/uuid"
)

// ValidUUID validates that value is a uuid.UUID or a string in canonical UUID
// form. Strings are pre-checked for length and hyphen positions before the
// more expensive parse.
func ValidUUID(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			switch v := value.(type) {
			case uuid.UUID:
				return true
			case *uuid.UUID:
				return v != nil
			}

			s := strings.TrimSpace(Text(value))
			if len(s) != 36 {
				return false
			}
			if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
				return false
			}

			_, err := uuid.Parse(s)
			return err == nil
		},
		Error: newError(field, "invalid_uuid", "is not a valid UUID", map[string]any{"value": value}),
	}
}
