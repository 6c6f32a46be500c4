package validator

import "errors"

// ErrValidationFailed is returned by Apply wrappers when validation fails but
// no specific error is provided.
var ErrValidationFailed = errors.New("validation failed")
