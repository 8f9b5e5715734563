package services

import "errors"

// ErrValidation marks input rejected locally, before any network call.
// Callers distinguish it from backend business errors with errors.Is.
var ErrValidation = errors.New("validation failed")
