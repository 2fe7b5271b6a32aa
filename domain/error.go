package domain

import "errors"

// Failures a caller can act on. Anything else is treated as an internal
// store failure and never exposes driver error text to the client.
var (
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrReleaseNotFound  = errors.New("release not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrEmailNotFound    = errors.New("email is not registered")
	ErrWrongPassword    = errors.New("wrong password")
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// ValidationError reports missing or malformed caller input. The message is
// safe to return to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
