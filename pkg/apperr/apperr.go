// Package apperr defines the sentinel error kinds the service layer returns.
// Handlers branch on these with errors.Is instead of matching message text.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized covers every credential failure uniformly; callers are
	// never told whether the token was missing, malformed or expired.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden: role or ownership check failed.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound: the entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidStatus: the operation is not valid for the entity's current
	// lifecycle status (e.g. deciding an already-decided application).
	ErrInvalidStatus = errors.New("invalid status")

	// ErrApplicationsClosed: the application window gate is shut.
	ErrApplicationsClosed = errors.New("applications closed")

	// ErrMissingIndex is reported by the storage layer when a filtered query
	// cannot be served for lack of an index, so listings can fall back to an
	// unfiltered over-fetch.
	ErrMissingIndex = errors.New("missing index")
)

// ValidationError carries the first failing submit-validation rule.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
