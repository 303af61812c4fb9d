// Package apperror defines the error taxonomy shared by the repository,
// service and HTTP layers. Repositories report storage outcomes with the
// sentinels below or a wrapped database error; services add validation
// failures; handlers map everything onto a fixed set of HTTP statuses.
package apperror

import "errors"

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEntry indicates a uniqueness constraint was violated
	// during a write.
	ErrDuplicateEntry = errors.New("duplicate entry")

	// ErrUnauthorized is part of the taxonomy but not returned by any
	// current flow.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError carries a human-readable message describing why input was
// rejected. It is always produced before any storage call.
type ValidationError struct {
	msg string
}

// Validation builds a ValidationError with the given message.
func Validation(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}
