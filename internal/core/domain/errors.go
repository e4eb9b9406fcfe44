// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match with errors.Is so the API boundary can map each
// kind to a distinct response code.
var (
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a uniqueness or state-exclusivity violation,
	// e.g. a SKU collision or a double assignment.
	ErrConflict = errors.New("conflict")

	// ErrInvalid indicates a business-rule violation, e.g. allocating from
	// an exhausted pool or returning an assignment that is not out.
	ErrInvalid = errors.New("invalid")

	// ErrWriteConflict indicates a storage-level write race. It is retried
	// inside the allocation engine and only surfaces when retries exhaust.
	ErrWriteConflict = errors.New("write conflict")
)

// NotFoundf wraps ErrNotFound with a formatted reason
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf wraps ErrConflict with a formatted reason
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Invalidf wraps ErrInvalid with a formatted reason
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
