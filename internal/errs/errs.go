// Package errs defines the error taxonomy shared by every layer of rounds.
// Callers classify failures with errors.Is against the exported sentinels.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input such as an empty name or an unknown category.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation that requires an existing row that is absent.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a failure of the underlying persistence layer.
	ErrStorage = errors.New("storage failure")
)

// Validation returns an ErrValidation with a formatted reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns an ErrNotFound with a formatted reason.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Storage wraps a driver error so that both ErrStorage and the original error match errors.Is.
// A nil err yields nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}

// IsValidation reports whether err is classified as ErrValidation.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is classified as ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsStorage reports whether err is classified as ErrStorage.
func IsStorage(err error) bool { return errors.Is(err, ErrStorage) }
