// Package apperr defines the error kinds the core returns to its callers.
// Services never log and swallow; every failure wraps exactly one of these
// sentinels so the HTTP layer can map it to a stable status with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateKey      = errors.New("duplicate key")
	ErrStorage           = errors.New("storage failure") // transient, safe to retry
)

// Validationf wraps ErrValidation with a caller-facing detail message
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf wraps ErrNotFound with a caller-facing detail message
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Storage wraps a transient storage failure, preserving the cause
func Storage(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// Retryable reports whether the caller may retry the operation verbatim
func Retryable(err error) bool {
	return errors.Is(err, ErrStorage)
}
