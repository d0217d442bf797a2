package service

import (
	"errors"
	"fmt"

	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/store"
)

// Common sentinel errors for the reading repository.
var (
	// ErrReadingNotFound indicates that the targeted reading does not exist.
	ErrReadingNotFound = errors.New("reading not found")
)

// RepositoryError wraps errors from the reading repository with context.
type RepositoryError struct {
	// Operation is the operation that failed (e.g., "load_all", "create")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for RepositoryError.
func (e *RepositoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("reading repository %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("reading repository %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new RepositoryError.
// Sentinel and validation errors pass through unchanged so callers can
// classify them with errors.Is; everything else is wrapped with the
// attempted operation, never retried here.
func NewRepositoryError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrReadingNotFound) {
		return ErrReadingNotFound
	}
	if errors.Is(err, store.ErrReadingNotFound) {
		return ErrReadingNotFound
	}
	if domain.IsValidationError(err) {
		return err
	}

	return &RepositoryError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
