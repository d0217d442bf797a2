package api

import (
	"errors"
	"net/http"

	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/service"
	"github.com/bptrack/bptrack/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrReadingNotFound),
		errors.Is(err, store.ErrReadingNotFound):
		return http.StatusNotFound

	// Bad request errors
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrInvalidFormat),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error (store faults included)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. Validation messages are safe to show verbatim;
// store faults collapse to a generic failure the user may retry.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrReadingNotFound),
		errors.Is(err, store.ErrReadingNotFound):
		return "Reading not found"

	case domain.IsValidationError(err):
		return err.Error()

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid reading data"

	default:
		return "An unexpected error occurred"
	}
}
