package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/service"
	"github.com/bptrack/bptrack/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "repository not found", err: service.ErrReadingNotFound, expected: http.StatusNotFound},
		{name: "store not found", err: store.ErrReadingNotFound, expected: http.StatusNotFound},
		{name: "domain validation", err: domain.ErrSystolicRange, expected: http.StatusBadRequest},
		{name: "invalid format", err: domain.ErrInvalidFormat, expected: http.StatusBadRequest},
		{name: "invalid entity", err: store.ErrInvalidEntity, expected: http.StatusBadRequest},
		{name: "store fault", err: store.NewStoreError("get_all", "boom", errors.New("down")), expected: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Reading not found", GetSafeErrorMessage(service.ErrReadingNotFound))
	assert.Equal(t, "Invalid reading data", GetSafeErrorMessage(store.ErrInvalidEntity))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	// Validation messages are shown verbatim.
	assert.Equal(t, domain.ErrSystolicRange.Error(), GetSafeErrorMessage(domain.ErrSystolicRange))

	// Backend details never leak to clients.
	storeErr := store.NewStoreError("get_all", "failed to query", errors.New("dial tcp: connection refused"))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(storeErr))
}
