package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel() // Enable parallel execution
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "direct not found", err: ErrNotFound, expected: true},
		{name: "reading not found", err: ErrReadingNotFound, expected: true},
		{name: "wrapped reading not found", err: fmt.Errorf("context: %w", ErrReadingNotFound), expected: true},
		{name: "invalid entity", err: ErrInvalidEntity, expected: false},
		{name: "unrelated error", err: errors.New("boom"), expected: false},
		{name: "nil error", err: nil, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFoundError(tc.err); got != tc.expected {
				t.Errorf("IsNotFoundError(%v) = %v, expected %v", tc.err, got, tc.expected)
			}
		})
	}
}

func TestStoreErrorMessage(t *testing.T) {
	t.Parallel() // Enable parallel execution
	inner := errors.New("connection reset")

	withCause := NewStoreError("get_all", "failed to query readings", inner)
	expected := "get_all operation on readings failed: failed to query readings: connection reset"
	if withCause.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, withCause.Error())
	}

	withoutCause := NewStoreError("create", "failed to insert reading", nil)
	expected = "create operation on readings failed: failed to insert reading"
	if withoutCause.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, withoutCause.Error())
	}
}

func TestStoreErrorUnwrap(t *testing.T) {
	t.Parallel() // Enable parallel execution
	err := NewStoreError("delete", "failed to delete reading", ErrReadingNotFound)

	if !errors.Is(err, ErrReadingNotFound) {
		t.Error("Expected errors.Is to see through StoreError to the sentinel")
	}
	if !IsNotFoundError(err) {
		t.Error("Expected a wrapped not-found sentinel to be detected")
	}

	var storeErr *StoreError
	if !errors.As(err, &storeErr) {
		t.Fatal("Expected errors.As to extract the StoreError")
	}
	if storeErr.Operation != "delete" {
		t.Errorf("Expected operation delete, got %s", storeErr.Operation)
	}
}
