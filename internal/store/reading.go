package store

import (
	"context"

	"github.com/bptrack/bptrack/internal/domain"
)

// ReadingStore defines the interface for reading persistence.
//
// Exactly one variant backs the application at a time (local key-value
// cache, remote HTTP collection, PostgreSQL, or in-memory), and every
// variant exposes identical success and error semantics: success returns
// the affected readings, failure surfaces a StoreError carrying the failed
// operation name, and no partial mutation is ever left visible.
type ReadingStore interface {
	// GetAll retrieves every stored reading. An empty or absent backing
	// collection yields an empty slice, never an error. No ordering is
	// guaranteed; callers must not trust storage order.
	GetAll(ctx context.Context) ([]domain.Reading, error)

	// GetByID retrieves a reading by its unique ID.
	// Returns ErrReadingNotFound if the reading does not exist.
	GetByID(ctx context.Context, id string) (*domain.Reading, error)

	// Create persists a new reading. The reading must already carry its
	// assigned ID and be valid according to domain validation rules.
	Create(ctx context.Context, reading *domain.Reading) error

	// Update replaces the stored reading with the given ID in full.
	// Returns ErrReadingNotFound if the reading does not exist.
	Update(ctx context.Context, reading *domain.Reading) error

	// Delete removes a reading by its ID.
	// Returns ErrReadingNotFound if the reading does not exist.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every stored reading. Idempotent; succeeds even
	// if the set is already empty.
	DeleteAll(ctx context.Context) error
}
