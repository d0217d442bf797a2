// Package memory provides an in-memory ReadingStore implementation.
// It backs the test suites and the zero-dependency "memory" server backend.
package memory

import (
	"context"
	"sync"

	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/store"
)

// MemoryReadingStore implements store.ReadingStore with a mutex-guarded map.
// Readings are copied on the way in and out so callers never share memory
// with the store's internal state.
type MemoryReadingStore struct {
	mu       sync.RWMutex
	readings map[string]domain.Reading
}

// NewMemoryReadingStore creates an empty in-memory reading store.
func NewMemoryReadingStore() *MemoryReadingStore {
	return &MemoryReadingStore{
		readings: make(map[string]domain.Reading),
	}
}

// Ensure MemoryReadingStore implements store.ReadingStore interface
var _ store.ReadingStore = (*MemoryReadingStore)(nil)

// GetAll implements store.ReadingStore.GetAll.
// Map iteration order is deliberately not normalized; sort order is owned
// by the repository, never by storage.
func (s *MemoryReadingStore) GetAll(ctx context.Context) ([]domain.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	readings := make([]domain.Reading, 0, len(s.readings))
	for _, r := range s.readings {
		readings = append(readings, r)
	}
	return readings, nil
}

// GetByID implements store.ReadingStore.GetByID.
func (s *MemoryReadingStore) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.readings[id]
	if !ok {
		return nil, store.ErrReadingNotFound
	}
	return &r, nil
}

// Create implements store.ReadingStore.Create.
func (s *MemoryReadingStore) Create(ctx context.Context, reading *domain.Reading) error {
	if err := reading.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.readings[reading.ID] = *reading
	return nil
}

// Update implements store.ReadingStore.Update.
func (s *MemoryReadingStore) Update(ctx context.Context, reading *domain.Reading) error {
	if err := reading.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.readings[reading.ID]; !ok {
		return store.ErrReadingNotFound
	}
	s.readings[reading.ID] = *reading
	return nil
}

// Delete implements store.ReadingStore.Delete.
func (s *MemoryReadingStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.readings[id]; !ok {
		return store.ErrReadingNotFound
	}
	delete(s.readings, id)
	return nil
}

// DeleteAll implements store.ReadingStore.DeleteAll.
func (s *MemoryReadingStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.readings = make(map[string]domain.Reading)
	return nil
}

// Len reports the number of stored readings. Used by tests.
func (s *MemoryReadingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}
