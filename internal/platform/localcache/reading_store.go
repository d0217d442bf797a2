package localcache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/platform/logger"
	"github.com/bptrack/bptrack/internal/store"
)

// DefaultKey is the fixed key under which the serialized reading set lives.
const DefaultKey = "bloodPressureReadings"

// blobReading is the legacy on-disk shape of one reading inside the blob:
// camelCase heartRate and an epoch-milliseconds timestamp. The translation
// to the canonical domain shape happens entirely inside this package; no
// other layer ever sees these field names.
type blobReading struct {
	ID        string `json:"id"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	HeartRate int    `json:"heartRate"`
	Timestamp int64  `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

func toBlob(r domain.Reading) blobReading {
	return blobReading{
		ID:        r.ID,
		Systolic:  r.Systolic,
		Diastolic: r.Diastolic,
		HeartRate: r.HeartRate,
		Timestamp: r.Timestamp.UnixMilli(),
		Note:      r.Note,
	}
}

func fromBlob(b blobReading) domain.Reading {
	return domain.Reading{
		ID:        b.ID,
		Systolic:  b.Systolic,
		Diastolic: b.Diastolic,
		HeartRate: b.HeartRate,
		Timestamp: time.UnixMilli(b.Timestamp).UTC(),
		Note:      b.Note,
	}
}

// LocalReadingStore implements store.ReadingStore over a single serialized
// blob in a key-value store. Every mutation is read-whole-blob, mutate in
// memory, rewrite-whole-blob; the single Set keeps failures from leaving a
// half-written blob. This bounds the design to small reading sets.
type LocalReadingStore struct {
	kv     KV
	key    string
	logger *slog.Logger
}

// NewLocalReadingStore creates a local reading store over the given KV,
// using DefaultKey. If logger is nil, a default logger will be used.
func NewLocalReadingStore(kv KV, logger *slog.Logger) *LocalReadingStore {
	if kv == nil {
		panic("kv cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LocalReadingStore{
		kv:     kv,
		key:    DefaultKey,
		logger: logger.With(slog.String("component", "local_reading_store")),
	}
}

// Ensure LocalReadingStore implements store.ReadingStore interface
var _ store.ReadingStore = (*LocalReadingStore)(nil)

// load reads and decodes the whole blob. An absent key yields an empty set.
func (s *LocalReadingStore) load(ctx context.Context, operation string) ([]blobReading, error) {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if err == ErrKeyNotFound {
			return []blobReading{}, nil
		}
		return nil, store.NewStoreError(operation, "failed to read blob", err)
	}

	var blobs []blobReading
	if err := json.Unmarshal(raw, &blobs); err != nil {
		return nil, store.NewStoreError(operation, "failed to decode blob", err)
	}
	return blobs, nil
}

// save encodes and rewrites the whole blob in one write.
func (s *LocalReadingStore) save(ctx context.Context, operation string, blobs []blobReading) error {
	raw, err := json.Marshal(blobs)
	if err != nil {
		return store.NewStoreError(operation, "failed to encode blob", err)
	}
	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		return store.NewStoreError(operation, "failed to write blob", err)
	}
	return nil
}

// GetAll implements store.ReadingStore.GetAll.
func (s *LocalReadingStore) GetAll(ctx context.Context) ([]domain.Reading, error) {
	blobs, err := s.load(ctx, "get_all")
	if err != nil {
		return nil, err
	}

	readings := make([]domain.Reading, 0, len(blobs))
	for _, b := range blobs {
		readings = append(readings, fromBlob(b))
	}
	return readings, nil
}

// GetByID implements store.ReadingStore.GetByID.
func (s *LocalReadingStore) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	blobs, err := s.load(ctx, "get_by_id")
	if err != nil {
		return nil, err
	}

	for _, b := range blobs {
		if b.ID == id {
			r := fromBlob(b)
			return &r, nil
		}
	}
	return nil, store.ErrReadingNotFound
}

// Create implements store.ReadingStore.Create by appending to the blob and
// rewriting it in full.
func (s *LocalReadingStore) Create(ctx context.Context, reading *domain.Reading) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reading.Validate(); err != nil {
		return err
	}

	blobs, err := s.load(ctx, "create")
	if err != nil {
		return err
	}

	blobs = append(blobs, toBlob(*reading))
	if err := s.save(ctx, "create", blobs); err != nil {
		return err
	}

	log.Debug("reading appended to local blob",
		slog.String("reading_id", reading.ID),
		slog.Int("set_size", len(blobs)))
	return nil
}

// Update implements store.ReadingStore.Update.
func (s *LocalReadingStore) Update(ctx context.Context, reading *domain.Reading) error {
	if err := reading.Validate(); err != nil {
		return err
	}

	blobs, err := s.load(ctx, "update")
	if err != nil {
		return err
	}

	found := false
	for i, b := range blobs {
		if b.ID == reading.ID {
			blobs[i] = toBlob(*reading)
			found = true
			break
		}
	}
	if !found {
		return store.ErrReadingNotFound
	}

	return s.save(ctx, "update", blobs)
}

// Delete implements store.ReadingStore.Delete.
func (s *LocalReadingStore) Delete(ctx context.Context, id string) error {
	blobs, err := s.load(ctx, "delete")
	if err != nil {
		return err
	}

	kept := blobs[:0]
	found := false
	for _, b := range blobs {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return store.ErrReadingNotFound
	}

	return s.save(ctx, "delete", kept)
}

// DeleteAll implements store.ReadingStore.DeleteAll by removing the key.
// Idempotent; an absent key already means an empty set.
func (s *LocalReadingStore) DeleteAll(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return store.NewStoreError("delete_all", "failed to delete blob", err)
	}
	return nil
}
