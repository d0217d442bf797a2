package service

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/store"
)

// SortOrder selects the direction LoadAll sorts by timestamp.
type SortOrder int

const (
	// SortAscending orders oldest first (trend display). The default.
	SortAscending SortOrder = iota

	// SortDescending orders newest first (history display).
	SortDescending
)

// ReadingDraft carries the caller-supplied fields for a new reading.
// A zero Timestamp defaults to now; the id is assigned by the repository.
type ReadingDraft struct {
	Systolic  int
	Diastolic int
	HeartRate int
	Timestamp time.Time
	Note      string
}

// ReadingRepository owns the authoritative reading set. It mediates between
// callers and whichever store variant is active, applies sort order, and
// serializes writes per reading id.
type ReadingRepository interface {
	// LoadAll fetches every reading and returns it sorted by timestamp in
	// the given order. The returned slice is freshly allocated on each
	// call, never a live reference to internal state. Storage order is
	// never trusted; sort is always recomputed from the timestamp.
	LoadAll(ctx context.Context, order SortOrder) ([]domain.Reading, error)

	// Get retrieves a single reading by id.
	// Returns ErrReadingNotFound if no such reading exists.
	Get(ctx context.Context, id string) (*domain.Reading, error)

	// Create validates the draft, assigns an id, persists the reading and
	// returns it. Fails with a validation error and persists nothing if
	// any vital is missing or out of range.
	Create(ctx context.Context, draft ReadingDraft) (*domain.Reading, error)

	// Update merges the patch onto the stored reading with the given id
	// and persists the result. Fields absent from the patch keep their
	// prior value; id and timestamp are not patchable by construction.
	// Returns ErrReadingNotFound if no such reading exists.
	Update(ctx context.Context, id string, patch ReadingPatch) (*domain.Reading, error)

	// Reconcile is the edit path: it validates every field present in the
	// patch against the creation range rules and normalizes a blank note
	// to absent before performing Update. On validation failure no store
	// call is made.
	Reconcile(ctx context.Context, id string, patch ReadingPatch) (*domain.Reading, error)

	// Delete removes a single reading.
	// Returns ErrReadingNotFound if no such reading exists.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every reading. Idempotent.
	DeleteAll(ctx context.Context) error
}

// readingRepositoryImpl implements the ReadingRepository interface.
type readingRepositoryImpl struct {
	store  store.ReadingStore
	logger *slog.Logger

	// locks serializes update calls per reading id so overlapping edits
	// of the same reading cannot interleave their read-merge-write.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewReadingRepository creates a new ReadingRepository over the given store.
// It returns an error if the store is nil.
func NewReadingRepository(readingStore store.ReadingStore, logger *slog.Logger) (ReadingRepository, error) {
	if readingStore == nil {
		return nil, &RepositoryError{
			Operation: "create_repository",
			Message:   "readingStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &readingRepositoryImpl{
		store:  readingStore,
		logger: logger.With("component", "reading_repository"),
		locks:  make(map[string]*sync.Mutex),
	}, nil
}

// lockFor returns the mutex serializing writes for the given reading id.
func (r *readingRepositoryImpl) lockFor(id string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.locks[id]
	if !ok {
		l = &sync.Mutex{}
		r.locks[id] = l
	}
	return l
}

// LoadAll implements ReadingRepository.LoadAll.
func (r *readingRepositoryImpl) LoadAll(ctx context.Context, order SortOrder) ([]domain.Reading, error) {
	readings, err := r.store.GetAll(ctx)
	if err != nil {
		r.logger.Error("failed to load readings",
			"error", err)
		return nil, NewRepositoryError("load_all", "failed to fetch readings", err)
	}

	// Fresh slice; callers never see internal or store-owned state.
	sorted := make([]domain.Reading, len(readings))
	copy(sorted, readings)

	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := sorted[i].Timestamp, sorted[j].Timestamp
		if ti.Equal(tj) {
			// Ties break by id so the order is deterministic.
			if order == SortDescending {
				return sorted[i].ID > sorted[j].ID
			}
			return sorted[i].ID < sorted[j].ID
		}
		if order == SortDescending {
			return tj.Before(ti)
		}
		return ti.Before(tj)
	})

	r.logger.Debug("readings loaded",
		"count", len(sorted),
		"descending", order == SortDescending)
	return sorted, nil
}

// Get implements ReadingRepository.Get.
func (r *readingRepositoryImpl) Get(ctx context.Context, id string) (*domain.Reading, error) {
	reading, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, NewRepositoryError("get", "failed to fetch reading", err)
	}
	return reading, nil
}

// Create implements ReadingRepository.Create.
func (r *readingRepositoryImpl) Create(ctx context.Context, draft ReadingDraft) (*domain.Reading, error) {
	reading, err := domain.NewReading(draft.Systolic, draft.Diastolic, draft.HeartRate, draft.Timestamp, draft.Note)
	if err != nil {
		r.logger.Warn("reading draft failed validation",
			"error", err)
		return nil, NewRepositoryError("create", "invalid reading draft", err)
	}

	if err := r.store.Create(ctx, reading); err != nil {
		r.logger.Error("failed to persist reading",
			"error", err,
			"reading_id", reading.ID)
		return nil, NewRepositoryError("create", "failed to persist reading", err)
	}

	r.logger.Info("reading created",
		"reading_id", reading.ID,
		"category", string(domain.ClassifyReading(*reading)))
	return reading, nil
}

// Update implements ReadingRepository.Update.
func (r *readingRepositoryImpl) Update(ctx context.Context, id string, patch ReadingPatch) (*domain.Reading, error) {
	return r.applyPatch(ctx, "update", id, patch)
}

// applyPatch is the shared read-merge-write behind Update and Reconcile.
// It runs under the per-id lock so concurrent updates of the same reading
// are serialized rather than last-write-wins over a stale merge base.
// Failures are tagged with the operation the caller attempted.
func (r *readingRepositoryImpl) applyPatch(ctx context.Context, operation, id string, patch ReadingPatch) (*domain.Reading, error) {
	lock := r.lockFor(id)
	lock.Lock()
	defer lock.Unlock()

	existing, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, NewRepositoryError(operation, "failed to fetch reading", err)
	}

	merged := patch.ApplyTo(*existing)

	if err := r.store.Update(ctx, &merged); err != nil {
		r.logger.Error("failed to persist updated reading",
			"error", err,
			"reading_id", id)
		return nil, NewRepositoryError(operation, "failed to persist reading", err)
	}

	r.logger.Info("reading updated", "reading_id", id)
	return &merged, nil
}

// Reconcile implements ReadingRepository.Reconcile.
func (r *readingRepositoryImpl) Reconcile(ctx context.Context, id string, patch ReadingPatch) (*domain.Reading, error) {
	if err := patch.Validate(); err != nil {
		r.logger.Warn("edit rejected by validation",
			"error", err,
			"reading_id", id)
		return nil, NewRepositoryError("reconcile", "invalid edit", err)
	}

	return r.applyPatch(ctx, "reconcile", id, patch.normalized())
}

// Delete implements ReadingRepository.Delete.
func (r *readingRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, id); err != nil {
		return NewRepositoryError("delete", "failed to delete reading", err)
	}

	r.logger.Info("reading deleted", "reading_id", id)
	return nil
}

// DeleteAll implements ReadingRepository.DeleteAll.
func (r *readingRepositoryImpl) DeleteAll(ctx context.Context) error {
	if err := r.store.DeleteAll(ctx); err != nil {
		r.logger.Error("failed to delete all readings",
			"error", err)
		return NewRepositoryError("delete_all", "failed to delete readings", err)
	}

	r.logger.Info("all readings deleted")
	return nil
}
