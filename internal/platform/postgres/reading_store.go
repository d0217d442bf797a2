package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/platform/logger"
	"github.com/bptrack/bptrack/internal/store"
)

// PostgresReadingStore implements the store.ReadingStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReadingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReadingStore creates a new PostgreSQL implementation of the
// ReadingStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresReadingStore(db store.DBTX, logger *slog.Logger) *PostgresReadingStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReadingStore{
		db:     db,
		logger: logger.With(slog.String("component", "reading_store")),
	}
}

// Ensure PostgresReadingStore implements store.ReadingStore interface
var _ store.ReadingStore = (*PostgresReadingStore)(nil)

// GetAll implements store.ReadingStore.GetAll.
// No ORDER BY on purpose: sort order is owned by the repository, which
// always recomputes it from the timestamp.
func (s *PostgresReadingStore) GetAll(ctx context.Context) ([]domain.Reading, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, systolic, diastolic, heart_rate, recorded_at, note
		FROM readings
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query readings",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var readings []domain.Reading
	for rows.Next() {
		var r domain.Reading
		var note sql.NullString

		if err := rows.Scan(&r.ID, &r.Systolic, &r.Diastolic, &r.HeartRate, &r.Timestamp, &note); err != nil {
			log.Error("failed to scan reading row",
				slog.String("error", err.Error()))
			return nil, MapError(err)
		}

		r.Note = note.String
		readings = append(readings, r)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	// Return empty slice instead of nil if no readings found
	if readings == nil {
		readings = []domain.Reading{}
	}

	log.Debug("readings retrieved", slog.Int("count", len(readings)))
	return readings, nil
}

// GetByID implements store.ReadingStore.GetByID.
// Returns store.ErrReadingNotFound if the reading does not exist.
func (s *PostgresReadingStore) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, systolic, diastolic, heart_rate, recorded_at, note
		FROM readings
		WHERE id = $1
	`

	var r domain.Reading
	var note sql.NullString

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID,
		&r.Systolic,
		&r.Diastolic,
		&r.HeartRate,
		&r.Timestamp,
		&note,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("reading not found", slog.String("reading_id", id))
			return nil, store.ErrReadingNotFound
		}
		log.Error("failed to get reading by ID",
			slog.String("error", err.Error()),
			slog.String("reading_id", id))
		return nil, MapError(err)
	}

	r.Note = note.String
	return &r, nil
}

// Create implements store.ReadingStore.Create.
// It saves a new reading to the database, handling domain validation.
func (s *PostgresReadingStore) Create(ctx context.Context, reading *domain.Reading) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reading.Validate(); err != nil {
		log.Warn("reading validation failed during create",
			slog.String("error", err.Error()),
			slog.String("reading_id", reading.ID))
		return err
	}

	query := `
		INSERT INTO readings (id, systolic, diastolic, heart_rate, recorded_at, note)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		reading.ID,
		reading.Systolic,
		reading.Diastolic,
		reading.HeartRate,
		reading.Timestamp,
		noteValue(reading.Note),
	)

	if err != nil {
		log.Error("failed to create reading",
			slog.String("error", err.Error()),
			slog.String("reading_id", reading.ID))
		return MapError(err)
	}

	log.Info("reading created successfully",
		slog.String("reading_id", reading.ID),
		slog.Int("systolic", reading.Systolic),
		slog.Int("diastolic", reading.Diastolic))
	return nil
}

// Update implements store.ReadingStore.Update.
// Returns store.ErrReadingNotFound if the reading does not exist.
func (s *PostgresReadingStore) Update(ctx context.Context, reading *domain.Reading) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reading.Validate(); err != nil {
		log.Warn("reading validation failed during update",
			slog.String("error", err.Error()),
			slog.String("reading_id", reading.ID))
		return err
	}

	query := `
		UPDATE readings
		SET systolic = $1, diastolic = $2, heart_rate = $3, note = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		reading.Systolic,
		reading.Diastolic,
		reading.HeartRate,
		noteValue(reading.Note),
		reading.ID,
	)

	if err != nil {
		log.Error("failed to update reading",
			slog.String("error", err.Error()),
			slog.String("reading_id", reading.ID))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("reading_id", reading.ID))
		return MapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("reading not found for update",
			slog.String("reading_id", reading.ID))
		return store.ErrReadingNotFound
	}

	log.Info("reading updated successfully",
		slog.String("reading_id", reading.ID))
	return nil
}

// Delete implements store.ReadingStore.Delete.
// Returns store.ErrReadingNotFound if the reading does not exist.
func (s *PostgresReadingStore) Delete(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM readings WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete reading",
			slog.String("error", err.Error()),
			slog.String("reading_id", id))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("reading_id", id))
		return MapError(err)
	}

	if rowsAffected == 0 {
		log.Debug("reading not found for delete",
			slog.String("reading_id", id))
		return store.ErrReadingNotFound
	}

	log.Info("reading deleted successfully", slog.String("reading_id", id))
	return nil
}

// DeleteAll implements store.ReadingStore.DeleteAll.
// Idempotent; deleting from an empty table succeeds.
func (s *PostgresReadingStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM readings`

	result, err := s.db.ExecContext(ctx, query)
	if err != nil {
		log.Error("failed to delete all readings",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("all readings deleted", slog.Int64("count", rowsAffected))
	return nil
}

// noteValue maps the domain's "empty means absent" note to a nullable column.
func noteValue(note string) sql.NullString {
	return sql.NullString{String: note, Valid: note != ""}
}
