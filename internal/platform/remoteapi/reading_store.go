// Package remoteapi implements the remote collection variant of the reading
// store: CRUD mapped onto a JSON-over-HTTP /readings/ endpoint.
package remoteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/store"
)

// readingDTO is the remote wire shape of a reading: snake_case heart_rate
// and an ISO-8601 timestamp string. Translation to the canonical domain
// shape happens entirely inside this package.
type readingDTO struct {
	ID        string `json:"id"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	HeartRate int    `json:"heart_rate"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
}

// listEnvelope is the GET /readings/ response wrapper.
type listEnvelope struct {
	Readings []readingDTO `json:"readings"`
}

func toDTO(r domain.Reading) readingDTO {
	return readingDTO{
		ID:        r.ID,
		Systolic:  r.Systolic,
		Diastolic: r.Diastolic,
		HeartRate: r.HeartRate,
		Timestamp: r.Timestamp.UTC().Format(time.RFC3339),
		Note:      r.Note,
	}
}

func fromDTO(operation string, dto readingDTO) (domain.Reading, error) {
	ts, err := time.Parse(time.RFC3339, dto.Timestamp)
	if err != nil {
		return domain.Reading{}, store.NewStoreError(operation, "failed to parse reading timestamp", err)
	}
	return domain.Reading{
		ID:        dto.ID,
		Systolic:  dto.Systolic,
		Diastolic: dto.Diastolic,
		HeartRate: dto.HeartRate,
		Timestamp: ts.UTC(),
		Note:      dto.Note,
	}, nil
}

// RemoteReadingStore implements store.ReadingStore against a remote
// /readings/ collection. The client performs no implicit retry or rollback;
// once a call fails, whatever state the server holds is the truth.
type RemoteReadingStore struct {
	client *resty.Client
	logger *slog.Logger
}

// NewRemoteReadingStore creates a remote reading store for the given base
// URL. If logger is nil, a default logger will be used.
func NewRemoteReadingStore(baseURL string, logger *slog.Logger) *RemoteReadingStore {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")

	return &RemoteReadingStore{
		client: client,
		logger: logger.With(slog.String("component", "remote_reading_store")),
	}
}

// Ensure RemoteReadingStore implements store.ReadingStore interface
var _ store.ReadingStore = (*RemoteReadingStore)(nil)

// GetAll implements store.ReadingStore.GetAll.
//
// The endpoint responds with {"readings": [...]}. An absent readings field
// and a bare top-level array both decode as the empty set, per the wire
// contract. Anything else that fails to decode is a store error, never a
// best-effort guess.
func (s *RemoteReadingStore) GetAll(ctx context.Context) ([]domain.Reading, error) {
	resp, err := s.client.R().SetContext(ctx).Get("/readings/")
	if err != nil {
		return nil, store.NewStoreError("get_all", "request failed", err)
	}
	if resp.IsError() {
		return nil, store.NewStoreError("get_all", "unexpected status", statusErr(resp))
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) > 0 && body[0] == '[' {
		return []domain.Reading{}, nil
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, store.NewStoreError("get_all", "failed to decode response", err)
	}

	readings := make([]domain.Reading, 0, len(envelope.Readings))
	for _, dto := range envelope.Readings {
		r, err := fromDTO("get_all", dto)
		if err != nil {
			return nil, err
		}
		readings = append(readings, r)
	}
	return readings, nil
}

// GetByID implements store.ReadingStore.GetByID.
func (s *RemoteReadingStore) GetByID(ctx context.Context, id string) (*domain.Reading, error) {
	var dto readingDTO
	resp, err := s.client.R().SetContext(ctx).SetResult(&dto).Get("/readings/" + id)
	if err != nil {
		return nil, store.NewStoreError("get_by_id", "request failed", err)
	}
	if resp.StatusCode() == 404 {
		return nil, store.ErrReadingNotFound
	}
	if resp.IsError() {
		return nil, store.NewStoreError("get_by_id", "unexpected status", statusErr(resp))
	}

	reading, err := fromDTO("get_by_id", dto)
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// Create implements store.ReadingStore.Create via POST to the collection.
func (s *RemoteReadingStore) Create(ctx context.Context, reading *domain.Reading) error {
	if err := reading.Validate(); err != nil {
		return err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(toDTO(*reading)).
		Post("/readings/")
	if err != nil {
		return store.NewStoreError("create", "request failed", err)
	}
	if resp.IsError() {
		return store.NewStoreError("create", "unexpected status", statusErr(resp))
	}
	return nil
}

// Update implements store.ReadingStore.Update via PUT to the member URL.
func (s *RemoteReadingStore) Update(ctx context.Context, reading *domain.Reading) error {
	if err := reading.Validate(); err != nil {
		return err
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(toDTO(*reading)).
		Put("/readings/" + reading.ID)
	if err != nil {
		return store.NewStoreError("update", "request failed", err)
	}
	if resp.StatusCode() == 404 {
		return store.ErrReadingNotFound
	}
	if resp.IsError() {
		return store.NewStoreError("update", "unexpected status", statusErr(resp))
	}
	return nil
}

// Delete implements store.ReadingStore.Delete via DELETE to the member URL.
func (s *RemoteReadingStore) Delete(ctx context.Context, id string) error {
	resp, err := s.client.R().SetContext(ctx).Delete("/readings/" + id)
	if err != nil {
		return store.NewStoreError("delete", "request failed", err)
	}
	if resp.StatusCode() == 404 {
		return store.ErrReadingNotFound
	}
	if resp.IsError() {
		return store.NewStoreError("delete", "unexpected status", statusErr(resp))
	}
	return nil
}

// DeleteAll implements store.ReadingStore.DeleteAll via DELETE to the collection.
func (s *RemoteReadingStore) DeleteAll(ctx context.Context) error {
	resp, err := s.client.R().SetContext(ctx).Delete("/readings/")
	if err != nil {
		return store.NewStoreError("delete_all", "request failed", err)
	}
	if resp.IsError() {
		return store.NewStoreError("delete_all", "unexpected status", statusErr(resp))
	}
	return nil
}

func statusErr(resp *resty.Response) error {
	return fmt.Errorf("server returned %s", resp.Status())
}
