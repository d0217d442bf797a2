package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bptrack/bptrack/internal/api/shared"
	"github.com/bptrack/bptrack/internal/domain"
	"github.com/bptrack/bptrack/internal/service"
)

// CreateReadingRequest represents the request body for creating a new reading.
// The timestamp is optional and defaults to "now"; the note is optional.
type CreateReadingRequest struct {
	Systolic  int    `json:"systolic"   validate:"required"`
	Diastolic int    `json:"diastolic"  validate:"required"`
	HeartRate int    `json:"heart_rate" validate:"required"`
	Timestamp string `json:"timestamp"  validate:"omitempty"`
	Note      string `json:"note"`
}

// UpdateReadingRequest represents the partial request body for editing a
// reading. Absent fields keep their stored values. An id or timestamp in
// the body is ignored: the typed decode simply has nowhere to put them.
type UpdateReadingRequest struct {
	Systolic  *int    `json:"systolic"`
	Diastolic *int    `json:"diastolic"`
	HeartRate *int    `json:"heart_rate"`
	Note      *string `json:"note"`
}

// ReadingResponse represents the response data for a reading.
type ReadingResponse struct {
	ID        string `json:"id"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
	HeartRate int    `json:"heart_rate"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note,omitempty"`
	Category  string `json:"category"`
}

// ListReadingsResponse wraps the collection listing in its envelope.
type ListReadingsResponse struct {
	Readings []ReadingResponse `json:"readings"`
}

// ReadingHandler handles reading-related HTTP requests.
type ReadingHandler struct {
	repo      service.ReadingRepository
	validator *validator.Validate
}

// NewReadingHandler creates a new ReadingHandler.
func NewReadingHandler(repo service.ReadingRepository) *ReadingHandler {
	return &ReadingHandler{
		repo:      repo,
		validator: validator.New(),
	}
}

// RegisterRoutes mounts the reading routes on the given router.
func (h *ReadingHandler) RegisterRoutes(r chi.Router) {
	r.Route("/readings", func(r chi.Router) {
		r.Get("/", h.ListReadings)
		r.Post("/", h.CreateReading)
		r.Delete("/", h.DeleteAllReadings)
		r.Get("/{id}", h.GetReading)
		r.Put("/{id}", h.UpdateReading)
		r.Delete("/{id}", h.DeleteReading)
	})
}

// ListReadings handles GET /readings/ requests.
// Readings are returned sorted ascending by timestamp inside the
// {"readings": [...]} envelope.
func (h *ReadingHandler) ListReadings(w http.ResponseWriter, r *http.Request) {
	readings, err := h.repo.LoadAll(r.Context(), service.SortAscending)
	if err != nil {
		h.respondError(w, r, "Failed to load readings", err)
		return
	}

	response := ListReadingsResponse{
		Readings: make([]ReadingResponse, 0, len(readings)),
	}
	for _, reading := range readings {
		response.Readings = append(response.Readings, readingToResponse(reading))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetReading handles GET /readings/{id} requests.
func (h *ReadingHandler) GetReading(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Reading ID is required")
		return
	}

	reading, err := h.repo.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, "Failed to load reading", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, readingToResponse(*reading))
}

// CreateReading handles POST /readings/ requests.
func (h *ReadingHandler) CreateReading(w http.ResponseWriter, r *http.Request) {
	var req CreateReadingRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: systolic, diastolic and heart_rate are required")
		return
	}

	draft := service.ReadingDraft{
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		HeartRate: req.HeartRate,
		Note:      req.Note,
	}

	if req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid timestamp format, expected RFC 3339")
			return
		}
		draft.Timestamp = ts.UTC()
	}

	reading, err := h.repo.Create(r.Context(), draft)
	if err != nil {
		h.respondError(w, r, "Failed to create reading", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, readingToResponse(*reading))
}

// UpdateReading handles PUT /readings/{id} requests.
// The body is a partial edit; validation failures make no store call.
func (h *ReadingHandler) UpdateReading(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Reading ID is required")
		return
	}

	var req UpdateReadingRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	patch := service.ReadingPatch{
		Systolic:  req.Systolic,
		Diastolic: req.Diastolic,
		HeartRate: req.HeartRate,
		Note:      req.Note,
	}

	reading, err := h.repo.Reconcile(r.Context(), id, patch)
	if err != nil {
		h.respondError(w, r, "Failed to update reading", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, readingToResponse(*reading))
}

// DeleteReading handles DELETE /readings/{id} requests.
func (h *ReadingHandler) DeleteReading(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Reading ID is required")
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		h.respondError(w, r, "Failed to delete reading", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// DeleteAllReadings handles DELETE /readings/ requests.
func (h *ReadingHandler) DeleteAllReadings(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.DeleteAll(r.Context()); err != nil {
		h.respondError(w, r, "Failed to delete readings", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// respondError maps an internal error to its status code and safe message.
func (h *ReadingHandler) respondError(w http.ResponseWriter, r *http.Request, logMessage string, err error) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		slog.Error(logMessage, "error", err)
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

// readingToResponse converts a domain.Reading to a ReadingResponse.
// The category rides along so clients need not reimplement classification.
func readingToResponse(reading domain.Reading) ReadingResponse {
	return ReadingResponse{
		ID:        reading.ID,
		Systolic:  reading.Systolic,
		Diastolic: reading.Diastolic,
		HeartRate: reading.HeartRate,
		Timestamp: reading.Timestamp.UTC().Format(time.RFC3339),
		Note:      reading.Note,
		Category:  string(domain.ClassifyReading(reading)),
	}
}
