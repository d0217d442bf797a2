package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Physiological bounds for reading fields. Values outside these ranges are
// rejected at the boundary, never clamped.
const (
	MinSystolic  = 40
	MaxSystolic  = 300
	MinDiastolic = 20
	MaxDiastolic = 200
	MinHeartRate = 20
	MaxHeartRate = 250
)

// Reading-specific validation errors
var (
	// ErrReadingIDEmpty is returned when a reading ID is empty.
	ErrReadingIDEmpty = errors.New("reading ID cannot be empty")

	// ErrSystolicRange is returned when the systolic value is outside the
	// plausible physiological range.
	ErrSystolicRange = fmt.Errorf("%w: systolic must be between %d and %d", ErrValidation, MinSystolic, MaxSystolic)

	// ErrDiastolicRange is returned when the diastolic value is outside the
	// plausible physiological range.
	ErrDiastolicRange = fmt.Errorf("%w: diastolic must be between %d and %d", ErrValidation, MinDiastolic, MaxDiastolic)

	// ErrHeartRateRange is returned when the heart rate is outside the
	// plausible physiological range.
	ErrHeartRateRange = fmt.Errorf("%w: heart rate must be between %d and %d", ErrValidation, MinHeartRate, MaxHeartRate)
)

// Reading represents one recorded blood-pressure/heart-rate observation.
// Note is optional; the empty string means "no note" and is never stored
// as a distinct value. ID and Timestamp are immutable after creation.
type Reading struct {
	ID        string    `json:"id"`
	Systolic  int       `json:"systolic"`
	Diastolic int       `json:"diastolic"`
	HeartRate int       `json:"heart_rate"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

// NewReading creates a new Reading with the given vitals, timestamp and
// optional note. It assigns a new opaque string ID. A zero timestamp
// defaults to the current time; a whitespace-only note collapses to absent.
// Returns an error if validation fails.
func NewReading(systolic, diastolic, heartRate int, timestamp time.Time, note string) (*Reading, error) {
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	note = strings.TrimSpace(note)

	reading := &Reading{
		ID:        uuid.NewString(),
		Systolic:  systolic,
		Diastolic: diastolic,
		HeartRate: heartRate,
		Timestamp: timestamp,
		Note:      note,
	}

	if err := reading.Validate(); err != nil {
		return nil, err
	}

	return reading, nil
}

// Validate checks if the Reading has valid data.
// Returns an error if any field fails validation.
func (r *Reading) Validate() error {
	if r.ID == "" {
		return ErrReadingIDEmpty
	}

	if err := ValidateVitals(r.Systolic, r.Diastolic, r.HeartRate); err != nil {
		return err
	}

	return nil
}

// ValidateVitals checks the three numeric fields against their
// physiological ranges. Systolic and diastolic are always validated
// together; there is no reading with one but not the other.
func ValidateVitals(systolic, diastolic, heartRate int) error {
	if systolic < MinSystolic || systolic > MaxSystolic {
		return ErrSystolicRange
	}

	if diastolic < MinDiastolic || diastolic > MaxDiastolic {
		return ErrDiastolicRange
	}

	if heartRate < MinHeartRate || heartRate > MaxHeartRate {
		return ErrHeartRateRange
	}

	return nil
}

// HasNote reports whether the reading carries an annotation.
func (r *Reading) HasNote() bool {
	return r.Note != ""
}
