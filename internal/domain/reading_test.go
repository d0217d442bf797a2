package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewReading(t *testing.T) {
	t.Parallel() // Enable parallel execution
	timestamp := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	reading, err := NewReading(120, 80, 72, timestamp, "after coffee")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if reading.ID == "" {
		t.Error("Expected a non-empty reading ID")
	}

	if reading.Systolic != 120 {
		t.Errorf("Expected systolic 120, got %d", reading.Systolic)
	}

	if reading.Diastolic != 80 {
		t.Errorf("Expected diastolic 80, got %d", reading.Diastolic)
	}

	if reading.HeartRate != 72 {
		t.Errorf("Expected heart rate 72, got %d", reading.HeartRate)
	}

	if !reading.Timestamp.Equal(timestamp) {
		t.Errorf("Expected timestamp %v, got %v", timestamp, reading.Timestamp)
	}

	if reading.Note != "after coffee" {
		t.Errorf("Expected note %q, got %q", "after coffee", reading.Note)
	}
}

func TestNewReadingAssignsUniqueIDs(t *testing.T) {
	t.Parallel() // Enable parallel execution
	first, err := NewReading(110, 70, 65, time.Time{}, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second, err := NewReading(110, 70, 65, time.Time{}, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("Expected distinct IDs, both were %s", first.ID)
	}
}

func TestNewReadingDefaultsTimestamp(t *testing.T) {
	t.Parallel() // Enable parallel execution
	before := time.Now().UTC()

	reading, err := NewReading(110, 70, 65, time.Time{}, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	after := time.Now().UTC()

	if reading.Timestamp.Before(before) || reading.Timestamp.After(after) {
		t.Errorf("Expected timestamp between %v and %v, got %v", before, after, reading.Timestamp)
	}
}

func TestNewReadingValidation(t *testing.T) {
	t.Parallel() // Enable parallel execution
	timestamp := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		systolic  int
		diastolic int
		heartRate int
		expected  error
	}{
		{name: "systolic too high", systolic: 400, diastolic: 80, heartRate: 70, expected: ErrSystolicRange},
		{name: "systolic too low", systolic: 39, diastolic: 80, heartRate: 70, expected: ErrSystolicRange},
		{name: "systolic missing", systolic: 0, diastolic: 80, heartRate: 70, expected: ErrSystolicRange},
		{name: "diastolic too high", systolic: 120, diastolic: 201, heartRate: 70, expected: ErrDiastolicRange},
		{name: "diastolic too low", systolic: 120, diastolic: 19, heartRate: 70, expected: ErrDiastolicRange},
		{name: "heart rate too high", systolic: 120, diastolic: 80, heartRate: 251, expected: ErrHeartRateRange},
		{name: "heart rate too low", systolic: 120, diastolic: 80, heartRate: 19, expected: ErrHeartRateRange},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewReading(tc.systolic, tc.diastolic, tc.heartRate, timestamp, "")
			if !errors.Is(err, tc.expected) {
				t.Errorf("Expected error %v, got %v", tc.expected, err)
			}
			if !IsValidationError(err) {
				t.Errorf("Expected a validation error, got %v", err)
			}
		})
	}
}

func TestNewReadingBoundaryValues(t *testing.T) {
	t.Parallel() // Enable parallel execution
	timestamp := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	// Range bounds are inclusive on both ends.
	for _, vitals := range [][3]int{
		{MinSystolic, MinDiastolic, MinHeartRate},
		{MaxSystolic, MaxDiastolic, MaxHeartRate},
	} {
		if _, err := NewReading(vitals[0], vitals[1], vitals[2], timestamp, ""); err != nil {
			t.Errorf("Expected vitals %v to be accepted, got %v", vitals, err)
		}
	}
}

func TestNewReadingNormalizesNote(t *testing.T) {
	t.Parallel() // Enable parallel execution
	timestamp := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	// A whitespace-only note is absent, same as the edit path.
	blank, err := NewReading(120, 80, 70, timestamp, "   ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if blank.HasNote() {
		t.Errorf("Expected a whitespace-only note to collapse to absent, got %q", blank.Note)
	}

	padded, err := NewReading(120, 80, 70, timestamp, "  after walk  ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if padded.Note != "after walk" {
		t.Errorf("Expected the note to be trimmed, got %q", padded.Note)
	}
}

func TestReadingValidateRequiresID(t *testing.T) {
	t.Parallel() // Enable parallel execution
	reading := Reading{
		Systolic:  120,
		Diastolic: 80,
		HeartRate: 70,
		Timestamp: time.Now().UTC(),
	}

	if err := reading.Validate(); err != ErrReadingIDEmpty {
		t.Errorf("Expected error %v, got %v", ErrReadingIDEmpty, err)
	}
}

func TestReadingHasNote(t *testing.T) {
	t.Parallel() // Enable parallel execution
	withNote := Reading{Note: "dizzy"}
	if !withNote.HasNote() {
		t.Error("Expected HasNote to be true for a non-empty note")
	}

	withoutNote := Reading{}
	if withoutNote.HasNote() {
		t.Error("Expected HasNote to be false for an absent note")
	}
}
