package service

import (
	"strings"

	"github.com/bptrack/bptrack/internal/domain"
)

// ReadingPatch is a partial edit of an existing reading. A nil field means
// "keep the prior value". The type deliberately has no ID or Timestamp
// field: those are immutable post-creation, so an edit structurally cannot
// carry them, and stale client payloads naming them are dropped at the
// decode boundary instead of erroring.
type ReadingPatch struct {
	Systolic  *int
	Diastolic *int
	HeartRate *int
	Note      *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ReadingPatch) IsEmpty() bool {
	return p.Systolic == nil && p.Diastolic == nil && p.HeartRate == nil && p.Note == nil
}

// Validate checks every present field against the same range rules as
// creation. Absent fields are not validated; they keep stored values that
// already passed creation validation.
func (p ReadingPatch) Validate() error {
	if p.Systolic != nil {
		if *p.Systolic < domain.MinSystolic || *p.Systolic > domain.MaxSystolic {
			return domain.ErrSystolicRange
		}
	}
	if p.Diastolic != nil {
		if *p.Diastolic < domain.MinDiastolic || *p.Diastolic > domain.MaxDiastolic {
			return domain.ErrDiastolicRange
		}
	}
	if p.HeartRate != nil {
		if *p.HeartRate < domain.MinHeartRate || *p.HeartRate > domain.MaxHeartRate {
			return domain.ErrHeartRateRange
		}
	}
	return nil
}

// normalized returns a copy of the patch with a blank note collapsed to
// "absent". A note of only whitespace is an explicit clear, never stored
// as a whitespace string.
func (p ReadingPatch) normalized() ReadingPatch {
	if p.Note == nil {
		return p
	}

	trimmed := strings.TrimSpace(*p.Note)
	out := p
	out.Note = &trimmed
	return out
}

// ApplyTo merges the patch onto an existing reading and returns the result.
// ID and Timestamp always carry over unchanged.
func (p ReadingPatch) ApplyTo(existing domain.Reading) domain.Reading {
	merged := existing

	if p.Systolic != nil {
		merged.Systolic = *p.Systolic
	}
	if p.Diastolic != nil {
		merged.Diastolic = *p.Diastolic
	}
	if p.HeartRate != nil {
		merged.HeartRate = *p.HeartRate
	}
	if p.Note != nil {
		merged.Note = *p.Note
	}

	return merged
}
