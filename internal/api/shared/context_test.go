package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAndGetTraceID(t *testing.T) {
	t.Parallel()
	ctx := SetTraceID(context.Background())

	traceID := GetTraceID(ctx)
	assert.NotEmpty(t, traceID)
	assert.Len(t, traceID, TraceIDLength*2, "Trace ID should be hex-encoded")
}

func TestGetTraceIDMissing(t *testing.T) {
	t.Parallel()
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestTraceIDsAreUnique(t *testing.T) {
	t.Parallel()
	first := GetTraceID(SetTraceID(context.Background()))
	second := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, first, second)
}
