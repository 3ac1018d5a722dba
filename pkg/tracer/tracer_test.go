package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, error, ...map[string]interface{})  {}
func (nopLogger) Debug(string, error, ...map[string]interface{}) {}
func (nopLogger) Warn(string, error, ...map[string]interface{})  {}
func (nopLogger) Error(string, error, ...map[string]interface{}) {}
func (nopLogger) Fatal(string, error, ...map[string]interface{}) {}

func TestStartSpanProducesValidSpanContext(t *testing.T) {
	tr := NewClient(Config{AppEnv: "test"}, nopLogger{})

	ctx, span := tr.StartSpan(context.Background(), "unit-test")
	defer span.End()

	require.True(t, span.SpanContext().IsValid())

	// Child spans share the parent's trace.
	_, child := tr.StartSpan(ctx, "child")
	defer child.End()
	assert.Equal(t, span.SpanContext().TraceID(), child.SpanContext().TraceID())
}

func TestRecordErrorOnSpan(t *testing.T) {
	tr := NewClient(Config{AppEnv: "test"}, nopLogger{})

	_, span := tr.StartSpan(context.Background(), "failing-op")
	defer span.End()

	// Must not panic on a recording span.
	tr.RecordErrorOnSpan(span, errors.New("boom"))
}

func TestSetAttributesHandlesMixedTypes(t *testing.T) {
	tr := NewClient(Config{AppEnv: "test"}, nopLogger{})

	_, span := tr.StartSpan(context.Background(), "attrs")
	defer span.End()

	tr.SetAttributes(span, map[string]interface{}{
		"population": "1000GENOMES:phase_3:CEU",
		"pairs":      3,
		"r2_cutoff":  0.8,
		"offline":    false,
		"other":      struct{}{},
	})
	tr.SetAttributes(span, nil)
}
