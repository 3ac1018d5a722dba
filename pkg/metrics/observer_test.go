package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/variantkit/ldlink/pkg/annotator"
)

func newTestObserver(t *testing.T) *LookupObserver {
	t.Helper()

	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})
	observer, err := NewLookupObserver(m)
	require.NoError(t, err)
	return observer
}

func TestObserveLookupCountsOutcomes(t *testing.T) {
	observer := newTestObserver(t)

	observer.ObserveLookup(annotator.LookupContext{Variant: "rs1", Outcome: annotator.OutcomeOK, Pairs: 2, Duration: 5 * time.Millisecond})
	observer.ObserveLookup(annotator.LookupContext{Variant: "rs2", Outcome: annotator.OutcomeOK, Pairs: 1, Duration: time.Millisecond})
	observer.ObserveLookup(annotator.LookupContext{Variant: "rs3", Outcome: annotator.OutcomeNotFound})

	assert.Equal(t, float64(2), testutil.ToFloat64(observer.lookups.WithLabelValues(annotator.OutcomeOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(observer.lookups.WithLabelValues(annotator.OutcomeNotFound)))
	assert.Equal(t, float64(0), testutil.ToFloat64(observer.lookups.WithLabelValues(annotator.OutcomeError)))
	assert.Equal(t, float64(3), testutil.ToFloat64(observer.pairs))
}

func TestLookupObserverDoubleRegistration(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})

	_, err := NewLookupObserver(m)
	require.NoError(t, err)

	// The same registry refuses duplicate instruments.
	_, err = NewLookupObserver(m)
	require.Error(t, err)
}

func TestLookupInstrumentsCarryNamespaceAndServiceLabel(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "ld-test", Namespace: "linkage"})

	observer, err := NewLookupObserver(m)
	require.NoError(t, err)
	observer.ObserveLookup(annotator.LookupContext{Variant: "rs1", Outcome: annotator.OutcomeOK, Pairs: 1})

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	byName := map[string]bool{}
	serviceLabelled := false
	for _, family := range families {
		byName[family.GetName()] = true
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "service" && label.GetValue() == "ld-test" {
					serviceLabelled = true
				}
			}
		}
	}

	assert.True(t, byName["linkage_lookups_total"])
	assert.True(t, byName["linkage_pairs_emitted_total"])
	assert.True(t, byName["linkage_lookup_duration_seconds"])
	assert.True(t, serviceLabelled, "instruments must carry the service label")
}
