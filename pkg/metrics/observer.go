package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/variantkit/ldlink/pkg/annotator"
)

// LookupObserver implements annotator.Observer. It keeps the "no data"
// and "lookup failed" cases apart, which the annotation output itself
// deliberately does not.
type LookupObserver struct {
	lookups  *prometheus.CounterVec
	pairs    prometheus.Counter
	duration prometheus.Histogram
}

// NewLookupObserver creates the LD lookup instruments and registers
// them, under the Metrics namespace, on its service-labelled registry.
func NewLookupObserver(m *Metrics) (*LookupObserver, error) {
	namespace := m.Namespace

	observer := &LookupObserver{
		lookups: createCounterVec(namespace, "lookups_total",
			"LD lookups per Existing_variation identifier, by outcome.",
			[]string{"outcome"}),
		pairs: createCounter(namespace, "pairs_emitted_total",
			"Linked variant pairs that passed the r2 cutoff."),
		duration: createHistogram(namespace, "lookup_duration_seconds",
			"Wall time spent resolving one identifier, including LD retrieval.",
			[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}),
	}

	for _, collector := range []prometheus.Collector{observer.lookups, observer.pairs, observer.duration} {
		if err := m.registerer.Register(collector); err != nil {
			return nil, err
		}
	}

	return observer, nil
}

// ObserveLookup records the outcome of one identifier lookup.
func (o *LookupObserver) ObserveLookup(lookup annotator.LookupContext) {
	o.lookups.WithLabelValues(lookup.Outcome).Inc()
	o.pairs.Add(float64(lookup.Pairs))
	o.duration.Observe(lookup.Duration.Seconds())
}
