// Package metrics exposes Prometheus instrumentation for the ldlink
// plugin.
//
// The annotation contract collapses "no data" and "lookup failed" into
// the same empty output; the LookupObserver is the side channel that
// keeps them apart. Per identifier it records:
//
//	ldlink_lookups_total{outcome="ok|not_found|no_ld_data|error"}
//	ldlink_pairs_emitted_total
//	ldlink_lookup_duration_seconds
//
// NewMetrics builds an isolated registry and a scrape server; the fx
// module starts the server on application start and binds the observer
// to annotator.Observer.
package metrics
