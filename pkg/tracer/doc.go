// Package tracer provides OpenTelemetry tracing for the ldlink plugin.
//
// The annotator records one span per annotated record and the restld
// client one span per LD request; both consume the Tracer through the
// narrow annotator.Tracer interface, so tracing stays optional. Export
// goes over OTLP/HTTP when enabled.
package tracer
