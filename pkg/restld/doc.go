// Package restld implements the annotator's LDService over an HTTP
// REST endpoint of the form:
//
//	GET {base}/ld/{species}/{id}/{population}
//
// returning a JSON array of pairwise results with string-encoded r2
// values. Records whose r2 cannot be parsed are skipped with a warning;
// a 404 response maps to annotator.ErrNotFound (no LD container), any
// other non-200 response is an error for the host pipeline.
//
// Use this package when no local variation database mirror is
// available; population, variant and placement resolution still need a
// backing registry (see package variationdb).
package restld
