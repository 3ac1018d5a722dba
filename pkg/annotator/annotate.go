package annotator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Annotate processes one record. It resolves each identifier in the
// record's Existing_variation field, in order, fetches pairwise LD
// values for every placement on the record's sequence region, and
// returns {LinkedVariants: "id1:r2,id2:r2,..."} for the pairs that
// reach the configured cutoff. An empty map means the plugin has
// nothing to contribute; that is the normal outcome, not an error.
//
// Unknown identifiers, placements on other regions, and missing LD
// data are skipped silently. Any other collaborator failure aborts the
// record and is returned to the host.
func (a *Annotator) Annotate(ctx context.Context, site *Site, fields map[string]string) (map[string]string, error) {
	existing := strings.TrimSpace(fields[ExistingVariationField])
	if existing == "" {
		return map[string]string{}, nil
	}

	if a.tracer != nil {
		tracedCtx, span := a.tracer.StartSpan(ctx, "ld.annotate")
		defer span.End()
		ctx = tracedCtx
	}

	var entries []string
	for _, identifier := range splitIdentifiers(existing) {
		found, err := a.lookupIdentifier(ctx, site, identifier)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}

	if len(entries) == 0 {
		return map[string]string{}, nil
	}

	return map[string]string{
		LinkedVariantsField: strings.Join(entries, ","),
	}, nil
}

// lookupIdentifier wraps collectPairs with timing and diagnostics.
func (a *Annotator) lookupIdentifier(ctx context.Context, site *Site, identifier string) ([]string, error) {
	start := time.Now()

	entries, outcome, err := a.collectPairs(ctx, site, identifier)

	if a.observer != nil {
		a.observer.ObserveLookup(LookupContext{
			Variant:  identifier,
			Outcome:  outcome,
			Duration: time.Since(start),
			Err:      err,
			Pairs:    len(entries),
		})
	}

	return entries, err
}

// collectPairs gathers the formatted "linked:r2" entries one query
// identifier contributes, preserving placement then result order.
func (a *Annotator) collectPairs(ctx context.Context, site *Site, identifier string) ([]string, string, error) {
	variant, err := a.variants.ResolveVariant(ctx, identifier)
	if errors.Is(err, ErrNotFound) {
		return nil, OutcomeNotFound, nil
	}
	if err != nil {
		return nil, OutcomeError, err
	}

	placements, err := a.placements.Placements(ctx, variant)
	if err != nil {
		return nil, OutcomeError, err
	}

	var entries []string
	sawLDData := false

	for _, placement := range placements {
		// A variant can map to several assembly regions; only placements on
		// the region currently under analysis count.
		if placement.RegionName != site.RegionName {
			continue
		}

		pairs, err := a.ld.LDValues(ctx, placement, a.population)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, OutcomeError, err
		}
		if len(pairs) == 0 {
			continue
		}
		sawLDData = true

		for _, pair := range pairs {
			if pair.R2 < a.cfg.R2Cutoff {
				continue
			}

			linked, ok := a.linkedName(identifier, pair)
			if !ok {
				continue
			}

			entries = append(entries, fmt.Sprintf("%s:%.3f", linked, pair.R2))
		}
	}

	if !sawLDData {
		return entries, OutcomeNoLDData, nil
	}

	return entries, OutcomeOK, nil
}

// linkedName picks the pair field that is not the query identifier.
// Pairs naming the query variant on both sides are skipped; pairs
// naming it on neither side keep the first field. Both cases are
// logged, since the upstream contract promises exactly one match.
func (a *Annotator) linkedName(identifier string, pair LDPair) (string, bool) {
	matchesFirst := pair.VariationName1 == identifier
	matchesSecond := pair.VariationName2 == identifier

	switch {
	case matchesFirst && matchesSecond:
		a.logger.Warn("ld pair names the query variant on both sides, skipping", nil, map[string]interface{}{
			"variant": identifier,
		})
		return "", false
	case matchesFirst:
		return pair.VariationName2, true
	case matchesSecond:
		return pair.VariationName1, true
	default:
		a.logger.Warn("ld pair does not name the query variant, keeping first side", nil, map[string]interface{}{
			"variant":         identifier,
			"variation_name1": pair.VariationName1,
			"variation_name2": pair.VariationName2,
		})
		return pair.VariationName1, true
	}
}

// splitIdentifiers splits the comma-separated Existing_variation value,
// dropping blank tokens.
func splitIdentifiers(raw string) []string {
	parts := strings.Split(raw, ",")
	identifiers := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			identifiers = append(identifiers, id)
		}
	}
	return identifiers
}
