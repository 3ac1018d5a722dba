package annotator

import (
	"context"
	"time"

	traceSpan "go.opentelemetry.io/otel/trace"
)

// Field names exchanged with the host pipeline.
const (
	// ExistingVariationField is the upstream annotation field holding the
	// comma-separated identifiers of known variants overlapping the
	// current site. Populated by a prerequisite step the annotator
	// enables at startup.
	ExistingVariationField = "Existing_variation"

	// LinkedVariantsField is the key this plugin contributes to the
	// record's annotation output.
	LinkedVariantsField = "LinkedVariants"
)

// FeatureKind identifies the overlap annotation kinds the plugin is
// invoked for. The host consults FeatureKinds before invocation.
type FeatureKind string

const (
	Transcript        FeatureKind = "Transcript"
	RegulatoryFeature FeatureKind = "RegulatoryFeature"
	MotifFeature      FeatureKind = "MotifFeature"
)

// Population is a named reference cohort resolved once at startup and
// referenced read-only for the lifetime of the process.
type Population struct {
	ID          int64
	Name        string
	Size        int
	Description string
}

// Variant is a known genomic variant resolved by its stable identifier.
type Variant struct {
	ID   int64
	Name string
}

// Placement is one genomic location a variant maps to.
type Placement struct {
	VariantName string
	RegionName  string
	Start       int64
	End         int64
}

// LDPair is one pairwise linkage-disequilibrium result. Exactly one of
// the two names is expected to be the queried variant; see Annotate for
// the policy when that expectation does not hold.
type LDPair struct {
	VariationName1 string
	VariationName2 string
	R2             float64
}

// Site is the per-allele annotation context supplied by the host for
// the variant currently under analysis.
type Site struct {
	RegionName string
	Start      int64
	End        int64
}

// PopulationRegistry resolves population names. Returns ErrNotFound
// when no population matches.
type PopulationRegistry interface {
	ResolvePopulation(ctx context.Context, name string) (*Population, error)
}

// VariantRegistry resolves variant identifiers. Returns ErrNotFound for
// unknown identifiers.
type VariantRegistry interface {
	ResolveVariant(ctx context.Context, identifier string) (*Variant, error)
}

// PlacementRegistry lists the genomic placements of a variant.
type PlacementRegistry interface {
	Placements(ctx context.Context, variant *Variant) ([]Placement, error)
}

// LDService fetches pairwise LD values for a placement against a
// population. Returns ErrNotFound (or an empty slice) when no LD data
// is available for the placement/population pair.
type LDService interface {
	LDValues(ctx context.Context, placement Placement, population *Population) ([]LDPair, error)
}

// Host exposes the controls of the host pipeline this plugin is loaded
// into.
type Host interface {
	// EnableExistingVariants turns on the upstream known-variant overlap
	// annotation this plugin depends on.
	EnableExistingVariants()

	// DatabaseEnabled reports whether the host runs with live database
	// access. Running without it is warned about at startup; the actual
	// failure surfaces per call.
	DatabaseEnabled() bool
}

// Lookup outcomes reported through the Observer.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeNoLDData = "no_ld_data"
	OutcomeError    = "error"
)

// LookupContext describes the processing of one identifier from the
// Existing_variation list.
type LookupContext struct {
	Variant  string
	Outcome  string
	Duration time.Duration
	Err      error
	Pairs    int
}

// Observer is an optional diagnostics sink. It separates "no data" from
// "lookup failed" without changing the returned annotation contract.
type Observer interface {
	ObserveLookup(lookup LookupContext)
}

// Tracer is an optional span factory for per-record tracing.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, traceSpan.Span)
}

// Plugin is the lifecycle contract the host pipeline drives: one
// construction at startup, a capability query, and one Annotate call
// per record.
type Plugin interface {
	Annotate(ctx context.Context, site *Site, fields map[string]string) (map[string]string, error)
	FeatureKinds() []FeatureKind
	Headers() map[string]string
	Version() string
}
