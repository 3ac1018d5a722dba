package annotator

import (
	"context"
	"errors"
	"fmt"
)

// Logger defines the interface for logging operations within the
// annotator package. This interface allows the package to use any
// logging implementation that conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=annotator
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Dependencies groups the collaborators the annotator consumes. All
// lookups are injected so they can be substituted with test doubles or
// with alternate backends (relational store, REST service).
type Dependencies struct {
	Populations PopulationRegistry
	Variants    VariantRegistry
	Placements  PlacementRegistry
	LD          LDService
	Host        Host
	Logger      Logger

	// Optional diagnostics.
	Observer Observer
	Tracer   Tracer
}

// Annotator contributes a LinkedVariants annotation per record. The
// configuration and resolved population are immutable after New; the
// annotator holds no other state between invocations.
type Annotator struct {
	cfg        Config
	population *Population

	variants   VariantRegistry
	placements PlacementRegistry
	ld         LDService
	logger     Logger
	observer   Observer
	tracer     Tracer
}

// New constructs the annotator. It resolves the configured population
// (failure is fatal: the returned error should abort the pipeline run),
// instructs the host to enable the known-variant overlap annotation
// this plugin reads, and warns when the host runs without live
// database access.
func New(ctx context.Context, cfg Config, deps Dependencies) (*Annotator, error) {
	if cfg.Population == "" {
		cfg.Population = DefaultPopulation
	}

	if deps.Populations == nil || deps.Variants == nil || deps.Placements == nil || deps.LD == nil {
		return nil, fmt.Errorf("annotator: all collaborator registries are required")
	}
	if deps.Host == nil {
		return nil, fmt.Errorf("annotator: host controls are required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("annotator: logger is required")
	}

	deps.Host.EnableExistingVariants()

	if !deps.Host.DatabaseEnabled() {
		deps.Logger.Warn("host is configured without live database access, LD lookups will fail at first use", nil, nil)
	}

	population, err := deps.Populations.ResolvePopulation(ctx, cfg.Population)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("annotator: population %q not found: %w", cfg.Population, err)
		}
		return nil, fmt.Errorf("annotator: resolving population %q: %w", cfg.Population, err)
	}

	deps.Logger.Info("resolved LD population", nil, map[string]interface{}{
		"population": population.Name,
		"r2_cutoff":  cfg.R2Cutoff,
	})

	return &Annotator{
		cfg:        cfg,
		population: population,
		variants:   deps.Variants,
		placements: deps.Placements,
		ld:         deps.LD,
		logger:     deps.Logger,
		observer:   deps.Observer,
		tracer:     deps.Tracer,
	}, nil
}

// Population returns the resolved reference cohort.
func (a *Annotator) Population() *Population {
	return a.population
}
