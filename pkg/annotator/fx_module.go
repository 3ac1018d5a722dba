package annotator

import (
	"context"

	"go.uber.org/fx"
)

// FXModule is an fx module that provides the LD annotator.
//
// This module provides the Plugin interface in addition to the concrete
// *Annotator, so hosts can depend on the lifecycle contract alone.
var FXModule = fx.Module("annotator",
	fx.Provide(
		NewAnnotatorWithDI,
		fx.Annotate(
			ProvidePlugin,
			fx.As(new(Plugin)),
		),
	),
)

// ProvidePlugin exposes the concrete annotator as the Plugin interface.
func ProvidePlugin(a *Annotator) Plugin {
	return a
}

// AnnotatorParams groups the dependencies needed to create an Annotator
// via dependency injection. Observer and Tracer are optional: the
// annotator works without diagnostics.
type AnnotatorParams struct {
	fx.In

	Config      Config
	Populations PopulationRegistry
	Variants    VariantRegistry
	Placements  PlacementRegistry
	LD          LDService
	Host        Host
	Logger      Logger

	Observer Observer `optional:"true"`
	Tracer   Tracer   `optional:"true"`
}

// NewAnnotatorWithDI creates the Annotator from injected dependencies.
// Construction performs the startup population lookup, so it runs with
// a background context; hosts that need startup deadlines should call
// New directly.
func NewAnnotatorWithDI(params AnnotatorParams) (*Annotator, error) {
	return New(context.Background(), params.Config, Dependencies{
		Populations: params.Populations,
		Variants:    params.Variants,
		Placements:  params.Placements,
		LD:          params.LD,
		Host:        params.Host,
		Logger:      params.Logger,
		Observer:    params.Observer,
		Tracer:      params.Tracer,
	})
}
