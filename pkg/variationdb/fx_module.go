package variationdb

import (
	"context"

	"go.uber.org/fx"

	"github.com/variantkit/ldlink/pkg/annotator"
)

// FXModule is an fx module that provides the variation database store
// and binds it to each of the annotator's collaborator interfaces.
var FXModule = fx.Module("variationdb",
	fx.Provide(
		NewStoreWithDI,
		fx.Annotate(ProvidePopulationRegistry, fx.As(new(annotator.PopulationRegistry))),
		fx.Annotate(ProvideVariantRegistry, fx.As(new(annotator.VariantRegistry))),
		fx.Annotate(ProvidePlacementRegistry, fx.As(new(annotator.PlacementRegistry))),
		fx.Annotate(ProvideLDService, fx.As(new(annotator.LDService))),
	),
	fx.Invoke(RegisterStoreLifecycle),
)

func ProvidePopulationRegistry(s *Store) annotator.PopulationRegistry { return s }
func ProvideVariantRegistry(s *Store) annotator.VariantRegistry       { return s }
func ProvidePlacementRegistry(s *Store) annotator.PlacementRegistry   { return s }
func ProvideLDService(s *Store) annotator.LDService                   { return s }

// StoreParams groups the dependencies needed to create a Store via
// dependency injection.
type StoreParams struct {
	fx.In

	Config Config
	Logger Logger
}

// NewStoreWithDI creates the Store from injected dependencies.
func NewStoreWithDI(params StoreParams) (*Store, error) {
	return NewStore(params.Config, params.Logger)
}

// RegisterStoreLifecycle closes the database connection on shutdown.
func RegisterStoreLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.GracefulShutdown()
		},
	})
}
