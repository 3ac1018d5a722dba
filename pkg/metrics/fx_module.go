package metrics

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/fx"

	"github.com/variantkit/ldlink/pkg/annotator"
)

// FXModule is an fx module that provides the metrics registry, the
// scrape server and the LD lookup observer bound to annotator.Observer.
// A metrics.Logger must be available in the container for lifecycle
// logging.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		NewLookupObserver,
		fx.Annotate(
			ProvideObserver,
			fx.As(new(annotator.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// ProvideObserver exposes the lookup observer as the annotator's
// Observer interface.
func ProvideObserver(o *LookupObserver) annotator.Observer {
	return o
}

// RegisterMetricsLifecycle starts the scrape server on application
// start and shuts it down on stop.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("starting metrics server", nil, map[string]interface{}{
					"address": m.Server.Addr,
				})

				err := m.Server.ListenAndServe()
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("metrics server stopped", err, nil)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down metrics server", nil, nil)
			return m.Server.Shutdown(ctx)
		},
	})
}
