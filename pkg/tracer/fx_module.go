package tracer

import (
	"context"

	"go.uber.org/fx"

	"github.com/variantkit/ldlink/pkg/annotator"
)

// FXModule is an fx module that provides the tracer and binds it to the
// annotator's Tracer interface so per-record spans are recorded.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		fx.Annotate(
			ProvideAnnotatorTracer,
			fx.As(new(annotator.Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// ProvideAnnotatorTracer exposes the tracer as the annotator's span
// factory.
func ProvideAnnotatorTracer(t *Tracer) annotator.Tracer {
	return t
}

// RegisterTracerLifecycle flushes and shuts down the tracer provider on
// application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, tracer *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if tracer.tracer == nil {
				tracer.logger.Warn("tracer was nil during shutdown", nil, nil)
				return nil
			}
			return tracer.tracer.Shutdown(ctx)
		},
	})
}
