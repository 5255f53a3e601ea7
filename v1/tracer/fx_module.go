package tracer

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// FXModule provides *Tracer and its trace.TracerProvider, and shuts the
// provider down on stop so buffered spans are flushed.
// A tracer.Config and a logger.Logger must be available in the container.
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClient,
		func(t *Tracer) trace.TracerProvider { return t.TracerProvider() },
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// RegisterTracerLifecycle flushes and stops the provider on application stop.
func RegisterTracerLifecycle(lc fx.Lifecycle, t *Tracer) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if t.logger != nil {
				t.logger.Info("shutting down tracer", nil, nil)
			}
			return t.Shutdown(ctx)
		},
	})
}
