package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/milvus/v1/logger"
)

// Tracer owns the OpenTelemetry SDK tracer provider and offers small helpers
// for creating spans and propagating context. Safe for concurrent use.
type Tracer struct {
	provider *sdktrace.TracerProvider
	logger   logger.Logger
}

// NewClient builds the tracer provider, installs it as the otel global
// together with the W3C trace-context and baggage propagators, and returns it.
//
// Extra provider options (span processors, samplers) are appended after the
// exporter and resource options; tests use this to attach a span recorder.
//
// Example:
//
//	t, err := tracer.NewClient(tracer.Config{ServiceName: "search", AppEnv: "prod", EnableExport: true}, log)
//	client = client.WithTracerProvider(t.TracerProvider())
func NewClient(cfg Config, log logger.Logger, extra ...sdktrace.TracerProviderOption) (*Tracer, error) {
	var options []sdktrace.TracerProviderOption

	if cfg.EnableExport {
		var httpOpts []otlptracehttp.Option
		if cfg.ExporterEndpoint != "" {
			httpOpts = append(httpOpts, otlptracehttp.WithEndpoint(cfg.ExporterEndpoint))
		}
		if cfg.Insecure {
			httpOpts = append(httpOpts, otlptracehttp.WithInsecure())
		}

		exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(httpOpts...))
		if err != nil {
			return nil, fmt.Errorf("tracer: cannot create OTLP exporter: %w", err)
		}
		options = append(options, sdktrace.WithBatcher(exporter))
	}

	options = append(options, sdktrace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))
	options = append(options, extra...)

	tp := sdktrace.NewTracerProvider(options...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	if log != nil {
		log.Info("tracer initialised", nil, map[string]interface{}{
			"service": cfg.ServiceName,
			"export":  cfg.EnableExport,
		})
	}

	return &Tracer{provider: tp, logger: log}, nil
}

// TracerProvider returns the provider for clients that accept one explicitly.
func (t *Tracer) TracerProvider() trace.TracerProvider {
	return t.provider
}

// Shutdown flushes pending spans and stops the provider.
func (t *Tracer) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
