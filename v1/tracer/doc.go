// Package tracer configures OpenTelemetry tracing for services using this module.
//
// NewClient builds an SDK tracer provider (optionally exporting over
// OTLP/HTTP), installs it globally together with the W3C trace-context and
// baggage propagators, and returns a Tracer owning it. Clients such as
// milvus.Client create their own spans through the provider:
//
//	t, _ := tracer.NewClient(tracer.Config{ServiceName: "search", EnableExport: true}, log)
//	client, _ := milvus.New(cfg, milvus.WithTracerProvider(t.TracerProvider()))
//
// RecordError, Attributes and SetAttributes are the span helpers those
// clients share: errors mark the span failed, and loosely typed field maps
// become typed attributes.
//
// Outgoing HTTP requests carry the trace context through otelhttp, which uses
// the propagators NewClient installs.
package tracer
