package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated Prometheus registry, the built-in client
// operation metrics and the HTTP server exposing them.
//
// *Metrics implements observability.Observer, so it can be attached to any
// client in this module:
//
//	m := metrics.NewMetrics(cfg)
//	client = client.WithObserver(m)
type Metrics struct {
	// Server exposes the registry at /metrics.
	Server *http.Server

	// Registry holds every metric registered by this instance.
	Registry *prometheus.Registry

	registerer prometheus.Registerer

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	responseSize      *prometheus.HistogramVec
}

// NewMetrics creates the registry, registers the operation metrics (and the
// default collectors when enabled) and prepares, but does not start, the server.
func NewMetrics(cfg Config) *Metrics {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrapped,
	}

	m.operationsTotal = createCounterVec(namespace, "operations_total",
		"Total number of client operations by outcome", []string{"component", "operation", "status"})
	m.operationDuration = createHistogramVec(namespace, "operation_duration_seconds",
		"Client operation latency in seconds", []string{"component", "operation"}, prometheus.DefBuckets)
	m.responseSize = createHistogramVec(namespace, "response_size_bytes",
		"Size of server responses in bytes", []string{"component", "operation"},
		prometheus.ExponentialBuckets(64, 4, 8))

	wrapped.MustRegister(m.operationsTotal, m.operationDuration, m.responseSize)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	m.Server = &http.Server{
		Addr:    cfg.Address,
		Handler: mux,
	}
	return m
}
