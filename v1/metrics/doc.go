// Package metrics exposes client operation metrics to Prometheus.
//
// Each Metrics instance owns an isolated registry whose metrics carry a
// constant "service" label. The built-in series are:
//
//	<ns>_operations_total{component,operation,status}
//	<ns>_operation_duration_seconds{component,operation}
//	<ns>_response_size_bytes{component,operation}
//
// The namespace defaults to "milvus_client". Status is "success" or "error".
//
// # Basic Usage
//
// The series are fed through ObserveOperation, which makes *Metrics an
// observability.Observer:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "search",
//	    EnableDefaultCollectors: true,
//	})
//	go m.Server.ListenAndServe()
//
//	client, err := milvus.New(cfg, milvus.WithObserver(m))
//
// # Custom Metrics
//
// Additional vectors share the registry and the service label:
//
//	reindexed := m.CreateCounter("reindexed_documents_total", "Documents re-embedded", []string{"collection"})
//	reindexed.WithLabelValues("docs").Add(float64(n))
//
// # FX Module Integration
//
// metrics.FXModule provides *Metrics and an observability.Observer, starts
// the /metrics server on application start and shuts it down on stop. A
// metrics.Config and a logger.Logger must be in the container:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(func() metrics.Config { return metrics.Config{Address: ":9090", ServiceName: "search"} }),
//	    metrics.FXModule,
//	    fx.Provide(milvus.NewConfig),
//	    milvus.FXModule, // picks up the Observer
//	)
package metrics
