package metrics

// Config configures the metrics registry and the /metrics server.
type Config struct {
	// Address the metrics HTTP server listens on, e.g. ":9090".
	Address string `yaml:"address" koanf:"address"`

	// ServiceName is attached to every metric as the constant "service" label.
	ServiceName string `yaml:"service_name" koanf:"service_name"`

	// EnableDefaultCollectors registers the Go, process and build-info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" koanf:"enable_default_collectors"`

	// Namespace prefixes every metric name. Defaults to "milvus_client".
	Namespace string `yaml:"namespace" koanf:"namespace"`
}

const defaultNamespace = "milvus_client"
