package tracer

// Config configures the tracer provider.
type Config struct {
	// ServiceName is reported as the service.name resource attribute.
	ServiceName string `yaml:"service_name" koanf:"service_name"`

	// AppEnv is reported as deployment.environment.
	AppEnv string `yaml:"app_env" koanf:"app_env"`

	// EnableExport ships spans over OTLP/HTTP. When false spans are still
	// created and propagated but never leave the process.
	EnableExport bool `yaml:"enable_export" koanf:"enable_export"`

	// ExporterEndpoint overrides the OTLP endpoint (host:port). Empty means the
	// exporter reads OTEL_EXPORTER_OTLP_* from the environment.
	ExporterEndpoint string `yaml:"exporter_endpoint" koanf:"exporter_endpoint"`

	// Insecure disables TLS for the exporter.
	Insecure bool `yaml:"insecure" koanf:"insecure"`
}
