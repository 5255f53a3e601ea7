package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls how the logger is built.
type Config struct {
	// Level is one of debug, info, warning, error. Anything else means info.
	Level string `yaml:"level" koanf:"level"`

	// EnableTracing adds trace_id and span_id to entries logged through the
	// *WithContext methods when the context carries an active span.
	EnableTracing bool `yaml:"enable_tracing" koanf:"enable_tracing"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" koanf:"service_name"`
}
