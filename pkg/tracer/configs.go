package tracer

type Config struct {
	// Service name attached to exported spans. Defaults to "ldlink".
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// Deployment environment tag, e.g. "production".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// When false, spans are created but never exported. The OTLP/HTTP
	// exporter endpoint is taken from the standard OTEL_* environment
	// variables.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}
