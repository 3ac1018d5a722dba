package metrics

type Config struct {
	// Listen address of the scrape endpoint, e.g. ":9090".
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// Registers the Go runtime, process and build info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`

	// Prefix for all instruments. Defaults to "ldlink".
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// Value of the "service" label applied to every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`
}
