package restld

type Config struct {
	// Base URL of the REST LD endpoint, e.g. "https://rest.ensembl.org".
	Endpoint string `yaml:"endpoint" envconfig:"LD_REST_ENDPOINT"`

	// Species path segment. Defaults to "human".
	Species string `yaml:"species" envconfig:"LD_REST_SPECIES"`

	// Request timeout in seconds. Defaults to 30.
	HTTPTimeoutS int `yaml:"http_timeout_s" envconfig:"LD_REST_HTTP_TIMEOUT_S"`
}
