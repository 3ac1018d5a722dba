package variationdb

// Supported database drivers. Public variation archives are typically
// served from MySQL; postgres is the default for self-hosted mirrors.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

type Config struct {
	Connection Connection
}

type Connection struct {
	Driver   string `yaml:"driver" envconfig:"VARIATION_DB_DRIVER"`
	Host     string `yaml:"host" envconfig:"VARIATION_DB_HOST"`
	Port     string `yaml:"port" envconfig:"VARIATION_DB_PORT"`
	User     string `yaml:"user" envconfig:"VARIATION_DB_USER"`
	Password string `yaml:"password" envconfig:"VARIATION_DB_PASSWORD"`
	DbName   string `yaml:"db_name" envconfig:"VARIATION_DB_NAME"`

	// Postgres only.
	SSLMode string `yaml:"ssl_mode" envconfig:"VARIATION_DB_SSL_MODE"`
}
