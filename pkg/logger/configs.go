package logger

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

type Config struct {
	// Unknown values fall back to INFO.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`
}
