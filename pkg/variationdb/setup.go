package variationdb

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Logger defines the interface for logging operations within the
// variationdb package.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=variationdb
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Store implements the annotator's collaborator interfaces on top of a
// relational variation database via GORM. The plugin contract is
// synchronous and single-threaded, so the store carries no background
// reconnection machinery: a lost connection surfaces as a per-call
// error for the host pipeline to handle.
type Store struct {
	client *gorm.DB
	cfg    Config
	logger Logger
}

// NewStore opens the variation database connection described by cfg and
// verifies it with a bounded ping.
func NewStore(cfg Config, logger Logger) (*Store, error) {
	client, err := connect(cfg)
	if err != nil {
		return nil, err
	}

	db, err := client.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get variation database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("variation database ping failed: %w", err)
	}

	logger.Info("connected to variation database", nil, map[string]interface{}{
		"driver": cfg.Connection.Driver,
		"db":     cfg.Connection.DbName,
	})

	return &Store{client: client, cfg: cfg, logger: logger}, nil
}

func connect(cfg Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Connection.Driver {
	case DriverMySQL:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Connection.User,
			cfg.Connection.Password,
			cfg.Connection.Host,
			cfg.Connection.Port,
			cfg.Connection.DbName)
		dialector = mysql.Open(dsn)
	case DriverPostgres, "":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Connection.Host,
			cfg.Connection.Port,
			cfg.Connection.User,
			cfg.Connection.Password,
			cfg.Connection.DbName,
			cfg.Connection.SSLMode)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported variation database driver %q", cfg.Connection.Driver)
	}

	client, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to variation database: %w", err)
	}

	return client, nil
}

// DB exposes the underlying GORM handle for advanced use.
func (s *Store) DB() *gorm.DB {
	return s.client
}

// GracefulShutdown closes the underlying connection.
func (s *Store) GracefulShutdown() error {
	db, err := s.client.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
