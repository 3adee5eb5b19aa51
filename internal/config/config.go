package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort      string        `env:"SERVER_PORT" envDefault:"8000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:8501"`

	// Store configuration
	StoreDriver  string        `env:"STORE_DRIVER" envDefault:"postgres"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"5s"`

	// PostgreSQL configuration
	DBHost              string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort              int           `env:"DB_PORT" envDefault:"5432"`
	DBUser              string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword          string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName              string        `env:"DB_NAME" envDefault:"scottlms"`
	DBSSLMode           string        `env:"DB_SSL_MODE" envDefault:"disable"`
	DBMaxConns          int32         `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	MigrationsPath      string        `env:"MIGRATIONS_PATH" envDefault:"migrations"`
	AutoMigrate         bool          `env:"AUTO_MIGRATE" envDefault:"true"`

	// MongoDB configuration
	MongoURL      string `env:"MONGODB_URL" envDefault:"mongodb://localhost:27017"`
	MongoDatabase string `env:"MONGODB_DATABASE" envDefault:"scottlms"`

	// Rate limiting, requests per minute per client and method
	RedisURL         string `env:"REDIS_URL"`
	RateLimitEnabled bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RateLimitGet     int    `env:"RATE_LIMIT_GET" envDefault:"200"`
	RateLimitPost    int    `env:"RATE_LIMIT_POST" envDefault:"50"`
	RateLimitPut     int    `env:"RATE_LIMIT_PUT" envDefault:"50"`
	RateLimitDelete  int    `env:"RATE_LIMIT_DELETE" envDefault:"20"`

	// Enrollment events
	RabbitMQURL string `env:"RABBITMQ_URL"`
	EventsQueue string `env:"EVENTS_QUEUE" envDefault:"enrollment.events"`

	// Counter reconciliation
	ReconcileSchedule string `env:"RECONCILE_SCHEDULE" envDefault:"@every 10m"`

	// Error reporting
	SentryDSN string `env:"SENTRY_DSN"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables.
// A .env file in the working directory is read first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	switch c.StoreDriver {
	case StoreDriverPostgres:
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USER is required")
		}
		if c.DBName == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case StoreDriverMongo:
		if c.MongoURL == "" {
			return fmt.Errorf("MONGODB_URL is required")
		}
		if c.MongoDatabase == "" {
			return fmt.Errorf("MONGODB_DATABASE is required")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreDriverPostgres, StoreDriverMongo, c.StoreDriver)
	}
	if c.StoreTimeout <= 0 {
		return fmt.Errorf("STORE_TIMEOUT must be positive")
	}
	for name, limit := range map[string]int{
		"RATE_LIMIT_GET":    c.RateLimitGet,
		"RATE_LIMIT_POST":   c.RateLimitPost,
		"RATE_LIMIT_PUT":    c.RateLimitPut,
		"RATE_LIMIT_DELETE": c.RateLimitDelete,
	} {
		if limit < 1 {
			return fmt.Errorf("%s must be at least 1", name)
		}
	}
	return nil
}

// PostgresDSN builds the connection string used by golang-migrate.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
