package main

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/sbilibin2017/gw-expense-tracker/internal/tokens"
)

// Config holds the runtime configuration of the service.
type Config struct {
	// Application
	AppHost      string `envconfig:"APP_HOST" default:"localhost"`
	AppPort      string `envconfig:"APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"APP_LOG_LEVEL" default:"info"`
	PublicURL    string `envconfig:"APP_PUBLIC_URL" default:"http://localhost:8080"`
	Production   bool   `envconfig:"APP_PRODUCTION" default:"false"`
	GRPCPort     string `envconfig:"GRPC_PORT" default:"50051"`
	GotenbergURL string `envconfig:"GOTENBERG_URL" default:""`

	// PostgreSQL
	PGHost         string `envconfig:"POSTGRES_HOST" default:"localhost"`
	PGPort         int    `envconfig:"POSTGRES_PORT" default:"5432"`
	PGUser         string `envconfig:"POSTGRES_USER" default:"user"`
	PGPassword     string `envconfig:"POSTGRES_PASSWORD" default:"password"`
	PGDB           string `envconfig:"POSTGRES_DB" default:"database"`
	PGMaxOpenConns int    `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"16"`
	PGMaxIdleConns int    `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"8"`

	// Redis
	RedisHost         string        `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort         int           `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB           int           `envconfig:"REDIS_DB" default:"0"`
	RedisPassword     string        `envconfig:"REDIS_PASSWORD" default:""`
	RedisPoolSize     int           `envconfig:"REDIS_POOL_SIZE" default:"10"`
	RedisMinIdleConns int           `envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
	CategoryCacheTTL  time.Duration `envconfig:"CATEGORY_CACHE_TTL" default:"10m"`

	// Kafka. No brokers disables ledger events.
	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:""`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"ledger-events"`

	// Sessions and tokens
	SessionSecret string        `envconfig:"SESSION_SECRET" default:"my_super_secret_key"`
	SessionTTL    time.Duration `envconfig:"SESSION_TTL" default:"336h"`
	SecureCookies bool          `envconfig:"SECURE_COOKIES" default:"false"`
	TokenSecret   string        `envconfig:"TOKEN_SECRET" default:"my_token_secret_key"`
	ResetTokenTTL time.Duration `envconfig:"RESET_TOKEN_TTL" default:"24h"`

	// Mail. An empty SMTP host writes mail to the log.
	SMTPHost      string `envconfig:"SMTP_HOST" default:""`
	SMTPPort      int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUsername  string `envconfig:"SMTP_USERNAME" default:""`
	SMTPPassword  string `envconfig:"SMTP_PASSWORD" default:""`
	SMTPFrom      string `envconfig:"SMTP_FROM" default:"noreply@semycolon.com"`
	MailWorkers   int    `envconfig:"MAIL_WORKERS" default:"4"`
	MailQueueSize int    `envconfig:"MAIL_QUEUE_SIZE" default:"100"`
}

// parseConfig loads environment variables from the file at path, when present,
// and fills a Config from the environment.
func parseConfig(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if cfg.ResetTokenTTL < tokens.MinTTL {
		return nil, fmt.Errorf("RESET_TOKEN_TTL must be at least %s, got %s", tokens.MinTTL, cfg.ResetTokenTTL)
	}
	return &cfg, nil
}

// PostgresDSN returns the connection string for the configured database.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns the address the HTTP server listens on.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}
