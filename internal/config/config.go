package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/spec-kit/newsletter-service/internal/domain"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Email    EmailConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `env:"APP_NAME" envDefault:"newsletter-service"`
	Env                   string `env:"APP_ENV" envDefault:"development"`
	Host                  string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port                  string `env:"APP_PORT" envDefault:"8080"`
	Version               string `env:"APP_VERSION" envDefault:"dev"`
	BaseURL               string `env:"APP_BASE_URL" envDefault:"http://127.0.0.1:8080"`
	RequestTimeoutSeconds int    `env:"HTTP_REQUEST_TIMEOUT_SECONDS" envDefault:"30"`
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string `env:"POSTGRES_DSN,required,notEmpty"`
	MaxConns       int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConns       int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
	RunMigrations  bool   `env:"POSTGRES_RUN_MIGRATIONS" envDefault:"true"`
	MigrationsDir  string `env:"POSTGRES_MIGRATIONS_DIR" envDefault:"migrations"`
	ConnMaxIdleSec int32  `env:"POSTGRES_CONN_MAX_IDLE_SECONDS" envDefault:"30"`
	ConnMaxLifeSec int32  `env:"POSTGRES_CONN_MAX_LIFE_SECONDS" envDefault:"300"`
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// EmailConfig configures the confirmation email transport. SES is used only
// when both access keys are set.
type EmailConfig struct {
	Sender              string `env:"EMAIL_SENDER" envDefault:"newsletter@example.com"`
	SESRegion           string `env:"EMAIL_SES_REGION" envDefault:"us-east-1"`
	SESAccessKeyID      string `env:"EMAIL_SES_ACCESS_KEY_ID"`
	SESSecretAccessKey  string `env:"EMAIL_SES_SECRET_ACCESS_KEY"`
	SESEndpoint         string `env:"EMAIL_SES_ENDPOINT"`
	TimeoutMilliseconds int    `env:"EMAIL_TIMEOUT_MILLISECONDS" envDefault:"10000"`
}

// Load reads configuration from the environment (and an optional .env file).
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.App.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid APP_BASE_URL %q", c.App.BaseURL)
	}
	if _, err := domain.ParseSubscriberEmail(c.Email.Sender); err != nil {
		return fmt.Errorf("invalid EMAIL_SENDER: %w", err)
	}
	if c.Email.SESEnabled() && c.Email.SESRegion == "" {
		return errors.New("EMAIL_SES_REGION required when SES credentials are set")
	}
	return nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// SESEnabled reports whether SES credentials are configured.
func (e EmailConfig) SESEnabled() bool {
	return e.SESAccessKeyID != "" && e.SESSecretAccessKey != ""
}

// Timeout bounds a single send.
func (e EmailConfig) Timeout() time.Duration {
	if e.TimeoutMilliseconds <= 0 {
		return 0
	}
	return time.Duration(e.TimeoutMilliseconds) * time.Millisecond
}
