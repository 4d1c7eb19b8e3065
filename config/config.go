package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig

	// Upstream APIs
	Geocoder GeocoderConfig
	Weather  WeatherConfig
	Mailer   MailerConfig

	// Digest batch job
	Digest DigestConfig

	// Unsubscribe token signing
	Unsubscribe UnsubscribeConfig

	// Monitoring & error reporting
	Discord DiscordConfig
}

// ServerConfig is the configuration for the HTTP server.
type ServerConfig struct {
	Host string `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"SERVER_PORT" envDefault:"8080"`
	Mode string `env:"SERVER_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger.
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for PostgreSQL.
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"frostwatch"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// GeocoderConfig is the configuration for the ZIP geocoding service.
type GeocoderConfig struct {
	BaseURL string        `env:"GEOCODER_BASE_URL" envDefault:"https://api.zippopotam.us"`
	Timeout time.Duration `env:"GEOCODER_TIMEOUT" envDefault:"10s"`
}

// WeatherConfig is the configuration for the NWS API client.
type WeatherConfig struct {
	BaseURL   string        `env:"NWS_BASE_URL" envDefault:"https://api.weather.gov"`
	UserAgent string        `env:"NWS_USER_AGENT" envDefault:"frostwatch-srv (frost alert digest; contact: ops@frostwatch.app)"`
	Timeout   time.Duration `env:"NWS_TIMEOUT" envDefault:"15s"`
}

// MailerConfig is the configuration for the transactional email API.
type MailerConfig struct {
	APIKey    string        `env:"SENDGRID_API_KEY"`
	BaseURL   string        `env:"SENDGRID_BASE_URL" envDefault:"https://api.sendgrid.com"`
	Timeout   time.Duration `env:"SENDGRID_TIMEOUT" envDefault:"30s"`
	FromEmail string        `env:"MAIL_FROM_EMAIL" envDefault:"alerts@frostwatch.app"`
	FromName  string        `env:"MAIL_FROM_NAME" envDefault:"Frostwatch"`
}

// DigestConfig is the configuration for the daily digest batch job.
type DigestConfig struct {
	// SendInterval paces outbound sends; one subscriber is processed per interval.
	SendInterval time.Duration `env:"DIGEST_SEND_INTERVAL" envDefault:"1s"`
	// PublicBaseURL is the externally reachable site URL used in unsubscribe links.
	PublicBaseURL string `env:"DIGEST_PUBLIC_BASE_URL" envDefault:"https://frostwatch.app"`
}

// UnsubscribeConfig is the configuration for unsubscribe token signing.
type UnsubscribeConfig struct {
	SecretKey string        `env:"UNSUB_SECRET_KEY"`
	TTL       time.Duration `env:"UNSUB_TOKEN_TTL" envDefault:"2160h"`
}

// DiscordConfig is the configuration for Discord webhook error reporting.
type DiscordConfig struct {
	WebhookURL string `env:"DISCORD_WEBHOOK_URL"`
}

// Load loads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Mailer.APIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is required")
	}
	if cfg.Unsubscribe.SecretKey == "" {
		return fmt.Errorf("UNSUB_SECRET_KEY is required")
	}
	if len(cfg.Unsubscribe.SecretKey) < 32 {
		return fmt.Errorf("UNSUB_SECRET_KEY must be at least 32 characters")
	}
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("POSTGRES_HOST is required")
	}
	return nil
}
