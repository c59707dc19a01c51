package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

var (
	ErrMissingDSN       = errors.New("POSTGRES_DSN is not set")
	ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type TracingConfig struct {
	Enabled  bool   `env:"OTEL_ENABLED"  envDefault:"true"`
	Endpoint string `env:"OTEL_ENDPOINT"`
}

// ServerConfig configures cmd/api.
type ServerConfig struct {
	PostgresDSN     string        `env:"POSTGRES_DSN"`
	HTTPAddr        string        `env:"HTTP_ADDR"            envDefault:":8080"`
	JWTSecret       string        `env:"JWT_SECRET"`
	JWTIssuer       string        `env:"JWT_ISSUER"`
	LogLevel        string        `env:"LOG_LEVEL"            envDefault:"info"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS"    envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS"    envDefault:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"5s"`

	Tracing TracingConfig
}

// LoadServerConfig reads ServerConfig and checks the settings the API cannot
// start without.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	cfg.PostgresDSN = strings.TrimSpace(cfg.PostgresDSN)
	if cfg.PostgresDSN == "" {
		return ServerConfig{}, ErrMissingDSN
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return ServerConfig{}, ErrMissingJWTSecret
	}
	return cfg, nil
}

// DashboardConfig configures cmd/dashboard.
type DashboardConfig struct {
	APIBaseURL  string        `env:"DASHBOARD_API_BASE_URL" envDefault:"http://localhost:8080"`
	APIToken    string        `env:"DASHBOARD_API_TOKEN"`
	HTTPTimeout time.Duration `env:"DASHBOARD_HTTP_TIMEOUT" envDefault:"0s"`
	LogFile     string        `env:"DASHBOARD_LOG_FILE"     envDefault:"dashboard.log"`
	LogLevel    string        `env:"LOG_LEVEL"              envDefault:"info"`

	Tracing TracingConfig
}

func LoadDashboardConfig() (DashboardConfig, error) {
	var cfg DashboardConfig
	if err := ParseEnv(&cfg); err != nil {
		return DashboardConfig{}, err
	}
	cfg.APIBaseURL = strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/")
	return cfg, nil
}
