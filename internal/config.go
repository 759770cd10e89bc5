package internal

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server        ServerConfig        `mapstructure:"http_server"`
	PublicAuth    BackendConfig       `mapstructure:"public_auth"`
	Connector     BackendConfig       `mapstructure:"connector"`
	Ledger        BackendConfig       `mapstructure:"ledger"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	BaseURL           string        `mapstructure:"base_url"`
	AllowedOrigins    string        `mapstructure:"allowed_origins"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
}

// BackendConfig describes one downstream collaborator. Timeout bounds the
// whole request; there are no retries at this layer.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ObservabilityConfig struct {
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfigFromEnv builds configuration purely from environment variables,
// used for container deployments where no config file is mounted.
func LoadConfigFromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:              envInt("HTTP_PORT", 8080),
			BaseURL:           os.Getenv("BASE_URL"),
			AllowedOrigins:    os.Getenv("ALLOWED_ORIGINS"),
			ReadHeaderTimeout: envDuration("READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       envDuration("READ_TIMEOUT", 15*time.Second),
			IdleTimeout:       envDuration("IDLE_TIMEOUT", 60*time.Second),
			WriteTimeout:      envDuration("WRITE_TIMEOUT", 15*time.Second),
		},
		PublicAuth: BackendConfig{
			BaseURL: os.Getenv("PUBLIC_AUTH_URL"),
			Timeout: envDuration("PUBLIC_AUTH_TIMEOUT", 5*time.Second),
		},
		Connector: BackendConfig{
			BaseURL: os.Getenv("CONNECTOR_URL"),
			Timeout: envDuration("CONNECTOR_TIMEOUT", 10*time.Second),
		},
		Ledger: BackendConfig{
			BaseURL: os.Getenv("LEDGER_URL"),
			Timeout: envDuration("LEDGER_TIMEOUT", 10*time.Second),
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: os.Getenv("METRICS_ENABLED") == "true",
				Path:    envString("METRICS_PATH", "/metrics"),
			},
			Logging: LoggingConfig{
				Level:  envString("LOG_LEVEL", "info"),
				Format: envString("LOG_FORMAT", "json"),
			},
		},
	}
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.BaseURL == "" {
		return errors.New("base_url is required")
	}
	for name, backend := range map[string]BackendConfig{
		"public_auth": c.PublicAuth,
		"connector":   c.Connector,
		"ledger":      c.Ledger,
	} {
		if backend.BaseURL == "" {
			return fmt.Errorf("%s base_url is required", name)
		}
		if _, err := url.ParseRequestURI(backend.BaseURL); err != nil {
			return fmt.Errorf("%s base_url is not a valid URL: %w", name, err)
		}
		if backend.Timeout <= 0 {
			return fmt.Errorf("%s timeout must be positive", name)
		}
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
