// internal/config/config.go
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Name        string `yaml:"name" env:"APP_NAME" envDefault:"basketbot-admin"`
	Environment string `yaml:"environment" env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `yaml:"port" env:"PORT" envDefault:"8080"`
	// PublicBaseURL enables direct (non-proxied) browser calls to /api
	// from that origin; empty disables CORS entirely.
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
}

type BackendConfig struct {
	// Origin of the bot backend; both the typed client and the /api
	// passthrough point at it.
	Origin  string        `yaml:"origin" env:"BACKEND_ORIGIN" envDefault:"http://localhost:8095"`
	Timeout time.Duration `yaml:"timeout" env:"BACKEND_TIMEOUT" envDefault:"15s"`
}

type Config struct {
	App             AppConfig     `yaml:"app"`
	Backend         BackendConfig `yaml:"backend"`
	TrustProxy      bool          `yaml:"trust_proxy" env:"TRUST_PROXY"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Load reads the optional YAML file, then .env, then overlays process
// environment on top. Environment always wins.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("error parsing config file: %w", err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("app port %d out of range", c.App.Port)
	}
	u, err := url.Parse(c.Backend.Origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend origin %q is not an absolute URL", c.Backend.Origin)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend timeout must be positive")
	}
	return nil
}
