package app

import (
	"os"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

// Config holds the complete client configuration, loadable from
// environment variables (STOREFRONT_ prefix), flags, or YAML config files.
type Config struct {
	BaseURL string `default:"http://localhost:4000/api" usage:"Backend API base URL" flag:"base-url"`
	Token   string `usage:"Bearer token for authenticated requests (STOREFRONT_TOKEN)"`

	Customer CustomerConfig
	HTTP     HTTPConfig
}

// CustomerConfig identifies the customer placing orders through this
// client. It mirrors the identity the backend issued at login.
type CustomerConfig struct {
	Name  string `usage:"Customer display name"`
	Email string `usage:"Customer email used for order lookups"`
	Role  string `default:"customer" usage:"Customer role (customer or admin)"`
}

// HTTPConfig controls outbound request behaviour.
type HTTPConfig struct {
	Timeout time.Duration `default:"30s" usage:"Per-request timeout" flag:"http-timeout"`
}

// LoadConfig loads configuration from environment variables, YAML config
// files, and applies platform-specific defaults.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "STOREFRONT",
		Files:     []string{"config.yaml", "/etc/storefront/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.applyPlatformDefaults()

	return &cfg, nil
}

// applyPlatformDefaults maps conventionally named environment variables
// (API_URL, API_TOKEN) onto the STOREFRONT_-prefixed configuration.
func (c *Config) applyPlatformDefaults() {
	if c.BaseURL == "http://localhost:4000/api" {
		if v := os.Getenv("API_URL"); v != "" {
			c.BaseURL = v
		}
	}
	if c.Token == "" {
		if v := os.Getenv("API_TOKEN"); v != "" {
			c.Token = v
		}
	}
}
