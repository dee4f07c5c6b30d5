package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config defines all environment-driven runtime options.
type Config struct {
	ClientID     string `env:"AC_CLIENT_ID"`
	ClientSecret string `env:"AC_CLIENT_SECRET"`
	Username     string `env:"AC_USERNAME"`
	Password     string `env:"AC_PASSWORD"`

	IdentityURL string `env:"AC_IDENTITY_URL" envDefault:"https://autocare-identity.autocare.org/connect/token"`
	CatalogURL  string `env:"AC_CATALOG_URL" envDefault:"https://common.autocarevip.com/api/v1.0"`
	DataHost    string `env:"AC_DATA_HOST" envDefault:"autocarevip.com"`
	APIVersion  string `env:"AC_API_VERSION" envDefault:"v1.0"`

	DataDir   string `env:"AC_DATA_DIR" envDefault:"./data"`
	OutputDir string `env:"AC_OUTPUT_DIR" envDefault:"."`
	LogLevel  string `env:"AC_LOG_LEVEL" envDefault:"info"`

	HTTPTimeout           time.Duration `env:"AC_HTTP_TIMEOUT" envDefault:"30s"`
	InsecureSkipTLSVerify bool          `env:"AC_INSECURE_SKIP_TLS_VERIFY" envDefault:"false"`
	MaxPages              int           `env:"AC_MAX_PAGES" envDefault:"10000"`
}

// Load reads .env (if present) and parses environment variables into Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	return cfg, nil
}

// TokenFile returns the path of the persisted token record.
func (c *Config) TokenFile() string {
	return filepath.Join(c.DataDir, "token.json")
}
