package config

import (
	"fmt"
	"os"
)

// Config holds all service configuration, loaded once at startup.
type Config struct {
	// Server
	Host string
	Port string

	// Stats store
	DatabaseDriver string // "mysql" or "sqlite"
	DatabaseURL    string // DSN for mysql, file path for sqlite
	DatabaseAPIKey string // managed-store credential, injected as connection password

	// Remote creature API
	PokeAPIURL string

	// Images
	ImageDir     string
	ImageBaseURL string

	// Logging
	LogDir string
}

// Load reads configuration from the environment. DATABASE_URL and
// DATABASE_API_KEY have no default: the service must refuse to start
// without them rather than fail on the first query.
func Load() (*Config, error) {
	cfg := &Config{
		Host:           envOrDefault("HOST", "0.0.0.0"),
		Port:           envOrDefault("PORT", "8000"),
		DatabaseDriver: envOrDefault("DATABASE_DRIVER", "mysql"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabaseAPIKey: os.Getenv("DATABASE_API_KEY"),
		PokeAPIURL:     envOrDefault("POKEAPI_URL", "https://pokeapi.co/api/v2"),
		ImageDir:       envOrDefault("IMAGE_DIR", "static/images"),
		ImageBaseURL:   envOrDefault("IMAGE_BASE_URL", "http://localhost:8000"),
		LogDir:         envOrDefault("LOG_DIR", "logs"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("config: DATABASE_URL must be set")
	}
	if cfg.DatabaseAPIKey == "" {
		return nil, fmt.Errorf("config: DATABASE_API_KEY must be set")
	}
	if cfg.DatabaseDriver != "mysql" && cfg.DatabaseDriver != "sqlite" {
		return nil, fmt.Errorf("config: unknown DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
