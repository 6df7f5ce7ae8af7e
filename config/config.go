package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the server configuration, loaded from environment variables
// (main loads a .env file first when one is present).
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// DatabaseURL empty means run on the in-memory store.
	DatabaseURL string `env:"DATABASE_URL"`

	JWTSecret         string `env:"JWT_SECRET"`
	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
}

// ConsoleConfig configures the admin console client.
type ConsoleConfig struct {
	BackendURL string `env:"BACKEND_ENDPOINT" envDefault:"http://localhost:8080"`

	// TokenPath is where the session token persists between runs.
	TokenPath string `env:"TOKEN_PATH" envDefault:".medha-token"`

	// TechnicalEvents drives the grouping transform; everything outside
	// the list renders and exports as cultural.
	TechnicalEvents []string `env:"TECHNICAL_EVENTS" envSeparator:","`
}

// ConsoleFromEnv loads the console configuration.
func ConsoleFromEnv() (ConsoleConfig, error) {
	var c ConsoleConfig
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

func FromEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}

	if c.JWTSecret == "" {
		return c, fmt.Errorf("JWT_SECRET is empty")
	}
	if c.AdminPasswordHash == "" {
		return c, fmt.Errorf("ADMIN_PASSWORD_HASH is empty")
	}

	return c, nil
}
