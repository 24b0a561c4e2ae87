package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ServerConfig holds the HTTP server settings, loaded from the environment.
type ServerConfig struct {
	// ListenAddr is the address the API server binds to.
	ListenAddr string `env:"CC_LISTEN_ADDR" envDefault:":8080"`
	// AllowedOrigins are the CORS origins permitted to call the API.
	AllowedOrigins []string `env:"CC_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:8080"`
	// DefaultLocale is used when a request carries no locale preference.
	DefaultLocale string `env:"CC_DEFAULT_LOCALE" envDefault:"en-US"`
}

// LoadServerConfig parses the server configuration from environment variables.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := env.Parse(&cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
