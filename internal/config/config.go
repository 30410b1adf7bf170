// Package config provides configuration loading and validation for the API server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the settings the HTTP server needs to start. All values
// come from environment variables; Load applies defaults where one exists.
type ServerConfig struct {
	Port        int    // HTTP listen port
	DatabaseURL string // PostgreSQL connection URL
	CORSOrigin  string // Access-Control-Allow-Origin value
}

// LoadServerConfig creates a server configuration from environment variables.
// It reads DATABASE_URL (required), PORT (default: 8080) and CORS_ORIGIN
// (default: *).
func LoadServerConfig() (*ServerConfig, error) {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // default
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "*"
	}

	config := &ServerConfig{
		Port:        port,
		DatabaseURL: databaseURL,
		CORSOrigin:  origin,
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
