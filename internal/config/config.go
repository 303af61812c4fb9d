// Package config reads environment-driven configuration once at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment is the deployment environment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
	Testing     Environment = "testing"
)

// Config holds all runtime settings. It is built once in main and passed
// explicitly to the components that need it.
type Config struct {
	DatabaseURL string
	ServerHost  string
	ServerPort  int
	LogLevel    string
	Environment Environment
}

// Load reads configuration from environment variables. DATABASE_URL is
// required; everything else has a default.
func Load() (Config, error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL must be set")
	}

	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = "127.0.0.1"
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return Config{}, fmt.Errorf("SERVER_PORT must be a valid number: %w", err)
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "debug"
	}

	var env Environment
	switch os.Getenv("ENVIRONMENT") {
	case "production":
		env = Production
	case "testing":
		env = Testing
	default:
		env = Development
	}

	return Config{
		DatabaseURL: dbURL,
		ServerHost:  host,
		ServerPort:  port,
		LogLevel:    logLevel,
		Environment: env,
	}, nil
}

// Addr returns the host:port the HTTP server binds to.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// IsProduction reports whether the process runs in production.
func (c Config) IsProduction() bool {
	return c.Environment == Production
}
