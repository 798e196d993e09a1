package config

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"

	"kumbara/internal/database"
)

var validEnvs = []string{"development", "production", "test"}

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Logging
	LogLevel string

	// Timezone is the IANA zone transaction dates are displayed in. Empty means UTC.
	Timezone string

	// APIKey guards mutating routes. Empty disables the check.
	APIKey string

	// Storage
	Database *database.Config
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", ""),
		Timezone: getEnv("DISPLAY_TIMEZONE", "Europe/Istanbul"),
		APIKey:   getEnv("API_KEY", ""),
		Database: database.ConfigFromEnv(),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if !slices.Contains(validEnvs, c.Env) {
		problems = append(problems, fmt.Sprintf("invalid environment '%s': must be one of %v", c.Env, validEnvs))
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			problems = append(problems, fmt.Sprintf("invalid display timezone '%s': %v", c.Timezone, err))
		}
	}

	if c.Database == nil {
		problems = append(problems, "database configuration is missing")
	} else {
		problems = append(problems, c.Database.Validate()...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Location returns the display timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
