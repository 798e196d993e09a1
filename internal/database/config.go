package database

import (
	"fmt"
	"net/url"
	"os"
	"slices"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var validDrivers = []string{DriverSQLite, DriverPostgres, DriverMemory}

// Config holds database configuration
type Config struct {
	Driver     string
	SQLitePath string

	// PostgreSQL
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ConfigFromEnv reads the database configuration from environment variables.
func ConfigFromEnv() *Config {
	return &Config{
		Driver:     getEnv("STORAGE_DRIVER", DriverSQLite),
		SQLitePath: getEnv("SQLITE_PATH", "./data/kumbara.db"),
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       getEnv("DB_PORT", "5432"),
		User:       getEnv("DB_USER", "kumbara"),
		Password:   getEnv("DB_PASSWORD", "kumbara"),
		DBName:     getEnv("DB_NAME", "kumbara"),
		SSLMode:    getEnv("DB_SSLMODE", "disable"),
	}
}

// Validate returns one message per invalid setting.
func (c *Config) Validate() []string {
	var problems []string

	if !slices.Contains(validDrivers, c.Driver) {
		return append(problems, fmt.Sprintf("invalid storage driver '%s': must be one of %v", c.Driver, validDrivers))
	}

	switch c.Driver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, "SQLite database path cannot be empty when using sqlite driver")
		}
	case DriverPostgres:
		if c.Host == "" {
			problems = append(problems, "DB_HOST cannot be empty when using postgres driver")
		}
		if c.DBName == "" {
			problems = append(problems, "DB_NAME cannot be empty when using postgres driver")
		}
	}
	return problems
}

// DSN returns the PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrationURL returns the PostgreSQL URL golang-migrate connects with.
func (c *Config) MigrationURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
