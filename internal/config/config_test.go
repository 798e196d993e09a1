package config

import (
	"strings"
	"testing"
	"time"

	"kumbara/internal/database"
)

func validConfig() *Config {
	return &Config{
		Port: "8080",
		Env:  "development",
		Database: &database.Config{
			Driver:     database.DriverSQLite,
			SQLitePath: "./data/kumbara.db",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		errorString string
	}{
		{"valid", func(c *Config) {}, ""},
		{"invalid_timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "invalid display timezone"},
		{"memory_driver", func(c *Config) { c.Database = &database.Config{Driver: database.DriverMemory} }, ""},
		{"non_numeric_port", func(c *Config) { c.Port = "http" }, "invalid port 'http'"},
		{"port_out_of_range", func(c *Config) { c.Port = "70000" }, "invalid port 70000"},
		{"unknown_env", func(c *Config) { c.Env = "staging" }, "invalid environment 'staging'"},
		{"unknown_log_level", func(c *Config) { c.LogLevel = "verbose" }, "invalid log level 'verbose'"},
		{"unknown_driver", func(c *Config) { c.Database.Driver = "mysql" }, "invalid storage driver 'mysql'"},
		{"missing_sqlite_path", func(c *Config) { c.Database.SQLitePath = "" }, "SQLite database path cannot be empty"},
		{"postgres_without_host", func(c *Config) {
			c.Database = &database.Config{Driver: database.DriverPostgres, DBName: "kumbara"}
		}, "DB_HOST"},
		{"missing_database", func(c *Config) { c.Database = nil }, "database configuration is missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errorString == "" {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Config.Validate() error = nil, want error containing %q", tt.errorString)
			}
			if !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Config.Validate() error = %v, want error containing %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "0"
	cfg.Env = "qa"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "invalid port 0") || !strings.Contains(err.Error(), "invalid environment 'qa'") {
		t.Errorf("expected both problems reported, got %v", err)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "test")
	t.Setenv("API_KEY", "secret")
	t.Setenv("STORAGE_DRIVER", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.Env != "test" || cfg.APIKey != "secret" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Database.Driver != database.DriverMemory {
		t.Errorf("expected memory driver, got %s", cfg.Database.Driver)
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	t.Setenv("STORAGE_DRIVER", "memory")

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestConfig_Location(t *testing.T) {
	cfg := validConfig()
	if cfg.Location() != time.UTC {
		t.Errorf("expected UTC for empty timezone, got %s", cfg.Location())
	}

	cfg.Timezone = "Europe/Istanbul"
	if got := cfg.Location().String(); got != "Europe/Istanbul" {
		t.Errorf("expected Europe/Istanbul, got %s", got)
	}
}
