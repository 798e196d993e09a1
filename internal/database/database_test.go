package database

import (
	"path/filepath"
	"strings"
	"testing"

	"kumbara/internal/logger"
	"kumbara/internal/storage"
)

func init() {
	logger.Init("test", "")
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: "5433", User: "u", Password: "p@ss", DBName: "kumbara", SSLMode: "require"}

	if got := cfg.DSN(); got != "host=db port=5433 user=u password=p@ss dbname=kumbara sslmode=require" {
		t.Errorf("unexpected DSN: %s", got)
	}
	if got := cfg.MigrationURL(); got != "postgres://u:p%40ss@db:5433/kumbara?sslmode=require" {
		t.Errorf("unexpected migration URL: %s", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		problem string
	}{
		{"sqlite", Config{Driver: DriverSQLite, SQLitePath: "x.db"}, ""},
		{"memory", Config{Driver: DriverMemory}, ""},
		{"postgres", Config{Driver: DriverPostgres, Host: "localhost", DBName: "kumbara"}, ""},
		{"unknown", Config{Driver: "bolt"}, "invalid storage driver"},
		{"sqlite_without_path", Config{Driver: DriverSQLite}, "SQLite database path"},
		{"postgres_without_name", Config{Driver: DriverPostgres, Host: "localhost"}, "DB_NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.cfg.Validate()
			if tt.problem == "" {
				if len(problems) != 0 {
					t.Errorf("expected no problems, got %v", problems)
				}
				return
			}
			if len(problems) == 0 || !strings.Contains(strings.Join(problems, "; "), tt.problem) {
				t.Errorf("expected problem containing %q, got %v", tt.problem, problems)
			}
		})
	}
}

func TestOpenStore_Memory(t *testing.T) {
	kv, closeFn, err := OpenStore(&Config{Driver: DriverMemory})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeFn()

	if _, ok := kv.(*storage.MemoryStore); !ok {
		t.Errorf("expected *storage.MemoryStore, got %T", kv)
	}
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := &Config{Driver: DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "nested", "kumbara.db")}

	kv, closeFn, err := OpenStore(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := kv.Set("monthlyBudgetData", "{}"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := closeFn(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	// Reopening runs migrations again as a no-op and sees the stored value.
	kv, closeFn, err = OpenStore(cfg)
	if err != nil {
		t.Fatalf("unexpected error on reopen: %v", err)
	}
	defer closeFn()

	v, ok, err := kv.Get("monthlyBudgetData")
	if err != nil || !ok || v != "{}" {
		t.Errorf("expected persisted value, got %q ok=%v err=%v", v, ok, err)
	}
}

func TestNewMigrate_UnsupportedDriver(t *testing.T) {
	if _, err := NewMigrate(&Config{Driver: DriverMemory}); err == nil {
		t.Error("expected error for memory driver")
	}
}
