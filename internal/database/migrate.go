package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite" // "sqlite" driver opened by NewMigrate

	"kumbara/internal/logger"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// NewMigrate creates a migrate instance over the embedded migrations of the
// configured driver. Close it with CloseMigrate.
func NewMigrate(config *Config) (*migrate.Migrate, error) {
	switch config.Driver {
	case DriverSQLite:
		src, err := iofs.New(migrationsFS, "migrations/sqlite")
		if err != nil {
			return nil, fmt.Errorf("create iofs source: %w", err)
		}
		// Separate connection so migrations do not interfere with the GORM pool.
		migrateDB, err := sql.Open("sqlite", config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open migration database: %w", err)
		}
		driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
		if err != nil {
			_ = migrateDB.Close()
			return nil, fmt.Errorf("create sqlite driver: %w", err)
		}
		m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
		if err != nil {
			_ = migrateDB.Close()
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return m, nil

	case DriverPostgres:
		src, err := iofs.New(migrationsFS, "migrations/postgres")
		if err != nil {
			return nil, fmt.Errorf("create iofs source: %w", err)
		}
		m, err := migrate.NewWithSourceInstance("iofs", src, config.MigrationURL())
		if err != nil {
			return nil, fmt.Errorf("failed to create migrate instance: %w", err)
		}
		return m, nil
	}
	return nil, fmt.Errorf("driver %q has no migrations", config.Driver)
}

// CloseMigrate releases a migrate instance, logging close failures.
func CloseMigrate(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}

// IsNoChange reports whether err only signals that nothing was migrated.
func IsNoChange(err error) bool {
	return errors.Is(err, migrate.ErrNoChange)
}
