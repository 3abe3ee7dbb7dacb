package store

import (
	"booky/internal/config"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"path"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// MigrationsDir is the embedded migration directory for a driver.
func MigrationsDir(driver string) string {
	return path.Join("migrations", driver)
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case config.DriverPostgres:
		return "postgres", nil
	case config.DriverSQLite:
		return "sqlite3", nil
	}
	return "", fmt.Errorf("migrate: unknown driver %q", driver)
}

// UseEmbeddedMigrations points goose at the embedded migrations for driver.
func UseEmbeddedMigrations(driver string) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())
	return goose.SetDialect(dialect)
}

// MigrateUp applies every pending migration.
func MigrateUp(ctx context.Context, db *sql.DB, driver string) error {
	if err := UseEmbeddedMigrations(driver); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, MigrationsDir(driver)); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Migrate brings the store's schema up to date.
func (s *Store) Migrate(ctx context.Context) error {
	return MigrateUp(ctx, s.sqlDB, s.driver)
}
