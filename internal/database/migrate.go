package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

// ErrNoAppliedMigrations is returned by MigrationVersion when the schema has
// no migration history yet.
var ErrNoAppliedMigrations = errors.New("no migrations applied yet")

// migrationSourceURL converts a migrations directory path into a
// file:// source URL for golang-migrate
func migrationSourceURL(migrationsPath string) string {
	return fmt.Sprintf("file://%s", migrationsPath)
}

func newPathMigrator(databaseURL, migrationsPath string) (*migrate.Migrate, error) {
	m, err := migrate.New(migrationSourceURL(migrationsPath), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return m, nil
}

// RunMigrations runs all pending migrations using embedded files
func RunMigrations(databaseURL string, migrationsFS embed.FS, migrationsPath string) error {
	d, err := iofs.New(migrationsFS, migrationsPath)
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if err == migrate.ErrNilVersion {
		log.Info().Msg("No migrations applied yet")
	} else {
		log.Info().
			Uint("version", version).
			Bool("dirty", dirty).
			Msg("Database migration completed")
	}

	return nil
}

// RunMigrationsFromPath applies pending migrations from a file path. With
// steps > 0 only that many migrations run.
func RunMigrationsFromPath(databaseURL, migrationsPath string, steps int) error {
	m, err := newPathMigrator(databaseURL, migrationsPath)
	if err != nil {
		return err
	}
	defer m.Close()

	if steps > 0 {
		err = m.Steps(steps)
	} else {
		err = m.Up()
	}
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	log.Info().
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Database migration completed")

	return nil
}

// RollbackMigrations reverts migrations from a file path. With steps > 0 only
// that many migrations revert; otherwise everything rolls back.
func RollbackMigrations(databaseURL, migrationsPath string, steps int) error {
	m, err := newPathMigrator(databaseURL, migrationsPath)
	if err != nil {
		return err
	}
	defer m.Close()

	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to revert migrations: %w", err)
	}
	return nil
}

// ForceMigrationVersion overrides the recorded schema version without running
// any migration, clearing a dirty state.
func ForceMigrationVersion(databaseURL, migrationsPath string, version int) error {
	m, err := newPathMigrator(databaseURL, migrationsPath)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Force(version)
}

// MigrationVersion reports the current schema version and dirty flag.
// Returns ErrNoAppliedMigrations when the history is empty.
func MigrationVersion(databaseURL, migrationsPath string) (uint, bool, error) {
	m, err := newPathMigrator(databaseURL, migrationsPath)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, ErrNoAppliedMigrations
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get migration version: %w", err)
	}
	return version, dirty, nil
}

// DropSchema drops everything in the database. Destructive; only reachable
// through the migration CLI.
func DropSchema(databaseURL, migrationsPath string) error {
	m, err := newPathMigrator(databaseURL, migrationsPath)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Drop()
}
