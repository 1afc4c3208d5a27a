package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/seralin/creatorlink/internal/config"
	"github.com/seralin/creatorlink/internal/database"
)

// Schema management CLI for the profiles catalog. The database URL comes from
// the same configuration the API server loads, so both binaries always point
// at the same database.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var (
		command       string
		steps         int
		migrationsDir string
	)

	flag.StringVar(&command, "command", "up", "Schema command: up, down, force, version, drop")
	flag.IntVar(&steps, "steps", 0, "Number of migrations to apply or revert (0 = all; version number for force)")
	flag.StringVar(&migrationsDir, "dir", "migrations", "Path to the migrations directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve migrations directory")
	}

	log.Info().
		Str("dir", absPath).
		Str("command", command).
		Int("steps", steps).
		Msg("Running schema command")

	switch command {
	case "up":
		err = database.RunMigrationsFromPath(cfg.Database.URL, absPath, steps)
	case "down":
		err = database.RollbackMigrations(cfg.Database.URL, absPath, steps)
	case "force":
		if steps == 0 {
			log.Fatal().Msg("Force requires -steps with the target version number")
		}
		err = database.ForceMigrationVersion(cfg.Database.URL, absPath, steps)
	case "version":
		version, dirty, verr := database.MigrationVersion(cfg.Database.URL, absPath)
		if errors.Is(verr, database.ErrNoAppliedMigrations) {
			log.Info().Msg("No migrations have been applied yet")
			return
		}
		if verr != nil {
			log.Fatal().Err(verr).Msg("Failed to read schema version")
		}
		log.Info().
			Uint("version", version).
			Bool("dirty", dirty).
			Msg("Current schema version")
		return
	case "drop":
		err = database.DropSchema(cfg.Database.URL, absPath)
	default:
		log.Fatal().Str("command", command).Msg("Unknown schema command")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("Schema command failed")
	}

	log.Info().Msg("Schema command completed")
}
