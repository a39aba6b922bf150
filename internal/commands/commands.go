// Package commands implements the subcommands of the backend binary.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/subcommands"
	"github.com/homeledger/backend/internal/config"
	"github.com/homeledger/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Commands are all subcommands of the backend.
var Commands = []subcommands.Command{
	&serveCmd{},
	&resyncCmd{},
}

// setup loads the configuration, configures logging and connects
// to the database.
func setup(envFiles ...string) (*config.Config, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(cfg, os.Stdout)

	if err := connect(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setupLogging configures gin and the global zerolog logger.
func setupLogging(cfg *config.Config, out io.Writer) {
	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := out
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: out}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); cfg.LogLevel != "" && err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Logger = log.Output(output).With().Timestamp().Logger()
}

// connect opens PostgreSQL if a database host is configured and
// SQLite otherwise.
func connect(cfg *config.Config) error {
	if cfg.DBHost != "" {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Connecting to PostgreSQL")
		return models.ConnectPostgres(cfg.PostgresDSN())
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("could not create database directory: %w", err)
		}
	}

	log.Info().Str("path", cfg.DBPath).Msg("Opening SQLite database")
	return models.Connect(cfg.DBPath)
}

func closeDB() {
	sqlDB, err := models.DB.DB()
	if err != nil {
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("Closing the database failed")
	}
}
