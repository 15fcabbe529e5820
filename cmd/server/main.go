// Package main implements the entry point for the todo API server, which
// serves signup, login, password reset and task endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"Run a database migration command and exit ("+strings.Join(migrate.Commands, ", ")+")")
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("todo-api: %v", err)
	}
}

// run loads configuration, connects to the database and then either runs a
// migration command or serves HTTP until a shutdown signal arrives.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_driver", cfg.Database.Driver,
		"mail_transport", cfg.Mail.Transport)

	database, err := setupAppDatabase(ctx, cfg.Database, appLogger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDatabase(database, appLogger)
		return migrate.Run(ctx, database.db, database.dialect, database.migrations, migrateCmd, appLogger)
	}

	if cfg.Database.AutoMigrate {
		if err := migrate.Up(ctx, database.db, database.dialect, database.migrations, appLogger); err != nil {
			closeDatabase(database, appLogger)
			return err
		}
	}

	sender, err := setupMailSender(cfg.Mail, appLogger)
	if err != nil {
		closeDatabase(database, appLogger)
		return err
	}

	app, err := newApplication(cfg, appLogger, database, sender)
	if err != nil {
		closeDatabase(database, appLogger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// loadAppConfig loads the application configuration from the environment,
// an optional .env file and an optional config.yaml.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Only the default logger exists before logger.Setup runs.
	slog.Debug("Auth configuration", "jwt_secret_present", cfg.Auth.JWTSecret != "")

	return cfg, nil
}
