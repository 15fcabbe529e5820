package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/phrazzld/todo-api/internal/redact"
)

// appDatabase is an open connection pool together with what the migration
// runner needs to know about it.
type appDatabase struct {
	db         *sql.DB
	driver     string
	dialect    string
	migrations fs.FS
}

// setupAppDatabase opens the configured database and verifies the
// connection.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*appDatabase, error) {
	var (
		database *appDatabase
		err      error
	)

	switch cfg.Driver {
	case "postgres":
		database, err = openPostgres(cfg)
	case "sqlite":
		database, err = openSQLite(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := database.db.PingContext(pingCtx); err != nil {
		_ = database.db.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("Database connection established", "driver", database.driver)
	return database, nil
}

func openPostgres(cfg config.DatabaseConfig) (*appDatabase, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &appDatabase{
		db:         db,
		driver:     "postgres",
		dialect:    migrate.DialectPostgres,
		migrations: postgres.Migrations(),
	}, nil
}

func openSQLite(ctx context.Context, cfg config.DatabaseConfig) (*appDatabase, error) {
	db, err := sqlite.Open(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	return &appDatabase{
		db:         db,
		driver:     "sqlite",
		dialect:    migrate.DialectSQLite,
		migrations: sqlite.Migrations(),
	}, nil
}

func closeDatabase(database *appDatabase, logger *slog.Logger) {
	if err := database.db.Close(); err != nil {
		logger.Error("Error closing database connection", "error", redact.Error(err))
	}
}
