// Package migrate runs goose schema migrations from an embedded filesystem.
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

// Goose dialect names for the supported drivers.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// Commands accepted by Run.
var Commands = []string{"up", "up-by-one", "down", "reset", "redo", "status", "version"}

// goose keeps its configuration in package globals.
var mu sync.Mutex

// Up applies all pending migrations.
func Up(ctx context.Context, db *sql.DB, dialect string, fsys fs.FS, logger *slog.Logger) error {
	return Run(ctx, db, dialect, fsys, "up", logger)
}

// Run executes a goose command against db using the migrations in the root
// of fsys. Every log line of one run carries the same correlation_id.
func Run(
	ctx context.Context,
	db *sql.DB,
	dialect string,
	fsys fs.FS,
	command string,
	logger *slog.Logger,
	args ...string,
) error {
	if !isCommand(command) {
		return fmt.Errorf("unsupported migration command %q", command)
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(
		"component", "migrations",
		"correlation_id", uuid.New().String(),
		"command", command,
	)

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(fsys)
	goose.SetLogger(&slogGooseLogger{logger: log})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	start := time.Now()
	log.Info("starting migration operation", "dialect", dialect)
	if err := goose.RunContext(ctx, command, db, ".", args...); err != nil {
		log.Error("migration operation failed", "error", err)
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	log.Info("migration operation completed", "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func isCommand(command string) bool {
	for _, c := range Commands {
		if c == command {
			return true
		}
	}
	return false
}

// slogGooseLogger routes goose output through slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
