package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/oblivion-api/internal/platform/postgres"
	"github.com/pressly/goose/v3"
)

const migrationsTable = "schema_migrations"

var migrationCommands = map[string]func(db *sql.DB, dir string) error{
	"up":      func(db *sql.DB, dir string) error { return goose.Up(db, dir) },
	"down":    func(db *sql.DB, dir string) error { return goose.Down(db, dir) },
	"status":  func(db *sql.DB, dir string) error { return goose.Status(db, dir) },
	"version": func(db *sql.DB, dir string) error { return goose.Version(db, dir) },
	"reset":   func(db *sql.DB, dir string) error { return goose.Reset(db, dir) },
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf forwards goose progress messages at info level.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level. It does not exit; the error reaches main through the
// goose return value.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// validateMigrationCommand reports whether cmd names a supported goose command.
func validateMigrationCommand(cmd string) error {
	if _, ok := migrationCommands[cmd]; !ok {
		return fmt.Errorf("unknown migration command %q (expected up, down, status, version or reset)", cmd)
	}
	return nil
}

// runMigrations applies cmd using the migrations embedded in the postgres package.
func runMigrations(db *sql.DB, cmd string, logger *slog.Logger) error {
	if err := validateMigrationCommand(cmd); err != nil {
		return err
	}

	migrationLogger := logger.With("component", "migrations", "command", cmd)
	goose.SetLogger(&slogGooseLogger{logger: migrationLogger})
	goose.SetBaseFS(postgres.MigrationsFS)
	goose.SetTableName(migrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	migrationLogger.Info("Executing migrations")
	if err := migrationCommands[cmd](db, postgres.MigrationsDir); err != nil {
		return fmt.Errorf("migration %s failed: %w", cmd, err)
	}
	migrationLogger.Info("Migrations completed")
	return nil
}
