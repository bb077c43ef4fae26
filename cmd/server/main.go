// Package main implements the entry point for the Oblivion API server,
// which serves users' decks of flashcards and schedules their reviews.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/phrazzld/oblivion-api/internal/config"
	"github.com/phrazzld/oblivion-api/internal/platform/logger"
)

// main loads configuration, then either runs a migration command and exits
// or starts the HTTP server until SIGINT/SIGTERM.
func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status, version, reset) and exit")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("oblivion-api: %v", err)
	}
}

func run(migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	lg, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	lg.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"timezone", cfg.Schedule.Timezone,
		"mail_enabled", cfg.Mail.FromEmail != "")

	db, err := setupAppDatabase(cfg, lg)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDB(db, lg)
		return runMigrations(db, migrateCmd, lg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, lg, db)
	if err != nil {
		closeDB(db, lg)
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

func closeDB(db interface{ Close() error }, lg *slog.Logger) {
	if err := db.Close(); err != nil {
		lg.Error("Error closing database connection", "error", err)
	}
}
