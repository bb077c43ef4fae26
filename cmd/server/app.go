package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/oblivion-api/internal/config"
	"github.com/phrazzld/oblivion-api/internal/domain/srs"
	"github.com/phrazzld/oblivion-api/internal/platform/mail"
	"github.com/phrazzld/oblivion-api/internal/platform/postgres"
	"github.com/phrazzld/oblivion-api/internal/service"
	"github.com/phrazzld/oblivion-api/internal/service/auth"
	"github.com/phrazzld/oblivion-api/internal/service/card_review"
	"github.com/phrazzld/oblivion-api/internal/store"
)

// application holds the shared dependencies of the server so they can be
// wired once and released together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Service interfaces
	jwtService          auth.JWTService
	codeSender          mail.CodeSender
	verificationService service.VerificationService
	userService         service.UserService
	deckService         service.DeckService
	cardService         service.CardService
	cardReviewService   card_review.Service
}

// newApplication builds stores, services and the mail sender on top of an
// established database connection.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	loc, err := cfg.Schedule.Location()
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule timezone: %w", err)
	}
	scheduler := srs.NewService(srs.NewZonedClock(loc))
	logger.Info("Scheduler initialized", "timezone", loc.String())

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	sender, err := mail.NewSESSender(ctx, cfg.Mail, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize mail sender: %w", err)
	}
	if !sender.IsEnabled() {
		logger.Warn("Mail delivery disabled, verification codes are logged at debug level only")
	}
	app.codeSender = sender

	// Stores
	users := postgres.NewPostgresUserStore(db, logger)
	decks := postgres.NewPostgresDeckStore(db, logger)
	cards := postgres.NewPostgresCardStore(db, logger)
	settings := postgres.NewPostgresUserSettingsStore(db, logger)
	summaries := postgres.NewPostgresUserSummaryStore(db, logger)
	verifications := postgres.NewPostgresVerificationStore(db, logger)
	runTx := store.NewTxRunner(db)

	passwords := auth.NewBcryptVerifier(cfg.Auth.BCryptCost)

	app.verificationService, err = service.NewVerificationService(service.VerificationDeps{
		Users:         users,
		Settings:      settings,
		Summaries:     summaries,
		Verifications: verifications,
		Hasher:        passwords,
		Verifier:      passwords,
		Codes:         auth.RandomCodeGenerator{},
		Scheduler:     scheduler,
		RunTx:         runTx,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create verification service: %w", err)
	}

	app.userService, err = service.NewUserService(users, settings, summaries, scheduler, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	app.deckService, err = service.NewDeckService(decks, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create deck service: %w", err)
	}

	app.cardService, err = service.NewCardService(cards, decks, settings, scheduler, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create card service: %w", err)
	}

	app.cardReviewService = card_review.NewService(cards, settings, summaries, scheduler, runTx, logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves the API until ctx is canceled.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases application resources on shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
