package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/oblivion-api/internal/api"
	apiMiddleware "github.com/phrazzld/oblivion-api/internal/api/middleware"
)

// setupRouter creates the chi router with middleware and all API routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)

	authHandler := api.NewAuthHandler(app.verificationService, app.jwtService, app.codeSender, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	deckHandler := api.NewDeckHandler(app.deckService, app.logger)
	cardHandler := api.NewCardHandler(app.cardService, app.cardReviewService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	// A nil *sql.DB must not become a non-nil Pinger.
	var pinger api.Pinger
	if app.db != nil {
		pinger = app.db
	}
	r.Method(http.MethodGet, "/health", api.NewHealthHandler(pinger, app.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/verification", authHandler.Verify)
		r.Post("/auth/verification/resend", authHandler.Resend)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/refresh", authHandler.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/user", userHandler.GetProfile)
			r.Get("/user/settings", userHandler.GetSettings)
			r.Put("/user/settings", userHandler.UpdateSettings)
			r.Get("/user/summary", userHandler.GetSummary)

			r.Route("/decks", func(r chi.Router) {
				r.Get("/", deckHandler.List)
				r.Post("/", deckHandler.Create)
				r.Get("/counts", deckHandler.ListWithCounts)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", deckHandler.Get)
					r.Put("/", deckHandler.Rename)
					r.Delete("/", deckHandler.Delete)

					r.Get("/cards", cardHandler.ListByDeck)
					r.Get("/cards/due", cardHandler.ListDue)
					r.Post("/cards", cardHandler.Create)
				})
			})

			r.Route("/cards/{id}", func(r chi.Router) {
				r.Get("/", cardHandler.Get)
				r.Put("/", cardHandler.Update)
				r.Delete("/", cardHandler.Delete)
				r.Post("/answer", cardHandler.SubmitAnswer)
			})
		})
	})

	return r
}
