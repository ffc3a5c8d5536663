package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/scholars-chronicle/api/internal/api"
	apiMiddleware "github.com/scholars-chronicle/api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.lock, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.lock)

	characterHandler := api.NewCharacterHandler(app.app, app.logger)
	questHandler := api.NewQuestHandler(app.app, app.logger)
	flashcardHandler := api.NewFlashcardHandler(app.app, app.logger)
	noteHandler := api.NewNoteHandler(app.app, app.logger)
	timerHandler := api.NewTimerHandler(app.timers, app.logger)
	appDataHandler := api.NewAppDataHandler(app.logger)

	r.Route("/api", func(r chi.Router) {
		// Lock endpoints (public)
		r.Get("/auth/status", authHandler.Status)
		r.Post("/auth/passphrase", authHandler.SetPassphrase)
		r.Post("/auth/login", authHandler.Login)

		// Tracker routes, guarded once a passphrase lock is set
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Character endpoints
			r.Get("/character", characterHandler.Get)
			r.Put("/character/stats", characterHandler.UpdateStats)
			r.Post("/character/xp", characterHandler.AddXP)

			// Quest board endpoints
			r.Get("/quests", questHandler.List)
			r.Post("/quests", questHandler.Create)
			r.Post("/quests/{id}/complete", questHandler.Complete)
			r.Delete("/quests/{id}", questHandler.Delete)

			// Deck and card endpoints
			r.Get("/decks", flashcardHandler.ListDecks)
			r.Post("/decks", flashcardHandler.CreateDeck)
			r.Put("/decks/{id}", flashcardHandler.UpdateDeck)
			r.Delete("/decks/{id}", flashcardHandler.DeleteDeck)
			r.Post("/decks/{id}/cards", flashcardHandler.AddCard)
			r.Delete("/decks/{id}/cards/{cardId}", flashcardHandler.DeleteCard)
			r.Post("/decks/{id}/import", flashcardHandler.ImportCards)
			r.Post("/decks/{id}/study-pass", flashcardHandler.CompleteStudyPass)

			// Study-note endpoints
			r.Get("/notes", noteHandler.List)
			r.Post("/notes", noteHandler.Create)
			r.Delete("/notes/{id}", noteHandler.Delete)

			// Study-timer endpoints
			r.Get("/timer/presets", timerHandler.Presets)
			r.Get("/timer/sessions", timerHandler.Sessions)
			r.Post("/timer/sessions", timerHandler.RecordSession)

			// Static curriculum data
			r.Get("/subjects", appDataHandler.ListSubjects)
			r.Get("/subjects/{id}", appDataHandler.GetSubject)
			r.Get("/exams", appDataHandler.ListExams)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
