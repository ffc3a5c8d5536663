package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/scholars-chronicle/api/internal/config"
	"github.com/scholars-chronicle/api/internal/domain"
	"github.com/scholars-chronicle/api/internal/domain/leveling"
	"github.com/scholars-chronicle/api/internal/platform/sqlitestore"
	"github.com/scholars-chronicle/api/internal/service"
	"github.com/scholars-chronicle/api/internal/service/auth"
)

// application bundles the fully wired dependency graph: config, logger,
// the slot store and every service the router needs.
type application struct {
	config *config.Config
	logger *slog.Logger

	store *sqlitestore.Store

	app        *service.App
	timers     service.TimerService
	jwtService auth.JWTService
	lock       auth.Service
}

// newApplication wires the dependency graph bottom-up: store, then the
// engines, then the state facade. The facade's startup load runs here.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	slots, err := sqlitestore.Open(cfg.Storage.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open slot store: %w", err)
	}

	levelingService := leveling.NewServiceWithParams(leveling.NewParams(leveling.ParamsConfig{
		BaseXP:     cfg.Leveling.BaseXP,
		Multiplier: cfg.Leveling.Multiplier,
		MaxLevel:   cfg.Leveling.MaxLevel,
	}))

	// Fresh scholars start with every stat at 1.
	defaultStats := domain.CharacterStats{Wisdom: 1, Focus: 1, Memory: 1, Discipline: 1}

	characterService := service.NewCharacterService(slots, levelingService, defaultStats, cfg.Leveling.BaseXP, logger)
	questService := service.NewQuestService(slots, characterService, cfg.Quests, logger)
	flashcardService := service.NewFlashcardService(slots, characterService, cfg.Flashcards, logger)
	noteService := service.NewNoteService(slots, logger)
	timerService := service.NewTimerService(slots, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeStore(slots, logger)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	lock := auth.NewService(slots, auth.NewBcryptVerifier(), jwtService, logger)

	app, err := service.NewApp(ctx, characterService, questService, flashcardService, noteService, logger)
	if err != nil {
		closeStore(slots, logger)
		return nil, fmt.Errorf("failed to load application state: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     logger,
		store:      slots,
		app:        app,
		timers:     timerService,
		jwtService: jwtService,
		lock:       lock,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	closeStore(app.store, app.logger)
}

func closeStore(s *sqlitestore.Store, logger *slog.Logger) {
	if err := s.Close(); err != nil {
		logger.Error("failed to close slot store", "error", err)
	}
}
