// Package main implements the entry point for the Scholar's Chronicle API
// server, which tracks study progress as a character sheet: quests, XP,
// flashcard decks, notes and timer sessions over a local slot store.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/scholars-chronicle/api/internal/config"
	"github.com/scholars-chronicle/api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, sets up logging, wires the dependency graph
// and serves HTTP until shutdown.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_path", cfg.Storage.Path)

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
