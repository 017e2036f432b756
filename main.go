package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hotcorner/config"
	"hotcorner/storage"
)

func main() {
	// Setup logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Activation history is best-effort; the agent runs without it
	var db *storage.DB
	if dir, dirErr := config.ConfigDir(); dirErr != nil {
		slog.Warn("Failed to resolve config directory", "error", dirErr)
	} else if db, err = storage.Open(dir); err != nil {
		slog.Warn("Failed to open activation history", "error", err)
		db = nil
	}
	if db != nil {
		defer db.Close()
	}

	// Create agent
	agent, err := NewAgent(cfg, db)
	if err != nil {
		slog.Error("Failed to create agent", "error", err)
		os.Exit(1)
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Run agent
	if err := agent.Run(ctx); err != nil {
		slog.Error("Agent error", "error", err)
		os.Exit(1)
	}

	slog.Info("Hot corner agent stopped")
}
