package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/svazhnov/kotelbot/internal/api"
	"github.com/svazhnov/kotelbot/internal/bot"
	"github.com/svazhnov/kotelbot/internal/config"
	"github.com/svazhnov/kotelbot/internal/db"
	"github.com/svazhnov/kotelbot/internal/ledger"
	"github.com/svazhnov/kotelbot/internal/logging"
)

func main() {
	logging.Setup()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to database
	database, err := db.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(context.Background()); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Ledger service over the database gateway
	svc := ledger.NewService(database)

	// Initialize Discord bot
	discordBot, err := bot.New(cfg, svc)
	if err != nil {
		slog.Error("failed to create discord bot", "error", err)
		os.Exit(1)
	}

	// Initialize API server
	apiServer := api.New(cfg, svc)

	// Start Discord bot
	if err := discordBot.Start(); err != nil {
		slog.Error("failed to start discord bot", "error", err)
		os.Exit(1)
	}
	defer discordBot.Stop()

	// Start API server
	go func() {
		if err := apiServer.Start(); err != nil {
			slog.Error("API server error", "error", err)
		}
	}()

	// Wait for signal to stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("shutting down")
}
