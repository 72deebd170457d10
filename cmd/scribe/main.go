package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeSquared-Agency/scribe/internal/analyzer"
	"github.com/MikeSquared-Agency/scribe/internal/anthropic"
	"github.com/MikeSquared-Agency/scribe/internal/api"
	"github.com/MikeSquared-Agency/scribe/internal/config"
	"github.com/MikeSquared-Agency/scribe/internal/hermes"
	"github.com/MikeSquared-Agency/scribe/internal/processor"
	"github.com/MikeSquared-Agency/scribe/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("scribe starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database (optional — without it uploads are analyzed but not kept)
	var db *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set — running without persistence")
	}

	// Anthropic analyzer (optional — without it only /parse works)
	var chatAnalyzer *analyzer.Analyzer
	if cfg.AnthropicAPIKey != "" {
		llm := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
		chatAnalyzer = analyzer.New(llm, slog.Default())
		slog.Info("anthropic client ready", "model", cfg.AnthropicModel)
	} else {
		slog.Warn("ANTHROPIC_API_KEY not set — analysis endpoints disabled")
	}

	// NATS (optional — without it analyses are not announced to the swarm)
	var hermesClient *hermes.Client
	if cfg.NatsURL != "" {
		var err error
		hermesClient, err = hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Warn("failed to connect to NATS — running without events", "error", err)
		} else {
			defer hermesClient.Close()
			slog.Info("NATS connected", "url", cfg.NatsURL)
		}
	}

	// Pipeline
	proc := processor.New(db, chatAnalyzer, hermesClient, cfg.AnthropicModel, slog.Default())

	// HTTP API
	srv := api.NewServer(cfg.Port, proc, db, cfg.MaxUploadBytes)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("scribe ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("scribe stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
