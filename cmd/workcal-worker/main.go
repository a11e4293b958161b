package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"workcal/internal/amqp"
	"workcal/internal/config"
	"workcal/internal/storage"
	"workcal/internal/suggest"
	"workcal/internal/suggest/gemini"
	"workcal/internal/suggest/memory"
	"workcal/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting workcal-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	store, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository", "error", err, "path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Gemini is the real suggester; without an API key the worker falls back
	// to an empty in-memory fetcher so the queue still drains.
	var fetcher suggest.Fetcher
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", "error", err)
			os.Exit(1)
		}
		fetcher = geminiClient
		logger.Info("Gemini suggester initialized", "model", cfg.GeminiModel)
	} else {
		fetcher = memory.New()
		logger.Warn("No GEMINI_API_KEY provided - holiday suggestions disabled")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	fetchWorker := worker.NewFetchWorker(store, fetcher, amqpClient, cfg.FetchTimeout)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeHolidayFetch(gctx, func(msg *amqp.HolidayFetchMessage) error {
			return fetchWorker.HandleFetchMessage(gctx, msg)
		})
	})

	g.Go(func() error {
		return fetchWorker.RunAutoRefresh(gctx, cfg.DefaultCountry, cfg.AutoRefreshInterval)
	})

	logger.Info("Worker running",
		"queue", cfg.AMQPQueue,
		"auto_refresh_interval", cfg.AutoRefreshInterval.String())

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker shutdown complete")
}
