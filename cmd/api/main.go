package main

import (
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"journal-ai/internal/config"
	"journal-ai/internal/http"
	"journal-ai/internal/llm"
	"journal-ai/internal/service"
	"journal-ai/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository and service instances
	entryRepo := storage.NewEntryRepo(db)

	// Create LLM client (external service layer) and the mood analyzer on top.
	// Analysis is total: an unreachable model degrades to the neutral
	// fallback, it never fails a request.
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
	analyzer := service.NewMoodAnalyzer(llmClient)

	journal := service.NewJournalService(entryRepo, analyzer)
	slog.Info("Journal service initialized")

	// Create router with dependencies
	deps := &http.Deps{
		Journal:     journal,
		DB:          db,
		CORSOrigins: cfg.CORSOrigins,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
