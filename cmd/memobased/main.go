// memobased runs the memory engine's background plane: flush workers, the
// stuck-entry watchdog, and retention. It serves no requests of its own;
// hosts embed pkg/memobase for the read/write surface and run this daemon
// next to the same database.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/cleanup"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/database"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/extraction"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/flush"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/llm"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/search"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting memobased",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs embedded migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()

	health, err := dbClient.Health(ctx)
	if err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Connected to PostgreSQL database",
		"ping_ms", health.PingMillis,
		"max_open_conns", health.MaxOpenConns)

	// 3. One-time recovery of processing entries a previous run left behind
	buffers := services.NewBufferService(dbClient.Client)
	if reaped, err := flush.RecoverStartupStuck(ctx, buffers, cfg.Worker.StuckThreshold); err != nil {
		slog.Error("Startup stuck-entry scan failed", "error", err)
		// Non-fatal: the watchdog retries on its interval
	} else if reaped > 0 {
		slog.Warn("Recovered stuck buffer entries from a previous run", "entries", reaped)
	}

	// 4. Build the extraction path: gateway, gist index, stores, pipeline
	gateway, err := llm.New(cfg)
	if err != nil {
		slog.Error("Failed to initialize LLM gateway", "error", err)
		os.Exit(1)
	}

	index, err := search.NewGistIndex(ctx, cfg, dbClient.Client)
	if err != nil {
		slog.Error("Failed to initialize gist index", "error", err)
		os.Exit(1)
	}

	blobs := services.NewBlobService(dbClient.Client)
	profiles := services.NewProfileService(dbClient.Client)
	events := services.NewEventService(dbClient.Client, index)
	pipeline := extraction.NewPipeline(cfg, gateway, profiles, events)
	manager := flush.NewManager(cfg, buffers, blobs, pipeline)
	slog.Info("Services initialized")

	// 5. Start the worker pool (includes the watchdog)
	pool := flush.NewWorkerPool(podID, cfg.Worker, buffers, manager)
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 6. Start retention
	retention := cleanup.NewService(cfg.Retention, buffers, blobs, events)
	retention.Start(ctx)

	slog.Info("memobased started successfully",
		"pod_id", podID,
		"workers", cfg.Worker.WorkerCount)

	// 7. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 8. Graceful shutdown: drain in-flight flushes, bounded
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Worker.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight flushes will be watchdog-recovered")
	}

	retention.Stop()
	slog.Info("Shutdown complete")
}
