// Querra agent server — provides the HTTP API, manages queue workers, and
// drives question sessions through the SQL generation workflow.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/querra-ai/querra/pkg/api"
	"github.com/querra-ai/querra/pkg/cleanup"
	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/database"
	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/queue"
	"github.com/querra-ai/querra/pkg/registry"
	"github.com/querra-ai/querra/pkg/schemastore"
	"github.com/querra-ai/querra/pkg/services"
	"github.com/querra-ai/querra/pkg/setup"
	"github.com/querra-ai/querra/pkg/telemetry"
	"github.com/querra-ai/querra/pkg/workflow"
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

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	slog.Info("Starting Querra",
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Set up trace export
	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.Telemetry.Enabled,
		ServiceName: cfg.Telemetry.ServiceName,
		Endpoint:    cfg.Telemetry.Endpoint,
		Insecure:    cfg.Telemetry.Insecure,
		SampleRatio: cfg.Telemetry.SampleRatio,
	})
	if err != nil {
		slog.Error("Failed to set up telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			slog.Error("Error flushing telemetry", "error", err)
		}
	}()
	telemetry.SetContractLevel(telemetry.ContractLevel(cfg.Telemetry.ContractLevel))

	// 3. Initialize database
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
	slog.Info("Connected to PostgreSQL database")

	// 4. One-time startup orphan cleanup
	sessionService := services.NewSessionService(dbClient.Client)
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, sessionService, cfg.Queue, podID); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal — continue
	}

	// 5. Create the LLM client and embedder
	// Note: the grpc provider dials lazily; connection happens on first call
	providerCfg, err := cfg.DefaultLLMProvider()
	if err != nil {
		slog.Error("Failed to resolve LLM provider", "error", err)
		os.Exit(1)
	}
	llmClient, err := setup.LLMClient(providerCfg)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "provider", cfg.Defaults.LLMProvider, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "provider", cfg.Defaults.LLMProvider, "type", providerCfg.Type)

	embedCfg, err := cfg.EmbeddingProvider()
	if err != nil {
		slog.Error("Failed to resolve embedding provider", "error", err)
		os.Exit(1)
	}
	embedder, err := setup.Embedder(embedCfg)
	if err != nil {
		slog.Error("Failed to initialize embedder", "error", err)
		os.Exit(1)
	}
	if embedder == nil {
		slog.Info("No embedding provider configured, semantic lookups degrade to exact and lexical matching")
	}

	// 6. Domain services
	questionService := services.NewQuestionService(dbClient.Client, cfg.Defaults, cfg.Pagination)
	interactionService := services.NewInteractionService(dbClient.Client)
	pairService := services.NewPairService(dbClient.Client, embedder)

	var cacheService *services.CacheService
	if cfg.Cache.Enabled {
		cacheService = services.NewCacheService(dbClient.Client, embedder, services.CacheOptions{
			SimilarityThreshold: cfg.Cache.SimilarityThreshold,
			CandidateScan:       cfg.Cache.CandidateScan,
		})
	}
	slog.Info("Services initialized", "cache_enabled", cfg.Cache.Enabled)

	// 7. Schema snapshot, query target, and execution engine
	snapshot, err := setup.SchemaSnapshot(*configDir)
	if err != nil {
		slog.Error("Failed to load schema snapshot", "error", err)
		os.Exit(1)
	}
	var retriever schemastore.Retriever
	if snapshot != nil {
		storeCfg := schemastore.StoreConfig{}
		if embedder != nil {
			storeCfg.Embed = embedder.Embed
		}
		retriever = schemastore.NewStore(snapshot, storeCfg)
	}

	tool, err := setup.QueryTool(ctx, cfg, cfg.Defaults.QueryTarget, snapshot)
	if err != nil {
		slog.Error("Failed to build query target", "target", cfg.Defaults.QueryTarget, "error", err)
		os.Exit(1)
	}
	defer tool.Close()
	slog.Info("Query target ready", "target", cfg.Defaults.QueryTarget, "provider", tool.Capabilities().Provider)

	var cacheWriter engine.CacheWriter
	var cacheLookup workflow.CacheLookup
	if cacheService != nil {
		cacheWriter = cacheService
		cacheLookup = cacheService
	}

	eng := engine.New(tool, retriever, cacheWriter, setup.EngineOptions(cfg))
	defer eng.Close()

	// 8. Workflow runner and session executor
	checkpointer, closeCheckpoints, err := setup.Checkpointer(cfg.Workflow, dbClient)
	if err != nil {
		slog.Error("Failed to build checkpoint store", "backend", cfg.Workflow.CheckpointBackend, "error", err)
		os.Exit(1)
	}
	if closeCheckpoints != nil {
		defer func() {
			if err := closeCheckpoints(); err != nil {
				slog.Error("Error closing checkpoint store", "error", err)
			}
		}()
	}

	recommender := registry.New(pairService, setup.RecommenderOptions(cfg.Recommend))
	fewShotService := services.NewFewShotService(recommender)

	runner := workflow.NewRunner(&workflow.Nodes{
		LLM:          llmClient,
		Engine:       eng,
		Retriever:    retriever,
		Cache:        cacheLookup,
		FewShot:      fewShotService,
		Guard:        setup.GuardOptions(cfg.Guard),
		FewShotLimit: cfg.Defaults.FewShotLimit,
	}, workflow.RunnerConfig{
		Checkpointer: checkpointer,
		Recorder:     interactionService,
		Limits: workflow.Limits{
			MaxCorrectionRounds: cfg.Workflow.MaxCorrectionRounds,
			MaxClarifyRounds:    cfg.Workflow.MaxClarifyRounds,
			MaxAuditEntries:     cfg.Workflow.MaxAuditEntries,
			MaxAuditBytes:       cfg.Workflow.MaxAuditBytes,
			MaxTransitions:      cfg.Workflow.MaxTransitions,
		},
		PersistenceFailOpen: cfg.Workflow.PersistenceFailOpen,
	})

	tokenBudget := 0
	if cfg.Defaults.TokenBudget != nil {
		tokenBudget = *cfg.Defaults.TokenBudget
	}
	executor := queue.NewWorkflowExecutor(queue.ExecutorConfig{
		Runner:          runner,
		Checkpointer:    checkpointer,
		TokenBudget:     tokenBudget,
		QuestionTimeout: cfg.QuestionDeadline(),
		DefaultPageSize: cfg.Defaults.PageSize,
	})

	// 9. Start worker pool and retention loop (before HTTP server)
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, sessionService, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	var checkpointPruner cleanup.CheckpointPruner
	if p, ok := checkpointer.(cleanup.CheckpointPruner); ok {
		checkpointPruner = p
	}
	cleanupService := cleanup.NewService(cfg.Retention, sessionService, cacheService, checkpointPruner)
	cleanupService.Start(ctx)

	// 10. Start HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, dbClient, questionService, sessionService, workerPool)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Querra started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"query_targets", cfg.QueryTargetRegistry.Names())

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown
	workerShutdownCtx, workerCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer workerCancel()

	// Stop worker pool (wait for active sessions to reach a resting state)
	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-workerShutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — incomplete sessions will be orphan-recovered")
	}

	cleanupService.Stop()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
