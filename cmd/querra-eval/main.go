// Querra evaluation CLI — replays a golden dataset through the generation
// workflow, scores predictions against expected SQL, and gates regressions
// against a baseline summary.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/evaluation"
	"github.com/querra-ai/querra/pkg/schemastore"
	"github.com/querra-ai/querra/pkg/setup"
	"github.com/querra-ai/querra/pkg/workflow"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

type evalOptions struct {
	configDir   string
	dataset     string
	outputDir   string
	baseline    string
	runID       string
	limit       int
	tenantID    int64
	concurrency int
	seed        int64
}

func main() {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "querra-eval",
		Short: "Score the SQL agent against a golden dataset",
		Long: `querra-eval replays a golden dataset through the full generation workflow,
scores every prediction against its expected SQL, and writes a report plus a
summary document. With --baseline it compares the run against a previous
summary and exits non-zero on a gated regression.

Checkpoints stay in memory and no cache or interaction recorder is wired, so
runs never touch the application database.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configDir, "config-dir", getEnv("CONFIG_DIR", "./deploy/config"), "Path to configuration directory")
	flags.StringVar(&opts.dataset, "dataset", "", "Golden dataset file (one JSON case per line)")
	flags.StringVar(&opts.outputDir, "output-dir", "./eval-reports", "Directory for report and summary documents")
	flags.StringVar(&opts.baseline, "baseline", "", "Summary document of a previous run to gate against")
	flags.StringVar(&opts.runID, "run-id", "", "Run identifier (generated when empty)")
	flags.IntVar(&opts.limit, "limit", 0, "Run only the first N cases (0 runs all)")
	flags.Int64Var(&opts.tenantID, "tenant-id", 0, "Tenant override applied to every case")
	flags.IntVar(&opts.concurrency, "concurrency", evaluation.DefaultConcurrency, "Cases scored in parallel")
	flags.Int64Var(&opts.seed, "seed", 0, "Sampling seed for deterministic generation")
	_ = cmd.MarkFlagRequired("dataset")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("Evaluation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *evalOptions) error {
	envPath := filepath.Join(opts.configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "path", envPath)
	}

	cfg, err := config.Initialize(ctx, opts.configDir)
	if err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	cases, err := evaluation.LoadDataset(opts.dataset)
	if err != nil {
		return err
	}
	slog.Info("Dataset loaded", "path", opts.dataset, "cases", len(cases))

	target, cleanup, err := buildTarget(ctx, cfg, opts.configDir)
	if err != nil {
		return err
	}
	defer cleanup()

	target.Seed = opts.seed

	runner := evaluation.NewRunner(target, evaluation.Config{
		RunID:       opts.runID,
		Concurrency: opts.concurrency,
		Limit:       opts.limit,
		TenantID:    opts.tenantID,
	})
	rep, err := runner.Run(ctx, cases)
	if err != nil {
		return err
	}
	rep.Dataset = opts.dataset

	if opts.baseline != "" {
		baseline, err := evaluation.LoadBaseline(opts.baseline)
		if err != nil {
			return err
		}
		rep.Regression = evaluation.DetectRegression(rep.Summary, *baseline, evaluation.RegressionConfig{})
	}

	reportPath, err := evaluation.WriteReport(opts.outputDir, rep)
	if err != nil {
		return err
	}

	s := rep.Summary
	slog.Info("Evaluation complete",
		"run_id", rep.RunID,
		"cases", s.Cases,
		"errors", s.Errors,
		"exact_match_rate", s.ExactMatchRate,
		"avg_composite_score", s.AvgCompositeScore,
		"latency_p95_ms", s.LatencyP95Ms,
		"report", reportPath)

	if rep.Regression != nil && rep.Regression.IsRegression {
		return fmt.Errorf("regression gate failed: %s", strings.Join(rep.Regression.Reasons, "; "))
	}
	return nil
}

// buildTarget assembles the generation stack the server runs, minus its
// persistence. The returned cleanup closes the LLM client, the query target,
// and the engine.
func buildTarget(ctx context.Context, cfg *config.Config, configDir string) (*evaluation.WorkflowTarget, func(), error) {
	providerCfg, err := cfg.DefaultLLMProvider()
	if err != nil {
		return nil, nil, err
	}
	llmClient, err := setup.LLMClient(providerCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	slog.Info("LLM client initialized", "provider", cfg.Defaults.LLMProvider, "type", providerCfg.Type)

	embedCfg, err := cfg.EmbeddingProvider()
	if err != nil {
		return nil, nil, err
	}
	embedder, err := setup.Embedder(embedCfg)
	if err != nil {
		return nil, nil, err
	}

	snapshot, err := setup.SchemaSnapshot(configDir)
	if err != nil {
		return nil, nil, err
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
		return nil, nil, fmt.Errorf("failed to build query target %s: %w", cfg.Defaults.QueryTarget, err)
	}
	slog.Info("Query target ready", "target", cfg.Defaults.QueryTarget, "provider", tool.Capabilities().Provider)

	eng := engine.New(tool, retriever, nil, setup.EngineOptions(cfg))

	runner := workflow.NewRunner(&workflow.Nodes{
		LLM:       llmClient,
		Engine:    eng,
		Retriever: retriever,
		Guard:     setup.GuardOptions(cfg.Guard),
	}, workflow.RunnerConfig{
		Checkpointer: workflow.NewMemoryCheckpointer(),
		Limits: workflow.Limits{
			MaxCorrectionRounds: cfg.Workflow.MaxCorrectionRounds,
			MaxClarifyRounds:    cfg.Workflow.MaxClarifyRounds,
			MaxAuditEntries:     cfg.Workflow.MaxAuditEntries,
			MaxAuditBytes:       cfg.Workflow.MaxAuditBytes,
			MaxTransitions:      cfg.Workflow.MaxTransitions,
		},
		PersistenceFailOpen: cfg.Workflow.PersistenceFailOpen,
	})

	cleanup := func() {
		eng.Close()
		tool.Close()
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}
	return &evaluation.WorkflowTarget{
		Runner:  runner,
		Timeout: cfg.QuestionDeadline(),
	}, cleanup, nil
}
