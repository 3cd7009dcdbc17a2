// Package setup assembles runtime components from configuration: LLM
// clients, query target dispatchers, checkpoint stores, and the option
// structs consumed by the guard, tenant, engine, and recommendation layers.
// Both the agent server and the evaluation CLI wire themselves through it.
package setup

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/redis/go-redis/v9"
	"github.com/tmc/langchaingo/llms/anthropic"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/dal"
	"github.com/querra-ai/querra/pkg/database"
	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/llm"
	"github.com/querra-ai/querra/pkg/registry"
	"github.com/querra-ai/querra/pkg/schemastore"
	"github.com/querra-ai/querra/pkg/sqlguard"
	"github.com/querra-ai/querra/pkg/tenant"
	"github.com/querra-ai/querra/pkg/workflow"
)

// geminiOpenAIBase is Gemini's OpenAI-compatible endpoint, used when a
// google provider has no explicit base URL.
const geminiOpenAIBase = "https://generativelanguage.googleapis.com/v1beta/openai"

// GuardOptions translates the guard config section into validation options.
// Restricted tables and sensitive columns extend the built-in lists rather
// than replacing them.
func GuardOptions(cfg *config.GuardConfig) sqlguard.Options {
	opts := sqlguard.DefaultOptions()
	opts.AllowedTables = cfg.AllowedTables
	opts.AllowedColumns = cfg.AllowedColumns
	opts.ColumnMode = sqlguard.EnforcementMode(cfg.ColumnAllowlistMode)
	opts.RestrictedTables = append(opts.RestrictedTables, cfg.RestrictedTables...)
	opts.SensitiveColumns = append(opts.SensitiveColumns, cfg.SensitiveColumns...)
	opts.BlockSensitiveColumns = cfg.BlockSensitiveColumns
	if cfg.MaxJoinComplexity > 0 {
		opts.MaxJoinComplexity = cfg.MaxJoinComplexity
	}
	if cfg.MaxASTNodes > 0 {
		opts.MaxASTNodes = cfg.MaxASTNodes
	}
	return opts
}

// TenantOptions translates the tenant config section into rewrite options.
func TenantOptions(cfg *config.TenantConfig) tenant.Options {
	opts := tenant.DefaultOptions()
	opts.StrictMode = cfg.StrictMode
	opts.AssertInvariants = cfg.AssertInvariants
	if cfg.MaxTargets > 0 {
		opts.MaxTargets = cfg.MaxTargets
	}
	if cfg.MaxParams > 0 {
		opts.MaxParams = cfg.MaxParams
	}
	if cfg.MaxASTNodes > 0 {
		opts.MaxASTNodes = cfg.MaxASTNodes
	}
	return opts
}

// EngineOptions assembles the dispatch options from the engine, guard, and
// tenant config sections.
func EngineOptions(cfg *config.Config) engine.Options {
	ec := cfg.Engine
	return engine.Options{
		Guard:                   GuardOptions(cfg.Guard),
		TenantEnabled:           cfg.Tenant.Enabled,
		TenantColumn:            cfg.Tenant.Column,
		ExemptTables:            cfg.Tenant.ExemptTables,
		Tenant:                  TenantOptions(cfg.Tenant),
		AutoPagination:          ec.AutoPagination,
		MaxPages:                ec.AutoPaginationMaxPages,
		MaxRows:                 ec.AutoPaginationMaxRows,
		PrefetchEnabled:         ec.PrefetchEnabled,
		PrefetchMaxConcurrency:  ec.PrefetchMaxConcurrency,
		CheapLatency:            ec.PrefetchCheapLatency,
		CheapRowFactor:          ec.PrefetchCheapRowFactor,
		PrefetchMinBudget:       ec.PrefetchMinBudget,
		PrefetchCeiling:         ec.PrefetchCeiling,
		DeadlineGrace:           ec.DeadlineGrace,
		SchemaBindingValidation: ec.SchemaBindingValidation,
		SchemaBindingSoftMode:   ec.SchemaBindingSoftMode,
		SchemaDriftAutoRefresh:  ec.SchemaDriftAutoRefresh,
		DefaultPageSize:         cfg.Defaults.PageSize,
	}
}

// RecommenderOptions translates the recommend config section. Blocklist
// patterns were compiled once already during config validation.
func RecommenderOptions(cfg *config.RecommendConfig) registry.Options {
	opts := registry.DefaultOptions()
	for _, pin := range cfg.Pins {
		opts.Pins = append(opts.Pins, registry.PinRule{
			Match:      registry.MatchKind(pin.Match),
			Pattern:    pin.Pattern,
			Priority:   pin.Priority,
			Signatures: pin.Signatures,
		})
	}
	if cfg.CandidateMultiplier > 0 {
		opts.CandidateMultiplier = cfg.CandidateMultiplier
	}
	if cfg.MinSimilarity > 0 {
		opts.MinSimilarity = cfg.MinSimilarity
	}
	if cfg.FallbackMinSimilarity > 0 {
		opts.FallbackMinSimilarity = cfg.FallbackMinSimilarity
	}
	opts.StaleMaxAgeDays = cfg.StaleMaxAgeDays
	if cfg.MaxQuestionLength > 0 {
		opts.MaxQuestionLength = cfg.MaxQuestionLength
	}
	if cfg.MaxSQLLength > 0 {
		opts.MaxSQLLength = cfg.MaxSQLLength
	}
	for _, pattern := range cfg.Blocklist {
		opts.Blocklist = append(opts.Blocklist, regexp.MustCompile(pattern))
	}
	opts.DiversityEnabled = cfg.DiversityEnabled
	opts.DiversityMinVerified = cfg.DiversityMinVerified
	if cfg.DiversityMaxPerSource > 0 {
		opts.DiversityMaxPerSource = cfg.DiversityMaxPerSource
	}
	return opts
}

// LLMClient constructs the completion client for a provider config.
// OpenAI, xAI, and Google all speak the OpenAI wire protocol; Google through
// Gemini's compatibility endpoint. Provider-level MaxTokens and Temperature
// become request defaults.
func LLMClient(p *config.LLMProviderConfig) (llm.Client, error) {
	var client llm.Client
	switch p.Type {
	case config.LLMProviderTypeGRPC:
		c, err := llm.NewGRPCClient(p.Endpoint, p.Model)
		if err != nil {
			return nil, err
		}
		client = c
	case config.LLMProviderTypeStub:
		client = llm.NewStubClient("")
	case config.LLMProviderTypeAnthropic:
		opts := []anthropic.Option{
			anthropic.WithModel(p.Model),
			anthropic.WithToken(os.Getenv(p.APIKeyEnv)),
		}
		if p.BaseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(p.BaseURL))
		}
		model, err := anthropic.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to build anthropic client: %w", err)
		}
		client = llm.NewLangChainClient(model)
	case config.LLMProviderTypeOpenAI, config.LLMProviderTypeXAI, config.LLMProviderTypeGoogle:
		model, err := openai.New(openaiOptions(p)...)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s client: %w", p.Type, err)
		}
		client = llm.NewLangChainClient(model)
	default:
		return nil, fmt.Errorf("unknown llm provider type: %s", p.Type)
	}

	var temp *float32
	if p.Temperature != nil {
		t := float32(*p.Temperature)
		temp = &t
	}
	return llm.WithRequestDefaults(client, p.MaxTokens, temp), nil
}

// Embedder constructs the vector source for the semantic cache and the
// example registry. Providers without an embedding surface return nil; the
// services degrade to exact and lexical matching.
func Embedder(p *config.LLMProviderConfig) (llm.Embedder, error) {
	switch p.Type {
	case config.LLMProviderTypeStub:
		return &llm.StubEmbedder{}, nil
	case config.LLMProviderTypeOpenAI, config.LLMProviderTypeXAI, config.LLMProviderTypeGoogle:
		if p.EmbeddingModel == "" {
			return nil, nil
		}
		model, err := openai.New(openaiOptions(p)...)
		if err != nil {
			return nil, fmt.Errorf("failed to build embedding client: %w", err)
		}
		return llm.NewLangChainEmbedder(model), nil
	default:
		return nil, nil
	}
}

func openaiOptions(p *config.LLMProviderConfig) []openai.Option {
	opts := []openai.Option{
		openai.WithModel(p.Model),
		openai.WithToken(os.Getenv(p.APIKeyEnv)),
	}
	baseURL := p.BaseURL
	if baseURL == "" && p.Type == config.LLMProviderTypeGoogle {
		baseURL = geminiOpenAIBase
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	if p.EmbeddingModel != "" {
		opts = append(opts, openai.WithEmbeddingModel(p.EmbeddingModel))
	}
	return opts
}

// QueryTool constructs the dispatcher for a named query target.
// Federated targets recurse into their members; the config validator already
// guarantees members exist and are not federated themselves.
func QueryTool(ctx context.Context, cfg *config.Config, name string, snapshot *schemastore.Snapshot) (dal.QueryTool, error) {
	target, err := cfg.GetQueryTarget(name)
	if err != nil {
		return nil, err
	}
	opts := toolOptions(cfg, target, snapshot)

	if target.Provider == config.TargetProviderFederated {
		children := make([]dal.QueryTool, 0, len(target.Members))
		for _, member := range target.Members {
			child, err := QueryTool(ctx, cfg, member, snapshot)
			if err != nil {
				return nil, fmt.Errorf("failed to build federated member %s: %w", member, err)
			}
			children = append(children, child)
		}
		return dal.NewFederatedTool(children, opts), nil
	}

	dsn := target.DSN
	if dsn == "" && target.DSNEnv != "" {
		dsn = os.Getenv(target.DSNEnv)
	}
	if dsn == "" {
		return nil, fmt.Errorf("query target %s has no DSN (set %s)", name, target.DSNEnv)
	}
	tool, err := dal.NewTool(ctx, string(target.Provider), dsn, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect query target %s: %w", name, err)
	}
	return tool, nil
}

func toolOptions(cfg *config.Config, target *config.QueryTargetConfig, snapshot *schemastore.Snapshot) dal.ToolOptions {
	opts := dal.ToolOptions{
		RowLimit:                target.RowLimit,
		ExtraTieBreakers:        target.ExtraTieBreakers,
		DisallowFederatedOffset: cfg.Pagination.DisallowFederatedOffset,
	}
	if secret := os.Getenv(cfg.Pagination.CursorSecretEnv); secret != "" {
		opts.CursorSecret = []byte(secret)
	}
	if snapshot != nil {
		opts.TieBreakerMeta = snapshot.TieBreakerMeta
	}
	return opts
}

// Checkpointer selects the checkpoint store for the configured backend.
// The returned closer is non-nil only when the backend owns a connection.
func Checkpointer(cfg *config.WorkflowConfig, dbClient *database.Client) (workflow.Checkpointer, func() error, error) {
	switch cfg.CheckpointBackend {
	case config.CheckpointBackendPostgres:
		return workflow.NewEntCheckpointer(dbClient.Client), nil, nil
	case config.CheckpointBackendRedis:
		addr := os.Getenv(cfg.RedisAddrEnv)
		if addr == "" {
			return nil, nil, fmt.Errorf("redis checkpoint backend requires %s", cfg.RedisAddrEnv)
		}
		client := redis.NewClient(&redis.Options{Addr: addr})
		return workflow.NewRedisCheckpointer(client, cfg.CheckpointTTL), client.Close, nil
	default:
		return workflow.NewMemoryCheckpointer(), nil, nil
	}
}
