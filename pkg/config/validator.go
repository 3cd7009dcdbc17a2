package config

import (
	"fmt"
	"os"
	"regexp"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Registries first so that default references can be checked against them

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateQueryTargets(); err != nil {
		return fmt.Errorf("query target validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateQueue(); err != nil {
		return fmt.Errorf("queue validation failed: %w", err)
	}

	if err := v.validateSections(); err != nil {
		return fmt.Errorf("section validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		if provider.Type == "" {
			return NewValidationError("llm_provider", name, "type", ErrMissingRequiredField)
		}
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("%w: %s", ErrInvalidValue, provider.Type))
		}
		if provider.Model == "" && provider.Type != LLMProviderTypeStub {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.Type.RequiresAPIKey() && provider.APIKeyEnv == "" {
			return NewValidationError("llm_provider", name, "api_key_env", ErrMissingRequiredField)
		}
		if provider.Type == LLMProviderTypeGRPC && provider.Endpoint == "" {
			return NewValidationError("llm_provider", name, "endpoint", ErrMissingRequiredField)
		}
		if provider.MaxTokens < 0 {
			return NewValidationError("llm_provider", name, "max_tokens", fmt.Errorf("must not be negative"))
		}
	}
	return nil
}

func (v *ConfigValidator) validateQueryTargets() error {
	targets := v.cfg.QueryTargetRegistry.GetAll()

	for name, target := range targets {
		if target.Provider == "" {
			return NewValidationError("query_target", name, "provider", ErrMissingRequiredField)
		}
		if !target.Provider.IsValid() {
			return NewValidationError("query_target", name, "provider", fmt.Errorf("%w: %s", ErrInvalidValue, target.Provider))
		}

		switch target.Provider {
		case TargetProviderFederated:
			if len(target.Members) < 2 {
				return NewValidationError("query_target", name, "members", fmt.Errorf("federated targets need at least two members"))
			}
			for _, member := range target.Members {
				memberTarget, exists := targets[member]
				if !exists {
					return NewValidationError("query_target", name, "members", fmt.Errorf("%w: member '%s' not found", ErrInvalidReference, member))
				}
				// One level of federation only
				if memberTarget.Provider == TargetProviderFederated {
					return NewValidationError("query_target", name, "members", fmt.Errorf("member '%s' is itself federated", member))
				}
			}
		default:
			if target.DSN == "" && target.DSNEnv == "" {
				return NewValidationError("query_target", name, "dsn", fmt.Errorf("%w: dsn or dsn_env required", ErrMissingRequiredField))
			}
		}

		if target.RowLimit < 0 {
			return NewValidationError("query_target", name, "row_limit", fmt.Errorf("must not be negative"))
		}
	}
	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	if !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, d.LLMProvider))
	}
	if d.EmbeddingProvider != "" && !v.cfg.LLMProviderRegistry.Has(d.EmbeddingProvider) {
		return NewValidationError("defaults", "defaults", "embedding_provider", fmt.Errorf("%w: LLM provider '%s' not found", ErrInvalidReference, d.EmbeddingProvider))
	}

	// API key presence is checked only for the providers that boot will
	// actually construct; unused registry entries stay dormant.
	for field, name := range map[string]string{"llm_provider": d.LLMProvider, "embedding_provider": d.EmbeddingProvider} {
		if name == "" {
			continue
		}
		provider, err := v.cfg.LLMProviderRegistry.Get(name)
		if err != nil {
			continue
		}
		if provider.Type.RequiresAPIKey() && os.Getenv(provider.APIKeyEnv) == "" {
			return NewValidationError("defaults", "defaults", field, fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
		}
	}
	if !v.cfg.QueryTargetRegistry.Has(d.QueryTarget) {
		return NewValidationError("defaults", "defaults", "query_target", fmt.Errorf("%w: query target '%s' not found", ErrInvalidReference, d.QueryTarget))
	}
	if d.TokenBudget != nil && *d.TokenBudget < 1 {
		return NewValidationError("defaults", "defaults", "token_budget", fmt.Errorf("must be at least 1"))
	}
	if d.PageSize < 1 {
		return NewValidationError("defaults", "defaults", "page_size", fmt.Errorf("must be at least 1"))
	}
	if d.PageSize > v.cfg.Pagination.MaxPageSize {
		return NewValidationError("defaults", "defaults", "page_size", fmt.Errorf("exceeds pagination.max_page_size (%d)", v.cfg.Pagination.MaxPageSize))
	}
	if d.FewShotLimit < 0 {
		return NewValidationError("defaults", "defaults", "few_shot_limit", fmt.Errorf("must not be negative"))
	}
	return nil
}

func (v *ConfigValidator) validateQueue() error {
	q := v.cfg.Queue

	if q.WorkerCount < 1 {
		return NewValidationError("queue", "queue", "worker_count", fmt.Errorf("must be at least 1"))
	}
	if q.MaxConcurrentSessions < 1 {
		return NewValidationError("queue", "queue", "max_concurrent_sessions", fmt.Errorf("must be at least 1"))
	}
	if q.PollInterval <= 0 {
		return NewValidationError("queue", "queue", "poll_interval", fmt.Errorf("must be positive"))
	}
	if q.SessionTimeout <= 0 {
		return NewValidationError("queue", "queue", "session_timeout", fmt.Errorf("must be positive"))
	}
	if q.HeartbeatInterval <= 0 {
		return NewValidationError("queue", "queue", "heartbeat_interval", fmt.Errorf("must be positive"))
	}
	// Orphan detection keys off missed heartbeats; the threshold has to
	// exceed the interval or every busy session looks orphaned.
	if q.OrphanThreshold <= q.HeartbeatInterval {
		return NewValidationError("queue", "queue", "orphan_threshold", fmt.Errorf("must exceed heartbeat_interval (%s)", q.HeartbeatInterval))
	}
	if q.MaxRequeues < 0 {
		return NewValidationError("queue", "queue", "max_requeues", fmt.Errorf("must not be negative"))
	}
	return nil
}

func (v *ConfigValidator) validateSections() error {
	e := v.cfg.Engine
	if e.AutoPaginationMaxPages < 1 {
		return NewValidationError("engine", "engine", "auto_pagination_max_pages", fmt.Errorf("must be at least 1"))
	}
	if e.AutoPaginationMaxRows < 1 {
		return NewValidationError("engine", "engine", "auto_pagination_max_rows", fmt.Errorf("must be at least 1"))
	}
	if e.PrefetchMaxConcurrency < 1 {
		return NewValidationError("engine", "engine", "prefetch_max_concurrency", fmt.Errorf("must be at least 1"))
	}
	if e.PrefetchCheapRowFactor < 1 {
		return NewValidationError("engine", "engine", "prefetch_cheap_row_factor", fmt.Errorf("must be at least 1"))
	}

	g := v.cfg.Guard
	if !g.ColumnAllowlistMode.IsValid() {
		return NewValidationError("guard", "guard", "column_allowlist_mode", fmt.Errorf("%w: %s", ErrInvalidValue, g.ColumnAllowlistMode))
	}
	if g.MaxJoinComplexity < 1 {
		return NewValidationError("guard", "guard", "max_join_complexity", fmt.Errorf("must be at least 1"))
	}
	if g.MaxASTNodes < 1 {
		return NewValidationError("guard", "guard", "max_ast_nodes", fmt.Errorf("must be at least 1"))
	}

	t := v.cfg.Tenant
	if t.Enabled && t.Column == "" {
		return NewValidationError("tenant", "tenant", "column", ErrMissingRequiredField)
	}
	if t.MaxTargets < 1 {
		return NewValidationError("tenant", "tenant", "max_targets", fmt.Errorf("must be at least 1"))
	}
	if t.MaxParams < 1 {
		return NewValidationError("tenant", "tenant", "max_params", fmt.Errorf("must be at least 1"))
	}

	p := v.cfg.Pagination
	if p.MaxPageSize < 1 {
		return NewValidationError("pagination", "pagination", "max_page_size", fmt.Errorf("must be at least 1"))
	}

	tel := v.cfg.Telemetry
	if tel.SampleRatio < 0 || tel.SampleRatio > 1 {
		return NewValidationError("telemetry", "telemetry", "sample_ratio", fmt.Errorf("must be within [0, 1]"))
	}
	if tel.Enabled && tel.Endpoint == "" {
		return NewValidationError("telemetry", "telemetry", "endpoint", ErrMissingRequiredField)
	}
	switch tel.ContractLevel {
	case "off", "warn", "error":
	default:
		return NewValidationError("telemetry", "telemetry", "contract_level", fmt.Errorf("%w: %s", ErrInvalidValue, tel.ContractLevel))
	}

	w := v.cfg.Workflow
	if w.MaxCorrectionRounds < 0 {
		return NewValidationError("workflow", "workflow", "max_correction_rounds", fmt.Errorf("must not be negative"))
	}
	if w.MaxClarifyRounds < 0 {
		return NewValidationError("workflow", "workflow", "max_clarify_rounds", fmt.Errorf("must not be negative"))
	}
	if w.MaxTransitions < 1 {
		return NewValidationError("workflow", "workflow", "max_transitions", fmt.Errorf("must be at least 1"))
	}
	if !w.CheckpointBackend.IsValid() {
		return NewValidationError("workflow", "workflow", "checkpoint_backend", fmt.Errorf("%w: %s", ErrInvalidValue, w.CheckpointBackend))
	}

	cache := v.cfg.Cache
	if cache.SimilarityThreshold <= 0 || cache.SimilarityThreshold > 1 {
		return NewValidationError("cache", "cache", "similarity_threshold", fmt.Errorf("must be within (0, 1]"))
	}

	return v.validateRecommend()
}

func (v *ConfigValidator) validateRecommend() error {
	r := v.cfg.Recommend

	if r.CandidateMultiplier < 1 {
		return NewValidationError("recommend", "recommend", "candidate_multiplier", fmt.Errorf("must be at least 1"))
	}
	if r.MinSimilarity < 0 || r.MinSimilarity > 1 {
		return NewValidationError("recommend", "recommend", "min_similarity", fmt.Errorf("must be within [0, 1]"))
	}
	if r.FallbackMinSimilarity < 0 || r.FallbackMinSimilarity > 1 {
		return NewValidationError("recommend", "recommend", "fallback_min_similarity", fmt.Errorf("must be within [0, 1]"))
	}
	for i, pattern := range r.Blocklist {
		if _, err := regexp.Compile(pattern); err != nil {
			return NewValidationError("recommend", "recommend", fmt.Sprintf("blocklist[%d]", i), fmt.Errorf("%w: %v", ErrInvalidValue, err))
		}
	}
	for i, pin := range r.Pins {
		if pin.Pattern == "" {
			return NewValidationError("recommend", fmt.Sprintf("pins[%d]", i), "pattern", ErrMissingRequiredField)
		}
		switch pin.Match {
		case "exact", "contains":
		default:
			return NewValidationError("recommend", fmt.Sprintf("pins[%d]", i), "match", fmt.Errorf("%w: %s", ErrInvalidValue, pin.Match))
		}
		if len(pin.Signatures) == 0 {
			return NewValidationError("recommend", fmt.Sprintf("pins[%d]", i), "signatures", fmt.Errorf("at least one signature required"))
		}
	}
	return nil
}
