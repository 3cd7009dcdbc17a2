package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// QuerraYAMLConfig represents the complete querra.yaml file structure
type QuerraYAMLConfig struct {
	Defaults     *Defaults                    `yaml:"defaults"`
	Queue        *QueueConfig                 `yaml:"queue"`
	Retention    *RetentionConfig             `yaml:"retention"`
	Engine       *EngineYAMLConfig            `yaml:"engine"`
	Guard        *GuardYAMLConfig             `yaml:"guard"`
	Tenant       *TenantYAMLConfig            `yaml:"tenant"`
	Pagination   *PaginationYAMLConfig        `yaml:"pagination"`
	Telemetry    *TelemetryYAMLConfig         `yaml:"telemetry"`
	Workflow     *WorkflowYAMLConfig          `yaml:"workflow"`
	Cache        *CacheYAMLConfig             `yaml:"cache"`
	Recommend    *RecommendYAMLConfig         `yaml:"recommend"`
	QueryTargets map[string]QueryTargetConfig `yaml:"query_targets"`
}

// EngineYAMLConfig holds engine settings from YAML. Unset fields keep the
// built-in defaults; durations are strings like "500ms".
type EngineYAMLConfig struct {
	AutoPagination          *bool  `yaml:"auto_pagination,omitempty"`
	AutoPaginationMaxPages  int    `yaml:"auto_pagination_max_pages,omitempty"`
	AutoPaginationMaxRows   int    `yaml:"auto_pagination_max_rows,omitempty"`
	PrefetchEnabled         *bool  `yaml:"prefetch_enabled,omitempty"`
	PrefetchMaxConcurrency  int    `yaml:"prefetch_max_concurrency,omitempty"`
	PrefetchCheapLatency    string `yaml:"prefetch_cheap_latency,omitempty"`
	PrefetchCheapRowFactor  int    `yaml:"prefetch_cheap_row_factor,omitempty"`
	PrefetchMinBudget       string `yaml:"prefetch_min_budget,omitempty"`
	PrefetchCeiling         string `yaml:"prefetch_ceiling,omitempty"`
	DeadlineGrace           string `yaml:"deadline_grace,omitempty"`
	SchemaBindingValidation *bool  `yaml:"schema_binding_validation,omitempty"`
	SchemaBindingSoftMode   *bool  `yaml:"schema_binding_soft_mode,omitempty"`
	SchemaDriftAutoRefresh  *bool  `yaml:"schema_drift_auto_refresh,omitempty"`
}

// GuardYAMLConfig holds structural validation settings from YAML.
type GuardYAMLConfig struct {
	AllowedTables         []string            `yaml:"allowed_tables,omitempty"`
	AllowedColumns        map[string][]string `yaml:"allowed_columns,omitempty"`
	ColumnAllowlistMode   string              `yaml:"column_allowlist_mode,omitempty"`
	RestrictedTables      []string            `yaml:"restricted_tables,omitempty"`
	SensitiveColumns      []string            `yaml:"sensitive_columns,omitempty"`
	BlockSensitiveColumns *bool               `yaml:"block_sensitive_columns,omitempty"`
	MaxJoinComplexity     int                 `yaml:"max_join_complexity,omitempty"`
	MaxASTNodes           int                 `yaml:"max_ast_nodes,omitempty"`
}

// TenantYAMLConfig holds tenant isolation settings from YAML.
type TenantYAMLConfig struct {
	Enabled          *bool    `yaml:"enabled,omitempty"`
	Column           string   `yaml:"column,omitempty"`
	ExemptTables     []string `yaml:"exempt_tables,omitempty"`
	StrictMode       *bool    `yaml:"strict_mode,omitempty"`
	MaxTargets       int      `yaml:"max_targets,omitempty"`
	MaxParams        int      `yaml:"max_params,omitempty"`
	MaxASTNodes      int      `yaml:"max_ast_nodes,omitempty"`
	AssertInvariants *bool    `yaml:"assert_invariants,omitempty"`
}

// PaginationYAMLConfig holds pagination settings from YAML.
type PaginationYAMLConfig struct {
	CursorSecretEnv         string `yaml:"cursor_secret_env,omitempty"`
	MaxPageSize             int    `yaml:"max_page_size,omitempty"`
	DisallowFederatedOffset *bool  `yaml:"disallow_federated_offset,omitempty"`
}

// TelemetryYAMLConfig holds trace export settings from YAML.
type TelemetryYAMLConfig struct {
	Enabled       *bool    `yaml:"enabled,omitempty"`
	ServiceName   string   `yaml:"service_name,omitempty"`
	Endpoint      string   `yaml:"endpoint,omitempty"`
	Insecure      *bool    `yaml:"insecure,omitempty"`
	SampleRatio   *float64 `yaml:"sample_ratio,omitempty"`
	ContractLevel string   `yaml:"contract_level,omitempty"`
}

// WorkflowYAMLConfig holds graph settings from YAML.
type WorkflowYAMLConfig struct {
	MaxCorrectionRounds *int   `yaml:"max_correction_rounds,omitempty"`
	MaxClarifyRounds    *int   `yaml:"max_clarify_rounds,omitempty"`
	MaxTransitions      int    `yaml:"max_transitions,omitempty"`
	MaxAuditEntries     int    `yaml:"max_audit_entries,omitempty"`
	MaxAuditBytes       int    `yaml:"max_audit_bytes,omitempty"`
	PersistenceFailOpen *bool  `yaml:"persistence_fail_open,omitempty"`
	CheckpointBackend   string `yaml:"checkpoint_backend,omitempty"`
	CheckpointTTL       string `yaml:"checkpoint_ttl,omitempty"`
	RedisAddrEnv        string `yaml:"redis_addr_env,omitempty"`
}

// CacheYAMLConfig holds semantic cache settings from YAML.
type CacheYAMLConfig struct {
	Enabled             *bool    `yaml:"enabled,omitempty"`
	SimilarityThreshold *float64 `yaml:"similarity_threshold,omitempty"`
	CandidateScan       int      `yaml:"candidate_scan,omitempty"`
}

// RecommendYAMLConfig holds few-shot recommendation settings from YAML.
type RecommendYAMLConfig struct {
	Pins                  []PinRuleConfig `yaml:"pins,omitempty"`
	CandidateMultiplier   int             `yaml:"candidate_multiplier,omitempty"`
	MinSimilarity         *float64        `yaml:"min_similarity,omitempty"`
	FallbackMinSimilarity *float64        `yaml:"fallback_min_similarity,omitempty"`
	StaleMaxAgeDays       int             `yaml:"stale_max_age_days,omitempty"`
	MaxQuestionLength     int             `yaml:"max_question_length,omitempty"`
	MaxSQLLength          int             `yaml:"max_sql_length,omitempty"`
	Blocklist             []string        `yaml:"blocklist,omitempty"`
	DiversityEnabled      *bool           `yaml:"diversity_enabled,omitempty"`
	DiversityMinVerified  *int            `yaml:"diversity_min_verified,omitempty"`
	DiversityMaxPerSource int             `yaml:"diversity_max_per_source,omitempty"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir (both optional; built-ins cover a
//     bare deployment)
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge built-in + user-defined configurations
//  5. Resolve per-section defaults
//  6. Apply recognized environment overrides
//  7. Validate all configuration
//  8. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"llm_providers", stats.LLMProviders,
		"query_targets", stats.QueryTargets,
		"default_llm_provider", cfg.Defaults.LLMProvider,
		"default_query_target", cfg.Defaults.QueryTarget)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load querra.yaml (sections, defaults, query targets)
	querraConfig, err := loader.loadQuerraYAML()
	if err != nil {
		return nil, NewLoadError("querra.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Get built-in configuration
	builtin := GetBuiltinConfig()

	// 4. Merge built-in + user-defined components (user overrides built-in)
	llmProvidersMerged := mergeLLMProviders(builtin.LLMProviders, llmProviders)
	queryTargets := mergeQueryTargets(builtin.QueryTargets, querraConfig.QueryTargets)

	// 5. Resolve defaults (YAML overrides built-in)
	defaults := resolveDefaults(querraConfig.Defaults, builtin)

	// 6. Let the environment repoint the default query target
	applyEnvTargetOverrides(queryTargets, defaults.QueryTarget)

	// 7. Build registries
	llmProviderRegistry := NewLLMProviderRegistry(llmProvidersMerged)
	queryTargetRegistry := NewQueryTargetRegistry(queryTargets)

	// 8. Resolve queue config (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve
	// unset defaults.
	queueConfig := DefaultQueueConfig()
	if querraConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, querraConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	cfg := &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Queue:               queueConfig,
		Retention:           resolveRetentionConfig(querraConfig.Retention),
		Engine:              resolveEngineConfig(querraConfig.Engine),
		Guard:               resolveGuardConfig(querraConfig.Guard),
		Tenant:              resolveTenantConfig(querraConfig.Tenant),
		Pagination:          resolvePaginationConfig(querraConfig.Pagination),
		Telemetry:           resolveTelemetryConfig(querraConfig.Telemetry),
		Workflow:            resolveWorkflowConfig(querraConfig.Workflow),
		Cache:               resolveCacheConfig(querraConfig.Cache),
		Recommend:           resolveRecommendConfig(querraConfig.Recommend),
		LLMProviderRegistry: llmProviderRegistry,
		QueryTargetRegistry: queryTargetRegistry,
	}

	// 9. Environment overrides win over YAML
	applyEnvOverrides(cfg)

	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

// loadYAML reads one config file, expands {{.VAR}} templates against the
// environment, and parses it. A missing file is reported as
// ErrConfigNotFound so callers can treat it as optional.
func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadQuerraYAML() (*QuerraYAMLConfig, error) {
	var config QuerraYAMLConfig

	// Initialize map to avoid nil map
	config.QueryTargets = make(map[string]QueryTargetConfig)

	if err := l.loadYAML("querra.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("querra.yaml not found, using built-in defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("llm-providers.yaml not found, using built-in providers")
			return config.LLMProviders, nil
		}
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveDefaults resolves system defaults from YAML, applying built-ins for
// anything unset.
func resolveDefaults(d *Defaults, builtin *BuiltinConfig) *Defaults {
	if d == nil {
		d = &Defaults{}
	}
	if d.LLMProvider == "" {
		d.LLMProvider = builtin.DefaultLLMProvider
	}
	if d.QueryTarget == "" {
		d.QueryTarget = builtin.DefaultQueryTarget
	}
	if d.TokenBudget == nil {
		budget := builtin.DefaultTokenBudget
		d.TokenBudget = &budget
	}
	if d.PageSize == 0 {
		d.PageSize = builtin.DefaultPageSize
	}
	if d.FewShotLimit == 0 {
		d.FewShotLimit = builtin.DefaultFewShotLimit
	}
	return d
}

// resolveRetentionConfig resolves retention configuration, applying defaults.
func resolveRetentionConfig(r *RetentionConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if r == nil {
		return cfg
	}

	if r.SessionRetentionDays > 0 {
		cfg.SessionRetentionDays = r.SessionRetentionDays
	}
	if r.CheckpointTTL > 0 {
		cfg.CheckpointTTL = r.CheckpointTTL
	}
	if r.CacheEntryTTL > 0 {
		cfg.CacheEntryTTL = r.CacheEntryTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}

	return cfg
}

// resolveEngineConfig resolves engine configuration from YAML, applying defaults.
func resolveEngineConfig(y *EngineYAMLConfig) *EngineConfig {
	cfg := DefaultEngineConfig()

	if y == nil {
		return cfg
	}

	if y.AutoPagination != nil {
		cfg.AutoPagination = *y.AutoPagination
	}
	if y.AutoPaginationMaxPages > 0 {
		cfg.AutoPaginationMaxPages = y.AutoPaginationMaxPages
	}
	if y.AutoPaginationMaxRows > 0 {
		cfg.AutoPaginationMaxRows = y.AutoPaginationMaxRows
	}
	if y.PrefetchEnabled != nil {
		cfg.PrefetchEnabled = *y.PrefetchEnabled
	}
	if y.PrefetchMaxConcurrency > 0 {
		cfg.PrefetchMaxConcurrency = y.PrefetchMaxConcurrency
	}
	cfg.PrefetchCheapLatency = parseDuration("engine.prefetch_cheap_latency", y.PrefetchCheapLatency, cfg.PrefetchCheapLatency)
	if y.PrefetchCheapRowFactor > 0 {
		cfg.PrefetchCheapRowFactor = y.PrefetchCheapRowFactor
	}
	cfg.PrefetchMinBudget = parseDuration("engine.prefetch_min_budget", y.PrefetchMinBudget, cfg.PrefetchMinBudget)
	cfg.PrefetchCeiling = parseDuration("engine.prefetch_ceiling", y.PrefetchCeiling, cfg.PrefetchCeiling)
	cfg.DeadlineGrace = parseDuration("engine.deadline_grace", y.DeadlineGrace, cfg.DeadlineGrace)
	if y.SchemaBindingValidation != nil {
		cfg.SchemaBindingValidation = *y.SchemaBindingValidation
	}
	if y.SchemaBindingSoftMode != nil {
		cfg.SchemaBindingSoftMode = *y.SchemaBindingSoftMode
	}
	if y.SchemaDriftAutoRefresh != nil {
		cfg.SchemaDriftAutoRefresh = *y.SchemaDriftAutoRefresh
	}

	return cfg
}

// resolveGuardConfig resolves guard configuration from YAML, applying defaults.
func resolveGuardConfig(y *GuardYAMLConfig) *GuardConfig {
	cfg := DefaultGuardConfig()

	if y == nil {
		return cfg
	}

	if len(y.AllowedTables) > 0 {
		cfg.AllowedTables = y.AllowedTables
	}
	if len(y.AllowedColumns) > 0 {
		cfg.AllowedColumns = y.AllowedColumns
	}
	if y.ColumnAllowlistMode != "" {
		mode := AllowlistMode(y.ColumnAllowlistMode)
		if mode.IsValid() {
			cfg.ColumnAllowlistMode = mode
		} else {
			slog.Warn("Invalid column_allowlist_mode in guard config, using default",
				"value", y.ColumnAllowlistMode,
				"default", cfg.ColumnAllowlistMode)
		}
	}
	if len(y.RestrictedTables) > 0 {
		cfg.RestrictedTables = y.RestrictedTables
	}
	if len(y.SensitiveColumns) > 0 {
		cfg.SensitiveColumns = y.SensitiveColumns
	}
	if y.BlockSensitiveColumns != nil {
		cfg.BlockSensitiveColumns = *y.BlockSensitiveColumns
	}
	if y.MaxJoinComplexity > 0 {
		cfg.MaxJoinComplexity = y.MaxJoinComplexity
	}
	if y.MaxASTNodes > 0 {
		cfg.MaxASTNodes = y.MaxASTNodes
	}

	return cfg
}

// resolveTenantConfig resolves tenant isolation configuration from YAML, applying defaults.
func resolveTenantConfig(y *TenantYAMLConfig) *TenantConfig {
	cfg := DefaultTenantConfig()

	if y == nil {
		return cfg
	}

	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.Column != "" {
		cfg.Column = y.Column
	}
	if len(y.ExemptTables) > 0 {
		cfg.ExemptTables = y.ExemptTables
	}
	if y.StrictMode != nil {
		cfg.StrictMode = *y.StrictMode
	}
	if y.MaxTargets > 0 {
		cfg.MaxTargets = y.MaxTargets
	}
	if y.MaxParams > 0 {
		cfg.MaxParams = y.MaxParams
	}
	if y.MaxASTNodes > 0 {
		cfg.MaxASTNodes = y.MaxASTNodes
	}
	if y.AssertInvariants != nil {
		cfg.AssertInvariants = *y.AssertInvariants
	}

	return cfg
}

// resolvePaginationConfig resolves pagination configuration from YAML, applying defaults.
func resolvePaginationConfig(y *PaginationYAMLConfig) *PaginationConfig {
	cfg := DefaultPaginationConfig()

	if y == nil {
		return cfg
	}

	if y.CursorSecretEnv != "" {
		cfg.CursorSecretEnv = y.CursorSecretEnv
	}
	if y.MaxPageSize > 0 {
		cfg.MaxPageSize = y.MaxPageSize
	}
	if y.DisallowFederatedOffset != nil {
		cfg.DisallowFederatedOffset = *y.DisallowFederatedOffset
	}

	return cfg
}

// resolveTelemetryConfig resolves telemetry configuration from YAML, applying defaults.
func resolveTelemetryConfig(y *TelemetryYAMLConfig) *TelemetryConfig {
	cfg := DefaultTelemetryConfig()

	if y == nil {
		return cfg
	}

	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.ServiceName != "" {
		cfg.ServiceName = y.ServiceName
	}
	if y.Endpoint != "" {
		cfg.Endpoint = y.Endpoint
	}
	if y.Insecure != nil {
		cfg.Insecure = *y.Insecure
	}
	if y.SampleRatio != nil {
		cfg.SampleRatio = *y.SampleRatio
	}
	if y.ContractLevel != "" {
		cfg.ContractLevel = y.ContractLevel
	}

	return cfg
}

// resolveWorkflowConfig resolves workflow configuration from YAML, applying defaults.
func resolveWorkflowConfig(y *WorkflowYAMLConfig) *WorkflowConfig {
	cfg := DefaultWorkflowConfig()

	if y == nil {
		return cfg
	}

	// Zero is meaningful for the loop caps (disables the loop), so these
	// are pointers in YAML.
	if y.MaxCorrectionRounds != nil && *y.MaxCorrectionRounds >= 0 {
		cfg.MaxCorrectionRounds = *y.MaxCorrectionRounds
	}
	if y.MaxClarifyRounds != nil && *y.MaxClarifyRounds >= 0 {
		cfg.MaxClarifyRounds = *y.MaxClarifyRounds
	}
	if y.MaxTransitions > 0 {
		cfg.MaxTransitions = y.MaxTransitions
	}
	if y.MaxAuditEntries > 0 {
		cfg.MaxAuditEntries = y.MaxAuditEntries
	}
	if y.MaxAuditBytes > 0 {
		cfg.MaxAuditBytes = y.MaxAuditBytes
	}
	if y.PersistenceFailOpen != nil {
		cfg.PersistenceFailOpen = *y.PersistenceFailOpen
	}
	if y.CheckpointBackend != "" {
		backend := CheckpointBackend(y.CheckpointBackend)
		if backend.IsValid() {
			cfg.CheckpointBackend = backend
		} else {
			slog.Warn("Invalid checkpoint_backend in workflow config, using default",
				"value", y.CheckpointBackend,
				"default", cfg.CheckpointBackend)
		}
	}
	cfg.CheckpointTTL = parseDuration("workflow.checkpoint_ttl", y.CheckpointTTL, cfg.CheckpointTTL)
	if y.RedisAddrEnv != "" {
		cfg.RedisAddrEnv = y.RedisAddrEnv
	}

	return cfg
}

// resolveCacheConfig resolves semantic cache configuration from YAML, applying defaults.
func resolveCacheConfig(y *CacheYAMLConfig) *CacheConfig {
	cfg := DefaultCacheConfig()

	if y == nil {
		return cfg
	}

	if y.Enabled != nil {
		cfg.Enabled = *y.Enabled
	}
	if y.SimilarityThreshold != nil {
		cfg.SimilarityThreshold = *y.SimilarityThreshold
	}
	if y.CandidateScan > 0 {
		cfg.CandidateScan = y.CandidateScan
	}

	return cfg
}

// resolveRecommendConfig resolves recommendation configuration from YAML, applying defaults.
func resolveRecommendConfig(y *RecommendYAMLConfig) *RecommendConfig {
	cfg := DefaultRecommendConfig()

	if y == nil {
		return cfg
	}

	if len(y.Pins) > 0 {
		cfg.Pins = y.Pins
	}
	if y.CandidateMultiplier > 0 {
		cfg.CandidateMultiplier = y.CandidateMultiplier
	}
	if y.MinSimilarity != nil {
		cfg.MinSimilarity = *y.MinSimilarity
	}
	if y.FallbackMinSimilarity != nil {
		cfg.FallbackMinSimilarity = *y.FallbackMinSimilarity
	}
	if y.StaleMaxAgeDays > 0 {
		cfg.StaleMaxAgeDays = y.StaleMaxAgeDays
	}
	if y.MaxQuestionLength > 0 {
		cfg.MaxQuestionLength = y.MaxQuestionLength
	}
	if y.MaxSQLLength > 0 {
		cfg.MaxSQLLength = y.MaxSQLLength
	}
	if len(y.Blocklist) > 0 {
		cfg.Blocklist = y.Blocklist
	}
	if y.DiversityEnabled != nil {
		cfg.DiversityEnabled = *y.DiversityEnabled
	}
	if y.DiversityMinVerified != nil && *y.DiversityMinVerified >= 0 {
		cfg.DiversityMinVerified = *y.DiversityMinVerified
	}
	if y.DiversityMaxPerSource > 0 {
		cfg.DiversityMaxPerSource = y.DiversityMaxPerSource
	}

	return cfg
}

// parseDuration parses a duration string from YAML, logging and falling back
// on invalid input.
func parseDuration(field, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"field", field,
			"value", value,
			"default", fallback,
			"error", err)
		return fallback
	}
	return d
}
