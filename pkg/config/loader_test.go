package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)
	t.Setenv("OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.NotNil(t, cfg.LLMProviderRegistry)
	assert.NotNil(t, cfg.QueryTargetRegistry)
	assert.NotNil(t, cfg.Defaults)
	assert.NotNil(t, cfg.Queue)
	assert.NotNil(t, cfg.Engine)
	assert.NotNil(t, cfg.Guard)
	assert.NotNil(t, cfg.Tenant)
	assert.NotNil(t, cfg.Pagination)
	assert.NotNil(t, cfg.Telemetry)
	assert.NotNil(t, cfg.Workflow)

	// Built-in configs are loaded
	assert.True(t, cfg.LLMProviderRegistry.Has("openai-default"))
	assert.True(t, cfg.LLMProviderRegistry.Has("anthropic-default"))
	assert.True(t, cfg.QueryTargetRegistry.Has("primary"))

	stats := cfg.Stats()
	assert.Greater(t, stats.LLMProviders, 0)
	assert.Greater(t, stats.QueryTargets, 0)
}

func TestInitializeMissingFilesUsesBuiltins(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "openai-default", cfg.Defaults.LLMProvider)
	assert.Equal(t, "primary", cfg.Defaults.QueryTarget)
	assert.True(t, cfg.Tenant.Enabled)
	assert.Equal(t, "tenant_id", cfg.Tenant.Column)
	assert.Equal(t, 2, cfg.Workflow.MaxCorrectionRounds)
	assert.Equal(t, 2, cfg.Workflow.MaxClarifyRounds)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	err := os.WriteFile(filepath.Join(configDir, "querra.yaml"), []byte("defaults: [not a map"), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// defaults reference a provider that doesn't exist
	config := `
defaults:
  llm_provider: "no-such-provider"
`
	err := os.WriteFile(filepath.Join(configDir, "querra.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "no-such-provider")
}

func TestLoadQuerraYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
defaults:
  llm_provider: "test-provider"
  query_target: "warehouse"
  page_size: 50
  question_timeout: "90s"

engine:
  auto_pagination: true
  auto_pagination_max_pages: 4
  prefetch_enabled: false
  deadline_grace: "250ms"

guard:
  column_allowlist_mode: "block"
  max_join_complexity: 3
  allowed_tables: ["orders", "customers"]

tenant:
  strict_mode: true
  exempt_tables: ["currencies"]

workflow:
  max_correction_rounds: 1
  checkpoint_backend: "redis"
  checkpoint_ttl: "2h"

query_targets:
  warehouse:
    provider: postgres
    dsn_env: WAREHOUSE_DSN
    row_limit: 2000
`
	err := os.WriteFile(filepath.Join(configDir, "querra.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	querraConfig, err := loader.loadQuerraYAML()

	require.NoError(t, err)
	assert.Equal(t, "test-provider", querraConfig.Defaults.LLMProvider)
	assert.Equal(t, "warehouse", querraConfig.Defaults.QueryTarget)
	assert.Equal(t, 50, querraConfig.Defaults.PageSize)

	require.NotNil(t, querraConfig.Engine)
	require.NotNil(t, querraConfig.Engine.AutoPagination)
	assert.True(t, *querraConfig.Engine.AutoPagination)
	assert.Equal(t, 4, querraConfig.Engine.AutoPaginationMaxPages)
	require.NotNil(t, querraConfig.Engine.PrefetchEnabled)
	assert.False(t, *querraConfig.Engine.PrefetchEnabled)

	require.NotNil(t, querraConfig.Guard)
	assert.Equal(t, "block", querraConfig.Guard.ColumnAllowlistMode)
	assert.Equal(t, []string{"orders", "customers"}, querraConfig.Guard.AllowedTables)

	require.NotNil(t, querraConfig.Workflow)
	require.NotNil(t, querraConfig.Workflow.MaxCorrectionRounds)
	assert.Equal(t, 1, *querraConfig.Workflow.MaxCorrectionRounds)

	require.Contains(t, querraConfig.QueryTargets, "warehouse")
	assert.Equal(t, TargetProviderPostgres, querraConfig.QueryTargets["warehouse"].Provider)
	assert.Equal(t, 2000, querraConfig.QueryTargets["warehouse"].RowLimit)
}

func TestLoadLLMProvidersYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
llm_providers:
  test-provider:
    type: anthropic
    model: test-model
    api_key_env: TEST_API_KEY
    max_tokens: 2048
`
	err := os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	providers, err := loader.loadLLMProvidersYAML()

	require.NoError(t, err)
	require.Contains(t, providers, "test-provider")
	assert.Equal(t, LLMProviderTypeAnthropic, providers["test-provider"].Type)
	assert.Equal(t, "test-model", providers["test-provider"].Model)
	assert.Equal(t, 2048, providers["test-provider"].MaxTokens)
}

func TestInitializeSectionResolution(t *testing.T) {
	configDir := t.TempDir()

	config := `
engine:
  auto_pagination: true
  prefetch_cheap_latency: "2s"

guard:
  column_allowlist_mode: "warn"

tenant:
  enabled: false

telemetry:
  enabled: true
  endpoint: "collector:4317"
  sample_ratio: 0.25

workflow:
  max_clarify_rounds: 0
  persistence_fail_open: false
`
	err := os.WriteFile(filepath.Join(configDir, "querra.yaml"), []byte(config), 0644)
	require.NoError(t, err)
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	// Overridden values
	assert.True(t, cfg.Engine.AutoPagination)
	assert.Equal(t, 2*time.Second, cfg.Engine.PrefetchCheapLatency)
	assert.Equal(t, AllowlistModeWarn, cfg.Guard.ColumnAllowlistMode)
	assert.False(t, cfg.Tenant.Enabled)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "collector:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, 0.25, cfg.Telemetry.SampleRatio)
	assert.Equal(t, 0, cfg.Workflow.MaxClarifyRounds)
	assert.False(t, cfg.Workflow.PersistenceFailOpen)

	// Untouched values keep defaults
	assert.Equal(t, 10, cfg.Engine.AutoPaginationMaxPages)
	assert.True(t, cfg.Engine.SchemaBindingValidation)
	assert.Equal(t, 10, cfg.Guard.MaxJoinComplexity)
	assert.Equal(t, "tenant_id", cfg.Tenant.Column)
	assert.Equal(t, 50, cfg.Workflow.MaxTransitions)
	assert.Equal(t, 2, cfg.Workflow.MaxCorrectionRounds)
}

func TestQueueConfigMergePreservesDefaults(t *testing.T) {
	configDir := t.TempDir()

	// Only override worker_count; durations are Go duration ints in YAML
	config := `
queue:
  worker_count: 12
`
	err := os.WriteFile(filepath.Join(configDir, "querra.yaml"), []byte(config), 0644)
	require.NoError(t, err)
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Queue.WorkerCount)
	assert.Equal(t, DefaultQueueConfig().PollInterval, cfg.Queue.PollInterval)
	assert.Equal(t, DefaultQueueConfig().SessionTimeout, cfg.Queue.SessionTimeout)
	assert.Equal(t, DefaultQueueConfig().HeartbeatInterval, cfg.Queue.HeartbeatInterval)
}

func TestInitializeExpandsEnvInDSN(t *testing.T) {
	configDir := t.TempDir()

	config := `
defaults:
  query_target: "warehouse"

query_targets:
  warehouse:
    provider: postgres
    dsn: "postgres://app:{{.WAREHOUSE_PASSWORD}}@db:5432/warehouse"
`
	err := os.WriteFile(filepath.Join(configDir, "querra.yaml"), []byte(config), 0644)
	require.NoError(t, err)
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("WAREHOUSE_PASSWORD", "s3cr3t")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	target, err := cfg.DefaultQueryTarget()
	require.NoError(t, err)
	assert.Equal(t, "postgres://app:s3cr3t@db:5432/warehouse", target.DSN)
}

func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	querraYAML := `
defaults:
  llm_provider: "openai-default"
  page_size: 100
`
	err := os.WriteFile(filepath.Join(dir, "querra.yaml"), []byte(querraYAML), 0644)
	require.NoError(t, err)

	llmYAML := `
llm_providers: {}
`
	err = os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(llmYAML), 0644)
	require.NoError(t, err)

	return dir
}
