package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds a fully-resolved config that passes validation,
// which individual tests then break one field at a time.
func validTestConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv("TEST_LLM_KEY", "key")

	providers := map[string]*LLMProviderConfig{
		"main": {
			Type:      LLMProviderTypeOpenAI,
			Model:     "gpt-4o",
			APIKeyEnv: "TEST_LLM_KEY",
		},
		"embedded": {
			Type:  LLMProviderTypeStub,
			Model: "",
		},
	}
	targets := map[string]*QueryTargetConfig{
		"primary": {
			Provider: TargetProviderPostgres,
			DSNEnv:   "PRIMARY_DSN",
		},
		"replica": {
			Provider: TargetProviderSQLite,
			DSN:      "file:replica.db",
		},
		"fleet": {
			Provider: TargetProviderFederated,
			Members:  []string{"primary", "replica"},
		},
	}

	budget := 1000
	return &Config{
		Defaults: &Defaults{
			LLMProvider:  "main",
			QueryTarget:  "primary",
			TokenBudget:  &budget,
			PageSize:     100,
			FewShotLimit: 3,
		},
		Queue:               DefaultQueueConfig(),
		Retention:           DefaultRetentionConfig(),
		Engine:              DefaultEngineConfig(),
		Guard:               DefaultGuardConfig(),
		Tenant:              DefaultTenantConfig(),
		Pagination:          DefaultPaginationConfig(),
		Telemetry:           DefaultTelemetryConfig(),
		Workflow:            DefaultWorkflowConfig(),
		Cache:               DefaultCacheConfig(),
		Recommend:           DefaultRecommendConfig(),
		LLMProviderRegistry: NewLLMProviderRegistry(providers),
		QueryTargetRegistry: NewQueryTargetRegistry(targets),
	}
}

func TestValidateAllValid(t *testing.T) {
	cfg := validTestConfig(t)
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateLLMProviders(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name: "invalid type",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"main": {Type: "mystery", Model: "m", APIKeyEnv: "TEST_LLM_KEY"},
				})
			},
			wantErr: "type",
		},
		{
			name: "missing model",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"main": {Type: LLMProviderTypeOpenAI, APIKeyEnv: "TEST_LLM_KEY"},
				})
			},
			wantErr: "model",
		},
		{
			name: "missing api key env",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"main": {Type: LLMProviderTypeAnthropic, Model: "m"},
				})
			},
			wantErr: "api_key_env",
		},
		{
			name: "grpc requires endpoint",
			mutate: func(cfg *Config) {
				cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
					"main": {Type: LLMProviderTypeGRPC, Model: "local"},
				})
			},
			wantErr: "endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateQueryTargets(t *testing.T) {
	tests := []struct {
		name    string
		target  *QueryTargetConfig
		wantErr string
	}{
		{
			name:    "invalid provider",
			target:  &QueryTargetConfig{Provider: "oracle"},
			wantErr: "provider",
		},
		{
			name:    "missing dsn",
			target:  &QueryTargetConfig{Provider: TargetProviderPostgres},
			wantErr: "dsn",
		},
		{
			name:    "federated with one member",
			target:  &QueryTargetConfig{Provider: TargetProviderFederated, Members: []string{"primary"}},
			wantErr: "two members",
		},
		{
			name:    "federated member missing",
			target:  &QueryTargetConfig{Provider: TargetProviderFederated, Members: []string{"primary", "ghost"}},
			wantErr: "ghost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			targets := cfg.QueryTargetRegistry.GetAll()
			targets["bad"] = tt.target
			cfg.QueryTargetRegistry = NewQueryTargetRegistry(targets)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateNestedFederationRejected(t *testing.T) {
	cfg := validTestConfig(t)
	targets := cfg.QueryTargetRegistry.GetAll()
	targets["fleet2"] = &QueryTargetConfig{
		Provider: TargetProviderFederated,
		Members:  []string{"fleet", "primary"},
	}
	cfg.QueryTargetRegistry = NewQueryTargetRegistry(targets)

	err := NewValidator(cfg).ValidateAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "itself federated")
}

func TestValidateDefaults(t *testing.T) {
	t.Run("unknown llm provider", func(t *testing.T) {
		cfg := validTestConfig(t)
		cfg.Defaults.LLMProvider = "ghost"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("unknown query target", func(t *testing.T) {
		cfg := validTestConfig(t)
		cfg.Defaults.QueryTarget = "ghost"
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("api key env unset for default provider", func(t *testing.T) {
		cfg := validTestConfig(t)
		t.Setenv("TEST_LLM_KEY", "")
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_LLM_KEY")
	})

	t.Run("page size above max", func(t *testing.T) {
		cfg := validTestConfig(t)
		cfg.Defaults.PageSize = cfg.Pagination.MaxPageSize + 1
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "page_size")
	})
}

func TestValidateQueue(t *testing.T) {
	t.Run("zero workers", func(t *testing.T) {
		cfg := validTestConfig(t)
		cfg.Queue.WorkerCount = 0
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "worker_count")
	})

	t.Run("orphan threshold below heartbeat", func(t *testing.T) {
		cfg := validTestConfig(t)
		cfg.Queue.OrphanThreshold = cfg.Queue.HeartbeatInterval
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "orphan_threshold")
	})
}

func TestValidateSections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "zero max pages",
			mutate:  func(cfg *Config) { cfg.Engine.AutoPaginationMaxPages = 0 },
			wantErr: "auto_pagination_max_pages",
		},
		{
			name:    "bad allowlist mode",
			mutate:  func(cfg *Config) { cfg.Guard.ColumnAllowlistMode = "strict" },
			wantErr: "column_allowlist_mode",
		},
		{
			name: "tenant enabled without column",
			mutate: func(cfg *Config) {
				cfg.Tenant.Enabled = true
				cfg.Tenant.Column = ""
			},
			wantErr: "column",
		},
		{
			name:    "sample ratio out of range",
			mutate:  func(cfg *Config) { cfg.Telemetry.SampleRatio = 1.5 },
			wantErr: "sample_ratio",
		},
		{
			name: "telemetry enabled without endpoint",
			mutate: func(cfg *Config) {
				cfg.Telemetry.Enabled = true
				cfg.Telemetry.Endpoint = ""
			},
			wantErr: "endpoint",
		},
		{
			name:    "bad checkpoint backend",
			mutate:  func(cfg *Config) { cfg.Workflow.CheckpointBackend = "etcd" },
			wantErr: "checkpoint_backend",
		},
		{
			name:    "cache threshold out of range",
			mutate:  func(cfg *Config) { cfg.Cache.SimilarityThreshold = 1.2 },
			wantErr: "similarity_threshold",
		},
		{
			name:    "blocklist pattern invalid",
			mutate:  func(cfg *Config) { cfg.Recommend.Blocklist = []string{"("} },
			wantErr: "blocklist",
		},
		{
			name: "pin without signatures",
			mutate: func(cfg *Config) {
				cfg.Recommend.Pins = []PinRuleConfig{{Match: "exact", Pattern: "q"}}
			},
			wantErr: "signatures",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			tt.mutate(cfg)
			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
