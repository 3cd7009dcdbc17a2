package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStats(t *testing.T) {
	cfg := &Config{
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"a": {Type: LLMProviderTypeStub},
			"b": {Type: LLMProviderTypeStub},
		}),
		QueryTargetRegistry: NewQueryTargetRegistry(map[string]*QueryTargetConfig{
			"primary": {Provider: TargetProviderPostgres, DSN: "x"},
		}),
	}

	stats := cfg.Stats()
	assert.Equal(t, 2, stats.LLMProviders)
	assert.Equal(t, 1, stats.QueryTargets)
}

func TestConfigStatsNilRegistries(t *testing.T) {
	cfg := &Config{}
	stats := cfg.Stats()
	assert.Zero(t, stats.LLMProviders)
	assert.Zero(t, stats.QueryTargets)
}

func TestQuestionDeadline(t *testing.T) {
	tests := []struct {
		name     string
		timeout  string
		expected time.Duration
	}{
		{name: "unset uses fallback", timeout: "", expected: 60 * time.Second},
		{name: "valid duration", timeout: "90s", expected: 90 * time.Second},
		{name: "invalid falls back", timeout: "soon", expected: 60 * time.Second},
		{name: "negative falls back", timeout: "-5s", expected: 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Defaults: &Defaults{QuestionTimeout: tt.timeout}}
			assert.Equal(t, tt.expected, cfg.QuestionDeadline())
		})
	}
}

func TestEmbeddingProviderFallsBackToDefault(t *testing.T) {
	cfg := &Config{
		Defaults: &Defaults{LLMProvider: "main"},
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"main":  {Type: LLMProviderTypeOpenAI, Model: "gpt-4o", EmbeddingModel: "text-embedding-3-small"},
			"embed": {Type: LLMProviderTypeGoogle, Model: "gemini-2.5-flash", EmbeddingModel: "text-embedding-004"},
		}),
	}

	provider, err := cfg.EmbeddingProvider()
	require.NoError(t, err)
	assert.Equal(t, "text-embedding-3-small", provider.EmbeddingModel)

	cfg.Defaults.EmbeddingProvider = "embed"
	provider, err = cfg.EmbeddingProvider()
	require.NoError(t, err)
	assert.Equal(t, "text-embedding-004", provider.EmbeddingModel)
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, LLMProviderTypeOpenAI.IsValid())
	assert.True(t, LLMProviderTypeGRPC.IsValid())
	assert.False(t, LLMProviderType("cohere").IsValid())

	assert.True(t, LLMProviderTypeAnthropic.RequiresAPIKey())
	assert.False(t, LLMProviderTypeGRPC.RequiresAPIKey())
	assert.False(t, LLMProviderTypeStub.RequiresAPIKey())

	assert.True(t, TargetProviderFederated.IsValid())
	assert.False(t, TargetProvider("mysql").IsValid())

	assert.True(t, CheckpointBackendRedis.IsValid())
	assert.False(t, CheckpointBackend("s3").IsValid())

	assert.True(t, AllowlistModeWarn.IsValid())
	assert.False(t, AllowlistMode("audit").IsValid())
}
