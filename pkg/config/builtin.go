package config

import (
	"sync"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default LLM providers and query targets so a bare
// deployment works from environment variables alone.
type BuiltinConfig struct {
	LLMProviders        map[string]LLMProviderConfig
	QueryTargets        map[string]QueryTargetConfig
	DefaultLLMProvider  string
	DefaultQueryTarget  string
	DefaultTokenBudget  int
	DefaultPageSize     int
	DefaultFewShotLimit int
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		LLMProviders:        initBuiltinLLMProviders(),
		QueryTargets:        initBuiltinQueryTargets(),
		DefaultLLMProvider:  "openai-default",
		DefaultQueryTarget:  "primary",
		DefaultTokenBudget:  120000,
		DefaultPageSize:     100,
		DefaultFewShotLimit: 3,
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openai-default": {
			Type:           LLMProviderTypeOpenAI,
			Model:          "gpt-4o",
			APIKeyEnv:      "OPENAI_API_KEY",
			EmbeddingModel: "text-embedding-3-small",
			MaxTokens:      4096,
		},
		"anthropic-default": {
			Type:      LLMProviderTypeAnthropic,
			Model:     "claude-sonnet-4-20250514",
			APIKeyEnv: "ANTHROPIC_API_KEY",
			MaxTokens: 4096,
		},
		"google-default": {
			Type:           LLMProviderTypeGoogle,
			Model:          "gemini-2.5-flash",
			APIKeyEnv:      "GOOGLE_API_KEY",
			EmbeddingModel: "text-embedding-004",
			MaxTokens:      4096,
		},
		"xai-default": {
			Type:      LLMProviderTypeXAI,
			Model:     "grok-4",
			APIKeyEnv: "XAI_API_KEY",
			BaseURL:   "https://api.x.ai/v1",
			MaxTokens: 4096,
		},
		"sidecar-default": {
			Type:     LLMProviderTypeGRPC,
			Model:    "local",
			Endpoint: "localhost:9090",
		},
	}
}

func initBuiltinQueryTargets() map[string]QueryTargetConfig {
	return map[string]QueryTargetConfig{
		// Points at the analytics database named by QUERY_TARGET_DSN.
		// Deployments that query somewhere else override or replace it in
		// querra.yaml.
		"primary": {
			Provider: TargetProviderPostgres,
			DSNEnv:   "QUERY_TARGET_DSN",
		},
	}
}
