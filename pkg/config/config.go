package config

import "time"

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and per-subsystem sections.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Data retention and cleanup
	Retention *RetentionConfig

	// Subsystem sections
	Engine     *EngineConfig
	Guard      *GuardConfig
	Tenant     *TenantConfig
	Pagination *PaginationConfig
	Telemetry  *TelemetryConfig
	Workflow   *WorkflowConfig
	Cache      *CacheConfig
	Recommend  *RecommendConfig

	// Component registries
	LLMProviderRegistry *LLMProviderRegistry
	QueryTargetRegistry *QueryTargetRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	LLMProviders int
	QueryTargets int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	if c.QueryTargetRegistry != nil {
		s.QueryTargets = c.QueryTargetRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// GetQueryTarget retrieves a query target configuration by name.
// This is a convenience method that wraps QueryTargetRegistry.Get().
func (c *Config) GetQueryTarget(name string) (*QueryTargetConfig, error) {
	return c.QueryTargetRegistry.Get(name)
}

// DefaultLLMProvider returns the provider named by Defaults.LLMProvider.
func (c *Config) DefaultLLMProvider() (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(c.Defaults.LLMProvider)
}

// EmbeddingProvider returns the provider used for embeddings, falling back
// to the default LLM provider when none is configured.
func (c *Config) EmbeddingProvider() (*LLMProviderConfig, error) {
	name := c.Defaults.EmbeddingProvider
	if name == "" {
		name = c.Defaults.LLMProvider
	}
	return c.LLMProviderRegistry.Get(name)
}

// DefaultQueryTarget returns the target named by Defaults.QueryTarget.
func (c *Config) DefaultQueryTarget() (*QueryTargetConfig, error) {
	return c.QueryTargetRegistry.Get(c.Defaults.QueryTarget)
}

// QuestionDeadline returns the per-question wall-clock budget.
func (c *Config) QuestionDeadline() time.Duration {
	const fallback = 60 * time.Second
	if c.Defaults == nil || c.Defaults.QuestionTimeout == "" {
		return fallback
	}
	d, err := time.ParseDuration(c.Defaults.QuestionTimeout)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
