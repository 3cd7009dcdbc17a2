package config

// LLMProviderType defines supported LLM providers
type LLMProviderType string

const (
	// LLMProviderTypeOpenAI is the OpenAI API
	LLMProviderTypeOpenAI LLMProviderType = "openai"
	// LLMProviderTypeAnthropic is the Anthropic Claude API
	LLMProviderTypeAnthropic LLMProviderType = "anthropic"
	// LLMProviderTypeGoogle is the Google Gemini API
	LLMProviderTypeGoogle LLMProviderType = "google"
	// LLMProviderTypeXAI is the xAI Grok API (OpenAI-compatible)
	LLMProviderTypeXAI LLMProviderType = "xai"
	// LLMProviderTypeGRPC is a local model sidecar speaking the llm proto
	LLMProviderTypeGRPC LLMProviderType = "grpc"
	// LLMProviderTypeStub is a canned-response client for tests and dry runs
	LLMProviderTypeStub LLMProviderType = "stub"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	switch t {
	case LLMProviderTypeOpenAI,
		LLMProviderTypeAnthropic,
		LLMProviderTypeGoogle,
		LLMProviderTypeXAI,
		LLMProviderTypeGRPC,
		LLMProviderTypeStub:
		return true
	default:
		return false
	}
}

// RequiresAPIKey reports whether the provider type needs an API key env var
func (t LLMProviderType) RequiresAPIKey() bool {
	switch t {
	case LLMProviderTypeOpenAI, LLMProviderTypeAnthropic, LLMProviderTypeGoogle, LLMProviderTypeXAI:
		return true
	default:
		return false
	}
}

// TargetProvider defines supported query target backends
type TargetProvider string

const (
	// TargetProviderPostgres executes against a PostgreSQL database
	TargetProviderPostgres TargetProvider = "postgres"
	// TargetProviderSQLite executes against an embedded SQLite database
	TargetProviderSQLite TargetProvider = "sqlite"
	// TargetProviderFederated fans a query out across member targets
	TargetProviderFederated TargetProvider = "federated"
)

// IsValid checks if the target provider is valid
func (p TargetProvider) IsValid() bool {
	return p == TargetProviderPostgres || p == TargetProviderSQLite || p == TargetProviderFederated
}

// CheckpointBackend defines where workflow checkpoints are stored
type CheckpointBackend string

const (
	// CheckpointBackendMemory keeps checkpoints in process memory (dev/tests)
	CheckpointBackendMemory CheckpointBackend = "memory"
	// CheckpointBackendPostgres persists checkpoints in the application database
	CheckpointBackendPostgres CheckpointBackend = "postgres"
	// CheckpointBackendRedis persists checkpoints in Redis with a TTL
	CheckpointBackendRedis CheckpointBackend = "redis"
)

// IsValid checks if the checkpoint backend is valid
func (b CheckpointBackend) IsValid() bool {
	return b == CheckpointBackendMemory || b == CheckpointBackendPostgres || b == CheckpointBackendRedis
}

// AllowlistMode defines column allowlist enforcement levels
type AllowlistMode string

const (
	// AllowlistModeOff disables column allowlist checks
	AllowlistModeOff AllowlistMode = "off"
	// AllowlistModeWarn reports allowlist misses without blocking
	AllowlistModeWarn AllowlistMode = "warn"
	// AllowlistModeBlock rejects queries that touch unlisted columns
	AllowlistModeBlock AllowlistMode = "block"
)

// IsValid checks if the allowlist mode is valid
func (m AllowlistMode) IsValid() bool {
	return m == AllowlistModeOff || m == AllowlistModeWarn || m == AllowlistModeBlock
}
