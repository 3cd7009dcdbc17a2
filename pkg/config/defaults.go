package config

// Defaults contains system-wide default configurations
// These values are used when a request or component doesn't specify its own values
type Defaults struct {
	// LLM provider used for generation, routing, and synthesis
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// LLM provider used for embeddings; empty reuses LLMProvider
	EmbeddingProvider string `yaml:"embedding_provider,omitempty"`

	// Query target executed against when a session doesn't name one
	QueryTarget string `yaml:"query_target,omitempty"`

	// Per-session LLM token budget (prompt + completion estimate)
	TokenBudget *int `yaml:"token_budget,omitempty" validate:"omitempty,min=1"`

	// Per-question wall-clock deadline, e.g. "60s"
	QuestionTimeout string `yaml:"question_timeout,omitempty"`

	// Result page size when a request doesn't set one
	PageSize int `yaml:"page_size,omitempty" validate:"omitempty,min=1"`

	// Few-shot examples injected into the generation prompt
	FewShotLimit int `yaml:"few_shot_limit,omitempty" validate:"omitempty,min=0"`
}
