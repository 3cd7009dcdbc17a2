package config

// PinRuleConfig forces specific registry examples to the front for matching
// questions. Lower priority values win when several rules match.
type PinRuleConfig struct {
	// Match is "exact" or "contains".
	Match string `yaml:"match"`

	// Pattern is the question text to match.
	Pattern string `yaml:"pattern"`

	// Signatures reference registry entries by signature key.
	Signatures []string `yaml:"signatures"`

	// Priority orders competing rules; lower wins.
	Priority int `yaml:"priority"`
}

// RecommendConfig controls few-shot example recommendation.
type RecommendConfig struct {
	// Pins are checked before any retrieval.
	Pins []PinRuleConfig

	// CandidateMultiplier scales the per-source retrieval limit.
	CandidateMultiplier int

	// MinSimilarity is the base similarity floor for candidates.
	MinSimilarity float64

	// FallbackMinSimilarity is the raised floor for interaction-history
	// fallback.
	FallbackMinSimilarity float64

	// StaleMaxAgeDays drops examples not updated within the window; 0
	// disables staleness filtering.
	StaleMaxAgeDays int

	// MaxQuestionLength and MaxSQLLength bound example size.
	MaxQuestionLength int
	MaxSQLLength      int

	// Blocklist drops examples whose SQL matches any of these regex
	// patterns.
	Blocklist []string

	// DiversityEnabled switches the two-pass group-diverse selection on.
	DiversityEnabled bool

	// DiversityMinVerified is the verified floor filled first.
	DiversityMinVerified int

	// DiversityMaxPerSource caps examples drawn from one source.
	DiversityMaxPerSource int
}

// DefaultRecommendConfig returns the built-in recommendation defaults.
func DefaultRecommendConfig() *RecommendConfig {
	return &RecommendConfig{
		CandidateMultiplier:   3,
		MinSimilarity:         0.30,
		FallbackMinSimilarity: 0.60,
		MaxQuestionLength:     2000,
		MaxSQLLength:          8000,
		DiversityEnabled:      true,
		DiversityMinVerified:  1,
		DiversityMaxPerSource: 2,
	}
}
