package config

// CacheConfig controls the semantic question cache.
type CacheConfig struct {
	// Enabled turns the cache_lookup node and write-through on.
	Enabled bool

	// SimilarityThreshold is the cosine floor for semantic hits.
	SimilarityThreshold float64

	// CandidateScan bounds how many recent entries are scored per semantic
	// lookup.
	CandidateScan int
}

// DefaultCacheConfig returns the built-in cache defaults.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Enabled:             true,
		SimilarityThreshold: 0.92,
		CandidateScan:       200,
	}
}
