package config

import "time"

// EngineConfig controls query dispatch, auto-pagination, and prefetch.
type EngineConfig struct {
	// AutoPagination drains continuation tokens server-side up to the
	// ceilings below instead of returning the first page.
	AutoPagination bool

	// AutoPaginationMaxPages caps pages fetched per auto-paginated query.
	AutoPaginationMaxPages int

	// AutoPaginationMaxRows caps accumulated rows per auto-paginated query.
	AutoPaginationMaxRows int

	// PrefetchEnabled schedules a background fetch of the next page when
	// the first page was cheap.
	PrefetchEnabled bool

	// PrefetchMaxConcurrency bounds in-flight prefetches per engine.
	PrefetchMaxConcurrency int

	// PrefetchCheapLatency is the first-page latency ceiling for the
	// cheap-page heuristic.
	PrefetchCheapLatency time.Duration

	// PrefetchCheapRowFactor caps first-page rows at factor×page_size.
	PrefetchCheapRowFactor int

	// PrefetchMinBudget is the remaining-deadline floor below which
	// prefetch is suppressed.
	PrefetchMinBudget time.Duration

	// PrefetchCeiling bounds the per-prefetch timeout.
	PrefetchCeiling time.Duration

	// DeadlineGrace aborts dispatch when the remaining budget is below it.
	DeadlineGrace time.Duration

	// SchemaBindingValidation checks referenced identifiers against the
	// schema snapshot before dispatch.
	SchemaBindingValidation bool

	// SchemaBindingSoftMode degrades binding failures to drift hints
	// instead of blocking dispatch.
	SchemaBindingSoftMode bool

	// SchemaDriftAutoRefresh marks drift hints as refresh-eligible.
	SchemaDriftAutoRefresh bool
}

// DefaultEngineConfig returns the built-in engine defaults.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		AutoPagination:          false,
		AutoPaginationMaxPages:  10,
		AutoPaginationMaxRows:   10000,
		PrefetchEnabled:         true,
		PrefetchMaxConcurrency:  4,
		PrefetchCheapLatency:    1 * time.Second,
		PrefetchCheapRowFactor:  2,
		PrefetchMinBudget:       5 * time.Second,
		PrefetchCeiling:         10 * time.Second,
		DeadlineGrace:           500 * time.Millisecond,
		SchemaBindingValidation: true,
		SchemaBindingSoftMode:   true,
		SchemaDriftAutoRefresh:  false,
	}
}
