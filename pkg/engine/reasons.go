package engine

// StopReason records why auto-pagination stopped fetching pages
type StopReason string

const (
	// StopNoNextPage means the backend reported no further pages
	StopNoNextPage StopReason = "NO_NEXT_PAGE"
	// StopMaxPages means the page ceiling was reached
	StopMaxPages StopReason = "MAX_PAGES"
	// StopMaxRows means the accumulated row ceiling was reached
	StopMaxRows StopReason = "MAX_ROWS"
	// StopBudgetExhausted means the remaining deadline fell below the grace window
	StopBudgetExhausted StopReason = "BUDGET_EXHAUSTED"
	// StopFetchError means a page fetch returned a structured tool error
	StopFetchError StopReason = "FETCH_ERROR"
	// StopFetchException means a page fetch failed outside the envelope contract
	StopFetchException StopReason = "FETCH_EXCEPTION"
	// StopTokenRepeat means the backend returned a continuation token already seen
	StopTokenRepeat StopReason = "TOKEN_REPEAT"
	// StopEmptyPageWithToken means an empty page still carried a continuation token
	StopEmptyPageWithToken StopReason = "EMPTY_PAGE_WITH_TOKEN"
	// StopPathologicalEmptyPages means two consecutive empty pages carried tokens
	StopPathologicalEmptyPages StopReason = "PATHOLOGICAL_EMPTY_PAGES"
	// StopUnsupportedCapability means the backend rejected pagination mid-stream
	StopUnsupportedCapability StopReason = "UNSUPPORTED_CAPABILITY"
)

// IsValid checks if the stop reason is valid
func (r StopReason) IsValid() bool {
	switch r {
	case StopNoNextPage,
		StopMaxPages,
		StopMaxRows,
		StopBudgetExhausted,
		StopFetchError,
		StopFetchException,
		StopTokenRepeat,
		StopEmptyPageWithToken,
		StopPathologicalEmptyPages,
		StopUnsupportedCapability:
		return true
	default:
		return false
	}
}

// SuppressReason records why a next-page prefetch was not scheduled
type SuppressReason string

const (
	// SuppressAutoPaginationActive means auto-pagination already consumed the stream
	SuppressAutoPaginationActive SuppressReason = "AUTO_PAGINATION_ACTIVE"
	// SuppressNoNextPage means there is nothing to prefetch
	SuppressNoNextPage SuppressReason = "NO_NEXT_PAGE"
	// SuppressNotCheap means the first page was too slow or too large
	SuppressNotCheap SuppressReason = "NOT_CHEAP"
	// SuppressLowBudget means the remaining deadline is below the prefetch floor
	SuppressLowBudget SuppressReason = "LOW_BUDGET"
	// SuppressAlreadyCachedOrInflight means the admission check found the key taken
	SuppressAlreadyCachedOrInflight SuppressReason = "ALREADY_CACHED_OR_INFLIGHT"
)

// IsValid checks if the suppression reason is valid
func (r SuppressReason) IsValid() bool {
	switch r {
	case SuppressAutoPaginationActive,
		SuppressNoNextPage,
		SuppressNotCheap,
		SuppressLowBudget,
		SuppressAlreadyCachedOrInflight:
		return true
	default:
		return false
	}
}

// Decision is one recorded pipeline choice, surfaced to the workflow's
// decision_events audit list.
type Decision struct {
	Stage   string         `json:"stage"`
	Reason  string         `json:"reason"`
	Details map[string]any `json:"details,omitempty"`
}
