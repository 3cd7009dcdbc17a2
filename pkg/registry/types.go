// Package registry selects few-shot examples for the generate prompt: pinned
// overrides, semantically similar verified and seeded pairs, validity and
// safety filtering, status-priority ranking, fingerprint dedupe, diversity
// enforcement, and an interaction-history fallback. Every recommendation
// carries an explanation of how it was assembled.
package registry

import (
	"context"
	"regexp"
	"time"
)

// Status is the lifecycle state of a registry example
type Status string

const (
	StatusSeeded     Status = "seeded"
	StatusVerified   Status = "verified"
	StatusTombstoned Status = "tombstoned"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusSeeded, StatusVerified, StatusTombstoned:
		return true
	}
	return false
}

// Role distinguishes curated examples from recorded interactions
type Role string

const (
	RoleExample     Role = "example"
	RoleInteraction Role = "interaction"
)

// Selection sources reported on recommended examples
const (
	SourcePinned      = "pinned"
	SourceVerified    = "verified"
	SourceSeeded      = "seeded"
	SourceInteraction = "interaction"
)

// MatchKind is how a pin rule matches a question
type MatchKind string

const (
	MatchExact    MatchKind = "exact"
	MatchContains MatchKind = "contains"
)

// IsValid checks if the match kind is valid
func (m MatchKind) IsValid() bool {
	return m == MatchExact || m == MatchContains
}

// PinRule forces specific examples to the front for matching questions.
// Lower priority values win when several rules match.
type PinRule struct {
	Match    MatchKind `json:"match" yaml:"match"`
	Pattern  string    `json:"pattern" yaml:"pattern"`
	Priority int       `json:"priority" yaml:"priority"`
	// Signatures reference registry entries by signature key.
	Signatures []string `json:"signatures" yaml:"signatures"`
}

// Example is one stored (question, SQL) pair. Uniqueness is
// (signature key, tenant).
type Example struct {
	SignatureKey string         `json:"signature_key"`
	TenantID     int64          `json:"tenant_id"`
	Question     string         `json:"question"`
	SQL          string         `json:"sql_query"`
	Roles        []Role         `json:"roles,omitempty"`
	Status       Status         `json:"status"`
	// CanonicalGroupID groups semantically equivalent pairs; empty falls
	// back to the signature key.
	CanonicalGroupID string         `json:"canonical_group_id,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	CreatedAt        time.Time      `json:"created_at,omitempty"`
	UpdatedAt        time.Time      `json:"updated_at,omitempty"`
}

// GroupID returns the diversity grouping key.
func (e *Example) GroupID() string {
	if e.CanonicalGroupID != "" {
		return e.CanonicalGroupID
	}
	return e.SignatureKey
}

// HasRole reports whether the example carries the role.
func (e *Example) HasRole(role Role) bool {
	for _, r := range e.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Candidate pairs an example with its semantic similarity score.
type Candidate struct {
	Example Example
	Score   float64
}

// SearchQuery is one semantic lookup against the store.
type SearchQuery struct {
	TenantID int64
	Question string
	Role     Role
	Statuses []Status
	Limit    int
	// MinScore drops candidates below the similarity floor; 0 disables.
	MinScore float64
}

// ExampleStore is the persistence boundary. Implementations rank by
// embedding similarity against the question.
type ExampleStore interface {
	SemanticSearch(ctx context.Context, q SearchQuery) ([]Candidate, error)
	GetBySignature(ctx context.Context, tenantID int64, signatureKey string) (*Example, error)
}

// Query is one recommendation request.
type Query struct {
	Question       string
	TenantID       int64
	Limit          int
	EnableFallback bool
}

// RecommendedExample is one selected example in final order.
type RecommendedExample struct {
	Question         string         `json:"question"`
	SQL              string         `json:"sql"`
	Score            float64        `json:"score"`
	Source           string         `json:"source"`
	CanonicalGroupID string         `json:"canonical_group_id,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
}

// Explanation describes how the recommendation was assembled.
type Explanation struct {
	// PinsMatched lists the patterns of pin rules that fired.
	PinsMatched []string `json:"pins_matched,omitempty"`
	// Candidates counts retrieved candidates per source.
	Candidates map[string]int `json:"candidates,omitempty"`
	// Filtered counts dropped candidates per reason.
	Filtered          map[string]int `json:"filtered,omitempty"`
	DuplicatesDropped int            `json:"duplicates_dropped,omitempty"`
	DiversityApplied  bool           `json:"diversity_applied,omitempty"`
	// DiversitySkipped counts candidates passed over by the diversity policy.
	DiversitySkipped int  `json:"diversity_skipped,omitempty"`
	FallbackUsed     bool `json:"fallback_used,omitempty"`
	FallbackAdded    int  `json:"fallback_added,omitempty"`
}

// Result is the ordered selection plus its explanation.
type Result struct {
	Examples    []RecommendedExample `json:"examples"`
	Explanation Explanation          `json:"explanation"`
}

// Filter reasons reported in the explanation
const (
	FilterTombstoned     = "tombstoned"
	FilterIncomplete     = "incomplete"
	FilterStale          = "stale"
	FilterSafety         = "safety"
	FilterBelowThreshold = "below_threshold"
)

// Options configures the recommender.
type Options struct {
	// Pins are checked before any retrieval.
	Pins []PinRule
	// CandidateMultiplier scales the per-source retrieval limit.
	CandidateMultiplier int
	// MinSimilarity is the base similarity floor for candidates.
	MinSimilarity float64
	// StatusPriority ranks candidates across statuses; higher wins.
	StatusPriority map[Status]int
	// StaleMaxAgeDays drops examples not updated within the window; 0
	// disables staleness filtering.
	StaleMaxAgeDays int

	// MaxQuestionLength and MaxSQLLength bound example size.
	MaxQuestionLength int
	MaxSQLLength      int
	// Blocklist drops examples whose SQL matches any pattern.
	Blocklist []*regexp.Regexp
	// Sanitize runs structural validation over example SQL and drops
	// failures.
	Sanitize bool

	// DiversityEnabled switches the two-pass selection on.
	DiversityEnabled bool
	// DiversityMinVerified is the verified floor filled first.
	DiversityMinVerified int
	// DiversityMaxPerSource caps examples drawn from one source.
	DiversityMaxPerSource int

	// FallbackMinSimilarity is the raised floor for interaction-history
	// fallback.
	FallbackMinSimilarity float64
}

// Default recommender settings
const (
	DefaultCandidateMultiplier   = 3
	DefaultMinSimilarity         = 0.30
	DefaultFallbackMinSimilarity = 0.60
	DefaultMaxQuestionLength     = 2000
	DefaultMaxSQLLength          = 8000
	DefaultDiversityMinVerified  = 1
	DefaultDiversityMaxPerSource = 2
	DefaultLimit                 = 3
)

// DefaultOptions returns the recommender settings used when nothing is
// configured.
func DefaultOptions() Options {
	return Options{
		CandidateMultiplier:   DefaultCandidateMultiplier,
		MinSimilarity:         DefaultMinSimilarity,
		StatusPriority:        map[Status]int{StatusVerified: 2, StatusSeeded: 1},
		MaxQuestionLength:     DefaultMaxQuestionLength,
		MaxSQLLength:          DefaultMaxSQLLength,
		Sanitize:              true,
		DiversityEnabled:      true,
		DiversityMinVerified:  DefaultDiversityMinVerified,
		DiversityMaxPerSource: DefaultDiversityMaxPerSource,
		FallbackMinSimilarity: DefaultFallbackMinSimilarity,
	}
}

func (o Options) candidateMultiplier() int {
	if o.CandidateMultiplier > 0 {
		return o.CandidateMultiplier
	}
	return DefaultCandidateMultiplier
}

func (o Options) statusPriority(s Status) int {
	if o.StatusPriority == nil {
		return 0
	}
	return o.StatusPriority[s]
}
