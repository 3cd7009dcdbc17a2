// Package engine runs one validated, tenant-scoped, paginated SQL execution:
// policy validation, tenant rewrite, dispatch through a query tool,
// auto-pagination, next-page prefetch, error classification, and semantic
// cache write-through. It is the only component that talks to the DAL.
package engine

import (
	"context"
	"encoding/json"
	"time"

	"github.com/querra-ai/querra/pkg/dal"
	"github.com/querra-ai/querra/pkg/schemastore"
	"github.com/querra-ai/querra/pkg/sqlguard"
	"github.com/querra-ai/querra/pkg/tenant"
)

// Canonical error codes the engine emits beyond the validator and pagination
// code sets, which pass through unchanged.
const (
	CodeDBTimeout             = "DB_TIMEOUT"
	CodeTransient             = "TRANSIENT"
	CodeUnsupportedCapability = "UNSUPPORTED_CAPABILITY"
	CodeConnectivity          = "CONNECTIVITY"
	CodeAuth                  = "AUTH"
	CodeResourceExhausted     = "RESOURCE_EXHAUSTED"
	CodeUnknown               = "UNKNOWN"
	CodeTenantUnsupported     = "TENANT_ENFORCEMENT_UNSUPPORTED"
	CodeSyntaxError           = "SYNTAX_ERROR"
	CodeMalformedResponse     = "tool_response_malformed"
)

// DefaultDeadlineGrace is the window below which a doomed call is aborted
// rather than dispatched.
const DefaultDeadlineGrace = 500 * time.Millisecond

// ReplayBundle maps replay keys to recorded raw tool responses. A request
// carrying a bundle short-circuits dispatch when the key matches.
type ReplayBundle map[string]json.RawMessage

// Request is one execution through the pipeline.
type Request struct {
	SQL      string
	TenantID int64
	// Question is the originating natural-language question, used for cache
	// write-through on first-time success.
	Question string
	// Deadline is the absolute budget; zero means unbounded.
	Deadline         time.Time
	PageToken        string
	PageSize         int
	SchemaSnapshotID string
	Seed             int64
	// CompletenessHint distinguishes prefetch cache keys for callers that
	// request different completeness semantics for the same page.
	CompletenessHint string
	// FromCache marks SQL served by the semantic cache; such runs skip cache
	// write-through.
	FromCache bool
	// RetryCount is the correction round this execution belongs to; retries
	// never write through to the cache.
	RetryCount int
	// ReplayBundle serves recorded responses instead of dispatching.
	ReplayBundle ReplayBundle
}

// QueryResult is the accumulated result of a successful execution.
type QueryResult struct {
	Rows          []map[string]any `json:"rows"`
	Columns       []dal.ColumnInfo `json:"columns,omitempty"`
	RowsReturned  int              `json:"rows_returned"`
	IsTruncated   bool             `json:"is_truncated"`
	NextPageToken string           `json:"next_page_token,omitempty"`
	PartialReason string           `json:"partial_reason,omitempty"`
	Provider      string           `json:"provider,omitempty"`
	// ExecutionTimeMs sums backend-reported execution time across pages.
	ExecutionTimeMs float64 `json:"execution_time_ms,omitempty"`
	// PagesFetched counts pages consumed, the first page included.
	PagesFetched int `json:"pages_fetched"`
	// StopReason is set when auto-pagination ran.
	StopReason StopReason `json:"auto_pagination_stopped_reason,omitempty"`
	// FromPrefetch marks a first page served from the prefetch cache.
	FromPrefetch bool `json:"from_prefetch,omitempty"`
}

// Failure is a classified execution error. Message is safe to surface to the
// user; diagnostic detail rides in Metadata for span attributes only.
type Failure struct {
	Category          string         `json:"category"`
	Code              string         `json:"error_code"`
	Message           string         `json:"message"`
	Retryable         bool           `json:"is_retryable"`
	RetryAfterSeconds float64        `json:"retry_after_seconds,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// Outcome is the engine's typed result: exactly one of Result or Error is
// set. Decisions and Drift ride along on both paths.
type Outcome struct {
	Result *QueryResult `json:"result,omitempty"`
	Error  *Failure     `json:"error,omitempty"`
	// RewrittenSQL and Params are the dispatched statement after tenant
	// rewrite; populated whenever the rewrite stage ran.
	RewrittenSQL    string                 `json:"rewritten_sql,omitempty"`
	Params          []any                  `json:"params,omitempty"`
	RewrittenTables []string               `json:"rewritten_tables,omitempty"`
	Decisions       []Decision             `json:"decisions,omitempty"`
	Drift           *schemastore.DriftHint `json:"drift,omitempty"`
}

// CacheWriter is the write-through sink for first-time successes.
type CacheWriter interface {
	UpdateCache(ctx context.Context, tenantID int64, question, sql, schemaVersion string) error
}

// Options configures the pipeline.
type Options struct {
	// Guard configures structural validation.
	Guard sqlguard.Options
	// TenantEnabled turns the rewrite stage on.
	TenantEnabled bool
	// TenantColumn overrides the default isolation column.
	TenantColumn string
	// ExemptTables are shared reference tables skipped by the rewrite.
	ExemptTables []string
	// Tenant carries the rewrite caps.
	Tenant tenant.Options

	// AutoPagination drains continuation tokens up to the ceilings below.
	AutoPagination bool
	MaxPages       int
	MaxRows        int

	// PrefetchEnabled schedules a background fetch of the next page when the
	// first page was cheap.
	PrefetchEnabled        bool
	PrefetchMaxConcurrency int
	// CheapLatency is the first-page latency ceiling for the cheap-page
	// heuristic.
	CheapLatency time.Duration
	// CheapRowFactor caps first-page rows at factor×page_size.
	CheapRowFactor int
	// PrefetchMinBudget is the remaining-deadline floor below which prefetch
	// is suppressed.
	PrefetchMinBudget time.Duration
	// PrefetchCeiling bounds the per-prefetch timeout.
	PrefetchCeiling time.Duration

	// DeadlineGrace aborts dispatch when the remaining budget is below it.
	DeadlineGrace time.Duration

	// SchemaBindingValidation enables the pre-dispatch check of referenced
	// identifiers against the schema snapshot.
	SchemaBindingValidation bool
	// SchemaBindingSoftMode degrades binding failures to drift hints instead
	// of blocking dispatch.
	SchemaBindingSoftMode bool
	// SchemaDriftAutoRefresh marks drift hints as refresh-eligible.
	SchemaDriftAutoRefresh bool

	// DefaultPageSize applies when a request does not set one.
	DefaultPageSize int
}

// DefaultOptions returns the engine options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Guard:                   sqlguard.DefaultOptions(),
		TenantEnabled:           true,
		Tenant:                  tenant.DefaultOptions(),
		AutoPagination:          false,
		MaxPages:                10,
		MaxRows:                 10000,
		PrefetchEnabled:         true,
		PrefetchMaxConcurrency:  4,
		CheapLatency:            time.Second,
		CheapRowFactor:          2,
		PrefetchMinBudget:       5 * time.Second,
		PrefetchCeiling:         10 * time.Second,
		DeadlineGrace:           DefaultDeadlineGrace,
		SchemaBindingValidation: true,
		SchemaBindingSoftMode:   true,
		DefaultPageSize:         dal.DefaultPageSize,
	}
}

func (o Options) deadlineGrace() time.Duration {
	if o.DeadlineGrace > 0 {
		return o.DeadlineGrace
	}
	return DefaultDeadlineGrace
}

func (o Options) pageSize(req *Request) int {
	if req.PageSize > 0 {
		return req.PageSize
	}
	if o.DefaultPageSize > 0 {
		return o.DefaultPageSize
	}
	return dal.DefaultPageSize
}
