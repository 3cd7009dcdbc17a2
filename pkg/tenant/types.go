// Package tenant rewrites SELECT statements so that every eligible base-table
// reference carries a tenant-scoped equality predicate. The rewrite is a pure
// function: the same request always produces byte-identical SQL and params.
// It fails closed on shapes it cannot prove safe.
package tenant

// ErrorKind is the closed set of rewrite failure classifications
type ErrorKind string

const (
	// KindUnsupportedShape covers set operations, nested FROM selects, window
	// functions, correlated subqueries, and other shapes the rewriter refuses
	KindUnsupportedShape ErrorKind = "UNSUPPORTED_SHAPE"
	// KindMissingTenantColumn means a targeted table has no tenant column
	KindMissingTenantColumn ErrorKind = "MISSING_TENANT_COLUMN"
	// KindTargetLimitExceeded means too many table references were collected
	KindTargetLimitExceeded ErrorKind = "TARGET_LIMIT_EXCEEDED"
	// KindParamLimitExceeded means the appended parameter list grew past its cap
	KindParamLimitExceeded ErrorKind = "PARAM_LIMIT_EXCEEDED"
	// KindASTComplexityExceeded means the parsed tree is over the node ceiling
	KindASTComplexityExceeded ErrorKind = "AST_COMPLEXITY_EXCEEDED"
	// KindCompletenessFailed means the post-rewrite audit found an uncovered reference
	KindCompletenessFailed ErrorKind = "COMPLETENESS_FAILED"
	// KindDialectUnsupported means the provider dialect is not handled
	KindDialectUnsupported ErrorKind = "DIALECT_UNSUPPORTED"
	// KindParseFailed means the statement did not parse
	KindParseFailed ErrorKind = "PARSE_FAILED"
	// KindNoPredicatesProduced means no eligible table reference was found
	KindNoPredicatesProduced ErrorKind = "NO_PREDICATES_PRODUCED"
)

// IsValid checks if the error kind is valid
func (k ErrorKind) IsValid() bool {
	switch k {
	case KindUnsupportedShape,
		KindMissingTenantColumn,
		KindTargetLimitExceeded,
		KindParamLimitExceeded,
		KindASTComplexityExceeded,
		KindCompletenessFailed,
		KindDialectUnsupported,
		KindParseFailed,
		KindNoPredicatesProduced:
		return true
	default:
		return false
	}
}

// kindMessages are the user-visible rejection messages. They are generic on
// purpose: no table name, column name, literal, or SQL fragment from the
// input may ever appear here.
var kindMessages = map[ErrorKind]string{
	KindUnsupportedShape:      "tenant isolation is not supported for this query shape",
	KindMissingTenantColumn:   "tenant isolation is not supported for one or more tables in this query",
	KindTargetLimitExceeded:   "tenant isolation limits exceeded for this query",
	KindParamLimitExceeded:    "tenant isolation limits exceeded for this query",
	KindASTComplexityExceeded: "query is too complex for tenant isolation",
	KindCompletenessFailed:    "tenant isolation could not be fully applied to this query",
	KindDialectUnsupported:    "tenant isolation is not supported for this provider",
	KindParseFailed:           "query could not be parsed",
	KindNoPredicatesProduced:  "tenant isolation produced no predicates for this query",
}

// Message returns the sanitized user-visible message for the kind
func (k ErrorKind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return "tenant isolation is not supported for this query"
}

// Error is a classified rewrite failure. Error() returns only the sanitized
// kind message; Detail() carries shape-level diagnostics (counts and construct
// labels, never identifiers) for span attributes.
type Error struct {
	Kind   ErrorKind
	detail string
}

func (e *Error) Error() string {
	return e.Kind.Message()
}

// Detail returns the span-safe diagnostic detail
func (e *Error) Detail() string {
	return e.detail
}

func newError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, detail: detail}
}

// Options carries the rewrite caps and debug switches
type Options struct {
	// StrictMode escalates ambiguous unqualified references inside subqueries
	// to correlation rejections.
	StrictMode bool
	// MaxTargets caps the number of table references eligible for injection.
	MaxTargets int
	// MaxParams caps the appended parameter list.
	MaxParams int
	// MaxASTNodes caps the parsed tree size.
	MaxASTNodes int
	// AssertInvariants re-runs the rewrite and asserts byte-identical output.
	AssertInvariants bool
}

const (
	// DefaultMaxTargets is the table-reference cap applied when unconfigured
	DefaultMaxTargets = 20
	// DefaultMaxParams is the parameter cap applied when unconfigured
	DefaultMaxParams = 20
	// DefaultMaxASTNodes is the tree-size cap applied when unconfigured
	DefaultMaxASTNodes = 5000
	// DefaultTenantColumn is the column injected when none is configured
	DefaultTenantColumn = "tenant_id"
)

// DefaultOptions returns the rewrite options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		MaxTargets:  DefaultMaxTargets,
		MaxParams:   DefaultMaxParams,
		MaxASTNodes: DefaultMaxASTNodes,
	}
}

// Request is one rewrite invocation
type Request struct {
	SQL      string
	Provider string
	TenantID any
	// TenantColumn is the equality column; DefaultTenantColumn when empty.
	TenantColumn string
	// ExemptTables are skipped during injection (shared reference tables).
	ExemptTables []string
	// TableColumns is optional per-table column metadata. When a targeted
	// table is present here without the tenant column, the rewrite fails
	// with MISSING_TENANT_COLUMN instead of emitting a broken predicate.
	TableColumns map[string][]string
	Options      Options
}

// Classification describes the statement shape that was rewritten
type Classification struct {
	HasCTE      bool `json:"has_cte"`
	HasSubquery bool `json:"has_subquery"`
	ScopeDepth  int  `json:"scope_depth"`
}

// Result is a successful rewrite
type Result struct {
	SQL             string         `json:"sql"`
	Params          []any          `json:"params"`
	RewrittenTables []string       `json:"rewritten_tables"`
	PredicateCount  int            `json:"predicate_count"`
	Classification  Classification `json:"classification"`
}

// supportedProviders are dialects the rewriter can emit for. Parsing uses the
// PostgreSQL grammar; SQLite accepts the emitted $n placeholder form.
var supportedProviders = map[string]struct{}{
	"postgres":   {},
	"postgresql": {},
	"sqlite":     {},
}
