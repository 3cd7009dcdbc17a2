// Package keyset implements stable, verifiable cursors over ORDER-BY
// terminated SELECTs: order-key extraction, tie-breaker validation against
// schema metadata, opaque signed cursor encoding, and construction of the
// lexicographic "strictly after" predicate.
package keyset

import "fmt"

// Canonical error codes for pagination failures
const (
	CodeFederatedOrderingUnsafe  = "PAGINATION_FEDERATED_ORDERING_UNSAFE"
	CodeFederatedUnsupported     = "PAGINATION_FEDERATED_UNSUPPORTED"
	CodeBackendSetChanged        = "PAGINATION_BACKEND_SET_CHANGED"
	CodeRequiresStableTieBreaker = "KEYSET_REQUIRES_STABLE_TIEBREAKER"
	CodeTieBreakerNullable       = "KEYSET_TIEBREAKER_NULLABLE"
	CodeTieBreakerNotUnique      = "KEYSET_TIEBREAKER_NOT_UNIQUE"
	CodeOrderMismatch            = "KEYSET_ORDER_MISMATCH"
	// CodeCursorTampered maps forged or corrupted cursor signatures onto the
	// security taxonomy.
	CodeCursorTampered = "SECURITY_POLICY_VIOLATION"
)

// Error is a coded pagination failure
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// OrderKey is one extracted ORDER BY key
type OrderKey struct {
	// Expression is the deparsed key expression.
	Expression string
	// Column is the bare column name when the expression is a plain column,
	// empty otherwise.
	Column string
	// Alias is the output alias the key referred to, when it did.
	Alias         string
	Descending    bool
	NullsFirst    bool
	ExplicitNulls bool
}

// Signature is the structural signature of the key used in cursors
func (k OrderKey) Signature() string {
	dir := "asc"
	if k.Descending {
		dir = "desc"
	}
	nulls := "last"
	if k.NullsFirst {
		nulls = "first"
	}
	return fmt.Sprintf("%s:%s:%s", k.Expression, dir, nulls)
}

// Extraction is the parsed ordering of a statement
type Extraction struct {
	Keys []OrderKey
	// Table is the single base table of the statement when there is exactly
	// one, used by the legacy tie-breaker fallback.
	Table string
}

// Signatures returns the structural signature list for cursor encoding
func (e *Extraction) Signatures() []string {
	sigs := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		sigs[i] = k.Signature()
	}
	return sigs
}

// ColumnMeta is per-column schema metadata consulted by the tie-breaker check
type ColumnMeta struct {
	Name    string
	NotNull bool
}

// TableMeta is per-table schema metadata consulted by the tie-breaker check
type TableMeta struct {
	Columns map[string]ColumnMeta
	// UniqueKeys lists column sets carrying a uniqueness guarantee.
	UniqueKeys [][]string
}

// legacyTieBreakers are accepted as stable tie-breakers when no schema
// metadata can prove uniqueness.
var legacyTieBreakers = []string{"id"}
