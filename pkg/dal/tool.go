package dal

import (
	"context"
	"fmt"
	"time"

	"github.com/querra-ai/querra/pkg/keyset"
)

// Capabilities describes what a query target can do. The engine and the
// pagination layer consult this before dispatch.
type Capabilities struct {
	Provider              string
	Backend               string
	Federated             bool
	DeterministicOrdering bool
	SupportsPagination    bool
	// Backends lists member backends for federated targets; its signature is
	// stamped into page cursors.
	Backends []string
}

// BackendSetSignature returns the order-independent membership signature,
// empty for single-backend targets.
func (c Capabilities) BackendSetSignature() string {
	if !c.Federated {
		return ""
	}
	return keyset.BackendSetSignature(c.Backends)
}

// ExecuteRequest is the execute_sql_query call contract.
type ExecuteRequest struct {
	SQL              string
	TenantID         any
	Params           []any
	IncludeColumns   bool
	Timeout          time.Duration
	PageToken        string
	PageSize         int
	SchemaSnapshotID string
}

// QueryTool executes validated, tenant-scoped SQL against one query target.
type QueryTool interface {
	Name() string
	Capabilities() Capabilities
	ExecuteSQLQuery(ctx context.Context, req ExecuteRequest) (*ToolResponseEnvelope, error)
	Close()
}

// ToolOptions carries cross-provider dispatcher settings.
type ToolOptions struct {
	// CursorSecret signs page tokens when non-empty.
	CursorSecret []byte
	// RowLimit caps unpaginated result sets.
	RowLimit int
	// TieBreakerMeta resolves table metadata for keyset tie-breaker
	// validation; nil falls back to the legacy allowlist.
	TieBreakerMeta func(table string) *keyset.TableMeta
	// ExtraTieBreakers extends the legacy tie-breaker allowlist.
	ExtraTieBreakers []string
	// DisallowFederatedOffset rejects offset continuation on federated targets.
	DisallowFederatedOffset bool
}

// DefaultRowLimit bounds unpaginated result sets.
const DefaultRowLimit = 1000

func (o ToolOptions) rowLimit() int {
	if o.RowLimit > 0 {
		return o.RowLimit
	}
	return DefaultRowLimit
}

// ToolFactory builds a dispatcher from a DSN.
type ToolFactory func(ctx context.Context, dsn string, opts ToolOptions) (QueryTool, error)

var toolFactories = map[string]ToolFactory{}

// RegisterToolFactory makes a provider constructible by name.
func RegisterToolFactory(provider string, factory ToolFactory) {
	toolFactories[provider] = factory
}

// NewTool builds the dispatcher registered for provider.
func NewTool(ctx context.Context, provider, dsn string, opts ToolOptions) (QueryTool, error) {
	factory, ok := toolFactories[provider]
	if !ok {
		return nil, fmt.Errorf("unknown query target provider: %s", provider)
	}
	return factory(ctx, dsn, opts)
}
