package dal

import (
	"context"
	"fmt"
	"sort"
)

// FederatedTool fans a query out to several member targets and concatenates
// their results. The merge layer makes no ordering promise across members, so
// its capabilities never advertise deterministic ordering and continuation
// always goes through the offset fallback (or is rejected outright when
// offset pagination is disallowed for federated targets).
type FederatedTool struct {
	children []QueryTool
	caps     Capabilities
	opts     ToolOptions
}

// NewFederatedTool builds a federated target over the given members.
func NewFederatedTool(children []QueryTool, opts ToolOptions) *FederatedTool {
	sorted := make([]QueryTool, len(children))
	copy(sorted, children)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name() < sorted[j].Name() })

	names := make([]string, len(sorted))
	for i, c := range sorted {
		names[i] = c.Name()
	}
	return &FederatedTool{
		children: sorted,
		caps: Capabilities{
			Provider:              "federated",
			Backend:               "federated",
			Federated:             true,
			DeterministicOrdering: false,
			SupportsPagination:    true,
			Backends:              names,
		},
		opts: opts,
	}
}

func (t *FederatedTool) Name() string               { return "federated" }
func (t *FederatedTool) Capabilities() Capabilities { return t.caps }

func (t *FederatedTool) Close() {
	for _, c := range t.children {
		c.Close()
	}
}

func (t *FederatedTool) ExecuteSQLQuery(ctx context.Context, req ExecuteRequest) (*ToolResponseEnvelope, error) {
	plan, terr := planPage(req, "federated", t.caps, t.opts)
	if terr != nil {
		return errorEnvelope("federated", terr), nil
	}

	childReq := req
	childReq.PageSize = 0
	childReq.PageToken = ""

	var all []map[string]any
	var columns []ColumnInfo
	var elapsed float64
	anyTruncated := false

	for i, child := range t.children {
		childReq.IncludeColumns = req.IncludeColumns && i == 0
		env, err := child.ExecuteSQLQuery(ctx, childReq)
		if err != nil {
			return nil, fmt.Errorf("federated member %s failed: %w", child.Name(), err)
		}
		if env.Error != nil {
			return errorEnvelope(fmt.Sprintf("federated/%s", child.Name()), env.Error), nil
		}
		all = append(all, env.Rows...)
		if columns == nil && len(env.Columns) > 0 {
			columns = env.Columns
		}
		elapsed += env.Metadata.ExecutionTimeMs
		anyTruncated = anyTruncated || env.Metadata.IsTruncated
	}

	out := &ToolResponseEnvelope{
		SchemaVersion: EnvelopeSchemaVersion,
		Columns:       columns,
		Metadata: EnvelopeMetadata{
			Provider:        "federated",
			ExecutionTimeMs: elapsed,
			PartialReason:   plan.partialReason,
		},
	}
	if anyTruncated {
		out.Metadata.CapDetected = true
		out.Metadata.PartialReason = joinReasons(plan.partialReason, "member_row_cap")
	}

	if plan.paginated {
		start := int(plan.offset)
		if start > len(all) {
			start = len(all)
		}
		window := all[start:]
		hasMore := len(window) > plan.limit
		if hasMore {
			window = window[:plan.limit]
		}
		out.Rows = window
		out.Metadata.RowsReturned = len(window)
		if hasMore && plan.makeToken != nil {
			if token, err := plan.makeToken(nil); err == nil {
				out.Metadata.NextPageToken = token
			}
		}
		return out, nil
	}

	if len(all) > plan.limit {
		all = all[:plan.limit]
		out.Metadata.IsTruncated = true
		out.Metadata.RowLimit = plan.limit
	}
	out.Rows = all
	out.Metadata.RowsReturned = len(all)
	return out, nil
}

func joinReasons(a, b string) string {
	if a == "" {
		return b
	}
	return a + "; " + b
}
