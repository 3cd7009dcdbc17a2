package dal

import (
	"fmt"
	"strings"

	"github.com/querra-ai/querra/pkg/keyset"
)

// DefaultPageSize applies when a continuation is requested without an
// explicit page size.
const DefaultPageSize = 100

// offsetKeySignature marks cursors that continue by offset instead of keyset.
const offsetKeySignature = "_offset"

// pagePlan is the executable form of one page request.
type pagePlan struct {
	query  string
	params []any
	// limit is the number of rows handed back to the caller; one extra row is
	// fetched to detect a next page.
	limit     int
	paginated bool
	// offset is the continuation position for offset-fallback plans; the
	// federated dispatcher windows concatenated results with it in memory.
	offset int64
	// makeToken builds the continuation token from the last returned row.
	makeToken func(lastRow map[string]any) (string, error)

	partialReason       string
	capabilityRequired  string
	capabilitySupported *bool
}

func boolPtr(b bool) *bool { return &b }

// boundedPlan runs the query as-is with one extra row fetched so truncation
// is detectable.
func boundedPlan(req ExecuteRequest, limit int) *pagePlan {
	return &pagePlan{
		query:  fmt.Sprintf("SELECT * FROM (%s) AS bounded LIMIT %d", req.SQL, limit+1),
		params: req.Params,
		limit:  limit,
	}
}

// planPage decides how to execute req against one provider: keyset
// pagination when the ordering supports it, offset continuation as the
// fallback, a bounded plain query otherwise.
func planPage(req ExecuteRequest, provider string, caps Capabilities, opts ToolOptions) (*pagePlan, *ToolError) {
	requested := req.PageSize > 0 || req.PageToken != ""
	if !requested {
		return boundedPlan(req, opts.rowLimit()), nil
	}

	size := req.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}

	if !caps.SupportsPagination {
		if req.PageToken != "" {
			return nil, &ToolError{
				Message:            "this query target cannot continue a paginated result",
				Category:           CategoryUnsupported,
				ErrorCode:          "UNSUPPORTED_CAPABILITY",
				RequiredCapability: "pagination",
			}
		}
		plan := boundedPlan(req, opts.rowLimit())
		plan.capabilityRequired = "pagination"
		plan.capabilitySupported = boolPtr(false)
		return plan, nil
	}

	backendSet := caps.BackendSetSignature()

	ext, extractErr := keyset.ExtractOrderKeys(req.SQL, provider)
	var outKeys []keyset.OrderKey
	if extractErr == nil {
		var meta *keyset.TableMeta
		if opts.TieBreakerMeta != nil && ext.Table != "" {
			meta = opts.TieBreakerMeta(ext.Table)
		}
		if err := keyset.ValidateTieBreaker(ext, meta, opts.ExtraTieBreakers); err != nil {
			extractErr = err
		} else if err := keyset.ValidateFederatedOrdering(caps.Federated, caps.DeterministicOrdering); err != nil {
			extractErr = err
		} else {
			outKeys, extractErr = outputKeys(ext)
		}
	}

	if extractErr != nil {
		return planOffsetPage(req, size, backendSet, extractErr, caps, opts)
	}

	sigs := ext.Signatures()
	fingerprint := keyset.Fingerprint(req.SchemaSnapshotID, backendSet, sigs)
	orderBy := renderOrderBy(outKeys)

	plan := &pagePlan{
		limit:     size,
		paginated: true,
		makeToken: func(lastRow map[string]any) (string, error) {
			values := make([]any, len(outKeys))
			for i, k := range outKeys {
				values[i] = lastRow[k.Expression]
			}
			return keyset.Encode(&keyset.Cursor{
				Values:      values,
				Keys:        sigs,
				Fingerprint: fingerprint,
				BackendSet:  backendSet,
			}, opts.CursorSecret)
		},
	}

	if req.PageToken == "" {
		plan.query = fmt.Sprintf("SELECT * FROM (%s) AS keyset_page ORDER BY %s LIMIT %d",
			req.SQL, orderBy, size+1)
		plan.params = req.Params
		return plan, nil
	}

	cursor, err := keyset.Decode(req.PageToken, opts.CursorSecret)
	if err != nil {
		return nil, toolErrFromKeyset(err)
	}
	if err := cursor.Verify(sigs, fingerprint, backendSet); err != nil {
		return nil, toolErrFromKeyset(err)
	}
	predicate, predParams, err := keyset.BuildAfterPredicate(outKeys, cursor.Values, len(req.Params))
	if err != nil {
		return nil, toolErrFromKeyset(err)
	}
	plan.query = fmt.Sprintf("SELECT * FROM (%s) AS keyset_page WHERE %s ORDER BY %s LIMIT %d",
		req.SQL, predicate, orderBy, size+1)
	plan.params = append(append([]any{}, req.Params...), predParams...)
	return plan, nil
}

// planOffsetPage is the continuation fallback for queries whose ordering
// cannot drive a keyset. Offset continuation over an unproven ordering is
// unstable, so the plan carries a partial reason for the metadata.
func planOffsetPage(req ExecuteRequest, size int, backendSet string, cause error, caps Capabilities, opts ToolOptions) (*pagePlan, *ToolError) {
	if caps.Federated && opts.DisallowFederatedOffset {
		if keysetCode(cause) == keyset.CodeFederatedOrderingUnsafe {
			return nil, toolErrFromKeyset(cause)
		}
		return nil, &ToolError{
			Message:   "offset pagination is disabled for federated targets",
			Category:  CategoryUnsupported,
			ErrorCode: "PAGINATION_FEDERATED_UNSUPPORTED",
		}
	}

	sigs := []string{offsetKeySignature}
	fingerprint := keyset.Fingerprint(req.SchemaSnapshotID, backendSet, sigs)

	offset := int64(0)
	if req.PageToken != "" {
		cursor, err := keyset.Decode(req.PageToken, opts.CursorSecret)
		if err != nil {
			return nil, toolErrFromKeyset(err)
		}
		if err := cursor.Verify(sigs, fingerprint, backendSet); err != nil {
			return nil, toolErrFromKeyset(err)
		}
		v, ok := cursor.Values[0].(int64)
		if !ok || v < 0 {
			return nil, &ToolError{
				Message:   "page token carries an invalid offset",
				Category:  CategoryUnsupported,
				ErrorCode: "KEYSET_ORDER_MISMATCH",
			}
		}
		offset = v
	}

	next := offset + int64(size)
	return &pagePlan{
		query:         fmt.Sprintf("SELECT * FROM (%s) AS offset_page LIMIT %d OFFSET %d", req.SQL, size+1, offset),
		params:        req.Params,
		limit:         size,
		paginated:     true,
		offset:        offset,
		partialReason: fmt.Sprintf("offset_fallback: %s", keysetCode(cause)),
		makeToken: func(map[string]any) (string, error) {
			return keyset.Encode(&keyset.Cursor{
				Values:      []any{next},
				Keys:        sigs,
				Fingerprint: fingerprint,
				BackendSet:  backendSet,
			}, opts.CursorSecret)
		},
	}, nil
}

// outputKeys maps extracted order keys onto names visible in the wrapped
// subselect's output.
func outputKeys(ext *keyset.Extraction) ([]keyset.OrderKey, *keyset.Error) {
	out := make([]keyset.OrderKey, len(ext.Keys))
	for i, k := range ext.Keys {
		name := k.Alias
		if name == "" {
			name = k.Column
		}
		if name == "" {
			return nil, &keyset.Error{
				Code:    keyset.CodeRequiresStableTieBreaker,
				Message: "an ORDER BY key is not addressable in the result projection",
			}
		}
		out[i] = keyset.OrderKey{
			Expression: strings.ToLower(name),
			Column:     strings.ToLower(name),
			Descending: k.Descending,
			NullsFirst: k.NullsFirst,
		}
	}
	return out, nil
}

func renderOrderBy(keys []keyset.OrderKey) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		dir := "ASC"
		if k.Descending {
			dir = "DESC"
		}
		nulls := "NULLS LAST"
		if k.NullsFirst {
			nulls = "NULLS FIRST"
		}
		parts[i] = fmt.Sprintf("%s %s %s", k.Expression, dir, nulls)
	}
	return strings.Join(parts, ", ")
}

func keysetCode(err error) string {
	if kerr, ok := err.(*keyset.Error); ok {
		return kerr.Code
	}
	return "KEYSET_UNAVAILABLE"
}

func toolErrFromKeyset(err error) *ToolError {
	kerr, ok := err.(*keyset.Error)
	if !ok {
		return &ToolError{Message: err.Error(), Category: CategoryUnknown}
	}
	category := CategoryUnsupported
	if kerr.Code == keyset.CodeCursorTampered {
		category = "security_policy"
	}
	return &ToolError{
		Message:   kerr.Message,
		Category:  category,
		ErrorCode: kerr.Code,
	}
}
