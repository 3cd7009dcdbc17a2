package dal

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// sqlTool executes pages against one database/sql backend. Postgres and
// SQLite dispatchers differ only in driver, placeholder style, and error
// classification.
type sqlTool struct {
	name      string
	provider  string
	db        *sql.DB
	caps      Capabilities
	opts      ToolOptions
	classify  func(err error) *ToolError
	translate func(query string) string
}

func (t *sqlTool) Name() string               { return t.name }
func (t *sqlTool) Capabilities() Capabilities { return t.caps }

func (t *sqlTool) Close() {
	_ = t.db.Close()
}

func (t *sqlTool) ExecuteSQLQuery(ctx context.Context, req ExecuteRequest) (*ToolResponseEnvelope, error) {
	plan, terr := planPage(req, t.provider, t.caps, t.opts)
	if terr != nil {
		return errorEnvelope(t.provider, terr), nil
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	query := plan.query
	if t.translate != nil {
		query = t.translate(query)
	}

	start := time.Now()
	rows, err := t.db.QueryContext(ctx, query, plan.params...)
	if err != nil {
		return errorEnvelope(t.provider, t.classify(err)), nil
	}
	defer rows.Close()

	results, columns, err := scanRows(rows, req.IncludeColumns)
	if err != nil {
		return errorEnvelope(t.provider, t.classify(err)), nil
	}
	elapsed := time.Since(start)

	env := &ToolResponseEnvelope{
		SchemaVersion: EnvelopeSchemaVersion,
		Rows:          results,
		Columns:       columns,
		Metadata: EnvelopeMetadata{
			Provider:            t.provider,
			ExecutionTimeMs:     float64(elapsed.Microseconds()) / 1000.0,
			PartialReason:       plan.partialReason,
			CapabilityRequired:  plan.capabilityRequired,
			CapabilitySupported: plan.capabilitySupported,
		},
	}

	hasMore := len(results) > plan.limit
	if hasMore {
		env.Rows = results[:plan.limit]
	}
	env.Metadata.RowsReturned = len(env.Rows)

	if plan.paginated {
		if hasMore && plan.makeToken != nil && len(env.Rows) > 0 {
			token, err := plan.makeToken(env.Rows[len(env.Rows)-1])
			if err == nil {
				env.Metadata.NextPageToken = token
			}
		}
	} else if hasMore {
		env.Metadata.IsTruncated = true
		env.Metadata.RowLimit = plan.limit
	}
	return env, nil
}

// scanRows materializes a result set into row maps, converting raw byte
// columns into strings.
func scanRows(rows *sql.Rows, includeColumns bool) ([]map[string]any, []ColumnInfo, error) {
	names, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var columns []ColumnInfo
	if includeColumns {
		types, err := rows.ColumnTypes()
		if err != nil {
			return nil, nil, err
		}
		columns = make([]ColumnInfo, len(types))
		for i, ct := range types {
			info := ColumnInfo{
				Name:   ct.Name(),
				Type:   strings.ToLower(ct.DatabaseTypeName()),
				DBType: ct.DatabaseTypeName(),
			}
			if nullable, ok := ct.Nullable(); ok {
				info.Nullable = boolPtr(nullable)
			}
			columns[i] = info
		}
	}

	results := make([]map[string]any, 0, 16)
	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		row := make(map[string]any, len(names))
		for i, name := range names {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[name] = v
		}
		results = append(results, row)
	}
	return results, columns, rows.Err()
}
