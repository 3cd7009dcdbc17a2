package engine

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/pkg/dal"
	"github.com/querra-ai/querra/pkg/schemastore"
)

// scriptTool serves canned envelopes keyed by page token.
type scriptTool struct {
	mu       sync.Mutex
	provider string
	pages    map[string]*dal.ToolResponseEnvelope
	err      error
	calls    []dal.ExecuteRequest
}

func (s *scriptTool) Name() string { return "script" }
func (s *scriptTool) Capabilities() dal.Capabilities {
	provider := s.provider
	if provider == "" {
		provider = "postgres"
	}
	return dal.Capabilities{Provider: provider, Backend: "script", SupportsPagination: true}
}
func (s *scriptTool) Close() {}
func (s *scriptTool) ExecuteSQLQuery(ctx context.Context, req dal.ExecuteRequest) (*dal.ToolResponseEnvelope, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	env, ok := s.pages[req.PageToken]
	if !ok {
		return &dal.ToolResponseEnvelope{
			SchemaVersion: dal.EnvelopeSchemaVersion,
			Rows:          []map[string]any{},
			Metadata:      dal.EnvelopeMetadata{Provider: "script"},
		}, nil
	}
	return env, nil
}

func (s *scriptTool) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func (s *scriptTool) call(i int) dal.ExecuteRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[i]
}

func page(rows []map[string]any, next string) *dal.ToolResponseEnvelope {
	return &dal.ToolResponseEnvelope{
		SchemaVersion: dal.EnvelopeSchemaVersion,
		Rows:          rows,
		Metadata: dal.EnvelopeMetadata{
			RowsReturned:  len(rows),
			NextPageToken: next,
			Provider:      "script",
		},
	}
}

type recordingCache struct {
	mu     sync.Mutex
	writes []string
}

func (c *recordingCache) UpdateCache(ctx context.Context, tenantID int64, question, sql, schemaVersion string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, question)
	return nil
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.TenantEnabled = false
	opts.PrefetchEnabled = false
	return opts
}

func TestExecuteHappyPath(t *testing.T) {
	tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
		"": page([]map[string]any{{"value": 1}}, ""),
	}}
	cache := &recordingCache{}
	e := New(tool, nil, cache, testOptions())
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{
		SQL:      "SELECT 1 AS value",
		TenantID: 42,
		Question: "Show one sample row",
	})
	require.NoError(t, err)
	require.Nil(t, out.Error)
	require.NotNil(t, out.Result)
	assert.Equal(t, 1, out.Result.RowsReturned)
	assert.Equal(t, 1, out.Result.PagesFetched)
	assert.False(t, out.Result.IsTruncated)
	assert.Equal(t, []string{"Show one sample row"}, cache.writes)
}

func TestExecutePolicyViolationSkipsDispatch(t *testing.T) {
	tool := &scriptTool{}
	e := New(tool, nil, nil, testOptions())
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{SQL: "DROP TABLE customer", TenantID: 1})
	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, "FORBIDDEN_COMMAND", out.Error.Code)
	assert.Nil(t, out.Result)
	assert.Zero(t, tool.callCount(), "validation failures must never reach the tool")
}

func TestExecuteTenantRewrite(t *testing.T) {
	tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
		"": page([]map[string]any{{"id": 1}}, ""),
	}}
	opts := testOptions()
	opts.TenantEnabled = true
	e := New(tool, nil, nil, opts)
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{
		SQL:      "SELECT o.id FROM orders o WHERE o.status = 'open'",
		TenantID: 7,
	})
	require.NoError(t, err)
	require.Nil(t, out.Error)
	assert.Contains(t, out.RewrittenSQL, "o.tenant_id = $1")
	assert.Equal(t, []any{int64(7)}, out.Params)
	require.Equal(t, 1, tool.callCount())
	assert.Equal(t, out.RewrittenSQL, tool.call(0).SQL)
}

func TestExecuteTenantRejectionIsSanitized(t *testing.T) {
	tool := &scriptTool{}
	opts := testOptions()
	opts.TenantEnabled = true
	e := New(tool, nil, nil, opts)
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{
		SQL:      "SELECT * FROM orders o WHERE EXISTS (SELECT 1 FROM line_items WHERE order_id = o.id)",
		TenantID: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, CodeTenantUnsupported, out.Error.Code)
	assert.Contains(t, out.Error.Message, "tenant isolation is not supported")
	assert.NotContains(t, out.Error.Message, "orders")
	assert.NotContains(t, out.Error.Message, "line_items")
	assert.Zero(t, tool.callCount())
}

func TestExecuteTableFreeStatementSkipsRewrite(t *testing.T) {
	tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
		"": page([]map[string]any{{"value": 1}}, ""),
	}}
	opts := testOptions()
	opts.TenantEnabled = true
	e := New(tool, nil, nil, opts)
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{SQL: "SELECT 1 AS value", TenantID: 1})
	require.NoError(t, err)
	require.Nil(t, out.Error)
	assert.Empty(t, out.RewrittenSQL)
	assert.Equal(t, "SELECT 1 AS value", tool.call(0).SQL)
}

func TestExecuteBudgetGate(t *testing.T) {
	tool := &scriptTool{}
	e := New(tool, nil, nil, testOptions())
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{
		SQL:      "SELECT 1",
		Deadline: time.Now().Add(100 * time.Millisecond),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, CodeDBTimeout, out.Error.Code)
	assert.Zero(t, tool.callCount())
}

func TestExecuteToolErrorClassification(t *testing.T) {
	t.Run("category mapped to canonical code", func(t *testing.T) {
		env := &dal.ToolResponseEnvelope{
			SchemaVersion: dal.EnvelopeSchemaVersion,
			Metadata:      dal.EnvelopeMetadata{Provider: "script"},
			Error: &dal.ToolError{
				Message:     "canceling statement due to statement timeout",
				Category:    dal.CategoryTimeout,
				Provider:    "script",
				IsRetryable: true,
			},
		}
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{"": env}}
		e := New(tool, nil, nil, testOptions())
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT 1"})
		require.NoError(t, err)
		require.NotNil(t, out.Error)
		assert.Equal(t, CodeDBTimeout, out.Error.Code)
		assert.True(t, out.Error.Retryable)
	})

	t.Run("canonical code passes through", func(t *testing.T) {
		env := &dal.ToolResponseEnvelope{
			SchemaVersion: dal.EnvelopeSchemaVersion,
			Error: &dal.ToolError{
				Message:   "page token no longer valid",
				Category:  dal.CategoryUnsupported,
				ErrorCode: "PAGINATION_BACKEND_SET_CHANGED",
			},
		}
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{"": env}}
		e := New(tool, nil, nil, testOptions())
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT 1"})
		require.NoError(t, err)
		require.NotNil(t, out.Error)
		assert.Equal(t, "PAGINATION_BACKEND_SET_CHANGED", out.Error.Code)
	})

	t.Run("capability messages are generic", func(t *testing.T) {
		env := &dal.ToolResponseEnvelope{
			SchemaVersion: dal.EnvelopeSchemaVersion,
			Error: &dal.ToolError{
				Message:  "window functions are not supported on table secret_ledger",
				Category: dal.CategoryUnsupported,
			},
		}
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{"": env}}
		e := New(tool, nil, nil, testOptions())
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT 1"})
		require.NoError(t, err)
		require.NotNil(t, out.Error)
		assert.Equal(t, CodeUnsupportedCapability, out.Error.Code)
		assert.NotContains(t, out.Error.Message, "secret_ledger")
	})
}

func TestExecuteMalformedEnvelope(t *testing.T) {
	tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
		"": {SchemaVersion: "", Rows: []map[string]any{}},
	}}
	e := New(tool, nil, nil, testOptions())
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{SQL: "SELECT 1"})
	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, CodeMalformedResponse, out.Error.Code)

	tool = &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
		"": {SchemaVersion: "2.0", Rows: []map[string]any{}},
	}}
	e2 := New(tool, nil, nil, testOptions())
	defer e2.Close()

	out, err = e2.Execute(context.Background(), &Request{SQL: "SELECT 1"})
	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, CodeMalformedResponse, out.Error.Code)
}

func TestExecuteDispatchFailure(t *testing.T) {
	tool := &scriptTool{err: errors.New("connection refused")}
	e := New(tool, nil, nil, testOptions())
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{SQL: "SELECT 1"})
	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, CodeUnknown, out.Error.Code)
	assert.NotContains(t, out.Error.Message, "connection refused")
}

func TestAutoPagination(t *testing.T) {
	t.Run("drains to the natural end", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"":   page([]map[string]any{{"id": 1}, {"id": 2}}, "t2"),
			"t2": page([]map[string]any{{"id": 3}}, ""),
		}}
		opts := testOptions()
		opts.AutoPagination = true
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		require.Nil(t, out.Error)
		assert.Equal(t, 3, out.Result.RowsReturned)
		assert.Equal(t, 2, out.Result.PagesFetched)
		assert.Equal(t, StopNoNextPage, out.Result.StopReason)
		assert.False(t, out.Result.IsTruncated)
		assert.Empty(t, out.Result.NextPageToken)
	})

	t.Run("stops at max pages and keeps the token", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"":   page([]map[string]any{{"id": 1}}, "t2"),
			"t2": page([]map[string]any{{"id": 2}}, "t3"),
		}}
		opts := testOptions()
		opts.AutoPagination = true
		opts.MaxPages = 2
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		require.Nil(t, out.Error)
		assert.Equal(t, StopMaxPages, out.Result.StopReason)
		assert.Equal(t, 2, out.Result.PagesFetched)
		assert.Equal(t, "t3", out.Result.NextPageToken)
		assert.True(t, out.Result.IsTruncated)
		assert.Equal(t, string(StopMaxPages), out.Result.PartialReason)
	})

	t.Run("stops at max rows", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"": page([]map[string]any{{"id": 1}, {"id": 2}}, "t2"),
		}}
		opts := testOptions()
		opts.AutoPagination = true
		opts.MaxRows = 2
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		require.Nil(t, out.Error)
		assert.Equal(t, StopMaxRows, out.Result.StopReason)
		assert.Equal(t, 1, out.Result.PagesFetched)
	})

	t.Run("detects a repeated token within two pages", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"":   page([]map[string]any{{"id": 1}}, "t2"),
			"t2": page([]map[string]any{{"id": 2}}, "t2"),
		}}
		opts := testOptions()
		opts.AutoPagination = true
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		require.Nil(t, out.Error)
		assert.Equal(t, StopTokenRepeat, out.Result.StopReason)
		assert.Equal(t, 2, out.Result.PagesFetched)
	})

	t.Run("two consecutive empty pages with tokens are pathological", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"":   page([]map[string]any{}, "t2"),
			"t2": page([]map[string]any{}, "t3"),
		}}
		opts := testOptions()
		opts.AutoPagination = true
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		require.Nil(t, out.Error)
		assert.Equal(t, StopPathologicalEmptyPages, out.Result.StopReason)
		assert.GreaterOrEqual(t, out.Result.PagesFetched, 2)
	})

	t.Run("mid-stream tool error degrades to a partial result", func(t *testing.T) {
		failing := &dal.ToolResponseEnvelope{
			SchemaVersion: dal.EnvelopeSchemaVersion,
			Error:         &dal.ToolError{Message: "boom", Category: dal.CategoryTransient},
		}
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"":   page([]map[string]any{{"id": 1}}, "t2"),
			"t2": failing,
		}}
		opts := testOptions()
		opts.AutoPagination = true
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		require.Nil(t, out.Error, "partial results are not hard failures")
		assert.Equal(t, StopFetchError, out.Result.StopReason)
		assert.Equal(t, 1, out.Result.RowsReturned)
	})
}

func TestPrefetch(t *testing.T) {
	t.Run("scheduled page serves the next request", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"":   page([]map[string]any{{"id": 1}}, "t2"),
			"t2": page([]map[string]any{{"id": 2}}, ""),
		}}
		opts := testOptions()
		opts.PrefetchEnabled = true
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		require.Nil(t, out.Error)
		assert.False(t, out.Result.FromPrefetch)
		require.True(t, hasDecision(out, "prefetch", "scheduled", ""))

		// The background fetch for t2 lands in the prefetch cache.
		key := PrefetchKey("SELECT id FROM t", 0, "t2", dal.DefaultPageSize, "", 0, "")
		require.Eventually(t, func() bool {
			e.prefetch.mu.Lock()
			defer e.prefetch.mu.Unlock()
			s, ok := e.prefetch.slots[key]
			return ok && s.state == slotReady
		}, time.Second, 5*time.Millisecond)

		out, err = e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t", PageToken: "t2"})
		require.NoError(t, err)
		require.Nil(t, out.Error)
		assert.True(t, out.Result.FromPrefetch)
		assert.Equal(t, 2, tool.callCount(), "prefetched page must not be re-fetched")
	})

	t.Run("suppressed when auto-pagination is active", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"": page([]map[string]any{{"id": 1}}, ""),
		}}
		opts := testOptions()
		opts.PrefetchEnabled = true
		opts.AutoPagination = true
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		assert.True(t, hasDecision(out, "prefetch", "suppressed", string(SuppressAutoPaginationActive)))
	})

	t.Run("suppressed without a next page", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"": page([]map[string]any{{"id": 1}}, ""),
		}}
		opts := testOptions()
		opts.PrefetchEnabled = true
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		assert.True(t, hasDecision(out, "prefetch", "suppressed", string(SuppressNoNextPage)))
	})

	t.Run("suppressed when the first page was not cheap", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"": page([]map[string]any{{"id": 1}}, "t2"),
		}}
		opts := testOptions()
		opts.PrefetchEnabled = true
		opts.CheapLatency = time.Nanosecond
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT id FROM t"})
		require.NoError(t, err)
		assert.True(t, hasDecision(out, "prefetch", "suppressed", string(SuppressNotCheap)))
	})

	t.Run("suppressed on a low budget", func(t *testing.T) {
		tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
			"": page([]map[string]any{{"id": 1}}, "t2"),
		}}
		opts := testOptions()
		opts.PrefetchEnabled = true
		opts.PrefetchMinBudget = time.Hour
		e := New(tool, nil, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{
			SQL:      "SELECT id FROM t",
			Deadline: time.Now().Add(30 * time.Second),
		})
		require.NoError(t, err)
		assert.True(t, hasDecision(out, "prefetch", "suppressed", string(SuppressLowBudget)))
	})
}

func TestPrefetchGroupLifecycle(t *testing.T) {
	g := NewPrefetchGroup(context.Background(), 2)

	env := page([]map[string]any{{"id": 1}}, "")
	ok := g.Schedule("k1", time.Second, func(ctx context.Context) (*dal.ToolResponseEnvelope, error) {
		return env, nil
	})
	require.True(t, ok)
	require.Eventually(t, func() bool {
		got, hit := g.TakeReady("k1")
		if hit {
			assert.Same(t, env, got)
		}
		return hit
	}, time.Second, 5*time.Millisecond)

	// Double admission on the same key is rejected while in flight.
	block := make(chan struct{})
	ok = g.Schedule("k2", 0, func(ctx context.Context) (*dal.ToolResponseEnvelope, error) {
		<-block
		return env, nil
	})
	require.True(t, ok)
	assert.False(t, g.Schedule("k2", 0, func(ctx context.Context) (*dal.ToolResponseEnvelope, error) {
		return env, nil
	}))
	close(block)

	// Close cancels and awaits; cancelled slots never serve lookups.
	g.Close()
	_, hit := g.TakeReady("k2")
	_ = hit // the slot is either consumed-ready or cancelled, never stale
}

func TestExecuteReplayBundle(t *testing.T) {
	tool := &scriptTool{}
	e := New(tool, nil, nil, testOptions())
	defer e.Close()

	sql := "SELECT 1 AS value"
	recorded, err := json.Marshal(&dal.ToolResponseEnvelope{
		SchemaVersion: dal.EnvelopeSchemaVersion,
		Rows:          []map[string]any{{"value": float64(1)}},
		Metadata:      dal.EnvelopeMetadata{RowsReturned: 1},
	})
	require.NoError(t, err)

	bundle := ReplayBundle{
		ReplayKey(sql, nil, 1, "", dal.DefaultPageSize): recorded,
	}
	out, err := e.Execute(context.Background(), &Request{SQL: sql, TenantID: 1, ReplayBundle: bundle})
	require.NoError(t, err)
	require.Nil(t, out.Error)
	assert.Equal(t, 1, out.Result.RowsReturned)
	assert.Zero(t, tool.callCount(), "replay hits must not dispatch")
	assert.True(t, hasDecision(out, "replay", "hit", ""))
}

func TestExecuteDriftHintOnError(t *testing.T) {
	snapshot := schemastore.NewSnapshot([]schemastore.TableDef{
		{Name: "orders", Columns: []schemastore.ColumnDef{{Name: "id", Type: "bigint"}}},
	})
	store := schemastore.NewStore(snapshot, schemastore.StoreConfig{})

	env := &dal.ToolResponseEnvelope{
		SchemaVersion: dal.EnvelopeSchemaVersion,
		Error:         &dal.ToolError{Message: "relation does not exist", Category: dal.CategorySyntax},
	}
	tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{"": env}}
	e := New(tool, store, nil, testOptions())
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{SQL: "SELECT x FROM missing_tbl"})
	require.NoError(t, err)
	require.NotNil(t, out.Error)
	require.NotNil(t, out.Drift)
	assert.Equal(t, true, out.Error.Metadata["schema_drift_suspected"])
	assert.NotEmpty(t, out.Error.Metadata["missing_identifiers"])
}

func TestExecuteSchemaBindingHardMode(t *testing.T) {
	snapshot := schemastore.NewSnapshot([]schemastore.TableDef{
		{Name: "orders", Columns: []schemastore.ColumnDef{{Name: "id", Type: "bigint"}}},
	})
	store := schemastore.NewStore(snapshot, schemastore.StoreConfig{})

	tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
		"": page([]map[string]any{{"x": 1}}, ""),
	}}
	opts := testOptions()
	opts.SchemaBindingSoftMode = false
	e := New(tool, store, nil, opts)
	defer e.Close()

	out, err := e.Execute(context.Background(), &Request{SQL: "SELECT x FROM missing_tbl"})
	require.NoError(t, err)
	require.NotNil(t, out.Error)
	assert.Equal(t, "VALIDATION_ERROR", out.Error.Code)
	assert.Equal(t, true, out.Error.Metadata["schema_drift_suspected"])
	assert.Zero(t, tool.callCount(), "binding failures must not dispatch")

	t.Run("validation disabled skips the check", func(t *testing.T) {
		opts := testOptions()
		opts.SchemaBindingValidation = false
		e := New(tool, store, nil, opts)
		defer e.Close()

		out, err := e.Execute(context.Background(), &Request{SQL: "SELECT x FROM missing_tbl"})
		require.NoError(t, err)
		require.Nil(t, out.Error)
		assert.Nil(t, out.Drift)
	})
}

func TestExecuteCacheWriteSkippedOnRetryAndCacheHit(t *testing.T) {
	tool := &scriptTool{pages: map[string]*dal.ToolResponseEnvelope{
		"": page([]map[string]any{{"id": 1}}, ""),
	}}
	cache := &recordingCache{}
	e := New(tool, nil, cache, testOptions())
	defer e.Close()

	_, err := e.Execute(context.Background(), &Request{
		SQL: "SELECT 1", Question: "q", FromCache: true,
	})
	require.NoError(t, err)
	_, err = e.Execute(context.Background(), &Request{
		SQL: "SELECT 1", Question: "q", RetryCount: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, cache.writes)
}

func hasDecision(out *Outcome, stage, reason, detailReason string) bool {
	for _, d := range out.Decisions {
		if d.Stage != stage || d.Reason != reason {
			continue
		}
		if detailReason == "" {
			return true
		}
		if d.Details != nil && d.Details["reason"] == detailReason {
			return true
		}
	}
	return false
}
