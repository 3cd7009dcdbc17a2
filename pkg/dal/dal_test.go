package dal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/pkg/keyset"
)

func TestParseEnvelope(t *testing.T) {
	t.Run("valid envelope", func(t *testing.T) {
		env, err := ParseEnvelope([]byte(`{
			"schema_version": "1.2",
			"rows": [{"value": 1}],
			"metadata": {"rows_returned": 1, "is_truncated": false}
		}`), ParseOptions{})
		require.NoError(t, err)
		assert.Equal(t, 1, env.Metadata.RowsReturned)
		assert.Equal(t, float64(1), env.Rows[0]["value"])
	})

	t.Run("major version mismatch is fatal", func(t *testing.T) {
		_, err := ParseEnvelope([]byte(`{"schema_version": "2.0", "rows": []}`), ParseOptions{})
		require.ErrorIs(t, err, ErrSchemaVersionMismatch)
	})

	t.Run("missing schema_version", func(t *testing.T) {
		_, err := ParseEnvelope([]byte(`{"rows": []}`), ParseOptions{})
		require.ErrorIs(t, err, ErrMalformedEnvelope)
	})

	t.Run("bare list needs the legacy shim", func(t *testing.T) {
		payload := []byte(`[{"id": 1}, {"id": 2}]`)
		_, err := ParseEnvelope(payload, ParseOptions{})
		require.ErrorIs(t, err, ErrMalformedEnvelope)

		env, err := ParseEnvelope(payload, ParseOptions{LegacyListShim: true})
		require.NoError(t, err)
		assert.Len(t, env.Rows, 2)
		assert.Equal(t, 2, env.Metadata.RowsReturned)
		assert.Equal(t, "legacy_list_shim", env.Metadata.PartialReason)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseEnvelope([]byte("not json"), ParseOptions{})
		require.ErrorIs(t, err, ErrMalformedEnvelope)
		_, err = ParseEnvelope([]byte("   "), ParseOptions{})
		require.ErrorIs(t, err, ErrMalformedEnvelope)
	})
}

func newMockTool(t *testing.T, opts ToolOptions) (QueryTool, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresToolFromDB(db, opts), mock
}

func TestExecuteBoundedQuery(t *testing.T) {
	tool, mock := newMockTool(t, ToolOptions{RowLimit: 2})
	mock.ExpectQuery("SELECT * FROM (SELECT id FROM t) AS bounded LIMIT 3").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3))

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{SQL: "SELECT id FROM t"})
	require.NoError(t, err)
	require.Nil(t, env.Error)
	assert.Len(t, env.Rows, 2)
	assert.True(t, env.Metadata.IsTruncated)
	assert.Equal(t, 2, env.Metadata.RowLimit)
	assert.Empty(t, env.Metadata.NextPageToken)
	assert.Equal(t, "postgres", env.Metadata.Provider)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteKeysetFirstPage(t *testing.T) {
	secret := []byte("s")
	tool, mock := newMockTool(t, ToolOptions{CursorSecret: secret})
	mock.ExpectQuery("SELECT * FROM (SELECT id, name FROM users ORDER BY id) AS keyset_page ORDER BY id ASC NULLS LAST LIMIT 3").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "a").AddRow(2, "b").AddRow(3, "c"))

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:              "SELECT id, name FROM users ORDER BY id",
		PageSize:         2,
		SchemaSnapshotID: "snap-1",
	})
	require.NoError(t, err)
	require.Nil(t, env.Error)
	assert.Len(t, env.Rows, 2)
	assert.False(t, env.Metadata.IsTruncated)
	require.NotEmpty(t, env.Metadata.NextPageToken)

	sigs := []string{"id:asc:last"}
	cursor, err := keyset.Decode(env.Metadata.NextPageToken, secret)
	require.NoError(t, err)
	require.NoError(t, cursor.Verify(sigs, keyset.Fingerprint("snap-1", "", sigs), ""))
	assert.Equal(t, []any{int64(2)}, cursor.Values)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteKeysetContinuation(t *testing.T) {
	secret := []byte("s")
	tool, mock := newMockTool(t, ToolOptions{CursorSecret: secret})

	sigs := []string{"id:asc:last"}
	token, err := keyset.Encode(&keyset.Cursor{
		Values:      []any{int64(2)},
		Keys:        sigs,
		Fingerprint: keyset.Fingerprint("snap-1", "", sigs),
	}, secret)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT * FROM (SELECT id, name FROM users ORDER BY id) AS keyset_page WHERE (((id > $1 OR id IS NULL))) ORDER BY id ASC NULLS LAST LIMIT 3").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "c").AddRow(4, "d"))

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:              "SELECT id, name FROM users ORDER BY id",
		PageSize:         2,
		PageToken:        token,
		SchemaSnapshotID: "snap-1",
	})
	require.NoError(t, err)
	require.Nil(t, env.Error)
	assert.Len(t, env.Rows, 2)
	assert.Empty(t, env.Metadata.NextPageToken, "a short page ends the sequence")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteTamperedCursor(t *testing.T) {
	tool, _ := newMockTool(t, ToolOptions{CursorSecret: []byte("s")})

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:              "SELECT id FROM users ORDER BY id",
		PageSize:         2,
		PageToken:        "garbage",
		SchemaSnapshotID: "snap-1",
	})
	require.NoError(t, err)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SECURITY_POLICY_VIOLATION", env.Error.ErrorCode)
}

func TestExecuteIncludesColumns(t *testing.T) {
	tool, mock := newMockTool(t, ToolOptions{})
	mock.ExpectQuery("SELECT * FROM (SELECT 1 AS value) AS bounded LIMIT 1001").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(1))

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:            "SELECT 1 AS value",
		IncludeColumns: true,
	})
	require.NoError(t, err)
	require.Nil(t, env.Error)
	require.Len(t, env.Columns, 1)
	assert.Equal(t, "value", env.Columns[0].Name)
	assert.Equal(t, int64(1), env.Rows[0]["value"])
}

func TestSQLitePlaceholderTranslation(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	tool := NewSQLiteToolFromDB(db, ToolOptions{RowLimit: 10})

	mock.ExpectQuery("SELECT * FROM (SELECT id FROM t WHERE tenant_id = ?1) AS bounded LIMIT 11").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:    "SELECT id FROM t WHERE tenant_id = $1",
		Params: []any{int64(5)},
	})
	require.NoError(t, err)
	require.Nil(t, env.Error)
	assert.Len(t, env.Rows, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestClassifyPostgresError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		category  string
		errorCode string
		retryable bool
	}{
		{"statement timeout", &pgconn.PgError{Code: "57014", Message: "canceling statement"}, CategoryTimeout, "DB_TIMEOUT", true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, CategoryTransient, "TRANSIENT", true},
		{"connection", &pgconn.PgError{Code: "08006"}, CategoryConnectivity, "CONNECTIVITY", true},
		{"auth", &pgconn.PgError{Code: "28P01"}, CategoryAuth, "AUTH", false},
		{"out of memory", &pgconn.PgError{Code: "53200"}, CategoryResourceExhausted, "RESOURCE_EXHAUSTED", true},
		{"undefined table", &pgconn.PgError{Code: "42P01"}, CategorySyntax, "SYNTAX_ERROR", false},
		{"not supported", &pgconn.PgError{Code: "0A000"}, CategoryUnsupported, "UNSUPPORTED_CAPABILITY", false},
		{"deadline", context.DeadlineExceeded, CategoryTimeout, "DB_TIMEOUT", true},
		{"opaque", errors.New("boom"), CategoryUnknown, "UNKNOWN", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := classifyPostgresError(tt.err)
			assert.Equal(t, tt.category, te.Category)
			assert.Equal(t, tt.errorCode, te.ErrorCode)
			assert.Equal(t, tt.retryable, te.IsRetryable)
		})
	}
}

func TestClassifySQLiteError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		category  string
		errorCode string
	}{
		{"locked", errors.New("database is locked (5)"), CategoryTransient, "TRANSIENT"},
		{"syntax", errors.New(`SQL logic error: near "FROMM": syntax error (1)`), CategorySyntax, "SYNTAX_ERROR"},
		{"missing table", errors.New("no such table: orders"), CategorySyntax, "SYNTAX_ERROR"},
		{"interrupt", errors.New("interrupted (9)"), CategoryTimeout, "DB_TIMEOUT"},
		{"deadline", context.DeadlineExceeded, CategoryTimeout, "DB_TIMEOUT"},
		{"opaque", errors.New("boom"), CategoryUnknown, "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := classifySQLiteError(tt.err)
			assert.Equal(t, tt.category, te.Category)
			assert.Equal(t, tt.errorCode, te.ErrorCode)
		})
	}
}

// stubTool is a fixed-result member for federated tests.
type stubTool struct {
	name string
	rows []map[string]any
	err  *ToolError
}

func (s *stubTool) Name() string { return s.name }
func (s *stubTool) Capabilities() Capabilities {
	return Capabilities{Provider: "stub", Backend: s.name}
}
func (s *stubTool) Close() {}
func (s *stubTool) ExecuteSQLQuery(ctx context.Context, req ExecuteRequest) (*ToolResponseEnvelope, error) {
	if s.err != nil {
		return errorEnvelope(s.name, s.err), nil
	}
	return &ToolResponseEnvelope{
		SchemaVersion: EnvelopeSchemaVersion,
		Rows:          s.rows,
		Metadata:      EnvelopeMetadata{RowsReturned: len(s.rows), Provider: s.name},
	}, nil
}

func TestFederatedConcatenationAndOffsetPaging(t *testing.T) {
	tool := NewFederatedTool([]QueryTool{
		&stubTool{name: "shard-b", rows: []map[string]any{{"v": "b1"}}},
		&stubTool{name: "shard-a", rows: []map[string]any{{"v": "a1"}, {"v": "a2"}}},
	}, ToolOptions{})

	req := ExecuteRequest{SQL: "SELECT v FROM t", PageSize: 2, SchemaSnapshotID: "snap-1"}
	env, err := tool.ExecuteSQLQuery(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, env.Error)

	// Members run in name order, so shard-a's rows come first.
	require.Len(t, env.Rows, 2)
	assert.Equal(t, "a1", env.Rows[0]["v"])
	assert.Equal(t, "a2", env.Rows[1]["v"])
	assert.Contains(t, env.Metadata.PartialReason, "offset_fallback")
	require.NotEmpty(t, env.Metadata.NextPageToken)

	req.PageToken = env.Metadata.NextPageToken
	env, err = tool.ExecuteSQLQuery(context.Background(), req)
	require.NoError(t, err)
	require.Nil(t, env.Error)
	require.Len(t, env.Rows, 1)
	assert.Equal(t, "b1", env.Rows[0]["v"])
	assert.Empty(t, env.Metadata.NextPageToken)
}

func TestFederatedBackendSetChange(t *testing.T) {
	issueSet := keyset.BackendSetSignature([]string{"shard-a", "shard-b"})
	sigs := []string{"_offset"}
	token, err := keyset.Encode(&keyset.Cursor{
		Values:      []any{int64(2)},
		Keys:        sigs,
		Fingerprint: keyset.Fingerprint("snap-1", issueSet, sigs),
		BackendSet:  issueSet,
	}, nil)
	require.NoError(t, err)

	// The target now has a different membership.
	tool := NewFederatedTool([]QueryTool{
		&stubTool{name: "shard-a"},
		&stubTool{name: "shard-c"},
	}, ToolOptions{})

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:              "SELECT v FROM t",
		PageSize:         2,
		PageToken:        token,
		SchemaSnapshotID: "snap-1",
	})
	require.NoError(t, err)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PAGINATION_BACKEND_SET_CHANGED", env.Error.ErrorCode)
}

func TestFederatedOrderingUnsafe(t *testing.T) {
	tool := NewFederatedTool([]QueryTool{
		&stubTool{name: "shard-a"},
		&stubTool{name: "shard-b"},
	}, ToolOptions{DisallowFederatedOffset: true})

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:      "SELECT id FROM t ORDER BY id",
		PageSize: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PAGINATION_FEDERATED_ORDERING_UNSAFE", env.Error.ErrorCode)

	// Without a usable ordering the rejection is the offset gate instead.
	env, err = tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:      "SELECT id FROM t",
		PageSize: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, env.Error)
	assert.Equal(t, "PAGINATION_FEDERATED_UNSUPPORTED", env.Error.ErrorCode)
}

func TestFederatedMemberErrorPropagates(t *testing.T) {
	tool := NewFederatedTool([]QueryTool{
		&stubTool{name: "shard-a", err: &ToolError{Message: "boom", Category: CategoryTimeout, ErrorCode: "DB_TIMEOUT"}},
		&stubTool{name: "shard-b", rows: []map[string]any{{"v": 1}}},
	}, ToolOptions{})

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{SQL: "SELECT v FROM t"})
	require.NoError(t, err)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DB_TIMEOUT", env.Error.ErrorCode)
	assert.Equal(t, "federated/shard-a", env.Error.Provider)
}

func TestCapabilitiesBackendSetSignature(t *testing.T) {
	caps := Capabilities{Federated: true, Backends: []string{"b", "a"}}
	assert.Equal(t, keyset.BackendSetSignature([]string{"a", "b"}), caps.BackendSetSignature())
	assert.Empty(t, Capabilities{Backends: []string{"a"}}.BackendSetSignature())
}

func TestExecuteRequestTimeoutApplies(t *testing.T) {
	tool, mock := newMockTool(t, ToolOptions{})
	mock.ExpectQuery("SELECT * FROM (SELECT pg_sleep(5)) AS bounded LIMIT 1001").
		WillDelayFor(200 * time.Millisecond).
		WillReturnError(context.DeadlineExceeded)

	env, err := tool.ExecuteSQLQuery(context.Background(), ExecuteRequest{
		SQL:     "SELECT pg_sleep(5)",
		Timeout: 50 * time.Millisecond,
	})
	require.NoError(t, err)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DB_TIMEOUT", env.Error.ErrorCode)
}
