package keyset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOrderKeysPostgresDefaults(t *testing.T) {
	ext, err := ExtractOrderKeys("SELECT * FROM orders ORDER BY created_at DESC, id", "postgres")
	require.NoError(t, err)
	require.Len(t, ext.Keys, 2)

	assert.Equal(t, "created_at", ext.Keys[0].Column)
	assert.True(t, ext.Keys[0].Descending)
	assert.True(t, ext.Keys[0].NullsFirst, "postgres defaults DESC to NULLS FIRST")
	assert.False(t, ext.Keys[0].ExplicitNulls)

	assert.Equal(t, "id", ext.Keys[1].Column)
	assert.False(t, ext.Keys[1].Descending)
	assert.False(t, ext.Keys[1].NullsFirst, "postgres defaults ASC to NULLS LAST")

	assert.Equal(t, "orders", ext.Table)
	assert.Equal(t, []string{"created_at:desc:first", "id:asc:last"}, ext.Signatures())
}

func TestExtractOrderKeysExplicitNulls(t *testing.T) {
	ext, err := ExtractOrderKeys("SELECT * FROM orders ORDER BY score ASC NULLS FIRST, id", "postgres")
	require.NoError(t, err)
	assert.True(t, ext.Keys[0].NullsFirst)
	assert.True(t, ext.Keys[0].ExplicitNulls)
}

func TestExtractOrderKeysConservativeNullsForOtherDialects(t *testing.T) {
	ext, err := ExtractOrderKeys("SELECT * FROM orders ORDER BY created_at DESC, id", "sqlite")
	require.NoError(t, err)
	assert.False(t, ext.Keys[0].NullsFirst, "non-postgres dialects are treated as nulls-last")
	assert.False(t, ext.Keys[1].NullsFirst)
}

func TestExtractOrderKeysResolvesAliases(t *testing.T) {
	ext, err := ExtractOrderKeys(
		"SELECT count(*) AS total, region FROM sales GROUP BY region ORDER BY total DESC, region",
		"postgres",
	)
	require.NoError(t, err)
	require.Len(t, ext.Keys, 2)
	assert.Equal(t, "total", ext.Keys[0].Alias)
	assert.Empty(t, ext.Keys[0].Column)
	assert.Equal(t, "count(*)", ext.Keys[0].Expression)
	assert.Equal(t, "region", ext.Keys[1].Column)
}

func TestExtractOrderKeysResolvesPositions(t *testing.T) {
	ext, err := ExtractOrderKeys("SELECT id, name FROM users ORDER BY 2", "postgres")
	require.NoError(t, err)
	require.Len(t, ext.Keys, 1)
	assert.Equal(t, "name", ext.Keys[0].Column)
}

func TestExtractOrderKeysRejectsVolatileExpressions(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"random", "SELECT * FROM orders ORDER BY random()"},
		{"now", "SELECT * FROM orders ORDER BY now(), id"},
		{"current_timestamp", "SELECT * FROM orders ORDER BY current_timestamp"},
		{"uuid", "SELECT * FROM orders ORDER BY gen_random_uuid()"},
		{"nested", "SELECT * FROM orders ORDER BY coalesce(shipped_at, now())"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractOrderKeys(tt.sql, "postgres")
			require.Error(t, err)
			var kerr *Error
			require.ErrorAs(t, err, &kerr)
			assert.Equal(t, CodeRequiresStableTieBreaker, kerr.Code)
		})
	}
}

func TestExtractOrderKeysRejectsUnsupportedShapes(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"no order by", "SELECT * FROM orders"},
		{"set operation", "SELECT id FROM a UNION ALL SELECT id FROM b ORDER BY id"},
		{"not a select", "DELETE FROM orders"},
		{"multiple statements", "SELECT 1; SELECT 2"},
		{"position out of range", "SELECT id FROM orders ORDER BY 4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExtractOrderKeys(tt.sql, "postgres")
			require.Error(t, err)
		})
	}
}

func TestValidateTieBreakerLegacyFallback(t *testing.T) {
	ext, err := ExtractOrderKeys("SELECT * FROM orders ORDER BY created_at DESC, id", "postgres")
	require.NoError(t, err)
	assert.NoError(t, ValidateTieBreaker(ext, nil, nil))

	ext, err = ExtractOrderKeys("SELECT * FROM account ORDER BY created_at, account_id", "postgres")
	require.NoError(t, err)
	assert.NoError(t, ValidateTieBreaker(ext, nil, nil))

	ext, err = ExtractOrderKeys("SELECT * FROM orders ORDER BY created_at", "postgres")
	require.NoError(t, err)
	err = ValidateTieBreaker(ext, nil, nil)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeRequiresStableTieBreaker, kerr.Code)
}

func TestValidateTieBreakerConfiguredAllowlist(t *testing.T) {
	ext, err := ExtractOrderKeys("SELECT * FROM events ORDER BY occurred_at, event_uid", "postgres")
	require.NoError(t, err)
	require.Error(t, ValidateTieBreaker(ext, nil, nil))
	assert.NoError(t, ValidateTieBreaker(ext, nil, []string{"event_uid"}))
}

func TestValidateTieBreakerNullable(t *testing.T) {
	meta := &TableMeta{
		Columns: map[string]ColumnMeta{
			"shipped_at": {Name: "shipped_at", NotNull: false},
			"id":         {Name: "id", NotNull: true},
		},
		UniqueKeys: [][]string{{"id"}},
	}

	ext, err := ExtractOrderKeys("SELECT * FROM orders ORDER BY id, shipped_at", "postgres")
	require.NoError(t, err)
	err = ValidateTieBreaker(ext, meta, nil)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeTieBreakerNullable, kerr.Code)

	// An explicit NULLS ordering makes the nullable tie-breaker acceptable as
	// long as a unique suffix exists.
	ext, err = ExtractOrderKeys("SELECT * FROM orders ORDER BY id, shipped_at NULLS LAST", "postgres")
	require.NoError(t, err)
	assert.NoError(t, ValidateTieBreaker(ext, meta, nil))
}

func TestValidateTieBreakerUniqueSuffix(t *testing.T) {
	meta := &TableMeta{
		Columns: map[string]ColumnMeta{
			"created_at": {Name: "created_at", NotNull: true},
			"tenant_id":  {Name: "tenant_id", NotNull: true},
			"email":      {Name: "email", NotNull: true},
		},
		UniqueKeys: [][]string{{"tenant_id", "email"}},
	}

	ext, err := ExtractOrderKeys("SELECT * FROM users ORDER BY created_at, tenant_id, email", "postgres")
	require.NoError(t, err)
	assert.NoError(t, ValidateTieBreaker(ext, meta, nil))

	ext, err = ExtractOrderKeys("SELECT * FROM users ORDER BY created_at, email", "postgres")
	require.NoError(t, err)
	err = ValidateTieBreaker(ext, meta, nil)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeTieBreakerNotUnique, kerr.Code)
}

func TestCursorRoundTrip(t *testing.T) {
	secret := []byte("cursor-secret")
	sigs := []string{"created_at:desc:first", "id:asc:last"}
	fp := Fingerprint("snapshot-1", "", sigs)

	token, err := Encode(&Cursor{
		Values:      []any{"2024-03-01T00:00:00Z", int64(42)},
		Keys:        sigs,
		Fingerprint: fp,
	}, secret)
	require.NoError(t, err)

	decoded, err := Decode(token, secret)
	require.NoError(t, err)
	require.NoError(t, decoded.Verify(sigs, fp, ""))
	assert.Equal(t, []any{"2024-03-01T00:00:00Z", int64(42)}, decoded.Values)
}

func TestCursorTamperRejected(t *testing.T) {
	secret := []byte("cursor-secret")
	sigs := []string{"id:asc:last"}
	fp := Fingerprint("snapshot-1", "", sigs)
	token, err := Encode(&Cursor{Values: []any{int64(1)}, Keys: sigs, Fingerprint: fp}, secret)
	require.NoError(t, err)

	flipped := []byte(token)
	if flipped[0] == 'A' {
		flipped[0] = 'B'
	} else {
		flipped[0] = 'A'
	}
	_, err = Decode(string(flipped), secret)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeCursorTampered, kerr.Code)

	// Stripping the signature entirely must also fail.
	payload := strings.SplitN(token, ".", 2)[0]
	_, err = Decode(payload, secret)
	require.Error(t, err)
}

func TestCursorVerifyMismatches(t *testing.T) {
	sigs := []string{"id:asc:last"}
	fp := Fingerprint("snapshot-1", "", sigs)
	c := &Cursor{Values: []any{int64(1)}, Keys: sigs, Fingerprint: fp}

	err := c.Verify([]string{"name:asc:last"}, fp, "")
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeOrderMismatch, kerr.Code)

	err = c.Verify(sigs, Fingerprint("snapshot-2", "", sigs), "")
	require.Error(t, err)
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeOrderMismatch, kerr.Code)
}

func TestCursorBackendSetChange(t *testing.T) {
	sigs := []string{"id:asc:last"}
	setA := BackendSetSignature([]string{"shard-1", "shard-2"})
	setB := BackendSetSignature([]string{"shard-1", "shard-3"})
	fp := Fingerprint("snapshot-1", setA, sigs)
	c := &Cursor{Values: []any{int64(1)}, Keys: sigs, Fingerprint: fp, BackendSet: setA}

	require.NoError(t, c.Verify(sigs, fp, setA))

	err := c.Verify(sigs, Fingerprint("snapshot-1", setB, sigs), setB)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeBackendSetChanged, kerr.Code)
}

func TestBackendSetSignatureOrderIndependent(t *testing.T) {
	a := BackendSetSignature([]string{"shard-2", "shard-1"})
	b := BackendSetSignature([]string{"shard-1", "shard-2"})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, BackendSetSignature([]string{"shard-1"}))
	assert.Empty(t, BackendSetSignature(nil))
}

func TestBuildAfterPredicate(t *testing.T) {
	keys := []OrderKey{
		{Expression: "created_at", Column: "created_at", Descending: true, NullsFirst: true},
		{Expression: "id", Column: "id"},
	}
	pred, params, err := BuildAfterPredicate(keys, []any{"2024-03-01", int64(7)}, 0)
	require.NoError(t, err)
	assert.Equal(t,
		"((created_at < $1) OR (created_at = $2 AND (id > $3 OR id IS NULL)))",
		pred)
	assert.Equal(t, []any{"2024-03-01", "2024-03-01", int64(7)}, params)
}

func TestBuildAfterPredicateNullHandling(t *testing.T) {
	t.Run("nulls last drops the exhausted disjunct", func(t *testing.T) {
		keys := []OrderKey{
			{Expression: "score", Column: "score"},
			{Expression: "id", Column: "id"},
		}
		pred, params, err := BuildAfterPredicate(keys, []any{nil, int64(5)}, 0)
		require.NoError(t, err)
		assert.Equal(t, "((score IS NULL AND (id > $1 OR id IS NULL)))", pred)
		assert.Equal(t, []any{int64(5)}, params)
	})

	t.Run("nulls first advances into the non-null region", func(t *testing.T) {
		keys := []OrderKey{
			{Expression: "score", Column: "score", NullsFirst: true},
			{Expression: "id", Column: "id"},
		}
		pred, params, err := BuildAfterPredicate(keys, []any{nil, int64(5)}, 0)
		require.NoError(t, err)
		assert.Equal(t,
			"((score IS NOT NULL) OR (score IS NULL AND (id > $1 OR id IS NULL)))",
			pred)
		assert.Equal(t, []any{int64(5)}, params)
	})

	t.Run("no continuation yields FALSE", func(t *testing.T) {
		keys := []OrderKey{{Expression: "score", Column: "score"}}
		pred, params, err := BuildAfterPredicate(keys, []any{nil}, 0)
		require.NoError(t, err)
		assert.Equal(t, "FALSE", pred)
		assert.Empty(t, params)
	})
}

func TestBuildAfterPredicateParamBase(t *testing.T) {
	keys := []OrderKey{{Expression: "id", Column: "id"}}
	pred, params, err := BuildAfterPredicate(keys, []any{int64(9)}, 2)
	require.NoError(t, err)
	assert.Equal(t, "(((id > $3 OR id IS NULL)))", pred)
	assert.Equal(t, []any{int64(9)}, params)
}

func TestBuildAfterPredicateMismatch(t *testing.T) {
	keys := []OrderKey{{Expression: "id", Column: "id"}}
	_, _, err := BuildAfterPredicate(keys, []any{int64(1), int64(2)}, 0)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeOrderMismatch, kerr.Code)
}

func TestFederatedChecks(t *testing.T) {
	require.NoError(t, ValidateFederatedOrdering(false, false))
	require.NoError(t, ValidateFederatedOrdering(true, true))

	err := ValidateFederatedOrdering(true, false)
	require.Error(t, err)
	var kerr *Error
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeFederatedOrderingUnsafe, kerr.Code)

	require.NoError(t, ValidateFederatedOffset(true, false))
	err = ValidateFederatedOffset(true, true)
	require.Error(t, err)
	require.ErrorAs(t, err, &kerr)
	assert.Equal(t, CodeFederatedUnsupported, kerr.Code)
}

func TestFingerprintDeterministic(t *testing.T) {
	sigs := []string{"a:asc:last", "b:desc:first"}
	assert.Equal(t, Fingerprint("s1", "", sigs), Fingerprint("s1", "", sigs))
	assert.NotEqual(t, Fingerprint("s1", "", sigs), Fingerprint("s2", "", sigs))
	assert.NotEqual(t, Fingerprint("s1", "", sigs), Fingerprint("s1", "x", sigs))
	assert.NotEqual(t, Fingerprint("s1", "", sigs), Fingerprint("s1", "", sigs[:1]))
}
