package tenant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rewriteRequest(sql string) Request {
	return Request{
		SQL:      sql,
		Provider: "postgres",
		TenantID: int64(1),
		Options:  DefaultOptions(),
	}
}

func TestRewriteCreatesWhereClause(t *testing.T) {
	res, err := Rewrite(rewriteRequest("SELECT id FROM orders"))

	require.NoError(t, err)
	assert.Contains(t, res.SQL, "orders.tenant_id = $1")
	assert.Equal(t, []any{int64(1)}, res.Params)
	assert.Equal(t, 1, res.PredicateCount)
	assert.Equal(t, []string{"orders"}, res.RewrittenTables)
}

func TestRewriteJoinBothTables(t *testing.T) {
	req := rewriteRequest("SELECT o.id, c.name FROM orders o JOIN customers c ON o.customer_id = c.id WHERE o.status = 'open'")
	req.Provider = "sqlite"
	req.TableColumns = map[string][]string{
		"orders":    {"id", "customer_id", "status", "tenant_id"},
		"customers": {"id", "name", "tenant_id"},
	}

	res, err := Rewrite(req)

	require.NoError(t, err)
	assert.Contains(t, res.SQL, "c.tenant_id = $1")
	assert.Contains(t, res.SQL, "o.tenant_id = $2")
	assert.Contains(t, res.SQL, "o.status = 'open'")
	assert.Equal(t, []any{int64(1), int64(1)}, res.Params)
	assert.Equal(t, 2, res.PredicateCount)
}

func TestRewriteCTEChain(t *testing.T) {
	sql := `WITH recent AS (SELECT id, customer_id FROM orders),
		top AS (SELECT customer_id FROM recent)
		SELECT c.name FROM top t JOIN customers c ON t.customer_id = c.id`

	res, err := Rewrite(rewriteRequest(sql))

	require.NoError(t, err)
	assert.Contains(t, res.SQL, "orders.tenant_id =")
	assert.Contains(t, res.SQL, "c.tenant_id =")
	assert.NotContains(t, res.SQL, "recent.tenant_id")
	assert.NotContains(t, res.SQL, "t.tenant_id")
	assert.Equal(t, 2, res.PredicateCount)
	assert.True(t, res.Classification.HasCTE)
}

func TestRewriteSubqueryScope(t *testing.T) {
	sql := "SELECT * FROM orders WHERE customer_id IN (SELECT id FROM vip_customers)"

	res, err := Rewrite(rewriteRequest(sql))

	require.NoError(t, err)
	assert.Contains(t, res.SQL, "orders.tenant_id = $1")
	assert.Contains(t, res.SQL, "vip_customers.tenant_id = $2")
	assert.Equal(t, 2, res.PredicateCount)
	assert.True(t, res.Classification.HasSubquery)
	assert.Equal(t, 2, res.Classification.ScopeDepth)
}

func TestRewriteRejectsCorrelatedSubquery(t *testing.T) {
	sql := "SELECT * FROM orders o WHERE EXISTS (SELECT 1 FROM line_items WHERE order_id = o.id)"

	_, err := Rewrite(rewriteRequest(sql))

	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindUnsupportedShape, rerr.Kind)
	assert.Contains(t, err.Error(), "tenant isolation is not supported")
	assert.NotContains(t, err.Error(), "orders")
	assert.NotContains(t, err.Error(), "line_items")
}

func TestRewriteRejectionKinds(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		kind ErrorKind
	}{
		{"set operation", "SELECT id FROM a UNION SELECT id FROM b", KindUnsupportedShape},
		{"recursive cte", "WITH RECURSIVE r AS (SELECT 1 UNION ALL SELECT n+1 FROM r) SELECT * FROM r", KindUnsupportedShape},
		{"nested from select", "SELECT * FROM (SELECT id FROM orders) x", KindUnsupportedShape},
		{"window function", "SELECT id, ROW_NUMBER() OVER (ORDER BY id) FROM orders", KindUnsupportedShape},
		{"non select", "DELETE FROM orders", KindUnsupportedShape},
		{"multiple statements", "SELECT 1; SELECT 2", KindUnsupportedShape},
		{"garbage", "SELEC FRO", KindParseFailed},
		{"no tables", "SELECT 1", KindNoPredicatesProduced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Rewrite(rewriteRequest(tt.sql))

			var rerr *Error
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.kind, rerr.Kind)
		})
	}
}

func TestRewriteDialectUnsupported(t *testing.T) {
	req := rewriteRequest("SELECT id FROM orders")
	req.Provider = "mongodb"

	_, err := Rewrite(req)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindDialectUnsupported, rerr.Kind)
}

func TestRewriteMissingTenantColumn(t *testing.T) {
	req := rewriteRequest("SELECT id FROM countries")
	req.TableColumns = map[string][]string{"countries": {"id", "name"}}

	_, err := Rewrite(req)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindMissingTenantColumn, rerr.Kind)
	assert.NotContains(t, err.Error(), "countries")
}

func TestRewriteExemptTables(t *testing.T) {
	req := rewriteRequest("SELECT o.id FROM orders o JOIN countries c ON o.country_id = c.id")
	req.ExemptTables = []string{"countries"}

	res, err := Rewrite(req)

	require.NoError(t, err)
	assert.Equal(t, 1, res.PredicateCount)
	assert.Contains(t, res.SQL, "o.tenant_id = $1")
	assert.NotContains(t, res.SQL, "c.tenant_id")
}

func TestRewriteAllExempt(t *testing.T) {
	req := rewriteRequest("SELECT id FROM countries")
	req.ExemptTables = []string{"countries"}

	_, err := Rewrite(req)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindNoPredicatesProduced, rerr.Kind)
}

func TestRewriteCaps(t *testing.T) {
	req := rewriteRequest("SELECT * FROM a JOIN b ON a.id = b.a_id")
	req.Options.MaxTargets = 1

	_, err := Rewrite(req)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindTargetLimitExceeded, rerr.Kind)

	req = rewriteRequest("SELECT * FROM a JOIN b ON a.id = b.a_id")
	req.Options.MaxParams = 1
	_, err = Rewrite(req)
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindParamLimitExceeded, rerr.Kind)

	req = rewriteRequest("SELECT * FROM a WHERE x = 1 AND y = 2")
	req.Options.MaxASTNodes = 5
	_, err = Rewrite(req)
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindASTComplexityExceeded, rerr.Kind)
}

func TestRewriteDeterministic(t *testing.T) {
	sql := `WITH recent AS (SELECT id FROM orders WHERE placed_at > '2024-01-01')
		SELECT r.id, c.name FROM recent r
		JOIN customers c ON c.id = r.id
		WHERE c.region IN (SELECT code FROM regions)`

	first, err := Rewrite(rewriteRequest(sql))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Rewrite(rewriteRequest(sql))
		require.NoError(t, err)
		assert.Equal(t, first.SQL, again.SQL)
		assert.Equal(t, first.Params, again.Params)
		assert.Equal(t, first.RewrittenTables, again.RewrittenTables)
	}
}

func TestRewriteAssertInvariants(t *testing.T) {
	req := rewriteRequest("SELECT id FROM orders")
	req.Options.AssertInvariants = true

	res, err := Rewrite(req)

	require.NoError(t, err)
	assert.Contains(t, res.SQL, "orders.tenant_id = $1")
}

func TestRewritePreservesExistingParams(t *testing.T) {
	res, err := Rewrite(rewriteRequest("SELECT id FROM orders WHERE status = $1"))

	require.NoError(t, err)
	assert.Contains(t, res.SQL, "status = $1")
	assert.Contains(t, res.SQL, "orders.tenant_id = $2")
	assert.Len(t, res.Params, 1)
}

func TestRewriteScalarAggregateSubquery(t *testing.T) {
	ok := "SELECT * FROM orders WHERE total > (SELECT AVG(total) FROM order_stats)"
	res, err := Rewrite(rewriteRequest(ok))
	require.NoError(t, err)
	assert.Equal(t, 2, res.PredicateCount)

	bad := "SELECT * FROM orders WHERE total > (SELECT AVG(total) FROM order_stats GROUP BY region)"
	_, err = Rewrite(rewriteRequest(bad))
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindUnsupportedShape, rerr.Kind)
}

func TestRewriteStrictModeUnqualified(t *testing.T) {
	sql := "SELECT * FROM orders WHERE customer_id IN (SELECT id FROM vip_customers)"

	req := rewriteRequest(sql)
	req.Options.StrictMode = true
	_, err := Rewrite(req)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindUnsupportedShape, rerr.Kind)

	req = rewriteRequest(sql)
	req.Options.StrictMode = true
	req.TableColumns = map[string][]string{
		"orders":        {"id", "customer_id", "total", "tenant_id"},
		"vip_customers": {"id", "tenant_id"},
	}
	res, err := Rewrite(req)
	require.NoError(t, err)
	assert.Equal(t, 2, res.PredicateCount)
}

func TestRewriteSanitizedMessages(t *testing.T) {
	inputs := []string{
		"SELECT secret_total FROM payroll_summary UNION SELECT x FROM camouflage",
		"SELECT * FROM secret_orders o WHERE EXISTS (SELECT 1 FROM hush WHERE hush.oid = o.id)",
		"SELECT * FROM (SELECT * FROM hidden_table) x",
	}
	for _, sql := range inputs {
		_, err := Rewrite(rewriteRequest(sql))
		require.Error(t, err)
		for _, fragment := range []string{"payroll_summary", "camouflage", "secret_orders", "hush", "hidden_table", "SELECT"} {
			assert.NotContains(t, err.Error(), fragment)
		}
	}
}

func TestErrorKindIsValid(t *testing.T) {
	assert.True(t, KindUnsupportedShape.IsValid())
	assert.True(t, KindNoPredicatesProduced.IsValid())
	assert.False(t, ErrorKind("whatever").IsValid())
}

func TestErrorUnwrapsAsError(t *testing.T) {
	_, err := Rewrite(rewriteRequest("DELETE FROM orders"))

	require.Error(t, err)
	var rerr *Error
	assert.True(t, errors.As(err, &rerr))
	assert.NotEmpty(t, rerr.Detail())
}
