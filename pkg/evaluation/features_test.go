package evaluation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFeatures(t *testing.T) {
	f := extract(`
		SELECT c.name, count(*)
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		WHERE o.status = 'paid'
		  AND o.total > 100
		  AND o.created_at >= '2024-01-01'
		  AND c.region IN ('us', 'eu')
		  AND c.deleted_at IS NULL
		  AND c.name LIKE 'A%'
		GROUP BY c.name
		LIMIT 10`)
	require.NotNil(t, f)

	assert.Equal(t, map[string]struct{}{"orders": {}, "customers": {}}, f.tables)
	assert.Equal(t, 1, f.joins)
	assert.True(t, f.aggregated)
	assert.True(t, f.grouped)
	assert.True(t, f.hasLimit)
	assert.Equal(t, 10, f.limit)

	for _, pred := range []string{predEquality, predRange, predIn, predLike, predNullCheck} {
		assert.Contains(t, f.predicates, pred)
	}

	assert.Equal(t, map[string]struct{}{"paid": {}}, f.eqValues["status"])
	assert.Equal(t, []float64{100}, f.rangeNums["total"])
	require.Len(t, f.rangeDates["created_at"], 1)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), f.rangeDates["created_at"][0])
	assert.Equal(t, map[string]struct{}{"us": {}, "eu": {}}, f.inValues["region"])
}

func TestExtractBetween(t *testing.T) {
	f := extract(`SELECT * FROM events WHERE duration BETWEEN 5 AND 15`)
	require.NotNil(t, f)

	assert.Contains(t, f.predicates, predRange)
	assert.ElementsMatch(t, []float64{5, 15}, f.rangeNums["duration"])
}

func TestExtractSubqueryIn(t *testing.T) {
	f := extract(`SELECT * FROM orders WHERE customer_id IN (SELECT id FROM customers)`)
	require.NotNil(t, f)

	assert.Contains(t, f.predicates, predIn)
	assert.Contains(t, f.tables, "orders")
	assert.Contains(t, f.tables, "customers")
}

func TestExtractSimpleStatement(t *testing.T) {
	f := extract(`SELECT id FROM users`)
	require.NotNil(t, f)

	assert.Equal(t, map[string]struct{}{"users": {}}, f.tables)
	assert.Zero(t, f.joins)
	assert.False(t, f.aggregated)
	assert.False(t, f.grouped)
	assert.False(t, f.hasLimit)
	assert.Empty(t, f.predicates)
}

func TestExtractParseFailure(t *testing.T) {
	assert.Nil(t, extract("this is not sql"))
	assert.Nil(t, extract(""))
}

func TestCanonicalize(t *testing.T) {
	a, ok := canonicalize("SELECT  *  FROM  Orders  WHERE  Total > 5")
	require.True(t, ok)
	b, ok := canonicalize("select * from orders where total > 5")
	require.True(t, ok)
	assert.Equal(t, a, b)

	_, ok = canonicalize("definitely not a statement")
	assert.False(t, ok)
}

func TestFoldWhitespace(t *testing.T) {
	assert.Equal(t, "select 1", foldWhitespace("  SELECT \n\t 1 ; "))
	assert.Equal(t, foldWhitespace("SELECT A,B FROM t"), foldWhitespace("select a,b from t;"))
}
