package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/api"
	testdb "github.com/querra-ai/querra/test/database"
)

// Two tenants share the orders table; the same generated SQL must yield
// each tenant's own counts without the filter leaking into stored SQL.
func TestTenantIsolationAppliedToResults(t *testing.T) {
	client := testdb.NewTestClient(t)
	db := openSalesDB(t)

	a := startApp(t, client, db, appOptions{
		llm: newScriptedLLM(script{
			sql:    "SELECT count(*) AS order_count FROM orders",
			answer: "Counted the orders.",
		}),
	})

	first := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 7,
		Question: "How many orders do we have?",
	})
	sessA := a.awaitStatus(t, first.SessionID, querysession.StatusCompleted)

	resA := a.result(t, first.SessionID)
	rowsA := resultRows(t, resA)
	require.Len(t, rowsA, 1)
	assert.EqualValues(t, 5, rowsA[0]["order_count"])

	second := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 8,
		Question: "How many orders do we have?",
	})
	a.awaitStatus(t, second.SessionID, querysession.StatusCompleted)

	resB := a.result(t, second.SessionID)
	rowsB := resultRows(t, resB)
	require.Len(t, rowsB, 1)
	assert.EqualValues(t, 2, rowsB[0]["order_count"])

	// The tenant predicate is injected at dispatch time only.
	require.NotNil(t, sessA.FinalSQL)
	assert.NotContains(t, *sessA.FinalSQL, "tenant_id")
	assert.NotContains(t, resA.FinalSQL, "tenant_id")
}
