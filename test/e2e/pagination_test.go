package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/api"
	testdb "github.com/querra-ai/querra/test/database"
)

// Resubmitting the question with the returned token must continue the scan
// in a brand-new session: the cursor carries everything the next run needs.
func TestKeysetPaginationAcrossSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	db := openSalesDB(t)

	a := startApp(t, client, db, appOptions{
		llm: newScriptedLLM(script{
			sql: "SELECT id, total FROM orders ORDER BY id",
		}),
	})

	const question = "List the orders with their totals."

	first := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 7,
		Question: question,
		PageSize: 2,
	})
	a.awaitStatus(t, first.SessionID, querysession.StatusCompleted)
	resA := a.result(t, first.SessionID)
	assert.Equal(t, []int{1, 2}, rowIDs(t, resA))
	require.NotEmpty(t, resA.NextPageToken)

	second := a.submit(t, api.SubmitQuestionRequest{
		TenantID:  7,
		Question:  question,
		PageSize:  2,
		PageToken: resA.NextPageToken,
	})
	a.awaitStatus(t, second.SessionID, querysession.StatusCompleted)
	resB := a.result(t, second.SessionID)
	assert.Equal(t, []int{3, 4}, rowIDs(t, resB))
	require.NotEmpty(t, resB.NextPageToken)

	third := a.submit(t, api.SubmitQuestionRequest{
		TenantID:  7,
		Question:  question,
		PageSize:  2,
		PageToken: resB.NextPageToken,
	})
	a.awaitStatus(t, third.SessionID, querysession.StatusCompleted)
	resC := a.result(t, third.SessionID)
	assert.Equal(t, []int{5}, rowIDs(t, resC))
	assert.Empty(t, resC.NextPageToken, "short page must close the scan")
}

// ORDER BY status has no unique tie-breaker, so the planner degrades to
// offset pagination and says so in the partial reason instead of failing.
func TestPaginationFallsBackToOffsetWithoutUniqueOrder(t *testing.T) {
	client := testdb.NewTestClient(t)
	db := openSalesDB(t)

	a := startApp(t, client, db, appOptions{
		llm: newScriptedLLM(script{
			sql: "SELECT status, total FROM orders ORDER BY status",
		}),
	})

	const question = "Show order totals by status."

	first := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 7,
		Question: question,
		PageSize: 3,
	})
	a.awaitStatus(t, first.SessionID, querysession.StatusCompleted)
	resA := a.result(t, first.SessionID)
	assert.Len(t, resultRows(t, resA), 3)
	require.NotEmpty(t, resA.NextPageToken)

	reason, _ := resA.Result["partial_reason"].(string)
	assert.Contains(t, reason, "offset_fallback")

	second := a.submit(t, api.SubmitQuestionRequest{
		TenantID:  7,
		Question:  question,
		PageSize:  3,
		PageToken: resA.NextPageToken,
	})
	a.awaitStatus(t, second.SessionID, querysession.StatusCompleted)
	resB := a.result(t, second.SessionID)
	assert.Len(t, resultRows(t, resB), 2)
	assert.Empty(t, resB.NextPageToken)
}

// rowIDs pulls the id column out of each result row. JSON round-tripping
// stores numbers as float64.
func rowIDs(t *testing.T, res api.ResultResponse) []int {
	t.Helper()
	rows := resultRows(t, res)
	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		id, ok := row["id"].(float64)
		require.True(t, ok, "row has no numeric id: %v", row)
		ids = append(ids, int(id))
	}
	return ids
}
