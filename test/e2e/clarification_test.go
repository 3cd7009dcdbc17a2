package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent/checkpoint"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/api"
	testdb "github.com/querra-ai/querra/test/database"
)

// An ambiguous question suspends the run mid-queue; answering through the
// HTTP API requeues it and the workflow resumes from its checkpoint with the
// answer folded into the conversation.
func TestClarificationRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	db := openSalesDB(t)
	ctx := context.Background()

	mock := newScriptedLLM(script{
		router:  []string{"ambiguous_timeframe", "none"},
		clarify: "Which period should the total cover?",
		sql:     "SELECT sum(total) AS total_sales FROM orders",
		answer:  "Total sales come to 275.",
	})
	a := startApp(t, client, db, appOptions{llm: mock})

	submitted := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 7,
		Question: "What are the total sales?",
	})
	id := submitted.SessionID

	sess := a.awaitStatus(t, id, querysession.StatusAwaitingClarification)
	require.NotNil(t, sess.ClarificationQuestion)
	assert.Equal(t, "Which period should the total cover?", *sess.ClarificationQuestion)

	// The result endpoint refuses suspended sessions but surfaces the question.
	rec := a.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/result", nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	conflict := decodeBody[map[string]any](t, rec)
	assert.Contains(t, conflict["error"], "awaiting clarification")
	assert.Equal(t, "Which period should the total cover?", conflict["clarification_question"])

	// The suspended run left exactly one checkpoint behind.
	n, err := a.client.Client.Checkpoint.Query().
		Where(checkpoint.ThreadID(id)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rec = a.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/clarification",
		api.ClarificationRequest{Answer: "All time."})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resumed := decodeBody[api.QuestionResponse](t, rec)
	assert.Equal(t, "queued", resumed.Status)

	a.awaitStatus(t, id, querysession.StatusCompleted)
	res := a.result(t, id)
	assert.Equal(t, "Total sales come to 275.", res.FinalAnswer)

	rows := resultRows(t, res)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 275, rows[0]["total_sales"])

	// The router ran once per leg and saw the answer on the second pass.
	assert.Equal(t, 2, mock.count(kindRouter))
	secondRoute, ok := mock.call(kindRouter, 1)
	require.True(t, ok)
	assert.Contains(t, secondRoute.text, "All time.")
	assert.Equal(t, 1, mock.count(kindClarify))
	assert.Equal(t, 0, mock.count(kindSelfAnswer))

	// Terminal runs clean up their checkpoint.
	n, err = a.client.Client.Checkpoint.Query().
		Where(checkpoint.ThreadID(id)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
