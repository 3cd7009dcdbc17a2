package e2e

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/api"
	testdb "github.com/querra-ai/querra/test/database"
)

// A backend that lacks a function the SQL uses reports a syntax-class error.
// Those are not retryable, so the run fails without burning correction
// rounds on SQL the model cannot fix by rewriting.
func TestUnsupportedFunctionFailsWithoutRetry(t *testing.T) {
	client := testdb.NewTestClient(t)
	db := openSalesDB(t)

	mock := newScriptedLLM(script{
		sql: "SELECT id, date_trunc('month', created_at) AS month FROM orders ORDER BY id",
	})
	a := startApp(t, client, db, appOptions{llm: mock})

	submitted := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 7,
		Question: "How many orders per month?",
	})

	sess := a.awaitStatus(t, submitted.SessionID, querysession.StatusFailed)
	assert.Equal(t, 0, mock.count(kindCorrect))
	require.NotNil(t, sess.ErrorCode)
	assert.Equal(t, "SYNTAX_ERROR", *sess.ErrorCode)

	res := a.result(t, submitted.SessionID)
	assert.Equal(t, "failed", res.Status)
	assert.Equal(t, "SYNTAX_ERROR", res.ErrorCode)
	assert.Contains(t, res.ErrorMessage, "date_trunc")
	assert.Empty(t, res.FinalSQL)
	assert.Empty(t, res.FinalAnswer)
}

// Cancelling through the API while a node holds the run open must interrupt
// the workflow and settle the session as cancelled, not failed.
func TestCancellationInterruptsRun(t *testing.T) {
	client := testdb.NewTestClient(t)
	db := openSalesDB(t)

	release := make(chan struct{})
	defer close(release)

	mock := newScriptedLLM(script{
		sql: "SELECT count(*) AS order_count FROM orders",
		gate: func(ctx context.Context, kind string) {
			if kind != kindPlan {
				return
			}
			select {
			case <-ctx.Done():
			case <-release:
			}
		},
	})
	// Fail-open persistence: the post-cancel checkpoint write degrades to a
	// flag instead of aborting the run before the loop can settle it.
	a := startApp(t, client, db, appOptions{llm: mock, failOpen: true})

	submitted := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 7,
		Question: "How many orders do we have?",
	})
	a.awaitStatus(t, submitted.SessionID, querysession.StatusInProgress)

	rec := a.do(t, http.MethodPost, "/api/v1/sessions/"+submitted.SessionID+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	a.awaitStatus(t, submitted.SessionID, querysession.StatusCancelled)

	res := a.result(t, submitted.SessionID)
	assert.Equal(t, "cancelled", res.Status)
	assert.Contains(t, res.ErrorMessage, "context canceled")
	assert.Equal(t, 0, mock.count(kindGenerate), "generation must not run after cancellation")
}
