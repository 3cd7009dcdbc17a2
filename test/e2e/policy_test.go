package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/api"
	testdb "github.com/querra-ai/querra/test/database"
)

func TestPolicyViolationIsRepaired(t *testing.T) {
	client := testdb.NewTestClient(t)
	dataDB := openSalesDB(t)
	llmc := newScriptedLLM(script{
		// First attempt touches a restricted table; the repair round comes
		// back with a compliant rewrite.
		sql:     "SELECT department, avg(amount) AS avg_pay FROM payroll GROUP BY department",
		correct: []string{"SELECT status, avg(total) AS avg_total FROM orders GROUP BY status"},
		answer:  "Shipped orders average 75 per order.",
	})
	a := startApp(t, client, dataDB, appOptions{llm: llmc})

	submitted := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 7,
		Question: "What is the average order value by status?",
	})
	sess := a.awaitStatus(t, submitted.SessionID, querysession.StatusCompleted)

	require.NotNil(t, sess.FinalSQL)
	assert.Contains(t, *sess.FinalSQL, "FROM orders")
	assert.NotContains(t, *sess.FinalSQL, "payroll")
	assert.Equal(t, 1, llmc.count(kindCorrect))

	// The repair prompt named the violation it was fixing.
	fix, ok := llmc.call(kindCorrect, 0)
	require.True(t, ok)
	assert.Contains(t, fix.last, "Failed SQL:")
	assert.Contains(t, fix.last, "payroll")

	res := a.result(t, submitted.SessionID)
	rows := resultRows(t, res)
	assert.Len(t, rows, 3)
}

func TestPolicyViolationExhaustsRepairRounds(t *testing.T) {
	client := testdb.NewTestClient(t)
	dataDB := openSalesDB(t)
	llmc := newScriptedLLM(script{
		// Every repair lands on another restricted table.
		sql: "SELECT * FROM payroll",
		correct: []string{
			"SELECT password_hash FROM credentials",
			"SELECT employee_id FROM payroll",
		},
	})
	a := startApp(t, client, dataDB, appOptions{llm: llmc})

	submitted := a.submit(t, api.SubmitQuestionRequest{
		TenantID: 7,
		Question: "Show me everyone's pay.",
	})
	sess := a.awaitStatus(t, submitted.SessionID, querysession.StatusFailed)

	// Two rounds allowed, both spent, then the run gives up with the last
	// violation on record.
	assert.Equal(t, 2, llmc.count(kindCorrect))
	require.NotNil(t, sess.ErrorCode)
	assert.Equal(t, "RESTRICTED_TABLE", *sess.ErrorCode)
	require.NotNil(t, sess.ErrorMessage)
	assert.Contains(t, *sess.ErrorMessage, "payroll")

	res := a.result(t, submitted.SessionID)
	assert.Equal(t, "failed", res.Status)
	assert.Equal(t, "RESTRICTED_TABLE", res.ErrorCode)
	assert.Empty(t, res.FinalAnswer)
}
