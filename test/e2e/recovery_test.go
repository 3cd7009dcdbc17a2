package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/models"
	"github.com/querra-ai/querra/pkg/services"
	testdb "github.com/querra-ai/querra/test/database"
)

// A session stranded in_progress by a dead pod must be picked up by the
// orphan scan, requeued, and finished by a live worker.
func TestOrphanedRunIsRequeuedAndFinished(t *testing.T) {
	client := testdb.NewTestClient(t)
	db := openSalesDB(t)
	ctx := context.Background()

	// Strand a session before any pool is running: claimed by a pod that
	// never heartbeats again.
	sessions := services.NewSessionService(client.Client)
	id := uuid.New().String()
	_, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: id,
		TenantID:  7,
		Question:  "How many orders do we have?",
	})
	require.NoError(t, err)

	stale := time.Now().Add(-time.Hour)
	err = client.Client.QuerySession.UpdateOneID(id).
		SetStatus(querysession.StatusInProgress).
		SetPodID("pod-dead").
		SetStartedAt(stale).
		SetLastInteractionAt(stale).
		Exec(ctx)
	require.NoError(t, err)

	a := startApp(t, client, db, appOptions{
		llm: newScriptedLLM(script{
			sql:    "SELECT count(*) AS order_count FROM orders",
			answer: "Counted the orders.",
		}),
	})

	sess := a.awaitStatus(t, id, querysession.StatusCompleted)
	assert.Equal(t, 1, sess.RequeueCount)
	assert.NotEqual(t, "pod-dead", deref(sess.PodID))

	res := a.result(t, id)
	assert.NotEmpty(t, res.FinalAnswer)
	rows := resultRows(t, res)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 5, rows[0]["order_count"])

	health := a.pool.Health()
	require.NotNil(t, health)
	assert.GreaterOrEqual(t, health.OrphansRequeued, 1)
}
