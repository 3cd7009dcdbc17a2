package e2e

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/api"
	testdb "github.com/querra-ai/querra/test/database"
)

// Two replicas poll one session queue. Claims are guarded updates, so every
// session runs exactly once no matter which pod picks it up.
func TestTwoReplicasShareTheQueue(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	db := openSalesDB(t)
	ctx := context.Background()

	sc := script{
		sql:    "SELECT count(*) AS order_count FROM orders",
		answer: "Counted the orders.",
	}
	appA := startApp(t, clientA, db, appOptions{podID: "pod-a", llm: newScriptedLLM(sc)})
	appB := startApp(t, clientB, db, appOptions{podID: "pod-b", llm: newScriptedLLM(sc)})

	var ids []string
	for i := 0; i < 6; i++ {
		target := appA
		if i%2 == 1 {
			target = appB
		}
		submitted := target.submit(t, api.SubmitQuestionRequest{
			TenantID: 7,
			Question: fmt.Sprintf("How many orders do we have? (ask %d)", i),
		})
		ids = append(ids, submitted.SessionID)
	}

	for _, id := range ids {
		sess := appA.awaitStatus(t, id, querysession.StatusCompleted)
		assert.Equal(t, 0, sess.RequeueCount, "session %s was requeued", id)

		recorded, err := appA.interactions.ListInteractions(ctx, id)
		require.NoError(t, err)
		assert.Len(t, recorded, 1, "session %s ran more than once", id)
	}

	pending, err := appA.sessions.CountPendingSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, pending)
}
