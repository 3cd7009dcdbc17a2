package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/services"
	testdb "github.com/querra-ai/querra/test/database"
)

// strandSession turns a pending session into a stale in_progress row owned
// by podID, as if its worker died mid-run.
func strandSession(ctx context.Context, t *testing.T, client *ent.Client, sessionID, podID string, requeues int) {
	t.Helper()
	err := client.QuerySession.UpdateOneID(sessionID).
		SetStatus(querysession.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(time.Now().Add(-time.Hour)).
		SetLastInteractionAt(time.Now().Add(-time.Hour)).
		SetRequeueCount(requeues).
		Exec(ctx)
	require.NoError(t, err)
}

func TestDetectAndRecoverOrphansRequeues(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "interrupted question")
	strandSession(ctx, t, client.Client, session.ID, "dead-pod", 0)

	pool := NewWorkerPool("pod-1", client.Client, sessions, testQueueConfig(), &mockExecutor{})
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusPending, updated.Status)
	assert.Nil(t, updated.PodID)
	assert.Equal(t, 1, updated.RequeueCount)

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRequeued)
	assert.Equal(t, 0, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestDetectAndRecoverOrphansTimesOutAfterBudget(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "keeps dying")
	strandSession(ctx, t, client.Client, session.ID, "dead-pod", 1) // budget already spent

	cfg := testQueueConfig() // MaxRequeues: 1
	pool := NewWorkerPool("pod-1", client.Client, sessions, cfg, &mockExecutor{})
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusTimedOut, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "requeue limit")
	assert.NotNil(t, updated.CompletedAt)

	health := pool.Health()
	assert.Equal(t, 0, health.OrphansRequeued)
	assert.Equal(t, 1, health.OrphansRecovered)
}

func TestDetectAndRecoverOrphansIgnoresHealthySessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	// Claimed moments ago: heartbeat is fresh
	session := createPendingSession(ctx, t, sessions, "alive and well")
	_, err := sessions.ClaimNextPendingSession(ctx, "pod-1")
	require.NoError(t, err)

	pool := NewWorkerPool("pod-2", client.Client, sessions, testQueueConfig(), &mockExecutor{})
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusInProgress, updated.Status)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()
	cfg := testQueueConfig()

	mine := createPendingSession(ctx, t, sessions, "owned by restarting pod")
	strandSession(ctx, t, client.Client, mine.ID, "pod-1", 0)

	other := createPendingSession(ctx, t, sessions, "owned by live pod")
	strandSession(ctx, t, client.Client, other.ID, "pod-2", 0)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, sessions, cfg, "pod-1"))

	// Own orphan goes back to the queue for resume
	updated, err := sessions.GetSession(ctx, mine.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusPending, updated.Status)
	assert.Equal(t, 1, updated.RequeueCount)

	// Another pod's session is left alone
	untouched, err := sessions.GetSession(ctx, other.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusInProgress, untouched.Status)
}

func TestCleanupStartupOrphansExhaustedBudget(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()
	cfg := testQueueConfig()

	session := createPendingSession(ctx, t, sessions, "crashed twice")
	strandSession(ctx, t, client.Client, session.ID, "pod-1", cfg.MaxRequeues)

	require.NoError(t, CleanupStartupOrphans(ctx, client.Client, sessions, cfg, "pod-1"))

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusTimedOut, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "restarted while session was in progress")
}
