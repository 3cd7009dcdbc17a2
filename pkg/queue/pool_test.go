package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/pkg/services"
	testdb "github.com/querra-ai/querra/test/database"
)

func TestWorkerPoolLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	pool := NewWorkerPool("pod-1", client.Client, sessions, testQueueConfig(), &mockExecutor{})
	require.NoError(t, pool.Start(ctx))

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.True(t, health.DBReachable)
	assert.Equal(t, "pod-1", health.PodID)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, 0, health.QueueDepth)
	assert.Len(t, health.WorkerStats, 2)

	pool.Stop()
}

func TestWorkerPoolDuplicateStart(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	pool := NewWorkerPool("pod-1", client.Client, sessions, testQueueConfig(), &mockExecutor{})
	require.NoError(t, pool.Start(ctx))
	require.NoError(t, pool.Start(ctx))

	assert.Equal(t, 2, pool.Health().TotalWorkers)
	pool.Stop()
}

func TestWorkerPoolCancelSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)

	pool := NewWorkerPool("pod-1", client.Client, sessions, testQueueConfig(), &mockExecutor{})

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterSession("session-abc", cancel)

	assert.False(t, pool.CancelSession("unknown-session"))

	assert.True(t, pool.CancelSession("session-abc"))
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("cancel function was not invoked")
	}

	pool.UnregisterSession("session-abc")
	assert.False(t, pool.CancelSession("session-abc"))
}

func TestWorkerPoolHealthCountsOwnPod(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	// One session claimed by this pod, one by another
	createPendingSession(ctx, t, sessions, "mine")
	createPendingSession(ctx, t, sessions, "theirs")

	mine, err := sessions.ClaimNextPendingSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, mine)
	theirs, err := sessions.ClaimNextPendingSession(ctx, "pod-2")
	require.NoError(t, err)
	require.NotNil(t, theirs)

	pool := NewWorkerPool("pod-1", client.Client, sessions, testQueueConfig(), &mockExecutor{})
	health := pool.Health()
	assert.Equal(t, 1, health.ActiveSessions)
	assert.Equal(t, 0, health.QueueDepth)
}
