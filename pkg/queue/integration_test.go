package queue

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/services"
	testdb "github.com/querra-ai/querra/test/database"
)

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func sessionStatus(ctx context.Context, t *testing.T, sessions *services.SessionService, id string) querysession.Status {
	t.Helper()
	s, err := sessions.GetSession(ctx, id, false)
	require.NoError(t, err)
	return s.Status
}

func TestWorkerPoolProcessesQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	ids := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		s := createPendingSession(ctx, t, sessions, "queued question")
		ids = append(ids, s.ID)
	}

	var processed atomic.Int32
	executor := &mockExecutor{fn: func(_ context.Context, _ *ent.QuerySession) *ExecutionResult {
		processed.Add(1)
		return &ExecutionResult{Status: querysession.StatusCompleted, FinalAnswer: "done"}
	}}

	pool := NewWorkerPool("pod-1", client.Client, sessions, testQueueConfig(), executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "all sessions processed", func() bool {
		return processed.Load() == 5
	})

	awaitCondition(t, 5*time.Second, 50*time.Millisecond, "all sessions completed", func() bool {
		for _, id := range ids {
			if sessionStatus(ctx, t, sessions, id) != querysession.StatusCompleted {
				return false
			}
		}
		return true
	})

	depth, err := sessions.CountPendingSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestClarificationRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "show me the report")

	// First claim pauses for clarification; after the user answers, the
	// second claim sees the stored answer and completes.
	executor := &mockExecutor{fn: func(_ context.Context, s *ent.QuerySession) *ExecutionResult {
		if s.ClarificationAnswer == nil {
			return &ExecutionResult{
				Status:                querysession.StatusAwaitingClarification,
				ClarificationQuestion: "Which report?",
			}
		}
		return &ExecutionResult{
			Status:      querysession.StatusCompleted,
			FinalAnswer: "The " + *s.ClarificationAnswer + " report has 3 rows.",
		}
	}}

	pool := NewWorkerPool("pod-1", client.Client, sessions, testQueueConfig(), executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 5*time.Second, 50*time.Millisecond, "session awaits clarification", func() bool {
		return sessionStatus(ctx, t, sessions, session.ID) == querysession.StatusAwaitingClarification
	})

	suspended, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	require.NotNil(t, suspended.ClarificationQuestion)
	assert.Equal(t, "Which report?", *suspended.ClarificationQuestion)

	require.NoError(t, sessions.ResumeFromClarification(ctx, session.ID, "sales"))

	awaitCondition(t, 5*time.Second, 50*time.Millisecond, "session completes after answer", func() bool {
		return sessionStatus(ctx, t, sessions, session.ID) == querysession.StatusCompleted
	})

	finished, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	require.NotNil(t, finished.FinalAnswer)
	assert.Equal(t, "The sales report has 3 rows.", *finished.FinalAnswer)
	assert.Equal(t, 2, executor.callCount())
}

func TestOrphanRequeueAndResume(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "interrupted by a crash")
	strandSession(ctx, t, client.Client, session.ID, "dead-pod", 0)

	cfg := testQueueConfig()
	cfg.OrphanDetectionInterval = 100 * time.Millisecond
	cfg.OrphanThreshold = 200 * time.Millisecond

	executor := &mockExecutor{fn: func(_ context.Context, _ *ent.QuerySession) *ExecutionResult {
		return &ExecutionResult{Status: querysession.StatusCompleted, FinalAnswer: "recovered"}
	}}

	pool := NewWorkerPool("pod-2", client.Client, sessions, cfg, executor)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "orphan requeued and completed", func() bool {
		return sessionStatus(ctx, t, sessions, session.ID) == querysession.StatusCompleted
	})

	finished, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, finished.RequeueCount)
	require.NotNil(t, finished.PodID)
	assert.Equal(t, "pod-2", *finished.PodID)
}

func TestGracefulShutdownFinishesInFlight(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "slow but steady")

	started := make(chan struct{})
	executor := &mockExecutor{fn: func(_ context.Context, _ *ent.QuerySession) *ExecutionResult {
		close(started)
		time.Sleep(300 * time.Millisecond)
		return &ExecutionResult{Status: querysession.StatusCompleted}
	}}

	pool := NewWorkerPool("pod-1", client.Client, sessions, testQueueConfig(), executor)
	require.NoError(t, pool.Start(ctx))

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("session never started")
	}

	// Stop blocks until the in-flight session finishes
	pool.Stop()

	assert.Equal(t, querysession.StatusCompleted, sessionStatus(ctx, t, sessions, session.ID))
}
