package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/models"
	"github.com/querra-ai/querra/pkg/services"
	testdb "github.com/querra-ai/querra/test/database"
)

// mockExecutor records claimed sessions and delegates to fn. A nil fn
// completes immediately.
type mockExecutor struct {
	mu    sync.Mutex
	calls []*ent.QuerySession
	fn    func(ctx context.Context, session *ent.QuerySession) *ExecutionResult
}

func (m *mockExecutor) Execute(ctx context.Context, session *ent.QuerySession) *ExecutionResult {
	m.mu.Lock()
	m.calls = append(m.calls, session)
	fn := m.fn
	m.mu.Unlock()
	if fn == nil {
		return &ExecutionResult{Status: querysession.StatusCompleted}
	}
	return fn(ctx, session)
}

func (m *mockExecutor) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockExecutor) call(i int) *ent.QuerySession {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[i]
}

// nopRegistry satisfies SessionRegistry for single-worker tests.
type nopRegistry struct{}

func (nopRegistry) RegisterSession(string, context.CancelFunc) {}
func (nopRegistry) UnregisterSession(string)                   {}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentSessions:   10,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      0,
		SessionTimeout:          30 * time.Second,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: time.Second,
		OrphanThreshold:         2 * time.Second,
		MaxRequeues:             1,
	}
}

func createPendingSession(ctx context.Context, t *testing.T, sessions *services.SessionService, question string) *ent.QuerySession {
	t.Helper()
	session, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		TenantID:  7,
		Question:  question,
	})
	require.NoError(t, err)
	return session
}

func TestWorkerProcessesSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "how many orders shipped last week?")

	executor := &mockExecutor{fn: func(_ context.Context, _ *ent.QuerySession) *ExecutionResult {
		return &ExecutionResult{
			Status:        querysession.StatusCompleted,
			FinalSQL:      "SELECT count(*) FROM orders WHERE tenant_id = $1",
			ResultPayload: map[string]any{"rows_returned": 1},
			FinalAnswer:   "42 orders shipped last week.",
			TraceID:       "trace-123",
		}
	}}
	w := NewWorker("w-0", "pod-1", sessions, testQueueConfig(), executor, nopRegistry{})

	err := w.pollAndProcess(ctx)
	require.NoError(t, err)

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusCompleted, updated.Status)
	require.NotNil(t, updated.FinalSQL)
	assert.Contains(t, *updated.FinalSQL, "FROM orders")
	require.NotNil(t, updated.FinalAnswer)
	assert.Equal(t, "42 orders shipped last week.", *updated.FinalAnswer)
	require.NotNil(t, updated.TraceID)
	assert.Equal(t, "trace-123", *updated.TraceID)
	assert.NotNil(t, updated.CompletedAt)
	assert.EqualValues(t, 1, updated.ResultPayload["rows_returned"])

	// The executor saw the claimed row
	require.Equal(t, 1, executor.callCount())
	assert.Equal(t, session.ID, executor.call(0).ID)
	assert.Equal(t, querysession.StatusInProgress, executor.call(0).Status)

	health := w.Health()
	assert.Equal(t, 1, health.SessionsProcessed)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
}

func TestWorkerPausesForClarification(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "show me the report")

	executor := &mockExecutor{fn: func(_ context.Context, _ *ent.QuerySession) *ExecutionResult {
		return &ExecutionResult{
			Status:                querysession.StatusAwaitingClarification,
			ClarificationQuestion: "Which report: sales or inventory?",
		}
	}}
	w := NewWorker("w-0", "pod-1", sessions, testQueueConfig(), executor, nopRegistry{})

	err := w.pollAndProcess(ctx)
	require.NoError(t, err)

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusAwaitingClarification, updated.Status)
	require.NotNil(t, updated.ClarificationQuestion)
	assert.Equal(t, "Which report: sales or inventory?", *updated.ClarificationQuestion)
	// Pause is not terminal
	assert.Nil(t, updated.CompletedAt)
}

func TestWorkerPersistsFailure(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "drop all the things")

	executor := &mockExecutor{fn: func(_ context.Context, _ *ent.QuerySession) *ExecutionResult {
		return &ExecutionResult{
			Status:    querysession.StatusFailed,
			ErrorCode: "SQL_VALIDATION_ERROR",
			Error:     fmt.Errorf("statement is not a single SELECT"),
		}
	}}
	w := NewWorker("w-0", "pod-1", sessions, testQueueConfig(), executor, nopRegistry{})

	require.NoError(t, w.pollAndProcess(ctx))

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorCode)
	assert.Equal(t, "SQL_VALIDATION_ERROR", *updated.ErrorCode)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "single SELECT")
}

func TestWorkerSynthesizesResultOnNilReturn(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "nil result")

	executor := &mockExecutor{fn: func(_ context.Context, _ *ent.QuerySession) *ExecutionResult {
		return nil
	}}
	w := NewWorker("w-0", "pod-1", sessions, testQueueConfig(), executor, nopRegistry{})

	require.NoError(t, w.pollAndProcess(ctx))

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "nil result")
}

func TestWorkerTimesOutSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	session := createPendingSession(ctx, t, sessions, "slow question")

	cfg := testQueueConfig()
	cfg.SessionTimeout = 100 * time.Millisecond

	executor := &mockExecutor{fn: func(execCtx context.Context, _ *ent.QuerySession) *ExecutionResult {
		<-execCtx.Done()
		return nil
	}}
	w := NewWorker("w-0", "pod-1", sessions, cfg, executor, nopRegistry{})

	require.NoError(t, w.pollAndProcess(ctx))

	updated, err := sessions.GetSession(ctx, session.ID, false)
	require.NoError(t, err)
	assert.Equal(t, querysession.StatusTimedOut, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "timed out")
}

func TestWorkerNoSessionsAvailable(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	w := NewWorker("w-0", "pod-1", sessions, testQueueConfig(), &mockExecutor{}, nopRegistry{})

	err := w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrNoSessionsAvailable)
}

func TestWorkerAtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	// One globally active session fills the whole budget
	active := createPendingSession(ctx, t, sessions, "already running")
	claimed, err := sessions.ClaimNextPendingSession(ctx, "other-pod")
	require.NoError(t, err)
	require.Equal(t, active.ID, claimed.ID)

	createPendingSession(ctx, t, sessions, "has to wait")

	cfg := testQueueConfig()
	cfg.MaxConcurrentSessions = 1

	executor := &mockExecutor{}
	w := NewWorker("w-0", "pod-1", sessions, cfg, executor, nopRegistry{})

	err = w.pollAndProcess(ctx)
	assert.ErrorIs(t, err, ErrAtCapacity)
	assert.Equal(t, 0, executor.callCount())
}

func TestPollIntervalJitter(t *testing.T) {
	sessions := &services.SessionService{}

	t.Run("zero jitter returns base", func(t *testing.T) {
		cfg := testQueueConfig()
		cfg.PollInterval = 100 * time.Millisecond
		cfg.PollIntervalJitter = 0
		w := NewWorker("w-0", "pod-1", sessions, cfg, &mockExecutor{}, nopRegistry{})
		for i := 0; i < 10; i++ {
			assert.Equal(t, 100*time.Millisecond, w.pollInterval())
		}
	})

	t.Run("jitter stays within bounds", func(t *testing.T) {
		cfg := testQueueConfig()
		cfg.PollInterval = 100 * time.Millisecond
		cfg.PollIntervalJitter = 50 * time.Millisecond
		w := NewWorker("w-0", "pod-1", sessions, cfg, &mockExecutor{}, nopRegistry{})
		for i := 0; i < 100; i++ {
			d := w.pollInterval()
			assert.GreaterOrEqual(t, d, 50*time.Millisecond)
			assert.LessOrEqual(t, d, 150*time.Millisecond)
		}
	})
}
