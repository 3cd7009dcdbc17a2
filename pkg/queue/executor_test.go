package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/workflow"
)

func ptr[T any](v T) *T { return &v }

// brokenCheckpointer fails every operation with err.
type brokenCheckpointer struct{ err error }

func (b brokenCheckpointer) Save(context.Context, string, *workflow.State, string) error {
	return b.err
}

func (b brokenCheckpointer) Load(context.Context, string) (*workflow.State, string, error) {
	return nil, "", b.err
}

func (b brokenCheckpointer) Delete(context.Context, string) error { return b.err }

func TestExecuteFailsWhenCheckpointStoreUnavailable(t *testing.T) {
	storeErr := errors.New("connection refused")
	e := NewWorkflowExecutor(ExecutorConfig{
		Checkpointer: brokenCheckpointer{err: storeErr},
	})

	session := &ent.QuerySession{ID: "s-1", TenantID: 7, Question: "anything"}
	result := e.Execute(context.Background(), session)

	require.NotNil(t, result)
	assert.Equal(t, querysession.StatusFailed, result.Status)
	assert.Equal(t, workflow.CodeSystemCrash, result.ErrorCode)
	assert.ErrorIs(t, result.Error, storeErr)
}

func TestBuildState(t *testing.T) {
	e := NewWorkflowExecutor(ExecutorConfig{
		TokenBudget:     120000,
		QuestionTimeout: time.Minute,
		DefaultPageSize: 100,
	})

	session := &ent.QuerySession{
		ID:               "s-1",
		TenantID:         42,
		Question:         "top customers by revenue",
		TraceID:          ptr("trace-9"),
		SchemaSnapshotID: ptr("snap-3"),
		PageSize:         ptr(25),
		PageToken:        ptr("cursor-abc"),
		Seed:             ptr(int64(1234)),
	}

	before := time.Now()
	state := e.buildState(context.Background(), session)

	assert.Equal(t, "top customers by revenue", state.Question)
	assert.Equal(t, int64(42), state.TenantID)
	assert.Equal(t, "trace-9", state.TraceID)
	assert.Equal(t, "snap-3", state.SchemaSnapshotID)
	assert.Equal(t, 25, state.PageSize)
	assert.Equal(t, "cursor-abc", state.PageToken)
	assert.Equal(t, int64(1234), state.Seed)
	assert.Equal(t, 120000, state.TokenBudget)
	assert.Equal(t, 60, state.TimeoutSeconds)
	assert.True(t, state.InteractiveSession)

	// Deadline is roughly now + question timeout
	assert.WithinDuration(t, before.Add(time.Minute), state.DeadlineTS, 2*time.Second)
}

func TestBuildStateDefaults(t *testing.T) {
	e := NewWorkflowExecutor(ExecutorConfig{
		TokenBudget:     120000,
		QuestionTimeout: time.Minute,
		DefaultPageSize: 100,
	})

	state := e.buildState(context.Background(), &ent.QuerySession{
		ID: "s-2", TenantID: 1, Question: "plain question",
	})
	assert.Equal(t, 100, state.PageSize)
	assert.Empty(t, state.TraceID)
	assert.Empty(t, state.PageToken)
}

func TestBuildStateCapsDeadlineAtContext(t *testing.T) {
	e := NewWorkflowExecutor(ExecutorConfig{
		QuestionTimeout: time.Hour,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	state := e.buildState(ctx, &ent.QuerySession{ID: "s-3", TenantID: 1, Question: "q"})
	ctxDeadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.Equal(t, ctxDeadline, state.DeadlineTS)
}

func TestExecutionResultMapping(t *testing.T) {
	tests := []struct {
		name   string
		result *workflow.Result
		verify func(t *testing.T, r *ExecutionResult)
	}{
		{
			name: "completed carries answer fields",
			result: &workflow.Result{
				Status: workflow.StatusCompleted,
				State: &workflow.State{
					TraceID:     "t-1",
					CurrentSQL:  "SELECT 1",
					FinalAnswer: "There is one.",
					QueryResult: &engine.QueryResult{
						Rows:         []map[string]any{{"n": 1}},
						RowsReturned: 1,
						PagesFetched: 1,
					},
				},
			},
			verify: func(t *testing.T, r *ExecutionResult) {
				assert.Equal(t, querysession.StatusCompleted, r.Status)
				assert.Equal(t, "SELECT 1", r.FinalSQL)
				assert.Equal(t, "There is one.", r.FinalAnswer)
				assert.Equal(t, "t-1", r.TraceID)
				require.NotNil(t, r.ResultPayload)
				assert.EqualValues(t, 1, r.ResultPayload["rows_returned"])
			},
		},
		{
			name: "clarification pause carries the question",
			result: &workflow.Result{
				Status: workflow.StatusAwaitingClarification,
				State: &workflow.State{
					TraceID:               "t-2",
					ClarificationQuestion: "Which year?",
				},
			},
			verify: func(t *testing.T, r *ExecutionResult) {
				assert.Equal(t, querysession.StatusAwaitingClarification, r.Status)
				assert.Equal(t, "Which year?", r.ClarificationQuestion)
				assert.Nil(t, r.Error)
			},
		},
		{
			name: "failure carries taxonomy code and message",
			result: &workflow.Result{
				Status: workflow.StatusFailed,
				State: &workflow.State{
					Error:     "tenant predicate missing",
					ErrorCode: "TENANT_VIOLATION",
				},
			},
			verify: func(t *testing.T, r *ExecutionResult) {
				assert.Equal(t, querysession.StatusFailed, r.Status)
				assert.Equal(t, "TENANT_VIOLATION", r.ErrorCode)
				require.Error(t, r.Error)
				assert.Contains(t, r.Error.Error(), "tenant predicate")
			},
		},
		{
			name: "timeout maps to timed_out",
			result: &workflow.Result{
				Status: workflow.StatusTimedOut,
				State:  &workflow.State{Error: "workflow deadline exceeded"},
			},
			verify: func(t *testing.T, r *ExecutionResult) {
				assert.Equal(t, querysession.StatusTimedOut, r.Status)
				require.Error(t, r.Error)
			},
		},
		{
			name: "cancellation maps to cancelled",
			result: &workflow.Result{
				Status: workflow.StatusCancelled,
				State:  &workflow.State{},
			},
			verify: func(t *testing.T, r *ExecutionResult) {
				assert.Equal(t, querysession.StatusCancelled, r.Status)
				assert.ErrorIs(t, r.Error, context.Canceled)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.verify(t, executionResultFrom(tt.result))
		})
	}
}

func TestResultPayloadIncludesChartSpec(t *testing.T) {
	state := &workflow.State{
		QueryResult: &engine.QueryResult{
			Rows:         []map[string]any{{"region": "EMEA", "total": 10}},
			RowsReturned: 1,
			IsTruncated:  true,
			PagesFetched: 2,
		},
		ChartSpec: `{"type":"bar"}`,
	}

	payload := resultPayload(state)
	require.NotNil(t, payload)
	assert.EqualValues(t, 1, payload["rows_returned"])
	assert.Equal(t, true, payload["is_truncated"])
	assert.EqualValues(t, 2, payload["pages_fetched"])
	assert.Equal(t, `{"type":"bar"}`, payload["chart_spec"])
}

func TestResultPayloadNilWithoutQueryResult(t *testing.T) {
	assert.Nil(t, resultPayload(&workflow.State{}))
}
