package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/llm"
	"github.com/querra-ai/querra/pkg/workflow"
)

// WorkflowExecutor drives the question workflow for claimed sessions. A
// session with a live checkpoint resumes from it (clarification answers and
// requeued orphans); everything else starts a fresh run.
type WorkflowExecutor struct {
	runner       *workflow.Runner
	checkpointer workflow.Checkpointer

	tokenBudget     int
	questionTimeout time.Duration
	defaultPageSize int
}

var _ SessionExecutor = (*WorkflowExecutor)(nil)

// ExecutorConfig wires the executor's collaborators and per-question
// defaults. Checkpointer must be the same instance the runner checkpoints to.
type ExecutorConfig struct {
	Runner          *workflow.Runner
	Checkpointer    workflow.Checkpointer
	TokenBudget     int
	QuestionTimeout time.Duration
	DefaultPageSize int
}

// NewWorkflowExecutor creates a workflow-backed session executor.
func NewWorkflowExecutor(cfg ExecutorConfig) *WorkflowExecutor {
	return &WorkflowExecutor{
		runner:          cfg.Runner,
		checkpointer:    cfg.Checkpointer,
		tokenBudget:     cfg.TokenBudget,
		questionTimeout: cfg.QuestionTimeout,
		defaultPageSize: cfg.DefaultPageSize,
	}
}

// Execute runs one claimed session to its next resting state. The session id
// doubles as the workflow thread id.
func (e *WorkflowExecutor) Execute(ctx context.Context, session *ent.QuerySession) *ExecutionResult {
	log := slog.With("session_id", session.ID, "tenant_id", session.TenantID)

	answer := ""
	if session.ClarificationAnswer != nil {
		answer = *session.ClarificationAnswer
	}

	var (
		res    *workflow.Result
		runErr error
	)
	_, _, loadErr := e.checkpointer.Load(ctx, session.ID)
	switch {
	case loadErr == nil:
		log.Info("Resuming session from checkpoint", "has_answer", answer != "")
		res, runErr = e.runner.Resume(ctx, session.ID, answer)
	case errors.Is(loadErr, workflow.ErrCheckpointNotFound):
		state := e.buildState(ctx, session)
		if answer != "" {
			// The checkpoint is gone but the user already answered; keep the
			// answer in the conversation so the fresh run sees it.
			state.Messages = append(state.Messages, llm.Message{Role: llm.RoleUser, Content: answer})
		}
		log.Info("Starting session run", "deadline", state.DeadlineTS)
		res, runErr = e.runner.Run(ctx, session.ID, state)
	default:
		log.Error("Checkpoint store unavailable", "error", loadErr)
		return &ExecutionResult{
			Status:    querysession.StatusFailed,
			ErrorCode: workflow.CodeSystemCrash,
			Error:     fmt.Errorf("checkpoint store unavailable: %w", loadErr),
		}
	}

	if runErr != nil {
		switch {
		case errors.Is(runErr, context.DeadlineExceeded):
			return &ExecutionResult{Status: querysession.StatusTimedOut, Error: runErr}
		case errors.Is(runErr, context.Canceled):
			return &ExecutionResult{Status: querysession.StatusCancelled, Error: runErr}
		default:
			return &ExecutionResult{
				Status:    querysession.StatusFailed,
				ErrorCode: workflow.CodeSystemCrash,
				Error:     runErr,
			}
		}
	}

	return executionResultFrom(res)
}

// buildState seeds the workflow state from the claimed session row. The
// question deadline is the configured budget capped by the worker's session
// context, whichever expires first.
func (e *WorkflowExecutor) buildState(ctx context.Context, session *ent.QuerySession) *workflow.State {
	deadline := time.Now().Add(e.questionTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	state := &workflow.State{
		Question:           session.Question,
		TenantID:           session.TenantID,
		TokenBudget:        e.tokenBudget,
		DeadlineTS:         deadline,
		TimeoutSeconds:     int(e.questionTimeout.Seconds()),
		PageSize:           e.defaultPageSize,
		InteractiveSession: true,
	}

	if session.TraceID != nil {
		state.TraceID = *session.TraceID
	}
	if session.SchemaSnapshotID != nil {
		state.SchemaSnapshotID = *session.SchemaSnapshotID
	}
	if session.PageSize != nil && *session.PageSize > 0 {
		state.PageSize = *session.PageSize
	}
	if session.PageToken != nil {
		state.PageToken = *session.PageToken
	}
	if session.Seed != nil {
		state.Seed = *session.Seed
	}

	return state
}

// executionResultFrom maps a workflow result onto the session outcome fields.
func executionResultFrom(res *workflow.Result) *ExecutionResult {
	state := res.State
	result := &ExecutionResult{TraceID: state.TraceID}

	switch res.Status {
	case workflow.StatusCompleted:
		result.Status = querysession.StatusCompleted
		result.FinalSQL = state.CurrentSQL
		result.FinalAnswer = state.FinalAnswer
		result.ResultPayload = resultPayload(state)
	case workflow.StatusAwaitingClarification:
		result.Status = querysession.StatusAwaitingClarification
		result.ClarificationQuestion = state.ClarificationQuestion
	case workflow.StatusTimedOut:
		result.Status = querysession.StatusTimedOut
		result.ErrorCode = state.ErrorCode
		result.Error = stateError(state, "workflow deadline exceeded")
	case workflow.StatusCancelled:
		result.Status = querysession.StatusCancelled
		result.Error = context.Canceled
	default:
		result.Status = querysession.StatusFailed
		result.ErrorCode = state.ErrorCode
		result.Error = stateError(state, "workflow run failed")
	}

	return result
}

// resultPayload renders the terminal query result through its JSON form, so
// the stored payload matches what the engine reports (rows, completeness
// metadata, pagination counters). A chart spec rides along when set.
func resultPayload(state *workflow.State) map[string]any {
	if state.QueryResult == nil {
		return nil
	}
	data, err := json.Marshal(state.QueryResult)
	if err != nil {
		slog.Warn("Failed to encode result payload", "error", err)
		return nil
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		slog.Warn("Failed to decode result payload", "error", err)
		return nil
	}
	if state.ChartSpec != "" {
		payload["chart_spec"] = state.ChartSpec
	}
	return payload
}

func stateError(state *workflow.State, fallback string) error {
	if state.Error != "" {
		return errors.New(state.Error)
	}
	return errors.New(fallback)
}
