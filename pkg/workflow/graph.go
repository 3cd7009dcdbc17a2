package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/querra-ai/querra/pkg/llm"
	"github.com/querra-ai/querra/pkg/telemetry"
)

func init() {
	telemetry.RegisterContract("workflow.run", "workflow.status")
}

// Graph node names
const (
	NodeCacheLookup = "cache_lookup"
	NodeRouter      = "router"
	NodeClarify     = "clarify"
	NodeRetrieve    = "retrieve"
	NodePlan        = "plan"
	NodeGenerate    = "generate"
	NodeValidate    = "validate"
	NodeExecute     = "execute"
	NodeCorrect     = "correct"
	NodeVisualize   = "visualize"
	NodeSynthesize  = "synthesize"

	// End is the terminal pseudo-node.
	End = "__end__"
)

// Orchestrator-level error codes
const (
	CodeSystemCrash = "SYSTEM_CRASH"
)

// Status is the terminal disposition of one run
type Status string

const (
	StatusCompleted             Status = "completed"
	StatusFailed                Status = "failed"
	StatusAwaitingClarification Status = "awaiting_clarification"
	StatusTimedOut              Status = "timed_out"
	StatusCancelled             Status = "cancelled"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusAwaitingClarification, StatusTimedOut, StatusCancelled:
		return true
	}
	return false
}

// Result is the outcome of one run or resume.
type Result struct {
	Status Status
	State  *State
}

// NodeFunc is one graph stage. It reads the state and returns a fragment;
// it must not mutate the state it was given.
type NodeFunc func(ctx context.Context, s *State) (*Fragment, error)

// EdgeFunc picks the next node after a completed stage.
type EdgeFunc func(s *State) string

// InteractionRecord is the persisted footprint of one run.
type InteractionRecord struct {
	TraceID         string
	SessionID       string
	TenantID        int64
	Question        string
	GeneratedSQL    string
	ResponsePayload map[string]any
	ExecutionStatus string
	ErrorType       string
	TablesUsed      []string
}

// InteractionRecorder persists interaction records around a run. Creates are
// idempotent by trace id.
type InteractionRecorder interface {
	CreateInteraction(ctx context.Context, rec *InteractionRecord) error
	UpdateInteraction(ctx context.Context, rec *InteractionRecord) error
}

// RunnerConfig wires the runner's collaborators.
type RunnerConfig struct {
	Checkpointer Checkpointer
	Recorder     InteractionRecorder
	Limits       Limits
	// PersistenceFailOpen degrades interaction and checkpoint failures to a
	// warning plus the persistence_failed flag instead of blocking the run.
	PersistenceFailOpen bool
}

// Runner executes the graph: conditional routing, loop bounds, a checkpoint
// after every node, and interaction records around the run.
type Runner struct {
	nodes        map[string]NodeFunc
	edges        map[string]EdgeFunc
	entry        string
	checkpointer Checkpointer
	recorder     InteractionRecorder
	limits       Limits
	failOpen     bool
}

// NewRunner builds the standard graph over the given node implementations.
func NewRunner(n *Nodes, cfg RunnerConfig) *Runner {
	limits := cfg.Limits
	if limits == (Limits{}) {
		limits = DefaultLimits()
	}
	n.limits = limits
	checkpointer := cfg.Checkpointer
	if checkpointer == nil {
		checkpointer = NewMemoryCheckpointer()
	}
	return &Runner{
		nodes:        n.funcs(),
		edges:        defaultEdges(),
		entry:        NodeCacheLookup,
		checkpointer: checkpointer,
		recorder:     cfg.Recorder,
		limits:       limits,
		failOpen:     cfg.PersistenceFailOpen,
	}
}

func defaultEdges() map[string]EdgeFunc {
	return map[string]EdgeFunc{
		NodeCacheLookup: func(s *State) string {
			if s.FromCache && s.CurrentSQL != "" {
				return NodeValidate
			}
			return NodeRetrieve
		},
		NodeRetrieve: func(*State) string { return NodeRouter },
		NodeRouter: func(s *State) string {
			if s.AmbiguityType != "" {
				return NodeClarify
			}
			return NodePlan
		},
		NodeClarify:  func(*State) string { return NodeRouter },
		NodePlan:     func(*State) string { return NodeGenerate },
		NodeGenerate: func(*State) string { return NodeValidate },
		NodeValidate: func(s *State) string {
			if s.ErrorCode != "" {
				return NodeCorrect
			}
			return NodeExecute
		},
		NodeExecute: func(s *State) string {
			if s.ErrorCode == "" {
				if s.Visualize {
					return NodeVisualize
				}
				return NodeSynthesize
			}
			if errorRetryable(s) {
				return NodeCorrect
			}
			return End
		},
		NodeCorrect:   func(*State) string { return NodeValidate },
		NodeVisualize: func(*State) string { return NodeSynthesize },
		NodeSynthesize: func(*State) string {
			return End
		},
	}
}

func errorRetryable(s *State) bool {
	v, ok := s.ErrorMetadata["retryable"].(bool)
	return ok && v
}

// Run executes the graph from the entry node for a fresh question.
func (r *Runner) Run(ctx context.Context, threadID string, s *State) (*Result, error) {
	if s.TraceID == "" {
		s.TraceID = uuid.NewString()
	}

	if r.recorder != nil {
		rec := &InteractionRecord{
			TraceID:   s.TraceID,
			SessionID: threadID,
			TenantID:  s.TenantID,
			Question:  s.Question,
		}
		err := withRetry(ctx, func(ctx context.Context) error {
			return r.recorder.CreateInteraction(ctx, rec)
		})
		if err != nil {
			if !r.failOpen {
				return nil, fmt.Errorf("failed to create interaction record: %w", err)
			}
			slog.Warn("Interaction create failed, continuing fail-open",
				"thread_id", threadID, "error", err)
			s.PersistenceFailed = true
		}
	}

	return r.runFrom(ctx, threadID, s, r.entry)
}

// Resume continues a suspended run from its checkpoint. The user message is
// appended to the conversation and routing restarts at the edge of the last
// completed node.
func (r *Runner) Resume(ctx context.Context, threadID, userMessage string) (*Result, error) {
	s, lastNode, err := r.checkpointer.Load(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint for thread %s: %w", threadID, err)
	}
	if userMessage != "" {
		s.Messages = append(s.Messages, llm.Message{Role: llm.RoleUser, Content: userMessage})
		// The pending question is answered; the router re-evaluates ambiguity
		// against the extended conversation.
		s.ClarificationQuestion = ""
		s.AmbiguityType = ""
	}
	ctx = telemetry.DeserializeContext(ctx, s.TelemetryContext)

	edge, ok := r.edges[lastNode]
	if !ok {
		return nil, fmt.Errorf("checkpoint for thread %s names unknown node %q", threadID, lastNode)
	}
	return r.runFrom(ctx, threadID, s, edge(s))
}

func (r *Runner) runFrom(ctx context.Context, threadID string, s *State, start string) (*Result, error) {
	ctx, span := telemetry.StartSpan(ctx, "workflow.run", telemetry.KindWorkflow, map[string]any{
		"workflow.thread_id": threadID,
		"workflow.tenant_id": s.TenantID,
	})
	defer span.End()

	status := StatusCompleted
	current := start
	transitions := 0

loop:
	for current != End {
		transitions++
		if transitions > r.limits.MaxTransitions {
			s.Error = "workflow transition ceiling exceeded"
			s.ErrorCode = CodeSystemCrash
			s.ErrorCategory = "unknown"
			status = StatusFailed
			break
		}
		if ctx.Err() != nil {
			status = StatusCancelled
			break
		}
		if !s.DeadlineTS.IsZero() && time.Now().After(s.DeadlineTS) {
			s.Error = "workflow deadline exceeded"
			s.ErrorCategory = "timeout"
			status = StatusTimedOut
			break
		}

		// Loop bounds are enforced on entry, before the counter moves, so the
		// counters never exceed their caps.
		switch current {
		case NodeCorrect:
			if s.RetryCount >= r.limits.MaxCorrectionRounds {
				status = StatusFailed
				s.DecisionEvents.Append(r.limits, AuditEntry{
					Node:    NodeCorrect,
					Code:    "correction_rounds_exhausted",
					Message: fmt.Sprintf("giving up after %d correction rounds", s.RetryCount),
					At:      time.Now(),
				})
				break loop
			}
			s.RetryCount++
		case NodeClarify:
			if s.ClarifyCount >= r.limits.MaxClarifyRounds {
				s.surfaceClarification = true
			} else {
				s.ClarifyCount++
			}
		}

		fn, ok := r.nodes[current]
		if !ok {
			return nil, fmt.Errorf("graph routed to unknown node %q", current)
		}

		frag, err := r.runNode(ctx, current, fn, s)
		s.surfaceClarification = false
		if err != nil {
			code := CodeSystemCrash
			category := "unknown"
			if errors.Is(err, llm.ErrBudgetExceeded) {
				code = llm.CodeBudgetExceeded
				category = "resource_exhausted"
			}
			s.Error = err.Error()
			s.ErrorCode = code
			s.ErrorCategory = category
			status = StatusFailed
			s.ValidationFailures.Append(r.limits, AuditEntry{
				Node: current, Code: code, Message: err.Error(), At: time.Now(),
			})
			break
		}

		s.Apply(frag, r.limits)

		if err := r.checkpoint(ctx, threadID, s, current); err != nil {
			return nil, err
		}

		if frag != nil && frag.Interrupt {
			status = StatusAwaitingClarification
			break
		}

		edge, ok := r.edges[current]
		if !ok {
			current = End
			continue
		}
		current = edge(s)
	}

	if status == StatusCompleted && s.ErrorCode != "" {
		status = StatusFailed
	}
	span.SetAttribute("workflow.status", string(status))
	span.SetAttribute("workflow.transitions", transitions)

	r.finish(ctx, threadID, s, status)
	return &Result{Status: status, State: s}, nil
}

// checkpoint persists the state after one transition, honoring the fail-open
// policy.
func (r *Runner) checkpoint(ctx context.Context, threadID string, s *State, node string) error {
	err := r.checkpointer.Save(ctx, threadID, s, node)
	if err == nil {
		return nil
	}
	if !r.failOpen {
		return fmt.Errorf("failed to checkpoint after node %s: %w", node, err)
	}
	slog.Warn("Checkpoint write failed, continuing fail-open",
		"thread_id", threadID, "node", node, "error", err)
	s.PersistenceFailed = true
	return nil
}

// finish updates the interaction record and clears the checkpoint on
// terminal states. Post-run persistence failures never change the outcome.
func (r *Runner) finish(ctx context.Context, threadID string, s *State, status Status) {
	// Terminal writes survive caller cancellation.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if r.recorder != nil {
		rec := &InteractionRecord{
			TraceID:         s.TraceID,
			SessionID:       threadID,
			TenantID:        s.TenantID,
			Question:        s.Question,
			GeneratedSQL:    s.CurrentSQL,
			ExecutionStatus: executionStatus(status),
			ErrorType:       s.ErrorCode,
			TablesUsed:      s.TablesUsed,
		}
		if s.QueryResult != nil {
			rec.ResponsePayload = map[string]any{
				"rows_returned": s.QueryResult.RowsReturned,
				"pages_fetched": s.QueryResult.PagesFetched,
				"is_truncated":  s.QueryResult.IsTruncated,
			}
		}
		err := withRetry(ctx, func(ctx context.Context) error {
			return r.recorder.UpdateInteraction(ctx, rec)
		})
		if err != nil {
			slog.Warn("Interaction update failed", "thread_id", threadID, "error", err)
			s.PersistenceFailed = true
		}
	}

	if status != StatusAwaitingClarification {
		if err := r.checkpointer.Delete(ctx, threadID); err != nil {
			slog.Warn("Checkpoint cleanup failed", "thread_id", threadID, "error", err)
		}
	}
}

func executionStatus(status Status) string {
	switch status {
	case StatusCompleted:
		return "completed"
	case StatusAwaitingClarification:
		return "running"
	default:
		return "failed"
	}
}

// runNode executes one node under its span. The telemetry context is
// serialized into the state first, so the checkpoint written after this node
// carries linkage for a cross-process resume. Panics become node errors.
func (r *Runner) runNode(ctx context.Context, name string, fn NodeFunc, s *State) (frag *Fragment, err error) {
	s.TelemetryContext = telemetry.SerializeContext(ctx)

	ctx, span := telemetry.StartSpan(ctx, "workflow."+name, telemetry.KindNode, map[string]any{
		"workflow.node":        name,
		"workflow.retry_count": s.RetryCount,
	})
	defer span.End()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("node %s panicked: %v", name, p)
			frag = nil
			span.RecordError(err)
			slog.Error("Workflow node panicked", "node", name, "panic", p)
		}
	}()

	frag, err = fn(ctx, s)
	if err != nil {
		span.RecordError(err)
	}
	return frag, err
}

const (
	persistRetryAttempts = 3
	persistRetryBase     = 200 * time.Millisecond
)

// withRetry runs op with exponential backoff.
func withRetry(ctx context.Context, op func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < persistRetryAttempts; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if attempt == persistRetryAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(persistRetryBase << attempt):
		}
	}
	return err
}
