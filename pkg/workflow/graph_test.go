package workflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/llm"
)

// scriptedGraph builds a runner over hand-written node functions, recording
// the visit order. Unscripted nodes return an empty fragment.
type scriptedGraph struct {
	mu      sync.Mutex
	visited []string
	runner  *Runner
}

func newScriptedGraph(overrides map[string]NodeFunc, cfg RunnerConfig) *scriptedGraph {
	g := &scriptedGraph{}
	nodes := make(map[string]NodeFunc)
	for _, name := range []string{
		NodeCacheLookup, NodeRetrieve, NodeRouter, NodeClarify, NodePlan,
		NodeGenerate, NodeValidate, NodeExecute, NodeCorrect, NodeVisualize,
		NodeSynthesize,
	} {
		name := name
		fn, ok := overrides[name]
		if !ok {
			fn = func(context.Context, *State) (*Fragment, error) { return &Fragment{}, nil }
		}
		nodes[name] = func(ctx context.Context, s *State) (*Fragment, error) {
			g.mu.Lock()
			g.visited = append(g.visited, name)
			g.mu.Unlock()
			return fn(ctx, s)
		}
	}

	limits := cfg.Limits
	if limits == (Limits{}) {
		limits = DefaultLimits()
	}
	checkpointer := cfg.Checkpointer
	if checkpointer == nil {
		checkpointer = NewMemoryCheckpointer()
	}
	g.runner = &Runner{
		nodes:        nodes,
		edges:        defaultEdges(),
		entry:        NodeCacheLookup,
		checkpointer: checkpointer,
		recorder:     cfg.Recorder,
		limits:       limits,
		failOpen:     cfg.PersistenceFailOpen,
	}
	return g
}

func (g *scriptedGraph) order() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.visited...)
}

func (g *scriptedGraph) visits(node string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	n := 0
	for _, v := range g.visited {
		if v == node {
			n++
		}
	}
	return n
}

// memoryRecorder captures interaction writes, with injectable failures.
type memoryRecorder struct {
	mu        sync.Mutex
	created   []*InteractionRecord
	updated   []*InteractionRecord
	createErr error
	updateErr error
}

func (r *memoryRecorder) CreateInteraction(_ context.Context, rec *InteractionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, rec)
	return nil
}

func (r *memoryRecorder) UpdateInteraction(_ context.Context, rec *InteractionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, rec)
	return nil
}

func (r *memoryRecorder) lastUpdate() *InteractionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.updated) == 0 {
		return nil
	}
	return r.updated[len(r.updated)-1]
}

// countingCheckpointer wraps another checkpointer and counts saves.
type countingCheckpointer struct {
	Checkpointer
	mu      sync.Mutex
	saves   int
	deletes int
	saveErr error
}

func (c *countingCheckpointer) Save(ctx context.Context, threadID string, s *State, node string) error {
	c.mu.Lock()
	c.saves++
	err := c.saveErr
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.Checkpointer.Save(ctx, threadID, s, node)
}

func (c *countingCheckpointer) Delete(ctx context.Context, threadID string) error {
	c.mu.Lock()
	c.deletes++
	c.mu.Unlock()
	return c.Checkpointer.Delete(ctx, threadID)
}

func happyPathOverrides() map[string]NodeFunc {
	return map[string]NodeFunc{
		NodeGenerate: func(_ context.Context, _ *State) (*Fragment, error) {
			return &Fragment{CurrentSQL: ref("SELECT status, count(*) FROM orders GROUP BY status")}, nil
		},
		NodeValidate: func(_ context.Context, _ *State) (*Fragment, error) {
			f := clearError()
			f.TablesUsed = []string{"orders"}
			return f, nil
		},
		NodeExecute: func(_ context.Context, _ *State) (*Fragment, error) {
			f := clearError()
			f.QueryResult = &engine.QueryResult{RowsReturned: 2, PagesFetched: 1}
			return f, nil
		},
		NodeSynthesize: func(_ context.Context, _ *State) (*Fragment, error) {
			return &Fragment{FinalAnswer: ref("Two statuses.")}, nil
		},
	}
}

func TestRunnerHappyPath(t *testing.T) {
	rec := &memoryRecorder{}
	cp := NewMemoryCheckpointer()
	g := newScriptedGraph(happyPathOverrides(), RunnerConfig{Checkpointer: cp, Recorder: rec})

	res, err := g.runner.Run(context.Background(), "thread-1", &State{Question: "orders per status", TenantID: 7})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "Two statuses.", res.State.FinalAnswer)
	assert.Equal(t, []string{
		NodeCacheLookup, NodeRetrieve, NodeRouter, NodePlan, NodeGenerate,
		NodeValidate, NodeExecute, NodeSynthesize,
	}, g.order())

	// Terminal runs leave no checkpoint behind.
	_, _, err = cp.Load(context.Background(), "thread-1")
	assert.ErrorIs(t, err, ErrCheckpointNotFound)

	require.Len(t, rec.created, 1)
	assert.NotEmpty(t, rec.created[0].TraceID)
	assert.Equal(t, int64(7), rec.created[0].TenantID)

	upd := rec.lastUpdate()
	require.NotNil(t, upd)
	assert.Equal(t, "completed", upd.ExecutionStatus)
	assert.Equal(t, []string{"orders"}, upd.TablesUsed)
	assert.Equal(t, 2, upd.ResponsePayload["rows_returned"])
}

func TestRunnerCacheHitSkipsGeneration(t *testing.T) {
	overrides := happyPathOverrides()
	overrides[NodeCacheLookup] = func(_ context.Context, _ *State) (*Fragment, error) {
		return &Fragment{FromCache: ref(true), CurrentSQL: ref("SELECT 1")}, nil
	}
	g := newScriptedGraph(overrides, RunnerConfig{})

	res, err := g.runner.Run(context.Background(), "thread-2", &State{Question: "q"})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, []string{NodeCacheLookup, NodeValidate, NodeExecute, NodeSynthesize}, g.order())
	assert.Zero(t, g.visits(NodeGenerate))
}

func TestRunnerVisualizeLeg(t *testing.T) {
	overrides := happyPathOverrides()
	overrides[NodeVisualize] = func(_ context.Context, _ *State) (*Fragment, error) {
		return &Fragment{ChartSpec: ref(`{"type":"bar"}`)}, nil
	}
	g := newScriptedGraph(overrides, RunnerConfig{})

	res, err := g.runner.Run(context.Background(), "thread-3", &State{Question: "q", Visualize: true})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, `{"type":"bar"}`, res.State.ChartSpec)
	assert.Equal(t, 1, g.visits(NodeVisualize))
	assert.Equal(t, []string{NodeVisualize, NodeSynthesize}, g.order()[len(g.order())-2:])
}

func TestRunnerCorrectionLoopBound(t *testing.T) {
	// correct clears the error, but validate fails again every round.
	overrides := map[string]NodeFunc{
		NodeValidate: func(_ context.Context, _ *State) (*Fragment, error) {
			f := &Fragment{}
			f.setError("validation", "FORBIDDEN_COMMAND", "statement type not allowed",
				map[string]any{"retryable": true})
			return f, nil
		},
		NodeCorrect: func(_ context.Context, _ *State) (*Fragment, error) {
			f := clearError()
			f.CurrentSQL = ref("SELECT 1")
			return f, nil
		},
	}
	g := newScriptedGraph(overrides, RunnerConfig{})

	res, err := g.runner.Run(context.Background(), "thread-4", &State{Question: "q"})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, DefaultMaxCorrectionRounds, res.State.RetryCount,
		"retry counter never exceeds the cap")
	assert.Equal(t, DefaultMaxCorrectionRounds, g.visits(NodeCorrect))
	assert.Equal(t, "FORBIDDEN_COMMAND", res.State.ErrorCode,
		"the final failure is preserved when the loop gives up")

	found := false
	for _, e := range res.State.DecisionEvents.Entries {
		if e.Code == "correction_rounds_exhausted" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRunnerNonRetryableExecuteEnds(t *testing.T) {
	overrides := map[string]NodeFunc{
		NodeExecute: func(_ context.Context, _ *State) (*Fragment, error) {
			f := &Fragment{}
			f.setError("tenant_enforcement_unsupported", "TENANT_ENFORCEMENT_UNSUPPORTED",
				"tenant isolation is not supported for this query shape",
				map[string]any{"retryable": false})
			return f, nil
		},
	}
	g := newScriptedGraph(overrides, RunnerConfig{})

	res, err := g.runner.Run(context.Background(), "thread-5", &State{Question: "q"})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "TENANT_ENFORCEMENT_UNSUPPORTED", res.State.ErrorCode)
	assert.Zero(t, g.visits(NodeCorrect), "non-retryable failures skip the correction loop")
	assert.Zero(t, res.State.RetryCount)
}

func TestRunnerClarifyInterruptAndResume(t *testing.T) {
	cp := NewMemoryCheckpointer()

	var routerCalls int
	var mu sync.Mutex
	overrides := happyPathOverrides()
	overrides[NodeRouter] = func(_ context.Context, _ *State) (*Fragment, error) {
		mu.Lock()
		routerCalls++
		first := routerCalls == 1
		mu.Unlock()
		if first {
			return &Fragment{AmbiguityType: ref("ambiguous_timeframe")}, nil
		}
		return &Fragment{AmbiguityType: ref("")}, nil
	}
	overrides[NodeClarify] = func(_ context.Context, s *State) (*Fragment, error) {
		return &Fragment{
			ClarificationQuestion: ref("Which time period?"),
			AppendMessages:        []llm.Message{{Role: llm.RoleAssistant, Content: "Which time period?"}},
			Interrupt:             true,
		}, nil
	}
	g := newScriptedGraph(overrides, RunnerConfig{Checkpointer: cp})

	res, err := g.runner.Run(context.Background(), "thread-6",
		&State{Question: "orders per status", InteractiveSession: true})
	require.NoError(t, err)

	require.Equal(t, StatusAwaitingClarification, res.Status)
	assert.Equal(t, "Which time period?", res.State.ClarificationQuestion)
	assert.Equal(t, 1, res.State.ClarifyCount)

	// The checkpoint survives the interrupt, parked at the clarify node.
	_, node, err := cp.Load(context.Background(), "thread-6")
	require.NoError(t, err)
	assert.Equal(t, NodeClarify, node)

	res, err = g.runner.Resume(context.Background(), "thread-6", "last 30 days")
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	assert.Equal(t, "Two statuses.", res.State.FinalAnswer)
	assert.Empty(t, res.State.ClarificationQuestion, "the answered question is cleared on resume")

	// The user's answer is part of the conversation now.
	var sawAnswer bool
	for _, m := range res.State.Messages {
		if m.Role == llm.RoleUser && m.Content == "last 30 days" {
			sawAnswer = true
		}
	}
	assert.True(t, sawAnswer)

	// Resume re-enters at the edge of the interrupted node: router again.
	assert.Equal(t, 2, g.visits(NodeRouter))

	_, _, err = cp.Load(context.Background(), "thread-6")
	assert.ErrorIs(t, err, ErrCheckpointNotFound, "terminal resume clears the checkpoint")
}

func TestRunnerResumeWithoutCheckpoint(t *testing.T) {
	g := newScriptedGraph(nil, RunnerConfig{})
	_, err := g.runner.Resume(context.Background(), "missing", "answer")
	assert.ErrorIs(t, err, ErrCheckpointNotFound)
}

func TestRunnerClarifySelfAnswerBound(t *testing.T) {
	// The router never resolves the ambiguity; a batch run self-answers up to
	// the cap and then surfaces the question.
	overrides := map[string]NodeFunc{
		NodeRouter: func(_ context.Context, _ *State) (*Fragment, error) {
			return &Fragment{AmbiguityType: ref("ambiguous_metric")}, nil
		},
		NodeClarify: func(_ context.Context, s *State) (*Fragment, error) {
			if s.surfaceClarification {
				return &Fragment{ClarificationQuestion: ref("Which metric?"), Interrupt: true}, nil
			}
			return &Fragment{AppendMessages: []llm.Message{
				{Role: llm.RoleAssistant, Content: "Which metric?"},
				{Role: llm.RoleUser, Content: "assume revenue"},
			}}, nil
		},
	}
	g := newScriptedGraph(overrides, RunnerConfig{})

	res, err := g.runner.Run(context.Background(), "thread-7", &State{Question: "how are we doing"})
	require.NoError(t, err)

	assert.Equal(t, StatusAwaitingClarification, res.Status)
	assert.Equal(t, DefaultMaxClarifyRounds, res.State.ClarifyCount,
		"clarify counter never exceeds the cap")
	assert.Equal(t, DefaultMaxClarifyRounds+1, g.visits(NodeClarify),
		"the final visit surfaces instead of self-answering")
	assert.Equal(t, "Which metric?", res.State.ClarificationQuestion)
}

func TestRunnerTransitionCeiling(t *testing.T) {
	g := newScriptedGraph(nil, RunnerConfig{Limits: Limits{
		MaxCorrectionRounds: 2,
		MaxClarifyRounds:    2,
		MaxAuditEntries:     10,
		MaxAuditBytes:       1 << 20,
		MaxTransitions:      3,
	}})
	// A two-node cycle with no loop counter.
	g.runner.edges = map[string]EdgeFunc{
		NodeCacheLookup: func(*State) string { return NodeRetrieve },
		NodeRetrieve:    func(*State) string { return NodeCacheLookup },
	}

	res, err := g.runner.Run(context.Background(), "thread-8", &State{Question: "q"})
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, CodeSystemCrash, res.State.ErrorCode)
	assert.Len(t, g.order(), 3)
}

func TestRunnerNodeFailureHandling(t *testing.T) {
	t.Run("node error becomes a system crash", func(t *testing.T) {
		overrides := map[string]NodeFunc{
			NodeRetrieve: func(_ context.Context, _ *State) (*Fragment, error) {
				return nil, errors.New("graph store unreachable")
			},
		}
		g := newScriptedGraph(overrides, RunnerConfig{})

		res, err := g.runner.Run(context.Background(), "thread-9", &State{Question: "q"})
		require.NoError(t, err)

		assert.Equal(t, StatusFailed, res.Status)
		assert.Equal(t, CodeSystemCrash, res.State.ErrorCode)
		assert.Equal(t, "unknown", res.State.ErrorCategory)
		require.NotEmpty(t, res.State.ValidationFailures.Entries)
		assert.Equal(t, NodeRetrieve, res.State.ValidationFailures.Entries[0].Node)
	})

	t.Run("budget exhaustion is its own terminal code", func(t *testing.T) {
		overrides := map[string]NodeFunc{
			NodePlan: func(_ context.Context, _ *State) (*Fragment, error) {
				return nil, fmt.Errorf("planning: %w", llm.ErrBudgetExceeded)
			},
		}
		g := newScriptedGraph(overrides, RunnerConfig{})

		res, err := g.runner.Run(context.Background(), "thread-10", &State{Question: "q"})
		require.NoError(t, err)

		assert.Equal(t, StatusFailed, res.Status)
		assert.Equal(t, llm.CodeBudgetExceeded, res.State.ErrorCode)
		assert.Equal(t, "resource_exhausted", res.State.ErrorCategory)
	})

	t.Run("panic is recovered into a failure", func(t *testing.T) {
		overrides := map[string]NodeFunc{
			NodeGenerate: func(_ context.Context, _ *State) (*Fragment, error) {
				panic("nil prompt template")
			},
		}
		g := newScriptedGraph(overrides, RunnerConfig{})

		res, err := g.runner.Run(context.Background(), "thread-11", &State{Question: "q"})
		require.NoError(t, err)

		assert.Equal(t, StatusFailed, res.Status)
		assert.Equal(t, CodeSystemCrash, res.State.ErrorCode)
		assert.Contains(t, res.State.Error, "panicked")
	})
}

func TestRunnerDeadlineExceeded(t *testing.T) {
	g := newScriptedGraph(happyPathOverrides(), RunnerConfig{})

	res, err := g.runner.Run(context.Background(), "thread-12",
		&State{Question: "q", DeadlineTS: time.Now().Add(-time.Second)})
	require.NoError(t, err)

	assert.Equal(t, StatusTimedOut, res.Status)
	assert.Equal(t, "timeout", res.State.ErrorCategory)
	assert.Empty(t, g.order(), "no node runs with an exhausted budget")
}

func TestRunnerCancelledContext(t *testing.T) {
	g := newScriptedGraph(happyPathOverrides(), RunnerConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := g.runner.Run(ctx, "thread-13", &State{Question: "q"})
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, res.Status)
}

func TestRunnerPersistencePolicy(t *testing.T) {
	t.Run("interaction create fails closed by default", func(t *testing.T) {
		rec := &memoryRecorder{createErr: errors.New("database down")}
		g := newScriptedGraph(happyPathOverrides(), RunnerConfig{Recorder: rec})

		_, err := g.runner.Run(context.Background(), "thread-14", &State{Question: "q"})
		require.Error(t, err)
		assert.Empty(t, g.order(), "no node runs without the interaction record")
	})

	t.Run("interaction create fail-open flags the run", func(t *testing.T) {
		rec := &memoryRecorder{createErr: errors.New("database down")}
		g := newScriptedGraph(happyPathOverrides(), RunnerConfig{Recorder: rec, PersistenceFailOpen: true})

		res, err := g.runner.Run(context.Background(), "thread-15", &State{Question: "q"})
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, res.Status)
		assert.True(t, res.State.PersistenceFailed)
	})

	t.Run("checkpoint write fails closed by default", func(t *testing.T) {
		cp := &countingCheckpointer{Checkpointer: NewMemoryCheckpointer(), saveErr: errors.New("redis down")}
		g := newScriptedGraph(happyPathOverrides(), RunnerConfig{Checkpointer: cp})

		_, err := g.runner.Run(context.Background(), "thread-16", &State{Question: "q"})
		require.Error(t, err)
	})

	t.Run("checkpoint write fail-open flags the run", func(t *testing.T) {
		cp := &countingCheckpointer{Checkpointer: NewMemoryCheckpointer(), saveErr: errors.New("redis down")}
		g := newScriptedGraph(happyPathOverrides(), RunnerConfig{Checkpointer: cp, PersistenceFailOpen: true})

		res, err := g.runner.Run(context.Background(), "thread-17", &State{Question: "q"})
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, res.Status)
		assert.True(t, res.State.PersistenceFailed)
	})

	t.Run("final interaction update never blocks the outcome", func(t *testing.T) {
		rec := &memoryRecorder{updateErr: errors.New("database down")}
		g := newScriptedGraph(happyPathOverrides(), RunnerConfig{Recorder: rec})

		res, err := g.runner.Run(context.Background(), "thread-18", &State{Question: "q"})
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, res.Status)
		assert.True(t, res.State.PersistenceFailed)
	})
}

func TestRunnerCheckpointsEveryTransition(t *testing.T) {
	cp := &countingCheckpointer{Checkpointer: NewMemoryCheckpointer()}
	g := newScriptedGraph(happyPathOverrides(), RunnerConfig{Checkpointer: cp})

	res, err := g.runner.Run(context.Background(), "thread-19", &State{Question: "q"})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, res.Status)

	assert.Equal(t, len(g.order()), cp.saves, "one checkpoint per completed node")
	assert.Equal(t, 1, cp.deletes)
}

func TestRunnerFailedRunStillUpdatesInteraction(t *testing.T) {
	rec := &memoryRecorder{}
	overrides := map[string]NodeFunc{
		NodeExecute: func(_ context.Context, _ *State) (*Fragment, error) {
			f := &Fragment{}
			f.setError("syntax", "SYNTAX_ERROR", "syntax error at or near FROM",
				map[string]any{"retryable": false})
			return f, nil
		},
		NodeGenerate: func(_ context.Context, _ *State) (*Fragment, error) {
			return &Fragment{CurrentSQL: ref("SELECT FROM broken")}, nil
		},
		NodeValidate: func(_ context.Context, _ *State) (*Fragment, error) {
			return clearError(), nil
		},
	}
	g := newScriptedGraph(overrides, RunnerConfig{Recorder: rec})

	res, err := g.runner.Run(context.Background(), "thread-20", &State{Question: "q"})
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)

	upd := rec.lastUpdate()
	require.NotNil(t, upd)
	assert.Equal(t, "failed", upd.ExecutionStatus)
	assert.Equal(t, "SYNTAX_ERROR", upd.ErrorType)
	assert.Equal(t, "SELECT FROM broken", upd.GeneratedSQL)
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{
		StatusCompleted, StatusFailed, StatusAwaitingClarification,
		StatusTimedOut, StatusCancelled,
	} {
		assert.True(t, s.IsValid(), string(s))
	}
	assert.False(t, Status("bogus").IsValid())
}
