package workflow

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/llm"
)

func TestApplyFragment(t *testing.T) {
	t.Run("nil pointers leave fields untouched", func(t *testing.T) {
		s := &State{CurrentSQL: "SELECT 1", Plan: "step 1", FromCache: true}
		s.Apply(&Fragment{Plan: ref("step 2")}, DefaultLimits())

		assert.Equal(t, "SELECT 1", s.CurrentSQL)
		assert.Equal(t, "step 2", s.Plan)
		assert.True(t, s.FromCache)
	})

	t.Run("set pointers overwrite to zero values", func(t *testing.T) {
		s := &State{
			Error:         "boom",
			ErrorCategory: "timeout",
			ErrorCode:     "DB_TIMEOUT",
			ErrorMetadata: map[string]any{"retryable": true},
		}
		s.Apply(clearError(), DefaultLimits())

		assert.Empty(t, s.Error)
		assert.Empty(t, s.ErrorCategory)
		assert.Empty(t, s.ErrorCode)
		assert.Empty(t, s.ErrorMetadata)
	})

	t.Run("clear result drops stale rows before a retry", func(t *testing.T) {
		s := &State{QueryResult: &engine.QueryResult{RowsReturned: 3}}
		s.Apply(&Fragment{ClearResult: true}, DefaultLimits())
		assert.Nil(t, s.QueryResult)

		s.Apply(&Fragment{ClearResult: true, QueryResult: &engine.QueryResult{RowsReturned: 1}}, DefaultLimits())
		require.NotNil(t, s.QueryResult)
		assert.Equal(t, 1, s.QueryResult.RowsReturned)
	})

	t.Run("messages append rather than replace", func(t *testing.T) {
		s := &State{Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}}}
		s.Apply(&Fragment{AppendMessages: []llm.Message{
			{Role: llm.RoleAssistant, Content: "which period?"},
			{Role: llm.RoleUser, Content: "last month"},
		}}, DefaultLimits())

		require.Len(t, s.Messages, 3)
		assert.Equal(t, "last month", s.Messages[2].Content)
	})

	t.Run("deadline only moves earlier", func(t *testing.T) {
		base := time.Now().Add(time.Minute)
		s := &State{DeadlineTS: base}

		s.Apply(&Fragment{DeadlineTS: ref(base.Add(time.Hour))}, DefaultLimits())
		assert.Equal(t, base, s.DeadlineTS, "a later deadline must not extend the budget")

		earlier := base.Add(-30 * time.Second)
		s.Apply(&Fragment{DeadlineTS: ref(earlier)}, DefaultLimits())
		assert.Equal(t, earlier, s.DeadlineTS)
	})

	t.Run("unset deadline accepts any deadline", func(t *testing.T) {
		s := &State{}
		d := time.Now().Add(time.Minute)
		s.Apply(&Fragment{DeadlineTS: ref(d)}, DefaultLimits())
		assert.Equal(t, d, s.DeadlineTS)
	})

	t.Run("nil fragment is a no-op", func(t *testing.T) {
		s := &State{CurrentSQL: "SELECT 1"}
		s.Apply(nil, DefaultLimits())
		assert.Equal(t, "SELECT 1", s.CurrentSQL)
	})
}

func TestAuditListBounds(t *testing.T) {
	t.Run("count cap evicts oldest first", func(t *testing.T) {
		limits := Limits{MaxAuditEntries: 3, MaxAuditBytes: 1 << 20}
		var l AuditList
		for i := 0; i < 5; i++ {
			l.Append(limits, AuditEntry{Node: "execute", Message: fmt.Sprintf("event %d", i)})
		}

		require.Len(t, l.Entries, 3)
		assert.Equal(t, 2, l.DroppedCount)
		assert.Equal(t, "event 2", l.Entries[0].Message)
		assert.Equal(t, "event 4", l.Entries[2].Message)
	})

	t.Run("byte cap evicts until the list fits", func(t *testing.T) {
		limits := Limits{MaxAuditEntries: 100, MaxAuditBytes: 60}
		var l AuditList
		for i := 0; i < 4; i++ {
			l.Append(limits, AuditEntry{Node: "node", Message: "xxxxxxxxxxxxxxxxxxxx"})
		}

		assert.LessOrEqual(t, l.totalSize(), 60)
		assert.Positive(t, l.DroppedCount)
		assert.NotEmpty(t, l.Entries)
	})

	t.Run("newest entry survives even when oversized", func(t *testing.T) {
		limits := Limits{MaxAuditEntries: 10, MaxAuditBytes: 8}
		var l AuditList
		l.Append(limits, AuditEntry{Node: "validate", Message: "a message much longer than the byte cap"})

		require.Len(t, l.Entries, 1)
		assert.Equal(t, 0, l.DroppedCount)
	})

	t.Run("batch append applies caps once", func(t *testing.T) {
		limits := Limits{MaxAuditEntries: 2, MaxAuditBytes: 1 << 20}
		var l AuditList
		l.Append(limits,
			AuditEntry{Message: "one"},
			AuditEntry{Message: "two"},
			AuditEntry{Message: "three"},
		)

		require.Len(t, l.Entries, 2)
		assert.Equal(t, "two", l.Entries[0].Message)
		assert.Equal(t, "three", l.Entries[1].Message)
		assert.Equal(t, 1, l.DroppedCount)
	})
}

func TestStateClone(t *testing.T) {
	s := &State{
		Question:      "total revenue",
		CurrentSQL:    "SELECT sum(total) FROM orders",
		TablesUsed:    []string{"orders"},
		ErrorMetadata: map[string]any{"retryable": true},
		Messages:      []llm.Message{{Role: llm.RoleUser, Content: "total revenue"}},
		QueryResult:   &engine.QueryResult{RowsReturned: 2, Rows: []map[string]any{{"sum": 10.0}}},
	}

	clone, err := s.Clone()
	require.NoError(t, err)

	s.TablesUsed[0] = "mutated"
	s.ErrorMetadata["retryable"] = false
	s.Messages[0].Content = "mutated"
	s.QueryResult.Rows[0]["sum"] = 99.0

	assert.Equal(t, "orders", clone.TablesUsed[0])
	assert.Equal(t, true, clone.ErrorMetadata["retryable"])
	assert.Equal(t, "total revenue", clone.Messages[0].Content)
	assert.Equal(t, 10.0, clone.QueryResult.Rows[0]["sum"])
}

func TestFragmentSetError(t *testing.T) {
	f := &Fragment{}
	f.setError("validation", "FORBIDDEN_COMMAND", "statement type not allowed", nil)

	require.NotNil(t, f.Error)
	assert.Equal(t, "statement type not allowed", *f.Error)
	assert.Equal(t, "validation", *f.ErrorCategory)
	assert.Equal(t, "FORBIDDEN_COMMAND", *f.ErrorCode)
	assert.NotNil(t, f.ErrorMetadata, "nil metadata normalizes to an empty map")
}

func TestTransientFlagNeverCheckpointed(t *testing.T) {
	s := &State{Question: "q"}
	s.surfaceClarification = true

	clone, err := s.Clone()
	require.NoError(t, err)
	assert.False(t, clone.surfaceClarification)
}
