package workflow

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCheckpointer(t *testing.T) {
	ctx := context.Background()

	t.Run("save and load round-trip", func(t *testing.T) {
		cp := NewMemoryCheckpointer()
		s := &State{Question: "total revenue", CurrentSQL: "SELECT 1", RetryCount: 1}

		require.NoError(t, cp.Save(ctx, "thread-1", s, NodeValidate))

		loaded, node, err := cp.Load(ctx, "thread-1")
		require.NoError(t, err)
		assert.Equal(t, NodeValidate, node)
		assert.Equal(t, "total revenue", loaded.Question)
		assert.Equal(t, 1, loaded.RetryCount)
	})

	t.Run("stored snapshot does not alias live state", func(t *testing.T) {
		cp := NewMemoryCheckpointer()
		s := &State{Question: "q", TablesUsed: []string{"orders"}}
		require.NoError(t, cp.Save(ctx, "thread-2", s, NodeExecute))

		s.Question = "mutated"
		s.TablesUsed[0] = "mutated"

		loaded, _, err := cp.Load(ctx, "thread-2")
		require.NoError(t, err)
		assert.Equal(t, "q", loaded.Question)
		assert.Equal(t, "orders", loaded.TablesUsed[0])
	})

	t.Run("missing thread", func(t *testing.T) {
		cp := NewMemoryCheckpointer()
		_, _, err := cp.Load(ctx, "nope")
		assert.ErrorIs(t, err, ErrCheckpointNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		cp := NewMemoryCheckpointer()
		require.NoError(t, cp.Save(ctx, "thread-3", &State{}, NodeClarify))
		require.NoError(t, cp.Delete(ctx, "thread-3"))

		_, _, err := cp.Load(ctx, "thread-3")
		assert.ErrorIs(t, err, ErrCheckpointNotFound)

		assert.NoError(t, cp.Delete(ctx, "thread-3"), "deleting a missing thread is not an error")
	})

	t.Run("save overwrites previous checkpoint", func(t *testing.T) {
		cp := NewMemoryCheckpointer()
		require.NoError(t, cp.Save(ctx, "thread-4", &State{RetryCount: 0}, NodeGenerate))
		require.NoError(t, cp.Save(ctx, "thread-4", &State{RetryCount: 1}, NodeCorrect))

		loaded, node, err := cp.Load(ctx, "thread-4")
		require.NoError(t, err)
		assert.Equal(t, NodeCorrect, node)
		assert.Equal(t, 1, loaded.RetryCount)
	})
}

func TestRedisCheckpointer(t *testing.T) {
	ctx := context.Background()

	newClient := func(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		return mr, client
	}

	t.Run("save and load round-trip", func(t *testing.T) {
		_, client := newClient(t)
		cp := NewRedisCheckpointer(client, 0)

		s := &State{
			Question:              "orders per status",
			ClarificationQuestion: "which time period?",
			ClarifyCount:          1,
			AmbiguityType:         "ambiguous_timeframe",
		}
		require.NoError(t, cp.Save(ctx, "session-7", s, NodeClarify))

		loaded, node, err := cp.Load(ctx, "session-7")
		require.NoError(t, err)
		assert.Equal(t, NodeClarify, node)
		assert.Equal(t, "which time period?", loaded.ClarificationQuestion)
		assert.Equal(t, 1, loaded.ClarifyCount)
	})

	t.Run("missing thread", func(t *testing.T) {
		_, client := newClient(t)
		cp := NewRedisCheckpointer(client, 0)

		_, _, err := cp.Load(ctx, "nope")
		assert.ErrorIs(t, err, ErrCheckpointNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		_, client := newClient(t)
		cp := NewRedisCheckpointer(client, 0)

		require.NoError(t, cp.Save(ctx, "session-8", &State{}, NodeExecute))
		require.NoError(t, cp.Delete(ctx, "session-8"))

		_, _, err := cp.Load(ctx, "session-8")
		assert.ErrorIs(t, err, ErrCheckpointNotFound)
	})

	t.Run("ttl expires suspended sessions", func(t *testing.T) {
		mr, client := newClient(t)
		cp := NewRedisCheckpointer(client, time.Minute)

		require.NoError(t, cp.Save(ctx, "session-9", &State{}, NodeClarify))

		_, _, err := cp.Load(ctx, "session-9")
		require.NoError(t, err)

		mr.FastForward(2 * time.Minute)

		_, _, err = cp.Load(ctx, "session-9")
		assert.ErrorIs(t, err, ErrCheckpointNotFound)
	})
}
