package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/checkpoint"
	"github.com/querra-ai/querra/ent/querysession"
)

// EntCheckpointer persists checkpoints in the operational database so a
// suspended session survives pod restarts and can resume on any worker.
// Each transition runs update-or-create inside one transaction.
type EntCheckpointer struct {
	client *ent.Client
}

var _ Checkpointer = (*EntCheckpointer)(nil)

// NewEntCheckpointer creates a checkpointer over the shared ent client.
func NewEntCheckpointer(client *ent.Client) *EntCheckpointer {
	return &EntCheckpointer{client: client}
}

// Save stores the serialized state, replacing any previous checkpoint for
// the thread.
func (c *EntCheckpointer) Save(ctx context.Context, threadID string, s *State, node string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize checkpoint state: %w", err)
	}

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	n, err := tx.Checkpoint.Update().
		Where(checkpoint.ThreadID(threadID)).
		SetState(json.RawMessage(data)).
		SetNode(node).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update checkpoint: %w", err)
	}
	if n == 0 {
		if err := tx.Checkpoint.Create().
			SetThreadID(threadID).
			SetState(json.RawMessage(data)).
			SetNode(node).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to create checkpoint: %w", err)
		}
	}
	return tx.Commit()
}

// Load returns the checkpointed state and the last completed node.
func (c *EntCheckpointer) Load(ctx context.Context, threadID string) (*State, string, error) {
	cp, err := c.client.Checkpoint.Query().
		Where(checkpoint.ThreadID(threadID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, "", ErrCheckpointNotFound
		}
		return nil, "", fmt.Errorf("failed to load checkpoint: %w", err)
	}
	var s State
	if err := json.Unmarshal(cp.State, &s); err != nil {
		return nil, "", fmt.Errorf("failed to decode checkpoint state: %w", err)
	}
	return &s, cp.Node, nil
}

// Delete removes the thread's checkpoint. Missing threads are not an error.
func (c *EntCheckpointer) Delete(ctx context.Context, threadID string) error {
	if _, err := c.client.Checkpoint.Delete().
		Where(checkpoint.ThreadID(threadID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	return nil
}

// PruneExpired removes checkpoints older than olderThan whose session is no
// longer running. Per-session Delete handles the normal completion path;
// this is the safety net behind the retention loop.
func (c *EntCheckpointer) PruneExpired(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	active, err := c.client.QuerySession.Query().
		Where(
			querysession.StatusIn(
				querysession.StatusPending,
				querysession.StatusInProgress,
				querysession.StatusAwaitingClarification,
			),
			querysession.DeletedAtIsNil(),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active sessions: %w", err)
	}

	del := c.client.Checkpoint.Delete().Where(checkpoint.UpdatedAtLT(cutoff))
	if len(active) > 0 {
		del = del.Where(checkpoint.ThreadIDNotIn(active...))
	}
	n, err := del.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune checkpoints: %w", err)
	}
	return n, nil
}
