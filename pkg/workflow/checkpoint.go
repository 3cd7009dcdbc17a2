package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// ErrCheckpointNotFound indicates no checkpoint exists for the thread.
var ErrCheckpointNotFound = errors.New("workflow: checkpoint not found")

// Checkpointer persists the full state after every node transition, keyed by
// thread id. Save must be atomic per transition: a reader sees either the
// previous checkpoint or the new one, never a partial write.
type Checkpointer interface {
	Save(ctx context.Context, threadID string, s *State, node string) error
	Load(ctx context.Context, threadID string) (*State, string, error)
	Delete(ctx context.Context, threadID string) error
}

type memCheckpoint struct {
	state []byte
	node  string
}

// MemoryCheckpointer keeps checkpoints in process memory. Snapshots are
// serialized on Save so later state mutations never leak into a stored
// checkpoint.
type MemoryCheckpointer struct {
	mu      sync.RWMutex
	threads map[string]memCheckpoint
}

var _ Checkpointer = (*MemoryCheckpointer)(nil)

// NewMemoryCheckpointer creates an empty in-memory checkpointer.
func NewMemoryCheckpointer() *MemoryCheckpointer {
	return &MemoryCheckpointer{threads: make(map[string]memCheckpoint)}
}

// Save stores a serialized snapshot of the state.
func (c *MemoryCheckpointer) Save(_ context.Context, threadID string, s *State, node string) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.threads[threadID] = memCheckpoint{state: data, node: node}
	c.mu.Unlock()
	return nil
}

// Load returns the checkpointed state and the last completed node.
func (c *MemoryCheckpointer) Load(_ context.Context, threadID string) (*State, string, error) {
	c.mu.RLock()
	cp, ok := c.threads[threadID]
	c.mu.RUnlock()
	if !ok {
		return nil, "", ErrCheckpointNotFound
	}
	var s State
	if err := json.Unmarshal(cp.state, &s); err != nil {
		return nil, "", err
	}
	return &s, cp.node, nil
}

// Delete removes the thread's checkpoint. Missing threads are not an error.
func (c *MemoryCheckpointer) Delete(_ context.Context, threadID string) error {
	c.mu.Lock()
	delete(c.threads, threadID)
	c.mu.Unlock()
	return nil
}
