package workflow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "querra:checkpoint:"

type redisCheckpoint struct {
	Node  string          `json:"node"`
	State json.RawMessage `json:"state"`
}

// RedisCheckpointer persists checkpoints in Redis as one JSON document per
// thread. SET is atomic, so a transition is either fully visible or not at
// all. A TTL bounds how long a suspended session stays resumable.
type RedisCheckpointer struct {
	client redis.UniversalClient
	ttl    time.Duration
}

var _ Checkpointer = (*RedisCheckpointer)(nil)

// NewRedisCheckpointer wraps an existing Redis client. ttl 0 keeps
// checkpoints until deleted.
func NewRedisCheckpointer(client redis.UniversalClient, ttl time.Duration) *RedisCheckpointer {
	return &RedisCheckpointer{client: client, ttl: ttl}
}

func redisKey(threadID string) string { return redisKeyPrefix + threadID }

// Save stores the serialized state under the thread key.
func (c *RedisCheckpointer) Save(ctx context.Context, threadID string, s *State, node string) error {
	stateData, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to serialize checkpoint state: %w", err)
	}
	doc, err := json.Marshal(redisCheckpoint{Node: node, State: stateData})
	if err != nil {
		return fmt.Errorf("failed to serialize checkpoint: %w", err)
	}
	if err := c.client.Set(ctx, redisKey(threadID), doc, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}

// Load returns the checkpointed state and the last completed node.
func (c *RedisCheckpointer) Load(ctx context.Context, threadID string) (*State, string, error) {
	data, err := c.client.Get(ctx, redisKey(threadID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, "", ErrCheckpointNotFound
		}
		return nil, "", fmt.Errorf("failed to read checkpoint: %w", err)
	}
	var doc redisCheckpoint
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, "", fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	var s State
	if err := json.Unmarshal(doc.State, &s); err != nil {
		return nil, "", fmt.Errorf("failed to decode checkpoint state: %w", err)
	}
	return &s, doc.Node, nil
}

// Delete removes the thread's checkpoint.
func (c *RedisCheckpointer) Delete(ctx context.Context, threadID string) error {
	if err := c.client.Del(ctx, redisKey(threadID)).Err(); err != nil {
		return fmt.Errorf("failed to delete checkpoint: %w", err)
	}
	return nil
}
