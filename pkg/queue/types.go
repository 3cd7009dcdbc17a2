// Package queue provides session queue management and processing infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
)

// Sentinel errors for queue operations.
var (
	// ErrNoSessionsAvailable indicates no pending sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates the global concurrent session limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// SessionExecutor runs one claimed question session to its next resting
// state. Implementations own the run itself (fresh start or checkpoint
// resume); the worker only handles claiming, heartbeat, and the resulting
// status write.
type SessionExecutor interface {
	Execute(ctx context.Context, session *ent.QuerySession) *ExecutionResult
}

// ExecutionResult is the resting state of one execution attempt. Terminal
// statuses carry the final answer fields; awaiting_clarification carries the
// question to surface and leaves the checkpoint in place for resume.
type ExecutionResult struct {
	Status                querysession.Status // completed, failed, timed_out, cancelled, awaiting_clarification
	FinalSQL              string              // Tenant-scoped SQL behind the final result
	ResultPayload         map[string]any      // Terminal query result (rows + completeness metadata)
	FinalAnswer           string              // Synthesized natural-language answer
	ClarificationQuestion string              // Set when Status is awaiting_clarification
	ErrorCode             string              // Canonical taxonomy code (if failed/timed_out)
	TraceID               string              // Trace id assigned to the run
	Error                 error               // Error details (if failed/timed_out)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
	OrphansRequeued  int            `json:"orphans_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"` // "idle" or "working"
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
