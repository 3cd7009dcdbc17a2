package config

import "time"

// WorkflowConfig controls the question-answering graph.
type WorkflowConfig struct {
	// MaxCorrectionRounds caps the validate/execute → correct loop.
	MaxCorrectionRounds int

	// MaxClarifyRounds caps router-requested clarifications before the
	// question is surfaced to the user.
	MaxClarifyRounds int

	// MaxTransitions is the hard ceiling on node visits per run.
	MaxTransitions int

	// MaxAuditEntries caps each per-session audit list by count.
	MaxAuditEntries int

	// MaxAuditBytes caps each per-session audit list by serialized size.
	MaxAuditBytes int

	// PersistenceFailOpen keeps a run alive when interaction logging
	// fails; fail-closed aborts the run instead.
	PersistenceFailOpen bool

	// CheckpointBackend selects where per-node state snapshots live.
	CheckpointBackend CheckpointBackend

	// CheckpointTTL expires redis checkpoints; ignored elsewhere.
	CheckpointTTL time.Duration

	// RedisAddrEnv names the environment variable holding the redis
	// address for the redis checkpoint backend.
	RedisAddrEnv string
}

// DefaultWorkflowConfig returns the built-in workflow defaults.
func DefaultWorkflowConfig() *WorkflowConfig {
	return &WorkflowConfig{
		MaxCorrectionRounds: 2,
		MaxClarifyRounds:    2,
		MaxTransitions:      50,
		MaxAuditEntries:     100,
		MaxAuditBytes:       16 * 1024,
		PersistenceFailOpen: true,
		CheckpointBackend:   CheckpointBackendPostgres,
		CheckpointTTL:       24 * time.Hour,
		RedisAddrEnv:        "REDIS_ADDR",
	}
}
