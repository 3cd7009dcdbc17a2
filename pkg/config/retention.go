package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// SessionRetentionDays is how many days to keep finished sessions
	// before soft-deleting them (setting deleted_at).
	SessionRetentionDays int `yaml:"session_retention_days"`

	// CheckpointTTL is the maximum age of a checkpoint row whose session is
	// no longer running. Per-session cleanup handles the normal case; this
	// is a safety net.
	CheckpointTTL time.Duration `yaml:"checkpoint_ttl"`

	// CacheEntryTTL is the maximum age of semantic cache entries before
	// they are dropped regardless of hit counts.
	CacheEntryTTL time.Duration `yaml:"cache_entry_ttl"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 365,
		CheckpointTTL:        24 * time.Hour,
		CacheEntryTTL:        30 * 24 * time.Hour,
		CleanupInterval:      12 * time.Hour,
	}
}
