// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/services"
)

// CheckpointPruner removes expired checkpoint rows. The redis backend
// expires entries on its own, so only the database-backed checkpointer
// implements this.
type CheckpointPruner interface {
	PruneExpired(ctx context.Context, olderThan time.Duration) (int, error)
}

// Service periodically enforces retention policies:
//   - Soft-deletes sessions past the retention window
//   - Removes checkpoint rows whose session is no longer running
//   - Drops semantic cache entries past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config      *config.RetentionConfig
	sessions    *services.SessionService
	cache       *services.CacheService
	checkpoints CheckpointPruner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. A nil cache or checkpoints
// skips the corresponding sweep.
func NewService(
	cfg *config.RetentionConfig,
	sessions *services.SessionService,
	cache *services.CacheService,
	checkpoints CheckpointPruner,
) *Service {
	return &Service{
		config:      cfg,
		sessions:    sessions,
		cache:       cache,
		checkpoints: checkpoints,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"session_retention_days", s.config.SessionRetentionDays,
		"checkpoint_ttl", s.config.CheckpointTTL,
		"cache_entry_ttl", s.config.CacheEntryTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldSessions(ctx)
	s.pruneCheckpoints(ctx)
	s.pruneCacheEntries(ctx)
}

func (s *Service) softDeleteOldSessions(_ context.Context) {
	count, err := s.sessions.SoftDeleteOldSessions(context.Background(), s.config.SessionRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete sessions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old sessions", "count", count)
	}
}

func (s *Service) pruneCheckpoints(_ context.Context) {
	if s.checkpoints == nil || s.config.CheckpointTTL <= 0 {
		return
	}
	count, err := s.checkpoints.PruneExpired(context.Background(), s.config.CheckpointTTL)
	if err != nil {
		slog.Error("Retention: checkpoint prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned expired checkpoints", "count", count)
	}
}

func (s *Service) pruneCacheEntries(_ context.Context) {
	if s.cache == nil || s.config.CacheEntryTTL <= 0 {
		return
	}
	count, err := s.cache.PruneStale(context.Background(), s.config.CacheEntryTTL)
	if err != nil {
		slog.Error("Retention: cache prune failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: dropped stale cache entries", "count", count)
	}
}
