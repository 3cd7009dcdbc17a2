package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/models"
	"github.com/querra-ai/querra/pkg/services"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
	orphansRequeued  int
}

// orphanAction is the disposition of one orphan recovery attempt.
type orphanAction int

const (
	orphanSkipped orphanAction = iota
	orphanRequeued
	orphanTimedOut
)

// runOrphanDetection periodically scans for orphaned sessions.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in_progress sessions with stale heartbeats
// and requeues them for another worker, or times them out once the requeue
// budget is spent.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.sessions.FindOrphanedSessions(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned sessions: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned sessions", "count", len(orphans))

	requeued, timedOut := 0, 0
	for _, session := range orphans {
		lastHeartbeat := "unknown"
		if session.LastInteractionAt != nil {
			lastHeartbeat = session.LastInteractionAt.Format(time.RFC3339)
		}
		action, err := recoverOrphan(ctx, p.sessions, session, p.config.MaxRequeues,
			fmt.Sprintf("no heartbeat from pod %s since %s", orphanPodID(session), lastHeartbeat))
		if err != nil {
			slog.Error("Failed to recover orphaned session",
				"session_id", session.ID,
				"error", err)
			continue
		}
		switch action {
		case orphanRequeued:
			requeued++
		case orphanTimedOut:
			timedOut++
		}
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += timedOut
	p.orphans.orphansRequeued += requeued
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphan returns one orphaned session to the pending queue so another
// worker can resume it from its checkpoint. Once the session has been
// requeued maxRequeues times it is timed out instead, so a question that
// keeps killing its workers cannot cycle forever. A concurrent status change
// (the owning pod finished after all) is benign and skipped.
func recoverOrphan(ctx context.Context, sessions *services.SessionService, session *ent.QuerySession, maxRequeues int, detail string) (orphanAction, error) {
	log := slog.With("session_id", session.ID, "old_pod_id", orphanPodID(session), "requeue_count", session.RequeueCount)

	if session.RequeueCount < maxRequeues {
		err := sessions.RequeueSession(ctx, session.ID)
		if errors.Is(err, services.ErrConcurrentModification) {
			log.Info("Orphan recovery skipped, session state changed concurrently")
			return orphanSkipped, nil
		}
		if err != nil {
			return orphanSkipped, fmt.Errorf("failed to requeue session: %w", err)
		}
		log.Warn("Orphaned session requeued for resume", "detail", detail)
		return orphanRequeued, nil
	}

	err := sessions.FinishSession(ctx, session.ID, models.SessionOutcome{
		Status:       querysession.StatusTimedOut,
		ErrorMessage: fmt.Sprintf("Orphaned: %s; requeue limit (%d) reached", detail, maxRequeues),
	})
	if err != nil {
		return orphanSkipped, fmt.Errorf("failed to mark session as timed_out: %w", err)
	}
	log.Warn("Orphaned session marked as timed_out", "detail", detail)
	return orphanTimedOut, nil
}

func orphanPodID(session *ent.QuerySession) string {
	if session.PodID != nil {
		return *session.PodID
	}
	return "unknown"
}

// CleanupStartupOrphans performs a one-time recovery of sessions owned by
// this pod that were in-progress when the pod previously crashed. Called
// once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, sessions *services.SessionService, cfg *config.QueueConfig, podID string) error {
	orphans, err := client.QuerySession.Query().
		Where(
			querysession.StatusEQ(querysession.StatusInProgress),
			querysession.PodIDEQ(podID),
			querysession.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, session := range orphans {
		action, err := recoverOrphan(ctx, sessions, session, cfg.MaxRequeues,
			fmt.Sprintf("pod %s restarted while session was in progress", podID))
		if err != nil {
			slog.Error("Failed to recover startup orphan",
				"session_id", session.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "session_id", session.ID, "requeued", action == orphanRequeued)
	}

	return nil
}
