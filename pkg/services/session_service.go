package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/models"
)

// SessionService manages query session lifecycle
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new query session in pending state
func (s *SessionService) CreateSession(httpCtx context.Context, req models.CreateSessionRequest) (*ent.QuerySession, error) {
	// Validate input
	if req.SessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}
	if req.TenantID <= 0 {
		return nil, NewValidationError("tenant_id", "must be positive")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.QuerySession.Create().
		SetID(req.SessionID).
		SetTenantID(req.TenantID).
		SetQuestion(req.Question).
		SetStatus(querysession.StatusPending)

	if req.SchemaSnapshotID != "" {
		builder.SetSchemaSnapshotID(req.SchemaSnapshotID)
	}
	if req.PageSize > 0 {
		builder.SetPageSize(req.PageSize)
	}
	if req.PageToken != "" {
		builder.SetPageToken(req.PageToken)
	}
	if req.Seed != nil {
		builder.SetSeed(*req.Seed)
	}
	if req.TraceID != "" {
		builder.SetTraceID(req.TraceID)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// GetSession retrieves a session by ID with optional interaction loading
func (s *SessionService) GetSession(ctx context.Context, sessionID string, withInteractions bool) (*ent.QuerySession, error) {
	query := s.client.QuerySession.Query().Where(querysession.IDEQ(sessionID))

	if withInteractions {
		query = query.WithInteractions(func(q *ent.InteractionQuery) {
			q.Order(ent.Asc(interaction.FieldCreatedAt))
		})
	}

	session, err := query.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// ListSessions lists sessions with filtering and pagination
func (s *SessionService) ListSessions(ctx context.Context, filters models.SessionFilters) (*models.SessionListResponse, error) {
	query := s.client.QuerySession.Query()

	// Apply filters
	if filters.Status != "" {
		query = query.Where(querysession.StatusEQ(querysession.Status(filters.Status)))
	}
	if filters.TenantID != nil {
		query = query.Where(querysession.TenantIDEQ(*filters.TenantID))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(querysession.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(querysession.CreatedAtLT(*filters.CreatedBefore))
	}
	if !filters.IncludeDeleted {
		query = query.Where(querysession.DeletedAtIsNil())
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	sessions, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(querysession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &models.SessionListResponse{
		Sessions:   sessions,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateSessionStatus updates a session's status
func (s *SessionService) UpdateSessionStatus(ctx context.Context, sessionID string, status querysession.Status) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.QuerySession.UpdateOneID(sessionID).
		SetStatus(status).
		SetLastInteractionAt(time.Now())

	if isTerminalStatus(status) {
		update = update.SetCompletedAt(time.Now())
	}

	err := update.Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}

	return nil
}

// FinishSession applies the terminal write for a finished run: status,
// result payload, and error taxonomy in one update.
func (s *SessionService) FinishSession(ctx context.Context, sessionID string, outcome models.SessionOutcome) error {
	if !isTerminalStatus(outcome.Status) {
		return NewValidationError("status", "must be a terminal status")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.QuerySession.UpdateOneID(sessionID).
		SetStatus(outcome.Status).
		SetCompletedAt(time.Now()).
		SetLastInteractionAt(time.Now())

	if outcome.FinalSQL != "" {
		update.SetFinalSQL(outcome.FinalSQL)
	}
	if outcome.ResultPayload != nil {
		update.SetResultPayload(outcome.ResultPayload)
	}
	if outcome.FinalAnswer != "" {
		update.SetFinalAnswer(outcome.FinalAnswer)
	}
	if outcome.ErrorMessage != "" {
		update.SetErrorMessage(outcome.ErrorMessage)
	}
	if outcome.ErrorCode != "" {
		update.SetErrorCode(outcome.ErrorCode)
	}
	if outcome.TraceID != "" {
		update.SetTraceID(outcome.TraceID)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish session: %w", err)
	}

	return nil
}

// AwaitClarification suspends a session pending a user answer. The stored
// question is what the API surfaces to the caller.
func (s *SessionService) AwaitClarification(ctx context.Context, sessionID, question string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.QuerySession.UpdateOneID(sessionID).
		SetStatus(querysession.StatusAwaitingClarification).
		SetClarificationQuestion(question).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to suspend session for clarification: %w", err)
	}

	return nil
}

// ResumeFromClarification stores the user's answer and moves an awaiting
// session back to pending so a worker can pick it up again. Returns
// ErrConcurrentModification when the session is not awaiting clarification.
func (s *SessionService) ResumeFromClarification(ctx context.Context, sessionID, answer string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.QuerySession.Update().
		Where(
			querysession.IDEQ(sessionID),
			querysession.StatusEQ(querysession.StatusAwaitingClarification),
		).
		SetStatus(querysession.StatusPending).
		ClearClarificationQuestion().
		ClearPodID().
		SetLastInteractionAt(time.Now())
	if answer != "" {
		update.SetClarificationAnswer(answer)
	}

	n, err := update.Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to resume session: %w", err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}

	return nil
}

// CancelSession cancels a session that no worker currently owns: pending and
// awaiting_clarification rows flip straight to cancelled. In-progress runs are
// cancelled through the worker pool on the owning pod, so they are reported as
// not cancellable here.
func (s *SessionService) CancelSession(ctx context.Context, sessionID string) error {
	session, err := s.GetSession(ctx, sessionID, false)
	if err != nil {
		return err
	}

	switch session.Status {
	case querysession.StatusPending, querysession.StatusAwaitingClarification:
	default:
		return ErrNotCancellable
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.QuerySession.Update().
		Where(
			querysession.IDEQ(sessionID),
			querysession.StatusIn(querysession.StatusPending, querysession.StatusAwaitingClarification),
		).
		SetStatus(querysession.StatusCancelled).
		SetErrorMessage("Cancelled by user before execution").
		ClearClarificationQuestion().
		SetCompletedAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to cancel session: %w", err)
	}
	if n == 0 {
		// Claimed or finished between the read and the write.
		return ErrNotCancellable
	}

	return nil
}

// ClaimNextPendingSession atomically claims the oldest pending session using
// FOR UPDATE SKIP LOCKED, so concurrent replicas never block each other or
// double-claim. Returns (nil, nil) when nothing is claimable.
func (s *SessionService) ClaimNextPendingSession(ctx context.Context, podID string) (*ent.QuerySession, error) {
	// The claim must survive caller cancellation mid-transaction.
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// Oldest pending first. SKIP LOCKED makes rows held by concurrent
	// claimers invisible instead of blocking on them.
	session, err := tx.QuerySession.Query().
		Where(
			querysession.StatusEQ(querysession.StatusPending),
			querysession.DeletedAtIsNil(),
		).
		Order(ent.Asc(querysession.FieldCreatedAt)).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending sessions
		}
		return nil, fmt.Errorf("failed to query pending session: %w", err)
	}

	session, err = tx.QuerySession.UpdateOne(session).
		SetStatus(querysession.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(time.Now()).
		SetLastInteractionAt(time.Now()).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return session, nil
}

// CountActiveSessions returns how many sessions are currently in progress
// across all replicas. Workers use it as the global concurrency gate.
func (s *SessionService) CountActiveSessions(ctx context.Context) (int, error) {
	count, err := s.client.QuerySession.Query().
		Where(
			querysession.StatusEQ(querysession.StatusInProgress),
			querysession.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active sessions: %w", err)
	}
	return count, nil
}

// CountPendingSessions returns the queue depth.
func (s *SessionService) CountPendingSessions(ctx context.Context) (int, error) {
	count, err := s.client.QuerySession.Query().
		Where(
			querysession.StatusEQ(querysession.StatusPending),
			querysession.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending sessions: %w", err)
	}
	return count, nil
}

// TouchSession advances the heartbeat timestamp for an in-flight session
func (s *SessionService) TouchSession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.QuerySession.UpdateOneID(sessionID).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to touch session: %w", err)
	}

	return nil
}

// FindOrphanedSessions finds sessions stuck in-progress past timeout
func (s *SessionService) FindOrphanedSessions(ctx context.Context, timeoutDuration time.Duration) ([]*ent.QuerySession, error) {
	threshold := time.Now().Add(-timeoutDuration)

	sessions, err := s.client.QuerySession.Query().
		Where(
			querysession.StatusEQ(querysession.StatusInProgress),
			querysession.LastInteractionAtNotNil(),
			querysession.LastInteractionAtLT(threshold),
			querysession.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned sessions: %w", err)
	}

	return sessions, nil
}

// RequeueSession returns an orphaned in-progress session to the pending
// queue so another worker can claim it, bumping its requeue counter.
// Returns ErrConcurrentModification when the session is no longer in
// progress.
func (s *SessionService) RequeueSession(ctx context.Context, sessionID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.QuerySession.Update().
		Where(
			querysession.IDEQ(sessionID),
			querysession.StatusEQ(querysession.StatusInProgress),
		).
		SetStatus(querysession.StatusPending).
		ClearPodID().
		AddRequeueCount(1).
		SetLastInteractionAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to requeue session: %w", err)
	}
	if n == 0 {
		return ErrConcurrentModification
	}

	return nil
}

// SoftDeleteOldSessions soft deletes sessions older than retention period
func (s *SessionService) SoftDeleteOldSessions(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	// Use background context with timeout
	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.QuerySession.Update().
		Where(
			querysession.CompletedAtLT(cutoff),
			querysession.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete sessions: %w", err)
	}

	return count, nil
}

// RestoreSession restores a soft-deleted session
func (s *SessionService) RestoreSession(ctx context.Context, sessionID string) error {
	restoreCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.QuerySession.UpdateOneID(sessionID).
		ClearDeletedAt().
		Exec(restoreCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to restore session: %w", err)
	}

	return nil
}

// SearchSessions performs full-text search on question and final_answer
func (s *SessionService) SearchSessions(ctx context.Context, query string, limit int) ([]*ent.QuerySession, error) {
	if limit <= 0 {
		limit = 20
	}

	sessions, err := s.client.QuerySession.Query().
		Where(querysession.DeletedAtIsNil()).
		Where(func(sel *sql.Selector) {
			sel.Where(sql.Or(
				sql.ExprP("to_tsvector('english', question) @@ plainto_tsquery($1)", query),
				sql.ExprP("to_tsvector('english', COALESCE(final_answer, '')) @@ plainto_tsquery($2)", query),
			))
		}).
		Limit(limit).
		Order(ent.Desc(querysession.FieldCreatedAt)).
		All(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to search sessions: %w", err)
	}

	return sessions, nil
}

// isTerminalStatus reports whether the status ends a session's lifecycle.
func isTerminalStatus(status querysession.Status) bool {
	switch status {
	case querysession.StatusCompleted,
		querysession.StatusFailed,
		querysession.StatusCancelled,
		querysession.StatusTimedOut:
		return true
	default:
		return false
	}
}
