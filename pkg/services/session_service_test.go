package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/models"
	testdb "github.com/querra-ai/querra/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_CreateSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("creates pending session", func(t *testing.T) {
		seed := int64(42)
		req := models.CreateSessionRequest{
			SessionID:        uuid.New().String(),
			TenantID:         7,
			Question:         "How many orders shipped last week?",
			SchemaSnapshotID: "snap-2026-08-01",
			PageSize:         50,
			Seed:             &seed,
			TraceID:          uuid.New().String(),
		}

		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, req.SessionID, session.ID)
		assert.Equal(t, req.TenantID, session.TenantID)
		assert.Equal(t, req.Question, session.Question)
		assert.Equal(t, querysession.StatusPending, session.Status)
		require.NotNil(t, session.SchemaSnapshotID)
		assert.Equal(t, req.SchemaSnapshotID, *session.SchemaSnapshotID)
		require.NotNil(t, session.PageSize)
		assert.Equal(t, 50, *session.PageSize)
		require.NotNil(t, session.Seed)
		assert.Equal(t, seed, *session.Seed)
		require.NotNil(t, session.TraceID)
		assert.Equal(t, req.TraceID, *session.TraceID)
		assert.False(t, session.CreatedAt.IsZero())
		// Not claimed yet
		assert.Nil(t, session.StartedAt)
		assert.Nil(t, session.PodID)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.CreateSessionRequest
		}{
			{
				name: "missing session_id",
				req:  models.CreateSessionRequest{TenantID: 1, Question: "q"},
			},
			{
				name: "missing question",
				req:  models.CreateSessionRequest{SessionID: "sid", TenantID: 1},
			},
			{
				name: "zero tenant_id",
				req:  models.CreateSessionRequest{SessionID: "sid", Question: "q"},
			},
			{
				name: "negative tenant_id",
				req:  models.CreateSessionRequest{SessionID: "sid", TenantID: -3, Question: "q"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.CreateSession(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects duplicate session_id", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "duplicate me",
		}

		_, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		// Try to create again with same ID
		_, err = service.CreateSession(ctx, req)
		require.Error(t, err)
		assert.Equal(t, ErrAlreadyExists, err)
	})
}

func TestSessionService_GetSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("returns session with interactions ordered by creation", func(t *testing.T) {
		req := models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "show top customers",
		}
		session, err := service.CreateSession(ctx, req)
		require.NoError(t, err)

		// Seed two audit rows directly
		_, err = client.Interaction.Create().
			SetID(uuid.New().String()).
			SetSessionID(session.ID).
			SetTraceID(uuid.New().String()).
			SetTenantID(1).
			SetQuestion("show top customers").
			SetCreatedAt(time.Now().Add(-time.Minute)).
			Save(ctx)
		require.NoError(t, err)

		second, err := client.Interaction.Create().
			SetID(uuid.New().String()).
			SetSessionID(session.ID).
			SetTraceID(uuid.New().String()).
			SetTenantID(1).
			SetQuestion("show top customers for region EMEA").
			Save(ctx)
		require.NoError(t, err)

		loaded, err := service.GetSession(ctx, session.ID, true)
		require.NoError(t, err)
		require.Len(t, loaded.Edges.Interactions, 2)
		assert.Equal(t, second.ID, loaded.Edges.Interactions[1].ID)

		// Without interactions the edge stays unloaded
		bare, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Nil(t, bare.Edges.Interactions)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		_, err := service.GetSession(ctx, "nonexistent", false)
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_ListSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	// Seed sessions across two tenants
	for i := 0; i < 3; i++ {
		req := models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  fmt.Sprintf("tenant one question %d", i),
		}
		_, err := service.CreateSession(ctx, req)
		require.NoError(t, err)
	}
	completed, err := service.CreateSession(ctx, models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		TenantID:  2,
		Question:  "tenant two question",
	})
	require.NoError(t, err)
	require.NoError(t, service.UpdateSessionStatus(ctx, completed.ID, querysession.StatusCompleted))

	t.Run("applies pagination", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			Limit:  2,
			Offset: 0,
		})
		require.NoError(t, err)
		assert.Len(t, result.Sessions, 2)
		assert.Equal(t, 2, result.Limit)
		assert.Equal(t, 4, result.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		result, err := service.ListSessions(ctx, models.SessionFilters{
			Status: string(querysession.StatusPending),
		})
		require.NoError(t, err)
		assert.Len(t, result.Sessions, 3)
		for _, session := range result.Sessions {
			assert.Equal(t, querysession.StatusPending, session.Status)
		}
	})

	t.Run("filters by tenant", func(t *testing.T) {
		tenantID := int64(2)
		result, err := service.ListSessions(ctx, models.SessionFilters{
			TenantID: &tenantID,
		})
		require.NoError(t, err)
		require.Len(t, result.Sessions, 1)
		assert.Equal(t, completed.ID, result.Sessions[0].ID)
	})

	t.Run("excludes soft-deleted by default", func(t *testing.T) {
		// Create and soft-delete a session
		created, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "to delete",
		})
		require.NoError(t, err)

		err = client.QuerySession.UpdateOneID(created.ID).
			SetDeletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// List should exclude it
		result, err := service.ListSessions(ctx, models.SessionFilters{})
		require.NoError(t, err)
		for _, session := range result.Sessions {
			assert.NotEqual(t, created.ID, session.ID)
		}

		// List with include_deleted should show it
		resultWithDeleted, err := service.ListSessions(ctx, models.SessionFilters{
			IncludeDeleted: true,
		})
		require.NoError(t, err)
		found := false
		for _, session := range resultWithDeleted.Sessions {
			if session.ID == created.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})
}

func TestSessionService_UpdateSessionStatus(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("updates status", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "test question",
		})
		require.NoError(t, err)

		err = service.UpdateSessionStatus(ctx, session.ID, querysession.StatusInProgress)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusInProgress, updated.Status)
		assert.NotNil(t, updated.LastInteractionAt)
	})

	t.Run("sets completed_at for terminal states", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "test question",
		})
		require.NoError(t, err)

		err = service.UpdateSessionStatus(ctx, session.ID, querysession.StatusCompleted)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.UpdateSessionStatus(ctx, "nonexistent", querysession.StatusCompleted)
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_FinishSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("records successful outcome", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "total revenue by month",
		})
		require.NoError(t, err)

		err = service.FinishSession(ctx, session.ID, models.SessionOutcome{
			Status:   querysession.StatusCompleted,
			FinalSQL: "SELECT month, SUM(amount) FROM orders WHERE tenant_id = 1 GROUP BY month",
			ResultPayload: map[string]any{
				"rows_returned": 12,
				"is_truncated":  false,
			},
			FinalAnswer: "Revenue peaked in July.",
			TraceID:     uuid.New().String(),
		})
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusCompleted, updated.Status)
		require.NotNil(t, updated.FinalSQL)
		assert.Contains(t, *updated.FinalSQL, "SUM(amount)")
		require.NotNil(t, updated.FinalAnswer)
		assert.Equal(t, "Revenue peaked in July.", *updated.FinalAnswer)
		assert.NotNil(t, updated.CompletedAt)
		// JSON round-trip turns numbers into float64
		assert.Equal(t, float64(12), updated.ResultPayload["rows_returned"])
		assert.Equal(t, false, updated.ResultPayload["is_truncated"])
	})

	t.Run("records failure taxonomy", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "broken question",
		})
		require.NoError(t, err)

		err = service.FinishSession(ctx, session.ID, models.SessionOutcome{
			Status:       querysession.StatusFailed,
			ErrorMessage: "generated query referenced table outside allowlist",
			ErrorCode:    "guardrail_violation",
		})
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusFailed, updated.Status)
		require.NotNil(t, updated.ErrorCode)
		assert.Equal(t, "guardrail_violation", *updated.ErrorCode)
		require.NotNil(t, updated.ErrorMessage)
	})

	t.Run("rejects non-terminal status", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "still running",
		})
		require.NoError(t, err)

		err = service.FinishSession(ctx, session.ID, models.SessionOutcome{
			Status: querysession.StatusInProgress,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.FinishSession(ctx, "nonexistent", models.SessionOutcome{
			Status: querysession.StatusCompleted,
		})
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_Clarification(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("suspends and resumes", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "show the report",
		})
		require.NoError(t, err)

		// Worker claims it, then asks for clarification
		err = client.QuerySession.UpdateOneID(session.ID).
			SetStatus(querysession.StatusInProgress).
			SetPodID("pod-1").
			Exec(ctx)
		require.NoError(t, err)

		err = service.AwaitClarification(ctx, session.ID, "Which report do you mean: sales or inventory?")
		require.NoError(t, err)

		suspended, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusAwaitingClarification, suspended.Status)
		require.NotNil(t, suspended.ClarificationQuestion)
		assert.Contains(t, *suspended.ClarificationQuestion, "sales or inventory")

		// User answers; session goes back to the queue carrying the answer
		err = service.ResumeFromClarification(ctx, session.ID, "the sales report")
		require.NoError(t, err)

		resumed, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusPending, resumed.Status)
		assert.Nil(t, resumed.ClarificationQuestion)
		assert.Nil(t, resumed.PodID)
		require.NotNil(t, resumed.ClarificationAnswer)
		assert.Equal(t, "the sales report", *resumed.ClarificationAnswer)
	})

	t.Run("resume requires awaiting status", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "never suspended",
		})
		require.NoError(t, err)

		err = service.ResumeFromClarification(ctx, session.ID, "any answer")
		require.Error(t, err)
		assert.Equal(t, ErrConcurrentModification, err)
	})

	t.Run("await returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.AwaitClarification(ctx, "nonexistent", "which one?")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_CancelSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("cancels pending session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "cancel me",
		})
		require.NoError(t, err)

		err = service.CancelSession(ctx, session.ID)
		require.NoError(t, err)

		cancelled, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusCancelled, cancelled.Status)
		assert.NotNil(t, cancelled.CompletedAt)
	})

	t.Run("cancels awaiting_clarification session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "suspended question",
		})
		require.NoError(t, err)

		err = service.AwaitClarification(ctx, session.ID, "which region?")
		require.NoError(t, err)

		err = service.CancelSession(ctx, session.ID)
		require.NoError(t, err)

		cancelled, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusCancelled, cancelled.Status)
		assert.Nil(t, cancelled.ClarificationQuestion)
	})

	t.Run("rejects in_progress session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "already running",
		})
		require.NoError(t, err)

		err = client.QuerySession.UpdateOneID(session.ID).
			SetStatus(querysession.StatusInProgress).
			SetPodID("pod-1").
			Exec(ctx)
		require.NoError(t, err)

		err = service.CancelSession(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, ErrNotCancellable, err)
	})

	t.Run("rejects terminal session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "already done",
		})
		require.NoError(t, err)

		err = service.FinishSession(ctx, session.ID, models.SessionOutcome{
			Status:      querysession.StatusCompleted,
			FinalAnswer: "42",
		})
		require.NoError(t, err)

		err = service.CancelSession(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, ErrNotCancellable, err)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.CancelSession(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_ClaimNextPendingSession(t *testing.T) {
	t.Run("claims oldest pending session", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()

		// Create two pending sessions
		session1, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "first question",
		})
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond) // Ensure different timestamps

		_, err = service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "second question",
		})
		require.NoError(t, err)

		// Claim should get first session
		claimed, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, session1.ID, claimed.ID)
		assert.Equal(t, querysession.StatusInProgress, claimed.Status)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
	})

	t.Run("returns nil when no pending sessions", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()

		claimed, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, claimed)
	})

	t.Run("allows concurrent claims without conflict", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()

		// Create sessions
		for i := 0; i < 3; i++ {
			_, err := service.CreateSession(ctx, models.CreateSessionRequest{
				SessionID: uuid.New().String(),
				TenantID:  1,
				Question:  "test",
			})
			require.NoError(t, err)
		}

		// Simulate concurrent claims
		claimed1, err := service.ClaimNextPendingSession(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed1)

		claimed2, err := service.ClaimNextPendingSession(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed2)

		// Should be different sessions
		assert.NotEqual(t, claimed1.ID, claimed2.ID)
	})
}

func TestSessionService_Counts(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "count me",
		})
		require.NoError(t, err)
	}

	pending, err := service.CountPendingSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, pending)

	active, err := service.CountActiveSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, active)

	claimed, err := service.ClaimNextPendingSession(ctx, "pod-1")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	pending, err = service.CountPendingSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	active, err = service.CountActiveSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, active)
}

func TestSessionService_ConcurrentClaiming(t *testing.T) {
	t.Run("multiple workers claim different sessions without conflict", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()
		// Create 10 pending sessions
		numSessions := 10
		for i := 0; i < numSessions; i++ {
			_, err := service.CreateSession(ctx, models.CreateSessionRequest{
				SessionID: uuid.New().String(),
				TenantID:  1,
				Question:  "test question",
			})
			require.NoError(t, err)
		}

		// Launch 10 goroutines claiming sessions concurrently
		numWorkers := 10
		type result struct {
			session *ent.QuerySession
			err     error
		}
		results := make(chan result, numWorkers)

		for i := 0; i < numWorkers; i++ {
			go func(workerID int) {
				podID := fmt.Sprintf("pod-%d", workerID)
				session, err := service.ClaimNextPendingSession(ctx, podID)
				results <- result{session: session, err: err}
			}(i)
		}

		// Collect all results
		var claimedSessions []*ent.QuerySession
		var errors []error
		for i := 0; i < numWorkers; i++ {
			res := <-results
			if res.err != nil {
				errors = append(errors, res.err)
			} else if res.session != nil {
				claimedSessions = append(claimedSessions, res.session)
			}
		}

		// Verify no errors occurred
		require.Empty(t, errors, "concurrent claiming should not produce errors")

		// Verify we claimed all available sessions (workers might return nil if no sessions left)
		// The key is that all sessions get claimed, even if not all workers succeed
		assert.LessOrEqual(t, len(claimedSessions), numSessions, "should not claim more than available")
		assert.GreaterOrEqual(t, len(claimedSessions), 1, "should claim at least one session")

		// The critical test: verify no duplicate claims - all session IDs must be unique
		seenIDs := make(map[string]bool)
		for _, session := range claimedSessions {
			assert.False(t, seenIDs[session.ID], "session %s was claimed multiple times", session.ID)
			seenIDs[session.ID] = true
		}

		// Verify all claimed sessions are in_progress status with correct pod_id
		for _, session := range claimedSessions {
			assert.Equal(t, querysession.StatusInProgress, session.Status)
			assert.NotNil(t, session.PodID, "claimed session should have pod_id set")
		}
	})

	t.Run("workers claiming more sessions than available", func(t *testing.T) {
		client := testdb.NewTestClient(t)
		service := NewSessionService(client.Client)
		ctx := context.Background()
		// Create only 3 pending sessions
		numSessions := 3
		for i := 0; i < numSessions; i++ {
			_, err := service.CreateSession(ctx, models.CreateSessionRequest{
				SessionID: uuid.New().String(),
				TenantID:  1,
				Question:  "test question",
			})
			require.NoError(t, err)
		}

		// Launch 10 workers (more than available sessions)
		numWorkers := 10
		type result struct {
			session *ent.QuerySession
			err     error
		}
		results := make(chan result, numWorkers)

		for i := 0; i < numWorkers; i++ {
			go func(workerID int) {
				podID := fmt.Sprintf("pod-%d", workerID)
				session, err := service.ClaimNextPendingSession(ctx, podID)
				results <- result{session: session, err: err}
			}(i)
		}

		// Collect all results
		var claimedSessions []*ent.QuerySession
		var errors []error
		for i := 0; i < numWorkers; i++ {
			res := <-results
			if res.err != nil {
				errors = append(errors, res.err)
			} else if res.session != nil {
				claimedSessions = append(claimedSessions, res.session)
			}
		}

		// Verify no errors occurred
		require.Empty(t, errors, "concurrent claiming should not produce errors")

		// Verify we claimed at most the available sessions (some workers may get nil)
		assert.LessOrEqual(t, len(claimedSessions), numSessions, "should not claim more than available")
		assert.GreaterOrEqual(t, len(claimedSessions), 1, "should claim at least one session")

		// Verify no duplicate claims - this is the critical concurrent safety test
		seenIDs := make(map[string]bool)
		for _, session := range claimedSessions {
			assert.False(t, seenIDs[session.ID], "session %s was claimed multiple times", session.ID)
			seenIDs[session.ID] = true
		}
	})
}

func TestSessionService_TouchSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("advances heartbeat", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "long running question",
		})
		require.NoError(t, err)

		stale := time.Now().Add(-time.Hour)
		err = client.QuerySession.UpdateOneID(session.ID).
			SetStatus(querysession.StatusInProgress).
			SetLastInteractionAt(stale).
			Exec(ctx)
		require.NoError(t, err)

		err = service.TouchSession(ctx, session.ID)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		require.NotNil(t, updated.LastInteractionAt)
		assert.True(t, updated.LastInteractionAt.After(stale))
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.TouchSession(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_FindOrphanedSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("finds orphaned sessions", func(t *testing.T) {
		// Create in-progress session with old interaction time
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "test",
		})
		require.NoError(t, err)

		// Set to in-progress with old timestamp
		err = client.QuerySession.UpdateOneID(session.ID).
			SetStatus(querysession.StatusInProgress).
			SetLastInteractionAt(time.Now().Add(-2 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		// Find orphaned (timeout 1 hour)
		orphaned, err := service.FindOrphanedSessions(ctx, 1*time.Hour)
		require.NoError(t, err)
		assert.Len(t, orphaned, 1)
		assert.Equal(t, session.ID, orphaned[0].ID)
	})

	t.Run("excludes recent sessions", func(t *testing.T) {
		// Create recent in-progress session
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "test",
		})
		require.NoError(t, err)

		err = client.QuerySession.UpdateOneID(session.ID).
			SetStatus(querysession.StatusInProgress).
			SetLastInteractionAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// Should not find it
		orphaned, err := service.FindOrphanedSessions(ctx, 1*time.Hour)
		require.NoError(t, err)
		for _, s := range orphaned {
			assert.NotEqual(t, session.ID, s.ID)
		}
	})
}

func TestSessionService_RequeueSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("returns orphan to pending", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "abandoned question",
		})
		require.NoError(t, err)

		err = client.QuerySession.UpdateOneID(session.ID).
			SetStatus(querysession.StatusInProgress).
			SetPodID("dead-pod").
			Exec(ctx)
		require.NoError(t, err)

		err = service.RequeueSession(ctx, session.ID)
		require.NoError(t, err)

		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Equal(t, querysession.StatusPending, updated.Status)
		assert.Nil(t, updated.PodID)
		assert.Equal(t, 1, updated.RequeueCount)

		// Another worker can now claim it
		claimed, err := service.ClaimNextPendingSession(ctx, "pod-2")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, session.ID, claimed.ID)
	})

	t.Run("requires in-progress status", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "already pending",
		})
		require.NoError(t, err)

		err = service.RequeueSession(ctx, session.ID)
		require.Error(t, err)
		assert.Equal(t, ErrConcurrentModification, err)
	})
}

func TestSessionService_SoftDeleteOldSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("soft deletes old completed sessions", func(t *testing.T) {
		// Create old completed session
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "test",
		})
		require.NoError(t, err)

		// Set completed 100 days ago
		err = client.QuerySession.UpdateOneID(session.ID).
			SetStatus(querysession.StatusCompleted).
			SetCompletedAt(time.Now().Add(-100 * 24 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		// Soft delete old sessions (90 day retention)
		count, err := service.SoftDeleteOldSessions(ctx, 90)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, count, 1)

		// Verify soft deleted
		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.NotNil(t, updated.DeletedAt)
	})

	t.Run("preserves recent sessions", func(t *testing.T) {
		// Create recent completed session
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "test",
		})
		require.NoError(t, err)

		err = client.QuerySession.UpdateOneID(session.ID).
			SetStatus(querysession.StatusCompleted).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// Soft delete old sessions
		_, err = service.SoftDeleteOldSessions(ctx, 90)
		require.NoError(t, err)

		// Should not be deleted
		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Nil(t, updated.DeletedAt)
	})

	t.Run("rejects non-positive retention", func(t *testing.T) {
		_, err := service.SoftDeleteOldSessions(ctx, 0)
		require.Error(t, err)
	})
}

func TestSessionService_RestoreSession(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("restores soft-deleted session", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "test",
		})
		require.NoError(t, err)

		// Soft delete
		err = client.QuerySession.UpdateOneID(session.ID).
			SetDeletedAt(time.Now()).
			Exec(ctx)
		require.NoError(t, err)

		// Restore
		err = service.RestoreSession(ctx, session.ID)
		require.NoError(t, err)

		// Verify restored
		updated, err := service.GetSession(ctx, session.ID, false)
		require.NoError(t, err)
		assert.Nil(t, updated.DeletedAt)
	})

	t.Run("returns ErrNotFound for missing session", func(t *testing.T) {
		err := service.RestoreSession(ctx, "nonexistent")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestSessionService_SearchSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("searches question", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "weekly revenue breakdown for enterprise accounts",
		})
		require.NoError(t, err)

		// Search for "weekly revenue" (plain text query)
		results, err := service.SearchSessions(ctx, "weekly revenue", 10)
		require.NoError(t, err)

		found := false
		for _, s := range results {
			if s.ID == session.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})

	t.Run("searches final_answer", func(t *testing.T) {
		session, err := service.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "test question",
		})
		require.NoError(t, err)

		// Add final answer
		err = client.QuerySession.UpdateOneID(session.ID).
			SetFinalAnswer("inventory shrinkage detected in the Denver warehouse").
			Exec(ctx)
		require.NoError(t, err)

		// Search (plain text query)
		results, err := service.SearchSessions(ctx, "inventory shrinkage", 10)
		require.NoError(t, err)

		found := false
		for _, s := range results {
			if s.ID == session.ID {
				found = true
				break
			}
		}
		assert.True(t, found)
	})
}
