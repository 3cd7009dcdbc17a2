package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/pkg/models"
	"github.com/querra-ai/querra/pkg/workflow"
	testdb "github.com/querra-ai/querra/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInteractionService_CreateInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	t.Run("creates pre-run audit row", func(t *testing.T) {
		traceID := uuid.New().String()
		err := service.CreateInteraction(ctx, &workflow.InteractionRecord{
			TraceID:  traceID,
			TenantID: 3,
			Question: "how many signups yesterday",
		})
		require.NoError(t, err)

		rec, err := service.GetInteractionByTrace(ctx, traceID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), rec.TenantID)
		assert.Equal(t, "how many signups yesterday", rec.Question)
		assert.Equal(t, interaction.ExecutionStatusRunning, rec.ExecutionStatus)
		assert.Nil(t, rec.GeneratedSQL)
		assert.Nil(t, rec.SessionID)
	})

	t.Run("duplicate trace id resolves to one row", func(t *testing.T) {
		traceID := uuid.New().String()
		rec := &workflow.InteractionRecord{
			TraceID:  traceID,
			TenantID: 1,
			Question: "retried question",
		}

		require.NoError(t, service.CreateInteraction(ctx, rec))
		// Retried create after a partial failure must not error
		require.NoError(t, service.CreateInteraction(ctx, rec))

		count, err := client.Interaction.Query().
			Where(interaction.TraceIDEQ(traceID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("links to session when provided", func(t *testing.T) {
		sessionService := NewSessionService(client.Client)
		session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "linked question",
		})
		require.NoError(t, err)

		traceID := uuid.New().String()
		err = service.CreateInteraction(ctx, &workflow.InteractionRecord{
			TraceID:   traceID,
			SessionID: session.ID,
			TenantID:  1,
			Question:  "linked question",
		})
		require.NoError(t, err)

		rec, err := service.GetInteractionByTrace(ctx, traceID)
		require.NoError(t, err)
		require.NotNil(t, rec.SessionID)
		assert.Equal(t, session.ID, *rec.SessionID)
	})

	t.Run("requires trace_id", func(t *testing.T) {
		err := service.CreateInteraction(ctx, &workflow.InteractionRecord{
			TenantID: 1,
			Question: "no trace",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestInteractionService_UpdateInteraction(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInteractionService(client.Client)
	ctx := context.Background()

	t.Run("applies post-run fields", func(t *testing.T) {
		traceID := uuid.New().String()
		require.NoError(t, service.CreateInteraction(ctx, &workflow.InteractionRecord{
			TraceID:  traceID,
			TenantID: 1,
			Question: "top products by revenue",
		}))

		err := service.UpdateInteraction(ctx, &workflow.InteractionRecord{
			TraceID:         traceID,
			ExecutionStatus: "completed",
			GeneratedSQL:    "SELECT product, SUM(amount) FROM sales WHERE tenant_id = 1 GROUP BY product",
			ResponsePayload: map[string]any{"rows_returned": 5},
			TablesUsed:      []string{"sales"},
		})
		require.NoError(t, err)

		rec, err := service.GetInteractionByTrace(ctx, traceID)
		require.NoError(t, err)
		assert.Equal(t, interaction.ExecutionStatusCompleted, rec.ExecutionStatus)
		require.NotNil(t, rec.GeneratedSQL)
		assert.Contains(t, *rec.GeneratedSQL, "GROUP BY product")
		assert.Equal(t, []string{"sales"}, rec.TablesUsed)
		assert.Equal(t, float64(5), rec.ResponsePayload["rows_returned"])
	})

	t.Run("records failure taxonomy", func(t *testing.T) {
		traceID := uuid.New().String()
		require.NoError(t, service.CreateInteraction(ctx, &workflow.InteractionRecord{
			TraceID:  traceID,
			TenantID: 1,
			Question: "doomed question",
		}))

		err := service.UpdateInteraction(ctx, &workflow.InteractionRecord{
			TraceID:         traceID,
			ExecutionStatus: "failed",
			ErrorType:       "execution_error",
		})
		require.NoError(t, err)

		rec, err := service.GetInteractionByTrace(ctx, traceID)
		require.NoError(t, err)
		assert.Equal(t, interaction.ExecutionStatusFailed, rec.ExecutionStatus)
		require.NotNil(t, rec.ErrorType)
		assert.Equal(t, "execution_error", *rec.ErrorType)
	})

	t.Run("returns ErrNotFound for unknown trace", func(t *testing.T) {
		err := service.UpdateInteraction(ctx, &workflow.InteractionRecord{
			TraceID:         uuid.New().String(),
			ExecutionStatus: "completed",
		})
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)
	})
}

func TestInteractionService_ListInteractions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewInteractionService(client.Client)
	sessionService := NewSessionService(client.Client)
	ctx := context.Background()

	t.Run("returns session rows in creation order", func(t *testing.T) {
		session, err := sessionService.CreateSession(ctx, models.CreateSessionRequest{
			SessionID: uuid.New().String(),
			TenantID:  1,
			Question:  "multi attempt question",
		})
		require.NoError(t, err)

		traces := []string{uuid.New().String(), uuid.New().String()}
		for _, traceID := range traces {
			require.NoError(t, service.CreateInteraction(ctx, &workflow.InteractionRecord{
				TraceID:   traceID,
				SessionID: session.ID,
				TenantID:  1,
				Question:  "multi attempt question",
			}))
		}

		// A row for another session must not leak in
		require.NoError(t, service.CreateInteraction(ctx, &workflow.InteractionRecord{
			TraceID:  uuid.New().String(),
			TenantID: 1,
			Question: "unrelated",
		}))

		recs, err := service.ListInteractions(ctx, session.ID)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, traces[0], recs[0].TraceID)
		assert.Equal(t, traces[1], recs[1].TraceID)
	})

	t.Run("returns empty for unknown session", func(t *testing.T) {
		recs, err := service.ListInteractions(ctx, "no-such-session")
		require.NoError(t, err)
		assert.Empty(t, recs)
	})
}
