package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/config"
	"github.com/querra-ai/querra/pkg/models"
	"github.com/querra-ai/querra/pkg/services"
	"github.com/querra-ai/querra/pkg/workflow"
	testdb "github.com/querra-ai/querra/test/database"
)

func retentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SessionRetentionDays: 365,
		CheckpointTTL:        24 * time.Hour,
		CacheEntryTTL:        30 * 24 * time.Hour,
		CleanupInterval:      1 * time.Hour,
	}
}

func newSession(t *testing.T, svc *services.SessionService, question string) *ent.QuerySession {
	t.Helper()
	session, err := svc.CreateSession(context.Background(), models.CreateSessionRequest{
		SessionID: uuid.New().String(),
		TenantID:  7,
		Question:  question,
	})
	require.NoError(t, err)
	return session
}

func TestService_SoftDeletesOldSessions(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	ctx := context.Background()

	old := newSession(t, sessions, "How many orders shipped last quarter?")
	require.NoError(t, client.QuerySession.UpdateOneID(old.ID).
		SetStatus(querysession.StatusCompleted).
		SetCompletedAt(time.Now().Add(-400*24*time.Hour)).
		Exec(ctx))

	recent := newSession(t, sessions, "Top customers by revenue?")
	require.NoError(t, client.QuerySession.UpdateOneID(recent.ID).
		SetStatus(querysession.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	svc := NewService(retentionConfig(), sessions, nil, nil)
	svc.runAll(ctx)

	deleted, err := sessions.GetSession(ctx, old.ID, false)
	require.NoError(t, err)
	assert.NotNil(t, deleted.DeletedAt)

	kept, err := sessions.GetSession(ctx, recent.ID, false)
	require.NoError(t, err)
	assert.Nil(t, kept.DeletedAt)
}

func TestService_PrunesExpiredCheckpoints(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	checkpointer := workflow.NewEntCheckpointer(client.Client)
	ctx := context.Background()

	// A finished session whose checkpoint outlived the per-session delete.
	finished := newSession(t, sessions, "Revenue by region?")
	require.NoError(t, checkpointer.Save(ctx, finished.ID, &workflow.State{Question: "Revenue by region?", TenantID: 7}, workflow.NodeExecute))
	require.NoError(t, client.QuerySession.UpdateOneID(finished.ID).
		SetStatus(querysession.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	// A session still waiting on a clarification answer.
	waiting := newSession(t, sessions, "Orders for the big account?")
	require.NoError(t, checkpointer.Save(ctx, waiting.ID, &workflow.State{Question: "Orders for the big account?", TenantID: 7}, workflow.NodeClarify))
	require.NoError(t, sessions.AwaitClarification(ctx, waiting.ID, "Which account do you mean?"))

	// Age both checkpoints past the TTL.
	_, err := client.Checkpoint.Update().
		SetUpdatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessions, nil, checkpointer)
	svc.runAll(ctx)

	remaining, err := client.Checkpoint.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1, "only the waiting session's checkpoint survives")
	assert.Equal(t, waiting.ID, remaining[0].ThreadID)
}

func TestService_DropsStaleCacheEntries(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)
	cache := services.NewCacheService(client.Client, nil, services.CacheOptions{})
	ctx := context.Background()

	_, err := client.CacheEntry.Create().
		SetID(uuid.New().String()).
		SetTenantID(7).
		SetUserQuery("how many orders shipped last week").
		SetGeneratedSQL("SELECT count(*) FROM orders").
		SetSchemaVersion("snap-1").
		SetCreatedAt(time.Now().Add(-60 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.CacheEntry.Create().
		SetID(uuid.New().String()).
		SetTenantID(7).
		SetUserQuery("top customers by revenue").
		SetGeneratedSQL("SELECT customer_id FROM orders GROUP BY customer_id").
		SetSchemaVersion("snap-1").
		Save(ctx)
	require.NoError(t, err)

	svc := NewService(retentionConfig(), sessions, cache, nil)
	svc.runAll(ctx)

	remaining, err := client.CacheEntry.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "top customers by revenue", remaining[0].UserQuery)
}

func TestService_StartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	sessions := services.NewSessionService(client.Client)

	svc := NewService(retentionConfig(), sessions, nil, nil)
	svc.Start(context.Background())
	svc.Stop()
}

// The ent checkpointer is what the retention loop prunes through.
var _ CheckpointPruner = (*workflow.EntCheckpointer)(nil)
