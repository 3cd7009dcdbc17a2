package services

import (
	"context"
	"testing"

	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/config"
	testdb "github.com/querra-ai/querra/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuestionService(t *testing.T) *QuestionService {
	t.Helper()
	client := testdb.NewTestClient(t)
	defaults := &config.Defaults{PageSize: 100}
	pagination := config.DefaultPaginationConfig()
	return NewQuestionService(client.Client, defaults, pagination)
}

func TestQuestionService_SubmitQuestion(t *testing.T) {
	service := newTestQuestionService(t)
	ctx := context.Background()

	t.Run("creates pending session with generated id", func(t *testing.T) {
		seed := int64(99)
		session, err := service.SubmitQuestion(ctx, SubmitQuestionInput{
			TenantID:         42,
			Question:         "Top five products by revenue this quarter",
			SchemaSnapshotID: "snap-a",
			PageSize:         25,
			Seed:             &seed,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, session.ID)
		assert.Equal(t, int64(42), session.TenantID)
		assert.Equal(t, querysession.StatusPending, session.Status)
		require.NotNil(t, session.PageSize)
		assert.Equal(t, 25, *session.PageSize)
		require.NotNil(t, session.Seed)
		assert.Equal(t, seed, *session.Seed)
		assert.Nil(t, session.StartedAt)
	})

	t.Run("applies default page size", func(t *testing.T) {
		session, err := service.SubmitQuestion(ctx, SubmitQuestionInput{
			TenantID: 1,
			Question: "How many active users?",
		})
		require.NoError(t, err)
		require.NotNil(t, session.PageSize)
		assert.Equal(t, 100, *session.PageSize)
	})

	t.Run("stores continuation cursor", func(t *testing.T) {
		session, err := service.SubmitQuestion(ctx, SubmitQuestionInput{
			TenantID:  1,
			Question:  "How many active users?",
			PageToken: "eyJ2IjoxfQ",
		})
		require.NoError(t, err)
		require.NotNil(t, session.PageToken)
		assert.Equal(t, "eyJ2IjoxfQ", *session.PageToken)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := []struct {
			name  string
			input SubmitQuestionInput
		}{
			{
				name:  "missing question",
				input: SubmitQuestionInput{TenantID: 1},
			},
			{
				name:  "zero tenant_id",
				input: SubmitQuestionInput{Question: "q"},
			},
			{
				name:  "negative page_size",
				input: SubmitQuestionInput{TenantID: 1, Question: "q", PageSize: -5},
			},
			{
				name:  "page_size above maximum",
				input: SubmitQuestionInput{TenantID: 1, Question: "q", PageSize: 10_000},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.SubmitQuestion(ctx, tt.input)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("generates distinct ids", func(t *testing.T) {
		a, err := service.SubmitQuestion(ctx, SubmitQuestionInput{TenantID: 1, Question: "first"})
		require.NoError(t, err)
		b, err := service.SubmitQuestion(ctx, SubmitQuestionInput{TenantID: 1, Question: "second"})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})
}
