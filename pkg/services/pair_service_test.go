package services

import (
	"context"
	"testing"

	"github.com/querra-ai/querra/ent/querypair"
	"github.com/querra-ai/querra/pkg/llm"
	"github.com/querra-ai/querra/pkg/models"
	"github.com/querra-ai/querra/pkg/registry"
	testdb "github.com/querra-ai/querra/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairService_UpsertPair(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPairService(client.Client, &llm.StubEmbedder{})
	ctx := context.Background()

	t.Run("creates pair with defaults", func(t *testing.T) {
		pair, err := service.UpsertPair(ctx, models.UpsertPairRequest{
			SignatureKey: "sig-revenue-region",
			TenantID:     1,
			Question:     "monthly revenue by region",
			SQL:          "SELECT region, SUM(amount) FROM orders GROUP BY region",
		})
		require.NoError(t, err)
		assert.Equal(t, "sig-revenue-region", pair.SignatureKey)
		assert.Equal(t, querypair.StatusSeeded, pair.Status)
		assert.Equal(t, []string{string(registry.RoleExample)}, pair.Roles)
		assert.NotEmpty(t, pair.Embedding)
	})

	t.Run("updates existing pair in place", func(t *testing.T) {
		req := models.UpsertPairRequest{
			SignatureKey: "sig-update-me",
			TenantID:     1,
			Question:     "count of active users",
			SQL:          "SELECT COUNT(*) FROM users",
		}
		first, err := service.UpsertPair(ctx, req)
		require.NoError(t, err)

		req.SQL = "SELECT COUNT(*) FROM users WHERE active"
		req.Status = string(querypair.StatusVerified)
		second, err := service.UpsertPair(ctx, req)
		require.NoError(t, err)

		// Same row, refreshed content
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "SELECT COUNT(*) FROM users WHERE active", second.SQLQuery)
		assert.Equal(t, querypair.StatusVerified, second.Status)

		count, err := client.QueryPair.Query().
			Where(
				querypair.SignatureKeyEQ("sig-update-me"),
				querypair.TenantIDEQ(1),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same signature is distinct per tenant", func(t *testing.T) {
		for _, tenantID := range []int64{10, 11} {
			_, err := service.UpsertPair(ctx, models.UpsertPairRequest{
				SignatureKey: "sig-shared",
				TenantID:     tenantID,
				Question:     "orders per day",
				SQL:          "SELECT COUNT(*) FROM orders",
			})
			require.NoError(t, err)
		}

		count, err := client.QueryPair.Query().
			Where(querypair.SignatureKeyEQ("sig-shared")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			req  models.UpsertPairRequest
		}{
			{
				name: "missing signature_key",
				req:  models.UpsertPairRequest{TenantID: 1, Question: "q", SQL: "SELECT 1"},
			},
			{
				name: "zero tenant_id",
				req:  models.UpsertPairRequest{SignatureKey: "s", Question: "q", SQL: "SELECT 1"},
			},
			{
				name: "missing question",
				req:  models.UpsertPairRequest{SignatureKey: "s", TenantID: 1, SQL: "SELECT 1"},
			},
			{
				name: "missing sql",
				req:  models.UpsertPairRequest{SignatureKey: "s", TenantID: 1, Question: "q"},
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.UpsertPair(ctx, tt.req)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := service.UpsertPair(ctx, models.UpsertPairRequest{
			SignatureKey: "sig-bad-status",
			TenantID:     1,
			Question:     "q",
			SQL:          "SELECT 1",
			Status:       "retired",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestPairService_StatusTransitions(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPairService(client.Client, nil)
	ctx := context.Background()

	seed := func(t *testing.T, sig string) {
		t.Helper()
		_, err := service.UpsertPair(ctx, models.UpsertPairRequest{
			SignatureKey: sig,
			TenantID:     1,
			Question:     "question for " + sig,
			SQL:          "SELECT 1",
		})
		require.NoError(t, err)
	}

	t.Run("verify promotes seeded pair", func(t *testing.T) {
		seed(t, "sig-promote")

		err := service.VerifyPair(ctx, 1, "sig-promote")
		require.NoError(t, err)

		pair, err := client.QueryPair.Query().
			Where(querypair.SignatureKeyEQ("sig-promote")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, querypair.StatusVerified, pair.Status)
	})

	t.Run("tombstone retires pair without deleting the row", func(t *testing.T) {
		seed(t, "sig-retire")

		err := service.TombstonePair(ctx, 1, "sig-retire")
		require.NoError(t, err)

		pair, err := client.QueryPair.Query().
			Where(querypair.SignatureKeyEQ("sig-retire")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, querypair.StatusTombstoned, pair.Status)
	})

	t.Run("verify does not resurrect tombstoned pair", func(t *testing.T) {
		seed(t, "sig-stay-dead")
		require.NoError(t, service.TombstonePair(ctx, 1, "sig-stay-dead"))

		err := service.VerifyPair(ctx, 1, "sig-stay-dead")
		require.Error(t, err)
		assert.Equal(t, ErrNotFound, err)

		pair, err := client.QueryPair.Query().
			Where(querypair.SignatureKeyEQ("sig-stay-dead")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, querypair.StatusTombstoned, pair.Status)
	})

	t.Run("transitions on missing pair return ErrNotFound", func(t *testing.T) {
		assert.Equal(t, ErrNotFound, service.VerifyPair(ctx, 1, "no-such-sig"))
		assert.Equal(t, ErrNotFound, service.TombstonePair(ctx, 1, "no-such-sig"))
	})
}

func TestPairService_ListPairs(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPairService(client.Client, nil)
	ctx := context.Background()

	// Seed: two examples and one interaction for tenant 1, one pair for tenant 2
	_, err := service.UpsertPair(ctx, models.UpsertPairRequest{
		SignatureKey: "sig-a",
		TenantID:     1,
		Question:     "question a",
		SQL:          "SELECT 1",
		Status:       string(querypair.StatusVerified),
	})
	require.NoError(t, err)
	_, err = service.UpsertPair(ctx, models.UpsertPairRequest{
		SignatureKey: "sig-b",
		TenantID:     1,
		Question:     "question b",
		SQL:          "SELECT 2",
	})
	require.NoError(t, err)
	_, err = service.UpsertPair(ctx, models.UpsertPairRequest{
		SignatureKey: "sig-c",
		TenantID:     1,
		Question:     "question c",
		SQL:          "SELECT 3",
		Roles:        []string{string(registry.RoleInteraction)},
	})
	require.NoError(t, err)
	_, err = service.UpsertPair(ctx, models.UpsertPairRequest{
		SignatureKey: "sig-d",
		TenantID:     2,
		Question:     "question d",
		SQL:          "SELECT 4",
	})
	require.NoError(t, err)

	t.Run("filters by tenant", func(t *testing.T) {
		tenantID := int64(1)
		result, err := service.ListPairs(ctx, models.PairFilters{TenantID: &tenantID})
		require.NoError(t, err)
		assert.Equal(t, 3, result.TotalCount)
		assert.Len(t, result.Pairs, 3)
	})

	t.Run("filters by status", func(t *testing.T) {
		tenantID := int64(1)
		result, err := service.ListPairs(ctx, models.PairFilters{
			TenantID: &tenantID,
			Status:   string(querypair.StatusVerified),
		})
		require.NoError(t, err)
		require.Len(t, result.Pairs, 1)
		assert.Equal(t, "sig-a", result.Pairs[0].SignatureKey)
	})

	t.Run("filters by role", func(t *testing.T) {
		tenantID := int64(1)
		result, err := service.ListPairs(ctx, models.PairFilters{
			TenantID: &tenantID,
			Role:     string(registry.RoleInteraction),
		})
		require.NoError(t, err)
		require.Len(t, result.Pairs, 1)
		assert.Equal(t, "sig-c", result.Pairs[0].SignatureKey)
	})

	t.Run("applies pagination", func(t *testing.T) {
		tenantID := int64(1)
		result, err := service.ListPairs(ctx, models.PairFilters{
			TenantID: &tenantID,
			Limit:    2,
		})
		require.NoError(t, err)
		assert.Len(t, result.Pairs, 2)
		assert.Equal(t, 3, result.TotalCount)
	})
}

func TestPairService_GetBySignature(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPairService(client.Client, nil)
	ctx := context.Background()

	t.Run("returns stored example", func(t *testing.T) {
		_, err := service.UpsertPair(ctx, models.UpsertPairRequest{
			SignatureKey: "sig-lookup",
			TenantID:     1,
			Question:     "orders by status",
			SQL:          "SELECT status, COUNT(*) FROM orders GROUP BY status",
			Metadata:     map[string]any{"canonical_group_id": "grp-orders"},
		})
		require.NoError(t, err)

		ex, err := service.GetBySignature(ctx, 1, "sig-lookup")
		require.NoError(t, err)
		require.NotNil(t, ex)
		assert.Equal(t, "orders by status", ex.Question)
		assert.Equal(t, registry.StatusSeeded, ex.Status)
		assert.Equal(t, "grp-orders", ex.CanonicalGroupID)
		assert.True(t, ex.HasRole(registry.RoleExample))
	})

	t.Run("returns nil for missing signature", func(t *testing.T) {
		ex, err := service.GetBySignature(ctx, 1, "no-such-sig")
		require.NoError(t, err)
		assert.Nil(t, ex)
	})
}

func TestPairService_SemanticSearch(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewPairService(client.Client, &llm.StubEmbedder{})
	ctx := context.Background()

	upsert := func(t *testing.T, sig, question, sqlText, status string, roles []string) {
		t.Helper()
		_, err := service.UpsertPair(ctx, models.UpsertPairRequest{
			SignatureKey: sig,
			TenantID:     1,
			Question:     question,
			SQL:          sqlText,
			Status:       status,
			Roles:        roles,
		})
		require.NoError(t, err)
	}

	upsert(t, "sig-revenue", "total revenue for august by region",
		"SELECT region, SUM(amount) FROM orders GROUP BY region",
		string(querypair.StatusVerified), nil)
	upsert(t, "sig-store", "weekly revenue by store",
		"SELECT store, SUM(amount) FROM orders GROUP BY store",
		string(querypair.StatusSeeded), nil)
	upsert(t, "sig-refunds", "refund totals for august by region",
		"SELECT region, SUM(refund) FROM refunds GROUP BY region",
		string(querypair.StatusSeeded), []string{string(registry.RoleInteraction)})

	t.Run("ranks restated question first", func(t *testing.T) {
		candidates, err := service.SemanticSearch(ctx, registry.SearchQuery{
			TenantID: 1,
			Question: "by region total revenue for august",
			Role:     registry.RoleExample,
			Statuses: []registry.Status{registry.StatusVerified, registry.StatusSeeded},
			Limit:    5,
		})
		require.NoError(t, err)
		require.NotEmpty(t, candidates)
		assert.Equal(t, "sig-revenue", candidates[0].Example.SignatureKey)
		assert.InDelta(t, 1.0, candidates[0].Score, 1e-9)
	})

	t.Run("filters by status", func(t *testing.T) {
		candidates, err := service.SemanticSearch(ctx, registry.SearchQuery{
			TenantID: 1,
			Question: "total revenue",
			Role:     registry.RoleExample,
			Statuses: []registry.Status{registry.StatusVerified},
			Limit:    5,
		})
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, registry.StatusVerified, candidates[0].Example.Status)
	})

	t.Run("filters by role", func(t *testing.T) {
		candidates, err := service.SemanticSearch(ctx, registry.SearchQuery{
			TenantID: 1,
			Question: "refund totals for august by region",
			Role:     registry.RoleInteraction,
			Limit:    5,
		})
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "sig-refunds", candidates[0].Example.SignatureKey)
	})

	t.Run("min score drops weak candidates", func(t *testing.T) {
		candidates, err := service.SemanticSearch(ctx, registry.SearchQuery{
			TenantID: 1,
			Question: "total revenue for august by region",
			Role:     registry.RoleExample,
			Limit:    5,
			MinScore: 0.99,
		})
		require.NoError(t, err)
		require.Len(t, candidates, 1)
		assert.Equal(t, "sig-revenue", candidates[0].Example.SignatureKey)
	})

	t.Run("respects limit", func(t *testing.T) {
		candidates, err := service.SemanticSearch(ctx, registry.SearchQuery{
			TenantID: 1,
			Question: "revenue by region",
			Limit:    1,
		})
		require.NoError(t, err)
		assert.Len(t, candidates, 1)
	})

	t.Run("unknown tenant finds nothing", func(t *testing.T) {
		candidates, err := service.SemanticSearch(ctx, registry.SearchQuery{
			TenantID: 99,
			Question: "total revenue for august by region",
			Limit:    5,
		})
		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}

// TestFewShotService_Examples runs the recommender end to end over the real
// store: upserted pairs come back as ranked few-shot examples.
func TestFewShotService_Examples(t *testing.T) {
	client := testdb.NewTestClient(t)
	store := NewPairService(client.Client, &llm.StubEmbedder{})
	recommender := registry.New(store, registry.DefaultOptions())
	service := NewFewShotService(recommender)
	ctx := context.Background()

	_, err := store.UpsertPair(ctx, models.UpsertPairRequest{
		SignatureKey: "sig-verified",
		TenantID:     5,
		Question:     "monthly revenue by region",
		SQL:          "SELECT region, SUM(amount) FROM orders GROUP BY region",
		Status:       string(querypair.StatusVerified),
	})
	require.NoError(t, err)
	_, err = store.UpsertPair(ctx, models.UpsertPairRequest{
		SignatureKey: "sig-seeded",
		TenantID:     5,
		Question:     "weekly revenue by region",
		SQL:          "SELECT region, date_trunc('week', created_at) AS week, SUM(amount) FROM orders GROUP BY region, week",
	})
	require.NoError(t, err)

	examples, err := service.Examples(ctx, 5, "revenue by region monthly", 2)
	require.NoError(t, err)
	require.Len(t, examples, 2)

	// Verified floor fills first
	assert.Equal(t, "monthly revenue by region", examples[0].Question)
	assert.Equal(t, registry.SourceVerified, examples[0].Source)
	assert.Contains(t, examples[0].SQL, "GROUP BY region")

	assert.Equal(t, registry.SourceSeeded, examples[1].Source)
}
