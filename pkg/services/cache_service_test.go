package services

import (
	"context"
	"testing"

	"github.com/querra-ai/querra/ent/cacheentry"
	"github.com/querra-ai/querra/pkg/llm"
	testdb "github.com/querra-ai/querra/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuestion(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "folds case",
			in:   "How Many Users Signed Up",
			want: "how many users signed up",
		},
		{
			name: "strips trailing punctuation",
			in:   "how many users signed up?!",
			want: "how many users signed up",
		},
		{
			name: "collapses whitespace",
			in:   "  how   many\tusers ",
			want: "how many users",
		},
		{
			name: "empty input",
			in:   "   ",
			want: "",
		},
		{
			name: "keeps interior punctuation",
			in:   "what is SKU-42's price?",
			want: "what is sku-42's price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeQuestion(tt.in))
		})
	}
}

func TestCacheService_Lookup(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCacheService(client.Client, &llm.StubEmbedder{}, CacheOptions{})
	ctx := context.Background()

	t.Run("exact hit over restated punctuation", func(t *testing.T) {
		err := service.UpdateCache(ctx, 1,
			"How many users signed up last week?",
			"SELECT COUNT(*) FROM users WHERE tenant_id = 1 AND created_at > now() - interval '7 days'",
			"v1")
		require.NoError(t, err)

		hit, err := service.Lookup(ctx, 1, "how many users signed up last week!")
		require.NoError(t, err)
		require.NotNil(t, hit)
		assert.Contains(t, hit.SQL, "COUNT(*)")
		assert.Equal(t, "v1", hit.SchemaVersion)
		assert.Equal(t, string(cacheentry.CacheTypeExact), hit.CacheType)
	})

	t.Run("semantic hit on restated question", func(t *testing.T) {
		err := service.UpdateCache(ctx, 1,
			"total revenue for august by region",
			"SELECT region, SUM(amount) FROM orders WHERE tenant_id = 1 GROUP BY region",
			"v1")
		require.NoError(t, err)

		// Different word order misses the exact key but embeds identically
		hit, err := service.Lookup(ctx, 1, "by region total revenue for august")
		require.NoError(t, err)
		require.NotNil(t, hit)
		assert.Contains(t, hit.SQL, "GROUP BY region")
		assert.Equal(t, string(cacheentry.CacheTypeSemantic), hit.CacheType)
	})

	t.Run("misses below similarity threshold", func(t *testing.T) {
		hit, err := service.Lookup(ctx, 1, "active subscription churn forecast")
		require.NoError(t, err)
		assert.Nil(t, hit)
	})

	t.Run("entries are tenant scoped", func(t *testing.T) {
		hit, err := service.Lookup(ctx, 2, "how many users signed up last week")
		require.NoError(t, err)
		assert.Nil(t, hit)
	})

	t.Run("empty question is a miss", func(t *testing.T) {
		hit, err := service.Lookup(ctx, 1, "  ??")
		require.NoError(t, err)
		assert.Nil(t, hit)
	})
}

func TestCacheService_ExactOnlyWithoutEmbedder(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCacheService(client.Client, nil, CacheOptions{})
	ctx := context.Background()

	err := service.UpdateCache(ctx, 1,
		"orders shipped this month",
		"SELECT COUNT(*) FROM shipments WHERE tenant_id = 1",
		"v1")
	require.NoError(t, err)

	// Exact match still works
	hit, err := service.Lookup(ctx, 1, "Orders shipped this month?")
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, string(cacheentry.CacheTypeExact), hit.CacheType)

	// Restated question has no semantic path to fall back to
	hit, err = service.Lookup(ctx, 1, "this month orders shipped")
	require.NoError(t, err)
	assert.Nil(t, hit)
}

func TestCacheService_UpdateCache(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCacheService(client.Client, &llm.StubEmbedder{}, CacheOptions{})
	ctx := context.Background()

	t.Run("first writer wins on duplicate key", func(t *testing.T) {
		require.NoError(t, service.UpdateCache(ctx, 1,
			"daily active users", "SELECT 1", "v1"))
		// Concurrent duplicate is dropped, not an error
		require.NoError(t, service.UpdateCache(ctx, 1,
			"daily active users", "SELECT 2", "v1"))

		entries, err := client.CacheEntry.Query().
			Where(
				cacheentry.TenantIDEQ(1),
				cacheentry.UserQueryEQ("daily active users"),
			).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "SELECT 1", entries[0].GeneratedSQL)
		assert.NotEmpty(t, entries[0].QueryEmbedding)
	})

	t.Run("distinct schema versions keep separate entries", func(t *testing.T) {
		require.NoError(t, service.UpdateCache(ctx, 1,
			"weekly active users", "SELECT 1", "v1"))
		require.NoError(t, service.UpdateCache(ctx, 1,
			"weekly active users", "SELECT 1", "v2"))

		count, err := client.CacheEntry.Query().
			Where(
				cacheentry.TenantIDEQ(1),
				cacheentry.UserQueryEQ("weekly active users"),
			).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("skips empty question or sql", func(t *testing.T) {
		require.NoError(t, service.UpdateCache(ctx, 3, "  ", "SELECT 1", "v1"))
		require.NoError(t, service.UpdateCache(ctx, 3, "some question", "", "v1"))

		count, err := client.CacheEntry.Query().
			Where(cacheentry.TenantIDEQ(3)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
