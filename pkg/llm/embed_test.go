package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubEmbedderDeterministic(t *testing.T) {
	e := &StubEmbedder{}
	ctx := context.Background()

	a, err := e.Embed(ctx, "show total revenue by month")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "show total revenue by month")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-9)
}

func TestStubEmbedderWordOverlap(t *testing.T) {
	e := &StubEmbedder{}
	ctx := context.Background()

	base, err := e.Embed(ctx, "total revenue by month")
	require.NoError(t, err)
	permuted, err := e.Embed(ctx, "by month total revenue")
	require.NoError(t, err)
	unrelated, err := e.Embed(ctx, "active user count")
	require.NoError(t, err)

	// Word order does not change a bag-of-words vector.
	assert.InDelta(t, 1.0, CosineSimilarity(base, permuted), 1e-9)
	assert.Less(t, CosineSimilarity(base, unrelated), 0.5)
}

func TestStubEmbedderEmptyText(t *testing.T) {
	e := &StubEmbedder{Dim: 8}

	vec, err := e.Embed(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, vec, 8)
	assert.Equal(t, 0.0, CosineSimilarity(vec, vec))
}

func TestCosineSimilarity(t *testing.T) {
	t.Run("identical vectors", func(t *testing.T) {
		v := []float32{1, 2, 3}
		assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
	})

	t.Run("orthogonal vectors", func(t *testing.T) {
		assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
	})

	t.Run("mismatched widths", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{1, 0, 0}))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
	})
}
