package llm

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/tmc/langchaingo/embeddings"
)

// Embedder produces fixed-width vectors for semantic similarity lookups.
// Implementations must embed identical text identically within one
// deployment so stored vectors stay comparable.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// LangChainEmbedder adapts a langchaingo embedding client to the Embedder
// interface, for deployments that compute vectors through a provider.
type LangChainEmbedder struct {
	client embeddings.EmbedderClient
}

var _ Embedder = (*LangChainEmbedder)(nil)

// NewLangChainEmbedder wraps an initialized langchaingo embedding client.
func NewLangChainEmbedder(client embeddings.EmbedderClient) *LangChainEmbedder {
	return &LangChainEmbedder{client: client}
}

// Embed returns the provider's vector for the text.
func (e *LangChainEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.client.CreateEmbedding(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embedding failed: %w", err)
	}
	if len(vecs) == 0 || len(vecs[0]) == 0 {
		return nil, fmt.Errorf("embedding provider returned no vector")
	}
	return vecs[0], nil
}

const stubEmbedderDim = 64

// StubEmbedder folds token hashes into a fixed-width vector. Identical text
// embeds identically and word overlap raises similarity, which is enough for
// tests and replay runs.
type StubEmbedder struct {
	// Dim is the vector width; 0 uses the default.
	Dim int
}

var _ Embedder = (*StubEmbedder)(nil)

// Embed returns a normalized bag-of-words vector for the text.
func (e *StubEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	dim := e.Dim
	if dim <= 0 {
		dim = stubEmbedderDim
	}

	vec := make([]float32, dim)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		sum := h.Sum32()
		vec[int(sum%uint32(dim))]++
		vec[int((sum>>8)%uint32(dim))] += 0.5
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec, nil
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec, nil
}

// CosineSimilarity returns the cosine of the angle between two vectors, 0
// when either is empty or the widths differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
