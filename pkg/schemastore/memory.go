package schemastore

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
)

// EmbedFunc turns text into a vector comparable against stored schema
// embeddings.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// StoreConfig configures an in-memory schema store.
type StoreConfig struct {
	// Embeddings are precomputed vectors keyed by node key
	// ("table:orders", "column:orders.total").
	Embeddings []Embedding
	// Embed vectorizes search queries; when nil, search falls back to
	// lexical scoring.
	Embed EmbedFunc
}

// Store is an in-memory Retriever over one schema snapshot.
type Store struct {
	snapshot   *Snapshot
	nodes      []Node
	embeddings map[string][]float32
	embed      EmbedFunc
}

var _ Retriever = (*Store)(nil)

// NewStore builds a store over a snapshot.
func NewStore(snapshot *Snapshot, cfg StoreConfig) *Store {
	s := &Store{
		snapshot:   snapshot,
		embeddings: make(map[string][]float32, len(cfg.Embeddings)),
		embed:      cfg.Embed,
	}
	for _, e := range cfg.Embeddings {
		s.embeddings[e.Key] = e.Vector
	}
	for _, name := range snapshot.Tables() {
		t, _ := snapshot.Table(name)
		s.nodes = append(s.nodes, Node{Kind: NodeTable, Name: t.Name, Description: t.Description})
		for _, c := range t.Columns {
			s.nodes = append(s.nodes, Node{
				Kind:        NodeColumn,
				Name:        strings.ToLower(c.Name),
				Table:       t.Name,
				Description: c.Description,
			})
		}
	}
	return s
}

// Snapshot returns the snapshot this store serves.
func (s *Store) Snapshot() *Snapshot { return s.snapshot }

// NodeKey is the embedding key of a node.
func NodeKey(n Node) string {
	if n.Kind == NodeColumn {
		return fmt.Sprintf("column:%s.%s", n.Table, n.Name)
	}
	return fmt.Sprintf("table:%s", n.Name)
}

// SearchNodes scores schema nodes against the query and returns the top k.
// Vector similarity applies when both a query embedder and a stored vector
// exist; lexical overlap is the fallback.
func (s *Store) SearchNodes(ctx context.Context, query string, label NodeKind, k int) ([]SearchResult, error) {
	if k <= 0 {
		return nil, nil
	}

	var queryVec []float32
	if s.embed != nil && len(s.embeddings) > 0 {
		vec, err := s.embed(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to embed search query: %w", err)
		}
		queryVec = vec
	}

	results := make([]SearchResult, 0, len(s.nodes))
	for _, n := range s.nodes {
		if label != "" && n.Kind != label {
			continue
		}
		score := 0.0
		if vec, ok := s.embeddings[NodeKey(n)]; ok && queryVec != nil {
			score = cosine(queryVec, vec)
		} else {
			score = lexicalScore(query, n)
		}
		if score > 0 {
			results = append(results, SearchResult{Node: n, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return NodeKey(results[i].Node) < NodeKey(results[j].Node)
	})
	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// GetTableDef resolves a full table definition.
func (s *Store) GetTableDef(ctx context.Context, name string) (*TableDef, error) {
	t, ok := s.snapshot.Table(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTableNotFound, strings.ToLower(name))
	}
	return t, nil
}

// FetchSchemaEmbeddings returns all stored vectors in key order.
func (s *Store) FetchSchemaEmbeddings(ctx context.Context) ([]Embedding, error) {
	keys := make([]string, 0, len(s.embeddings))
	for k := range s.embeddings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Embedding, len(keys))
	for i, k := range keys {
		out[i] = Embedding{Key: k, Vector: s.embeddings[k]}
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
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

// lexicalScore is token overlap between the query and the node's name and
// description, with a bonus for direct substring hits.
func lexicalScore(query string, n Node) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}
	text := n.Name + " " + strings.ToLower(n.Description)
	if n.Table != "" {
		text += " " + n.Table
	}

	score := 0.0
	if strings.Contains(text, q) {
		score += 0.5
	}
	tokens := strings.Fields(q)
	if len(tokens) == 0 {
		return score
	}
	hits := 0
	for _, tok := range tokens {
		if strings.Contains(text, tok) {
			hits++
		}
	}
	return score + 0.5*float64(hits)/float64(len(tokens))
}
