package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/cacheentry"
	"github.com/querra-ai/querra/pkg/engine"
	"github.com/querra-ai/querra/pkg/llm"
	"github.com/querra-ai/querra/pkg/workflow"
)

const (
	// DefaultCacheSimilarity is the cosine floor for serving a semantically
	// cached statement.
	DefaultCacheSimilarity = 0.92
	// defaultCandidateScan bounds how many recent entries are scored per
	// semantic lookup.
	defaultCandidateScan = 200
)

// CacheOptions configures cache lookup behavior.
type CacheOptions struct {
	// SimilarityThreshold is the cosine floor for semantic hits; 0 uses
	// DefaultCacheSimilarity.
	SimilarityThreshold float64
	// CandidateScan bounds how many recent entries are scored per semantic
	// lookup; 0 uses the default.
	CandidateScan int
}

// CacheService is the semantic question cache: exact lookup by normalized
// question, then embedding similarity over recent entries, and write-through
// on first-time success. It backs both the workflow's cache_lookup node and
// the engine's write-through stage.
type CacheService struct {
	client   *ent.Client
	embedder llm.Embedder
	opts     CacheOptions
}

var (
	_ workflow.CacheLookup = (*CacheService)(nil)
	_ engine.CacheWriter   = (*CacheService)(nil)
)

// NewCacheService creates a new CacheService. A nil embedder disables the
// semantic path; lookups then only match the normalized question exactly.
func NewCacheService(client *ent.Client, embedder llm.Embedder, opts CacheOptions) *CacheService {
	if opts.SimilarityThreshold <= 0 {
		opts.SimilarityThreshold = DefaultCacheSimilarity
	}
	if opts.CandidateScan <= 0 {
		opts.CandidateScan = defaultCandidateScan
	}
	return &CacheService{client: client, embedder: embedder, opts: opts}
}

// NormalizeQuestion folds case, whitespace, and trailing punctuation so
// trivially restated questions share a cache key.
func NormalizeQuestion(q string) string {
	q = strings.ToLower(strings.TrimSpace(q))
	q = strings.TrimRight(q, "?.! ")
	return strings.Join(strings.Fields(q), " ")
}

// Lookup resolves a question to previously generated SQL. Nil result means
// miss. An exact match on the normalized question wins; otherwise recent
// entries are scored by embedding similarity against the threshold.
func (s *CacheService) Lookup(ctx context.Context, tenantID int64, question string) (*workflow.CachedQuery, error) {
	normalized := NormalizeQuestion(question)
	if normalized == "" {
		return nil, nil
	}

	entry, err := s.client.CacheEntry.Query().
		Where(
			cacheentry.TenantIDEQ(tenantID),
			cacheentry.UserQueryEQ(normalized),
		).
		Order(ent.Desc(cacheentry.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return &workflow.CachedQuery{
			SQL:           entry.GeneratedSQL,
			SchemaVersion: entry.SchemaVersion,
			CacheType:     string(cacheentry.CacheTypeExact),
		}, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	if s.embedder == nil {
		return nil, nil
	}
	return s.semanticLookup(ctx, tenantID, normalized)
}

func (s *CacheService) semanticLookup(ctx context.Context, tenantID int64, normalized string) (*workflow.CachedQuery, error) {
	vec, err := s.embedder.Embed(ctx, normalized)
	if err != nil {
		// A failing embedder degrades the cache to exact-only.
		slog.Warn("Cache embedding failed, treating as miss", "error", err)
		return nil, nil
	}

	candidates, err := s.client.CacheEntry.Query().
		Where(
			cacheentry.TenantIDEQ(tenantID),
			cacheentry.QueryEmbeddingNotNil(),
		).
		Order(ent.Desc(cacheentry.FieldCreatedAt)).
		Limit(s.opts.CandidateScan).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan cache candidates: %w", err)
	}

	var (
		best      *ent.CacheEntry
		bestScore float64
	)
	for _, c := range candidates {
		if score := llm.CosineSimilarity(vec, c.QueryEmbedding); score > bestScore {
			best, bestScore = c, score
		}
	}
	if best == nil || bestScore < s.opts.SimilarityThreshold {
		return nil, nil
	}

	return &workflow.CachedQuery{
		SQL:           best.GeneratedSQL,
		SchemaVersion: best.SchemaVersion,
		CacheType:     string(cacheentry.CacheTypeSemantic),
	}, nil
}

// UpdateCache records first-time-successful SQL for the question. Writes are
// first-writer-wins: a concurrent duplicate is dropped, not an error.
func (s *CacheService) UpdateCache(httpCtx context.Context, tenantID int64, question, sqlText, schemaVersion string) error {
	normalized := NormalizeQuestion(question)
	if normalized == "" || sqlText == "" {
		return nil
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.CacheEntry.Create().
		SetID(uuid.New().String()).
		SetTenantID(tenantID).
		SetUserQuery(normalized).
		SetGeneratedSQL(sqlText).
		SetSchemaVersion(schemaVersion).
		SetCacheType(cacheentry.CacheTypeExact)

	if s.embedder != nil {
		if vec, err := s.embedder.Embed(ctx, normalized); err != nil {
			slog.Warn("Cache embedding failed, storing entry without vector", "error", err)
		} else {
			builder.SetQueryEmbedding(vec)
		}
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to write cache entry: %w", err)
	}

	return nil
}

// PruneStale drops cache entries older than ttl regardless of hit history.
// Returns the number of entries removed.
func (s *CacheService) PruneStale(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}
	cutoff := time.Now().Add(-ttl)
	n, err := s.client.CacheEntry.Delete().
		Where(cacheentry.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune cache entries: %w", err)
	}
	return n, nil
}
