package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querypair"
	"github.com/querra-ai/querra/pkg/llm"
	"github.com/querra-ai/querra/pkg/models"
	"github.com/querra-ai/querra/pkg/registry"
)

// maxSemanticScan bounds how many pairs are scored per semantic search.
const maxSemanticScan = 500

// PairService manages the example registry: curated and learned
// (question, SQL) pairs with lifecycle status. It backs the recommender as
// its example store, ranking candidates by embedding similarity.
type PairService struct {
	client   *ent.Client
	embedder llm.Embedder
}

var _ registry.ExampleStore = (*PairService)(nil)

// NewPairService creates a new PairService. A nil embedder degrades ranking
// to lexical word overlap.
func NewPairService(client *ent.Client, embedder llm.Embedder) *PairService {
	return &PairService{client: client, embedder: embedder}
}

// UpsertPair creates or refreshes a registry pair keyed by
// (signature_key, tenant_id)
func (s *PairService) UpsertPair(httpCtx context.Context, req models.UpsertPairRequest) (*ent.QueryPair, error) {
	if req.SignatureKey == "" {
		return nil, NewValidationError("signature_key", "required")
	}
	if req.TenantID <= 0 {
		return nil, NewValidationError("tenant_id", "must be positive")
	}
	if req.Question == "" {
		return nil, NewValidationError("question", "required")
	}
	if req.SQL == "" {
		return nil, NewValidationError("sql_query", "required")
	}

	status := querypair.StatusSeeded
	if req.Status != "" {
		status = querypair.Status(req.Status)
		if err := querypair.StatusValidator(status); err != nil {
			return nil, NewValidationError("status", err.Error())
		}
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{string(registry.RoleExample)}
	}

	embedding := req.Embedding
	if embedding == nil && s.embedder != nil {
		vec, err := s.embedder.Embed(httpCtx, req.Question)
		if err != nil {
			slog.Warn("Pair embedding failed, storing without vector",
				"signature_key", req.SignatureKey, "error", err)
		} else {
			embedding = vec
		}
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	update := tx.QueryPair.Update().
		Where(
			querypair.SignatureKeyEQ(req.SignatureKey),
			querypair.TenantIDEQ(req.TenantID),
		).
		SetQuestion(req.Question).
		SetSQLQuery(req.SQL).
		SetRoles(roles).
		SetStatus(status)
	if embedding != nil {
		update.SetEmbedding(embedding)
	}
	if req.Metadata != nil {
		update.SetMetadata(req.Metadata)
	}
	if req.Performance != nil {
		update.SetPerformance(req.Performance)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update pair: %w", err)
	}
	if n == 0 {
		create := tx.QueryPair.Create().
			SetID(uuid.New().String()).
			SetSignatureKey(req.SignatureKey).
			SetTenantID(req.TenantID).
			SetQuestion(req.Question).
			SetSQLQuery(req.SQL).
			SetRoles(roles).
			SetStatus(status)
		if embedding != nil {
			create.SetEmbedding(embedding)
		}
		if req.Metadata != nil {
			create.SetMetadata(req.Metadata)
		}
		if req.Performance != nil {
			create.SetPerformance(req.Performance)
		}
		if err := create.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to create pair: %w", err)
		}
	}

	pair, err := tx.QueryPair.Query().
		Where(
			querypair.SignatureKeyEQ(req.SignatureKey),
			querypair.TenantIDEQ(req.TenantID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load pair: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit pair upsert: %w", err)
	}

	return pair, nil
}

// VerifyPair promotes a pair to verified status. Tombstoned pairs stay
// retired; promoting one returns ErrNotFound.
func (s *PairService) VerifyPair(ctx context.Context, tenantID int64, signatureKey string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.QueryPair.Update().
		Where(
			querypair.SignatureKeyEQ(signatureKey),
			querypair.TenantIDEQ(tenantID),
			querypair.StatusNEQ(querypair.StatusTombstoned),
		).
		SetStatus(querypair.StatusVerified).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to verify pair: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// TombstonePair retires a pair. Tombstoning is a status transition, never a
// row delete, so pins referencing the signature degrade instead of erroring.
func (s *PairService) TombstonePair(ctx context.Context, tenantID int64, signatureKey string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := s.client.QueryPair.Update().
		Where(
			querypair.SignatureKeyEQ(signatureKey),
			querypair.TenantIDEQ(tenantID),
		).
		SetStatus(querypair.StatusTombstoned).
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to tombstone pair: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// ListPairs lists registry pairs with filtering and pagination
func (s *PairService) ListPairs(ctx context.Context, filters models.PairFilters) (*models.PairListResponse, error) {
	query := s.client.QueryPair.Query()

	if filters.TenantID != nil {
		query = query.Where(querypair.TenantIDEQ(*filters.TenantID))
	}
	if filters.Status != "" {
		query = query.Where(querypair.StatusEQ(querypair.Status(filters.Status)))
	}
	if filters.Role != "" {
		role := filters.Role
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(querypair.FieldRoles, role))
		})
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pairs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	pairs, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(querypair.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pairs: %w", err)
	}

	return &models.PairListResponse{
		Pairs:      pairs,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// GetBySignature resolves a pinned signature to its example. Missing
// signatures return nil so the recommender can degrade instead of erroring.
func (s *PairService) GetBySignature(ctx context.Context, tenantID int64, signatureKey string) (*registry.Example, error) {
	pair, err := s.client.QueryPair.Query().
		Where(
			querypair.SignatureKeyEQ(signatureKey),
			querypair.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pair by signature: %w", err)
	}

	return toExample(pair), nil
}

// SemanticSearch returns candidates filtered by role and status, ranked by
// embedding similarity against the question.
func (s *PairService) SemanticSearch(ctx context.Context, q registry.SearchQuery) ([]registry.Candidate, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = registry.DefaultLimit
	}

	query := s.client.QueryPair.Query().
		Where(querypair.TenantIDEQ(q.TenantID))

	if len(q.Statuses) > 0 {
		statuses := make([]querypair.Status, len(q.Statuses))
		for i, st := range q.Statuses {
			statuses[i] = querypair.Status(st)
		}
		query = query.Where(querypair.StatusIn(statuses...))
	}
	if q.Role != "" {
		role := string(q.Role)
		query = query.Where(func(sel *sql.Selector) {
			sel.Where(sqljson.ValueContains(querypair.FieldRoles, role))
		})
	}

	pairs, err := query.
		Order(ent.Desc(querypair.FieldUpdatedAt)).
		Limit(maxSemanticScan).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan pairs: %w", err)
	}

	var queryVec []float32
	if s.embedder != nil {
		vec, err := s.embedder.Embed(ctx, q.Question)
		if err != nil {
			slog.Warn("Search embedding failed, ranking by word overlap", "error", err)
		} else {
			queryVec = vec
		}
	}

	candidates := make([]registry.Candidate, 0, len(pairs))
	for _, p := range pairs {
		var score float64
		if queryVec != nil && len(p.Embedding) > 0 {
			score = llm.CosineSimilarity(queryVec, p.Embedding)
		} else {
			score = lexicalSimilarity(q.Question, p.Question)
		}
		if q.MinScore > 0 && score < q.MinScore {
			continue
		}
		candidates = append(candidates, registry.Candidate{Example: *toExample(p), Score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	return candidates, nil
}

// toExample converts a stored pair into the registry's example shape. The
// canonical group id rides in metadata.
func toExample(p *ent.QueryPair) *registry.Example {
	roles := make([]registry.Role, len(p.Roles))
	for i, r := range p.Roles {
		roles[i] = registry.Role(r)
	}

	ex := &registry.Example{
		SignatureKey: p.SignatureKey,
		TenantID:     p.TenantID,
		Question:     p.Question,
		SQL:          p.SQLQuery,
		Roles:        roles,
		Status:       registry.Status(p.Status),
		Metadata:     p.Metadata,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if group, ok := p.Metadata["canonical_group_id"].(string); ok {
		ex.CanonicalGroupID = group
	}
	return ex
}

// lexicalSimilarity is the ranking fallback when no embedding is available:
// Jaccard overlap over lowercased word sets.
func lexicalSimilarity(a, b string) float64 {
	as, bs := wordSet(a), wordSet(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}
	inter := 0
	for w := range as {
		if _, ok := bs[w]; ok {
			inter++
		}
	}
	return float64(inter) / float64(len(as)+len(bs)-inter)
}

func wordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}
