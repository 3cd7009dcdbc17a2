package services

import (
	"context"
	"fmt"

	"github.com/querra-ai/querra/pkg/registry"
	"github.com/querra-ai/querra/pkg/workflow"
)

// FewShotService feeds the generate prompt from the recommendation pipeline.
type FewShotService struct {
	recommender *registry.Recommender
}

var _ workflow.FewShotProvider = (*FewShotService)(nil)

// NewFewShotService wraps a configured recommender.
func NewFewShotService(recommender *registry.Recommender) *FewShotService {
	return &FewShotService{recommender: recommender}
}

// Examples returns ranked (question, SQL) examples for the prompt.
func (s *FewShotService) Examples(ctx context.Context, tenantID int64, question string, limit int) ([]workflow.FewShotExample, error) {
	res, err := s.recommender.Recommend(ctx, registry.Query{
		Question:       question,
		TenantID:       tenantID,
		Limit:          limit,
		EnableFallback: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to recommend examples: %w", err)
	}

	examples := make([]workflow.FewShotExample, len(res.Examples))
	for i, ex := range res.Examples {
		examples[i] = workflow.FewShotExample{
			Question: ex.Question,
			SQL:      ex.SQL,
			Source:   ex.Source,
		}
	}
	return examples, nil
}
