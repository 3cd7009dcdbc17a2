package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/querysession"
	"github.com/querra-ai/querra/pkg/config"
)

// SubmitQuestionInput contains the domain-level data needed to create a
// session. Transformed from the HTTP request by the handler.
type SubmitQuestionInput struct {
	TenantID         int64
	Question         string
	SchemaSnapshotID string
	PageSize         int
	PageToken        string // Continuation cursor from a previous result
	Seed             *int64
	TraceID          string
}

// QuestionService handles question submission and session creation.
type QuestionService struct {
	client     *ent.Client
	defaults   *config.Defaults
	pagination *config.PaginationConfig
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(client *ent.Client, defaults *config.Defaults, pagination *config.PaginationConfig) *QuestionService {
	if client == nil {
		panic("NewQuestionService: client must not be nil")
	}
	if defaults == nil {
		panic("NewQuestionService: defaults must not be nil")
	}
	if pagination == nil {
		panic("NewQuestionService: pagination must not be nil")
	}
	return &QuestionService{
		client:     client,
		defaults:   defaults,
		pagination: pagination,
	}
}

// SubmitQuestion creates a new session from a question submission.
// The session starts in "pending" status and is picked up by the worker pool.
func (s *QuestionService) SubmitQuestion(ctx context.Context, input SubmitQuestionInput) (*ent.QuerySession, error) {
	if input.Question == "" {
		return nil, NewValidationError("question", "question is required")
	}
	if input.TenantID <= 0 {
		return nil, NewValidationError("tenant_id", "must be positive")
	}
	if input.PageSize < 0 {
		return nil, NewValidationError("page_size", "must be positive")
	}

	// Resolve page size (use default if not provided), then clamp.
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = s.defaults.PageSize
	}
	if s.pagination.MaxPageSize > 0 && pageSize > s.pagination.MaxPageSize {
		return nil, NewValidationError("page_size",
			fmt.Sprintf("exceeds maximum of %d", s.pagination.MaxPageSize))
	}

	// Generate session ID
	sessionID := uuid.New().String()

	// Create session in "pending" status.
	// created_at is set automatically by the schema default;
	// started_at will be set by the worker when it claims the session.
	builder := s.client.QuerySession.Create().
		SetID(sessionID).
		SetTenantID(input.TenantID).
		SetQuestion(input.Question).
		SetStatus(querysession.StatusPending)

	if input.SchemaSnapshotID != "" {
		builder.SetSchemaSnapshotID(input.SchemaSnapshotID)
	}
	if pageSize > 0 {
		builder.SetPageSize(pageSize)
	}
	if input.PageToken != "" {
		builder.SetPageToken(input.PageToken)
	}
	if input.Seed != nil {
		builder.SetSeed(*input.Seed)
	}
	if input.TraceID != "" {
		builder.SetTraceID(input.TraceID)
	}

	session, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}
