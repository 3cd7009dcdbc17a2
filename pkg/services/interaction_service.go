package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/querra-ai/querra/ent"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/pkg/workflow"
)

// InteractionService persists the audit record written around each workflow
// run. Creates are idempotent by trace id: a retried create after a partial
// failure lands on the existing row.
type InteractionService struct {
	client *ent.Client
}

var _ workflow.InteractionRecorder = (*InteractionService)(nil)

// NewInteractionService creates a new InteractionService
func NewInteractionService(client *ent.Client) *InteractionService {
	return &InteractionService{client: client}
}

// CreateInteraction writes the pre-run audit row. A duplicate trace id is
// not an error; the existing row is the record.
func (s *InteractionService) CreateInteraction(httpCtx context.Context, rec *workflow.InteractionRecord) error {
	if rec.TraceID == "" {
		return NewValidationError("trace_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Interaction.Create().
		SetID(uuid.New().String()).
		SetTraceID(rec.TraceID).
		SetTenantID(rec.TenantID).
		SetQuestion(rec.Question).
		SetExecutionStatus(executionStatusOf(rec.ExecutionStatus))

	if rec.SessionID != "" {
		builder.SetSessionID(rec.SessionID)
	}
	if rec.GeneratedSQL != "" {
		builder.SetGeneratedSQL(rec.GeneratedSQL)
	}
	if rec.ResponsePayload != nil {
		builder.SetResponsePayload(rec.ResponsePayload)
	}
	if rec.ErrorType != "" {
		builder.SetErrorType(rec.ErrorType)
	}
	if len(rec.TablesUsed) > 0 {
		builder.SetTablesUsed(rec.TablesUsed)
	}

	if err := builder.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to create interaction: %w", err)
	}

	return nil
}

// UpdateInteraction applies the post-run fields to the trace's audit row
func (s *InteractionService) UpdateInteraction(httpCtx context.Context, rec *workflow.InteractionRecord) error {
	if rec.TraceID == "" {
		return NewValidationError("trace_id", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Interaction.Update().
		Where(interaction.TraceIDEQ(rec.TraceID)).
		SetExecutionStatus(executionStatusOf(rec.ExecutionStatus))

	if rec.GeneratedSQL != "" {
		update.SetGeneratedSQL(rec.GeneratedSQL)
	}
	if rec.ResponsePayload != nil {
		update.SetResponsePayload(rec.ResponsePayload)
	}
	if rec.ErrorType != "" {
		update.SetErrorType(rec.ErrorType)
	}
	if len(rec.TablesUsed) > 0 {
		update.SetTablesUsed(rec.TablesUsed)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update interaction: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// GetInteractionByTrace retrieves the audit row for a workflow trace
func (s *InteractionService) GetInteractionByTrace(ctx context.Context, traceID string) (*ent.Interaction, error) {
	rec, err := s.client.Interaction.Query().
		Where(interaction.TraceIDEQ(traceID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}

	return rec, nil
}

// ListInteractions retrieves a session's audit rows in creation order
func (s *InteractionService) ListInteractions(ctx context.Context, sessionID string) ([]*ent.Interaction, error) {
	recs, err := s.client.Interaction.Query().
		Where(interaction.SessionIDEQ(sessionID)).
		Order(ent.Asc(interaction.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	return recs, nil
}

// executionStatusOf maps the recorder's status string onto the stored enum.
// Anything unrecognized, including the empty pre-run value, is running.
func executionStatusOf(status string) interaction.ExecutionStatus {
	switch st := interaction.ExecutionStatus(status); st {
	case interaction.ExecutionStatusCompleted, interaction.ExecutionStatusFailed:
		return st
	default:
		return interaction.ExecutionStatusRunning
	}
}
