// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/ent/predicate"
	"github.com/querra-ai/querra/ent/querysession"
)

// QuerySessionUpdate is the builder for updating QuerySession entities.
type QuerySessionUpdate struct {
	config
	hooks    []Hook
	mutation *QuerySessionMutation
}

// Where appends a list predicates to the QuerySessionUpdate builder.
func (_u *QuerySessionUpdate) Where(ps ...predicate.QuerySession) *QuerySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *QuerySessionUpdate) SetTenantID(v int64) *QuerySessionUpdate {
	_u.mutation.ResetTenantID()
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableTenantID(v *int64) *QuerySessionUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// AddTenantID adds value to the "tenant_id" field.
func (_u *QuerySessionUpdate) AddTenantID(v int64) *QuerySessionUpdate {
	_u.mutation.AddTenantID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuerySessionUpdate) SetQuestion(v string) *QuerySessionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableQuestion(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuerySessionUpdate) SetStatus(v querysession.Status) *QuerySessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableStatus(v *querysession.Status) *QuerySessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalSQL sets the "final_sql" field.
func (_u *QuerySessionUpdate) SetFinalSQL(v string) *QuerySessionUpdate {
	_u.mutation.SetFinalSQL(v)
	return _u
}

// SetNillableFinalSQL sets the "final_sql" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableFinalSQL(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetFinalSQL(*v)
	}
	return _u
}

// ClearFinalSQL clears the value of the "final_sql" field.
func (_u *QuerySessionUpdate) ClearFinalSQL() *QuerySessionUpdate {
	_u.mutation.ClearFinalSQL()
	return _u
}

// SetResultPayload sets the "result_payload" field.
func (_u *QuerySessionUpdate) SetResultPayload(v map[string]interface{}) *QuerySessionUpdate {
	_u.mutation.SetResultPayload(v)
	return _u
}

// ClearResultPayload clears the value of the "result_payload" field.
func (_u *QuerySessionUpdate) ClearResultPayload() *QuerySessionUpdate {
	_u.mutation.ClearResultPayload()
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *QuerySessionUpdate) SetFinalAnswer(v string) *QuerySessionUpdate {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableFinalAnswer(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (_u *QuerySessionUpdate) ClearFinalAnswer() *QuerySessionUpdate {
	_u.mutation.ClearFinalAnswer()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QuerySessionUpdate) SetErrorMessage(v string) *QuerySessionUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableErrorMessage(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QuerySessionUpdate) ClearErrorMessage() *QuerySessionUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *QuerySessionUpdate) SetErrorCode(v string) *QuerySessionUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableErrorCode(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *QuerySessionUpdate) ClearErrorCode() *QuerySessionUpdate {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetClarificationQuestion sets the "clarification_question" field.
func (_u *QuerySessionUpdate) SetClarificationQuestion(v string) *QuerySessionUpdate {
	_u.mutation.SetClarificationQuestion(v)
	return _u
}

// SetNillableClarificationQuestion sets the "clarification_question" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableClarificationQuestion(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetClarificationQuestion(*v)
	}
	return _u
}

// ClearClarificationQuestion clears the value of the "clarification_question" field.
func (_u *QuerySessionUpdate) ClearClarificationQuestion() *QuerySessionUpdate {
	_u.mutation.ClearClarificationQuestion()
	return _u
}

// SetClarificationAnswer sets the "clarification_answer" field.
func (_u *QuerySessionUpdate) SetClarificationAnswer(v string) *QuerySessionUpdate {
	_u.mutation.SetClarificationAnswer(v)
	return _u
}

// SetNillableClarificationAnswer sets the "clarification_answer" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableClarificationAnswer(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetClarificationAnswer(*v)
	}
	return _u
}

// ClearClarificationAnswer clears the value of the "clarification_answer" field.
func (_u *QuerySessionUpdate) ClearClarificationAnswer() *QuerySessionUpdate {
	_u.mutation.ClearClarificationAnswer()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *QuerySessionUpdate) SetPodID(v string) *QuerySessionUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillablePodID(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *QuerySessionUpdate) ClearPodID() *QuerySessionUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetRequeueCount sets the "requeue_count" field.
func (_u *QuerySessionUpdate) SetRequeueCount(v int) *QuerySessionUpdate {
	_u.mutation.ResetRequeueCount()
	_u.mutation.SetRequeueCount(v)
	return _u
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableRequeueCount(v *int) *QuerySessionUpdate {
	if v != nil {
		_u.SetRequeueCount(*v)
	}
	return _u
}

// AddRequeueCount adds value to the "requeue_count" field.
func (_u *QuerySessionUpdate) AddRequeueCount(v int) *QuerySessionUpdate {
	_u.mutation.AddRequeueCount(v)
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *QuerySessionUpdate) SetTraceID(v string) *QuerySessionUpdate {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableTraceID(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *QuerySessionUpdate) ClearTraceID() *QuerySessionUpdate {
	_u.mutation.ClearTraceID()
	return _u
}

// SetSchemaSnapshotID sets the "schema_snapshot_id" field.
func (_u *QuerySessionUpdate) SetSchemaSnapshotID(v string) *QuerySessionUpdate {
	_u.mutation.SetSchemaSnapshotID(v)
	return _u
}

// SetNillableSchemaSnapshotID sets the "schema_snapshot_id" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableSchemaSnapshotID(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetSchemaSnapshotID(*v)
	}
	return _u
}

// ClearSchemaSnapshotID clears the value of the "schema_snapshot_id" field.
func (_u *QuerySessionUpdate) ClearSchemaSnapshotID() *QuerySessionUpdate {
	_u.mutation.ClearSchemaSnapshotID()
	return _u
}

// SetPageSize sets the "page_size" field.
func (_u *QuerySessionUpdate) SetPageSize(v int) *QuerySessionUpdate {
	_u.mutation.ResetPageSize()
	_u.mutation.SetPageSize(v)
	return _u
}

// SetNillablePageSize sets the "page_size" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillablePageSize(v *int) *QuerySessionUpdate {
	if v != nil {
		_u.SetPageSize(*v)
	}
	return _u
}

// AddPageSize adds value to the "page_size" field.
func (_u *QuerySessionUpdate) AddPageSize(v int) *QuerySessionUpdate {
	_u.mutation.AddPageSize(v)
	return _u
}

// ClearPageSize clears the value of the "page_size" field.
func (_u *QuerySessionUpdate) ClearPageSize() *QuerySessionUpdate {
	_u.mutation.ClearPageSize()
	return _u
}

// SetPageToken sets the "page_token" field.
func (_u *QuerySessionUpdate) SetPageToken(v string) *QuerySessionUpdate {
	_u.mutation.SetPageToken(v)
	return _u
}

// SetNillablePageToken sets the "page_token" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillablePageToken(v *string) *QuerySessionUpdate {
	if v != nil {
		_u.SetPageToken(*v)
	}
	return _u
}

// ClearPageToken clears the value of the "page_token" field.
func (_u *QuerySessionUpdate) ClearPageToken() *QuerySessionUpdate {
	_u.mutation.ClearPageToken()
	return _u
}

// SetSeed sets the "seed" field.
func (_u *QuerySessionUpdate) SetSeed(v int64) *QuerySessionUpdate {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableSeed(v *int64) *QuerySessionUpdate {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *QuerySessionUpdate) AddSeed(v int64) *QuerySessionUpdate {
	_u.mutation.AddSeed(v)
	return _u
}

// ClearSeed clears the value of the "seed" field.
func (_u *QuerySessionUpdate) ClearSeed() *QuerySessionUpdate {
	_u.mutation.ClearSeed()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuerySessionUpdate) SetCreatedAt(v time.Time) *QuerySessionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableCreatedAt(v *time.Time) *QuerySessionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuerySessionUpdate) SetStartedAt(v time.Time) *QuerySessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableStartedAt(v *time.Time) *QuerySessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *QuerySessionUpdate) ClearStartedAt() *QuerySessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuerySessionUpdate) SetCompletedAt(v time.Time) *QuerySessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableCompletedAt(v *time.Time) *QuerySessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QuerySessionUpdate) ClearCompletedAt() *QuerySessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *QuerySessionUpdate) SetLastInteractionAt(v time.Time) *QuerySessionUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableLastInteractionAt(v *time.Time) *QuerySessionUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *QuerySessionUpdate) ClearLastInteractionAt() *QuerySessionUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuerySessionUpdate) SetDeletedAt(v time.Time) *QuerySessionUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuerySessionUpdate) SetNillableDeletedAt(v *time.Time) *QuerySessionUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuerySessionUpdate) ClearDeletedAt() *QuerySessionUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddInteractionIDs adds the "interactions" edge to the Interaction entity by IDs.
func (_u *QuerySessionUpdate) AddInteractionIDs(ids ...string) *QuerySessionUpdate {
	_u.mutation.AddInteractionIDs(ids...)
	return _u
}

// AddInteractions adds the "interactions" edges to the Interaction entity.
func (_u *QuerySessionUpdate) AddInteractions(v ...*Interaction) *QuerySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInteractionIDs(ids...)
}

// Mutation returns the QuerySessionMutation object of the builder.
func (_u *QuerySessionUpdate) Mutation() *QuerySessionMutation {
	return _u.mutation
}

// ClearInteractions clears all "interactions" edges to the Interaction entity.
func (_u *QuerySessionUpdate) ClearInteractions() *QuerySessionUpdate {
	_u.mutation.ClearInteractions()
	return _u
}

// RemoveInteractionIDs removes the "interactions" edge to Interaction entities by IDs.
func (_u *QuerySessionUpdate) RemoveInteractionIDs(ids ...string) *QuerySessionUpdate {
	_u.mutation.RemoveInteractionIDs(ids...)
	return _u
}

// RemoveInteractions removes "interactions" edges to Interaction entities.
func (_u *QuerySessionUpdate) RemoveInteractions(v ...*Interaction) *QuerySessionUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInteractionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuerySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuerySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuerySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuerySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuerySessionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := querysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuerySession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuerySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(querysession.Table, querysession.Columns, sqlgraph.NewFieldSpec(querysession.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(querysession.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTenantID(); ok {
		_spec.AddField(querysession.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(querysession.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(querysession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalSQL(); ok {
		_spec.SetField(querysession.FieldFinalSQL, field.TypeString, value)
	}
	if _u.mutation.FinalSQLCleared() {
		_spec.ClearField(querysession.FieldFinalSQL, field.TypeString)
	}
	if value, ok := _u.mutation.ResultPayload(); ok {
		_spec.SetField(querysession.FieldResultPayload, field.TypeJSON, value)
	}
	if _u.mutation.ResultPayloadCleared() {
		_spec.ClearField(querysession.FieldResultPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(querysession.FieldFinalAnswer, field.TypeString, value)
	}
	if _u.mutation.FinalAnswerCleared() {
		_spec.ClearField(querysession.FieldFinalAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(querysession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(querysession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(querysession.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(querysession.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ClarificationQuestion(); ok {
		_spec.SetField(querysession.FieldClarificationQuestion, field.TypeString, value)
	}
	if _u.mutation.ClarificationQuestionCleared() {
		_spec.ClearField(querysession.FieldClarificationQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.ClarificationAnswer(); ok {
		_spec.SetField(querysession.FieldClarificationAnswer, field.TypeString, value)
	}
	if _u.mutation.ClarificationAnswerCleared() {
		_spec.ClearField(querysession.FieldClarificationAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(querysession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(querysession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.RequeueCount(); ok {
		_spec.SetField(querysession.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequeueCount(); ok {
		_spec.AddField(querysession.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(querysession.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(querysession.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.SchemaSnapshotID(); ok {
		_spec.SetField(querysession.FieldSchemaSnapshotID, field.TypeString, value)
	}
	if _u.mutation.SchemaSnapshotIDCleared() {
		_spec.ClearField(querysession.FieldSchemaSnapshotID, field.TypeString)
	}
	if value, ok := _u.mutation.PageSize(); ok {
		_spec.SetField(querysession.FieldPageSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageSize(); ok {
		_spec.AddField(querysession.FieldPageSize, field.TypeInt, value)
	}
	if _u.mutation.PageSizeCleared() {
		_spec.ClearField(querysession.FieldPageSize, field.TypeInt)
	}
	if value, ok := _u.mutation.PageToken(); ok {
		_spec.SetField(querysession.FieldPageToken, field.TypeString, value)
	}
	if _u.mutation.PageTokenCleared() {
		_spec.ClearField(querysession.FieldPageToken, field.TypeString)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(querysession.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(querysession.FieldSeed, field.TypeInt64, value)
	}
	if _u.mutation.SeedCleared() {
		_spec.ClearField(querysession.FieldSeed, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(querysession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(querysession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(querysession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(querysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(querysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(querysession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(querysession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(querysession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(querysession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   querysession.InteractionsTable,
			Columns: []string{querysession.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInteractionsIDs(); len(nodes) > 0 && !_u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   querysession.InteractionsTable,
			Columns: []string{querysession.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   querysession.InteractionsTable,
			Columns: []string{querysession.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{querysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuerySessionUpdateOne is the builder for updating a single QuerySession entity.
type QuerySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuerySessionMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *QuerySessionUpdateOne) SetTenantID(v int64) *QuerySessionUpdateOne {
	_u.mutation.ResetTenantID()
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableTenantID(v *int64) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// AddTenantID adds value to the "tenant_id" field.
func (_u *QuerySessionUpdateOne) AddTenantID(v int64) *QuerySessionUpdateOne {
	_u.mutation.AddTenantID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuerySessionUpdateOne) SetQuestion(v string) *QuerySessionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableQuestion(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *QuerySessionUpdateOne) SetStatus(v querysession.Status) *QuerySessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableStatus(v *querysession.Status) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFinalSQL sets the "final_sql" field.
func (_u *QuerySessionUpdateOne) SetFinalSQL(v string) *QuerySessionUpdateOne {
	_u.mutation.SetFinalSQL(v)
	return _u
}

// SetNillableFinalSQL sets the "final_sql" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableFinalSQL(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetFinalSQL(*v)
	}
	return _u
}

// ClearFinalSQL clears the value of the "final_sql" field.
func (_u *QuerySessionUpdateOne) ClearFinalSQL() *QuerySessionUpdateOne {
	_u.mutation.ClearFinalSQL()
	return _u
}

// SetResultPayload sets the "result_payload" field.
func (_u *QuerySessionUpdateOne) SetResultPayload(v map[string]interface{}) *QuerySessionUpdateOne {
	_u.mutation.SetResultPayload(v)
	return _u
}

// ClearResultPayload clears the value of the "result_payload" field.
func (_u *QuerySessionUpdateOne) ClearResultPayload() *QuerySessionUpdateOne {
	_u.mutation.ClearResultPayload()
	return _u
}

// SetFinalAnswer sets the "final_answer" field.
func (_u *QuerySessionUpdateOne) SetFinalAnswer(v string) *QuerySessionUpdateOne {
	_u.mutation.SetFinalAnswer(v)
	return _u
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableFinalAnswer(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetFinalAnswer(*v)
	}
	return _u
}

// ClearFinalAnswer clears the value of the "final_answer" field.
func (_u *QuerySessionUpdateOne) ClearFinalAnswer() *QuerySessionUpdateOne {
	_u.mutation.ClearFinalAnswer()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *QuerySessionUpdateOne) SetErrorMessage(v string) *QuerySessionUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableErrorMessage(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *QuerySessionUpdateOne) ClearErrorMessage() *QuerySessionUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *QuerySessionUpdateOne) SetErrorCode(v string) *QuerySessionUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableErrorCode(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// ClearErrorCode clears the value of the "error_code" field.
func (_u *QuerySessionUpdateOne) ClearErrorCode() *QuerySessionUpdateOne {
	_u.mutation.ClearErrorCode()
	return _u
}

// SetClarificationQuestion sets the "clarification_question" field.
func (_u *QuerySessionUpdateOne) SetClarificationQuestion(v string) *QuerySessionUpdateOne {
	_u.mutation.SetClarificationQuestion(v)
	return _u
}

// SetNillableClarificationQuestion sets the "clarification_question" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableClarificationQuestion(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetClarificationQuestion(*v)
	}
	return _u
}

// ClearClarificationQuestion clears the value of the "clarification_question" field.
func (_u *QuerySessionUpdateOne) ClearClarificationQuestion() *QuerySessionUpdateOne {
	_u.mutation.ClearClarificationQuestion()
	return _u
}

// SetClarificationAnswer sets the "clarification_answer" field.
func (_u *QuerySessionUpdateOne) SetClarificationAnswer(v string) *QuerySessionUpdateOne {
	_u.mutation.SetClarificationAnswer(v)
	return _u
}

// SetNillableClarificationAnswer sets the "clarification_answer" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableClarificationAnswer(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetClarificationAnswer(*v)
	}
	return _u
}

// ClearClarificationAnswer clears the value of the "clarification_answer" field.
func (_u *QuerySessionUpdateOne) ClearClarificationAnswer() *QuerySessionUpdateOne {
	_u.mutation.ClearClarificationAnswer()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *QuerySessionUpdateOne) SetPodID(v string) *QuerySessionUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillablePodID(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *QuerySessionUpdateOne) ClearPodID() *QuerySessionUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetRequeueCount sets the "requeue_count" field.
func (_u *QuerySessionUpdateOne) SetRequeueCount(v int) *QuerySessionUpdateOne {
	_u.mutation.ResetRequeueCount()
	_u.mutation.SetRequeueCount(v)
	return _u
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableRequeueCount(v *int) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetRequeueCount(*v)
	}
	return _u
}

// AddRequeueCount adds value to the "requeue_count" field.
func (_u *QuerySessionUpdateOne) AddRequeueCount(v int) *QuerySessionUpdateOne {
	_u.mutation.AddRequeueCount(v)
	return _u
}

// SetTraceID sets the "trace_id" field.
func (_u *QuerySessionUpdateOne) SetTraceID(v string) *QuerySessionUpdateOne {
	_u.mutation.SetTraceID(v)
	return _u
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableTraceID(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetTraceID(*v)
	}
	return _u
}

// ClearTraceID clears the value of the "trace_id" field.
func (_u *QuerySessionUpdateOne) ClearTraceID() *QuerySessionUpdateOne {
	_u.mutation.ClearTraceID()
	return _u
}

// SetSchemaSnapshotID sets the "schema_snapshot_id" field.
func (_u *QuerySessionUpdateOne) SetSchemaSnapshotID(v string) *QuerySessionUpdateOne {
	_u.mutation.SetSchemaSnapshotID(v)
	return _u
}

// SetNillableSchemaSnapshotID sets the "schema_snapshot_id" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableSchemaSnapshotID(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetSchemaSnapshotID(*v)
	}
	return _u
}

// ClearSchemaSnapshotID clears the value of the "schema_snapshot_id" field.
func (_u *QuerySessionUpdateOne) ClearSchemaSnapshotID() *QuerySessionUpdateOne {
	_u.mutation.ClearSchemaSnapshotID()
	return _u
}

// SetPageSize sets the "page_size" field.
func (_u *QuerySessionUpdateOne) SetPageSize(v int) *QuerySessionUpdateOne {
	_u.mutation.ResetPageSize()
	_u.mutation.SetPageSize(v)
	return _u
}

// SetNillablePageSize sets the "page_size" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillablePageSize(v *int) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetPageSize(*v)
	}
	return _u
}

// AddPageSize adds value to the "page_size" field.
func (_u *QuerySessionUpdateOne) AddPageSize(v int) *QuerySessionUpdateOne {
	_u.mutation.AddPageSize(v)
	return _u
}

// ClearPageSize clears the value of the "page_size" field.
func (_u *QuerySessionUpdateOne) ClearPageSize() *QuerySessionUpdateOne {
	_u.mutation.ClearPageSize()
	return _u
}

// SetPageToken sets the "page_token" field.
func (_u *QuerySessionUpdateOne) SetPageToken(v string) *QuerySessionUpdateOne {
	_u.mutation.SetPageToken(v)
	return _u
}

// SetNillablePageToken sets the "page_token" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillablePageToken(v *string) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetPageToken(*v)
	}
	return _u
}

// ClearPageToken clears the value of the "page_token" field.
func (_u *QuerySessionUpdateOne) ClearPageToken() *QuerySessionUpdateOne {
	_u.mutation.ClearPageToken()
	return _u
}

// SetSeed sets the "seed" field.
func (_u *QuerySessionUpdateOne) SetSeed(v int64) *QuerySessionUpdateOne {
	_u.mutation.ResetSeed()
	_u.mutation.SetSeed(v)
	return _u
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableSeed(v *int64) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetSeed(*v)
	}
	return _u
}

// AddSeed adds value to the "seed" field.
func (_u *QuerySessionUpdateOne) AddSeed(v int64) *QuerySessionUpdateOne {
	_u.mutation.AddSeed(v)
	return _u
}

// ClearSeed clears the value of the "seed" field.
func (_u *QuerySessionUpdateOne) ClearSeed() *QuerySessionUpdateOne {
	_u.mutation.ClearSeed()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *QuerySessionUpdateOne) SetCreatedAt(v time.Time) *QuerySessionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableCreatedAt(v *time.Time) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *QuerySessionUpdateOne) SetStartedAt(v time.Time) *QuerySessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableStartedAt(v *time.Time) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *QuerySessionUpdateOne) ClearStartedAt() *QuerySessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *QuerySessionUpdateOne) SetCompletedAt(v time.Time) *QuerySessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableCompletedAt(v *time.Time) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *QuerySessionUpdateOne) ClearCompletedAt() *QuerySessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *QuerySessionUpdateOne) SetLastInteractionAt(v time.Time) *QuerySessionUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableLastInteractionAt(v *time.Time) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *QuerySessionUpdateOne) ClearLastInteractionAt() *QuerySessionUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *QuerySessionUpdateOne) SetDeletedAt(v time.Time) *QuerySessionUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *QuerySessionUpdateOne) SetNillableDeletedAt(v *time.Time) *QuerySessionUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *QuerySessionUpdateOne) ClearDeletedAt() *QuerySessionUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddInteractionIDs adds the "interactions" edge to the Interaction entity by IDs.
func (_u *QuerySessionUpdateOne) AddInteractionIDs(ids ...string) *QuerySessionUpdateOne {
	_u.mutation.AddInteractionIDs(ids...)
	return _u
}

// AddInteractions adds the "interactions" edges to the Interaction entity.
func (_u *QuerySessionUpdateOne) AddInteractions(v ...*Interaction) *QuerySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInteractionIDs(ids...)
}

// Mutation returns the QuerySessionMutation object of the builder.
func (_u *QuerySessionUpdateOne) Mutation() *QuerySessionMutation {
	return _u.mutation
}

// ClearInteractions clears all "interactions" edges to the Interaction entity.
func (_u *QuerySessionUpdateOne) ClearInteractions() *QuerySessionUpdateOne {
	_u.mutation.ClearInteractions()
	return _u
}

// RemoveInteractionIDs removes the "interactions" edge to Interaction entities by IDs.
func (_u *QuerySessionUpdateOne) RemoveInteractionIDs(ids ...string) *QuerySessionUpdateOne {
	_u.mutation.RemoveInteractionIDs(ids...)
	return _u
}

// RemoveInteractions removes "interactions" edges to Interaction entities.
func (_u *QuerySessionUpdateOne) RemoveInteractions(v ...*Interaction) *QuerySessionUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInteractionIDs(ids...)
}

// Where appends a list predicates to the QuerySessionUpdate builder.
func (_u *QuerySessionUpdateOne) Where(ps ...predicate.QuerySession) *QuerySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuerySessionUpdateOne) Select(field string, fields ...string) *QuerySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuerySession entity.
func (_u *QuerySessionUpdateOne) Save(ctx context.Context) (*QuerySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuerySessionUpdateOne) SaveX(ctx context.Context) *QuerySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuerySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuerySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuerySessionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := querysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuerySession.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QuerySessionUpdateOne) sqlSave(ctx context.Context) (_node *QuerySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(querysession.Table, querysession.Columns, sqlgraph.NewFieldSpec(querysession.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuerySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, querysession.FieldID)
		for _, f := range fields {
			if !querysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != querysession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(querysession.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTenantID(); ok {
		_spec.AddField(querysession.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(querysession.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(querysession.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FinalSQL(); ok {
		_spec.SetField(querysession.FieldFinalSQL, field.TypeString, value)
	}
	if _u.mutation.FinalSQLCleared() {
		_spec.ClearField(querysession.FieldFinalSQL, field.TypeString)
	}
	if value, ok := _u.mutation.ResultPayload(); ok {
		_spec.SetField(querysession.FieldResultPayload, field.TypeJSON, value)
	}
	if _u.mutation.ResultPayloadCleared() {
		_spec.ClearField(querysession.FieldResultPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.FinalAnswer(); ok {
		_spec.SetField(querysession.FieldFinalAnswer, field.TypeString, value)
	}
	if _u.mutation.FinalAnswerCleared() {
		_spec.ClearField(querysession.FieldFinalAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(querysession.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(querysession.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(querysession.FieldErrorCode, field.TypeString, value)
	}
	if _u.mutation.ErrorCodeCleared() {
		_spec.ClearField(querysession.FieldErrorCode, field.TypeString)
	}
	if value, ok := _u.mutation.ClarificationQuestion(); ok {
		_spec.SetField(querysession.FieldClarificationQuestion, field.TypeString, value)
	}
	if _u.mutation.ClarificationQuestionCleared() {
		_spec.ClearField(querysession.FieldClarificationQuestion, field.TypeString)
	}
	if value, ok := _u.mutation.ClarificationAnswer(); ok {
		_spec.SetField(querysession.FieldClarificationAnswer, field.TypeString, value)
	}
	if _u.mutation.ClarificationAnswerCleared() {
		_spec.ClearField(querysession.FieldClarificationAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(querysession.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(querysession.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.RequeueCount(); ok {
		_spec.SetField(querysession.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequeueCount(); ok {
		_spec.AddField(querysession.FieldRequeueCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TraceID(); ok {
		_spec.SetField(querysession.FieldTraceID, field.TypeString, value)
	}
	if _u.mutation.TraceIDCleared() {
		_spec.ClearField(querysession.FieldTraceID, field.TypeString)
	}
	if value, ok := _u.mutation.SchemaSnapshotID(); ok {
		_spec.SetField(querysession.FieldSchemaSnapshotID, field.TypeString, value)
	}
	if _u.mutation.SchemaSnapshotIDCleared() {
		_spec.ClearField(querysession.FieldSchemaSnapshotID, field.TypeString)
	}
	if value, ok := _u.mutation.PageSize(); ok {
		_spec.SetField(querysession.FieldPageSize, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPageSize(); ok {
		_spec.AddField(querysession.FieldPageSize, field.TypeInt, value)
	}
	if _u.mutation.PageSizeCleared() {
		_spec.ClearField(querysession.FieldPageSize, field.TypeInt)
	}
	if value, ok := _u.mutation.PageToken(); ok {
		_spec.SetField(querysession.FieldPageToken, field.TypeString, value)
	}
	if _u.mutation.PageTokenCleared() {
		_spec.ClearField(querysession.FieldPageToken, field.TypeString)
	}
	if value, ok := _u.mutation.Seed(); ok {
		_spec.SetField(querysession.FieldSeed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSeed(); ok {
		_spec.AddField(querysession.FieldSeed, field.TypeInt64, value)
	}
	if _u.mutation.SeedCleared() {
		_spec.ClearField(querysession.FieldSeed, field.TypeInt64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(querysession.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(querysession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(querysession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(querysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(querysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(querysession.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(querysession.FieldLastInteractionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(querysession.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(querysession.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   querysession.InteractionsTable,
			Columns: []string{querysession.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInteractionsIDs(); len(nodes) > 0 && !_u.mutation.InteractionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   querysession.InteractionsTable,
			Columns: []string{querysession.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InteractionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   querysession.InteractionsTable,
			Columns: []string{querysession.InteractionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuerySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{querysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
