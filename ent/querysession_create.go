// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/ent/querysession"
)

// QuerySessionCreate is the builder for creating a QuerySession entity.
type QuerySessionCreate struct {
	config
	mutation *QuerySessionMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *QuerySessionCreate) SetTenantID(v int64) *QuerySessionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QuerySessionCreate) SetQuestion(v string) *QuerySessionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QuerySessionCreate) SetStatus(v querysession.Status) *QuerySessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableStatus(v *querysession.Status) *QuerySessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFinalSQL sets the "final_sql" field.
func (_c *QuerySessionCreate) SetFinalSQL(v string) *QuerySessionCreate {
	_c.mutation.SetFinalSQL(v)
	return _c
}

// SetNillableFinalSQL sets the "final_sql" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableFinalSQL(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetFinalSQL(*v)
	}
	return _c
}

// SetResultPayload sets the "result_payload" field.
func (_c *QuerySessionCreate) SetResultPayload(v map[string]interface{}) *QuerySessionCreate {
	_c.mutation.SetResultPayload(v)
	return _c
}

// SetFinalAnswer sets the "final_answer" field.
func (_c *QuerySessionCreate) SetFinalAnswer(v string) *QuerySessionCreate {
	_c.mutation.SetFinalAnswer(v)
	return _c
}

// SetNillableFinalAnswer sets the "final_answer" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableFinalAnswer(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetFinalAnswer(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *QuerySessionCreate) SetErrorMessage(v string) *QuerySessionCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableErrorMessage(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *QuerySessionCreate) SetErrorCode(v string) *QuerySessionCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableErrorCode(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetErrorCode(*v)
	}
	return _c
}

// SetClarificationQuestion sets the "clarification_question" field.
func (_c *QuerySessionCreate) SetClarificationQuestion(v string) *QuerySessionCreate {
	_c.mutation.SetClarificationQuestion(v)
	return _c
}

// SetNillableClarificationQuestion sets the "clarification_question" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableClarificationQuestion(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetClarificationQuestion(*v)
	}
	return _c
}

// SetClarificationAnswer sets the "clarification_answer" field.
func (_c *QuerySessionCreate) SetClarificationAnswer(v string) *QuerySessionCreate {
	_c.mutation.SetClarificationAnswer(v)
	return _c
}

// SetNillableClarificationAnswer sets the "clarification_answer" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableClarificationAnswer(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetClarificationAnswer(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *QuerySessionCreate) SetPodID(v string) *QuerySessionCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillablePodID(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetRequeueCount sets the "requeue_count" field.
func (_c *QuerySessionCreate) SetRequeueCount(v int) *QuerySessionCreate {
	_c.mutation.SetRequeueCount(v)
	return _c
}

// SetNillableRequeueCount sets the "requeue_count" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableRequeueCount(v *int) *QuerySessionCreate {
	if v != nil {
		_c.SetRequeueCount(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *QuerySessionCreate) SetTraceID(v string) *QuerySessionCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetNillableTraceID sets the "trace_id" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableTraceID(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetTraceID(*v)
	}
	return _c
}

// SetSchemaSnapshotID sets the "schema_snapshot_id" field.
func (_c *QuerySessionCreate) SetSchemaSnapshotID(v string) *QuerySessionCreate {
	_c.mutation.SetSchemaSnapshotID(v)
	return _c
}

// SetNillableSchemaSnapshotID sets the "schema_snapshot_id" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableSchemaSnapshotID(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetSchemaSnapshotID(*v)
	}
	return _c
}

// SetPageSize sets the "page_size" field.
func (_c *QuerySessionCreate) SetPageSize(v int) *QuerySessionCreate {
	_c.mutation.SetPageSize(v)
	return _c
}

// SetNillablePageSize sets the "page_size" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillablePageSize(v *int) *QuerySessionCreate {
	if v != nil {
		_c.SetPageSize(*v)
	}
	return _c
}

// SetPageToken sets the "page_token" field.
func (_c *QuerySessionCreate) SetPageToken(v string) *QuerySessionCreate {
	_c.mutation.SetPageToken(v)
	return _c
}

// SetNillablePageToken sets the "page_token" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillablePageToken(v *string) *QuerySessionCreate {
	if v != nil {
		_c.SetPageToken(*v)
	}
	return _c
}

// SetSeed sets the "seed" field.
func (_c *QuerySessionCreate) SetSeed(v int64) *QuerySessionCreate {
	_c.mutation.SetSeed(v)
	return _c
}

// SetNillableSeed sets the "seed" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableSeed(v *int64) *QuerySessionCreate {
	if v != nil {
		_c.SetSeed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuerySessionCreate) SetCreatedAt(v time.Time) *QuerySessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableCreatedAt(v *time.Time) *QuerySessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *QuerySessionCreate) SetStartedAt(v time.Time) *QuerySessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableStartedAt(v *time.Time) *QuerySessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *QuerySessionCreate) SetCompletedAt(v time.Time) *QuerySessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableCompletedAt(v *time.Time) *QuerySessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *QuerySessionCreate) SetLastInteractionAt(v time.Time) *QuerySessionCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableLastInteractionAt(v *time.Time) *QuerySessionCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *QuerySessionCreate) SetDeletedAt(v time.Time) *QuerySessionCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *QuerySessionCreate) SetNillableDeletedAt(v *time.Time) *QuerySessionCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QuerySessionCreate) SetID(v string) *QuerySessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddInteractionIDs adds the "interactions" edge to the Interaction entity by IDs.
func (_c *QuerySessionCreate) AddInteractionIDs(ids ...string) *QuerySessionCreate {
	_c.mutation.AddInteractionIDs(ids...)
	return _c
}

// AddInteractions adds the "interactions" edges to the Interaction entity.
func (_c *QuerySessionCreate) AddInteractions(v ...*Interaction) *QuerySessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInteractionIDs(ids...)
}

// Mutation returns the QuerySessionMutation object of the builder.
func (_c *QuerySessionCreate) Mutation() *QuerySessionMutation {
	return _c.mutation
}

// Save creates the QuerySession in the database.
func (_c *QuerySessionCreate) Save(ctx context.Context) (*QuerySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuerySessionCreate) SaveX(ctx context.Context) *QuerySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuerySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuerySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuerySessionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := querysession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequeueCount(); !ok {
		v := querysession.DefaultRequeueCount
		_c.mutation.SetRequeueCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := querysession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuerySessionCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "QuerySession.tenant_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QuerySession.question"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QuerySession.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := querysession.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QuerySession.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequeueCount(); !ok {
		return &ValidationError{Name: "requeue_count", err: errors.New(`ent: missing required field "QuerySession.requeue_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuerySession.created_at"`)}
	}
	return nil
}

func (_c *QuerySessionCreate) sqlSave(ctx context.Context) (*QuerySession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected QuerySession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuerySessionCreate) createSpec() (*QuerySession, *sqlgraph.CreateSpec) {
	var (
		_node = &QuerySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(querysession.Table, sqlgraph.NewFieldSpec(querysession.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(querysession.FieldTenantID, field.TypeInt64, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(querysession.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(querysession.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FinalSQL(); ok {
		_spec.SetField(querysession.FieldFinalSQL, field.TypeString, value)
		_node.FinalSQL = &value
	}
	if value, ok := _c.mutation.ResultPayload(); ok {
		_spec.SetField(querysession.FieldResultPayload, field.TypeJSON, value)
		_node.ResultPayload = value
	}
	if value, ok := _c.mutation.FinalAnswer(); ok {
		_spec.SetField(querysession.FieldFinalAnswer, field.TypeString, value)
		_node.FinalAnswer = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(querysession.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(querysession.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = &value
	}
	if value, ok := _c.mutation.ClarificationQuestion(); ok {
		_spec.SetField(querysession.FieldClarificationQuestion, field.TypeString, value)
		_node.ClarificationQuestion = &value
	}
	if value, ok := _c.mutation.ClarificationAnswer(); ok {
		_spec.SetField(querysession.FieldClarificationAnswer, field.TypeString, value)
		_node.ClarificationAnswer = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(querysession.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.RequeueCount(); ok {
		_spec.SetField(querysession.FieldRequeueCount, field.TypeInt, value)
		_node.RequeueCount = value
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(querysession.FieldTraceID, field.TypeString, value)
		_node.TraceID = &value
	}
	if value, ok := _c.mutation.SchemaSnapshotID(); ok {
		_spec.SetField(querysession.FieldSchemaSnapshotID, field.TypeString, value)
		_node.SchemaSnapshotID = &value
	}
	if value, ok := _c.mutation.PageSize(); ok {
		_spec.SetField(querysession.FieldPageSize, field.TypeInt, value)
		_node.PageSize = &value
	}
	if value, ok := _c.mutation.PageToken(); ok {
		_spec.SetField(querysession.FieldPageToken, field.TypeString, value)
		_node.PageToken = &value
	}
	if value, ok := _c.mutation.Seed(); ok {
		_spec.SetField(querysession.FieldSeed, field.TypeInt64, value)
		_node.Seed = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(querysession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(querysession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(querysession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(querysession.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(querysession.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.InteractionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuerySessionCreateBulk is the builder for creating many QuerySession entities in bulk.
type QuerySessionCreateBulk struct {
	config
	err      error
	builders []*QuerySessionCreate
}

// Save creates the QuerySession entities in the database.
func (_c *QuerySessionCreateBulk) Save(ctx context.Context) ([]*QuerySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuerySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuerySessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuerySessionCreateBulk) SaveX(ctx context.Context) []*QuerySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuerySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuerySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
