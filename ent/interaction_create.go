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

// InteractionCreate is the builder for creating a Interaction entity.
type InteractionCreate struct {
	config
	mutation *InteractionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *InteractionCreate) SetSessionID(v string) *InteractionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableSessionID(v *string) *InteractionCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetTraceID sets the "trace_id" field.
func (_c *InteractionCreate) SetTraceID(v string) *InteractionCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *InteractionCreate) SetTenantID(v int64) *InteractionCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *InteractionCreate) SetQuestion(v string) *InteractionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_c *InteractionCreate) SetGeneratedSQL(v string) *InteractionCreate {
	_c.mutation.SetGeneratedSQL(v)
	return _c
}

// SetNillableGeneratedSQL sets the "generated_sql" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableGeneratedSQL(v *string) *InteractionCreate {
	if v != nil {
		_c.SetGeneratedSQL(*v)
	}
	return _c
}

// SetResponsePayload sets the "response_payload" field.
func (_c *InteractionCreate) SetResponsePayload(v map[string]interface{}) *InteractionCreate {
	_c.mutation.SetResponsePayload(v)
	return _c
}

// SetExecutionStatus sets the "execution_status" field.
func (_c *InteractionCreate) SetExecutionStatus(v interaction.ExecutionStatus) *InteractionCreate {
	_c.mutation.SetExecutionStatus(v)
	return _c
}

// SetNillableExecutionStatus sets the "execution_status" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableExecutionStatus(v *interaction.ExecutionStatus) *InteractionCreate {
	if v != nil {
		_c.SetExecutionStatus(*v)
	}
	return _c
}

// SetErrorType sets the "error_type" field.
func (_c *InteractionCreate) SetErrorType(v string) *InteractionCreate {
	_c.mutation.SetErrorType(v)
	return _c
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableErrorType(v *string) *InteractionCreate {
	if v != nil {
		_c.SetErrorType(*v)
	}
	return _c
}

// SetTablesUsed sets the "tables_used" field.
func (_c *InteractionCreate) SetTablesUsed(v []string) *InteractionCreate {
	_c.mutation.SetTablesUsed(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InteractionCreate) SetCreatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableCreatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InteractionCreate) SetUpdatedAt(v time.Time) *InteractionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InteractionCreate) SetNillableUpdatedAt(v *time.Time) *InteractionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InteractionCreate) SetID(v string) *InteractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the QuerySession entity.
func (_c *InteractionCreate) SetSession(v *QuerySession) *InteractionCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the InteractionMutation object of the builder.
func (_c *InteractionCreate) Mutation() *InteractionMutation {
	return _c.mutation
}

// Save creates the Interaction in the database.
func (_c *InteractionCreate) Save(ctx context.Context) (*Interaction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionCreate) SaveX(ctx context.Context) *Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionCreate) defaults() {
	if _, ok := _c.mutation.ExecutionStatus(); !ok {
		v := interaction.DefaultExecutionStatus
		_c.mutation.SetExecutionStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := interaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := interaction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionCreate) check() error {
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "Interaction.trace_id"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Interaction.tenant_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Interaction.question"`)}
	}
	if _, ok := _c.mutation.ExecutionStatus(); !ok {
		return &ValidationError{Name: "execution_status", err: errors.New(`ent: missing required field "Interaction.execution_status"`)}
	}
	if v, ok := _c.mutation.ExecutionStatus(); ok {
		if err := interaction.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "Interaction.execution_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Interaction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Interaction.updated_at"`)}
	}
	return nil
}

func (_c *InteractionCreate) sqlSave(ctx context.Context) (*Interaction, error) {
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
			return nil, fmt.Errorf("unexpected Interaction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionCreate) createSpec() (*Interaction, *sqlgraph.CreateSpec) {
	var (
		_node = &Interaction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interaction.Table, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(interaction.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(interaction.FieldTenantID, field.TypeInt64, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(interaction.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.GeneratedSQL(); ok {
		_spec.SetField(interaction.FieldGeneratedSQL, field.TypeString, value)
		_node.GeneratedSQL = &value
	}
	if value, ok := _c.mutation.ResponsePayload(); ok {
		_spec.SetField(interaction.FieldResponsePayload, field.TypeJSON, value)
		_node.ResponsePayload = value
	}
	if value, ok := _c.mutation.ExecutionStatus(); ok {
		_spec.SetField(interaction.FieldExecutionStatus, field.TypeEnum, value)
		_node.ExecutionStatus = value
	}
	if value, ok := _c.mutation.ErrorType(); ok {
		_spec.SetField(interaction.FieldErrorType, field.TypeString, value)
		_node.ErrorType = &value
	}
	if value, ok := _c.mutation.TablesUsed(); ok {
		_spec.SetField(interaction.FieldTablesUsed, field.TypeJSON, value)
		_node.TablesUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(interaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   interaction.SessionTable,
			Columns: []string{interaction.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(querysession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InteractionCreateBulk is the builder for creating many Interaction entities in bulk.
type InteractionCreateBulk struct {
	config
	err      error
	builders []*InteractionCreate
}

// Save creates the Interaction entities in the database.
func (_c *InteractionCreateBulk) Save(ctx context.Context) ([]*Interaction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interaction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionMutation)
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
func (_c *InteractionCreateBulk) SaveX(ctx context.Context) []*Interaction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
