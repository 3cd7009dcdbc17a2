// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/querra-ai/querra/ent/querypair"
)

// QueryPairCreate is the builder for creating a QueryPair entity.
type QueryPairCreate struct {
	config
	mutation *QueryPairMutation
	hooks    []Hook
}

// SetSignatureKey sets the "signature_key" field.
func (_c *QueryPairCreate) SetSignatureKey(v string) *QueryPairCreate {
	_c.mutation.SetSignatureKey(v)
	return _c
}

// SetTenantID sets the "tenant_id" field.
func (_c *QueryPairCreate) SetTenantID(v int64) *QueryPairCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QueryPairCreate) SetQuestion(v string) *QueryPairCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetSQLQuery sets the "sql_query" field.
func (_c *QueryPairCreate) SetSQLQuery(v string) *QueryPairCreate {
	_c.mutation.SetSQLQuery(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *QueryPairCreate) SetEmbedding(v []float32) *QueryPairCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetRoles sets the "roles" field.
func (_c *QueryPairCreate) SetRoles(v []string) *QueryPairCreate {
	_c.mutation.SetRoles(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueryPairCreate) SetStatus(v querypair.Status) *QueryPairCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueryPairCreate) SetNillableStatus(v *querypair.Status) *QueryPairCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *QueryPairCreate) SetMetadata(v map[string]interface{}) *QueryPairCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetPerformance sets the "performance" field.
func (_c *QueryPairCreate) SetPerformance(v map[string]interface{}) *QueryPairCreate {
	_c.mutation.SetPerformance(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueryPairCreate) SetCreatedAt(v time.Time) *QueryPairCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueryPairCreate) SetNillableCreatedAt(v *time.Time) *QueryPairCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *QueryPairCreate) SetUpdatedAt(v time.Time) *QueryPairCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *QueryPairCreate) SetNillableUpdatedAt(v *time.Time) *QueryPairCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueryPairCreate) SetID(v string) *QueryPairCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueryPairMutation object of the builder.
func (_c *QueryPairCreate) Mutation() *QueryPairMutation {
	return _c.mutation
}

// Save creates the QueryPair in the database.
func (_c *QueryPairCreate) Save(ctx context.Context) (*QueryPair, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueryPairCreate) SaveX(ctx context.Context) *QueryPair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryPairCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryPairCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueryPairCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := querypair.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := querypair.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := querypair.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueryPairCreate) check() error {
	if _, ok := _c.mutation.SignatureKey(); !ok {
		return &ValidationError{Name: "signature_key", err: errors.New(`ent: missing required field "QueryPair.signature_key"`)}
	}
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "QueryPair.tenant_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QueryPair.question"`)}
	}
	if _, ok := _c.mutation.SQLQuery(); !ok {
		return &ValidationError{Name: "sql_query", err: errors.New(`ent: missing required field "QueryPair.sql_query"`)}
	}
	if _, ok := _c.mutation.Roles(); !ok {
		return &ValidationError{Name: "roles", err: errors.New(`ent: missing required field "QueryPair.roles"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueryPair.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := querypair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueryPair.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueryPair.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "QueryPair.updated_at"`)}
	}
	return nil
}

func (_c *QueryPairCreate) sqlSave(ctx context.Context) (*QueryPair, error) {
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
			return nil, fmt.Errorf("unexpected QueryPair.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueryPairCreate) createSpec() (*QueryPair, *sqlgraph.CreateSpec) {
	var (
		_node = &QueryPair{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(querypair.Table, sqlgraph.NewFieldSpec(querypair.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SignatureKey(); ok {
		_spec.SetField(querypair.FieldSignatureKey, field.TypeString, value)
		_node.SignatureKey = value
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(querypair.FieldTenantID, field.TypeInt64, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(querypair.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.SQLQuery(); ok {
		_spec.SetField(querypair.FieldSQLQuery, field.TypeString, value)
		_node.SQLQuery = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(querypair.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Roles(); ok {
		_spec.SetField(querypair.FieldRoles, field.TypeJSON, value)
		_node.Roles = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(querypair.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(querypair.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.Performance(); ok {
		_spec.SetField(querypair.FieldPerformance, field.TypeJSON, value)
		_node.Performance = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(querypair.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(querypair.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// QueryPairCreateBulk is the builder for creating many QueryPair entities in bulk.
type QueryPairCreateBulk struct {
	config
	err      error
	builders []*QueryPairCreate
}

// Save creates the QueryPair entities in the database.
func (_c *QueryPairCreateBulk) Save(ctx context.Context) ([]*QueryPair, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueryPair, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueryPairMutation)
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
func (_c *QueryPairCreateBulk) SaveX(ctx context.Context) []*QueryPair {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueryPairCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueryPairCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
