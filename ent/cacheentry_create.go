// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/querra-ai/querra/ent/cacheentry"
)

// CacheEntryCreate is the builder for creating a CacheEntry entity.
type CacheEntryCreate struct {
	config
	mutation *CacheEntryMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CacheEntryCreate) SetTenantID(v int64) *CacheEntryCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetUserQuery sets the "user_query" field.
func (_c *CacheEntryCreate) SetUserQuery(v string) *CacheEntryCreate {
	_c.mutation.SetUserQuery(v)
	return _c
}

// SetQueryEmbedding sets the "query_embedding" field.
func (_c *CacheEntryCreate) SetQueryEmbedding(v []float32) *CacheEntryCreate {
	_c.mutation.SetQueryEmbedding(v)
	return _c
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_c *CacheEntryCreate) SetGeneratedSQL(v string) *CacheEntryCreate {
	_c.mutation.SetGeneratedSQL(v)
	return _c
}

// SetSchemaVersion sets the "schema_version" field.
func (_c *CacheEntryCreate) SetSchemaVersion(v string) *CacheEntryCreate {
	_c.mutation.SetSchemaVersion(v)
	return _c
}

// SetCacheType sets the "cache_type" field.
func (_c *CacheEntryCreate) SetCacheType(v cacheentry.CacheType) *CacheEntryCreate {
	_c.mutation.SetCacheType(v)
	return _c
}

// SetNillableCacheType sets the "cache_type" field if the given value is not nil.
func (_c *CacheEntryCreate) SetNillableCacheType(v *cacheentry.CacheType) *CacheEntryCreate {
	if v != nil {
		_c.SetCacheType(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CacheEntryCreate) SetCreatedAt(v time.Time) *CacheEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CacheEntryCreate) SetNillableCreatedAt(v *time.Time) *CacheEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CacheEntryCreate) SetID(v string) *CacheEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_c *CacheEntryCreate) Mutation() *CacheEntryMutation {
	return _c.mutation
}

// Save creates the CacheEntry in the database.
func (_c *CacheEntryCreate) Save(ctx context.Context) (*CacheEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CacheEntryCreate) SaveX(ctx context.Context) *CacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CacheEntryCreate) defaults() {
	if _, ok := _c.mutation.CacheType(); !ok {
		v := cacheentry.DefaultCacheType
		_c.mutation.SetCacheType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := cacheentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CacheEntryCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CacheEntry.tenant_id"`)}
	}
	if _, ok := _c.mutation.UserQuery(); !ok {
		return &ValidationError{Name: "user_query", err: errors.New(`ent: missing required field "CacheEntry.user_query"`)}
	}
	if _, ok := _c.mutation.GeneratedSQL(); !ok {
		return &ValidationError{Name: "generated_sql", err: errors.New(`ent: missing required field "CacheEntry.generated_sql"`)}
	}
	if _, ok := _c.mutation.SchemaVersion(); !ok {
		return &ValidationError{Name: "schema_version", err: errors.New(`ent: missing required field "CacheEntry.schema_version"`)}
	}
	if _, ok := _c.mutation.CacheType(); !ok {
		return &ValidationError{Name: "cache_type", err: errors.New(`ent: missing required field "CacheEntry.cache_type"`)}
	}
	if v, ok := _c.mutation.CacheType(); ok {
		if err := cacheentry.CacheTypeValidator(v); err != nil {
			return &ValidationError{Name: "cache_type", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.cache_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CacheEntry.created_at"`)}
	}
	return nil
}

func (_c *CacheEntryCreate) sqlSave(ctx context.Context) (*CacheEntry, error) {
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
			return nil, fmt.Errorf("unexpected CacheEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CacheEntryCreate) createSpec() (*CacheEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &CacheEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cacheentry.Table, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(cacheentry.FieldTenantID, field.TypeInt64, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.UserQuery(); ok {
		_spec.SetField(cacheentry.FieldUserQuery, field.TypeString, value)
		_node.UserQuery = value
	}
	if value, ok := _c.mutation.QueryEmbedding(); ok {
		_spec.SetField(cacheentry.FieldQueryEmbedding, field.TypeJSON, value)
		_node.QueryEmbedding = value
	}
	if value, ok := _c.mutation.GeneratedSQL(); ok {
		_spec.SetField(cacheentry.FieldGeneratedSQL, field.TypeString, value)
		_node.GeneratedSQL = value
	}
	if value, ok := _c.mutation.SchemaVersion(); ok {
		_spec.SetField(cacheentry.FieldSchemaVersion, field.TypeString, value)
		_node.SchemaVersion = value
	}
	if value, ok := _c.mutation.CacheType(); ok {
		_spec.SetField(cacheentry.FieldCacheType, field.TypeEnum, value)
		_node.CacheType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(cacheentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CacheEntryCreateBulk is the builder for creating many CacheEntry entities in bulk.
type CacheEntryCreateBulk struct {
	config
	err      error
	builders []*CacheEntryCreate
}

// Save creates the CacheEntry entities in the database.
func (_c *CacheEntryCreateBulk) Save(ctx context.Context) ([]*CacheEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CacheEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CacheEntryMutation)
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
func (_c *CacheEntryCreateBulk) SaveX(ctx context.Context) []*CacheEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CacheEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CacheEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
