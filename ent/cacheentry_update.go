// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/querra-ai/querra/ent/cacheentry"
	"github.com/querra-ai/querra/ent/predicate"
)

// CacheEntryUpdate is the builder for updating CacheEntry entities.
type CacheEntryUpdate struct {
	config
	hooks    []Hook
	mutation *CacheEntryMutation
}

// Where appends a list predicates to the CacheEntryUpdate builder.
func (_u *CacheEntryUpdate) Where(ps ...predicate.CacheEntry) *CacheEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *CacheEntryUpdate) SetTenantID(v int64) *CacheEntryUpdate {
	_u.mutation.ResetTenantID()
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableTenantID(v *int64) *CacheEntryUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// AddTenantID adds value to the "tenant_id" field.
func (_u *CacheEntryUpdate) AddTenantID(v int64) *CacheEntryUpdate {
	_u.mutation.AddTenantID(v)
	return _u
}

// SetUserQuery sets the "user_query" field.
func (_u *CacheEntryUpdate) SetUserQuery(v string) *CacheEntryUpdate {
	_u.mutation.SetUserQuery(v)
	return _u
}

// SetNillableUserQuery sets the "user_query" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableUserQuery(v *string) *CacheEntryUpdate {
	if v != nil {
		_u.SetUserQuery(*v)
	}
	return _u
}

// SetQueryEmbedding sets the "query_embedding" field.
func (_u *CacheEntryUpdate) SetQueryEmbedding(v []float32) *CacheEntryUpdate {
	_u.mutation.SetQueryEmbedding(v)
	return _u
}

// AppendQueryEmbedding appends value to the "query_embedding" field.
func (_u *CacheEntryUpdate) AppendQueryEmbedding(v []float32) *CacheEntryUpdate {
	_u.mutation.AppendQueryEmbedding(v)
	return _u
}

// ClearQueryEmbedding clears the value of the "query_embedding" field.
func (_u *CacheEntryUpdate) ClearQueryEmbedding() *CacheEntryUpdate {
	_u.mutation.ClearQueryEmbedding()
	return _u
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_u *CacheEntryUpdate) SetGeneratedSQL(v string) *CacheEntryUpdate {
	_u.mutation.SetGeneratedSQL(v)
	return _u
}

// SetNillableGeneratedSQL sets the "generated_sql" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableGeneratedSQL(v *string) *CacheEntryUpdate {
	if v != nil {
		_u.SetGeneratedSQL(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *CacheEntryUpdate) SetSchemaVersion(v string) *CacheEntryUpdate {
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableSchemaVersion(v *string) *CacheEntryUpdate {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// SetCacheType sets the "cache_type" field.
func (_u *CacheEntryUpdate) SetCacheType(v cacheentry.CacheType) *CacheEntryUpdate {
	_u.mutation.SetCacheType(v)
	return _u
}

// SetNillableCacheType sets the "cache_type" field if the given value is not nil.
func (_u *CacheEntryUpdate) SetNillableCacheType(v *cacheentry.CacheType) *CacheEntryUpdate {
	if v != nil {
		_u.SetCacheType(*v)
	}
	return _u
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_u *CacheEntryUpdate) Mutation() *CacheEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CacheEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CacheEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CacheEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CacheEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CacheEntryUpdate) check() error {
	if v, ok := _u.mutation.CacheType(); ok {
		if err := cacheentry.CacheTypeValidator(v); err != nil {
			return &ValidationError{Name: "cache_type", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.cache_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CacheEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cacheentry.Table, cacheentry.Columns, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(cacheentry.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTenantID(); ok {
		_spec.AddField(cacheentry.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UserQuery(); ok {
		_spec.SetField(cacheentry.FieldUserQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryEmbedding(); ok {
		_spec.SetField(cacheentry.FieldQueryEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQueryEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cacheentry.FieldQueryEmbedding, value)
		})
	}
	if _u.mutation.QueryEmbeddingCleared() {
		_spec.ClearField(cacheentry.FieldQueryEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedSQL(); ok {
		_spec.SetField(cacheentry.FieldGeneratedSQL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(cacheentry.FieldSchemaVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CacheType(); ok {
		_spec.SetField(cacheentry.FieldCacheType, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CacheEntryUpdateOne is the builder for updating a single CacheEntry entity.
type CacheEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CacheEntryMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *CacheEntryUpdateOne) SetTenantID(v int64) *CacheEntryUpdateOne {
	_u.mutation.ResetTenantID()
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableTenantID(v *int64) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// AddTenantID adds value to the "tenant_id" field.
func (_u *CacheEntryUpdateOne) AddTenantID(v int64) *CacheEntryUpdateOne {
	_u.mutation.AddTenantID(v)
	return _u
}

// SetUserQuery sets the "user_query" field.
func (_u *CacheEntryUpdateOne) SetUserQuery(v string) *CacheEntryUpdateOne {
	_u.mutation.SetUserQuery(v)
	return _u
}

// SetNillableUserQuery sets the "user_query" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableUserQuery(v *string) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetUserQuery(*v)
	}
	return _u
}

// SetQueryEmbedding sets the "query_embedding" field.
func (_u *CacheEntryUpdateOne) SetQueryEmbedding(v []float32) *CacheEntryUpdateOne {
	_u.mutation.SetQueryEmbedding(v)
	return _u
}

// AppendQueryEmbedding appends value to the "query_embedding" field.
func (_u *CacheEntryUpdateOne) AppendQueryEmbedding(v []float32) *CacheEntryUpdateOne {
	_u.mutation.AppendQueryEmbedding(v)
	return _u
}

// ClearQueryEmbedding clears the value of the "query_embedding" field.
func (_u *CacheEntryUpdateOne) ClearQueryEmbedding() *CacheEntryUpdateOne {
	_u.mutation.ClearQueryEmbedding()
	return _u
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_u *CacheEntryUpdateOne) SetGeneratedSQL(v string) *CacheEntryUpdateOne {
	_u.mutation.SetGeneratedSQL(v)
	return _u
}

// SetNillableGeneratedSQL sets the "generated_sql" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableGeneratedSQL(v *string) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetGeneratedSQL(*v)
	}
	return _u
}

// SetSchemaVersion sets the "schema_version" field.
func (_u *CacheEntryUpdateOne) SetSchemaVersion(v string) *CacheEntryUpdateOne {
	_u.mutation.SetSchemaVersion(v)
	return _u
}

// SetNillableSchemaVersion sets the "schema_version" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableSchemaVersion(v *string) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetSchemaVersion(*v)
	}
	return _u
}

// SetCacheType sets the "cache_type" field.
func (_u *CacheEntryUpdateOne) SetCacheType(v cacheentry.CacheType) *CacheEntryUpdateOne {
	_u.mutation.SetCacheType(v)
	return _u
}

// SetNillableCacheType sets the "cache_type" field if the given value is not nil.
func (_u *CacheEntryUpdateOne) SetNillableCacheType(v *cacheentry.CacheType) *CacheEntryUpdateOne {
	if v != nil {
		_u.SetCacheType(*v)
	}
	return _u
}

// Mutation returns the CacheEntryMutation object of the builder.
func (_u *CacheEntryUpdateOne) Mutation() *CacheEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the CacheEntryUpdate builder.
func (_u *CacheEntryUpdateOne) Where(ps ...predicate.CacheEntry) *CacheEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CacheEntryUpdateOne) Select(field string, fields ...string) *CacheEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CacheEntry entity.
func (_u *CacheEntryUpdateOne) Save(ctx context.Context) (*CacheEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CacheEntryUpdateOne) SaveX(ctx context.Context) *CacheEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CacheEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CacheEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CacheEntryUpdateOne) check() error {
	if v, ok := _u.mutation.CacheType(); ok {
		if err := cacheentry.CacheTypeValidator(v); err != nil {
			return &ValidationError{Name: "cache_type", err: fmt.Errorf(`ent: validator failed for field "CacheEntry.cache_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CacheEntryUpdateOne) sqlSave(ctx context.Context) (_node *CacheEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(cacheentry.Table, cacheentry.Columns, sqlgraph.NewFieldSpec(cacheentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CacheEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cacheentry.FieldID)
		for _, f := range fields {
			if !cacheentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cacheentry.FieldID {
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
		_spec.SetField(cacheentry.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTenantID(); ok {
		_spec.AddField(cacheentry.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UserQuery(); ok {
		_spec.SetField(cacheentry.FieldUserQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.QueryEmbedding(); ok {
		_spec.SetField(cacheentry.FieldQueryEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQueryEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, cacheentry.FieldQueryEmbedding, value)
		})
	}
	if _u.mutation.QueryEmbeddingCleared() {
		_spec.ClearField(cacheentry.FieldQueryEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.GeneratedSQL(); ok {
		_spec.SetField(cacheentry.FieldGeneratedSQL, field.TypeString, value)
	}
	if value, ok := _u.mutation.SchemaVersion(); ok {
		_spec.SetField(cacheentry.FieldSchemaVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CacheType(); ok {
		_spec.SetField(cacheentry.FieldCacheType, field.TypeEnum, value)
	}
	_node = &CacheEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cacheentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
