// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/querra-ai/querra/ent/predicate"
	"github.com/querra-ai/querra/ent/querypair"
)

// QueryPairUpdate is the builder for updating QueryPair entities.
type QueryPairUpdate struct {
	config
	hooks    []Hook
	mutation *QueryPairMutation
}

// Where appends a list predicates to the QueryPairUpdate builder.
func (_u *QueryPairUpdate) Where(ps ...predicate.QueryPair) *QueryPairUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSignatureKey sets the "signature_key" field.
func (_u *QueryPairUpdate) SetSignatureKey(v string) *QueryPairUpdate {
	_u.mutation.SetSignatureKey(v)
	return _u
}

// SetNillableSignatureKey sets the "signature_key" field if the given value is not nil.
func (_u *QueryPairUpdate) SetNillableSignatureKey(v *string) *QueryPairUpdate {
	if v != nil {
		_u.SetSignatureKey(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *QueryPairUpdate) SetTenantID(v int64) *QueryPairUpdate {
	_u.mutation.ResetTenantID()
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *QueryPairUpdate) SetNillableTenantID(v *int64) *QueryPairUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// AddTenantID adds value to the "tenant_id" field.
func (_u *QueryPairUpdate) AddTenantID(v int64) *QueryPairUpdate {
	_u.mutation.AddTenantID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QueryPairUpdate) SetQuestion(v string) *QueryPairUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QueryPairUpdate) SetNillableQuestion(v *string) *QueryPairUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetSQLQuery sets the "sql_query" field.
func (_u *QueryPairUpdate) SetSQLQuery(v string) *QueryPairUpdate {
	_u.mutation.SetSQLQuery(v)
	return _u
}

// SetNillableSQLQuery sets the "sql_query" field if the given value is not nil.
func (_u *QueryPairUpdate) SetNillableSQLQuery(v *string) *QueryPairUpdate {
	if v != nil {
		_u.SetSQLQuery(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *QueryPairUpdate) SetEmbedding(v []float32) *QueryPairUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *QueryPairUpdate) AppendEmbedding(v []float32) *QueryPairUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *QueryPairUpdate) ClearEmbedding() *QueryPairUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetRoles sets the "roles" field.
func (_u *QueryPairUpdate) SetRoles(v []string) *QueryPairUpdate {
	_u.mutation.SetRoles(v)
	return _u
}

// AppendRoles appends value to the "roles" field.
func (_u *QueryPairUpdate) AppendRoles(v []string) *QueryPairUpdate {
	_u.mutation.AppendRoles(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueryPairUpdate) SetStatus(v querypair.Status) *QueryPairUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueryPairUpdate) SetNillableStatus(v *querypair.Status) *QueryPairUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *QueryPairUpdate) SetMetadata(v map[string]interface{}) *QueryPairUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *QueryPairUpdate) ClearMetadata() *QueryPairUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPerformance sets the "performance" field.
func (_u *QueryPairUpdate) SetPerformance(v map[string]interface{}) *QueryPairUpdate {
	_u.mutation.SetPerformance(v)
	return _u
}

// ClearPerformance clears the value of the "performance" field.
func (_u *QueryPairUpdate) ClearPerformance() *QueryPairUpdate {
	_u.mutation.ClearPerformance()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueryPairUpdate) SetUpdatedAt(v time.Time) *QueryPairUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueryPairMutation object of the builder.
func (_u *QueryPairUpdate) Mutation() *QueryPairMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueryPairUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryPairUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueryPairUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryPairUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueryPairUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := querypair.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueryPairUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := querypair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueryPair.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueryPairUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(querypair.Table, querypair.Columns, sqlgraph.NewFieldSpec(querypair.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SignatureKey(); ok {
		_spec.SetField(querypair.FieldSignatureKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(querypair.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTenantID(); ok {
		_spec.AddField(querypair.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(querypair.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.SQLQuery(); ok {
		_spec.SetField(querypair.FieldSQLQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(querypair.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, querypair.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(querypair.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Roles(); ok {
		_spec.SetField(querypair.FieldRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, querypair.FieldRoles, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(querypair.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(querypair.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(querypair.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Performance(); ok {
		_spec.SetField(querypair.FieldPerformance, field.TypeJSON, value)
	}
	if _u.mutation.PerformanceCleared() {
		_spec.ClearField(querypair.FieldPerformance, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(querypair.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{querypair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueryPairUpdateOne is the builder for updating a single QueryPair entity.
type QueryPairUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueryPairMutation
}

// SetSignatureKey sets the "signature_key" field.
func (_u *QueryPairUpdateOne) SetSignatureKey(v string) *QueryPairUpdateOne {
	_u.mutation.SetSignatureKey(v)
	return _u
}

// SetNillableSignatureKey sets the "signature_key" field if the given value is not nil.
func (_u *QueryPairUpdateOne) SetNillableSignatureKey(v *string) *QueryPairUpdateOne {
	if v != nil {
		_u.SetSignatureKey(*v)
	}
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *QueryPairUpdateOne) SetTenantID(v int64) *QueryPairUpdateOne {
	_u.mutation.ResetTenantID()
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *QueryPairUpdateOne) SetNillableTenantID(v *int64) *QueryPairUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// AddTenantID adds value to the "tenant_id" field.
func (_u *QueryPairUpdateOne) AddTenantID(v int64) *QueryPairUpdateOne {
	_u.mutation.AddTenantID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QueryPairUpdateOne) SetQuestion(v string) *QueryPairUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QueryPairUpdateOne) SetNillableQuestion(v *string) *QueryPairUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetSQLQuery sets the "sql_query" field.
func (_u *QueryPairUpdateOne) SetSQLQuery(v string) *QueryPairUpdateOne {
	_u.mutation.SetSQLQuery(v)
	return _u
}

// SetNillableSQLQuery sets the "sql_query" field if the given value is not nil.
func (_u *QueryPairUpdateOne) SetNillableSQLQuery(v *string) *QueryPairUpdateOne {
	if v != nil {
		_u.SetSQLQuery(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *QueryPairUpdateOne) SetEmbedding(v []float32) *QueryPairUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *QueryPairUpdateOne) AppendEmbedding(v []float32) *QueryPairUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *QueryPairUpdateOne) ClearEmbedding() *QueryPairUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// SetRoles sets the "roles" field.
func (_u *QueryPairUpdateOne) SetRoles(v []string) *QueryPairUpdateOne {
	_u.mutation.SetRoles(v)
	return _u
}

// AppendRoles appends value to the "roles" field.
func (_u *QueryPairUpdateOne) AppendRoles(v []string) *QueryPairUpdateOne {
	_u.mutation.AppendRoles(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueryPairUpdateOne) SetStatus(v querypair.Status) *QueryPairUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueryPairUpdateOne) SetNillableStatus(v *querypair.Status) *QueryPairUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *QueryPairUpdateOne) SetMetadata(v map[string]interface{}) *QueryPairUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *QueryPairUpdateOne) ClearMetadata() *QueryPairUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetPerformance sets the "performance" field.
func (_u *QueryPairUpdateOne) SetPerformance(v map[string]interface{}) *QueryPairUpdateOne {
	_u.mutation.SetPerformance(v)
	return _u
}

// ClearPerformance clears the value of the "performance" field.
func (_u *QueryPairUpdateOne) ClearPerformance() *QueryPairUpdateOne {
	_u.mutation.ClearPerformance()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *QueryPairUpdateOne) SetUpdatedAt(v time.Time) *QueryPairUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the QueryPairMutation object of the builder.
func (_u *QueryPairUpdateOne) Mutation() *QueryPairMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueryPairUpdate builder.
func (_u *QueryPairUpdateOne) Where(ps ...predicate.QueryPair) *QueryPairUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueryPairUpdateOne) Select(field string, fields ...string) *QueryPairUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueryPair entity.
func (_u *QueryPairUpdateOne) Save(ctx context.Context) (*QueryPair, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueryPairUpdateOne) SaveX(ctx context.Context) *QueryPair {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueryPairUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueryPairUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *QueryPairUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := querypair.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QueryPairUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := querypair.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "QueryPair.status": %w`, err)}
		}
	}
	return nil
}

func (_u *QueryPairUpdateOne) sqlSave(ctx context.Context) (_node *QueryPair, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(querypair.Table, querypair.Columns, sqlgraph.NewFieldSpec(querypair.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueryPair.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, querypair.FieldID)
		for _, f := range fields {
			if !querypair.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != querypair.FieldID {
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
	if value, ok := _u.mutation.SignatureKey(); ok {
		_spec.SetField(querypair.FieldSignatureKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(querypair.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTenantID(); ok {
		_spec.AddField(querypair.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(querypair.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.SQLQuery(); ok {
		_spec.SetField(querypair.FieldSQLQuery, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(querypair.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, querypair.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(querypair.FieldEmbedding, field.TypeJSON)
	}
	if value, ok := _u.mutation.Roles(); ok {
		_spec.SetField(querypair.FieldRoles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRoles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, querypair.FieldRoles, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(querypair.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(querypair.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(querypair.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.Performance(); ok {
		_spec.SetField(querypair.FieldPerformance, field.TypeJSON, value)
	}
	if _u.mutation.PerformanceCleared() {
		_spec.ClearField(querypair.FieldPerformance, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(querypair.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &QueryPair{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{querypair.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
