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
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/ent/predicate"
	"github.com/querra-ai/querra/ent/querysession"
)

// InteractionUpdate is the builder for updating Interaction entities.
type InteractionUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionMutation
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdate) Where(ps ...predicate.Interaction) *InteractionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionUpdate) SetSessionID(v string) *InteractionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableSessionID(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InteractionUpdate) ClearSessionID() *InteractionUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *InteractionUpdate) SetTenantID(v int64) *InteractionUpdate {
	_u.mutation.ResetTenantID()
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableTenantID(v *int64) *InteractionUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// AddTenantID adds value to the "tenant_id" field.
func (_u *InteractionUpdate) AddTenantID(v int64) *InteractionUpdate {
	_u.mutation.AddTenantID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *InteractionUpdate) SetQuestion(v string) *InteractionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableQuestion(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_u *InteractionUpdate) SetGeneratedSQL(v string) *InteractionUpdate {
	_u.mutation.SetGeneratedSQL(v)
	return _u
}

// SetNillableGeneratedSQL sets the "generated_sql" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableGeneratedSQL(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetGeneratedSQL(*v)
	}
	return _u
}

// ClearGeneratedSQL clears the value of the "generated_sql" field.
func (_u *InteractionUpdate) ClearGeneratedSQL() *InteractionUpdate {
	_u.mutation.ClearGeneratedSQL()
	return _u
}

// SetResponsePayload sets the "response_payload" field.
func (_u *InteractionUpdate) SetResponsePayload(v map[string]interface{}) *InteractionUpdate {
	_u.mutation.SetResponsePayload(v)
	return _u
}

// ClearResponsePayload clears the value of the "response_payload" field.
func (_u *InteractionUpdate) ClearResponsePayload() *InteractionUpdate {
	_u.mutation.ClearResponsePayload()
	return _u
}

// SetExecutionStatus sets the "execution_status" field.
func (_u *InteractionUpdate) SetExecutionStatus(v interaction.ExecutionStatus) *InteractionUpdate {
	_u.mutation.SetExecutionStatus(v)
	return _u
}

// SetNillableExecutionStatus sets the "execution_status" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableExecutionStatus(v *interaction.ExecutionStatus) *InteractionUpdate {
	if v != nil {
		_u.SetExecutionStatus(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *InteractionUpdate) SetErrorType(v string) *InteractionUpdate {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *InteractionUpdate) SetNillableErrorType(v *string) *InteractionUpdate {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *InteractionUpdate) ClearErrorType() *InteractionUpdate {
	_u.mutation.ClearErrorType()
	return _u
}

// SetTablesUsed sets the "tables_used" field.
func (_u *InteractionUpdate) SetTablesUsed(v []string) *InteractionUpdate {
	_u.mutation.SetTablesUsed(v)
	return _u
}

// AppendTablesUsed appends value to the "tables_used" field.
func (_u *InteractionUpdate) AppendTablesUsed(v []string) *InteractionUpdate {
	_u.mutation.AppendTablesUsed(v)
	return _u
}

// ClearTablesUsed clears the value of the "tables_used" field.
func (_u *InteractionUpdate) ClearTablesUsed() *InteractionUpdate {
	_u.mutation.ClearTablesUsed()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InteractionUpdate) SetUpdatedAt(v time.Time) *InteractionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the QuerySession entity.
func (_u *InteractionUpdate) SetSession(v *QuerySession) *InteractionUpdate {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdate) Mutation() *InteractionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the QuerySession entity.
func (_u *InteractionUpdate) ClearSession() *InteractionUpdate {
	_u.mutation.ClearSession()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InteractionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdate) check() error {
	if v, ok := _u.mutation.ExecutionStatus(); ok {
		if err := interaction.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "Interaction.execution_status": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TenantID(); ok {
		_spec.SetField(interaction.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTenantID(); ok {
		_spec.AddField(interaction.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(interaction.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedSQL(); ok {
		_spec.SetField(interaction.FieldGeneratedSQL, field.TypeString, value)
	}
	if _u.mutation.GeneratedSQLCleared() {
		_spec.ClearField(interaction.FieldGeneratedSQL, field.TypeString)
	}
	if value, ok := _u.mutation.ResponsePayload(); ok {
		_spec.SetField(interaction.FieldResponsePayload, field.TypeJSON, value)
	}
	if _u.mutation.ResponsePayloadCleared() {
		_spec.ClearField(interaction.FieldResponsePayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionStatus(); ok {
		_spec.SetField(interaction.FieldExecutionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(interaction.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(interaction.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.TablesUsed(); ok {
		_spec.SetField(interaction.FieldTablesUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTablesUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interaction.FieldTablesUsed, value)
		})
	}
	if _u.mutation.TablesUsedCleared() {
		_spec.ClearField(interaction.FieldTablesUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionUpdateOne is the builder for updating a single Interaction entity.
type InteractionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *InteractionUpdateOne) SetSessionID(v string) *InteractionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableSessionID(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *InteractionUpdateOne) ClearSessionID() *InteractionUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *InteractionUpdateOne) SetTenantID(v int64) *InteractionUpdateOne {
	_u.mutation.ResetTenantID()
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableTenantID(v *int64) *InteractionUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// AddTenantID adds value to the "tenant_id" field.
func (_u *InteractionUpdateOne) AddTenantID(v int64) *InteractionUpdateOne {
	_u.mutation.AddTenantID(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *InteractionUpdateOne) SetQuestion(v string) *InteractionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableQuestion(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetGeneratedSQL sets the "generated_sql" field.
func (_u *InteractionUpdateOne) SetGeneratedSQL(v string) *InteractionUpdateOne {
	_u.mutation.SetGeneratedSQL(v)
	return _u
}

// SetNillableGeneratedSQL sets the "generated_sql" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableGeneratedSQL(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetGeneratedSQL(*v)
	}
	return _u
}

// ClearGeneratedSQL clears the value of the "generated_sql" field.
func (_u *InteractionUpdateOne) ClearGeneratedSQL() *InteractionUpdateOne {
	_u.mutation.ClearGeneratedSQL()
	return _u
}

// SetResponsePayload sets the "response_payload" field.
func (_u *InteractionUpdateOne) SetResponsePayload(v map[string]interface{}) *InteractionUpdateOne {
	_u.mutation.SetResponsePayload(v)
	return _u
}

// ClearResponsePayload clears the value of the "response_payload" field.
func (_u *InteractionUpdateOne) ClearResponsePayload() *InteractionUpdateOne {
	_u.mutation.ClearResponsePayload()
	return _u
}

// SetExecutionStatus sets the "execution_status" field.
func (_u *InteractionUpdateOne) SetExecutionStatus(v interaction.ExecutionStatus) *InteractionUpdateOne {
	_u.mutation.SetExecutionStatus(v)
	return _u
}

// SetNillableExecutionStatus sets the "execution_status" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableExecutionStatus(v *interaction.ExecutionStatus) *InteractionUpdateOne {
	if v != nil {
		_u.SetExecutionStatus(*v)
	}
	return _u
}

// SetErrorType sets the "error_type" field.
func (_u *InteractionUpdateOne) SetErrorType(v string) *InteractionUpdateOne {
	_u.mutation.SetErrorType(v)
	return _u
}

// SetNillableErrorType sets the "error_type" field if the given value is not nil.
func (_u *InteractionUpdateOne) SetNillableErrorType(v *string) *InteractionUpdateOne {
	if v != nil {
		_u.SetErrorType(*v)
	}
	return _u
}

// ClearErrorType clears the value of the "error_type" field.
func (_u *InteractionUpdateOne) ClearErrorType() *InteractionUpdateOne {
	_u.mutation.ClearErrorType()
	return _u
}

// SetTablesUsed sets the "tables_used" field.
func (_u *InteractionUpdateOne) SetTablesUsed(v []string) *InteractionUpdateOne {
	_u.mutation.SetTablesUsed(v)
	return _u
}

// AppendTablesUsed appends value to the "tables_used" field.
func (_u *InteractionUpdateOne) AppendTablesUsed(v []string) *InteractionUpdateOne {
	_u.mutation.AppendTablesUsed(v)
	return _u
}

// ClearTablesUsed clears the value of the "tables_used" field.
func (_u *InteractionUpdateOne) ClearTablesUsed() *InteractionUpdateOne {
	_u.mutation.ClearTablesUsed()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InteractionUpdateOne) SetUpdatedAt(v time.Time) *InteractionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetSession sets the "session" edge to the QuerySession entity.
func (_u *InteractionUpdateOne) SetSession(v *QuerySession) *InteractionUpdateOne {
	return _u.SetSessionID(v.ID)
}

// Mutation returns the InteractionMutation object of the builder.
func (_u *InteractionUpdateOne) Mutation() *InteractionMutation {
	return _u.mutation
}

// ClearSession clears the "session" edge to the QuerySession entity.
func (_u *InteractionUpdateOne) ClearSession() *InteractionUpdateOne {
	_u.mutation.ClearSession()
	return _u
}

// Where appends a list predicates to the InteractionUpdate builder.
func (_u *InteractionUpdateOne) Where(ps ...predicate.Interaction) *InteractionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionUpdateOne) Select(field string, fields ...string) *InteractionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interaction entity.
func (_u *InteractionUpdateOne) Save(ctx context.Context) (*Interaction, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionUpdateOne) SaveX(ctx context.Context) *Interaction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InteractionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := interaction.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionUpdateOne) check() error {
	if v, ok := _u.mutation.ExecutionStatus(); ok {
		if err := interaction.ExecutionStatusValidator(v); err != nil {
			return &ValidationError{Name: "execution_status", err: fmt.Errorf(`ent: validator failed for field "Interaction.execution_status": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionUpdateOne) sqlSave(ctx context.Context) (_node *Interaction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interaction.Table, interaction.Columns, sqlgraph.NewFieldSpec(interaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interaction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interaction.FieldID)
		for _, f := range fields {
			if !interaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interaction.FieldID {
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
		_spec.SetField(interaction.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTenantID(); ok {
		_spec.AddField(interaction.FieldTenantID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(interaction.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GeneratedSQL(); ok {
		_spec.SetField(interaction.FieldGeneratedSQL, field.TypeString, value)
	}
	if _u.mutation.GeneratedSQLCleared() {
		_spec.ClearField(interaction.FieldGeneratedSQL, field.TypeString)
	}
	if value, ok := _u.mutation.ResponsePayload(); ok {
		_spec.SetField(interaction.FieldResponsePayload, field.TypeJSON, value)
	}
	if _u.mutation.ResponsePayloadCleared() {
		_spec.ClearField(interaction.FieldResponsePayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.ExecutionStatus(); ok {
		_spec.SetField(interaction.FieldExecutionStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorType(); ok {
		_spec.SetField(interaction.FieldErrorType, field.TypeString, value)
	}
	if _u.mutation.ErrorTypeCleared() {
		_spec.ClearField(interaction.FieldErrorType, field.TypeString)
	}
	if value, ok := _u.mutation.TablesUsed(); ok {
		_spec.SetField(interaction.FieldTablesUsed, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTablesUsed(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interaction.FieldTablesUsed, value)
		})
	}
	if _u.mutation.TablesUsedCleared() {
		_spec.ClearField(interaction.FieldTablesUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(interaction.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.SessionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Interaction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
