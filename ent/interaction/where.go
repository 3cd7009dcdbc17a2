// Code generated by ent, DO NOT EDIT.

package interaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/querra-ai/querra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSessionID, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTraceID, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTenantID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldQuestion, v))
}

// GeneratedSQL applies equality check predicate on the "generated_sql" field. It's identical to GeneratedSQLEQ.
func GeneratedSQL(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldGeneratedSQL, v))
}

// ErrorType applies equality check predicate on the "error_type" field. It's identical to ErrorTypeEQ.
func ErrorType(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldErrorType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldSessionID, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldTraceID, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int64) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldTenantID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldQuestion, v))
}

// GeneratedSQLEQ applies the EQ predicate on the "generated_sql" field.
func GeneratedSQLEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldGeneratedSQL, v))
}

// GeneratedSQLNEQ applies the NEQ predicate on the "generated_sql" field.
func GeneratedSQLNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldGeneratedSQL, v))
}

// GeneratedSQLIn applies the In predicate on the "generated_sql" field.
func GeneratedSQLIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldGeneratedSQL, vs...))
}

// GeneratedSQLNotIn applies the NotIn predicate on the "generated_sql" field.
func GeneratedSQLNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldGeneratedSQL, vs...))
}

// GeneratedSQLGT applies the GT predicate on the "generated_sql" field.
func GeneratedSQLGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldGeneratedSQL, v))
}

// GeneratedSQLGTE applies the GTE predicate on the "generated_sql" field.
func GeneratedSQLGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldGeneratedSQL, v))
}

// GeneratedSQLLT applies the LT predicate on the "generated_sql" field.
func GeneratedSQLLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldGeneratedSQL, v))
}

// GeneratedSQLLTE applies the LTE predicate on the "generated_sql" field.
func GeneratedSQLLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldGeneratedSQL, v))
}

// GeneratedSQLContains applies the Contains predicate on the "generated_sql" field.
func GeneratedSQLContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldGeneratedSQL, v))
}

// GeneratedSQLHasPrefix applies the HasPrefix predicate on the "generated_sql" field.
func GeneratedSQLHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldGeneratedSQL, v))
}

// GeneratedSQLHasSuffix applies the HasSuffix predicate on the "generated_sql" field.
func GeneratedSQLHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldGeneratedSQL, v))
}

// GeneratedSQLIsNil applies the IsNil predicate on the "generated_sql" field.
func GeneratedSQLIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldGeneratedSQL))
}

// GeneratedSQLNotNil applies the NotNil predicate on the "generated_sql" field.
func GeneratedSQLNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldGeneratedSQL))
}

// GeneratedSQLEqualFold applies the EqualFold predicate on the "generated_sql" field.
func GeneratedSQLEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldGeneratedSQL, v))
}

// GeneratedSQLContainsFold applies the ContainsFold predicate on the "generated_sql" field.
func GeneratedSQLContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldGeneratedSQL, v))
}

// ResponsePayloadIsNil applies the IsNil predicate on the "response_payload" field.
func ResponsePayloadIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldResponsePayload))
}

// ResponsePayloadNotNil applies the NotNil predicate on the "response_payload" field.
func ResponsePayloadNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldResponsePayload))
}

// ExecutionStatusEQ applies the EQ predicate on the "execution_status" field.
func ExecutionStatusEQ(v ExecutionStatus) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldExecutionStatus, v))
}

// ExecutionStatusNEQ applies the NEQ predicate on the "execution_status" field.
func ExecutionStatusNEQ(v ExecutionStatus) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldExecutionStatus, v))
}

// ExecutionStatusIn applies the In predicate on the "execution_status" field.
func ExecutionStatusIn(vs ...ExecutionStatus) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldExecutionStatus, vs...))
}

// ExecutionStatusNotIn applies the NotIn predicate on the "execution_status" field.
func ExecutionStatusNotIn(vs ...ExecutionStatus) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldExecutionStatus, vs...))
}

// ErrorTypeEQ applies the EQ predicate on the "error_type" field.
func ErrorTypeEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldErrorType, v))
}

// ErrorTypeNEQ applies the NEQ predicate on the "error_type" field.
func ErrorTypeNEQ(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldErrorType, v))
}

// ErrorTypeIn applies the In predicate on the "error_type" field.
func ErrorTypeIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldErrorType, vs...))
}

// ErrorTypeNotIn applies the NotIn predicate on the "error_type" field.
func ErrorTypeNotIn(vs ...string) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldErrorType, vs...))
}

// ErrorTypeGT applies the GT predicate on the "error_type" field.
func ErrorTypeGT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldErrorType, v))
}

// ErrorTypeGTE applies the GTE predicate on the "error_type" field.
func ErrorTypeGTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldErrorType, v))
}

// ErrorTypeLT applies the LT predicate on the "error_type" field.
func ErrorTypeLT(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldErrorType, v))
}

// ErrorTypeLTE applies the LTE predicate on the "error_type" field.
func ErrorTypeLTE(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldErrorType, v))
}

// ErrorTypeContains applies the Contains predicate on the "error_type" field.
func ErrorTypeContains(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContains(FieldErrorType, v))
}

// ErrorTypeHasPrefix applies the HasPrefix predicate on the "error_type" field.
func ErrorTypeHasPrefix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasPrefix(FieldErrorType, v))
}

// ErrorTypeHasSuffix applies the HasSuffix predicate on the "error_type" field.
func ErrorTypeHasSuffix(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldHasSuffix(FieldErrorType, v))
}

// ErrorTypeIsNil applies the IsNil predicate on the "error_type" field.
func ErrorTypeIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldErrorType))
}

// ErrorTypeNotNil applies the NotNil predicate on the "error_type" field.
func ErrorTypeNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldErrorType))
}

// ErrorTypeEqualFold applies the EqualFold predicate on the "error_type" field.
func ErrorTypeEqualFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldEqualFold(FieldErrorType, v))
}

// ErrorTypeContainsFold applies the ContainsFold predicate on the "error_type" field.
func ErrorTypeContainsFold(v string) predicate.Interaction {
	return predicate.Interaction(sql.FieldContainsFold(FieldErrorType, v))
}

// TablesUsedIsNil applies the IsNil predicate on the "tables_used" field.
func TablesUsedIsNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldIsNull(FieldTablesUsed))
}

// TablesUsedNotNil applies the NotNil predicate on the "tables_used" field.
func TablesUsedNotNil() predicate.Interaction {
	return predicate.Interaction(sql.FieldNotNull(FieldTablesUsed))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Interaction {
	return predicate.Interaction(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Interaction {
	return predicate.Interaction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.QuerySession) predicate.Interaction {
	return predicate.Interaction(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Interaction) predicate.Interaction {
	return predicate.Interaction(sql.NotPredicates(p))
}
