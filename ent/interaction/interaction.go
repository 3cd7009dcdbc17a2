// Code generated by ent, DO NOT EDIT.

package interaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the interaction type in the database.
	Label = "interaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "interaction_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldGeneratedSQL holds the string denoting the generated_sql field in the database.
	FieldGeneratedSQL = "generated_sql"
	// FieldResponsePayload holds the string denoting the response_payload field in the database.
	FieldResponsePayload = "response_payload"
	// FieldExecutionStatus holds the string denoting the execution_status field in the database.
	FieldExecutionStatus = "execution_status"
	// FieldErrorType holds the string denoting the error_type field in the database.
	FieldErrorType = "error_type"
	// FieldTablesUsed holds the string denoting the tables_used field in the database.
	FieldTablesUsed = "tables_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// QuerySessionFieldID holds the string denoting the ID field of the QuerySession.
	QuerySessionFieldID = "session_id"
	// Table holds the table name of the interaction in the database.
	Table = "interactions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "interactions"
	// SessionInverseTable is the table name for the QuerySession entity.
	// It exists in this package in order to avoid circular dependency with the "querysession" package.
	SessionInverseTable = "query_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for interaction fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTraceID,
	FieldTenantID,
	FieldQuestion,
	FieldGeneratedSQL,
	FieldResponsePayload,
	FieldExecutionStatus,
	FieldErrorType,
	FieldTablesUsed,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// ExecutionStatus defines the type for the "execution_status" enum field.
type ExecutionStatus string

// ExecutionStatusRunning is the default value of the ExecutionStatus enum.
const DefaultExecutionStatus = ExecutionStatusRunning

// ExecutionStatus values.
const (
	ExecutionStatusRunning   ExecutionStatus = "running"
	ExecutionStatusCompleted ExecutionStatus = "completed"
	ExecutionStatusFailed    ExecutionStatus = "failed"
)

func (es ExecutionStatus) String() string {
	return string(es)
}

// ExecutionStatusValidator is a validator for the "execution_status" field enum values. It is called by the builders before save.
func ExecutionStatusValidator(es ExecutionStatus) error {
	switch es {
	case ExecutionStatusRunning, ExecutionStatusCompleted, ExecutionStatusFailed:
		return nil
	default:
		return fmt.Errorf("interaction: invalid enum value for execution_status field: %q", es)
	}
}

// OrderOption defines the ordering options for the Interaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByGeneratedSQL orders the results by the generated_sql field.
func ByGeneratedSQL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedSQL, opts...).ToFunc()
}

// ByExecutionStatus orders the results by the execution_status field.
func ByExecutionStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExecutionStatus, opts...).ToFunc()
}

// ByErrorType orders the results by the error_type field.
func ByErrorType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, QuerySessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
