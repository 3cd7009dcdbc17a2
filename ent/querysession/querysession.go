// Code generated by ent, DO NOT EDIT.

package querysession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the querysession type in the database.
	Label = "query_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFinalSQL holds the string denoting the final_sql field in the database.
	FieldFinalSQL = "final_sql"
	// FieldResultPayload holds the string denoting the result_payload field in the database.
	FieldResultPayload = "result_payload"
	// FieldFinalAnswer holds the string denoting the final_answer field in the database.
	FieldFinalAnswer = "final_answer"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorCode holds the string denoting the error_code field in the database.
	FieldErrorCode = "error_code"
	// FieldClarificationQuestion holds the string denoting the clarification_question field in the database.
	FieldClarificationQuestion = "clarification_question"
	// FieldClarificationAnswer holds the string denoting the clarification_answer field in the database.
	FieldClarificationAnswer = "clarification_answer"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldRequeueCount holds the string denoting the requeue_count field in the database.
	FieldRequeueCount = "requeue_count"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldSchemaSnapshotID holds the string denoting the schema_snapshot_id field in the database.
	FieldSchemaSnapshotID = "schema_snapshot_id"
	// FieldPageSize holds the string denoting the page_size field in the database.
	FieldPageSize = "page_size"
	// FieldPageToken holds the string denoting the page_token field in the database.
	FieldPageToken = "page_token"
	// FieldSeed holds the string denoting the seed field in the database.
	FieldSeed = "seed"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeInteractions holds the string denoting the interactions edge name in mutations.
	EdgeInteractions = "interactions"
	// InteractionFieldID holds the string denoting the ID field of the Interaction.
	InteractionFieldID = "interaction_id"
	// Table holds the table name of the querysession in the database.
	Table = "query_sessions"
	// InteractionsTable is the table that holds the interactions relation/edge.
	InteractionsTable = "interactions"
	// InteractionsInverseTable is the table name for the Interaction entity.
	// It exists in this package in order to avoid circular dependency with the "interaction" package.
	InteractionsInverseTable = "interactions"
	// InteractionsColumn is the table column denoting the interactions relation/edge.
	InteractionsColumn = "session_id"
)

// Columns holds all SQL columns for querysession fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldQuestion,
	FieldStatus,
	FieldFinalSQL,
	FieldResultPayload,
	FieldFinalAnswer,
	FieldErrorMessage,
	FieldErrorCode,
	FieldClarificationQuestion,
	FieldClarificationAnswer,
	FieldPodID,
	FieldRequeueCount,
	FieldTraceID,
	FieldSchemaSnapshotID,
	FieldPageSize,
	FieldPageToken,
	FieldSeed,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldLastInteractionAt,
	FieldDeletedAt,
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
	// DefaultRequeueCount holds the default value on creation for the "requeue_count" field.
	DefaultRequeueCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending               Status = "pending"
	StatusInProgress            Status = "in_progress"
	StatusAwaitingClarification Status = "awaiting_clarification"
	StatusCompleted             Status = "completed"
	StatusFailed                Status = "failed"
	StatusCancelled             Status = "cancelled"
	StatusTimedOut              Status = "timed_out"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusInProgress, StatusAwaitingClarification, StatusCompleted, StatusFailed, StatusCancelled, StatusTimedOut:
		return nil
	default:
		return fmt.Errorf("querysession: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QuerySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFinalSQL orders the results by the final_sql field.
func ByFinalSQL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalSQL, opts...).ToFunc()
}

// ByFinalAnswer orders the results by the final_answer field.
func ByFinalAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalAnswer, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorCode orders the results by the error_code field.
func ByErrorCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorCode, opts...).ToFunc()
}

// ByClarificationQuestion orders the results by the clarification_question field.
func ByClarificationQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClarificationQuestion, opts...).ToFunc()
}

// ByClarificationAnswer orders the results by the clarification_answer field.
func ByClarificationAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClarificationAnswer, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByRequeueCount orders the results by the requeue_count field.
func ByRequeueCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequeueCount, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// BySchemaSnapshotID orders the results by the schema_snapshot_id field.
func BySchemaSnapshotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaSnapshotID, opts...).ToFunc()
}

// ByPageSize orders the results by the page_size field.
func ByPageSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageSize, opts...).ToFunc()
}

// ByPageToken orders the results by the page_token field.
func ByPageToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPageToken, opts...).ToFunc()
}

// BySeed orders the results by the seed field.
func BySeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByInteractionsCount orders the results by interactions count.
func ByInteractionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInteractionsStep(), opts...)
	}
}

// ByInteractions orders the results by interactions terms.
func ByInteractions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInteractionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInteractionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InteractionsInverseTable, InteractionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InteractionsTable, InteractionsColumn),
	)
}
