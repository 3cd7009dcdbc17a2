// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/querra-ai/querra/ent/querysession"
)

// QuerySession is the model entity for the QuerySession schema.
type QuerySession struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Tenant scope for every query in this session
	TenantID int64 `json:"tenant_id,omitempty"`
	// Original natural-language question
	Question string `json:"question,omitempty"`
	// Status holds the value of the "status" field.
	Status querysession.Status `json:"status,omitempty"`
	// Generated SQL that produced the final result, before tenant rewrite
	FinalSQL *string `json:"final_sql,omitempty"`
	// Terminal query result (rows + completeness metadata)
	ResultPayload map[string]interface{} `json:"result_payload,omitempty"`
	// Synthesized natural-language answer
	FinalAnswer *string `json:"final_answer,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Canonical taxonomy code when the run failed
	ErrorCode *string `json:"error_code,omitempty"`
	// Set while status=awaiting_clarification
	ClarificationQuestion *string `json:"clarification_question,omitempty"`
	// User answer awaiting consumption by the resumed workflow
	ClarificationAnswer *string `json:"clarification_answer,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Times an orphan scan returned this session to the queue
	RequeueCount int `json:"requeue_count,omitempty"`
	// TraceID holds the value of the "trace_id" field.
	TraceID *string `json:"trace_id,omitempty"`
	// SchemaSnapshotID holds the value of the "schema_snapshot_id" field.
	SchemaSnapshotID *string `json:"schema_snapshot_id,omitempty"`
	// PageSize holds the value of the "page_size" field.
	PageSize *int `json:"page_size,omitempty"`
	// Continuation cursor supplied by the caller
	PageToken *string `json:"page_token,omitempty"`
	// Determinism seed for replay
	Seed *int64 `json:"seed,omitempty"`
	// When the question was submitted
	CreatedAt time.Time `json:"created_at,omitempty"`
	// When a worker claimed the session (pending to in_progress)
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Heartbeat timestamp for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Soft delete for retention policy
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuerySessionQuery when eager-loading is set.
	Edges        QuerySessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuerySessionEdges holds the relations/edges for other nodes in the graph.
type QuerySessionEdges struct {
	// Interactions holds the value of the interactions edge.
	Interactions []*Interaction `json:"interactions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InteractionsOrErr returns the Interactions value or an error if the edge
// was not loaded in eager-loading.
func (e QuerySessionEdges) InteractionsOrErr() ([]*Interaction, error) {
	if e.loadedTypes[0] {
		return e.Interactions, nil
	}
	return nil, &NotLoadedError{edge: "interactions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuerySession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case querysession.FieldResultPayload:
			values[i] = new([]byte)
		case querysession.FieldTenantID, querysession.FieldRequeueCount, querysession.FieldPageSize, querysession.FieldSeed:
			values[i] = new(sql.NullInt64)
		case querysession.FieldID, querysession.FieldQuestion, querysession.FieldStatus, querysession.FieldFinalSQL, querysession.FieldFinalAnswer, querysession.FieldErrorMessage, querysession.FieldErrorCode, querysession.FieldClarificationQuestion, querysession.FieldClarificationAnswer, querysession.FieldPodID, querysession.FieldTraceID, querysession.FieldSchemaSnapshotID, querysession.FieldPageToken:
			values[i] = new(sql.NullString)
		case querysession.FieldCreatedAt, querysession.FieldStartedAt, querysession.FieldCompletedAt, querysession.FieldLastInteractionAt, querysession.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuerySession fields.
func (_m *QuerySession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case querysession.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case querysession.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.Int64
			}
		case querysession.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case querysession.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = querysession.Status(value.String)
			}
		case querysession.FieldFinalSQL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_sql", values[i])
			} else if value.Valid {
				_m.FinalSQL = new(string)
				*_m.FinalSQL = value.String
			}
		case querysession.FieldResultPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResultPayload); err != nil {
					return fmt.Errorf("unmarshal field result_payload: %w", err)
				}
			}
		case querysession.FieldFinalAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field final_answer", values[i])
			} else if value.Valid {
				_m.FinalAnswer = new(string)
				*_m.FinalAnswer = value.String
			}
		case querysession.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case querysession.FieldErrorCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_code", values[i])
			} else if value.Valid {
				_m.ErrorCode = new(string)
				*_m.ErrorCode = value.String
			}
		case querysession.FieldClarificationQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clarification_question", values[i])
			} else if value.Valid {
				_m.ClarificationQuestion = new(string)
				*_m.ClarificationQuestion = value.String
			}
		case querysession.FieldClarificationAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field clarification_answer", values[i])
			} else if value.Valid {
				_m.ClarificationAnswer = new(string)
				*_m.ClarificationAnswer = value.String
			}
		case querysession.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case querysession.FieldRequeueCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field requeue_count", values[i])
			} else if value.Valid {
				_m.RequeueCount = int(value.Int64)
			}
		case querysession.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = new(string)
				*_m.TraceID = value.String
			}
		case querysession.FieldSchemaSnapshotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schema_snapshot_id", values[i])
			} else if value.Valid {
				_m.SchemaSnapshotID = new(string)
				*_m.SchemaSnapshotID = value.String
			}
		case querysession.FieldPageSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field page_size", values[i])
			} else if value.Valid {
				_m.PageSize = new(int)
				*_m.PageSize = int(value.Int64)
			}
		case querysession.FieldPageToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field page_token", values[i])
			} else if value.Valid {
				_m.PageToken = new(string)
				*_m.PageToken = value.String
			}
		case querysession.FieldSeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field seed", values[i])
			} else if value.Valid {
				_m.Seed = new(int64)
				*_m.Seed = value.Int64
			}
		case querysession.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case querysession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case querysession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case querysession.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		case querysession.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuerySession.
// This includes values selected through modifiers, order, etc.
func (_m *QuerySession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInteractions queries the "interactions" edge of the QuerySession entity.
func (_m *QuerySession) QueryInteractions() *InteractionQuery {
	return NewQuerySessionClient(_m.config).QueryInteractions(_m)
}

// Update returns a builder for updating this QuerySession.
// Note that you need to call QuerySession.Unwrap() before calling this method if this QuerySession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuerySession) Update() *QuerySessionUpdateOne {
	return NewQuerySessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuerySession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuerySession) Unwrap() *QuerySession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuerySession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuerySession) String() string {
	var builder strings.Builder
	builder.WriteString("QuerySession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.FinalSQL; v != nil {
		builder.WriteString("final_sql=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("result_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultPayload))
	builder.WriteString(", ")
	if v := _m.FinalAnswer; v != nil {
		builder.WriteString("final_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorCode; v != nil {
		builder.WriteString("error_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClarificationQuestion; v != nil {
		builder.WriteString("clarification_question=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ClarificationAnswer; v != nil {
		builder.WriteString("clarification_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("requeue_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequeueCount))
	builder.WriteString(", ")
	if v := _m.TraceID; v != nil {
		builder.WriteString("trace_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SchemaSnapshotID; v != nil {
		builder.WriteString("schema_snapshot_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PageSize; v != nil {
		builder.WriteString("page_size=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PageToken; v != nil {
		builder.WriteString("page_token=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Seed; v != nil {
		builder.WriteString("seed=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// QuerySessions is a parsable slice of QuerySession.
type QuerySessions []*QuerySession
