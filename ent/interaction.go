// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/querra-ai/querra/ent/interaction"
	"github.com/querra-ai/querra/ent/querysession"
)

// Interaction is the model entity for the Interaction schema.
type Interaction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Owning session; empty for eval-runner invocations
	SessionID *string `json:"session_id,omitempty"`
	// Idempotency key (current workflow trace)
	TraceID string `json:"trace_id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID int64 `json:"tenant_id,omitempty"`
	// Question holds the value of the "question" field.
	Question string `json:"question,omitempty"`
	// GeneratedSQL holds the value of the "generated_sql" field.
	GeneratedSQL *string `json:"generated_sql,omitempty"`
	// ResponsePayload holds the value of the "response_payload" field.
	ResponsePayload map[string]interface{} `json:"response_payload,omitempty"`
	// ExecutionStatus holds the value of the "execution_status" field.
	ExecutionStatus interaction.ExecutionStatus `json:"execution_status,omitempty"`
	// ErrorType holds the value of the "error_type" field.
	ErrorType *string `json:"error_type,omitempty"`
	// TablesUsed holds the value of the "tables_used" field.
	TablesUsed []string `json:"tables_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InteractionQuery when eager-loading is set.
	Edges        InteractionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InteractionEdges holds the relations/edges for other nodes in the graph.
type InteractionEdges struct {
	// Session holds the value of the session edge.
	Session *QuerySession `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InteractionEdges) SessionOrErr() (*QuerySession, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: querysession.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interaction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interaction.FieldResponsePayload, interaction.FieldTablesUsed:
			values[i] = new([]byte)
		case interaction.FieldTenantID:
			values[i] = new(sql.NullInt64)
		case interaction.FieldID, interaction.FieldSessionID, interaction.FieldTraceID, interaction.FieldQuestion, interaction.FieldGeneratedSQL, interaction.FieldExecutionStatus, interaction.FieldErrorType:
			values[i] = new(sql.NullString)
		case interaction.FieldCreatedAt, interaction.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interaction fields.
func (_m *Interaction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case interaction.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = new(string)
				*_m.SessionID = value.String
			}
		case interaction.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = value.String
			}
		case interaction.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.Int64
			}
		case interaction.FieldQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question", values[i])
			} else if value.Valid {
				_m.Question = value.String
			}
		case interaction.FieldGeneratedSQL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_sql", values[i])
			} else if value.Valid {
				_m.GeneratedSQL = new(string)
				*_m.GeneratedSQL = value.String
			}
		case interaction.FieldResponsePayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ResponsePayload); err != nil {
					return fmt.Errorf("unmarshal field response_payload: %w", err)
				}
			}
		case interaction.FieldExecutionStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field execution_status", values[i])
			} else if value.Valid {
				_m.ExecutionStatus = interaction.ExecutionStatus(value.String)
			}
		case interaction.FieldErrorType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_type", values[i])
			} else if value.Valid {
				_m.ErrorType = new(string)
				*_m.ErrorType = value.String
			}
		case interaction.FieldTablesUsed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tables_used", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TablesUsed); err != nil {
					return fmt.Errorf("unmarshal field tables_used: %w", err)
				}
			}
		case interaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case interaction.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Interaction.
// This includes values selected through modifiers, order, etc.
func (_m *Interaction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Interaction entity.
func (_m *Interaction) QuerySession() *QuerySessionQuery {
	return NewInteractionClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this Interaction.
// Note that you need to call Interaction.Unwrap() before calling this method if this Interaction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interaction) Update() *InteractionUpdateOne {
	return NewInteractionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interaction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interaction) Unwrap() *Interaction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Interaction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interaction) String() string {
	var builder strings.Builder
	builder.WriteString("Interaction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.SessionID; v != nil {
		builder.WriteString("session_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("trace_id=")
	builder.WriteString(_m.TraceID)
	builder.WriteString(", ")
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("question=")
	builder.WriteString(_m.Question)
	builder.WriteString(", ")
	if v := _m.GeneratedSQL; v != nil {
		builder.WriteString("generated_sql=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("response_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponsePayload))
	builder.WriteString(", ")
	builder.WriteString("execution_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExecutionStatus))
	builder.WriteString(", ")
	if v := _m.ErrorType; v != nil {
		builder.WriteString("error_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tables_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.TablesUsed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Interactions is a parsable slice of Interaction.
type Interactions []*Interaction
