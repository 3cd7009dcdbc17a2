// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/querra-ai/querra/ent/cacheentry"
)

// CacheEntry is the model entity for the CacheEntry schema.
type CacheEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID int64 `json:"tenant_id,omitempty"`
	// Normalized natural-language question
	UserQuery string `json:"user_query,omitempty"`
	// Opaque embedding vector for similarity lookup
	QueryEmbedding []float32 `json:"query_embedding,omitempty"`
	// GeneratedSQL holds the value of the "generated_sql" field.
	GeneratedSQL string `json:"generated_sql,omitempty"`
	// Schema snapshot the SQL was generated against
	SchemaVersion string `json:"schema_version,omitempty"`
	// CacheType holds the value of the "cache_type" field.
	CacheType cacheentry.CacheType `json:"cache_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CacheEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case cacheentry.FieldQueryEmbedding:
			values[i] = new([]byte)
		case cacheentry.FieldTenantID:
			values[i] = new(sql.NullInt64)
		case cacheentry.FieldID, cacheentry.FieldUserQuery, cacheentry.FieldGeneratedSQL, cacheentry.FieldSchemaVersion, cacheentry.FieldCacheType:
			values[i] = new(sql.NullString)
		case cacheentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CacheEntry fields.
func (_m *CacheEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case cacheentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case cacheentry.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.Int64
			}
		case cacheentry.FieldUserQuery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_query", values[i])
			} else if value.Valid {
				_m.UserQuery = value.String
			}
		case cacheentry.FieldQueryEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field query_embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QueryEmbedding); err != nil {
					return fmt.Errorf("unmarshal field query_embedding: %w", err)
				}
			}
		case cacheentry.FieldGeneratedSQL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field generated_sql", values[i])
			} else if value.Valid {
				_m.GeneratedSQL = value.String
			}
		case cacheentry.FieldSchemaVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field schema_version", values[i])
			} else if value.Valid {
				_m.SchemaVersion = value.String
			}
		case cacheentry.FieldCacheType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cache_type", values[i])
			} else if value.Valid {
				_m.CacheType = cacheentry.CacheType(value.String)
			}
		case cacheentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CacheEntry.
// This includes values selected through modifiers, order, etc.
func (_m *CacheEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CacheEntry.
// Note that you need to call CacheEntry.Unwrap() before calling this method if this CacheEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CacheEntry) Update() *CacheEntryUpdateOne {
	return NewCacheEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CacheEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CacheEntry) Unwrap() *CacheEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CacheEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CacheEntry) String() string {
	var builder strings.Builder
	builder.WriteString("CacheEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("user_query=")
	builder.WriteString(_m.UserQuery)
	builder.WriteString(", ")
	builder.WriteString("query_embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueryEmbedding))
	builder.WriteString(", ")
	builder.WriteString("generated_sql=")
	builder.WriteString(_m.GeneratedSQL)
	builder.WriteString(", ")
	builder.WriteString("schema_version=")
	builder.WriteString(_m.SchemaVersion)
	builder.WriteString(", ")
	builder.WriteString("cache_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.CacheType))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CacheEntries is a parsable slice of CacheEntry.
type CacheEntries []*CacheEntry
