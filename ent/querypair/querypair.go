// Code generated by ent, DO NOT EDIT.

package querypair

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the querypair type in the database.
	Label = "query_pair"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "pair_id"
	// FieldSignatureKey holds the string denoting the signature_key field in the database.
	FieldSignatureKey = "signature_key"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldQuestion holds the string denoting the question field in the database.
	FieldQuestion = "question"
	// FieldSQLQuery holds the string denoting the sql_query field in the database.
	FieldSQLQuery = "sql_query"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldRoles holds the string denoting the roles field in the database.
	FieldRoles = "roles"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldPerformance holds the string denoting the performance field in the database.
	FieldPerformance = "performance"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the querypair in the database.
	Table = "query_pairs"
)

// Columns holds all SQL columns for querypair fields.
var Columns = []string{
	FieldID,
	FieldSignatureKey,
	FieldTenantID,
	FieldQuestion,
	FieldSQLQuery,
	FieldEmbedding,
	FieldRoles,
	FieldStatus,
	FieldMetadata,
	FieldPerformance,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusSeeded is the default value of the Status enum.
const DefaultStatus = StatusSeeded

// Status values.
const (
	StatusSeeded     Status = "seeded"
	StatusVerified   Status = "verified"
	StatusTombstoned Status = "tombstoned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSeeded, StatusVerified, StatusTombstoned:
		return nil
	default:
		return fmt.Errorf("querypair: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the QueryPair queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySignatureKey orders the results by the signature_key field.
func BySignatureKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSignatureKey, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByQuestion orders the results by the question field.
func ByQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestion, opts...).ToFunc()
}

// BySQLQuery orders the results by the sql_query field.
func BySQLQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSQLQuery, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
