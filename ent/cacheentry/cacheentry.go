// Code generated by ent, DO NOT EDIT.

package cacheentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the cacheentry type in the database.
	Label = "cache_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cache_entry_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldUserQuery holds the string denoting the user_query field in the database.
	FieldUserQuery = "user_query"
	// FieldQueryEmbedding holds the string denoting the query_embedding field in the database.
	FieldQueryEmbedding = "query_embedding"
	// FieldGeneratedSQL holds the string denoting the generated_sql field in the database.
	FieldGeneratedSQL = "generated_sql"
	// FieldSchemaVersion holds the string denoting the schema_version field in the database.
	FieldSchemaVersion = "schema_version"
	// FieldCacheType holds the string denoting the cache_type field in the database.
	FieldCacheType = "cache_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the cacheentry in the database.
	Table = "cache_entries"
)

// Columns holds all SQL columns for cacheentry fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldUserQuery,
	FieldQueryEmbedding,
	FieldGeneratedSQL,
	FieldSchemaVersion,
	FieldCacheType,
	FieldCreatedAt,
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
)

// CacheType defines the type for the "cache_type" enum field.
type CacheType string

// CacheTypeExact is the default value of the CacheType enum.
const DefaultCacheType = CacheTypeExact

// CacheType values.
const (
	CacheTypeExact    CacheType = "exact"
	CacheTypeSemantic CacheType = "semantic"
)

func (ct CacheType) String() string {
	return string(ct)
}

// CacheTypeValidator is a validator for the "cache_type" field enum values. It is called by the builders before save.
func CacheTypeValidator(ct CacheType) error {
	switch ct {
	case CacheTypeExact, CacheTypeSemantic:
		return nil
	default:
		return fmt.Errorf("cacheentry: invalid enum value for cache_type field: %q", ct)
	}
}

// OrderOption defines the ordering options for the CacheEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByUserQuery orders the results by the user_query field.
func ByUserQuery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserQuery, opts...).ToFunc()
}

// ByGeneratedSQL orders the results by the generated_sql field.
func ByGeneratedSQL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGeneratedSQL, opts...).ToFunc()
}

// BySchemaVersion orders the results by the schema_version field.
func BySchemaVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSchemaVersion, opts...).ToFunc()
}

// ByCacheType orders the results by the cache_type field.
func ByCacheType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCacheType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
