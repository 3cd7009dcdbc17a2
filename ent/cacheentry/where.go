// Code generated by ent, DO NOT EDIT.

package cacheentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/querra-ai/querra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldTenantID, v))
}

// UserQuery applies equality check predicate on the "user_query" field. It's identical to UserQueryEQ.
func UserQuery(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldUserQuery, v))
}

// GeneratedSQL applies equality check predicate on the "generated_sql" field. It's identical to GeneratedSQLEQ.
func GeneratedSQL(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldGeneratedSQL, v))
}

// SchemaVersion applies equality check predicate on the "schema_version" field. It's identical to SchemaVersionEQ.
func SchemaVersion(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldSchemaVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int64) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldTenantID, v))
}

// UserQueryEQ applies the EQ predicate on the "user_query" field.
func UserQueryEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldUserQuery, v))
}

// UserQueryNEQ applies the NEQ predicate on the "user_query" field.
func UserQueryNEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldUserQuery, v))
}

// UserQueryIn applies the In predicate on the "user_query" field.
func UserQueryIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldUserQuery, vs...))
}

// UserQueryNotIn applies the NotIn predicate on the "user_query" field.
func UserQueryNotIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldUserQuery, vs...))
}

// UserQueryGT applies the GT predicate on the "user_query" field.
func UserQueryGT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldUserQuery, v))
}

// UserQueryGTE applies the GTE predicate on the "user_query" field.
func UserQueryGTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldUserQuery, v))
}

// UserQueryLT applies the LT predicate on the "user_query" field.
func UserQueryLT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldUserQuery, v))
}

// UserQueryLTE applies the LTE predicate on the "user_query" field.
func UserQueryLTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldUserQuery, v))
}

// UserQueryContains applies the Contains predicate on the "user_query" field.
func UserQueryContains(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContains(FieldUserQuery, v))
}

// UserQueryHasPrefix applies the HasPrefix predicate on the "user_query" field.
func UserQueryHasPrefix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasPrefix(FieldUserQuery, v))
}

// UserQueryHasSuffix applies the HasSuffix predicate on the "user_query" field.
func UserQueryHasSuffix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasSuffix(FieldUserQuery, v))
}

// UserQueryEqualFold applies the EqualFold predicate on the "user_query" field.
func UserQueryEqualFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEqualFold(FieldUserQuery, v))
}

// UserQueryContainsFold applies the ContainsFold predicate on the "user_query" field.
func UserQueryContainsFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContainsFold(FieldUserQuery, v))
}

// QueryEmbeddingIsNil applies the IsNil predicate on the "query_embedding" field.
func QueryEmbeddingIsNil() predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIsNull(FieldQueryEmbedding))
}

// QueryEmbeddingNotNil applies the NotNil predicate on the "query_embedding" field.
func QueryEmbeddingNotNil() predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotNull(FieldQueryEmbedding))
}

// GeneratedSQLEQ applies the EQ predicate on the "generated_sql" field.
func GeneratedSQLEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldGeneratedSQL, v))
}

// GeneratedSQLNEQ applies the NEQ predicate on the "generated_sql" field.
func GeneratedSQLNEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldGeneratedSQL, v))
}

// GeneratedSQLIn applies the In predicate on the "generated_sql" field.
func GeneratedSQLIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldGeneratedSQL, vs...))
}

// GeneratedSQLNotIn applies the NotIn predicate on the "generated_sql" field.
func GeneratedSQLNotIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldGeneratedSQL, vs...))
}

// GeneratedSQLGT applies the GT predicate on the "generated_sql" field.
func GeneratedSQLGT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldGeneratedSQL, v))
}

// GeneratedSQLGTE applies the GTE predicate on the "generated_sql" field.
func GeneratedSQLGTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldGeneratedSQL, v))
}

// GeneratedSQLLT applies the LT predicate on the "generated_sql" field.
func GeneratedSQLLT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldGeneratedSQL, v))
}

// GeneratedSQLLTE applies the LTE predicate on the "generated_sql" field.
func GeneratedSQLLTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldGeneratedSQL, v))
}

// GeneratedSQLContains applies the Contains predicate on the "generated_sql" field.
func GeneratedSQLContains(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContains(FieldGeneratedSQL, v))
}

// GeneratedSQLHasPrefix applies the HasPrefix predicate on the "generated_sql" field.
func GeneratedSQLHasPrefix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasPrefix(FieldGeneratedSQL, v))
}

// GeneratedSQLHasSuffix applies the HasSuffix predicate on the "generated_sql" field.
func GeneratedSQLHasSuffix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasSuffix(FieldGeneratedSQL, v))
}

// GeneratedSQLEqualFold applies the EqualFold predicate on the "generated_sql" field.
func GeneratedSQLEqualFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEqualFold(FieldGeneratedSQL, v))
}

// GeneratedSQLContainsFold applies the ContainsFold predicate on the "generated_sql" field.
func GeneratedSQLContainsFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContainsFold(FieldGeneratedSQL, v))
}

// SchemaVersionEQ applies the EQ predicate on the "schema_version" field.
func SchemaVersionEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldSchemaVersion, v))
}

// SchemaVersionNEQ applies the NEQ predicate on the "schema_version" field.
func SchemaVersionNEQ(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldSchemaVersion, v))
}

// SchemaVersionIn applies the In predicate on the "schema_version" field.
func SchemaVersionIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldSchemaVersion, vs...))
}

// SchemaVersionNotIn applies the NotIn predicate on the "schema_version" field.
func SchemaVersionNotIn(vs ...string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldSchemaVersion, vs...))
}

// SchemaVersionGT applies the GT predicate on the "schema_version" field.
func SchemaVersionGT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldSchemaVersion, v))
}

// SchemaVersionGTE applies the GTE predicate on the "schema_version" field.
func SchemaVersionGTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldSchemaVersion, v))
}

// SchemaVersionLT applies the LT predicate on the "schema_version" field.
func SchemaVersionLT(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldSchemaVersion, v))
}

// SchemaVersionLTE applies the LTE predicate on the "schema_version" field.
func SchemaVersionLTE(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldSchemaVersion, v))
}

// SchemaVersionContains applies the Contains predicate on the "schema_version" field.
func SchemaVersionContains(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContains(FieldSchemaVersion, v))
}

// SchemaVersionHasPrefix applies the HasPrefix predicate on the "schema_version" field.
func SchemaVersionHasPrefix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasPrefix(FieldSchemaVersion, v))
}

// SchemaVersionHasSuffix applies the HasSuffix predicate on the "schema_version" field.
func SchemaVersionHasSuffix(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldHasSuffix(FieldSchemaVersion, v))
}

// SchemaVersionEqualFold applies the EqualFold predicate on the "schema_version" field.
func SchemaVersionEqualFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEqualFold(FieldSchemaVersion, v))
}

// SchemaVersionContainsFold applies the ContainsFold predicate on the "schema_version" field.
func SchemaVersionContainsFold(v string) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldContainsFold(FieldSchemaVersion, v))
}

// CacheTypeEQ applies the EQ predicate on the "cache_type" field.
func CacheTypeEQ(v CacheType) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldCacheType, v))
}

// CacheTypeNEQ applies the NEQ predicate on the "cache_type" field.
func CacheTypeNEQ(v CacheType) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldCacheType, v))
}

// CacheTypeIn applies the In predicate on the "cache_type" field.
func CacheTypeIn(vs ...CacheType) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldCacheType, vs...))
}

// CacheTypeNotIn applies the NotIn predicate on the "cache_type" field.
func CacheTypeNotIn(vs ...CacheType) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldCacheType, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CacheEntry {
	return predicate.CacheEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CacheEntry) predicate.CacheEntry {
	return predicate.CacheEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CacheEntry) predicate.CacheEntry {
	return predicate.CacheEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CacheEntry) predicate.CacheEntry {
	return predicate.CacheEntry(sql.NotPredicates(p))
}
