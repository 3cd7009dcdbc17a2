// Code generated by ent, DO NOT EDIT.

package querypair

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/querra-ai/querra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldContainsFold(FieldID, id))
}

// SignatureKey applies equality check predicate on the "signature_key" field. It's identical to SignatureKeyEQ.
func SignatureKey(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldSignatureKey, v))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldTenantID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldQuestion, v))
}

// SQLQuery applies equality check predicate on the "sql_query" field. It's identical to SQLQueryEQ.
func SQLQuery(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldSQLQuery, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldUpdatedAt, v))
}

// SignatureKeyEQ applies the EQ predicate on the "signature_key" field.
func SignatureKeyEQ(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldSignatureKey, v))
}

// SignatureKeyNEQ applies the NEQ predicate on the "signature_key" field.
func SignatureKeyNEQ(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNEQ(FieldSignatureKey, v))
}

// SignatureKeyIn applies the In predicate on the "signature_key" field.
func SignatureKeyIn(vs ...string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIn(FieldSignatureKey, vs...))
}

// SignatureKeyNotIn applies the NotIn predicate on the "signature_key" field.
func SignatureKeyNotIn(vs ...string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotIn(FieldSignatureKey, vs...))
}

// SignatureKeyGT applies the GT predicate on the "signature_key" field.
func SignatureKeyGT(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGT(FieldSignatureKey, v))
}

// SignatureKeyGTE applies the GTE predicate on the "signature_key" field.
func SignatureKeyGTE(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGTE(FieldSignatureKey, v))
}

// SignatureKeyLT applies the LT predicate on the "signature_key" field.
func SignatureKeyLT(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLT(FieldSignatureKey, v))
}

// SignatureKeyLTE applies the LTE predicate on the "signature_key" field.
func SignatureKeyLTE(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLTE(FieldSignatureKey, v))
}

// SignatureKeyContains applies the Contains predicate on the "signature_key" field.
func SignatureKeyContains(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldContains(FieldSignatureKey, v))
}

// SignatureKeyHasPrefix applies the HasPrefix predicate on the "signature_key" field.
func SignatureKeyHasPrefix(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldHasPrefix(FieldSignatureKey, v))
}

// SignatureKeyHasSuffix applies the HasSuffix predicate on the "signature_key" field.
func SignatureKeyHasSuffix(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldHasSuffix(FieldSignatureKey, v))
}

// SignatureKeyEqualFold applies the EqualFold predicate on the "signature_key" field.
func SignatureKeyEqualFold(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEqualFold(FieldSignatureKey, v))
}

// SignatureKeyContainsFold applies the ContainsFold predicate on the "signature_key" field.
func SignatureKeyContainsFold(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldContainsFold(FieldSignatureKey, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int64) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLTE(FieldTenantID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldContainsFold(FieldQuestion, v))
}

// SQLQueryEQ applies the EQ predicate on the "sql_query" field.
func SQLQueryEQ(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldSQLQuery, v))
}

// SQLQueryNEQ applies the NEQ predicate on the "sql_query" field.
func SQLQueryNEQ(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNEQ(FieldSQLQuery, v))
}

// SQLQueryIn applies the In predicate on the "sql_query" field.
func SQLQueryIn(vs ...string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIn(FieldSQLQuery, vs...))
}

// SQLQueryNotIn applies the NotIn predicate on the "sql_query" field.
func SQLQueryNotIn(vs ...string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotIn(FieldSQLQuery, vs...))
}

// SQLQueryGT applies the GT predicate on the "sql_query" field.
func SQLQueryGT(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGT(FieldSQLQuery, v))
}

// SQLQueryGTE applies the GTE predicate on the "sql_query" field.
func SQLQueryGTE(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGTE(FieldSQLQuery, v))
}

// SQLQueryLT applies the LT predicate on the "sql_query" field.
func SQLQueryLT(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLT(FieldSQLQuery, v))
}

// SQLQueryLTE applies the LTE predicate on the "sql_query" field.
func SQLQueryLTE(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLTE(FieldSQLQuery, v))
}

// SQLQueryContains applies the Contains predicate on the "sql_query" field.
func SQLQueryContains(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldContains(FieldSQLQuery, v))
}

// SQLQueryHasPrefix applies the HasPrefix predicate on the "sql_query" field.
func SQLQueryHasPrefix(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldHasPrefix(FieldSQLQuery, v))
}

// SQLQueryHasSuffix applies the HasSuffix predicate on the "sql_query" field.
func SQLQueryHasSuffix(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldHasSuffix(FieldSQLQuery, v))
}

// SQLQueryEqualFold applies the EqualFold predicate on the "sql_query" field.
func SQLQueryEqualFold(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEqualFold(FieldSQLQuery, v))
}

// SQLQueryContainsFold applies the ContainsFold predicate on the "sql_query" field.
func SQLQueryContainsFold(v string) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldContainsFold(FieldSQLQuery, v))
}

// EmbeddingIsNil applies the IsNil predicate on the "embedding" field.
func EmbeddingIsNil() predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIsNull(FieldEmbedding))
}

// EmbeddingNotNil applies the NotNil predicate on the "embedding" field.
func EmbeddingNotNil() predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotNull(FieldEmbedding))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotIn(FieldStatus, vs...))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotNull(FieldMetadata))
}

// PerformanceIsNil applies the IsNil predicate on the "performance" field.
func PerformanceIsNil() predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIsNull(FieldPerformance))
}

// PerformanceNotNil applies the NotNil predicate on the "performance" field.
func PerformanceNotNil() predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotNull(FieldPerformance))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.QueryPair {
	return predicate.QueryPair(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QueryPair) predicate.QueryPair {
	return predicate.QueryPair(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QueryPair) predicate.QueryPair {
	return predicate.QueryPair(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QueryPair) predicate.QueryPair {
	return predicate.QueryPair(sql.NotPredicates(p))
}
