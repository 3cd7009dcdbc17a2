// Code generated by ent, DO NOT EDIT.

package querysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/querra-ai/querra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldTenantID, v))
}

// Question applies equality check predicate on the "question" field. It's identical to QuestionEQ.
func Question(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldQuestion, v))
}

// FinalSQL applies equality check predicate on the "final_sql" field. It's identical to FinalSQLEQ.
func FinalSQL(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldFinalSQL, v))
}

// FinalAnswer applies equality check predicate on the "final_answer" field. It's identical to FinalAnswerEQ.
func FinalAnswer(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldFinalAnswer, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorCode applies equality check predicate on the "error_code" field. It's identical to ErrorCodeEQ.
func ErrorCode(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldErrorCode, v))
}

// ClarificationQuestion applies equality check predicate on the "clarification_question" field. It's identical to ClarificationQuestionEQ.
func ClarificationQuestion(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldClarificationQuestion, v))
}

// ClarificationAnswer applies equality check predicate on the "clarification_answer" field. It's identical to ClarificationAnswerEQ.
func ClarificationAnswer(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldClarificationAnswer, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldPodID, v))
}

// RequeueCount applies equality check predicate on the "requeue_count" field. It's identical to RequeueCountEQ.
func RequeueCount(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldRequeueCount, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldTraceID, v))
}

// SchemaSnapshotID applies equality check predicate on the "schema_snapshot_id" field. It's identical to SchemaSnapshotIDEQ.
func SchemaSnapshotID(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldSchemaSnapshotID, v))
}

// PageSize applies equality check predicate on the "page_size" field. It's identical to PageSizeEQ.
func PageSize(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldPageSize, v))
}

// PageToken applies equality check predicate on the "page_token" field. It's identical to PageTokenEQ.
func PageToken(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldPageToken, v))
}

// Seed applies equality check predicate on the "seed" field. It's identical to SeedEQ.
func Seed(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldSeed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldCompletedAt, v))
}

// LastInteractionAt applies equality check predicate on the "last_interaction_at" field. It's identical to LastInteractionAtEQ.
func LastInteractionAt(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldDeletedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldTenantID, v))
}

// QuestionEQ applies the EQ predicate on the "question" field.
func QuestionEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldQuestion, v))
}

// QuestionNEQ applies the NEQ predicate on the "question" field.
func QuestionNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldQuestion, v))
}

// QuestionIn applies the In predicate on the "question" field.
func QuestionIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldQuestion, vs...))
}

// QuestionNotIn applies the NotIn predicate on the "question" field.
func QuestionNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldQuestion, vs...))
}

// QuestionGT applies the GT predicate on the "question" field.
func QuestionGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldQuestion, v))
}

// QuestionGTE applies the GTE predicate on the "question" field.
func QuestionGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldQuestion, v))
}

// QuestionLT applies the LT predicate on the "question" field.
func QuestionLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldQuestion, v))
}

// QuestionLTE applies the LTE predicate on the "question" field.
func QuestionLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldQuestion, v))
}

// QuestionContains applies the Contains predicate on the "question" field.
func QuestionContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldQuestion, v))
}

// QuestionHasPrefix applies the HasPrefix predicate on the "question" field.
func QuestionHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldQuestion, v))
}

// QuestionHasSuffix applies the HasSuffix predicate on the "question" field.
func QuestionHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldQuestion, v))
}

// QuestionEqualFold applies the EqualFold predicate on the "question" field.
func QuestionEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldQuestion, v))
}

// QuestionContainsFold applies the ContainsFold predicate on the "question" field.
func QuestionContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldQuestion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldStatus, vs...))
}

// FinalSQLEQ applies the EQ predicate on the "final_sql" field.
func FinalSQLEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldFinalSQL, v))
}

// FinalSQLNEQ applies the NEQ predicate on the "final_sql" field.
func FinalSQLNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldFinalSQL, v))
}

// FinalSQLIn applies the In predicate on the "final_sql" field.
func FinalSQLIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldFinalSQL, vs...))
}

// FinalSQLNotIn applies the NotIn predicate on the "final_sql" field.
func FinalSQLNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldFinalSQL, vs...))
}

// FinalSQLGT applies the GT predicate on the "final_sql" field.
func FinalSQLGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldFinalSQL, v))
}

// FinalSQLGTE applies the GTE predicate on the "final_sql" field.
func FinalSQLGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldFinalSQL, v))
}

// FinalSQLLT applies the LT predicate on the "final_sql" field.
func FinalSQLLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldFinalSQL, v))
}

// FinalSQLLTE applies the LTE predicate on the "final_sql" field.
func FinalSQLLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldFinalSQL, v))
}

// FinalSQLContains applies the Contains predicate on the "final_sql" field.
func FinalSQLContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldFinalSQL, v))
}

// FinalSQLHasPrefix applies the HasPrefix predicate on the "final_sql" field.
func FinalSQLHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldFinalSQL, v))
}

// FinalSQLHasSuffix applies the HasSuffix predicate on the "final_sql" field.
func FinalSQLHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldFinalSQL, v))
}

// FinalSQLIsNil applies the IsNil predicate on the "final_sql" field.
func FinalSQLIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldFinalSQL))
}

// FinalSQLNotNil applies the NotNil predicate on the "final_sql" field.
func FinalSQLNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldFinalSQL))
}

// FinalSQLEqualFold applies the EqualFold predicate on the "final_sql" field.
func FinalSQLEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldFinalSQL, v))
}

// FinalSQLContainsFold applies the ContainsFold predicate on the "final_sql" field.
func FinalSQLContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldFinalSQL, v))
}

// ResultPayloadIsNil applies the IsNil predicate on the "result_payload" field.
func ResultPayloadIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldResultPayload))
}

// ResultPayloadNotNil applies the NotNil predicate on the "result_payload" field.
func ResultPayloadNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldResultPayload))
}

// FinalAnswerEQ applies the EQ predicate on the "final_answer" field.
func FinalAnswerEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldFinalAnswer, v))
}

// FinalAnswerNEQ applies the NEQ predicate on the "final_answer" field.
func FinalAnswerNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldFinalAnswer, v))
}

// FinalAnswerIn applies the In predicate on the "final_answer" field.
func FinalAnswerIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldFinalAnswer, vs...))
}

// FinalAnswerNotIn applies the NotIn predicate on the "final_answer" field.
func FinalAnswerNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldFinalAnswer, vs...))
}

// FinalAnswerGT applies the GT predicate on the "final_answer" field.
func FinalAnswerGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldFinalAnswer, v))
}

// FinalAnswerGTE applies the GTE predicate on the "final_answer" field.
func FinalAnswerGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldFinalAnswer, v))
}

// FinalAnswerLT applies the LT predicate on the "final_answer" field.
func FinalAnswerLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldFinalAnswer, v))
}

// FinalAnswerLTE applies the LTE predicate on the "final_answer" field.
func FinalAnswerLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldFinalAnswer, v))
}

// FinalAnswerContains applies the Contains predicate on the "final_answer" field.
func FinalAnswerContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldFinalAnswer, v))
}

// FinalAnswerHasPrefix applies the HasPrefix predicate on the "final_answer" field.
func FinalAnswerHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldFinalAnswer, v))
}

// FinalAnswerHasSuffix applies the HasSuffix predicate on the "final_answer" field.
func FinalAnswerHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldFinalAnswer, v))
}

// FinalAnswerIsNil applies the IsNil predicate on the "final_answer" field.
func FinalAnswerIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldFinalAnswer))
}

// FinalAnswerNotNil applies the NotNil predicate on the "final_answer" field.
func FinalAnswerNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldFinalAnswer))
}

// FinalAnswerEqualFold applies the EqualFold predicate on the "final_answer" field.
func FinalAnswerEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldFinalAnswer, v))
}

// FinalAnswerContainsFold applies the ContainsFold predicate on the "final_answer" field.
func FinalAnswerContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldFinalAnswer, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ErrorCodeEQ applies the EQ predicate on the "error_code" field.
func ErrorCodeEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldErrorCode, v))
}

// ErrorCodeNEQ applies the NEQ predicate on the "error_code" field.
func ErrorCodeNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldErrorCode, v))
}

// ErrorCodeIn applies the In predicate on the "error_code" field.
func ErrorCodeIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldErrorCode, vs...))
}

// ErrorCodeNotIn applies the NotIn predicate on the "error_code" field.
func ErrorCodeNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldErrorCode, vs...))
}

// ErrorCodeGT applies the GT predicate on the "error_code" field.
func ErrorCodeGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldErrorCode, v))
}

// ErrorCodeGTE applies the GTE predicate on the "error_code" field.
func ErrorCodeGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldErrorCode, v))
}

// ErrorCodeLT applies the LT predicate on the "error_code" field.
func ErrorCodeLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldErrorCode, v))
}

// ErrorCodeLTE applies the LTE predicate on the "error_code" field.
func ErrorCodeLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldErrorCode, v))
}

// ErrorCodeContains applies the Contains predicate on the "error_code" field.
func ErrorCodeContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldErrorCode, v))
}

// ErrorCodeHasPrefix applies the HasPrefix predicate on the "error_code" field.
func ErrorCodeHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldErrorCode, v))
}

// ErrorCodeHasSuffix applies the HasSuffix predicate on the "error_code" field.
func ErrorCodeHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldErrorCode, v))
}

// ErrorCodeIsNil applies the IsNil predicate on the "error_code" field.
func ErrorCodeIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldErrorCode))
}

// ErrorCodeNotNil applies the NotNil predicate on the "error_code" field.
func ErrorCodeNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldErrorCode))
}

// ErrorCodeEqualFold applies the EqualFold predicate on the "error_code" field.
func ErrorCodeEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldErrorCode, v))
}

// ErrorCodeContainsFold applies the ContainsFold predicate on the "error_code" field.
func ErrorCodeContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldErrorCode, v))
}

// ClarificationQuestionEQ applies the EQ predicate on the "clarification_question" field.
func ClarificationQuestionEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldClarificationQuestion, v))
}

// ClarificationQuestionNEQ applies the NEQ predicate on the "clarification_question" field.
func ClarificationQuestionNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldClarificationQuestion, v))
}

// ClarificationQuestionIn applies the In predicate on the "clarification_question" field.
func ClarificationQuestionIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldClarificationQuestion, vs...))
}

// ClarificationQuestionNotIn applies the NotIn predicate on the "clarification_question" field.
func ClarificationQuestionNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldClarificationQuestion, vs...))
}

// ClarificationQuestionGT applies the GT predicate on the "clarification_question" field.
func ClarificationQuestionGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldClarificationQuestion, v))
}

// ClarificationQuestionGTE applies the GTE predicate on the "clarification_question" field.
func ClarificationQuestionGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldClarificationQuestion, v))
}

// ClarificationQuestionLT applies the LT predicate on the "clarification_question" field.
func ClarificationQuestionLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldClarificationQuestion, v))
}

// ClarificationQuestionLTE applies the LTE predicate on the "clarification_question" field.
func ClarificationQuestionLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldClarificationQuestion, v))
}

// ClarificationQuestionContains applies the Contains predicate on the "clarification_question" field.
func ClarificationQuestionContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldClarificationQuestion, v))
}

// ClarificationQuestionHasPrefix applies the HasPrefix predicate on the "clarification_question" field.
func ClarificationQuestionHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldClarificationQuestion, v))
}

// ClarificationQuestionHasSuffix applies the HasSuffix predicate on the "clarification_question" field.
func ClarificationQuestionHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldClarificationQuestion, v))
}

// ClarificationQuestionIsNil applies the IsNil predicate on the "clarification_question" field.
func ClarificationQuestionIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldClarificationQuestion))
}

// ClarificationQuestionNotNil applies the NotNil predicate on the "clarification_question" field.
func ClarificationQuestionNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldClarificationQuestion))
}

// ClarificationQuestionEqualFold applies the EqualFold predicate on the "clarification_question" field.
func ClarificationQuestionEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldClarificationQuestion, v))
}

// ClarificationQuestionContainsFold applies the ContainsFold predicate on the "clarification_question" field.
func ClarificationQuestionContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldClarificationQuestion, v))
}

// ClarificationAnswerEQ applies the EQ predicate on the "clarification_answer" field.
func ClarificationAnswerEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldClarificationAnswer, v))
}

// ClarificationAnswerNEQ applies the NEQ predicate on the "clarification_answer" field.
func ClarificationAnswerNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldClarificationAnswer, v))
}

// ClarificationAnswerIn applies the In predicate on the "clarification_answer" field.
func ClarificationAnswerIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldClarificationAnswer, vs...))
}

// ClarificationAnswerNotIn applies the NotIn predicate on the "clarification_answer" field.
func ClarificationAnswerNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldClarificationAnswer, vs...))
}

// ClarificationAnswerGT applies the GT predicate on the "clarification_answer" field.
func ClarificationAnswerGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldClarificationAnswer, v))
}

// ClarificationAnswerGTE applies the GTE predicate on the "clarification_answer" field.
func ClarificationAnswerGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldClarificationAnswer, v))
}

// ClarificationAnswerLT applies the LT predicate on the "clarification_answer" field.
func ClarificationAnswerLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldClarificationAnswer, v))
}

// ClarificationAnswerLTE applies the LTE predicate on the "clarification_answer" field.
func ClarificationAnswerLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldClarificationAnswer, v))
}

// ClarificationAnswerContains applies the Contains predicate on the "clarification_answer" field.
func ClarificationAnswerContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldClarificationAnswer, v))
}

// ClarificationAnswerHasPrefix applies the HasPrefix predicate on the "clarification_answer" field.
func ClarificationAnswerHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldClarificationAnswer, v))
}

// ClarificationAnswerHasSuffix applies the HasSuffix predicate on the "clarification_answer" field.
func ClarificationAnswerHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldClarificationAnswer, v))
}

// ClarificationAnswerIsNil applies the IsNil predicate on the "clarification_answer" field.
func ClarificationAnswerIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldClarificationAnswer))
}

// ClarificationAnswerNotNil applies the NotNil predicate on the "clarification_answer" field.
func ClarificationAnswerNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldClarificationAnswer))
}

// ClarificationAnswerEqualFold applies the EqualFold predicate on the "clarification_answer" field.
func ClarificationAnswerEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldClarificationAnswer, v))
}

// ClarificationAnswerContainsFold applies the ContainsFold predicate on the "clarification_answer" field.
func ClarificationAnswerContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldClarificationAnswer, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldPodID, v))
}

// RequeueCountEQ applies the EQ predicate on the "requeue_count" field.
func RequeueCountEQ(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldRequeueCount, v))
}

// RequeueCountNEQ applies the NEQ predicate on the "requeue_count" field.
func RequeueCountNEQ(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldRequeueCount, v))
}

// RequeueCountIn applies the In predicate on the "requeue_count" field.
func RequeueCountIn(vs ...int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldRequeueCount, vs...))
}

// RequeueCountNotIn applies the NotIn predicate on the "requeue_count" field.
func RequeueCountNotIn(vs ...int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldRequeueCount, vs...))
}

// RequeueCountGT applies the GT predicate on the "requeue_count" field.
func RequeueCountGT(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldRequeueCount, v))
}

// RequeueCountGTE applies the GTE predicate on the "requeue_count" field.
func RequeueCountGTE(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldRequeueCount, v))
}

// RequeueCountLT applies the LT predicate on the "requeue_count" field.
func RequeueCountLT(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldRequeueCount, v))
}

// RequeueCountLTE applies the LTE predicate on the "requeue_count" field.
func RequeueCountLTE(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldRequeueCount, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDIsNil applies the IsNil predicate on the "trace_id" field.
func TraceIDIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldTraceID))
}

// TraceIDNotNil applies the NotNil predicate on the "trace_id" field.
func TraceIDNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldTraceID))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldTraceID, v))
}

// SchemaSnapshotIDEQ applies the EQ predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDNEQ applies the NEQ predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDIn applies the In predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldSchemaSnapshotID, vs...))
}

// SchemaSnapshotIDNotIn applies the NotIn predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldSchemaSnapshotID, vs...))
}

// SchemaSnapshotIDGT applies the GT predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDGTE applies the GTE predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDLT applies the LT predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDLTE applies the LTE predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDContains applies the Contains predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDHasPrefix applies the HasPrefix predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDHasSuffix applies the HasSuffix predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDIsNil applies the IsNil predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldSchemaSnapshotID))
}

// SchemaSnapshotIDNotNil applies the NotNil predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldSchemaSnapshotID))
}

// SchemaSnapshotIDEqualFold applies the EqualFold predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldSchemaSnapshotID, v))
}

// SchemaSnapshotIDContainsFold applies the ContainsFold predicate on the "schema_snapshot_id" field.
func SchemaSnapshotIDContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldSchemaSnapshotID, v))
}

// PageSizeEQ applies the EQ predicate on the "page_size" field.
func PageSizeEQ(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldPageSize, v))
}

// PageSizeNEQ applies the NEQ predicate on the "page_size" field.
func PageSizeNEQ(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldPageSize, v))
}

// PageSizeIn applies the In predicate on the "page_size" field.
func PageSizeIn(vs ...int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldPageSize, vs...))
}

// PageSizeNotIn applies the NotIn predicate on the "page_size" field.
func PageSizeNotIn(vs ...int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldPageSize, vs...))
}

// PageSizeGT applies the GT predicate on the "page_size" field.
func PageSizeGT(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldPageSize, v))
}

// PageSizeGTE applies the GTE predicate on the "page_size" field.
func PageSizeGTE(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldPageSize, v))
}

// PageSizeLT applies the LT predicate on the "page_size" field.
func PageSizeLT(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldPageSize, v))
}

// PageSizeLTE applies the LTE predicate on the "page_size" field.
func PageSizeLTE(v int) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldPageSize, v))
}

// PageSizeIsNil applies the IsNil predicate on the "page_size" field.
func PageSizeIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldPageSize))
}

// PageSizeNotNil applies the NotNil predicate on the "page_size" field.
func PageSizeNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldPageSize))
}

// PageTokenEQ applies the EQ predicate on the "page_token" field.
func PageTokenEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldPageToken, v))
}

// PageTokenNEQ applies the NEQ predicate on the "page_token" field.
func PageTokenNEQ(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldPageToken, v))
}

// PageTokenIn applies the In predicate on the "page_token" field.
func PageTokenIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldPageToken, vs...))
}

// PageTokenNotIn applies the NotIn predicate on the "page_token" field.
func PageTokenNotIn(vs ...string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldPageToken, vs...))
}

// PageTokenGT applies the GT predicate on the "page_token" field.
func PageTokenGT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldPageToken, v))
}

// PageTokenGTE applies the GTE predicate on the "page_token" field.
func PageTokenGTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldPageToken, v))
}

// PageTokenLT applies the LT predicate on the "page_token" field.
func PageTokenLT(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldPageToken, v))
}

// PageTokenLTE applies the LTE predicate on the "page_token" field.
func PageTokenLTE(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldPageToken, v))
}

// PageTokenContains applies the Contains predicate on the "page_token" field.
func PageTokenContains(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContains(FieldPageToken, v))
}

// PageTokenHasPrefix applies the HasPrefix predicate on the "page_token" field.
func PageTokenHasPrefix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasPrefix(FieldPageToken, v))
}

// PageTokenHasSuffix applies the HasSuffix predicate on the "page_token" field.
func PageTokenHasSuffix(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldHasSuffix(FieldPageToken, v))
}

// PageTokenIsNil applies the IsNil predicate on the "page_token" field.
func PageTokenIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldPageToken))
}

// PageTokenNotNil applies the NotNil predicate on the "page_token" field.
func PageTokenNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldPageToken))
}

// PageTokenEqualFold applies the EqualFold predicate on the "page_token" field.
func PageTokenEqualFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEqualFold(FieldPageToken, v))
}

// PageTokenContainsFold applies the ContainsFold predicate on the "page_token" field.
func PageTokenContainsFold(v string) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldContainsFold(FieldPageToken, v))
}

// SeedEQ applies the EQ predicate on the "seed" field.
func SeedEQ(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldSeed, v))
}

// SeedNEQ applies the NEQ predicate on the "seed" field.
func SeedNEQ(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldSeed, v))
}

// SeedIn applies the In predicate on the "seed" field.
func SeedIn(vs ...int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldSeed, vs...))
}

// SeedNotIn applies the NotIn predicate on the "seed" field.
func SeedNotIn(vs ...int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldSeed, vs...))
}

// SeedGT applies the GT predicate on the "seed" field.
func SeedGT(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldSeed, v))
}

// SeedGTE applies the GTE predicate on the "seed" field.
func SeedGTE(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldSeed, v))
}

// SeedLT applies the LT predicate on the "seed" field.
func SeedLT(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldSeed, v))
}

// SeedLTE applies the LTE predicate on the "seed" field.
func SeedLTE(v int64) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldSeed, v))
}

// SeedIsNil applies the IsNil predicate on the "seed" field.
func SeedIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldSeed))
}

// SeedNotNil applies the NotNil predicate on the "seed" field.
func SeedNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldSeed))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldCompletedAt))
}

// LastInteractionAtEQ applies the EQ predicate on the "last_interaction_at" field.
func LastInteractionAtEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtNEQ applies the NEQ predicate on the "last_interaction_at" field.
func LastInteractionAtNEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldLastInteractionAt, v))
}

// LastInteractionAtIn applies the In predicate on the "last_interaction_at" field.
func LastInteractionAtIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtNotIn applies the NotIn predicate on the "last_interaction_at" field.
func LastInteractionAtNotIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldLastInteractionAt, vs...))
}

// LastInteractionAtGT applies the GT predicate on the "last_interaction_at" field.
func LastInteractionAtGT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldLastInteractionAt, v))
}

// LastInteractionAtGTE applies the GTE predicate on the "last_interaction_at" field.
func LastInteractionAtGTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldLastInteractionAt, v))
}

// LastInteractionAtLT applies the LT predicate on the "last_interaction_at" field.
func LastInteractionAtLT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldLastInteractionAt, v))
}

// LastInteractionAtLTE applies the LTE predicate on the "last_interaction_at" field.
func LastInteractionAtLTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldLastInteractionAt, v))
}

// LastInteractionAtIsNil applies the IsNil predicate on the "last_interaction_at" field.
func LastInteractionAtIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldLastInteractionAt))
}

// LastInteractionAtNotNil applies the NotNil predicate on the "last_interaction_at" field.
func LastInteractionAtNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldLastInteractionAt))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.QuerySession {
	return predicate.QuerySession(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.QuerySession {
	return predicate.QuerySession(sql.FieldNotNull(FieldDeletedAt))
}

// HasInteractions applies the HasEdge predicate on the "interactions" edge.
func HasInteractions() predicate.QuerySession {
	return predicate.QuerySession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InteractionsTable, InteractionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInteractionsWith applies the HasEdge predicate on the "interactions" edge with a given conditions (other predicates).
func HasInteractionsWith(preds ...predicate.Interaction) predicate.QuerySession {
	return predicate.QuerySession(func(s *sql.Selector) {
		step := newInteractionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuerySession) predicate.QuerySession {
	return predicate.QuerySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuerySession) predicate.QuerySession {
	return predicate.QuerySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuerySession) predicate.QuerySession {
	return predicate.QuerySession(sql.NotPredicates(p))
}
