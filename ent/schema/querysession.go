package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuerySession holds the schema definition for the QuerySession entity.
// One row per natural-language question run through the workflow.
type QuerySession struct {
	ent.Schema
}

// Fields of the QuerySession.
func (QuerySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.Int64("tenant_id").
			Comment("Tenant scope for every query in this session"),
		field.Text("question").
			Comment("Original natural-language question"),
		field.Enum("status").
			Values("pending", "in_progress", "awaiting_clarification",
				"completed", "failed", "cancelled", "timed_out").
			Default("pending"),
		field.Text("final_sql").
			Optional().
			Nillable().
			Comment("Generated SQL that produced the final result, before tenant rewrite"),
		field.JSON("result_payload", map[string]interface{}{}).
			Optional().
			Comment("Terminal query result (rows + completeness metadata)"),
		field.Text("final_answer").
			Optional().
			Nillable().
			Comment("Synthesized natural-language answer"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("error_code").
			Optional().
			Nillable().
			Comment("Canonical taxonomy code when the run failed"),
		field.Text("clarification_question").
			Optional().
			Nillable().
			Comment("Set while status=awaiting_clarification"),
		field.Text("clarification_answer").
			Optional().
			Nillable().
			Comment("User answer awaiting consumption by the resumed workflow"),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Int("requeue_count").
			Default(0).
			Comment("Times an orphan scan returned this session to the queue"),
		field.String("trace_id").
			Optional().
			Nillable(),
		field.String("schema_snapshot_id").
			Optional().
			Nillable(),
		field.Int("page_size").
			Optional().
			Nillable(),
		field.String("page_token").
			Optional().
			Nillable().
			Comment("Continuation cursor supplied by the caller"),
		field.Int64("seed").
			Optional().
			Nillable().
			Comment("Determinism seed for replay"),
		field.Time("created_at").
			Default(time.Now).
			Comment("When the question was submitted"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a worker claimed the session (pending to in_progress)"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("Heartbeat timestamp for orphan detection"),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the QuerySession.
func (QuerySession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("interactions", Interaction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the QuerySession.
func (QuerySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("tenant_id"),

		index.Fields("status", "created_at"),
		index.Fields("status", "started_at"),
		index.Fields("status", "last_interaction_at"),

		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
