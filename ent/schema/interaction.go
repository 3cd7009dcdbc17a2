package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interaction holds the schema definition for the Interaction entity: the
// audit row created before a workflow run and updated after the terminal
// node. trace_id is the idempotency key — two creates with the same trace_id
// resolve to the same row.
type Interaction struct {
	ent.Schema
}

// Fields of the Interaction.
func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("interaction_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Optional().
			Nillable().
			Comment("Owning session; empty for eval-runner invocations"),
		field.String("trace_id").
			Unique().
			Immutable().
			Comment("Idempotency key (current workflow trace)"),
		field.Int64("tenant_id"),
		field.Text("question"),
		field.Text("generated_sql").
			Optional().
			Nillable(),
		field.JSON("response_payload", map[string]interface{}{}).
			Optional(),
		field.Enum("execution_status").
			Values("running", "completed", "failed").
			Default("running"),
		field.String("error_type").
			Optional().
			Nillable(),
		field.JSON("tables_used", []string{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Interaction.
func (Interaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", QuerySession.Type).
			Ref("interactions").
			Field("session_id").
			Unique(),
	}
}

// Indexes of the Interaction.
func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "created_at"),
		index.Fields("execution_status"),
	}
}
