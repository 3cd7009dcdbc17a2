package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QueryPair holds the schema definition for the QueryPair entity: a curated
// or learned (question, SQL) example in the recommendation registry.
// Tombstoning is a status transition, never a row delete, so pins referencing
// a retired signature degrade instead of erroring.
type QueryPair struct {
	ent.Schema
}

// Fields of the QueryPair.
func (QueryPair) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pair_id").
			Unique().
			Immutable(),
		field.String("signature_key").
			Comment("Canonical fingerprint of the SQL shape"),
		field.Int64("tenant_id"),
		field.Text("question"),
		field.Text("sql_query"),
		field.JSON("embedding", []float32{}).
			Optional().
			Comment("Opaque question embedding for semantic candidate lookup"),
		field.JSON("roles", []string{}).
			Comment("Membership set: example, interaction, ..."),
		field.Enum("status").
			Values("seeded", "verified", "tombstoned").
			Default("seeded"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("performance", map[string]interface{}{}).
			Optional().
			Comment("Observed execution stats (latency, row counts)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the QueryPair.
func (QueryPair) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("signature_key", "tenant_id").
			Unique(),
		index.Fields("tenant_id", "status"),
	}
}
