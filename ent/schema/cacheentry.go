package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CacheEntry holds the schema definition for the CacheEntry entity: the
// semantic question-to-SQL cache. Writes are ON CONFLICT DO NOTHING — the
// first writer wins and concurrent duplicates are silently dropped.
type CacheEntry struct {
	ent.Schema
}

// Fields of the CacheEntry.
func (CacheEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("cache_entry_id").
			Unique().
			Immutable(),
		field.Int64("tenant_id"),
		field.Text("user_query").
			Comment("Normalized natural-language question"),
		field.JSON("query_embedding", []float32{}).
			Optional().
			Comment("Opaque embedding vector for similarity lookup"),
		field.Text("generated_sql"),
		field.String("schema_version").
			Comment("Schema snapshot the SQL was generated against"),
		field.Enum("cache_type").
			Values("exact", "semantic").
			Default("exact"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the CacheEntry.
func (CacheEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "user_query", "schema_version").
			Unique(),
		index.Fields("tenant_id", "schema_version"),
	}
}
