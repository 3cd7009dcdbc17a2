package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Checkpoint holds the schema definition for the Checkpoint entity: the
// persisted workflow state written after every node transition. One row per
// thread; writes are atomic upserts keyed by thread_id.
type Checkpoint struct {
	ent.Schema
}

// Fields of the Checkpoint.
func (Checkpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("thread_id").
			Unique().
			Immutable(),
		field.JSON("state", json.RawMessage{}).
			Comment("Full serialized workflow state"),
		field.String("node").
			Comment("Last completed node"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
