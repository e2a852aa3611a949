package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// MemoryEvent holds the schema definition for one extraction audit record.
// Append-only; garbage-collected only by the retrieval time window.
type MemoryEvent struct {
	ent.Schema
}

// Fields of the MemoryEvent.
func (MemoryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.JSON("event_data", models.EventData{}).
			Comment("Conversation context and profile deltas for audit"),
		field.JSON("embedding", []float32{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MemoryEvent.
func (MemoryEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("gists", EventGist.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the MemoryEvent.
func (MemoryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}

// Annotations pins the table name used by the original storage layout.
func (MemoryEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "events"},
	}
}
