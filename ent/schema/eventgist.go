package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventGist holds the schema definition for one retrieval-time fact derived
// from a memory event. Gists share the time-decay policy of their parent.
type EventGist struct {
	ent.Schema
}

// Fields of the EventGist.
func (EventGist) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("gist_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("event_id").
			Immutable(),
		field.Text("content").
			Comment("One discrete fact or episode"),
		field.JSON("embedding", []float32{}).
			Optional().
			Comment("Nil when event embedding is disabled; such gists are skipped by vector search"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EventGist.
func (EventGist) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("event", MemoryEvent.Type).
			Ref("gists").
			Field("event_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EventGist.
func (EventGist) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("event_id"),
	}
}
