package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BufferEntry holds the schema definition for one buffered blob reference.
// Status forms a one-way state machine: idle → processing → done|failed.
// There is deliberately no edge to BlobRecord: buffer rows and blob bodies
// are read by two separate queries so the tables may live in different
// physical stores.
type BufferEntry struct {
	ent.Schema
}

// Fields of the BufferEntry.
func (BufferEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.String("blob_id").
			Immutable(),
		field.Enum("blob_type").
			Values("chat", "doc", "code").
			Immutable(),
		field.Enum("status").
			Values("idle", "processing", "done", "failed").
			Default("idle"),
		field.Int("token_size").
			NonNegative().
			Immutable().
			Comment("Computed once at insertion, never recomputed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Bumped on status transitions; drives stuck-processing detection"),
	}
}

// Indexes of the BufferEntry.
func (BufferEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Idle scans per user/type, ordered by insertion
		index.Fields("user_id", "blob_type", "status"),

		// Partial index for watchdog scans over stuck processing entries
		index.Fields("updated_at").
			Annotations(entsql.IndexWhere("status = 'processing'")),

		index.Fields("blob_id"),
	}
}

// Annotations pins the table name used by the original storage layout.
func (BufferEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "buffer_zone"},
	}
}
