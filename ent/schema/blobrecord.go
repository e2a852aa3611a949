package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlobRecord holds the schema definition for a persisted blob body.
// Rows are append-only and immutable; the core never deletes them in-band.
type BlobRecord struct {
	ent.Schema
}

// Fields of the BlobRecord.
func (BlobRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("blob_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Enum("blob_type").
			Values("chat", "doc", "code").
			Immutable(),
		field.JSON("blob_data", json.RawMessage{}).
			Immutable().
			Comment("Typed payload serialized by pkg/blob"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BlobRecord.
func (BlobRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "created_at"),
	}
}

// Annotations pins the table name used by the original storage layout.
func (BlobRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "blob_content"},
	}
}
