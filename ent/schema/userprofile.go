package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// UserProfile holds the schema definition for one profile row. The
// (user_id, attributes.topic, attributes.sub_topic) slot is logically unique;
// duplicates are repaired during merge planning, not enforced here.
type UserProfile struct {
	ent.Schema
}

// Fields of the UserProfile.
func (UserProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("profile_id").
			Unique().
			Immutable(),
		field.String("user_id").
			Immutable(),
		field.Text("content").
			Comment("One self-contained sentence or short paragraph"),
		field.JSON("attributes", models.ProfileAttributes{}).
			Comment("Topic taxonomy slot"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Monotonically increasing per row"),
	}
}

// Indexes of the UserProfile.
func (UserProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "updated_at"),
	}
}
