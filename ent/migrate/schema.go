// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BlobContentColumns holds the columns for the "blob_content" table.
	BlobContentColumns = []*schema.Column{
		{Name: "blob_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "blob_type", Type: field.TypeEnum, Enums: []string{"chat", "doc", "code"}},
		{Name: "blob_data", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BlobContentTable holds the schema information for the "blob_content" table.
	BlobContentTable = &schema.Table{
		Name:       "blob_content",
		Columns:    BlobContentColumns,
		PrimaryKey: []*schema.Column{BlobContentColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blobrecord_user_id",
				Unique:  false,
				Columns: []*schema.Column{BlobContentColumns[1]},
			},
			{
				Name:    "blobrecord_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BlobContentColumns[1], BlobContentColumns[4]},
			},
		},
	}
	// BufferZoneColumns holds the columns for the "buffer_zone" table.
	BufferZoneColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "blob_id", Type: field.TypeString},
		{Name: "blob_type", Type: field.TypeEnum, Enums: []string{"chat", "doc", "code"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"idle", "processing", "done", "failed"}, Default: "idle"},
		{Name: "token_size", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BufferZoneTable holds the schema information for the "buffer_zone" table.
	BufferZoneTable = &schema.Table{
		Name:       "buffer_zone",
		Columns:    BufferZoneColumns,
		PrimaryKey: []*schema.Column{BufferZoneColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bufferentry_user_id_blob_type_status",
				Unique:  false,
				Columns: []*schema.Column{BufferZoneColumns[1], BufferZoneColumns[3], BufferZoneColumns[4]},
			},
			{
				Name:    "bufferentry_updated_at",
				Unique:  false,
				Columns: []*schema.Column{BufferZoneColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "status = 'processing'",
				},
			},
			{
				Name:    "bufferentry_blob_id",
				Unique:  false,
				Columns: []*schema.Column{BufferZoneColumns[2]},
			},
		},
	}
	// EventGistsColumns holds the columns for the "event_gists" table.
	EventGistsColumns = []*schema.Column{
		{Name: "gist_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_id", Type: field.TypeString},
	}
	// EventGistsTable holds the schema information for the "event_gists" table.
	EventGistsTable = &schema.Table{
		Name:       "event_gists",
		Columns:    EventGistsColumns,
		PrimaryKey: []*schema.Column{EventGistsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "event_gists_events_gists",
				Columns:    []*schema.Column{EventGistsColumns[5]},
				RefColumns: []*schema.Column{EventsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "eventgist_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventGistsColumns[1], EventGistsColumns[4]},
			},
			{
				Name:    "eventgist_event_id",
				Unique:  false,
				Columns: []*schema.Column{EventGistsColumns[5]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "event_data", Type: field.TypeJSON},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryevent_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[4]},
			},
		},
	}
	// UserProfilesColumns holds the columns for the "user_profiles" table.
	UserProfilesColumns = []*schema.Column{
		{Name: "profile_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "attributes", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UserProfilesTable holds the schema information for the "user_profiles" table.
	UserProfilesTable = &schema.Table{
		Name:       "user_profiles",
		Columns:    UserProfilesColumns,
		PrimaryKey: []*schema.Column{UserProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "userprofile_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[1]},
			},
			{
				Name:    "userprofile_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{UserProfilesColumns[1], UserProfilesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BlobContentTable,
		BufferZoneTable,
		EventGistsTable,
		EventsTable,
		UserProfilesTable,
	}
)

func init() {
	BlobContentTable.Annotation = &entsql.Annotation{
		Table: "blob_content",
	}
	BufferZoneTable.Annotation = &entsql.Annotation{
		Table: "buffer_zone",
	}
	EventGistsTable.ForeignKeys[0].RefTable = EventsTable
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
}
