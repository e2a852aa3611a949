// Code generated by ent, DO NOT EDIT.

package memoryevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the memoryevent type in the database.
	Label = "memory_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEventData holds the string denoting the event_data field in the database.
	FieldEventData = "event_data"
	// FieldEmbedding holds the string denoting the embedding field in the database.
	FieldEmbedding = "embedding"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeGists holds the string denoting the gists edge name in mutations.
	EdgeGists = "gists"
	// EventGistFieldID holds the string denoting the ID field of the EventGist.
	EventGistFieldID = "gist_id"
	// Table holds the table name of the memoryevent in the database.
	Table = "events"
	// GistsTable is the table that holds the gists relation/edge.
	GistsTable = "event_gists"
	// GistsInverseTable is the table name for the EventGist entity.
	// It exists in this package in order to avoid circular dependency with the "eventgist" package.
	GistsInverseTable = "event_gists"
	// GistsColumn is the table column denoting the gists relation/edge.
	GistsColumn = "event_id"
)

// Columns holds all SQL columns for memoryevent fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldEventData,
	FieldEmbedding,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the MemoryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByGistsCount orders the results by gists count.
func ByGistsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newGistsStep(), opts...)
	}
}

// ByGists orders the results by gists terms.
func ByGists(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGistsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newGistsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GistsInverseTable, EventGistFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, GistsTable, GistsColumn),
	)
}
