// Code generated by ent, DO NOT EDIT.

package blobrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the blobrecord type in the database.
	Label = "blob_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "blob_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBlobType holds the string denoting the blob_type field in the database.
	FieldBlobType = "blob_type"
	// FieldBlobData holds the string denoting the blob_data field in the database.
	FieldBlobData = "blob_data"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the blobrecord in the database.
	Table = "blob_content"
)

// Columns holds all SQL columns for blobrecord fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBlobType,
	FieldBlobData,
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

// BlobType defines the type for the "blob_type" enum field.
type BlobType string

// BlobType values.
const (
	BlobTypeChat BlobType = "chat"
	BlobTypeDoc  BlobType = "doc"
	BlobTypeCode BlobType = "code"
)

func (bt BlobType) String() string {
	return string(bt)
}

// BlobTypeValidator is a validator for the "blob_type" field enum values. It is called by the builders before save.
func BlobTypeValidator(bt BlobType) error {
	switch bt {
	case BlobTypeChat, BlobTypeDoc, BlobTypeCode:
		return nil
	default:
		return fmt.Errorf("blobrecord: invalid enum value for blob_type field: %q", bt)
	}
}

// OrderOption defines the ordering options for the BlobRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBlobType orders the results by the blob_type field.
func ByBlobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
