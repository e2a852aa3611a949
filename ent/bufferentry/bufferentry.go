// Code generated by ent, DO NOT EDIT.

package bufferentry

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bufferentry type in the database.
	Label = "buffer_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBlobID holds the string denoting the blob_id field in the database.
	FieldBlobID = "blob_id"
	// FieldBlobType holds the string denoting the blob_type field in the database.
	FieldBlobType = "blob_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTokenSize holds the string denoting the token_size field in the database.
	FieldTokenSize = "token_size"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the bufferentry in the database.
	Table = "buffer_zone"
)

// Columns holds all SQL columns for bufferentry fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBlobID,
	FieldBlobType,
	FieldStatus,
	FieldTokenSize,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// TokenSizeValidator is a validator for the "token_size" field. It is called by the builders before save.
	TokenSizeValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
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
		return fmt.Errorf("bufferentry: invalid enum value for blob_type field: %q", bt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle       Status = "idle"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusProcessing, StatusDone, StatusFailed:
		return nil
	default:
		return fmt.Errorf("bufferentry: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BufferEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBlobID orders the results by the blob_id field.
func ByBlobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobID, opts...).ToFunc()
}

// ByBlobType orders the results by the blob_type field.
func ByBlobType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlobType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTokenSize orders the results by the token_size field.
func ByTokenSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenSize, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
