// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
)

// BufferEntry is the model entity for the BufferEntry schema.
type BufferEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BlobID holds the value of the "blob_id" field.
	BlobID string `json:"blob_id,omitempty"`
	// BlobType holds the value of the "blob_type" field.
	BlobType bufferentry.BlobType `json:"blob_type,omitempty"`
	// Status holds the value of the "status" field.
	Status bufferentry.Status `json:"status,omitempty"`
	// Computed once at insertion, never recomputed
	TokenSize int `json:"token_size,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Bumped on status transitions; drives stuck-processing detection
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BufferEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bufferentry.FieldTokenSize:
			values[i] = new(sql.NullInt64)
		case bufferentry.FieldID, bufferentry.FieldUserID, bufferentry.FieldBlobID, bufferentry.FieldBlobType, bufferentry.FieldStatus:
			values[i] = new(sql.NullString)
		case bufferentry.FieldCreatedAt, bufferentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BufferEntry fields.
func (_m *BufferEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bufferentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case bufferentry.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case bufferentry.FieldBlobID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_id", values[i])
			} else if value.Valid {
				_m.BlobID = value.String
			}
		case bufferentry.FieldBlobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_type", values[i])
			} else if value.Valid {
				_m.BlobType = bufferentry.BlobType(value.String)
			}
		case bufferentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = bufferentry.Status(value.String)
			}
		case bufferentry.FieldTokenSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field token_size", values[i])
			} else if value.Valid {
				_m.TokenSize = int(value.Int64)
			}
		case bufferentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bufferentry.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BufferEntry.
// This includes values selected through modifiers, order, etc.
func (_m *BufferEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BufferEntry.
// Note that you need to call BufferEntry.Unwrap() before calling this method if this BufferEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BufferEntry) Update() *BufferEntryUpdateOne {
	return NewBufferEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BufferEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BufferEntry) Unwrap() *BufferEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BufferEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BufferEntry) String() string {
	var builder strings.Builder
	builder.WriteString("BufferEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("blob_id=")
	builder.WriteString(_m.BlobID)
	builder.WriteString(", ")
	builder.WriteString("blob_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlobType))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("token_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokenSize))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BufferEntries is a parsable slice of BufferEntry.
type BufferEntries []*BufferEntry
