// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AlwaysBluer/lindorm-memobase/ent/blobrecord"
)

// BlobRecord is the model entity for the BlobRecord schema.
type BlobRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// BlobType holds the value of the "blob_type" field.
	BlobType blobrecord.BlobType `json:"blob_type,omitempty"`
	// Typed payload serialized by pkg/blob
	BlobData json.RawMessage `json:"blob_data,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlobRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blobrecord.FieldBlobData:
			values[i] = new([]byte)
		case blobrecord.FieldID, blobrecord.FieldUserID, blobrecord.FieldBlobType:
			values[i] = new(sql.NullString)
		case blobrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlobRecord fields.
func (_m *BlobRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blobrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case blobrecord.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case blobrecord.FieldBlobType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field blob_type", values[i])
			} else if value.Valid {
				_m.BlobType = blobrecord.BlobType(value.String)
			}
		case blobrecord.FieldBlobData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field blob_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.BlobData); err != nil {
					return fmt.Errorf("unmarshal field blob_data: %w", err)
				}
			}
		case blobrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlobRecord.
// This includes values selected through modifiers, order, etc.
func (_m *BlobRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BlobRecord.
// Note that you need to call BlobRecord.Unwrap() before calling this method if this BlobRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlobRecord) Update() *BlobRecordUpdateOne {
	return NewBlobRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlobRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlobRecord) Unwrap() *BlobRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BlobRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlobRecord) String() string {
	var builder strings.Builder
	builder.WriteString("BlobRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("blob_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlobType))
	builder.WriteString(", ")
	builder.WriteString("blob_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlobData))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BlobRecords is a parsable slice of BlobRecord.
type BlobRecords []*BlobRecord
