// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AlwaysBluer/lindorm-memobase/ent/memoryevent"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// MemoryEvent is the model entity for the MemoryEvent schema.
type MemoryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Conversation context and profile deltas for audit
	EventData models.EventData `json:"event_data,omitempty"`
	// Embedding holds the value of the "embedding" field.
	Embedding []float32 `json:"embedding,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MemoryEventQuery when eager-loading is set.
	Edges        MemoryEventEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MemoryEventEdges holds the relations/edges for other nodes in the graph.
type MemoryEventEdges struct {
	// Gists holds the value of the gists edge.
	Gists []*EventGist `json:"gists,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GistsOrErr returns the Gists value or an error if the edge
// was not loaded in eager-loading.
func (e MemoryEventEdges) GistsOrErr() ([]*EventGist, error) {
	if e.loadedTypes[0] {
		return e.Gists, nil
	}
	return nil, &NotLoadedError{edge: "gists"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MemoryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case memoryevent.FieldEventData, memoryevent.FieldEmbedding:
			values[i] = new([]byte)
		case memoryevent.FieldID, memoryevent.FieldUserID:
			values[i] = new(sql.NullString)
		case memoryevent.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MemoryEvent fields.
func (_m *MemoryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case memoryevent.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case memoryevent.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case memoryevent.FieldEventData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field event_data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EventData); err != nil {
					return fmt.Errorf("unmarshal field event_data: %w", err)
				}
			}
		case memoryevent.FieldEmbedding:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field embedding", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Embedding); err != nil {
					return fmt.Errorf("unmarshal field embedding: %w", err)
				}
			}
		case memoryevent.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the MemoryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *MemoryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGists queries the "gists" edge of the MemoryEvent entity.
func (_m *MemoryEvent) QueryGists() *EventGistQuery {
	return NewMemoryEventClient(_m.config).QueryGists(_m)
}

// Update returns a builder for updating this MemoryEvent.
// Note that you need to call MemoryEvent.Unwrap() before calling this method if this MemoryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MemoryEvent) Update() *MemoryEventUpdateOne {
	return NewMemoryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MemoryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MemoryEvent) Unwrap() *MemoryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MemoryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MemoryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("MemoryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("event_data=")
	builder.WriteString(fmt.Sprintf("%v", _m.EventData))
	builder.WriteString(", ")
	builder.WriteString("embedding=")
	builder.WriteString(fmt.Sprintf("%v", _m.Embedding))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MemoryEvents is a parsable slice of MemoryEvent.
type MemoryEvents []*MemoryEvent
