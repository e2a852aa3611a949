// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/AlwaysBluer/lindorm-memobase/ent/blobrecord"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
	"github.com/AlwaysBluer/lindorm-memobase/ent/eventgist"
	"github.com/AlwaysBluer/lindorm-memobase/ent/memoryevent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/predicate"
	"github.com/AlwaysBluer/lindorm-memobase/ent/userprofile"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBlobRecord  = "BlobRecord"
	TypeBufferEntry = "BufferEntry"
	TypeEventGist   = "EventGist"
	TypeMemoryEvent = "MemoryEvent"
	TypeUserProfile = "UserProfile"
)

// BlobRecordMutation represents an operation that mutates the BlobRecord nodes in the graph.
type BlobRecordMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	blob_type       *blobrecord.BlobType
	blob_data       *json.RawMessage
	appendblob_data json.RawMessage
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*BlobRecord, error)
	predicates      []predicate.BlobRecord
}

var _ ent.Mutation = (*BlobRecordMutation)(nil)

// blobrecordOption allows management of the mutation configuration using functional options.
type blobrecordOption func(*BlobRecordMutation)

// newBlobRecordMutation creates new mutation for the BlobRecord entity.
func newBlobRecordMutation(c config, op Op, opts ...blobrecordOption) *BlobRecordMutation {
	m := &BlobRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeBlobRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlobRecordID sets the ID field of the mutation.
func withBlobRecordID(id string) blobrecordOption {
	return func(m *BlobRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *BlobRecord
		)
		m.oldValue = func(ctx context.Context) (*BlobRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BlobRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlobRecord sets the old BlobRecord of the mutation.
func withBlobRecord(node *BlobRecord) blobrecordOption {
	return func(m *BlobRecordMutation) {
		m.oldValue = func(context.Context) (*BlobRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlobRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlobRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BlobRecord entities.
func (m *BlobRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlobRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlobRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BlobRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BlobRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BlobRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BlobRecord entity.
// If the BlobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BlobRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetBlobType sets the "blob_type" field.
func (m *BlobRecordMutation) SetBlobType(bt blobrecord.BlobType) {
	m.blob_type = &bt
}

// BlobType returns the value of the "blob_type" field in the mutation.
func (m *BlobRecordMutation) BlobType() (r blobrecord.BlobType, exists bool) {
	v := m.blob_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobType returns the old "blob_type" field's value of the BlobRecord entity.
// If the BlobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobRecordMutation) OldBlobType(ctx context.Context) (v blobrecord.BlobType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobType: %w", err)
	}
	return oldValue.BlobType, nil
}

// ResetBlobType resets all changes to the "blob_type" field.
func (m *BlobRecordMutation) ResetBlobType() {
	m.blob_type = nil
}

// SetBlobData sets the "blob_data" field.
func (m *BlobRecordMutation) SetBlobData(jm json.RawMessage) {
	m.blob_data = &jm
	m.appendblob_data = nil
}

// BlobData returns the value of the "blob_data" field in the mutation.
func (m *BlobRecordMutation) BlobData() (r json.RawMessage, exists bool) {
	v := m.blob_data
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobData returns the old "blob_data" field's value of the BlobRecord entity.
// If the BlobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobRecordMutation) OldBlobData(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobData: %w", err)
	}
	return oldValue.BlobData, nil
}

// AppendBlobData adds jm to the "blob_data" field.
func (m *BlobRecordMutation) AppendBlobData(jm json.RawMessage) {
	m.appendblob_data = append(m.appendblob_data, jm...)
}

// AppendedBlobData returns the list of values that were appended to the "blob_data" field in this mutation.
func (m *BlobRecordMutation) AppendedBlobData() (json.RawMessage, bool) {
	if len(m.appendblob_data) == 0 {
		return nil, false
	}
	return m.appendblob_data, true
}

// ResetBlobData resets all changes to the "blob_data" field.
func (m *BlobRecordMutation) ResetBlobData() {
	m.blob_data = nil
	m.appendblob_data = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BlobRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlobRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BlobRecord entity.
// If the BlobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlobRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlobRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the BlobRecordMutation builder.
func (m *BlobRecordMutation) Where(ps ...predicate.BlobRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlobRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlobRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BlobRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlobRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlobRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BlobRecord).
func (m *BlobRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlobRecordMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, blobrecord.FieldUserID)
	}
	if m.blob_type != nil {
		fields = append(fields, blobrecord.FieldBlobType)
	}
	if m.blob_data != nil {
		fields = append(fields, blobrecord.FieldBlobData)
	}
	if m.created_at != nil {
		fields = append(fields, blobrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlobRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case blobrecord.FieldUserID:
		return m.UserID()
	case blobrecord.FieldBlobType:
		return m.BlobType()
	case blobrecord.FieldBlobData:
		return m.BlobData()
	case blobrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlobRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case blobrecord.FieldUserID:
		return m.OldUserID(ctx)
	case blobrecord.FieldBlobType:
		return m.OldBlobType(ctx)
	case blobrecord.FieldBlobData:
		return m.OldBlobData(ctx)
	case blobrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BlobRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlobRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case blobrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case blobrecord.FieldBlobType:
		v, ok := value.(blobrecord.BlobType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobType(v)
		return nil
	case blobrecord.FieldBlobData:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobData(v)
		return nil
	case blobrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BlobRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlobRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlobRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlobRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown BlobRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlobRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlobRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlobRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BlobRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlobRecordMutation) ResetField(name string) error {
	switch name {
	case blobrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case blobrecord.FieldBlobType:
		m.ResetBlobType()
		return nil
	case blobrecord.FieldBlobData:
		m.ResetBlobData()
		return nil
	case blobrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown BlobRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlobRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlobRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlobRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlobRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlobRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlobRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlobRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BlobRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlobRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BlobRecord edge %s", name)
}

// BufferEntryMutation represents an operation that mutates the BufferEntry nodes in the graph.
type BufferEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	blob_id       *string
	blob_type     *bufferentry.BlobType
	status        *bufferentry.Status
	token_size    *int
	addtoken_size *int
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BufferEntry, error)
	predicates    []predicate.BufferEntry
}

var _ ent.Mutation = (*BufferEntryMutation)(nil)

// bufferentryOption allows management of the mutation configuration using functional options.
type bufferentryOption func(*BufferEntryMutation)

// newBufferEntryMutation creates new mutation for the BufferEntry entity.
func newBufferEntryMutation(c config, op Op, opts ...bufferentryOption) *BufferEntryMutation {
	m := &BufferEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeBufferEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBufferEntryID sets the ID field of the mutation.
func withBufferEntryID(id string) bufferentryOption {
	return func(m *BufferEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *BufferEntry
		)
		m.oldValue = func(ctx context.Context) (*BufferEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BufferEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBufferEntry sets the old BufferEntry of the mutation.
func withBufferEntry(node *BufferEntry) bufferentryOption {
	return func(m *BufferEntryMutation) {
		m.oldValue = func(context.Context) (*BufferEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BufferEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BufferEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BufferEntry entities.
func (m *BufferEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BufferEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BufferEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BufferEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BufferEntryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BufferEntryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the BufferEntry entity.
// If the BufferEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BufferEntryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BufferEntryMutation) ResetUserID() {
	m.user_id = nil
}

// SetBlobID sets the "blob_id" field.
func (m *BufferEntryMutation) SetBlobID(s string) {
	m.blob_id = &s
}

// BlobID returns the value of the "blob_id" field in the mutation.
func (m *BufferEntryMutation) BlobID() (r string, exists bool) {
	v := m.blob_id
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobID returns the old "blob_id" field's value of the BufferEntry entity.
// If the BufferEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BufferEntryMutation) OldBlobID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobID: %w", err)
	}
	return oldValue.BlobID, nil
}

// ResetBlobID resets all changes to the "blob_id" field.
func (m *BufferEntryMutation) ResetBlobID() {
	m.blob_id = nil
}

// SetBlobType sets the "blob_type" field.
func (m *BufferEntryMutation) SetBlobType(bt bufferentry.BlobType) {
	m.blob_type = &bt
}

// BlobType returns the value of the "blob_type" field in the mutation.
func (m *BufferEntryMutation) BlobType() (r bufferentry.BlobType, exists bool) {
	v := m.blob_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobType returns the old "blob_type" field's value of the BufferEntry entity.
// If the BufferEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BufferEntryMutation) OldBlobType(ctx context.Context) (v bufferentry.BlobType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobType: %w", err)
	}
	return oldValue.BlobType, nil
}

// ResetBlobType resets all changes to the "blob_type" field.
func (m *BufferEntryMutation) ResetBlobType() {
	m.blob_type = nil
}

// SetStatus sets the "status" field.
func (m *BufferEntryMutation) SetStatus(b bufferentry.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BufferEntryMutation) Status() (r bufferentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BufferEntry entity.
// If the BufferEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BufferEntryMutation) OldStatus(ctx context.Context) (v bufferentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BufferEntryMutation) ResetStatus() {
	m.status = nil
}

// SetTokenSize sets the "token_size" field.
func (m *BufferEntryMutation) SetTokenSize(i int) {
	m.token_size = &i
	m.addtoken_size = nil
}

// TokenSize returns the value of the "token_size" field in the mutation.
func (m *BufferEntryMutation) TokenSize() (r int, exists bool) {
	v := m.token_size
	if v == nil {
		return
	}
	return *v, true
}

// OldTokenSize returns the old "token_size" field's value of the BufferEntry entity.
// If the BufferEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BufferEntryMutation) OldTokenSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokenSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokenSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokenSize: %w", err)
	}
	return oldValue.TokenSize, nil
}

// AddTokenSize adds i to the "token_size" field.
func (m *BufferEntryMutation) AddTokenSize(i int) {
	if m.addtoken_size != nil {
		*m.addtoken_size += i
	} else {
		m.addtoken_size = &i
	}
}

// AddedTokenSize returns the value that was added to the "token_size" field in this mutation.
func (m *BufferEntryMutation) AddedTokenSize() (r int, exists bool) {
	v := m.addtoken_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokenSize resets all changes to the "token_size" field.
func (m *BufferEntryMutation) ResetTokenSize() {
	m.token_size = nil
	m.addtoken_size = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BufferEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BufferEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BufferEntry entity.
// If the BufferEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BufferEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BufferEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BufferEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BufferEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BufferEntry entity.
// If the BufferEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BufferEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BufferEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BufferEntryMutation builder.
func (m *BufferEntryMutation) Where(ps ...predicate.BufferEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BufferEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BufferEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BufferEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BufferEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BufferEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BufferEntry).
func (m *BufferEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BufferEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, bufferentry.FieldUserID)
	}
	if m.blob_id != nil {
		fields = append(fields, bufferentry.FieldBlobID)
	}
	if m.blob_type != nil {
		fields = append(fields, bufferentry.FieldBlobType)
	}
	if m.status != nil {
		fields = append(fields, bufferentry.FieldStatus)
	}
	if m.token_size != nil {
		fields = append(fields, bufferentry.FieldTokenSize)
	}
	if m.created_at != nil {
		fields = append(fields, bufferentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bufferentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BufferEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bufferentry.FieldUserID:
		return m.UserID()
	case bufferentry.FieldBlobID:
		return m.BlobID()
	case bufferentry.FieldBlobType:
		return m.BlobType()
	case bufferentry.FieldStatus:
		return m.Status()
	case bufferentry.FieldTokenSize:
		return m.TokenSize()
	case bufferentry.FieldCreatedAt:
		return m.CreatedAt()
	case bufferentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BufferEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bufferentry.FieldUserID:
		return m.OldUserID(ctx)
	case bufferentry.FieldBlobID:
		return m.OldBlobID(ctx)
	case bufferentry.FieldBlobType:
		return m.OldBlobType(ctx)
	case bufferentry.FieldStatus:
		return m.OldStatus(ctx)
	case bufferentry.FieldTokenSize:
		return m.OldTokenSize(ctx)
	case bufferentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bufferentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BufferEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BufferEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bufferentry.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case bufferentry.FieldBlobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobID(v)
		return nil
	case bufferentry.FieldBlobType:
		v, ok := value.(bufferentry.BlobType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobType(v)
		return nil
	case bufferentry.FieldStatus:
		v, ok := value.(bufferentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case bufferentry.FieldTokenSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokenSize(v)
		return nil
	case bufferentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bufferentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BufferEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BufferEntryMutation) AddedFields() []string {
	var fields []string
	if m.addtoken_size != nil {
		fields = append(fields, bufferentry.FieldTokenSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BufferEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case bufferentry.FieldTokenSize:
		return m.AddedTokenSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BufferEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case bufferentry.FieldTokenSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokenSize(v)
		return nil
	}
	return fmt.Errorf("unknown BufferEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BufferEntryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BufferEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BufferEntryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown BufferEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BufferEntryMutation) ResetField(name string) error {
	switch name {
	case bufferentry.FieldUserID:
		m.ResetUserID()
		return nil
	case bufferentry.FieldBlobID:
		m.ResetBlobID()
		return nil
	case bufferentry.FieldBlobType:
		m.ResetBlobType()
		return nil
	case bufferentry.FieldStatus:
		m.ResetStatus()
		return nil
	case bufferentry.FieldTokenSize:
		m.ResetTokenSize()
		return nil
	case bufferentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bufferentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BufferEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BufferEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BufferEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BufferEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BufferEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BufferEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BufferEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BufferEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BufferEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BufferEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BufferEntry edge %s", name)
}

// EventGistMutation represents an operation that mutates the EventGist nodes in the graph.
type EventGistMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	content         *string
	embedding       *[]float32
	appendembedding []float32
	created_at      *time.Time
	clearedFields   map[string]struct{}
	event           *string
	clearedevent    bool
	done            bool
	oldValue        func(context.Context) (*EventGist, error)
	predicates      []predicate.EventGist
}

var _ ent.Mutation = (*EventGistMutation)(nil)

// eventgistOption allows management of the mutation configuration using functional options.
type eventgistOption func(*EventGistMutation)

// newEventGistMutation creates new mutation for the EventGist entity.
func newEventGistMutation(c config, op Op, opts ...eventgistOption) *EventGistMutation {
	m := &EventGistMutation{
		config:        c,
		op:            op,
		typ:           TypeEventGist,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventGistID sets the ID field of the mutation.
func withEventGistID(id string) eventgistOption {
	return func(m *EventGistMutation) {
		var (
			err   error
			once  sync.Once
			value *EventGist
		)
		m.oldValue = func(ctx context.Context) (*EventGist, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventGist.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventGist sets the old EventGist of the mutation.
func withEventGist(node *EventGist) eventgistOption {
	return func(m *EventGistMutation) {
		m.oldValue = func(context.Context) (*EventGist, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventGistMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventGistMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EventGist entities.
func (m *EventGistMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventGistMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventGistMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventGist.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *EventGistMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *EventGistMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the EventGist entity.
// If the EventGist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGistMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *EventGistMutation) ResetUserID() {
	m.user_id = nil
}

// SetEventID sets the "event_id" field.
func (m *EventGistMutation) SetEventID(s string) {
	m.event = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *EventGistMutation) EventID() (r string, exists bool) {
	v := m.event
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the EventGist entity.
// If the EventGist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGistMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *EventGistMutation) ResetEventID() {
	m.event = nil
}

// SetContent sets the "content" field.
func (m *EventGistMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EventGistMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the EventGist entity.
// If the EventGist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGistMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *EventGistMutation) ResetContent() {
	m.content = nil
}

// SetEmbedding sets the "embedding" field.
func (m *EventGistMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *EventGistMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the EventGist entity.
// If the EventGist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGistMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *EventGistMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *EventGistMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *EventGistMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[eventgist.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *EventGistMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[eventgist.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *EventGistMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, eventgist.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *EventGistMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventGistMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EventGist entity.
// If the EventGist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventGistMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventGistMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearEvent clears the "event" edge to the MemoryEvent entity.
func (m *EventGistMutation) ClearEvent() {
	m.clearedevent = true
	m.clearedFields[eventgist.FieldEventID] = struct{}{}
}

// EventCleared reports if the "event" edge to the MemoryEvent entity was cleared.
func (m *EventGistMutation) EventCleared() bool {
	return m.clearedevent
}

// EventIDs returns the "event" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EventID instead. It exists only for internal usage by the builders.
func (m *EventGistMutation) EventIDs() (ids []string) {
	if id := m.event; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvent resets all changes to the "event" edge.
func (m *EventGistMutation) ResetEvent() {
	m.event = nil
	m.clearedevent = false
}

// Where appends a list predicates to the EventGistMutation builder.
func (m *EventGistMutation) Where(ps ...predicate.EventGist) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventGistMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventGistMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventGist, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventGistMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventGistMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventGist).
func (m *EventGistMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventGistMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, eventgist.FieldUserID)
	}
	if m.event != nil {
		fields = append(fields, eventgist.FieldEventID)
	}
	if m.content != nil {
		fields = append(fields, eventgist.FieldContent)
	}
	if m.embedding != nil {
		fields = append(fields, eventgist.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, eventgist.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventGistMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventgist.FieldUserID:
		return m.UserID()
	case eventgist.FieldEventID:
		return m.EventID()
	case eventgist.FieldContent:
		return m.Content()
	case eventgist.FieldEmbedding:
		return m.Embedding()
	case eventgist.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventGistMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventgist.FieldUserID:
		return m.OldUserID(ctx)
	case eventgist.FieldEventID:
		return m.OldEventID(ctx)
	case eventgist.FieldContent:
		return m.OldContent(ctx)
	case eventgist.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case eventgist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventGist field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventGistMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventgist.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case eventgist.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case eventgist.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case eventgist.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case eventgist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventGist field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventGistMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventGistMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventGistMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EventGist numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventGistMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventgist.FieldEmbedding) {
		fields = append(fields, eventgist.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventGistMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventGistMutation) ClearField(name string) error {
	switch name {
	case eventgist.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown EventGist nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventGistMutation) ResetField(name string) error {
	switch name {
	case eventgist.FieldUserID:
		m.ResetUserID()
		return nil
	case eventgist.FieldEventID:
		m.ResetEventID()
		return nil
	case eventgist.FieldContent:
		m.ResetContent()
		return nil
	case eventgist.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case eventgist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EventGist field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventGistMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.event != nil {
		edges = append(edges, eventgist.EdgeEvent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventGistMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case eventgist.EdgeEvent:
		if id := m.event; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventGistMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventGistMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventGistMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedevent {
		edges = append(edges, eventgist.EdgeEvent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventGistMutation) EdgeCleared(name string) bool {
	switch name {
	case eventgist.EdgeEvent:
		return m.clearedevent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventGistMutation) ClearEdge(name string) error {
	switch name {
	case eventgist.EdgeEvent:
		m.ClearEvent()
		return nil
	}
	return fmt.Errorf("unknown EventGist unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventGistMutation) ResetEdge(name string) error {
	switch name {
	case eventgist.EdgeEvent:
		m.ResetEvent()
		return nil
	}
	return fmt.Errorf("unknown EventGist edge %s", name)
}

// MemoryEventMutation represents an operation that mutates the MemoryEvent nodes in the graph.
type MemoryEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	user_id         *string
	event_data      *models.EventData
	embedding       *[]float32
	appendembedding []float32
	created_at      *time.Time
	clearedFields   map[string]struct{}
	gists           map[string]struct{}
	removedgists    map[string]struct{}
	clearedgists    bool
	done            bool
	oldValue        func(context.Context) (*MemoryEvent, error)
	predicates      []predicate.MemoryEvent
}

var _ ent.Mutation = (*MemoryEventMutation)(nil)

// memoryeventOption allows management of the mutation configuration using functional options.
type memoryeventOption func(*MemoryEventMutation)

// newMemoryEventMutation creates new mutation for the MemoryEvent entity.
func newMemoryEventMutation(c config, op Op, opts ...memoryeventOption) *MemoryEventMutation {
	m := &MemoryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryEventID sets the ID field of the mutation.
func withMemoryEventID(id string) memoryeventOption {
	return func(m *MemoryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryEvent
		)
		m.oldValue = func(ctx context.Context) (*MemoryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryEvent sets the old MemoryEvent of the mutation.
func withMemoryEvent(node *MemoryEvent) memoryeventOption {
	return func(m *MemoryEventMutation) {
		m.oldValue = func(context.Context) (*MemoryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryEvent entities.
func (m *MemoryEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MemoryEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MemoryEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MemoryEvent entity.
// If the MemoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MemoryEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetEventData sets the "event_data" field.
func (m *MemoryEventMutation) SetEventData(md models.EventData) {
	m.event_data = &md
}

// EventData returns the value of the "event_data" field in the mutation.
func (m *MemoryEventMutation) EventData() (r models.EventData, exists bool) {
	v := m.event_data
	if v == nil {
		return
	}
	return *v, true
}

// OldEventData returns the old "event_data" field's value of the MemoryEvent entity.
// If the MemoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEventMutation) OldEventData(ctx context.Context) (v models.EventData, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventData: %w", err)
	}
	return oldValue.EventData, nil
}

// ResetEventData resets all changes to the "event_data" field.
func (m *MemoryEventMutation) ResetEventData() {
	m.event_data = nil
}

// SetEmbedding sets the "embedding" field.
func (m *MemoryEventMutation) SetEmbedding(f []float32) {
	m.embedding = &f
	m.appendembedding = nil
}

// Embedding returns the value of the "embedding" field in the mutation.
func (m *MemoryEventMutation) Embedding() (r []float32, exists bool) {
	v := m.embedding
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbedding returns the old "embedding" field's value of the MemoryEvent entity.
// If the MemoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEventMutation) OldEmbedding(ctx context.Context) (v []float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbedding is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbedding requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbedding: %w", err)
	}
	return oldValue.Embedding, nil
}

// AppendEmbedding adds f to the "embedding" field.
func (m *MemoryEventMutation) AppendEmbedding(f []float32) {
	m.appendembedding = append(m.appendembedding, f...)
}

// AppendedEmbedding returns the list of values that were appended to the "embedding" field in this mutation.
func (m *MemoryEventMutation) AppendedEmbedding() ([]float32, bool) {
	if len(m.appendembedding) == 0 {
		return nil, false
	}
	return m.appendembedding, true
}

// ClearEmbedding clears the value of the "embedding" field.
func (m *MemoryEventMutation) ClearEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	m.clearedFields[memoryevent.FieldEmbedding] = struct{}{}
}

// EmbeddingCleared returns if the "embedding" field was cleared in this mutation.
func (m *MemoryEventMutation) EmbeddingCleared() bool {
	_, ok := m.clearedFields[memoryevent.FieldEmbedding]
	return ok
}

// ResetEmbedding resets all changes to the "embedding" field.
func (m *MemoryEventMutation) ResetEmbedding() {
	m.embedding = nil
	m.appendembedding = nil
	delete(m.clearedFields, memoryevent.FieldEmbedding)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryEvent entity.
// If the MemoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MemoryEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddGistIDs adds the "gists" edge to the EventGist entity by ids.
func (m *MemoryEventMutation) AddGistIDs(ids ...string) {
	if m.gists == nil {
		m.gists = make(map[string]struct{})
	}
	for i := range ids {
		m.gists[ids[i]] = struct{}{}
	}
}

// ClearGists clears the "gists" edge to the EventGist entity.
func (m *MemoryEventMutation) ClearGists() {
	m.clearedgists = true
}

// GistsCleared reports if the "gists" edge to the EventGist entity was cleared.
func (m *MemoryEventMutation) GistsCleared() bool {
	return m.clearedgists
}

// RemoveGistIDs removes the "gists" edge to the EventGist entity by IDs.
func (m *MemoryEventMutation) RemoveGistIDs(ids ...string) {
	if m.removedgists == nil {
		m.removedgists = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.gists, ids[i])
		m.removedgists[ids[i]] = struct{}{}
	}
}

// RemovedGists returns the removed IDs of the "gists" edge to the EventGist entity.
func (m *MemoryEventMutation) RemovedGistsIDs() (ids []string) {
	for id := range m.removedgists {
		ids = append(ids, id)
	}
	return
}

// GistsIDs returns the "gists" edge IDs in the mutation.
func (m *MemoryEventMutation) GistsIDs() (ids []string) {
	for id := range m.gists {
		ids = append(ids, id)
	}
	return
}

// ResetGists resets all changes to the "gists" edge.
func (m *MemoryEventMutation) ResetGists() {
	m.gists = nil
	m.clearedgists = false
	m.removedgists = nil
}

// Where appends a list predicates to the MemoryEventMutation builder.
func (m *MemoryEventMutation) Where(ps ...predicate.MemoryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryEvent).
func (m *MemoryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, memoryevent.FieldUserID)
	}
	if m.event_data != nil {
		fields = append(fields, memoryevent.FieldEventData)
	}
	if m.embedding != nil {
		fields = append(fields, memoryevent.FieldEmbedding)
	}
	if m.created_at != nil {
		fields = append(fields, memoryevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryevent.FieldUserID:
		return m.UserID()
	case memoryevent.FieldEventData:
		return m.EventData()
	case memoryevent.FieldEmbedding:
		return m.Embedding()
	case memoryevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryevent.FieldUserID:
		return m.OldUserID(ctx)
	case memoryevent.FieldEventData:
		return m.OldEventData(ctx)
	case memoryevent.FieldEmbedding:
		return m.OldEmbedding(ctx)
	case memoryevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case memoryevent.FieldEventData:
		v, ok := value.(models.EventData)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventData(v)
		return nil
	case memoryevent.FieldEmbedding:
		v, ok := value.([]float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbedding(v)
		return nil
	case memoryevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MemoryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryevent.FieldEmbedding) {
		fields = append(fields, memoryevent.FieldEmbedding)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryEventMutation) ClearField(name string) error {
	switch name {
	case memoryevent.FieldEmbedding:
		m.ClearEmbedding()
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryEventMutation) ResetField(name string) error {
	switch name {
	case memoryevent.FieldUserID:
		m.ResetUserID()
		return nil
	case memoryevent.FieldEventData:
		m.ResetEventData()
		return nil
	case memoryevent.FieldEmbedding:
		m.ResetEmbedding()
		return nil
	case memoryevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.gists != nil {
		edges = append(edges, memoryevent.EdgeGists)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case memoryevent.EdgeGists:
		ids := make([]ent.Value, 0, len(m.gists))
		for id := range m.gists {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedgists != nil {
		edges = append(edges, memoryevent.EdgeGists)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryEventMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case memoryevent.EdgeGists:
		ids := make([]ent.Value, 0, len(m.removedgists))
		for id := range m.removedgists {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgists {
		edges = append(edges, memoryevent.EdgeGists)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryEventMutation) EdgeCleared(name string) bool {
	switch name {
	case memoryevent.EdgeGists:
		return m.clearedgists
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryEventMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown MemoryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryEventMutation) ResetEdge(name string) error {
	switch name {
	case memoryevent.EdgeGists:
		m.ResetGists()
		return nil
	}
	return fmt.Errorf("unknown MemoryEvent edge %s", name)
}

// UserProfileMutation represents an operation that mutates the UserProfile nodes in the graph.
type UserProfileMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	content       *string
	attributes    *models.ProfileAttributes
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*UserProfile, error)
	predicates    []predicate.UserProfile
}

var _ ent.Mutation = (*UserProfileMutation)(nil)

// userprofileOption allows management of the mutation configuration using functional options.
type userprofileOption func(*UserProfileMutation)

// newUserProfileMutation creates new mutation for the UserProfile entity.
func newUserProfileMutation(c config, op Op, opts ...userprofileOption) *UserProfileMutation {
	m := &UserProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeUserProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserProfileID sets the ID field of the mutation.
func withUserProfileID(id string) userprofileOption {
	return func(m *UserProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *UserProfile
		)
		m.oldValue = func(ctx context.Context) (*UserProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserProfile sets the old UserProfile of the mutation.
func withUserProfile(node *UserProfile) userprofileOption {
	return func(m *UserProfileMutation) {
		m.oldValue = func(context.Context) (*UserProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserProfile entities.
func (m *UserProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *UserProfileMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserProfileMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetContent sets the "content" field.
func (m *UserProfileMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *UserProfileMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *UserProfileMutation) ResetContent() {
	m.content = nil
}

// SetAttributes sets the "attributes" field.
func (m *UserProfileMutation) SetAttributes(ma models.ProfileAttributes) {
	m.attributes = &ma
}

// Attributes returns the value of the "attributes" field in the mutation.
func (m *UserProfileMutation) Attributes() (r models.ProfileAttributes, exists bool) {
	v := m.attributes
	if v == nil {
		return
	}
	return *v, true
}

// OldAttributes returns the old "attributes" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldAttributes(ctx context.Context) (v models.ProfileAttributes, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttributes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttributes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttributes: %w", err)
	}
	return oldValue.Attributes, nil
}

// ResetAttributes resets all changes to the "attributes" field.
func (m *UserProfileMutation) ResetAttributes() {
	m.attributes = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *UserProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserProfile entity.
// If the UserProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the UserProfileMutation builder.
func (m *UserProfileMutation) Where(ps ...predicate.UserProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserProfile).
func (m *UserProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserProfileMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.user_id != nil {
		fields = append(fields, userprofile.FieldUserID)
	}
	if m.content != nil {
		fields = append(fields, userprofile.FieldContent)
	}
	if m.attributes != nil {
		fields = append(fields, userprofile.FieldAttributes)
	}
	if m.created_at != nil {
		fields = append(fields, userprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, userprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case userprofile.FieldUserID:
		return m.UserID()
	case userprofile.FieldContent:
		return m.Content()
	case userprofile.FieldAttributes:
		return m.Attributes()
	case userprofile.FieldCreatedAt:
		return m.CreatedAt()
	case userprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case userprofile.FieldUserID:
		return m.OldUserID(ctx)
	case userprofile.FieldContent:
		return m.OldContent(ctx)
	case userprofile.FieldAttributes:
		return m.OldAttributes(ctx)
	case userprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case userprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case userprofile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case userprofile.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case userprofile.FieldAttributes:
		v, ok := value.(models.ProfileAttributes)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttributes(v)
		return nil
	case userprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case userprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown UserProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserProfileMutation) ResetField(name string) error {
	switch name {
	case userprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case userprofile.FieldContent:
		m.ResetContent()
		return nil
	case userprofile.FieldAttributes:
		m.ResetAttributes()
		return nil
	case userprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case userprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown UserProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown UserProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown UserProfile edge %s", name)
}
