// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AlwaysBluer/lindorm-memobase/ent/blobrecord"
)

// BlobRecordCreate is the builder for creating a BlobRecord entity.
type BlobRecordCreate struct {
	config
	mutation *BlobRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BlobRecordCreate) SetUserID(v string) *BlobRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBlobType sets the "blob_type" field.
func (_c *BlobRecordCreate) SetBlobType(v blobrecord.BlobType) *BlobRecordCreate {
	_c.mutation.SetBlobType(v)
	return _c
}

// SetBlobData sets the "blob_data" field.
func (_c *BlobRecordCreate) SetBlobData(v json.RawMessage) *BlobRecordCreate {
	_c.mutation.SetBlobData(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlobRecordCreate) SetCreatedAt(v time.Time) *BlobRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlobRecordCreate) SetNillableCreatedAt(v *time.Time) *BlobRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlobRecordCreate) SetID(v string) *BlobRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BlobRecordMutation object of the builder.
func (_c *BlobRecordCreate) Mutation() *BlobRecordMutation {
	return _c.mutation
}

// Save creates the BlobRecord in the database.
func (_c *BlobRecordCreate) Save(ctx context.Context) (*BlobRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlobRecordCreate) SaveX(ctx context.Context) *BlobRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlobRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blobrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlobRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BlobRecord.user_id"`)}
	}
	if _, ok := _c.mutation.BlobType(); !ok {
		return &ValidationError{Name: "blob_type", err: errors.New(`ent: missing required field "BlobRecord.blob_type"`)}
	}
	if v, ok := _c.mutation.BlobType(); ok {
		if err := blobrecord.BlobTypeValidator(v); err != nil {
			return &ValidationError{Name: "blob_type", err: fmt.Errorf(`ent: validator failed for field "BlobRecord.blob_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlobData(); !ok {
		return &ValidationError{Name: "blob_data", err: errors.New(`ent: missing required field "BlobRecord.blob_data"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BlobRecord.created_at"`)}
	}
	return nil
}

func (_c *BlobRecordCreate) sqlSave(ctx context.Context) (*BlobRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected BlobRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlobRecordCreate) createSpec() (*BlobRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &BlobRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blobrecord.Table, sqlgraph.NewFieldSpec(blobrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(blobrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BlobType(); ok {
		_spec.SetField(blobrecord.FieldBlobType, field.TypeEnum, value)
		_node.BlobType = value
	}
	if value, ok := _c.mutation.BlobData(); ok {
		_spec.SetField(blobrecord.FieldBlobData, field.TypeJSON, value)
		_node.BlobData = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blobrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BlobRecordCreateBulk is the builder for creating many BlobRecord entities in bulk.
type BlobRecordCreateBulk struct {
	config
	err      error
	builders []*BlobRecordCreate
}

// Save creates the BlobRecord entities in the database.
func (_c *BlobRecordCreateBulk) Save(ctx context.Context) ([]*BlobRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlobRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlobRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BlobRecordCreateBulk) SaveX(ctx context.Context) []*BlobRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlobRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlobRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
