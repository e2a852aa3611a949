// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
)

// BufferEntryCreate is the builder for creating a BufferEntry entity.
type BufferEntryCreate struct {
	config
	mutation *BufferEntryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BufferEntryCreate) SetUserID(v string) *BufferEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBlobID sets the "blob_id" field.
func (_c *BufferEntryCreate) SetBlobID(v string) *BufferEntryCreate {
	_c.mutation.SetBlobID(v)
	return _c
}

// SetBlobType sets the "blob_type" field.
func (_c *BufferEntryCreate) SetBlobType(v bufferentry.BlobType) *BufferEntryCreate {
	_c.mutation.SetBlobType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BufferEntryCreate) SetStatus(v bufferentry.Status) *BufferEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BufferEntryCreate) SetNillableStatus(v *bufferentry.Status) *BufferEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTokenSize sets the "token_size" field.
func (_c *BufferEntryCreate) SetTokenSize(v int) *BufferEntryCreate {
	_c.mutation.SetTokenSize(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BufferEntryCreate) SetCreatedAt(v time.Time) *BufferEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BufferEntryCreate) SetNillableCreatedAt(v *time.Time) *BufferEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BufferEntryCreate) SetUpdatedAt(v time.Time) *BufferEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BufferEntryCreate) SetNillableUpdatedAt(v *time.Time) *BufferEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BufferEntryCreate) SetID(v string) *BufferEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BufferEntryMutation object of the builder.
func (_c *BufferEntryCreate) Mutation() *BufferEntryMutation {
	return _c.mutation
}

// Save creates the BufferEntry in the database.
func (_c *BufferEntryCreate) Save(ctx context.Context) (*BufferEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BufferEntryCreate) SaveX(ctx context.Context) *BufferEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BufferEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BufferEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BufferEntryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := bufferentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bufferentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bufferentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BufferEntryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BufferEntry.user_id"`)}
	}
	if _, ok := _c.mutation.BlobID(); !ok {
		return &ValidationError{Name: "blob_id", err: errors.New(`ent: missing required field "BufferEntry.blob_id"`)}
	}
	if _, ok := _c.mutation.BlobType(); !ok {
		return &ValidationError{Name: "blob_type", err: errors.New(`ent: missing required field "BufferEntry.blob_type"`)}
	}
	if v, ok := _c.mutation.BlobType(); ok {
		if err := bufferentry.BlobTypeValidator(v); err != nil {
			return &ValidationError{Name: "blob_type", err: fmt.Errorf(`ent: validator failed for field "BufferEntry.blob_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BufferEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := bufferentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BufferEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokenSize(); !ok {
		return &ValidationError{Name: "token_size", err: errors.New(`ent: missing required field "BufferEntry.token_size"`)}
	}
	if v, ok := _c.mutation.TokenSize(); ok {
		if err := bufferentry.TokenSizeValidator(v); err != nil {
			return &ValidationError{Name: "token_size", err: fmt.Errorf(`ent: validator failed for field "BufferEntry.token_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BufferEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BufferEntry.updated_at"`)}
	}
	return nil
}

func (_c *BufferEntryCreate) sqlSave(ctx context.Context) (*BufferEntry, error) {
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
			return nil, fmt.Errorf("unexpected BufferEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BufferEntryCreate) createSpec() (*BufferEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &BufferEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bufferentry.Table, sqlgraph.NewFieldSpec(bufferentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(bufferentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BlobID(); ok {
		_spec.SetField(bufferentry.FieldBlobID, field.TypeString, value)
		_node.BlobID = value
	}
	if value, ok := _c.mutation.BlobType(); ok {
		_spec.SetField(bufferentry.FieldBlobType, field.TypeEnum, value)
		_node.BlobType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(bufferentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TokenSize(); ok {
		_spec.SetField(bufferentry.FieldTokenSize, field.TypeInt, value)
		_node.TokenSize = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bufferentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bufferentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BufferEntryCreateBulk is the builder for creating many BufferEntry entities in bulk.
type BufferEntryCreateBulk struct {
	config
	err      error
	builders []*BufferEntryCreate
}

// Save creates the BufferEntry entities in the database.
func (_c *BufferEntryCreateBulk) Save(ctx context.Context) ([]*BufferEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BufferEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BufferEntryMutation)
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
func (_c *BufferEntryCreateBulk) SaveX(ctx context.Context) []*BufferEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BufferEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BufferEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
