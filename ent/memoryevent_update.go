// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/AlwaysBluer/lindorm-memobase/ent/eventgist"
	"github.com/AlwaysBluer/lindorm-memobase/ent/memoryevent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/predicate"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// MemoryEventUpdate is the builder for updating MemoryEvent entities.
type MemoryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MemoryEventMutation
}

// Where appends a list predicates to the MemoryEventUpdate builder.
func (_u *MemoryEventUpdate) Where(ps ...predicate.MemoryEvent) *MemoryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEventData sets the "event_data" field.
func (_u *MemoryEventUpdate) SetEventData(v models.EventData) *MemoryEventUpdate {
	_u.mutation.SetEventData(v)
	return _u
}

// SetNillableEventData sets the "event_data" field if the given value is not nil.
func (_u *MemoryEventUpdate) SetNillableEventData(v *models.EventData) *MemoryEventUpdate {
	if v != nil {
		_u.SetEventData(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryEventUpdate) SetEmbedding(v []float32) *MemoryEventUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryEventUpdate) AppendEmbedding(v []float32) *MemoryEventUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryEventUpdate) ClearEmbedding() *MemoryEventUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// AddGistIDs adds the "gists" edge to the EventGist entity by IDs.
func (_u *MemoryEventUpdate) AddGistIDs(ids ...string) *MemoryEventUpdate {
	_u.mutation.AddGistIDs(ids...)
	return _u
}

// AddGists adds the "gists" edges to the EventGist entity.
func (_u *MemoryEventUpdate) AddGists(v ...*EventGist) *MemoryEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGistIDs(ids...)
}

// Mutation returns the MemoryEventMutation object of the builder.
func (_u *MemoryEventUpdate) Mutation() *MemoryEventMutation {
	return _u.mutation
}

// ClearGists clears all "gists" edges to the EventGist entity.
func (_u *MemoryEventUpdate) ClearGists() *MemoryEventUpdate {
	_u.mutation.ClearGists()
	return _u
}

// RemoveGistIDs removes the "gists" edge to EventGist entities by IDs.
func (_u *MemoryEventUpdate) RemoveGistIDs(ids ...string) *MemoryEventUpdate {
	_u.mutation.RemoveGistIDs(ids...)
	return _u
}

// RemoveGists removes "gists" edges to EventGist entities.
func (_u *MemoryEventUpdate) RemoveGists(v ...*EventGist) *MemoryEventUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGistIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MemoryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MemoryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MemoryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(memoryevent.Table, memoryevent.Columns, sqlgraph.NewFieldSpec(memoryevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventData(); ok {
		_spec.SetField(memoryevent.FieldEventData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryevent.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryevent.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryevent.FieldEmbedding, field.TypeJSON)
	}
	if _u.mutation.GistsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryevent.GistsTable,
			Columns: []string{memoryevent.GistsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventgist.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGistsIDs(); len(nodes) > 0 && !_u.mutation.GistsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryevent.GistsTable,
			Columns: []string{memoryevent.GistsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventgist.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GistsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryevent.GistsTable,
			Columns: []string{memoryevent.GistsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventgist.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MemoryEventUpdateOne is the builder for updating a single MemoryEvent entity.
type MemoryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MemoryEventMutation
}

// SetEventData sets the "event_data" field.
func (_u *MemoryEventUpdateOne) SetEventData(v models.EventData) *MemoryEventUpdateOne {
	_u.mutation.SetEventData(v)
	return _u
}

// SetNillableEventData sets the "event_data" field if the given value is not nil.
func (_u *MemoryEventUpdateOne) SetNillableEventData(v *models.EventData) *MemoryEventUpdateOne {
	if v != nil {
		_u.SetEventData(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *MemoryEventUpdateOne) SetEmbedding(v []float32) *MemoryEventUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *MemoryEventUpdateOne) AppendEmbedding(v []float32) *MemoryEventUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *MemoryEventUpdateOne) ClearEmbedding() *MemoryEventUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// AddGistIDs adds the "gists" edge to the EventGist entity by IDs.
func (_u *MemoryEventUpdateOne) AddGistIDs(ids ...string) *MemoryEventUpdateOne {
	_u.mutation.AddGistIDs(ids...)
	return _u
}

// AddGists adds the "gists" edges to the EventGist entity.
func (_u *MemoryEventUpdateOne) AddGists(v ...*EventGist) *MemoryEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddGistIDs(ids...)
}

// Mutation returns the MemoryEventMutation object of the builder.
func (_u *MemoryEventUpdateOne) Mutation() *MemoryEventMutation {
	return _u.mutation
}

// ClearGists clears all "gists" edges to the EventGist entity.
func (_u *MemoryEventUpdateOne) ClearGists() *MemoryEventUpdateOne {
	_u.mutation.ClearGists()
	return _u
}

// RemoveGistIDs removes the "gists" edge to EventGist entities by IDs.
func (_u *MemoryEventUpdateOne) RemoveGistIDs(ids ...string) *MemoryEventUpdateOne {
	_u.mutation.RemoveGistIDs(ids...)
	return _u
}

// RemoveGists removes "gists" edges to EventGist entities.
func (_u *MemoryEventUpdateOne) RemoveGists(v ...*EventGist) *MemoryEventUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveGistIDs(ids...)
}

// Where appends a list predicates to the MemoryEventUpdate builder.
func (_u *MemoryEventUpdateOne) Where(ps ...predicate.MemoryEvent) *MemoryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MemoryEventUpdateOne) Select(field string, fields ...string) *MemoryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MemoryEvent entity.
func (_u *MemoryEventUpdateOne) Save(ctx context.Context) (*MemoryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MemoryEventUpdateOne) SaveX(ctx context.Context) *MemoryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MemoryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MemoryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MemoryEventUpdateOne) sqlSave(ctx context.Context) (_node *MemoryEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(memoryevent.Table, memoryevent.Columns, sqlgraph.NewFieldSpec(memoryevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MemoryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, memoryevent.FieldID)
		for _, f := range fields {
			if !memoryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != memoryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EventData(); ok {
		_spec.SetField(memoryevent.FieldEventData, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(memoryevent.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, memoryevent.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(memoryevent.FieldEmbedding, field.TypeJSON)
	}
	if _u.mutation.GistsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryevent.GistsTable,
			Columns: []string{memoryevent.GistsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventgist.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedGistsIDs(); len(nodes) > 0 && !_u.mutation.GistsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryevent.GistsTable,
			Columns: []string{memoryevent.GistsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventgist.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GistsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   memoryevent.GistsTable,
			Columns: []string{memoryevent.GistsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(eventgist.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &MemoryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{memoryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
