// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/secopshq/caseflow/ent/graphnode"
)

// GraphNodeCreate is the builder for creating a GraphNode entity.
type GraphNodeCreate struct {
	config
	mutation *GraphNodeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetLabel sets the "label" field.
func (_c *GraphNodeCreate) SetLabel(v graphnode.Label) *GraphNodeCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetProps sets the "props" field.
func (_c *GraphNodeCreate) SetProps(v map[string]interface{}) *GraphNodeCreate {
	_c.mutation.SetProps(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraphNodeCreate) SetCreatedAt(v time.Time) *GraphNodeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GraphNodeCreate) SetNillableCreatedAt(v *time.Time) *GraphNodeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *GraphNodeCreate) SetUpdatedAt(v time.Time) *GraphNodeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *GraphNodeCreate) SetNillableUpdatedAt(v *time.Time) *GraphNodeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GraphNodeCreate) SetID(v string) *GraphNodeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GraphNodeMutation object of the builder.
func (_c *GraphNodeCreate) Mutation() *GraphNodeMutation {
	return _c.mutation
}

// Save creates the GraphNode in the database.
func (_c *GraphNodeCreate) Save(ctx context.Context) (*GraphNode, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphNodeCreate) SaveX(ctx context.Context) *GraphNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphNodeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphNodeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphNodeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graphnode.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := graphnode.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphNodeCreate) check() error {
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "GraphNode.label"`)}
	}
	if v, ok := _c.mutation.Label(); ok {
		if err := graphnode.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "GraphNode.label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GraphNode.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "GraphNode.updated_at"`)}
	}
	return nil
}

func (_c *GraphNodeCreate) sqlSave(ctx context.Context) (*GraphNode, error) {
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
			return nil, fmt.Errorf("unexpected GraphNode.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GraphNodeCreate) createSpec() (*GraphNode, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphNode{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphnode.Table, sqlgraph.NewFieldSpec(graphnode.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(graphnode.FieldLabel, field.TypeEnum, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Props(); ok {
		_spec.SetField(graphnode.FieldProps, field.TypeJSON, value)
		_node.Props = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graphnode.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(graphnode.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GraphNode.Create().
//		SetLabel(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GraphNodeUpsert) {
//			SetLabel(v+v).
//		}).
//		Exec(ctx)
func (_c *GraphNodeCreate) OnConflict(opts ...sql.ConflictOption) *GraphNodeUpsertOne {
	_c.conflict = opts
	return &GraphNodeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GraphNode.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GraphNodeCreate) OnConflictColumns(columns ...string) *GraphNodeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GraphNodeUpsertOne{
		create: _c,
	}
}

type (
	// GraphNodeUpsertOne is the builder for "upsert"-ing
	//  one GraphNode node.
	GraphNodeUpsertOne struct {
		create *GraphNodeCreate
	}

	// GraphNodeUpsert is the "OnConflict" setter.
	GraphNodeUpsert struct {
		*sql.UpdateSet
	}
)

// SetLabel sets the "label" field.
func (u *GraphNodeUpsert) SetLabel(v graphnode.Label) *GraphNodeUpsert {
	u.Set(graphnode.FieldLabel, v)
	return u
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *GraphNodeUpsert) UpdateLabel() *GraphNodeUpsert {
	u.SetExcluded(graphnode.FieldLabel)
	return u
}

// SetProps sets the "props" field.
func (u *GraphNodeUpsert) SetProps(v map[string]interface{}) *GraphNodeUpsert {
	u.Set(graphnode.FieldProps, v)
	return u
}

// UpdateProps sets the "props" field to the value that was provided on create.
func (u *GraphNodeUpsert) UpdateProps() *GraphNodeUpsert {
	u.SetExcluded(graphnode.FieldProps)
	return u
}

// ClearProps clears the value of the "props" field.
func (u *GraphNodeUpsert) ClearProps() *GraphNodeUpsert {
	u.SetNull(graphnode.FieldProps)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GraphNodeUpsert) SetUpdatedAt(v time.Time) *GraphNodeUpsert {
	u.Set(graphnode.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GraphNodeUpsert) UpdateUpdatedAt() *GraphNodeUpsert {
	u.SetExcluded(graphnode.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GraphNode.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(graphnode.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GraphNodeUpsertOne) UpdateNewValues() *GraphNodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(graphnode.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(graphnode.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GraphNode.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GraphNodeUpsertOne) Ignore() *GraphNodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GraphNodeUpsertOne) DoNothing() *GraphNodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GraphNodeCreate.OnConflict
// documentation for more info.
func (u *GraphNodeUpsertOne) Update(set func(*GraphNodeUpsert)) *GraphNodeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GraphNodeUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabel sets the "label" field.
func (u *GraphNodeUpsertOne) SetLabel(v graphnode.Label) *GraphNodeUpsertOne {
	return u.Update(func(s *GraphNodeUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *GraphNodeUpsertOne) UpdateLabel() *GraphNodeUpsertOne {
	return u.Update(func(s *GraphNodeUpsert) {
		s.UpdateLabel()
	})
}

// SetProps sets the "props" field.
func (u *GraphNodeUpsertOne) SetProps(v map[string]interface{}) *GraphNodeUpsertOne {
	return u.Update(func(s *GraphNodeUpsert) {
		s.SetProps(v)
	})
}

// UpdateProps sets the "props" field to the value that was provided on create.
func (u *GraphNodeUpsertOne) UpdateProps() *GraphNodeUpsertOne {
	return u.Update(func(s *GraphNodeUpsert) {
		s.UpdateProps()
	})
}

// ClearProps clears the value of the "props" field.
func (u *GraphNodeUpsertOne) ClearProps() *GraphNodeUpsertOne {
	return u.Update(func(s *GraphNodeUpsert) {
		s.ClearProps()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GraphNodeUpsertOne) SetUpdatedAt(v time.Time) *GraphNodeUpsertOne {
	return u.Update(func(s *GraphNodeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GraphNodeUpsertOne) UpdateUpdatedAt() *GraphNodeUpsertOne {
	return u.Update(func(s *GraphNodeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GraphNodeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GraphNodeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GraphNodeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GraphNodeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GraphNodeUpsertOne.ID is not supported by MySQL driver. Use GraphNodeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GraphNodeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GraphNodeCreateBulk is the builder for creating many GraphNode entities in bulk.
type GraphNodeCreateBulk struct {
	config
	err      error
	builders []*GraphNodeCreate
	conflict []sql.ConflictOption
}

// Save creates the GraphNode entities in the database.
func (_c *GraphNodeCreateBulk) Save(ctx context.Context) ([]*GraphNode, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphNode, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphNodeMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *GraphNodeCreateBulk) SaveX(ctx context.Context) []*GraphNode {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphNodeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphNodeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GraphNode.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GraphNodeUpsert) {
//			SetLabel(v+v).
//		}).
//		Exec(ctx)
func (_c *GraphNodeCreateBulk) OnConflict(opts ...sql.ConflictOption) *GraphNodeUpsertBulk {
	_c.conflict = opts
	return &GraphNodeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GraphNode.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GraphNodeCreateBulk) OnConflictColumns(columns ...string) *GraphNodeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GraphNodeUpsertBulk{
		create: _c,
	}
}

// GraphNodeUpsertBulk is the builder for "upsert"-ing
// a bulk of GraphNode nodes.
type GraphNodeUpsertBulk struct {
	create *GraphNodeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GraphNode.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(graphnode.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GraphNodeUpsertBulk) UpdateNewValues() *GraphNodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(graphnode.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(graphnode.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GraphNode.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GraphNodeUpsertBulk) Ignore() *GraphNodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GraphNodeUpsertBulk) DoNothing() *GraphNodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GraphNodeCreateBulk.OnConflict
// documentation for more info.
func (u *GraphNodeUpsertBulk) Update(set func(*GraphNodeUpsert)) *GraphNodeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GraphNodeUpsert{UpdateSet: update})
	}))
	return u
}

// SetLabel sets the "label" field.
func (u *GraphNodeUpsertBulk) SetLabel(v graphnode.Label) *GraphNodeUpsertBulk {
	return u.Update(func(s *GraphNodeUpsert) {
		s.SetLabel(v)
	})
}

// UpdateLabel sets the "label" field to the value that was provided on create.
func (u *GraphNodeUpsertBulk) UpdateLabel() *GraphNodeUpsertBulk {
	return u.Update(func(s *GraphNodeUpsert) {
		s.UpdateLabel()
	})
}

// SetProps sets the "props" field.
func (u *GraphNodeUpsertBulk) SetProps(v map[string]interface{}) *GraphNodeUpsertBulk {
	return u.Update(func(s *GraphNodeUpsert) {
		s.SetProps(v)
	})
}

// UpdateProps sets the "props" field to the value that was provided on create.
func (u *GraphNodeUpsertBulk) UpdateProps() *GraphNodeUpsertBulk {
	return u.Update(func(s *GraphNodeUpsert) {
		s.UpdateProps()
	})
}

// ClearProps clears the value of the "props" field.
func (u *GraphNodeUpsertBulk) ClearProps() *GraphNodeUpsertBulk {
	return u.Update(func(s *GraphNodeUpsert) {
		s.ClearProps()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *GraphNodeUpsertBulk) SetUpdatedAt(v time.Time) *GraphNodeUpsertBulk {
	return u.Update(func(s *GraphNodeUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *GraphNodeUpsertBulk) UpdateUpdatedAt() *GraphNodeUpsertBulk {
	return u.Update(func(s *GraphNodeUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *GraphNodeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GraphNodeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GraphNodeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GraphNodeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
