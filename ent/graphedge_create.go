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
	"github.com/secopshq/caseflow/ent/graphedge"
)

// GraphEdgeCreate is the builder for creating a GraphEdge entity.
type GraphEdgeCreate struct {
	config
	mutation *GraphEdgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSrcID sets the "src_id" field.
func (_c *GraphEdgeCreate) SetSrcID(v string) *GraphEdgeCreate {
	_c.mutation.SetSrcID(v)
	return _c
}

// SetDstID sets the "dst_id" field.
func (_c *GraphEdgeCreate) SetDstID(v string) *GraphEdgeCreate {
	_c.mutation.SetDstID(v)
	return _c
}

// SetRelType sets the "rel_type" field.
func (_c *GraphEdgeCreate) SetRelType(v graphedge.RelType) *GraphEdgeCreate {
	_c.mutation.SetRelType(v)
	return _c
}

// SetProps sets the "props" field.
func (_c *GraphEdgeCreate) SetProps(v map[string]interface{}) *GraphEdgeCreate {
	_c.mutation.SetProps(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GraphEdgeCreate) SetCreatedAt(v time.Time) *GraphEdgeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableCreatedAt(v *time.Time) *GraphEdgeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GraphEdgeCreate) SetID(v string) *GraphEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_c *GraphEdgeCreate) Mutation() *GraphEdgeMutation {
	return _c.mutation
}

// Save creates the GraphEdge in the database.
func (_c *GraphEdgeCreate) Save(ctx context.Context) (*GraphEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphEdgeCreate) SaveX(ctx context.Context) *GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphEdgeCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := graphedge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphEdgeCreate) check() error {
	if _, ok := _c.mutation.SrcID(); !ok {
		return &ValidationError{Name: "src_id", err: errors.New(`ent: missing required field "GraphEdge.src_id"`)}
	}
	if _, ok := _c.mutation.DstID(); !ok {
		return &ValidationError{Name: "dst_id", err: errors.New(`ent: missing required field "GraphEdge.dst_id"`)}
	}
	if _, ok := _c.mutation.RelType(); !ok {
		return &ValidationError{Name: "rel_type", err: errors.New(`ent: missing required field "GraphEdge.rel_type"`)}
	}
	if v, ok := _c.mutation.RelType(); ok {
		if err := graphedge.RelTypeValidator(v); err != nil {
			return &ValidationError{Name: "rel_type", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.rel_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GraphEdge.created_at"`)}
	}
	return nil
}

func (_c *GraphEdgeCreate) sqlSave(ctx context.Context) (*GraphEdge, error) {
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
			return nil, fmt.Errorf("unexpected GraphEdge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GraphEdgeCreate) createSpec() (*GraphEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphedge.Table, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SrcID(); ok {
		_spec.SetField(graphedge.FieldSrcID, field.TypeString, value)
		_node.SrcID = value
	}
	if value, ok := _c.mutation.DstID(); ok {
		_spec.SetField(graphedge.FieldDstID, field.TypeString, value)
		_node.DstID = value
	}
	if value, ok := _c.mutation.RelType(); ok {
		_spec.SetField(graphedge.FieldRelType, field.TypeEnum, value)
		_node.RelType = value
	}
	if value, ok := _c.mutation.Props(); ok {
		_spec.SetField(graphedge.FieldProps, field.TypeJSON, value)
		_node.Props = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(graphedge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GraphEdge.Create().
//		SetSrcID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GraphEdgeUpsert) {
//			SetSrcID(v+v).
//		}).
//		Exec(ctx)
func (_c *GraphEdgeCreate) OnConflict(opts ...sql.ConflictOption) *GraphEdgeUpsertOne {
	_c.conflict = opts
	return &GraphEdgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GraphEdgeCreate) OnConflictColumns(columns ...string) *GraphEdgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GraphEdgeUpsertOne{
		create: _c,
	}
}

type (
	// GraphEdgeUpsertOne is the builder for "upsert"-ing
	//  one GraphEdge node.
	GraphEdgeUpsertOne struct {
		create *GraphEdgeCreate
	}

	// GraphEdgeUpsert is the "OnConflict" setter.
	GraphEdgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetRelType sets the "rel_type" field.
func (u *GraphEdgeUpsert) SetRelType(v graphedge.RelType) *GraphEdgeUpsert {
	u.Set(graphedge.FieldRelType, v)
	return u
}

// UpdateRelType sets the "rel_type" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateRelType() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldRelType)
	return u
}

// SetProps sets the "props" field.
func (u *GraphEdgeUpsert) SetProps(v map[string]interface{}) *GraphEdgeUpsert {
	u.Set(graphedge.FieldProps, v)
	return u
}

// UpdateProps sets the "props" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateProps() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldProps)
	return u
}

// ClearProps clears the value of the "props" field.
func (u *GraphEdgeUpsert) ClearProps() *GraphEdgeUpsert {
	u.SetNull(graphedge.FieldProps)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(graphedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GraphEdgeUpsertOne) UpdateNewValues() *GraphEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(graphedge.FieldID)
		}
		if _, exists := u.create.mutation.SrcID(); exists {
			s.SetIgnore(graphedge.FieldSrcID)
		}
		if _, exists := u.create.mutation.DstID(); exists {
			s.SetIgnore(graphedge.FieldDstID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(graphedge.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GraphEdgeUpsertOne) Ignore() *GraphEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GraphEdgeUpsertOne) DoNothing() *GraphEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GraphEdgeCreate.OnConflict
// documentation for more info.
func (u *GraphEdgeUpsertOne) Update(set func(*GraphEdgeUpsert)) *GraphEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GraphEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetRelType sets the "rel_type" field.
func (u *GraphEdgeUpsertOne) SetRelType(v graphedge.RelType) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetRelType(v)
	})
}

// UpdateRelType sets the "rel_type" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateRelType() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateRelType()
	})
}

// SetProps sets the "props" field.
func (u *GraphEdgeUpsertOne) SetProps(v map[string]interface{}) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetProps(v)
	})
}

// UpdateProps sets the "props" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateProps() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateProps()
	})
}

// ClearProps clears the value of the "props" field.
func (u *GraphEdgeUpsertOne) ClearProps() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.ClearProps()
	})
}

// Exec executes the query.
func (u *GraphEdgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GraphEdgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GraphEdgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GraphEdgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GraphEdgeUpsertOne.ID is not supported by MySQL driver. Use GraphEdgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GraphEdgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GraphEdgeCreateBulk is the builder for creating many GraphEdge entities in bulk.
type GraphEdgeCreateBulk struct {
	config
	err      error
	builders []*GraphEdgeCreate
	conflict []sql.ConflictOption
}

// Save creates the GraphEdge entities in the database.
func (_c *GraphEdgeCreateBulk) Save(ctx context.Context) ([]*GraphEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphEdgeMutation)
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
func (_c *GraphEdgeCreateBulk) SaveX(ctx context.Context) []*GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GraphEdge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GraphEdgeUpsert) {
//			SetSrcID(v+v).
//		}).
//		Exec(ctx)
func (_c *GraphEdgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *GraphEdgeUpsertBulk {
	_c.conflict = opts
	return &GraphEdgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GraphEdgeCreateBulk) OnConflictColumns(columns ...string) *GraphEdgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GraphEdgeUpsertBulk{
		create: _c,
	}
}

// GraphEdgeUpsertBulk is the builder for "upsert"-ing
// a bulk of GraphEdge nodes.
type GraphEdgeUpsertBulk struct {
	create *GraphEdgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(graphedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GraphEdgeUpsertBulk) UpdateNewValues() *GraphEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(graphedge.FieldID)
			}
			if _, exists := b.mutation.SrcID(); exists {
				s.SetIgnore(graphedge.FieldSrcID)
			}
			if _, exists := b.mutation.DstID(); exists {
				s.SetIgnore(graphedge.FieldDstID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(graphedge.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GraphEdgeUpsertBulk) Ignore() *GraphEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GraphEdgeUpsertBulk) DoNothing() *GraphEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GraphEdgeCreateBulk.OnConflict
// documentation for more info.
func (u *GraphEdgeUpsertBulk) Update(set func(*GraphEdgeUpsert)) *GraphEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GraphEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetRelType sets the "rel_type" field.
func (u *GraphEdgeUpsertBulk) SetRelType(v graphedge.RelType) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetRelType(v)
	})
}

// UpdateRelType sets the "rel_type" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateRelType() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateRelType()
	})
}

// SetProps sets the "props" field.
func (u *GraphEdgeUpsertBulk) SetProps(v map[string]interface{}) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetProps(v)
	})
}

// UpdateProps sets the "props" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateProps() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateProps()
	})
}

// ClearProps clears the value of the "props" field.
func (u *GraphEdgeUpsertBulk) ClearProps() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.ClearProps()
	})
}

// Exec executes the query.
func (u *GraphEdgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GraphEdgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GraphEdgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GraphEdgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
