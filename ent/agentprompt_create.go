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
	"github.com/secopshq/caseflow/ent/agentprompt"
)

// AgentPromptCreate is the builder for creating a AgentPrompt entity.
type AgentPromptCreate struct {
	config
	mutation *AgentPromptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAgentName sets the "agent_name" field.
func (_c *AgentPromptCreate) SetAgentName(v string) *AgentPromptCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *AgentPromptCreate) SetVersion(v string) *AgentPromptCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *AgentPromptCreate) SetContent(v string) *AgentPromptCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentPromptCreate) SetCreatedAt(v time.Time) *AgentPromptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentPromptCreate) SetNillableCreatedAt(v *time.Time) *AgentPromptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetModifiedBy sets the "modified_by" field.
func (_c *AgentPromptCreate) SetModifiedBy(v string) *AgentPromptCreate {
	_c.mutation.SetModifiedBy(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *AgentPromptCreate) SetIsActive(v bool) *AgentPromptCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *AgentPromptCreate) SetNillableIsActive(v *bool) *AgentPromptCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentPromptCreate) SetID(v string) *AgentPromptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AgentPromptMutation object of the builder.
func (_c *AgentPromptCreate) Mutation() *AgentPromptMutation {
	return _c.mutation
}

// Save creates the AgentPrompt in the database.
func (_c *AgentPromptCreate) Save(ctx context.Context) (*AgentPrompt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentPromptCreate) SaveX(ctx context.Context) *AgentPrompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPromptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPromptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentPromptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agentprompt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := agentprompt.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentPromptCreate) check() error {
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AgentPrompt.agent_name"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AgentPrompt.version"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "AgentPrompt.content"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AgentPrompt.created_at"`)}
	}
	if _, ok := _c.mutation.ModifiedBy(); !ok {
		return &ValidationError{Name: "modified_by", err: errors.New(`ent: missing required field "AgentPrompt.modified_by"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "AgentPrompt.is_active"`)}
	}
	return nil
}

func (_c *AgentPromptCreate) sqlSave(ctx context.Context) (*AgentPrompt, error) {
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
			return nil, fmt.Errorf("unexpected AgentPrompt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentPromptCreate) createSpec() (*AgentPrompt, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentPrompt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentprompt.Table, sqlgraph.NewFieldSpec(agentprompt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(agentprompt.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(agentprompt.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(agentprompt.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agentprompt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ModifiedBy(); ok {
		_spec.SetField(agentprompt.FieldModifiedBy, field.TypeString, value)
		_node.ModifiedBy = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(agentprompt.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentPrompt.Create().
//		SetAgentName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentPromptUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentPromptCreate) OnConflict(opts ...sql.ConflictOption) *AgentPromptUpsertOne {
	_c.conflict = opts
	return &AgentPromptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentPrompt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentPromptCreate) OnConflictColumns(columns ...string) *AgentPromptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentPromptUpsertOne{
		create: _c,
	}
}

type (
	// AgentPromptUpsertOne is the builder for "upsert"-ing
	//  one AgentPrompt node.
	AgentPromptUpsertOne struct {
		create *AgentPromptCreate
	}

	// AgentPromptUpsert is the "OnConflict" setter.
	AgentPromptUpsert struct {
		*sql.UpdateSet
	}
)

// SetIsActive sets the "is_active" field.
func (u *AgentPromptUpsert) SetIsActive(v bool) *AgentPromptUpsert {
	u.Set(agentprompt.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AgentPromptUpsert) UpdateIsActive() *AgentPromptUpsert {
	u.SetExcluded(agentprompt.FieldIsActive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AgentPrompt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentprompt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentPromptUpsertOne) UpdateNewValues() *AgentPromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(agentprompt.FieldID)
		}
		if _, exists := u.create.mutation.AgentName(); exists {
			s.SetIgnore(agentprompt.FieldAgentName)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(agentprompt.FieldVersion)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(agentprompt.FieldContent)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agentprompt.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.ModifiedBy(); exists {
			s.SetIgnore(agentprompt.FieldModifiedBy)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentPrompt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentPromptUpsertOne) Ignore() *AgentPromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentPromptUpsertOne) DoNothing() *AgentPromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentPromptCreate.OnConflict
// documentation for more info.
func (u *AgentPromptUpsertOne) Update(set func(*AgentPromptUpsert)) *AgentPromptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentPromptUpsert{UpdateSet: update})
	}))
	return u
}

// SetIsActive sets the "is_active" field.
func (u *AgentPromptUpsertOne) SetIsActive(v bool) *AgentPromptUpsertOne {
	return u.Update(func(s *AgentPromptUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AgentPromptUpsertOne) UpdateIsActive() *AgentPromptUpsertOne {
	return u.Update(func(s *AgentPromptUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AgentPromptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentPromptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentPromptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentPromptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AgentPromptUpsertOne.ID is not supported by MySQL driver. Use AgentPromptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentPromptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentPromptCreateBulk is the builder for creating many AgentPrompt entities in bulk.
type AgentPromptCreateBulk struct {
	config
	err      error
	builders []*AgentPromptCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentPrompt entities in the database.
func (_c *AgentPromptCreateBulk) Save(ctx context.Context) ([]*AgentPrompt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentPrompt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentPromptMutation)
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
func (_c *AgentPromptCreateBulk) SaveX(ctx context.Context) []*AgentPrompt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentPromptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentPromptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentPrompt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentPromptUpsert) {
//			SetAgentName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentPromptCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentPromptUpsertBulk {
	_c.conflict = opts
	return &AgentPromptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentPrompt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentPromptCreateBulk) OnConflictColumns(columns ...string) *AgentPromptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentPromptUpsertBulk{
		create: _c,
	}
}

// AgentPromptUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentPrompt nodes.
type AgentPromptUpsertBulk struct {
	create *AgentPromptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentPrompt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(agentprompt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AgentPromptUpsertBulk) UpdateNewValues() *AgentPromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(agentprompt.FieldID)
			}
			if _, exists := b.mutation.AgentName(); exists {
				s.SetIgnore(agentprompt.FieldAgentName)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(agentprompt.FieldVersion)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(agentprompt.FieldContent)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agentprompt.FieldCreatedAt)
			}
			if _, exists := b.mutation.ModifiedBy(); exists {
				s.SetIgnore(agentprompt.FieldModifiedBy)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentPrompt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentPromptUpsertBulk) Ignore() *AgentPromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentPromptUpsertBulk) DoNothing() *AgentPromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentPromptCreateBulk.OnConflict
// documentation for more info.
func (u *AgentPromptUpsertBulk) Update(set func(*AgentPromptUpsert)) *AgentPromptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentPromptUpsert{UpdateSet: update})
	}))
	return u
}

// SetIsActive sets the "is_active" field.
func (u *AgentPromptUpsertBulk) SetIsActive(v bool) *AgentPromptUpsertBulk {
	return u.Update(func(s *AgentPromptUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *AgentPromptUpsertBulk) UpdateIsActive() *AgentPromptUpsertBulk {
	return u.Update(func(s *AgentPromptUpsert) {
		s.UpdateIsActive()
	})
}

// Exec executes the query.
func (u *AgentPromptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentPromptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentPromptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentPromptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
