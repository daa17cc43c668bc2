// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/channelconfig"
)

// ChannelConfigCreate is the builder for creating a ChannelConfig entity.
type ChannelConfigCreate struct {
	config
	mutation *ChannelConfigMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ChannelConfigCreate) SetTenantID(v string) *ChannelConfigCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ChannelConfigCreate) SetKind(v channelconfig.Kind) *ChannelConfigCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ChannelConfigCreate) SetName(v string) *ChannelConfigCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *ChannelConfigCreate) SetActive(v bool) *ChannelConfigCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ChannelConfigCreate) SetNillableActive(v *bool) *ChannelConfigCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *ChannelConfigCreate) SetIsDefault(v bool) *ChannelConfigCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *ChannelConfigCreate) SetNillableIsDefault(v *bool) *ChannelConfigCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetCredentials sets the "credentials" field.
func (_c *ChannelConfigCreate) SetCredentials(v map[string]interface{}) *ChannelConfigCreate {
	_c.mutation.SetCredentials(v)
	return _c
}

// SetSettings sets the "settings" field.
func (_c *ChannelConfigCreate) SetSettings(v map[string]interface{}) *ChannelConfigCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ChannelConfigCreate) SetLastError(v string) *ChannelConfigCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ChannelConfigCreate) SetNillableLastError(v *string) *ChannelConfigCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChannelConfigCreate) SetCreatedAt(v time.Time) *ChannelConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChannelConfigCreate) SetNillableCreatedAt(v *time.Time) *ChannelConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChannelConfigCreate) SetUpdatedAt(v time.Time) *ChannelConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChannelConfigCreate) SetNillableUpdatedAt(v *time.Time) *ChannelConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChannelConfigCreate) SetID(v string) *ChannelConfigCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ChannelConfigMutation object of the builder.
func (_c *ChannelConfigCreate) Mutation() *ChannelConfigMutation {
	return _c.mutation
}

// Save creates the ChannelConfig in the database.
func (_c *ChannelConfigCreate) Save(ctx context.Context) (*ChannelConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChannelConfigCreate) SaveX(ctx context.Context) *ChannelConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChannelConfigCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := channelconfig.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := channelconfig.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := channelconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := channelconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChannelConfigCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ChannelConfig.tenant_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ChannelConfig.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := channelconfig.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ChannelConfig.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ChannelConfig.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := channelconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChannelConfig.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ChannelConfig.active"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "ChannelConfig.is_default"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChannelConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ChannelConfig.updated_at"`)}
	}
	return nil
}

func (_c *ChannelConfigCreate) sqlSave(ctx context.Context) (*ChannelConfig, error) {
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
			return nil, fmt.Errorf("unexpected ChannelConfig.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChannelConfigCreate) createSpec() (*ChannelConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &ChannelConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(channelconfig.Table, sqlgraph.NewFieldSpec(channelconfig.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(channelconfig.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(channelconfig.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(channelconfig.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(channelconfig.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(channelconfig.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.Credentials(); ok {
		_spec.SetField(channelconfig.FieldCredentials, field.TypeJSON, value)
		_node.Credentials = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(channelconfig.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(channelconfig.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(channelconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(channelconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ChannelConfigCreateBulk is the builder for creating many ChannelConfig entities in bulk.
type ChannelConfigCreateBulk struct {
	config
	err      error
	builders []*ChannelConfigCreate
}

// Save creates the ChannelConfig entities in the database.
func (_c *ChannelConfigCreateBulk) Save(ctx context.Context) ([]*ChannelConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChannelConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChannelConfigMutation)
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
func (_c *ChannelConfigCreateBulk) SaveX(ctx context.Context) []*ChannelConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChannelConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChannelConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
