// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/prospectgroup"
)

// ProspectGroupCreate is the builder for creating a ProspectGroup entity.
type ProspectGroupCreate struct {
	config
	mutation *ProspectGroupMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ProspectGroupCreate) SetTenantID(v string) *ProspectGroupCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_c *ProspectGroupCreate) SetChannelConfigID(v string) *ProspectGroupCreate {
	_c.mutation.SetChannelConfigID(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *ProspectGroupCreate) SetExternalID(v string) *ProspectGroupCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProspectGroupCreate) SetName(v string) *ProspectGroupCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetMemberCount sets the "member_count" field.
func (_c *ProspectGroupCreate) SetMemberCount(v int) *ProspectGroupCreate {
	_c.mutation.SetMemberCount(v)
	return _c
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_c *ProspectGroupCreate) SetNillableMemberCount(v *int) *ProspectGroupCreate {
	if v != nil {
		_c.SetMemberCount(*v)
	}
	return _c
}

// SetImportedAt sets the "imported_at" field.
func (_c *ProspectGroupCreate) SetImportedAt(v time.Time) *ProspectGroupCreate {
	_c.mutation.SetImportedAt(v)
	return _c
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_c *ProspectGroupCreate) SetNillableImportedAt(v *time.Time) *ProspectGroupCreate {
	if v != nil {
		_c.SetImportedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProspectGroupCreate) SetCreatedAt(v time.Time) *ProspectGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProspectGroupCreate) SetNillableCreatedAt(v *time.Time) *ProspectGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProspectGroupCreate) SetID(v string) *ProspectGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProspectGroupMutation object of the builder.
func (_c *ProspectGroupCreate) Mutation() *ProspectGroupMutation {
	return _c.mutation
}

// Save creates the ProspectGroup in the database.
func (_c *ProspectGroupCreate) Save(ctx context.Context) (*ProspectGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProspectGroupCreate) SaveX(ctx context.Context) *ProspectGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProspectGroupCreate) defaults() {
	if _, ok := _c.mutation.MemberCount(); !ok {
		v := prospectgroup.DefaultMemberCount
		_c.mutation.SetMemberCount(v)
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		v := prospectgroup.DefaultImportedAt()
		_c.mutation.SetImportedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prospectgroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProspectGroupCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ProspectGroup.tenant_id"`)}
	}
	if _, ok := _c.mutation.ChannelConfigID(); !ok {
		return &ValidationError{Name: "channel_config_id", err: errors.New(`ent: missing required field "ProspectGroup.channel_config_id"`)}
	}
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "ProspectGroup.external_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ProspectGroup.name"`)}
	}
	if _, ok := _c.mutation.MemberCount(); !ok {
		return &ValidationError{Name: "member_count", err: errors.New(`ent: missing required field "ProspectGroup.member_count"`)}
	}
	if _, ok := _c.mutation.ImportedAt(); !ok {
		return &ValidationError{Name: "imported_at", err: errors.New(`ent: missing required field "ProspectGroup.imported_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProspectGroup.created_at"`)}
	}
	return nil
}

func (_c *ProspectGroupCreate) sqlSave(ctx context.Context) (*ProspectGroup, error) {
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
			return nil, fmt.Errorf("unexpected ProspectGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProspectGroupCreate) createSpec() (*ProspectGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &ProspectGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prospectgroup.Table, sqlgraph.NewFieldSpec(prospectgroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(prospectgroup.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.ChannelConfigID(); ok {
		_spec.SetField(prospectgroup.FieldChannelConfigID, field.TypeString, value)
		_node.ChannelConfigID = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(prospectgroup.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(prospectgroup.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.MemberCount(); ok {
		_spec.SetField(prospectgroup.FieldMemberCount, field.TypeInt, value)
		_node.MemberCount = value
	}
	if value, ok := _c.mutation.ImportedAt(); ok {
		_spec.SetField(prospectgroup.FieldImportedAt, field.TypeTime, value)
		_node.ImportedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prospectgroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProspectGroupCreateBulk is the builder for creating many ProspectGroup entities in bulk.
type ProspectGroupCreateBulk struct {
	config
	err      error
	builders []*ProspectGroupCreate
}

// Save creates the ProspectGroup entities in the database.
func (_c *ProspectGroupCreateBulk) Save(ctx context.Context) ([]*ProspectGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProspectGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProspectGroupMutation)
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
func (_c *ProspectGroupCreateBulk) SaveX(ctx context.Context) []*ProspectGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
