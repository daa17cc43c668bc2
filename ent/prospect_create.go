// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/prospect"
)

// ProspectCreate is the builder for creating a Prospect entity.
type ProspectCreate struct {
	config
	mutation *ProspectMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ProspectCreate) SetTenantID(v string) *ProspectCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *ProspectCreate) SetGroupID(v string) *ProspectCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableGroupID(v *string) *ProspectCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_c *ProspectCreate) SetChannelConfigID(v string) *ProspectCreate {
	_c.mutation.SetChannelConfigID(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ProspectCreate) SetDisplayName(v string) *ProspectCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetUsername sets the "username" field.
func (_c *ProspectCreate) SetUsername(v string) *ProspectCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableUsername(v *string) *ProspectCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ProspectCreate) SetPhone(v string) *ProspectCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ProspectCreate) SetNillablePhone(v *string) *ProspectCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetTelegramUserID sets the "telegram_user_id" field.
func (_c *ProspectCreate) SetTelegramUserID(v int64) *ProspectCreate {
	_c.mutation.SetTelegramUserID(v)
	return _c
}

// SetNillableTelegramUserID sets the "telegram_user_id" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableTelegramUserID(v *int64) *ProspectCreate {
	if v != nil {
		_c.SetTelegramUserID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProspectCreate) SetStatus(v prospect.Status) *ProspectCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableStatus(v *prospect.Status) *ProspectCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastMessagedAt sets the "last_messaged_at" field.
func (_c *ProspectCreate) SetLastMessagedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetLastMessagedAt(v)
	return _c
}

// SetNillableLastMessagedAt sets the "last_messaged_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableLastMessagedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetLastMessagedAt(*v)
	}
	return _c
}

// SetLastRepliedAt sets the "last_replied_at" field.
func (_c *ProspectCreate) SetLastRepliedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetLastRepliedAt(v)
	return _c
}

// SetNillableLastRepliedAt sets the "last_replied_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableLastRepliedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetLastRepliedAt(*v)
	}
	return _c
}

// SetLastExternalID sets the "last_external_id" field.
func (_c *ProspectCreate) SetLastExternalID(v string) *ProspectCreate {
	_c.mutation.SetLastExternalID(v)
	return _c
}

// SetNillableLastExternalID sets the "last_external_id" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableLastExternalID(v *string) *ProspectCreate {
	if v != nil {
		_c.SetLastExternalID(*v)
	}
	return _c
}

// SetConvertedLeadID sets the "converted_lead_id" field.
func (_c *ProspectCreate) SetConvertedLeadID(v string) *ProspectCreate {
	_c.mutation.SetConvertedLeadID(v)
	return _c
}

// SetNillableConvertedLeadID sets the "converted_lead_id" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableConvertedLeadID(v *string) *ProspectCreate {
	if v != nil {
		_c.SetConvertedLeadID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProspectCreate) SetCreatedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableCreatedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProspectCreate) SetUpdatedAt(v time.Time) *ProspectCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProspectCreate) SetNillableUpdatedAt(v *time.Time) *ProspectCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProspectCreate) SetID(v string) *ProspectCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProspectMutation object of the builder.
func (_c *ProspectCreate) Mutation() *ProspectMutation {
	return _c.mutation
}

// Save creates the Prospect in the database.
func (_c *ProspectCreate) Save(ctx context.Context) (*Prospect, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProspectCreate) SaveX(ctx context.Context) *Prospect {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProspectCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := prospect.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := prospect.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := prospect.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProspectCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Prospect.tenant_id"`)}
	}
	if _, ok := _c.mutation.ChannelConfigID(); !ok {
		return &ValidationError{Name: "channel_config_id", err: errors.New(`ent: missing required field "Prospect.channel_config_id"`)}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Prospect.display_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Prospect.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Prospect.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Prospect.updated_at"`)}
	}
	return nil
}

func (_c *ProspectCreate) sqlSave(ctx context.Context) (*Prospect, error) {
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
			return nil, fmt.Errorf("unexpected Prospect.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProspectCreate) createSpec() (*Prospect, *sqlgraph.CreateSpec) {
	var (
		_node = &Prospect{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(prospect.Table, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(prospect.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(prospect.FieldGroupID, field.TypeString, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.ChannelConfigID(); ok {
		_spec.SetField(prospect.FieldChannelConfigID, field.TypeString, value)
		_node.ChannelConfigID = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(prospect.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(prospect.FieldUsername, field.TypeString, value)
		_node.Username = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
		_node.Phone = &value
	}
	if value, ok := _c.mutation.TelegramUserID(); ok {
		_spec.SetField(prospect.FieldTelegramUserID, field.TypeInt64, value)
		_node.TelegramUserID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastMessagedAt(); ok {
		_spec.SetField(prospect.FieldLastMessagedAt, field.TypeTime, value)
		_node.LastMessagedAt = &value
	}
	if value, ok := _c.mutation.LastRepliedAt(); ok {
		_spec.SetField(prospect.FieldLastRepliedAt, field.TypeTime, value)
		_node.LastRepliedAt = &value
	}
	if value, ok := _c.mutation.LastExternalID(); ok {
		_spec.SetField(prospect.FieldLastExternalID, field.TypeString, value)
		_node.LastExternalID = &value
	}
	if value, ok := _c.mutation.ConvertedLeadID(); ok {
		_spec.SetField(prospect.FieldConvertedLeadID, field.TypeString, value)
		_node.ConvertedLeadID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(prospect.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProspectCreateBulk is the builder for creating many Prospect entities in bulk.
type ProspectCreateBulk struct {
	config
	err      error
	builders []*ProspectCreate
}

// Save creates the Prospect entities in the database.
func (_c *ProspectCreateBulk) Save(ctx context.Context) ([]*Prospect, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Prospect, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProspectMutation)
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
func (_c *ProspectCreateBulk) SaveX(ctx context.Context) []*Prospect {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProspectCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProspectCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
