// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/campaignstep"
)

// CampaignStepCreate is the builder for creating a CampaignStep entity.
type CampaignStepCreate struct {
	config
	mutation *CampaignStepMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *CampaignStepCreate) SetTenantID(v string) *CampaignStepCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCampaignID sets the "campaign_id" field.
func (_c *CampaignStepCreate) SetCampaignID(v string) *CampaignStepCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetStepOrder sets the "step_order" field.
func (_c *CampaignStepCreate) SetStepOrder(v int) *CampaignStepCreate {
	_c.mutation.SetStepOrder(v)
	return _c
}

// SetChannelKind sets the "channel_kind" field.
func (_c *CampaignStepCreate) SetChannelKind(v campaignstep.ChannelKind) *CampaignStepCreate {
	_c.mutation.SetChannelKind(v)
	return _c
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_c *CampaignStepCreate) SetChannelConfigID(v string) *CampaignStepCreate {
	_c.mutation.SetChannelConfigID(v)
	return _c
}

// SetTemplateID sets the "template_id" field.
func (_c *CampaignStepCreate) SetTemplateID(v string) *CampaignStepCreate {
	_c.mutation.SetTemplateID(v)
	return _c
}

// SetDelayDays sets the "delay_days" field.
func (_c *CampaignStepCreate) SetDelayDays(v int) *CampaignStepCreate {
	_c.mutation.SetDelayDays(v)
	return _c
}

// SetNillableDelayDays sets the "delay_days" field if the given value is not nil.
func (_c *CampaignStepCreate) SetNillableDelayDays(v *int) *CampaignStepCreate {
	if v != nil {
		_c.SetDelayDays(*v)
	}
	return _c
}

// SetDelayHours sets the "delay_hours" field.
func (_c *CampaignStepCreate) SetDelayHours(v int) *CampaignStepCreate {
	_c.mutation.SetDelayHours(v)
	return _c
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_c *CampaignStepCreate) SetNillableDelayHours(v *int) *CampaignStepCreate {
	if v != nil {
		_c.SetDelayHours(*v)
	}
	return _c
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_c *CampaignStepCreate) SetDelayMinutes(v int) *CampaignStepCreate {
	_c.mutation.SetDelayMinutes(v)
	return _c
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_c *CampaignStepCreate) SetNillableDelayMinutes(v *int) *CampaignStepCreate {
	if v != nil {
		_c.SetDelayMinutes(*v)
	}
	return _c
}

// SetSendTimeStart sets the "send_time_start" field.
func (_c *CampaignStepCreate) SetSendTimeStart(v string) *CampaignStepCreate {
	_c.mutation.SetSendTimeStart(v)
	return _c
}

// SetNillableSendTimeStart sets the "send_time_start" field if the given value is not nil.
func (_c *CampaignStepCreate) SetNillableSendTimeStart(v *string) *CampaignStepCreate {
	if v != nil {
		_c.SetSendTimeStart(*v)
	}
	return _c
}

// SetSendTimeEnd sets the "send_time_end" field.
func (_c *CampaignStepCreate) SetSendTimeEnd(v string) *CampaignStepCreate {
	_c.mutation.SetSendTimeEnd(v)
	return _c
}

// SetNillableSendTimeEnd sets the "send_time_end" field if the given value is not nil.
func (_c *CampaignStepCreate) SetNillableSendTimeEnd(v *string) *CampaignStepCreate {
	if v != nil {
		_c.SetSendTimeEnd(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CampaignStepCreate) SetID(v string) *CampaignStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CampaignStepMutation object of the builder.
func (_c *CampaignStepCreate) Mutation() *CampaignStepMutation {
	return _c.mutation
}

// Save creates the CampaignStep in the database.
func (_c *CampaignStepCreate) Save(ctx context.Context) (*CampaignStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampaignStepCreate) SaveX(ctx context.Context) *CampaignStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampaignStepCreate) defaults() {
	if _, ok := _c.mutation.DelayDays(); !ok {
		v := campaignstep.DefaultDelayDays
		_c.mutation.SetDelayDays(v)
	}
	if _, ok := _c.mutation.DelayHours(); !ok {
		v := campaignstep.DefaultDelayHours
		_c.mutation.SetDelayHours(v)
	}
	if _, ok := _c.mutation.DelayMinutes(); !ok {
		v := campaignstep.DefaultDelayMinutes
		_c.mutation.SetDelayMinutes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampaignStepCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "CampaignStep.tenant_id"`)}
	}
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "CampaignStep.campaign_id"`)}
	}
	if _, ok := _c.mutation.StepOrder(); !ok {
		return &ValidationError{Name: "step_order", err: errors.New(`ent: missing required field "CampaignStep.step_order"`)}
	}
	if v, ok := _c.mutation.StepOrder(); ok {
		if err := campaignstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "CampaignStep.step_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChannelKind(); !ok {
		return &ValidationError{Name: "channel_kind", err: errors.New(`ent: missing required field "CampaignStep.channel_kind"`)}
	}
	if v, ok := _c.mutation.ChannelKind(); ok {
		if err := campaignstep.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "CampaignStep.channel_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChannelConfigID(); !ok {
		return &ValidationError{Name: "channel_config_id", err: errors.New(`ent: missing required field "CampaignStep.channel_config_id"`)}
	}
	if _, ok := _c.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "CampaignStep.template_id"`)}
	}
	if _, ok := _c.mutation.DelayDays(); !ok {
		return &ValidationError{Name: "delay_days", err: errors.New(`ent: missing required field "CampaignStep.delay_days"`)}
	}
	if _, ok := _c.mutation.DelayHours(); !ok {
		return &ValidationError{Name: "delay_hours", err: errors.New(`ent: missing required field "CampaignStep.delay_hours"`)}
	}
	if _, ok := _c.mutation.DelayMinutes(); !ok {
		return &ValidationError{Name: "delay_minutes", err: errors.New(`ent: missing required field "CampaignStep.delay_minutes"`)}
	}
	return nil
}

func (_c *CampaignStepCreate) sqlSave(ctx context.Context) (*CampaignStep, error) {
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
			return nil, fmt.Errorf("unexpected CampaignStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CampaignStepCreate) createSpec() (*CampaignStep, *sqlgraph.CreateSpec) {
	var (
		_node = &CampaignStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campaignstep.Table, sqlgraph.NewFieldSpec(campaignstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(campaignstep.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CampaignID(); ok {
		_spec.SetField(campaignstep.FieldCampaignID, field.TypeString, value)
		_node.CampaignID = value
	}
	if value, ok := _c.mutation.StepOrder(); ok {
		_spec.SetField(campaignstep.FieldStepOrder, field.TypeInt, value)
		_node.StepOrder = value
	}
	if value, ok := _c.mutation.ChannelKind(); ok {
		_spec.SetField(campaignstep.FieldChannelKind, field.TypeEnum, value)
		_node.ChannelKind = value
	}
	if value, ok := _c.mutation.ChannelConfigID(); ok {
		_spec.SetField(campaignstep.FieldChannelConfigID, field.TypeString, value)
		_node.ChannelConfigID = value
	}
	if value, ok := _c.mutation.TemplateID(); ok {
		_spec.SetField(campaignstep.FieldTemplateID, field.TypeString, value)
		_node.TemplateID = value
	}
	if value, ok := _c.mutation.DelayDays(); ok {
		_spec.SetField(campaignstep.FieldDelayDays, field.TypeInt, value)
		_node.DelayDays = value
	}
	if value, ok := _c.mutation.DelayHours(); ok {
		_spec.SetField(campaignstep.FieldDelayHours, field.TypeInt, value)
		_node.DelayHours = value
	}
	if value, ok := _c.mutation.DelayMinutes(); ok {
		_spec.SetField(campaignstep.FieldDelayMinutes, field.TypeInt, value)
		_node.DelayMinutes = value
	}
	if value, ok := _c.mutation.SendTimeStart(); ok {
		_spec.SetField(campaignstep.FieldSendTimeStart, field.TypeString, value)
		_node.SendTimeStart = &value
	}
	if value, ok := _c.mutation.SendTimeEnd(); ok {
		_spec.SetField(campaignstep.FieldSendTimeEnd, field.TypeString, value)
		_node.SendTimeEnd = &value
	}
	return _node, _spec
}

// CampaignStepCreateBulk is the builder for creating many CampaignStep entities in bulk.
type CampaignStepCreateBulk struct {
	config
	err      error
	builders []*CampaignStepCreate
}

// Save creates the CampaignStep entities in the database.
func (_c *CampaignStepCreateBulk) Save(ctx context.Context) ([]*CampaignStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CampaignStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampaignStepMutation)
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
func (_c *CampaignStepCreateBulk) SaveX(ctx context.Context) []*CampaignStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampaignStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampaignStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
