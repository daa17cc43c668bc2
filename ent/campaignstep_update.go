// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/campaignstep"
	"github.com/outflowhq/outflow/ent/predicate"
)

// CampaignStepUpdate is the builder for updating CampaignStep entities.
type CampaignStepUpdate struct {
	config
	hooks    []Hook
	mutation *CampaignStepMutation
}

// Where appends a list predicates to the CampaignStepUpdate builder.
func (_u *CampaignStepUpdate) Where(ps ...predicate.CampaignStep) *CampaignStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStepOrder sets the "step_order" field.
func (_u *CampaignStepUpdate) SetStepOrder(v int) *CampaignStepUpdate {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableStepOrder(v *int) *CampaignStepUpdate {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *CampaignStepUpdate) AddStepOrder(v int) *CampaignStepUpdate {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetChannelKind sets the "channel_kind" field.
func (_u *CampaignStepUpdate) SetChannelKind(v campaignstep.ChannelKind) *CampaignStepUpdate {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableChannelKind(v *campaignstep.ChannelKind) *CampaignStepUpdate {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_u *CampaignStepUpdate) SetChannelConfigID(v string) *CampaignStepUpdate {
	_u.mutation.SetChannelConfigID(v)
	return _u
}

// SetNillableChannelConfigID sets the "channel_config_id" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableChannelConfigID(v *string) *CampaignStepUpdate {
	if v != nil {
		_u.SetChannelConfigID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *CampaignStepUpdate) SetTemplateID(v string) *CampaignStepUpdate {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableTemplateID(v *string) *CampaignStepUpdate {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetDelayDays sets the "delay_days" field.
func (_u *CampaignStepUpdate) SetDelayDays(v int) *CampaignStepUpdate {
	_u.mutation.ResetDelayDays()
	_u.mutation.SetDelayDays(v)
	return _u
}

// SetNillableDelayDays sets the "delay_days" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableDelayDays(v *int) *CampaignStepUpdate {
	if v != nil {
		_u.SetDelayDays(*v)
	}
	return _u
}

// AddDelayDays adds value to the "delay_days" field.
func (_u *CampaignStepUpdate) AddDelayDays(v int) *CampaignStepUpdate {
	_u.mutation.AddDelayDays(v)
	return _u
}

// SetDelayHours sets the "delay_hours" field.
func (_u *CampaignStepUpdate) SetDelayHours(v int) *CampaignStepUpdate {
	_u.mutation.ResetDelayHours()
	_u.mutation.SetDelayHours(v)
	return _u
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableDelayHours(v *int) *CampaignStepUpdate {
	if v != nil {
		_u.SetDelayHours(*v)
	}
	return _u
}

// AddDelayHours adds value to the "delay_hours" field.
func (_u *CampaignStepUpdate) AddDelayHours(v int) *CampaignStepUpdate {
	_u.mutation.AddDelayHours(v)
	return _u
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_u *CampaignStepUpdate) SetDelayMinutes(v int) *CampaignStepUpdate {
	_u.mutation.ResetDelayMinutes()
	_u.mutation.SetDelayMinutes(v)
	return _u
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableDelayMinutes(v *int) *CampaignStepUpdate {
	if v != nil {
		_u.SetDelayMinutes(*v)
	}
	return _u
}

// AddDelayMinutes adds value to the "delay_minutes" field.
func (_u *CampaignStepUpdate) AddDelayMinutes(v int) *CampaignStepUpdate {
	_u.mutation.AddDelayMinutes(v)
	return _u
}

// SetSendTimeStart sets the "send_time_start" field.
func (_u *CampaignStepUpdate) SetSendTimeStart(v string) *CampaignStepUpdate {
	_u.mutation.SetSendTimeStart(v)
	return _u
}

// SetNillableSendTimeStart sets the "send_time_start" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableSendTimeStart(v *string) *CampaignStepUpdate {
	if v != nil {
		_u.SetSendTimeStart(*v)
	}
	return _u
}

// ClearSendTimeStart clears the value of the "send_time_start" field.
func (_u *CampaignStepUpdate) ClearSendTimeStart() *CampaignStepUpdate {
	_u.mutation.ClearSendTimeStart()
	return _u
}

// SetSendTimeEnd sets the "send_time_end" field.
func (_u *CampaignStepUpdate) SetSendTimeEnd(v string) *CampaignStepUpdate {
	_u.mutation.SetSendTimeEnd(v)
	return _u
}

// SetNillableSendTimeEnd sets the "send_time_end" field if the given value is not nil.
func (_u *CampaignStepUpdate) SetNillableSendTimeEnd(v *string) *CampaignStepUpdate {
	if v != nil {
		_u.SetSendTimeEnd(*v)
	}
	return _u
}

// ClearSendTimeEnd clears the value of the "send_time_end" field.
func (_u *CampaignStepUpdate) ClearSendTimeEnd() *CampaignStepUpdate {
	_u.mutation.ClearSendTimeEnd()
	return _u
}

// Mutation returns the CampaignStepMutation object of the builder.
func (_u *CampaignStepUpdate) Mutation() *CampaignStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampaignStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampaignStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignStepUpdate) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := campaignstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "CampaignStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChannelKind(); ok {
		if err := campaignstep.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "CampaignStep.channel_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaignstep.Table, campaignstep.Columns, sqlgraph.NewFieldSpec(campaignstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(campaignstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(campaignstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(campaignstep.FieldChannelKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChannelConfigID(); ok {
		_spec.SetField(campaignstep.FieldChannelConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(campaignstep.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DelayDays(); ok {
		_spec.SetField(campaignstep.FieldDelayDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayDays(); ok {
		_spec.AddField(campaignstep.FieldDelayDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DelayHours(); ok {
		_spec.SetField(campaignstep.FieldDelayHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayHours(); ok {
		_spec.AddField(campaignstep.FieldDelayHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DelayMinutes(); ok {
		_spec.SetField(campaignstep.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayMinutes(); ok {
		_spec.AddField(campaignstep.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SendTimeStart(); ok {
		_spec.SetField(campaignstep.FieldSendTimeStart, field.TypeString, value)
	}
	if _u.mutation.SendTimeStartCleared() {
		_spec.ClearField(campaignstep.FieldSendTimeStart, field.TypeString)
	}
	if value, ok := _u.mutation.SendTimeEnd(); ok {
		_spec.SetField(campaignstep.FieldSendTimeEnd, field.TypeString, value)
	}
	if _u.mutation.SendTimeEndCleared() {
		_spec.ClearField(campaignstep.FieldSendTimeEnd, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaignstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampaignStepUpdateOne is the builder for updating a single CampaignStep entity.
type CampaignStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampaignStepMutation
}

// SetStepOrder sets the "step_order" field.
func (_u *CampaignStepUpdateOne) SetStepOrder(v int) *CampaignStepUpdateOne {
	_u.mutation.ResetStepOrder()
	_u.mutation.SetStepOrder(v)
	return _u
}

// SetNillableStepOrder sets the "step_order" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableStepOrder(v *int) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetStepOrder(*v)
	}
	return _u
}

// AddStepOrder adds value to the "step_order" field.
func (_u *CampaignStepUpdateOne) AddStepOrder(v int) *CampaignStepUpdateOne {
	_u.mutation.AddStepOrder(v)
	return _u
}

// SetChannelKind sets the "channel_kind" field.
func (_u *CampaignStepUpdateOne) SetChannelKind(v campaignstep.ChannelKind) *CampaignStepUpdateOne {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableChannelKind(v *campaignstep.ChannelKind) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_u *CampaignStepUpdateOne) SetChannelConfigID(v string) *CampaignStepUpdateOne {
	_u.mutation.SetChannelConfigID(v)
	return _u
}

// SetNillableChannelConfigID sets the "channel_config_id" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableChannelConfigID(v *string) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetChannelConfigID(*v)
	}
	return _u
}

// SetTemplateID sets the "template_id" field.
func (_u *CampaignStepUpdateOne) SetTemplateID(v string) *CampaignStepUpdateOne {
	_u.mutation.SetTemplateID(v)
	return _u
}

// SetNillableTemplateID sets the "template_id" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableTemplateID(v *string) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetTemplateID(*v)
	}
	return _u
}

// SetDelayDays sets the "delay_days" field.
func (_u *CampaignStepUpdateOne) SetDelayDays(v int) *CampaignStepUpdateOne {
	_u.mutation.ResetDelayDays()
	_u.mutation.SetDelayDays(v)
	return _u
}

// SetNillableDelayDays sets the "delay_days" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableDelayDays(v *int) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetDelayDays(*v)
	}
	return _u
}

// AddDelayDays adds value to the "delay_days" field.
func (_u *CampaignStepUpdateOne) AddDelayDays(v int) *CampaignStepUpdateOne {
	_u.mutation.AddDelayDays(v)
	return _u
}

// SetDelayHours sets the "delay_hours" field.
func (_u *CampaignStepUpdateOne) SetDelayHours(v int) *CampaignStepUpdateOne {
	_u.mutation.ResetDelayHours()
	_u.mutation.SetDelayHours(v)
	return _u
}

// SetNillableDelayHours sets the "delay_hours" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableDelayHours(v *int) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetDelayHours(*v)
	}
	return _u
}

// AddDelayHours adds value to the "delay_hours" field.
func (_u *CampaignStepUpdateOne) AddDelayHours(v int) *CampaignStepUpdateOne {
	_u.mutation.AddDelayHours(v)
	return _u
}

// SetDelayMinutes sets the "delay_minutes" field.
func (_u *CampaignStepUpdateOne) SetDelayMinutes(v int) *CampaignStepUpdateOne {
	_u.mutation.ResetDelayMinutes()
	_u.mutation.SetDelayMinutes(v)
	return _u
}

// SetNillableDelayMinutes sets the "delay_minutes" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableDelayMinutes(v *int) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetDelayMinutes(*v)
	}
	return _u
}

// AddDelayMinutes adds value to the "delay_minutes" field.
func (_u *CampaignStepUpdateOne) AddDelayMinutes(v int) *CampaignStepUpdateOne {
	_u.mutation.AddDelayMinutes(v)
	return _u
}

// SetSendTimeStart sets the "send_time_start" field.
func (_u *CampaignStepUpdateOne) SetSendTimeStart(v string) *CampaignStepUpdateOne {
	_u.mutation.SetSendTimeStart(v)
	return _u
}

// SetNillableSendTimeStart sets the "send_time_start" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableSendTimeStart(v *string) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetSendTimeStart(*v)
	}
	return _u
}

// ClearSendTimeStart clears the value of the "send_time_start" field.
func (_u *CampaignStepUpdateOne) ClearSendTimeStart() *CampaignStepUpdateOne {
	_u.mutation.ClearSendTimeStart()
	return _u
}

// SetSendTimeEnd sets the "send_time_end" field.
func (_u *CampaignStepUpdateOne) SetSendTimeEnd(v string) *CampaignStepUpdateOne {
	_u.mutation.SetSendTimeEnd(v)
	return _u
}

// SetNillableSendTimeEnd sets the "send_time_end" field if the given value is not nil.
func (_u *CampaignStepUpdateOne) SetNillableSendTimeEnd(v *string) *CampaignStepUpdateOne {
	if v != nil {
		_u.SetSendTimeEnd(*v)
	}
	return _u
}

// ClearSendTimeEnd clears the value of the "send_time_end" field.
func (_u *CampaignStepUpdateOne) ClearSendTimeEnd() *CampaignStepUpdateOne {
	_u.mutation.ClearSendTimeEnd()
	return _u
}

// Mutation returns the CampaignStepMutation object of the builder.
func (_u *CampaignStepUpdateOne) Mutation() *CampaignStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the CampaignStepUpdate builder.
func (_u *CampaignStepUpdateOne) Where(ps ...predicate.CampaignStep) *CampaignStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampaignStepUpdateOne) Select(field string, fields ...string) *CampaignStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CampaignStep entity.
func (_u *CampaignStepUpdateOne) Save(ctx context.Context) (*CampaignStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampaignStepUpdateOne) SaveX(ctx context.Context) *CampaignStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampaignStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampaignStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampaignStepUpdateOne) check() error {
	if v, ok := _u.mutation.StepOrder(); ok {
		if err := campaignstep.StepOrderValidator(v); err != nil {
			return &ValidationError{Name: "step_order", err: fmt.Errorf(`ent: validator failed for field "CampaignStep.step_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChannelKind(); ok {
		if err := campaignstep.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "CampaignStep.channel_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *CampaignStepUpdateOne) sqlSave(ctx context.Context) (_node *CampaignStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campaignstep.Table, campaignstep.Columns, sqlgraph.NewFieldSpec(campaignstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CampaignStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaignstep.FieldID)
		for _, f := range fields {
			if !campaignstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campaignstep.FieldID {
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
	if value, ok := _u.mutation.StepOrder(); ok {
		_spec.SetField(campaignstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepOrder(); ok {
		_spec.AddField(campaignstep.FieldStepOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(campaignstep.FieldChannelKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChannelConfigID(); ok {
		_spec.SetField(campaignstep.FieldChannelConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TemplateID(); ok {
		_spec.SetField(campaignstep.FieldTemplateID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DelayDays(); ok {
		_spec.SetField(campaignstep.FieldDelayDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayDays(); ok {
		_spec.AddField(campaignstep.FieldDelayDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DelayHours(); ok {
		_spec.SetField(campaignstep.FieldDelayHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayHours(); ok {
		_spec.AddField(campaignstep.FieldDelayHours, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DelayMinutes(); ok {
		_spec.SetField(campaignstep.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDelayMinutes(); ok {
		_spec.AddField(campaignstep.FieldDelayMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SendTimeStart(); ok {
		_spec.SetField(campaignstep.FieldSendTimeStart, field.TypeString, value)
	}
	if _u.mutation.SendTimeStartCleared() {
		_spec.ClearField(campaignstep.FieldSendTimeStart, field.TypeString)
	}
	if value, ok := _u.mutation.SendTimeEnd(); ok {
		_spec.SetField(campaignstep.FieldSendTimeEnd, field.TypeString, value)
	}
	if _u.mutation.SendTimeEndCleared() {
		_spec.ClearField(campaignstep.FieldSendTimeEnd, field.TypeString)
	}
	_node = &CampaignStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campaignstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
