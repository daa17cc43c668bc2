// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/conversation"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelKind sets the "channel_kind" field.
func (_u *ConversationUpdate) SetChannelKind(v conversation.ChannelKind) *ConversationUpdate {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableChannelKind(v *conversation.ChannelKind) *ConversationUpdate {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_u *ConversationUpdate) SetChannelConfigID(v string) *ConversationUpdate {
	_u.mutation.SetChannelConfigID(v)
	return _u
}

// SetNillableChannelConfigID sets the "channel_config_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableChannelConfigID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetChannelConfigID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ConversationUpdate) SetContactID(v string) *ConversationUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableContactID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *ConversationUpdate) ClearContactID() *ConversationUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetProspectID sets the "prospect_id" field.
func (_u *ConversationUpdate) SetProspectID(v string) *ConversationUpdate {
	_u.mutation.SetProspectID(v)
	return _u
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableProspectID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetProspectID(*v)
	}
	return _u
}

// ClearProspectID clears the value of the "prospect_id" field.
func (_u *ConversationUpdate) ClearProspectID() *ConversationUpdate {
	_u.mutation.ClearProspectID()
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ConversationUpdate) SetLeadID(v string) *ConversationUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLeadID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *ConversationUpdate) ClearLeadID() *ConversationUpdate {
	_u.mutation.ClearLeadID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdate) SetStatus(v conversation.Status) *ConversationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStatus(v *conversation.Status) *ConversationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastWatermark sets the "last_watermark" field.
func (_u *ConversationUpdate) SetLastWatermark(v string) *ConversationUpdate {
	_u.mutation.SetLastWatermark(v)
	return _u
}

// SetNillableLastWatermark sets the "last_watermark" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastWatermark(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetLastWatermark(*v)
	}
	return _u
}

// ClearLastWatermark clears the value of the "last_watermark" field.
func (_u *ConversationUpdate) ClearLastWatermark() *ConversationUpdate {
	_u.mutation.ClearLastWatermark()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.ChannelKind(); ok {
		if err := conversation.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "Conversation.channel_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(conversation.FieldChannelKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChannelConfigID(); ok {
		_spec.SetField(conversation.FieldChannelConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(conversation.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(conversation.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.ProspectID(); ok {
		_spec.SetField(conversation.FieldProspectID, field.TypeString, value)
	}
	if _u.mutation.ProspectIDCleared() {
		_spec.ClearField(conversation.FieldProspectID, field.TypeString)
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(conversation.FieldLeadID, field.TypeString, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(conversation.FieldLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastWatermark(); ok {
		_spec.SetField(conversation.FieldLastWatermark, field.TypeString, value)
	}
	if _u.mutation.LastWatermarkCleared() {
		_spec.ClearField(conversation.FieldLastWatermark, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetChannelKind sets the "channel_kind" field.
func (_u *ConversationUpdateOne) SetChannelKind(v conversation.ChannelKind) *ConversationUpdateOne {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableChannelKind(v *conversation.ChannelKind) *ConversationUpdateOne {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_u *ConversationUpdateOne) SetChannelConfigID(v string) *ConversationUpdateOne {
	_u.mutation.SetChannelConfigID(v)
	return _u
}

// SetNillableChannelConfigID sets the "channel_config_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableChannelConfigID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetChannelConfigID(*v)
	}
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ConversationUpdateOne) SetContactID(v string) *ConversationUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableContactID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *ConversationUpdateOne) ClearContactID() *ConversationUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetProspectID sets the "prospect_id" field.
func (_u *ConversationUpdateOne) SetProspectID(v string) *ConversationUpdateOne {
	_u.mutation.SetProspectID(v)
	return _u
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableProspectID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetProspectID(*v)
	}
	return _u
}

// ClearProspectID clears the value of the "prospect_id" field.
func (_u *ConversationUpdateOne) ClearProspectID() *ConversationUpdateOne {
	_u.mutation.ClearProspectID()
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ConversationUpdateOne) SetLeadID(v string) *ConversationUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLeadID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *ConversationUpdateOne) ClearLeadID() *ConversationUpdateOne {
	_u.mutation.ClearLeadID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ConversationUpdateOne) SetStatus(v conversation.Status) *ConversationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStatus(v *conversation.Status) *ConversationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastWatermark sets the "last_watermark" field.
func (_u *ConversationUpdateOne) SetLastWatermark(v string) *ConversationUpdateOne {
	_u.mutation.SetLastWatermark(v)
	return _u
}

// SetNillableLastWatermark sets the "last_watermark" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastWatermark(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastWatermark(*v)
	}
	return _u
}

// ClearLastWatermark clears the value of the "last_watermark" field.
func (_u *ConversationUpdateOne) ClearLastWatermark() *ConversationUpdateOne {
	_u.mutation.ClearLastWatermark()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.ChannelKind(); ok {
		if err := conversation.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "Conversation.channel_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := conversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Conversation.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
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
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(conversation.FieldChannelKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ChannelConfigID(); ok {
		_spec.SetField(conversation.FieldChannelConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(conversation.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(conversation.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.ProspectID(); ok {
		_spec.SetField(conversation.FieldProspectID, field.TypeString, value)
	}
	if _u.mutation.ProspectIDCleared() {
		_spec.ClearField(conversation.FieldProspectID, field.TypeString)
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(conversation.FieldLeadID, field.TypeString, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(conversation.FieldLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(conversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastWatermark(); ok {
		_spec.SetField(conversation.FieldLastWatermark, field.TypeString, value)
	}
	if _u.mutation.LastWatermarkCleared() {
		_spec.ClearField(conversation.FieldLastWatermark, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
