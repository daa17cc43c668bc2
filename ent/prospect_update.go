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
	"github.com/outflowhq/outflow/ent/predicate"
	"github.com/outflowhq/outflow/ent/prospect"
)

// ProspectUpdate is the builder for updating Prospect entities.
type ProspectUpdate struct {
	config
	hooks    []Hook
	mutation *ProspectMutation
}

// Where appends a list predicates to the ProspectUpdate builder.
func (_u *ProspectUpdate) Where(ps ...predicate.Prospect) *ProspectUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *ProspectUpdate) SetGroupID(v string) *ProspectUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableGroupID(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *ProspectUpdate) ClearGroupID() *ProspectUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_u *ProspectUpdate) SetChannelConfigID(v string) *ProspectUpdate {
	_u.mutation.SetChannelConfigID(v)
	return _u
}

// SetNillableChannelConfigID sets the "channel_config_id" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableChannelConfigID(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetChannelConfigID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ProspectUpdate) SetDisplayName(v string) *ProspectUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableDisplayName(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *ProspectUpdate) SetUsername(v string) *ProspectUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableUsername(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *ProspectUpdate) ClearUsername() *ProspectUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProspectUpdate) SetPhone(v string) *ProspectUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillablePhone(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProspectUpdate) ClearPhone() *ProspectUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetTelegramUserID sets the "telegram_user_id" field.
func (_u *ProspectUpdate) SetTelegramUserID(v int64) *ProspectUpdate {
	_u.mutation.ResetTelegramUserID()
	_u.mutation.SetTelegramUserID(v)
	return _u
}

// SetNillableTelegramUserID sets the "telegram_user_id" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableTelegramUserID(v *int64) *ProspectUpdate {
	if v != nil {
		_u.SetTelegramUserID(*v)
	}
	return _u
}

// AddTelegramUserID adds value to the "telegram_user_id" field.
func (_u *ProspectUpdate) AddTelegramUserID(v int64) *ProspectUpdate {
	_u.mutation.AddTelegramUserID(v)
	return _u
}

// ClearTelegramUserID clears the value of the "telegram_user_id" field.
func (_u *ProspectUpdate) ClearTelegramUserID() *ProspectUpdate {
	_u.mutation.ClearTelegramUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProspectUpdate) SetStatus(v prospect.Status) *ProspectUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableStatus(v *prospect.Status) *ProspectUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastMessagedAt sets the "last_messaged_at" field.
func (_u *ProspectUpdate) SetLastMessagedAt(v time.Time) *ProspectUpdate {
	_u.mutation.SetLastMessagedAt(v)
	return _u
}

// SetNillableLastMessagedAt sets the "last_messaged_at" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableLastMessagedAt(v *time.Time) *ProspectUpdate {
	if v != nil {
		_u.SetLastMessagedAt(*v)
	}
	return _u
}

// ClearLastMessagedAt clears the value of the "last_messaged_at" field.
func (_u *ProspectUpdate) ClearLastMessagedAt() *ProspectUpdate {
	_u.mutation.ClearLastMessagedAt()
	return _u
}

// SetLastRepliedAt sets the "last_replied_at" field.
func (_u *ProspectUpdate) SetLastRepliedAt(v time.Time) *ProspectUpdate {
	_u.mutation.SetLastRepliedAt(v)
	return _u
}

// SetNillableLastRepliedAt sets the "last_replied_at" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableLastRepliedAt(v *time.Time) *ProspectUpdate {
	if v != nil {
		_u.SetLastRepliedAt(*v)
	}
	return _u
}

// ClearLastRepliedAt clears the value of the "last_replied_at" field.
func (_u *ProspectUpdate) ClearLastRepliedAt() *ProspectUpdate {
	_u.mutation.ClearLastRepliedAt()
	return _u
}

// SetLastExternalID sets the "last_external_id" field.
func (_u *ProspectUpdate) SetLastExternalID(v string) *ProspectUpdate {
	_u.mutation.SetLastExternalID(v)
	return _u
}

// SetNillableLastExternalID sets the "last_external_id" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableLastExternalID(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetLastExternalID(*v)
	}
	return _u
}

// ClearLastExternalID clears the value of the "last_external_id" field.
func (_u *ProspectUpdate) ClearLastExternalID() *ProspectUpdate {
	_u.mutation.ClearLastExternalID()
	return _u
}

// SetConvertedLeadID sets the "converted_lead_id" field.
func (_u *ProspectUpdate) SetConvertedLeadID(v string) *ProspectUpdate {
	_u.mutation.SetConvertedLeadID(v)
	return _u
}

// SetNillableConvertedLeadID sets the "converted_lead_id" field if the given value is not nil.
func (_u *ProspectUpdate) SetNillableConvertedLeadID(v *string) *ProspectUpdate {
	if v != nil {
		_u.SetConvertedLeadID(*v)
	}
	return _u
}

// ClearConvertedLeadID clears the value of the "converted_lead_id" field.
func (_u *ProspectUpdate) ClearConvertedLeadID() *ProspectUpdate {
	_u.mutation.ClearConvertedLeadID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProspectUpdate) SetUpdatedAt(v time.Time) *ProspectUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProspectMutation object of the builder.
func (_u *ProspectUpdate) Mutation() *ProspectMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProspectUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProspectUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProspectUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prospect.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProspectUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProspectUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(prospect.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(prospect.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.ChannelConfigID(); ok {
		_spec.SetField(prospect.FieldChannelConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(prospect.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(prospect.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(prospect.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(prospect.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.TelegramUserID(); ok {
		_spec.SetField(prospect.FieldTelegramUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTelegramUserID(); ok {
		_spec.AddField(prospect.FieldTelegramUserID, field.TypeInt64, value)
	}
	if _u.mutation.TelegramUserIDCleared() {
		_spec.ClearField(prospect.FieldTelegramUserID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastMessagedAt(); ok {
		_spec.SetField(prospect.FieldLastMessagedAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessagedAtCleared() {
		_spec.ClearField(prospect.FieldLastMessagedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRepliedAt(); ok {
		_spec.SetField(prospect.FieldLastRepliedAt, field.TypeTime, value)
	}
	if _u.mutation.LastRepliedAtCleared() {
		_spec.ClearField(prospect.FieldLastRepliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastExternalID(); ok {
		_spec.SetField(prospect.FieldLastExternalID, field.TypeString, value)
	}
	if _u.mutation.LastExternalIDCleared() {
		_spec.ClearField(prospect.FieldLastExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.ConvertedLeadID(); ok {
		_spec.SetField(prospect.FieldConvertedLeadID, field.TypeString, value)
	}
	if _u.mutation.ConvertedLeadIDCleared() {
		_spec.ClearField(prospect.FieldConvertedLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospect.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProspectUpdateOne is the builder for updating a single Prospect entity.
type ProspectUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProspectMutation
}

// SetGroupID sets the "group_id" field.
func (_u *ProspectUpdateOne) SetGroupID(v string) *ProspectUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableGroupID(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *ProspectUpdateOne) ClearGroupID() *ProspectUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_u *ProspectUpdateOne) SetChannelConfigID(v string) *ProspectUpdateOne {
	_u.mutation.SetChannelConfigID(v)
	return _u
}

// SetNillableChannelConfigID sets the "channel_config_id" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableChannelConfigID(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetChannelConfigID(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ProspectUpdateOne) SetDisplayName(v string) *ProspectUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableDisplayName(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *ProspectUpdateOne) SetUsername(v string) *ProspectUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableUsername(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *ProspectUpdateOne) ClearUsername() *ProspectUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProspectUpdateOne) SetPhone(v string) *ProspectUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillablePhone(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ProspectUpdateOne) ClearPhone() *ProspectUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetTelegramUserID sets the "telegram_user_id" field.
func (_u *ProspectUpdateOne) SetTelegramUserID(v int64) *ProspectUpdateOne {
	_u.mutation.ResetTelegramUserID()
	_u.mutation.SetTelegramUserID(v)
	return _u
}

// SetNillableTelegramUserID sets the "telegram_user_id" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableTelegramUserID(v *int64) *ProspectUpdateOne {
	if v != nil {
		_u.SetTelegramUserID(*v)
	}
	return _u
}

// AddTelegramUserID adds value to the "telegram_user_id" field.
func (_u *ProspectUpdateOne) AddTelegramUserID(v int64) *ProspectUpdateOne {
	_u.mutation.AddTelegramUserID(v)
	return _u
}

// ClearTelegramUserID clears the value of the "telegram_user_id" field.
func (_u *ProspectUpdateOne) ClearTelegramUserID() *ProspectUpdateOne {
	_u.mutation.ClearTelegramUserID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProspectUpdateOne) SetStatus(v prospect.Status) *ProspectUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableStatus(v *prospect.Status) *ProspectUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastMessagedAt sets the "last_messaged_at" field.
func (_u *ProspectUpdateOne) SetLastMessagedAt(v time.Time) *ProspectUpdateOne {
	_u.mutation.SetLastMessagedAt(v)
	return _u
}

// SetNillableLastMessagedAt sets the "last_messaged_at" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableLastMessagedAt(v *time.Time) *ProspectUpdateOne {
	if v != nil {
		_u.SetLastMessagedAt(*v)
	}
	return _u
}

// ClearLastMessagedAt clears the value of the "last_messaged_at" field.
func (_u *ProspectUpdateOne) ClearLastMessagedAt() *ProspectUpdateOne {
	_u.mutation.ClearLastMessagedAt()
	return _u
}

// SetLastRepliedAt sets the "last_replied_at" field.
func (_u *ProspectUpdateOne) SetLastRepliedAt(v time.Time) *ProspectUpdateOne {
	_u.mutation.SetLastRepliedAt(v)
	return _u
}

// SetNillableLastRepliedAt sets the "last_replied_at" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableLastRepliedAt(v *time.Time) *ProspectUpdateOne {
	if v != nil {
		_u.SetLastRepliedAt(*v)
	}
	return _u
}

// ClearLastRepliedAt clears the value of the "last_replied_at" field.
func (_u *ProspectUpdateOne) ClearLastRepliedAt() *ProspectUpdateOne {
	_u.mutation.ClearLastRepliedAt()
	return _u
}

// SetLastExternalID sets the "last_external_id" field.
func (_u *ProspectUpdateOne) SetLastExternalID(v string) *ProspectUpdateOne {
	_u.mutation.SetLastExternalID(v)
	return _u
}

// SetNillableLastExternalID sets the "last_external_id" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableLastExternalID(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetLastExternalID(*v)
	}
	return _u
}

// ClearLastExternalID clears the value of the "last_external_id" field.
func (_u *ProspectUpdateOne) ClearLastExternalID() *ProspectUpdateOne {
	_u.mutation.ClearLastExternalID()
	return _u
}

// SetConvertedLeadID sets the "converted_lead_id" field.
func (_u *ProspectUpdateOne) SetConvertedLeadID(v string) *ProspectUpdateOne {
	_u.mutation.SetConvertedLeadID(v)
	return _u
}

// SetNillableConvertedLeadID sets the "converted_lead_id" field if the given value is not nil.
func (_u *ProspectUpdateOne) SetNillableConvertedLeadID(v *string) *ProspectUpdateOne {
	if v != nil {
		_u.SetConvertedLeadID(*v)
	}
	return _u
}

// ClearConvertedLeadID clears the value of the "converted_lead_id" field.
func (_u *ProspectUpdateOne) ClearConvertedLeadID() *ProspectUpdateOne {
	_u.mutation.ClearConvertedLeadID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProspectUpdateOne) SetUpdatedAt(v time.Time) *ProspectUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProspectMutation object of the builder.
func (_u *ProspectUpdateOne) Mutation() *ProspectMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProspectUpdate builder.
func (_u *ProspectUpdateOne) Where(ps ...predicate.Prospect) *ProspectUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProspectUpdateOne) Select(field string, fields ...string) *ProspectUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prospect entity.
func (_u *ProspectUpdateOne) Save(ctx context.Context) (*Prospect, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectUpdateOne) SaveX(ctx context.Context) *Prospect {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProspectUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProspectUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prospect.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProspectUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := prospect.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Prospect.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ProspectUpdateOne) sqlSave(ctx context.Context) (_node *Prospect, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prospect.Table, prospect.Columns, sqlgraph.NewFieldSpec(prospect.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Prospect.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prospect.FieldID)
		for _, f := range fields {
			if !prospect.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prospect.FieldID {
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
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(prospect.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(prospect.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.ChannelConfigID(); ok {
		_spec.SetField(prospect.FieldChannelConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(prospect.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(prospect.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(prospect.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(prospect.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(prospect.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.TelegramUserID(); ok {
		_spec.SetField(prospect.FieldTelegramUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTelegramUserID(); ok {
		_spec.AddField(prospect.FieldTelegramUserID, field.TypeInt64, value)
	}
	if _u.mutation.TelegramUserIDCleared() {
		_spec.ClearField(prospect.FieldTelegramUserID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prospect.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastMessagedAt(); ok {
		_spec.SetField(prospect.FieldLastMessagedAt, field.TypeTime, value)
	}
	if _u.mutation.LastMessagedAtCleared() {
		_spec.ClearField(prospect.FieldLastMessagedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastRepliedAt(); ok {
		_spec.SetField(prospect.FieldLastRepliedAt, field.TypeTime, value)
	}
	if _u.mutation.LastRepliedAtCleared() {
		_spec.ClearField(prospect.FieldLastRepliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastExternalID(); ok {
		_spec.SetField(prospect.FieldLastExternalID, field.TypeString, value)
	}
	if _u.mutation.LastExternalIDCleared() {
		_spec.ClearField(prospect.FieldLastExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.ConvertedLeadID(); ok {
		_spec.SetField(prospect.FieldConvertedLeadID, field.TypeString, value)
	}
	if _u.mutation.ConvertedLeadIDCleared() {
		_spec.ClearField(prospect.FieldConvertedLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prospect.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Prospect{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospect.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
