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
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ChannelConfigUpdate is the builder for updating ChannelConfig entities.
type ChannelConfigUpdate struct {
	config
	hooks    []Hook
	mutation *ChannelConfigMutation
}

// Where appends a list predicates to the ChannelConfigUpdate builder.
func (_u *ChannelConfigUpdate) Where(ps ...predicate.ChannelConfig) *ChannelConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ChannelConfigUpdate) SetKind(v channelconfig.Kind) *ChannelConfigUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ChannelConfigUpdate) SetNillableKind(v *channelconfig.Kind) *ChannelConfigUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelConfigUpdate) SetName(v string) *ChannelConfigUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelConfigUpdate) SetNillableName(v *string) *ChannelConfigUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ChannelConfigUpdate) SetActive(v bool) *ChannelConfigUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ChannelConfigUpdate) SetNillableActive(v *bool) *ChannelConfigUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *ChannelConfigUpdate) SetIsDefault(v bool) *ChannelConfigUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *ChannelConfigUpdate) SetNillableIsDefault(v *bool) *ChannelConfigUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetCredentials sets the "credentials" field.
func (_u *ChannelConfigUpdate) SetCredentials(v map[string]interface{}) *ChannelConfigUpdate {
	_u.mutation.SetCredentials(v)
	return _u
}

// ClearCredentials clears the value of the "credentials" field.
func (_u *ChannelConfigUpdate) ClearCredentials() *ChannelConfigUpdate {
	_u.mutation.ClearCredentials()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *ChannelConfigUpdate) SetSettings(v map[string]interface{}) *ChannelConfigUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *ChannelConfigUpdate) ClearSettings() *ChannelConfigUpdate {
	_u.mutation.ClearSettings()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ChannelConfigUpdate) SetLastError(v string) *ChannelConfigUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ChannelConfigUpdate) SetNillableLastError(v *string) *ChannelConfigUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ChannelConfigUpdate) ClearLastError() *ChannelConfigUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelConfigUpdate) SetUpdatedAt(v time.Time) *ChannelConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChannelConfigMutation object of the builder.
func (_u *ChannelConfigUpdate) Mutation() *ChannelConfigMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChannelConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChannelConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channelconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChannelConfigUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := channelconfig.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ChannelConfig.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := channelconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChannelConfig.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ChannelConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(channelconfig.Table, channelconfig.Columns, sqlgraph.NewFieldSpec(channelconfig.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(channelconfig.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channelconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(channelconfig.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(channelconfig.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Credentials(); ok {
		_spec.SetField(channelconfig.FieldCredentials, field.TypeJSON, value)
	}
	if _u.mutation.CredentialsCleared() {
		_spec.ClearField(channelconfig.FieldCredentials, field.TypeJSON)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(channelconfig.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(channelconfig.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(channelconfig.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(channelconfig.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channelconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChannelConfigUpdateOne is the builder for updating a single ChannelConfig entity.
type ChannelConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChannelConfigMutation
}

// SetKind sets the "kind" field.
func (_u *ChannelConfigUpdateOne) SetKind(v channelconfig.Kind) *ChannelConfigUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ChannelConfigUpdateOne) SetNillableKind(v *channelconfig.Kind) *ChannelConfigUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ChannelConfigUpdateOne) SetName(v string) *ChannelConfigUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChannelConfigUpdateOne) SetNillableName(v *string) *ChannelConfigUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *ChannelConfigUpdateOne) SetActive(v bool) *ChannelConfigUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ChannelConfigUpdateOne) SetNillableActive(v *bool) *ChannelConfigUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *ChannelConfigUpdateOne) SetIsDefault(v bool) *ChannelConfigUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *ChannelConfigUpdateOne) SetNillableIsDefault(v *bool) *ChannelConfigUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetCredentials sets the "credentials" field.
func (_u *ChannelConfigUpdateOne) SetCredentials(v map[string]interface{}) *ChannelConfigUpdateOne {
	_u.mutation.SetCredentials(v)
	return _u
}

// ClearCredentials clears the value of the "credentials" field.
func (_u *ChannelConfigUpdateOne) ClearCredentials() *ChannelConfigUpdateOne {
	_u.mutation.ClearCredentials()
	return _u
}

// SetSettings sets the "settings" field.
func (_u *ChannelConfigUpdateOne) SetSettings(v map[string]interface{}) *ChannelConfigUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// ClearSettings clears the value of the "settings" field.
func (_u *ChannelConfigUpdateOne) ClearSettings() *ChannelConfigUpdateOne {
	_u.mutation.ClearSettings()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ChannelConfigUpdateOne) SetLastError(v string) *ChannelConfigUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ChannelConfigUpdateOne) SetNillableLastError(v *string) *ChannelConfigUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ChannelConfigUpdateOne) ClearLastError() *ChannelConfigUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChannelConfigUpdateOne) SetUpdatedAt(v time.Time) *ChannelConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ChannelConfigMutation object of the builder.
func (_u *ChannelConfigUpdateOne) Mutation() *ChannelConfigMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChannelConfigUpdate builder.
func (_u *ChannelConfigUpdateOne) Where(ps ...predicate.ChannelConfig) *ChannelConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChannelConfigUpdateOne) Select(field string, fields ...string) *ChannelConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChannelConfig entity.
func (_u *ChannelConfigUpdateOne) Save(ctx context.Context) (*ChannelConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChannelConfigUpdateOne) SaveX(ctx context.Context) *ChannelConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChannelConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChannelConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChannelConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := channelconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChannelConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := channelconfig.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ChannelConfig.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := channelconfig.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ChannelConfig.name": %w`, err)}
		}
	}
	return nil
}

func (_u *ChannelConfigUpdateOne) sqlSave(ctx context.Context) (_node *ChannelConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(channelconfig.Table, channelconfig.Columns, sqlgraph.NewFieldSpec(channelconfig.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChannelConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, channelconfig.FieldID)
		for _, f := range fields {
			if !channelconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != channelconfig.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(channelconfig.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(channelconfig.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(channelconfig.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(channelconfig.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Credentials(); ok {
		_spec.SetField(channelconfig.FieldCredentials, field.TypeJSON, value)
	}
	if _u.mutation.CredentialsCleared() {
		_spec.ClearField(channelconfig.FieldCredentials, field.TypeJSON)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(channelconfig.FieldSettings, field.TypeJSON, value)
	}
	if _u.mutation.SettingsCleared() {
		_spec.ClearField(channelconfig.FieldSettings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(channelconfig.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(channelconfig.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(channelconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ChannelConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{channelconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
