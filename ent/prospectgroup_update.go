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
	"github.com/outflowhq/outflow/ent/prospectgroup"
)

// ProspectGroupUpdate is the builder for updating ProspectGroup entities.
type ProspectGroupUpdate struct {
	config
	hooks    []Hook
	mutation *ProspectGroupMutation
}

// Where appends a list predicates to the ProspectGroupUpdate builder.
func (_u *ProspectGroupUpdate) Where(ps ...predicate.ProspectGroup) *ProspectGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_u *ProspectGroupUpdate) SetChannelConfigID(v string) *ProspectGroupUpdate {
	_u.mutation.SetChannelConfigID(v)
	return _u
}

// SetNillableChannelConfigID sets the "channel_config_id" field if the given value is not nil.
func (_u *ProspectGroupUpdate) SetNillableChannelConfigID(v *string) *ProspectGroupUpdate {
	if v != nil {
		_u.SetChannelConfigID(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ProspectGroupUpdate) SetExternalID(v string) *ProspectGroupUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ProspectGroupUpdate) SetNillableExternalID(v *string) *ProspectGroupUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProspectGroupUpdate) SetName(v string) *ProspectGroupUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProspectGroupUpdate) SetNillableName(v *string) *ProspectGroupUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMemberCount sets the "member_count" field.
func (_u *ProspectGroupUpdate) SetMemberCount(v int) *ProspectGroupUpdate {
	_u.mutation.ResetMemberCount()
	_u.mutation.SetMemberCount(v)
	return _u
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_u *ProspectGroupUpdate) SetNillableMemberCount(v *int) *ProspectGroupUpdate {
	if v != nil {
		_u.SetMemberCount(*v)
	}
	return _u
}

// AddMemberCount adds value to the "member_count" field.
func (_u *ProspectGroupUpdate) AddMemberCount(v int) *ProspectGroupUpdate {
	_u.mutation.AddMemberCount(v)
	return _u
}

// SetImportedAt sets the "imported_at" field.
func (_u *ProspectGroupUpdate) SetImportedAt(v time.Time) *ProspectGroupUpdate {
	_u.mutation.SetImportedAt(v)
	return _u
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_u *ProspectGroupUpdate) SetNillableImportedAt(v *time.Time) *ProspectGroupUpdate {
	if v != nil {
		_u.SetImportedAt(*v)
	}
	return _u
}

// Mutation returns the ProspectGroupMutation object of the builder.
func (_u *ProspectGroupUpdate) Mutation() *ProspectGroupMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProspectGroupUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProspectGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProspectGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(prospectgroup.Table, prospectgroup.Columns, sqlgraph.NewFieldSpec(prospectgroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChannelConfigID(); ok {
		_spec.SetField(prospectgroup.FieldChannelConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(prospectgroup.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prospectgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemberCount(); ok {
		_spec.SetField(prospectgroup.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberCount(); ok {
		_spec.AddField(prospectgroup.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImportedAt(); ok {
		_spec.SetField(prospectgroup.FieldImportedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospectgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProspectGroupUpdateOne is the builder for updating a single ProspectGroup entity.
type ProspectGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProspectGroupMutation
}

// SetChannelConfigID sets the "channel_config_id" field.
func (_u *ProspectGroupUpdateOne) SetChannelConfigID(v string) *ProspectGroupUpdateOne {
	_u.mutation.SetChannelConfigID(v)
	return _u
}

// SetNillableChannelConfigID sets the "channel_config_id" field if the given value is not nil.
func (_u *ProspectGroupUpdateOne) SetNillableChannelConfigID(v *string) *ProspectGroupUpdateOne {
	if v != nil {
		_u.SetChannelConfigID(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ProspectGroupUpdateOne) SetExternalID(v string) *ProspectGroupUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ProspectGroupUpdateOne) SetNillableExternalID(v *string) *ProspectGroupUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProspectGroupUpdateOne) SetName(v string) *ProspectGroupUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProspectGroupUpdateOne) SetNillableName(v *string) *ProspectGroupUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetMemberCount sets the "member_count" field.
func (_u *ProspectGroupUpdateOne) SetMemberCount(v int) *ProspectGroupUpdateOne {
	_u.mutation.ResetMemberCount()
	_u.mutation.SetMemberCount(v)
	return _u
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_u *ProspectGroupUpdateOne) SetNillableMemberCount(v *int) *ProspectGroupUpdateOne {
	if v != nil {
		_u.SetMemberCount(*v)
	}
	return _u
}

// AddMemberCount adds value to the "member_count" field.
func (_u *ProspectGroupUpdateOne) AddMemberCount(v int) *ProspectGroupUpdateOne {
	_u.mutation.AddMemberCount(v)
	return _u
}

// SetImportedAt sets the "imported_at" field.
func (_u *ProspectGroupUpdateOne) SetImportedAt(v time.Time) *ProspectGroupUpdateOne {
	_u.mutation.SetImportedAt(v)
	return _u
}

// SetNillableImportedAt sets the "imported_at" field if the given value is not nil.
func (_u *ProspectGroupUpdateOne) SetNillableImportedAt(v *time.Time) *ProspectGroupUpdateOne {
	if v != nil {
		_u.SetImportedAt(*v)
	}
	return _u
}

// Mutation returns the ProspectGroupMutation object of the builder.
func (_u *ProspectGroupUpdateOne) Mutation() *ProspectGroupMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProspectGroupUpdate builder.
func (_u *ProspectGroupUpdateOne) Where(ps ...predicate.ProspectGroup) *ProspectGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProspectGroupUpdateOne) Select(field string, fields ...string) *ProspectGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProspectGroup entity.
func (_u *ProspectGroupUpdateOne) Save(ctx context.Context) (*ProspectGroup, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProspectGroupUpdateOne) SaveX(ctx context.Context) *ProspectGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProspectGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProspectGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProspectGroupUpdateOne) sqlSave(ctx context.Context) (_node *ProspectGroup, err error) {
	_spec := sqlgraph.NewUpdateSpec(prospectgroup.Table, prospectgroup.Columns, sqlgraph.NewFieldSpec(prospectgroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProspectGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prospectgroup.FieldID)
		for _, f := range fields {
			if !prospectgroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != prospectgroup.FieldID {
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
	if value, ok := _u.mutation.ChannelConfigID(); ok {
		_spec.SetField(prospectgroup.FieldChannelConfigID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(prospectgroup.FieldExternalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(prospectgroup.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.MemberCount(); ok {
		_spec.SetField(prospectgroup.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberCount(); ok {
		_spec.AddField(prospectgroup.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ImportedAt(); ok {
		_spec.SetField(prospectgroup.FieldImportedAt, field.TypeTime, value)
	}
	_node = &ProspectGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prospectgroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
