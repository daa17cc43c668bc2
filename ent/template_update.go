// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/predicate"
	"github.com/outflowhq/outflow/ent/template"
)

// TemplateUpdate is the builder for updating Template entities.
type TemplateUpdate struct {
	config
	hooks    []Hook
	mutation *TemplateMutation
}

// Where appends a list predicates to the TemplateUpdate builder.
func (_u *TemplateUpdate) Where(ps ...predicate.Template) *TemplateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetChannelKind sets the "channel_kind" field.
func (_u *TemplateUpdate) SetChannelKind(v template.ChannelKind) *TemplateUpdate {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableChannelKind(v *template.ChannelKind) *TemplateUpdate {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TemplateUpdate) SetName(v string) *TemplateUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableName(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TemplateUpdate) SetSubject(v string) *TemplateUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableSubject(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *TemplateUpdate) ClearSubject() *TemplateUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *TemplateUpdate) SetBody(v string) *TemplateUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableBody(v *string) *TemplateUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUseAi sets the "use_ai" field.
func (_u *TemplateUpdate) SetUseAi(v bool) *TemplateUpdate {
	_u.mutation.SetUseAi(v)
	return _u
}

// SetNillableUseAi sets the "use_ai" field if the given value is not nil.
func (_u *TemplateUpdate) SetNillableUseAi(v *bool) *TemplateUpdate {
	if v != nil {
		_u.SetUseAi(*v)
	}
	return _u
}

// SetVariations sets the "variations" field.
func (_u *TemplateUpdate) SetVariations(v []map[string]string) *TemplateUpdate {
	_u.mutation.SetVariations(v)
	return _u
}

// AppendVariations appends value to the "variations" field.
func (_u *TemplateUpdate) AppendVariations(v []map[string]string) *TemplateUpdate {
	_u.mutation.AppendVariations(v)
	return _u
}

// ClearVariations clears the value of the "variations" field.
func (_u *TemplateUpdate) ClearVariations() *TemplateUpdate {
	_u.mutation.ClearVariations()
	return _u
}

// Mutation returns the TemplateMutation object of the builder.
func (_u *TemplateUpdate) Mutation() *TemplateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TemplateUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TemplateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateUpdate) check() error {
	if v, ok := _u.mutation.ChannelKind(); ok {
		if err := template.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "Template.channel_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := template.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Template.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TemplateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(template.Table, template.Columns, sqlgraph.NewFieldSpec(template.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(template.FieldChannelKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(template.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(template.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(template.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(template.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UseAi(); ok {
		_spec.SetField(template.FieldUseAi, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Variations(); ok {
		_spec.SetField(template.FieldVariations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVariations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, template.FieldVariations, value)
		})
	}
	if _u.mutation.VariationsCleared() {
		_spec.ClearField(template.FieldVariations, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{template.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TemplateUpdateOne is the builder for updating a single Template entity.
type TemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TemplateMutation
}

// SetChannelKind sets the "channel_kind" field.
func (_u *TemplateUpdateOne) SetChannelKind(v template.ChannelKind) *TemplateUpdateOne {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableChannelKind(v *template.ChannelKind) *TemplateUpdateOne {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *TemplateUpdateOne) SetName(v string) *TemplateUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableName(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *TemplateUpdateOne) SetSubject(v string) *TemplateUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableSubject(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *TemplateUpdateOne) ClearSubject() *TemplateUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *TemplateUpdateOne) SetBody(v string) *TemplateUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableBody(v *string) *TemplateUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetUseAi sets the "use_ai" field.
func (_u *TemplateUpdateOne) SetUseAi(v bool) *TemplateUpdateOne {
	_u.mutation.SetUseAi(v)
	return _u
}

// SetNillableUseAi sets the "use_ai" field if the given value is not nil.
func (_u *TemplateUpdateOne) SetNillableUseAi(v *bool) *TemplateUpdateOne {
	if v != nil {
		_u.SetUseAi(*v)
	}
	return _u
}

// SetVariations sets the "variations" field.
func (_u *TemplateUpdateOne) SetVariations(v []map[string]string) *TemplateUpdateOne {
	_u.mutation.SetVariations(v)
	return _u
}

// AppendVariations appends value to the "variations" field.
func (_u *TemplateUpdateOne) AppendVariations(v []map[string]string) *TemplateUpdateOne {
	_u.mutation.AppendVariations(v)
	return _u
}

// ClearVariations clears the value of the "variations" field.
func (_u *TemplateUpdateOne) ClearVariations() *TemplateUpdateOne {
	_u.mutation.ClearVariations()
	return _u
}

// Mutation returns the TemplateMutation object of the builder.
func (_u *TemplateUpdateOne) Mutation() *TemplateMutation {
	return _u.mutation
}

// Where appends a list predicates to the TemplateUpdate builder.
func (_u *TemplateUpdateOne) Where(ps ...predicate.Template) *TemplateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TemplateUpdateOne) Select(field string, fields ...string) *TemplateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Template entity.
func (_u *TemplateUpdateOne) Save(ctx context.Context) (*Template, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TemplateUpdateOne) SaveX(ctx context.Context) *Template {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TemplateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TemplateUpdateOne) check() error {
	if v, ok := _u.mutation.ChannelKind(); ok {
		if err := template.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "Template.channel_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := template.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Template.name": %w`, err)}
		}
	}
	return nil
}

func (_u *TemplateUpdateOne) sqlSave(ctx context.Context) (_node *Template, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(template.Table, template.Columns, sqlgraph.NewFieldSpec(template.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Template.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, template.FieldID)
		for _, f := range fields {
			if !template.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != template.FieldID {
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
		_spec.SetField(template.FieldChannelKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(template.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(template.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(template.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(template.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.UseAi(); ok {
		_spec.SetField(template.FieldUseAi, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Variations(); ok {
		_spec.SetField(template.FieldVariations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVariations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, template.FieldVariations, value)
		})
	}
	if _u.mutation.VariationsCleared() {
		_spec.ClearField(template.FieldVariations, field.TypeJSON)
	}
	_node = &Template{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{template.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
