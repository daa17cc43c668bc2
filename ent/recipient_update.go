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
	"github.com/outflowhq/outflow/ent/recipient"
)

// RecipientUpdate is the builder for updating Recipient entities.
type RecipientUpdate struct {
	config
	hooks    []Hook
	mutation *RecipientMutation
}

// Where appends a list predicates to the RecipientUpdate builder.
func (_u *RecipientUpdate) Where(ps ...predicate.Recipient) *RecipientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *RecipientUpdate) SetLeadID(v string) *RecipientUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableLeadID(v *string) *RecipientUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *RecipientUpdate) ClearLeadID() *RecipientUpdate {
	_u.mutation.ClearLeadID()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *RecipientUpdate) SetContactID(v string) *RecipientUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableContactID(v *string) *RecipientUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *RecipientUpdate) ClearContactID() *RecipientUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetProspectID sets the "prospect_id" field.
func (_u *RecipientUpdate) SetProspectID(v string) *RecipientUpdate {
	_u.mutation.SetProspectID(v)
	return _u
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableProspectID(v *string) *RecipientUpdate {
	if v != nil {
		_u.SetProspectID(*v)
	}
	return _u
}

// ClearProspectID clears the value of the "prospect_id" field.
func (_u *RecipientUpdate) ClearProspectID() *RecipientUpdate {
	_u.mutation.ClearProspectID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecipientUpdate) SetStatus(v recipient.Status) *RecipientUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableStatus(v *recipient.Status) *RecipientUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *RecipientUpdate) SetCurrentStep(v int) *RecipientUpdate {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableCurrentStep(v *int) *RecipientUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *RecipientUpdate) AddCurrentStep(v int) *RecipientUpdate {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetNextActionAt sets the "next_action_at" field.
func (_u *RecipientUpdate) SetNextActionAt(v time.Time) *RecipientUpdate {
	_u.mutation.SetNextActionAt(v)
	return _u
}

// SetNillableNextActionAt sets the "next_action_at" field if the given value is not nil.
func (_u *RecipientUpdate) SetNillableNextActionAt(v *time.Time) *RecipientUpdate {
	if v != nil {
		_u.SetNextActionAt(*v)
	}
	return _u
}

// ClearNextActionAt clears the value of the "next_action_at" field.
func (_u *RecipientUpdate) ClearNextActionAt() *RecipientUpdate {
	_u.mutation.ClearNextActionAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RecipientUpdate) SetMetadata(v map[string]interface{}) *RecipientUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *RecipientUpdate) ClearMetadata() *RecipientUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecipientUpdate) SetUpdatedAt(v time.Time) *RecipientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecipientMutation object of the builder.
func (_u *RecipientUpdate) Mutation() *RecipientMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecipientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecipientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecipientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recipient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipientUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recipient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recipient.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecipientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipient.Table, recipient.Columns, sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(recipient.FieldLeadID, field.TypeString, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(recipient.FieldLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(recipient.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(recipient.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.ProspectID(); ok {
		_spec.SetField(recipient.FieldProspectID, field.TypeString, value)
	}
	if _u.mutation.ProspectIDCleared() {
		_spec.ClearField(recipient.FieldProspectID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recipient.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(recipient.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(recipient.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextActionAt(); ok {
		_spec.SetField(recipient.FieldNextActionAt, field.TypeTime, value)
	}
	if _u.mutation.NextActionAtCleared() {
		_spec.ClearField(recipient.FieldNextActionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(recipient.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(recipient.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recipient.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecipientUpdateOne is the builder for updating a single Recipient entity.
type RecipientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecipientMutation
}

// SetLeadID sets the "lead_id" field.
func (_u *RecipientUpdateOne) SetLeadID(v string) *RecipientUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableLeadID(v *string) *RecipientUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *RecipientUpdateOne) ClearLeadID() *RecipientUpdateOne {
	_u.mutation.ClearLeadID()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *RecipientUpdateOne) SetContactID(v string) *RecipientUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableContactID(v *string) *RecipientUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *RecipientUpdateOne) ClearContactID() *RecipientUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetProspectID sets the "prospect_id" field.
func (_u *RecipientUpdateOne) SetProspectID(v string) *RecipientUpdateOne {
	_u.mutation.SetProspectID(v)
	return _u
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableProspectID(v *string) *RecipientUpdateOne {
	if v != nil {
		_u.SetProspectID(*v)
	}
	return _u
}

// ClearProspectID clears the value of the "prospect_id" field.
func (_u *RecipientUpdateOne) ClearProspectID() *RecipientUpdateOne {
	_u.mutation.ClearProspectID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecipientUpdateOne) SetStatus(v recipient.Status) *RecipientUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableStatus(v *recipient.Status) *RecipientUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *RecipientUpdateOne) SetCurrentStep(v int) *RecipientUpdateOne {
	_u.mutation.ResetCurrentStep()
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableCurrentStep(v *int) *RecipientUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// AddCurrentStep adds value to the "current_step" field.
func (_u *RecipientUpdateOne) AddCurrentStep(v int) *RecipientUpdateOne {
	_u.mutation.AddCurrentStep(v)
	return _u
}

// SetNextActionAt sets the "next_action_at" field.
func (_u *RecipientUpdateOne) SetNextActionAt(v time.Time) *RecipientUpdateOne {
	_u.mutation.SetNextActionAt(v)
	return _u
}

// SetNillableNextActionAt sets the "next_action_at" field if the given value is not nil.
func (_u *RecipientUpdateOne) SetNillableNextActionAt(v *time.Time) *RecipientUpdateOne {
	if v != nil {
		_u.SetNextActionAt(*v)
	}
	return _u
}

// ClearNextActionAt clears the value of the "next_action_at" field.
func (_u *RecipientUpdateOne) ClearNextActionAt() *RecipientUpdateOne {
	_u.mutation.ClearNextActionAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RecipientUpdateOne) SetMetadata(v map[string]interface{}) *RecipientUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *RecipientUpdateOne) ClearMetadata() *RecipientUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecipientUpdateOne) SetUpdatedAt(v time.Time) *RecipientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecipientMutation object of the builder.
func (_u *RecipientUpdateOne) Mutation() *RecipientMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecipientUpdate builder.
func (_u *RecipientUpdateOne) Where(ps ...predicate.Recipient) *RecipientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecipientUpdateOne) Select(field string, fields ...string) *RecipientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recipient entity.
func (_u *RecipientUpdateOne) Save(ctx context.Context) (*Recipient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecipientUpdateOne) SaveX(ctx context.Context) *Recipient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecipientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecipientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecipientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recipient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecipientUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recipient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recipient.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RecipientUpdateOne) sqlSave(ctx context.Context) (_node *Recipient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recipient.Table, recipient.Columns, sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recipient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recipient.FieldID)
		for _, f := range fields {
			if !recipient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recipient.FieldID {
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
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(recipient.FieldLeadID, field.TypeString, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(recipient.FieldLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(recipient.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(recipient.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.ProspectID(); ok {
		_spec.SetField(recipient.FieldProspectID, field.TypeString, value)
	}
	if _u.mutation.ProspectIDCleared() {
		_spec.ClearField(recipient.FieldProspectID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recipient.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(recipient.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStep(); ok {
		_spec.AddField(recipient.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NextActionAt(); ok {
		_spec.SetField(recipient.FieldNextActionAt, field.TypeTime, value)
	}
	if _u.mutation.NextActionAtCleared() {
		_spec.ClearField(recipient.FieldNextActionAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(recipient.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(recipient.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recipient.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Recipient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recipient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
