// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/recipient"
)

// RecipientCreate is the builder for creating a Recipient entity.
type RecipientCreate struct {
	config
	mutation *RecipientMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *RecipientCreate) SetTenantID(v string) *RecipientCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCampaignID sets the "campaign_id" field.
func (_c *RecipientCreate) SetCampaignID(v string) *RecipientCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *RecipientCreate) SetLeadID(v string) *RecipientCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableLeadID(v *string) *RecipientCreate {
	if v != nil {
		_c.SetLeadID(*v)
	}
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *RecipientCreate) SetContactID(v string) *RecipientCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableContactID(v *string) *RecipientCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetProspectID sets the "prospect_id" field.
func (_c *RecipientCreate) SetProspectID(v string) *RecipientCreate {
	_c.mutation.SetProspectID(v)
	return _c
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableProspectID(v *string) *RecipientCreate {
	if v != nil {
		_c.SetProspectID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecipientCreate) SetStatus(v recipient.Status) *RecipientCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableStatus(v *recipient.Status) *RecipientCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *RecipientCreate) SetCurrentStep(v int) *RecipientCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableCurrentStep(v *int) *RecipientCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetNextActionAt sets the "next_action_at" field.
func (_c *RecipientCreate) SetNextActionAt(v time.Time) *RecipientCreate {
	_c.mutation.SetNextActionAt(v)
	return _c
}

// SetNillableNextActionAt sets the "next_action_at" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableNextActionAt(v *time.Time) *RecipientCreate {
	if v != nil {
		_c.SetNextActionAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *RecipientCreate) SetMetadata(v map[string]interface{}) *RecipientCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecipientCreate) SetCreatedAt(v time.Time) *RecipientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableCreatedAt(v *time.Time) *RecipientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecipientCreate) SetUpdatedAt(v time.Time) *RecipientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecipientCreate) SetNillableUpdatedAt(v *time.Time) *RecipientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecipientCreate) SetID(v string) *RecipientCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RecipientMutation object of the builder.
func (_c *RecipientCreate) Mutation() *RecipientMutation {
	return _c.mutation
}

// Save creates the Recipient in the database.
func (_c *RecipientCreate) Save(ctx context.Context) (*Recipient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecipientCreate) SaveX(ctx context.Context) *Recipient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecipientCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := recipient.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		v := recipient.DefaultCurrentStep
		_c.mutation.SetCurrentStep(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recipient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recipient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecipientCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "Recipient.tenant_id"`)}
	}
	if _, ok := _c.mutation.CampaignID(); !ok {
		return &ValidationError{Name: "campaign_id", err: errors.New(`ent: missing required field "Recipient.campaign_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Recipient.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := recipient.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recipient.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "Recipient.current_step"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recipient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Recipient.updated_at"`)}
	}
	return nil
}

func (_c *RecipientCreate) sqlSave(ctx context.Context) (*Recipient, error) {
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
			return nil, fmt.Errorf("unexpected Recipient.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecipientCreate) createSpec() (*Recipient, *sqlgraph.CreateSpec) {
	var (
		_node = &Recipient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recipient.Table, sqlgraph.NewFieldSpec(recipient.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(recipient.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CampaignID(); ok {
		_spec.SetField(recipient.FieldCampaignID, field.TypeString, value)
		_node.CampaignID = value
	}
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(recipient.FieldLeadID, field.TypeString, value)
		_node.LeadID = &value
	}
	if value, ok := _c.mutation.ContactID(); ok {
		_spec.SetField(recipient.FieldContactID, field.TypeString, value)
		_node.ContactID = &value
	}
	if value, ok := _c.mutation.ProspectID(); ok {
		_spec.SetField(recipient.FieldProspectID, field.TypeString, value)
		_node.ProspectID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recipient.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(recipient.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.NextActionAt(); ok {
		_spec.SetField(recipient.FieldNextActionAt, field.TypeTime, value)
		_node.NextActionAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(recipient.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recipient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recipient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RecipientCreateBulk is the builder for creating many Recipient entities in bulk.
type RecipientCreateBulk struct {
	config
	err      error
	builders []*RecipientCreate
}

// Save creates the Recipient entities in the database.
func (_c *RecipientCreateBulk) Save(ctx context.Context) ([]*Recipient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recipient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecipientMutation)
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
func (_c *RecipientCreateBulk) SaveX(ctx context.Context) []*Recipient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecipientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecipientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
