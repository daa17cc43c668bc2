// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/outflowhq/outflow/ent/contactattempt"
)

// ContactAttemptCreate is the builder for creating a ContactAttempt entity.
type ContactAttemptCreate struct {
	config
	mutation *ContactAttemptMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *ContactAttemptCreate) SetTenantID(v string) *ContactAttemptCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetCampaignID sets the "campaign_id" field.
func (_c *ContactAttemptCreate) SetCampaignID(v string) *ContactAttemptCreate {
	_c.mutation.SetCampaignID(v)
	return _c
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableCampaignID(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetCampaignID(*v)
	}
	return _c
}

// SetCampaignStepID sets the "campaign_step_id" field.
func (_c *ContactAttemptCreate) SetCampaignStepID(v string) *ContactAttemptCreate {
	_c.mutation.SetCampaignStepID(v)
	return _c
}

// SetNillableCampaignStepID sets the "campaign_step_id" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableCampaignStepID(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetCampaignStepID(*v)
	}
	return _c
}

// SetRecipientID sets the "recipient_id" field.
func (_c *ContactAttemptCreate) SetRecipientID(v string) *ContactAttemptCreate {
	_c.mutation.SetRecipientID(v)
	return _c
}

// SetNillableRecipientID sets the "recipient_id" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableRecipientID(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetRecipientID(*v)
	}
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *ContactAttemptCreate) SetLeadID(v string) *ContactAttemptCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableLeadID(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetLeadID(*v)
	}
	return _c
}

// SetContactID sets the "contact_id" field.
func (_c *ContactAttemptCreate) SetContactID(v string) *ContactAttemptCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableContactID(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetContactID(*v)
	}
	return _c
}

// SetProspectID sets the "prospect_id" field.
func (_c *ContactAttemptCreate) SetProspectID(v string) *ContactAttemptCreate {
	_c.mutation.SetProspectID(v)
	return _c
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableProspectID(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetProspectID(*v)
	}
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *ContactAttemptCreate) SetConversationID(v string) *ContactAttemptCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableConversationID(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetChannelKind sets the "channel_kind" field.
func (_c *ContactAttemptCreate) SetChannelKind(v contactattempt.ChannelKind) *ContactAttemptCreate {
	_c.mutation.SetChannelKind(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *ContactAttemptCreate) SetDirection(v contactattempt.Direction) *ContactAttemptCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContactAttemptCreate) SetStatus(v contactattempt.Status) *ContactAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetSubject sets the "subject" field.
func (_c *ContactAttemptCreate) SetSubject(v string) *ContactAttemptCreate {
	_c.mutation.SetSubject(v)
	return _c
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableSubject(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetSubject(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *ContactAttemptCreate) SetBody(v string) *ContactAttemptCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetExternalID sets the "external_id" field.
func (_c *ContactAttemptCreate) SetExternalID(v string) *ContactAttemptCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableExternalID(v *string) *ContactAttemptCreate {
	if v != nil {
		_c.SetExternalID(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *ContactAttemptCreate) SetSentAt(v time.Time) *ContactAttemptCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableSentAt(v *time.Time) *ContactAttemptCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetDeliveredAt sets the "delivered_at" field.
func (_c *ContactAttemptCreate) SetDeliveredAt(v time.Time) *ContactAttemptCreate {
	_c.mutation.SetDeliveredAt(v)
	return _c
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableDeliveredAt(v *time.Time) *ContactAttemptCreate {
	if v != nil {
		_c.SetDeliveredAt(*v)
	}
	return _c
}

// SetOpenedAt sets the "opened_at" field.
func (_c *ContactAttemptCreate) SetOpenedAt(v time.Time) *ContactAttemptCreate {
	_c.mutation.SetOpenedAt(v)
	return _c
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableOpenedAt(v *time.Time) *ContactAttemptCreate {
	if v != nil {
		_c.SetOpenedAt(*v)
	}
	return _c
}

// SetClickedAt sets the "clicked_at" field.
func (_c *ContactAttemptCreate) SetClickedAt(v time.Time) *ContactAttemptCreate {
	_c.mutation.SetClickedAt(v)
	return _c
}

// SetNillableClickedAt sets the "clicked_at" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableClickedAt(v *time.Time) *ContactAttemptCreate {
	if v != nil {
		_c.SetClickedAt(*v)
	}
	return _c
}

// SetRepliedAt sets the "replied_at" field.
func (_c *ContactAttemptCreate) SetRepliedAt(v time.Time) *ContactAttemptCreate {
	_c.mutation.SetRepliedAt(v)
	return _c
}

// SetNillableRepliedAt sets the "replied_at" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableRepliedAt(v *time.Time) *ContactAttemptCreate {
	if v != nil {
		_c.SetRepliedAt(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ContactAttemptCreate) SetMetadata(v map[string]interface{}) *ContactAttemptCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactAttemptCreate) SetCreatedAt(v time.Time) *ContactAttemptCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactAttemptCreate) SetNillableCreatedAt(v *time.Time) *ContactAttemptCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContactAttemptCreate) SetID(v string) *ContactAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContactAttemptMutation object of the builder.
func (_c *ContactAttemptCreate) Mutation() *ContactAttemptMutation {
	return _c.mutation
}

// Save creates the ContactAttempt in the database.
func (_c *ContactAttemptCreate) Save(ctx context.Context) (*ContactAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactAttemptCreate) SaveX(ctx context.Context) *ContactAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactAttemptCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contactattempt.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactAttemptCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "ContactAttempt.tenant_id"`)}
	}
	if _, ok := _c.mutation.ChannelKind(); !ok {
		return &ValidationError{Name: "channel_kind", err: errors.New(`ent: missing required field "ContactAttempt.channel_kind"`)}
	}
	if v, ok := _c.mutation.ChannelKind(); ok {
		if err := contactattempt.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.channel_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "ContactAttempt.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := contactattempt.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ContactAttempt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contactattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "ContactAttempt.body"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContactAttempt.created_at"`)}
	}
	return nil
}

func (_c *ContactAttemptCreate) sqlSave(ctx context.Context) (*ContactAttempt, error) {
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
			return nil, fmt.Errorf("unexpected ContactAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContactAttemptCreate) createSpec() (*ContactAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &ContactAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contactattempt.Table, sqlgraph.NewFieldSpec(contactattempt.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TenantID(); ok {
		_spec.SetField(contactattempt.FieldTenantID, field.TypeString, value)
		_node.TenantID = value
	}
	if value, ok := _c.mutation.CampaignID(); ok {
		_spec.SetField(contactattempt.FieldCampaignID, field.TypeString, value)
		_node.CampaignID = &value
	}
	if value, ok := _c.mutation.CampaignStepID(); ok {
		_spec.SetField(contactattempt.FieldCampaignStepID, field.TypeString, value)
		_node.CampaignStepID = &value
	}
	if value, ok := _c.mutation.RecipientID(); ok {
		_spec.SetField(contactattempt.FieldRecipientID, field.TypeString, value)
		_node.RecipientID = &value
	}
	if value, ok := _c.mutation.LeadID(); ok {
		_spec.SetField(contactattempt.FieldLeadID, field.TypeString, value)
		_node.LeadID = &value
	}
	if value, ok := _c.mutation.ContactID(); ok {
		_spec.SetField(contactattempt.FieldContactID, field.TypeString, value)
		_node.ContactID = &value
	}
	if value, ok := _c.mutation.ProspectID(); ok {
		_spec.SetField(contactattempt.FieldProspectID, field.TypeString, value)
		_node.ProspectID = &value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(contactattempt.FieldConversationID, field.TypeString, value)
		_node.ConversationID = &value
	}
	if value, ok := _c.mutation.ChannelKind(); ok {
		_spec.SetField(contactattempt.FieldChannelKind, field.TypeEnum, value)
		_node.ChannelKind = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(contactattempt.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contactattempt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Subject(); ok {
		_spec.SetField(contactattempt.FieldSubject, field.TypeString, value)
		_node.Subject = &value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(contactattempt.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(contactattempt.FieldExternalID, field.TypeString, value)
		_node.ExternalID = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(contactattempt.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	if value, ok := _c.mutation.DeliveredAt(); ok {
		_spec.SetField(contactattempt.FieldDeliveredAt, field.TypeTime, value)
		_node.DeliveredAt = &value
	}
	if value, ok := _c.mutation.OpenedAt(); ok {
		_spec.SetField(contactattempt.FieldOpenedAt, field.TypeTime, value)
		_node.OpenedAt = &value
	}
	if value, ok := _c.mutation.ClickedAt(); ok {
		_spec.SetField(contactattempt.FieldClickedAt, field.TypeTime, value)
		_node.ClickedAt = &value
	}
	if value, ok := _c.mutation.RepliedAt(); ok {
		_spec.SetField(contactattempt.FieldRepliedAt, field.TypeTime, value)
		_node.RepliedAt = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(contactattempt.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contactattempt.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ContactAttemptCreateBulk is the builder for creating many ContactAttempt entities in bulk.
type ContactAttemptCreateBulk struct {
	config
	err      error
	builders []*ContactAttemptCreate
}

// Save creates the ContactAttempt entities in the database.
func (_c *ContactAttemptCreateBulk) Save(ctx context.Context) ([]*ContactAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContactAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactAttemptMutation)
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
func (_c *ContactAttemptCreateBulk) SaveX(ctx context.Context) []*ContactAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
