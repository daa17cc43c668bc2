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
	"github.com/outflowhq/outflow/ent/contactattempt"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ContactAttemptUpdate is the builder for updating ContactAttempt entities.
type ContactAttemptUpdate struct {
	config
	hooks    []Hook
	mutation *ContactAttemptMutation
}

// Where appends a list predicates to the ContactAttemptUpdate builder.
func (_u *ContactAttemptUpdate) Where(ps ...predicate.ContactAttempt) *ContactAttemptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ContactAttemptUpdate) SetCampaignID(v string) *ContactAttemptUpdate {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableCampaignID(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *ContactAttemptUpdate) ClearCampaignID() *ContactAttemptUpdate {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetCampaignStepID sets the "campaign_step_id" field.
func (_u *ContactAttemptUpdate) SetCampaignStepID(v string) *ContactAttemptUpdate {
	_u.mutation.SetCampaignStepID(v)
	return _u
}

// SetNillableCampaignStepID sets the "campaign_step_id" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableCampaignStepID(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetCampaignStepID(*v)
	}
	return _u
}

// ClearCampaignStepID clears the value of the "campaign_step_id" field.
func (_u *ContactAttemptUpdate) ClearCampaignStepID() *ContactAttemptUpdate {
	_u.mutation.ClearCampaignStepID()
	return _u
}

// SetRecipientID sets the "recipient_id" field.
func (_u *ContactAttemptUpdate) SetRecipientID(v string) *ContactAttemptUpdate {
	_u.mutation.SetRecipientID(v)
	return _u
}

// SetNillableRecipientID sets the "recipient_id" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableRecipientID(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetRecipientID(*v)
	}
	return _u
}

// ClearRecipientID clears the value of the "recipient_id" field.
func (_u *ContactAttemptUpdate) ClearRecipientID() *ContactAttemptUpdate {
	_u.mutation.ClearRecipientID()
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ContactAttemptUpdate) SetLeadID(v string) *ContactAttemptUpdate {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableLeadID(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *ContactAttemptUpdate) ClearLeadID() *ContactAttemptUpdate {
	_u.mutation.ClearLeadID()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ContactAttemptUpdate) SetContactID(v string) *ContactAttemptUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableContactID(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *ContactAttemptUpdate) ClearContactID() *ContactAttemptUpdate {
	_u.mutation.ClearContactID()
	return _u
}

// SetProspectID sets the "prospect_id" field.
func (_u *ContactAttemptUpdate) SetProspectID(v string) *ContactAttemptUpdate {
	_u.mutation.SetProspectID(v)
	return _u
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableProspectID(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetProspectID(*v)
	}
	return _u
}

// ClearProspectID clears the value of the "prospect_id" field.
func (_u *ContactAttemptUpdate) ClearProspectID() *ContactAttemptUpdate {
	_u.mutation.ClearProspectID()
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *ContactAttemptUpdate) SetConversationID(v string) *ContactAttemptUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableConversationID(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *ContactAttemptUpdate) ClearConversationID() *ContactAttemptUpdate {
	_u.mutation.ClearConversationID()
	return _u
}

// SetChannelKind sets the "channel_kind" field.
func (_u *ContactAttemptUpdate) SetChannelKind(v contactattempt.ChannelKind) *ContactAttemptUpdate {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableChannelKind(v *contactattempt.ChannelKind) *ContactAttemptUpdate {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *ContactAttemptUpdate) SetDirection(v contactattempt.Direction) *ContactAttemptUpdate {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableDirection(v *contactattempt.Direction) *ContactAttemptUpdate {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactAttemptUpdate) SetStatus(v contactattempt.Status) *ContactAttemptUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableStatus(v *contactattempt.Status) *ContactAttemptUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ContactAttemptUpdate) SetSubject(v string) *ContactAttemptUpdate {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableSubject(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ContactAttemptUpdate) ClearSubject() *ContactAttemptUpdate {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *ContactAttemptUpdate) SetBody(v string) *ContactAttemptUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableBody(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ContactAttemptUpdate) SetExternalID(v string) *ContactAttemptUpdate {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableExternalID(v *string) *ContactAttemptUpdate {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *ContactAttemptUpdate) ClearExternalID() *ContactAttemptUpdate {
	_u.mutation.ClearExternalID()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ContactAttemptUpdate) SetSentAt(v time.Time) *ContactAttemptUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableSentAt(v *time.Time) *ContactAttemptUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ContactAttemptUpdate) ClearSentAt() *ContactAttemptUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *ContactAttemptUpdate) SetDeliveredAt(v time.Time) *ContactAttemptUpdate {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableDeliveredAt(v *time.Time) *ContactAttemptUpdate {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *ContactAttemptUpdate) ClearDeliveredAt() *ContactAttemptUpdate {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *ContactAttemptUpdate) SetOpenedAt(v time.Time) *ContactAttemptUpdate {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableOpenedAt(v *time.Time) *ContactAttemptUpdate {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *ContactAttemptUpdate) ClearOpenedAt() *ContactAttemptUpdate {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetClickedAt sets the "clicked_at" field.
func (_u *ContactAttemptUpdate) SetClickedAt(v time.Time) *ContactAttemptUpdate {
	_u.mutation.SetClickedAt(v)
	return _u
}

// SetNillableClickedAt sets the "clicked_at" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableClickedAt(v *time.Time) *ContactAttemptUpdate {
	if v != nil {
		_u.SetClickedAt(*v)
	}
	return _u
}

// ClearClickedAt clears the value of the "clicked_at" field.
func (_u *ContactAttemptUpdate) ClearClickedAt() *ContactAttemptUpdate {
	_u.mutation.ClearClickedAt()
	return _u
}

// SetRepliedAt sets the "replied_at" field.
func (_u *ContactAttemptUpdate) SetRepliedAt(v time.Time) *ContactAttemptUpdate {
	_u.mutation.SetRepliedAt(v)
	return _u
}

// SetNillableRepliedAt sets the "replied_at" field if the given value is not nil.
func (_u *ContactAttemptUpdate) SetNillableRepliedAt(v *time.Time) *ContactAttemptUpdate {
	if v != nil {
		_u.SetRepliedAt(*v)
	}
	return _u
}

// ClearRepliedAt clears the value of the "replied_at" field.
func (_u *ContactAttemptUpdate) ClearRepliedAt() *ContactAttemptUpdate {
	_u.mutation.ClearRepliedAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ContactAttemptUpdate) SetMetadata(v map[string]interface{}) *ContactAttemptUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ContactAttemptUpdate) ClearMetadata() *ContactAttemptUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ContactAttemptMutation object of the builder.
func (_u *ContactAttemptUpdate) Mutation() *ContactAttemptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactAttemptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactAttemptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactAttemptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactAttemptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactAttemptUpdate) check() error {
	if v, ok := _u.mutation.ChannelKind(); ok {
		if err := contactattempt.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.channel_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := contactattempt.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contactattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactAttemptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactattempt.Table, contactattempt.Columns, sqlgraph.NewFieldSpec(contactattempt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(contactattempt.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(contactattempt.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignStepID(); ok {
		_spec.SetField(contactattempt.FieldCampaignStepID, field.TypeString, value)
	}
	if _u.mutation.CampaignStepIDCleared() {
		_spec.ClearField(contactattempt.FieldCampaignStepID, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientID(); ok {
		_spec.SetField(contactattempt.FieldRecipientID, field.TypeString, value)
	}
	if _u.mutation.RecipientIDCleared() {
		_spec.ClearField(contactattempt.FieldRecipientID, field.TypeString)
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(contactattempt.FieldLeadID, field.TypeString, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(contactattempt.FieldLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(contactattempt.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(contactattempt.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.ProspectID(); ok {
		_spec.SetField(contactattempt.FieldProspectID, field.TypeString, value)
	}
	if _u.mutation.ProspectIDCleared() {
		_spec.ClearField(contactattempt.FieldProspectID, field.TypeString)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(contactattempt.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(contactattempt.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(contactattempt.FieldChannelKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(contactattempt.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contactattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(contactattempt.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(contactattempt.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contactattempt.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(contactattempt.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(contactattempt.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(contactattempt.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(contactattempt.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(contactattempt.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(contactattempt.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(contactattempt.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(contactattempt.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClickedAt(); ok {
		_spec.SetField(contactattempt.FieldClickedAt, field.TypeTime, value)
	}
	if _u.mutation.ClickedAtCleared() {
		_spec.ClearField(contactattempt.FieldClickedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepliedAt(); ok {
		_spec.SetField(contactattempt.FieldRepliedAt, field.TypeTime, value)
	}
	if _u.mutation.RepliedAtCleared() {
		_spec.ClearField(contactattempt.FieldRepliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(contactattempt.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(contactattempt.FieldMetadata, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactAttemptUpdateOne is the builder for updating a single ContactAttempt entity.
type ContactAttemptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactAttemptMutation
}

// SetCampaignID sets the "campaign_id" field.
func (_u *ContactAttemptUpdateOne) SetCampaignID(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetCampaignID(v)
	return _u
}

// SetNillableCampaignID sets the "campaign_id" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableCampaignID(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetCampaignID(*v)
	}
	return _u
}

// ClearCampaignID clears the value of the "campaign_id" field.
func (_u *ContactAttemptUpdateOne) ClearCampaignID() *ContactAttemptUpdateOne {
	_u.mutation.ClearCampaignID()
	return _u
}

// SetCampaignStepID sets the "campaign_step_id" field.
func (_u *ContactAttemptUpdateOne) SetCampaignStepID(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetCampaignStepID(v)
	return _u
}

// SetNillableCampaignStepID sets the "campaign_step_id" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableCampaignStepID(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetCampaignStepID(*v)
	}
	return _u
}

// ClearCampaignStepID clears the value of the "campaign_step_id" field.
func (_u *ContactAttemptUpdateOne) ClearCampaignStepID() *ContactAttemptUpdateOne {
	_u.mutation.ClearCampaignStepID()
	return _u
}

// SetRecipientID sets the "recipient_id" field.
func (_u *ContactAttemptUpdateOne) SetRecipientID(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetRecipientID(v)
	return _u
}

// SetNillableRecipientID sets the "recipient_id" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableRecipientID(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetRecipientID(*v)
	}
	return _u
}

// ClearRecipientID clears the value of the "recipient_id" field.
func (_u *ContactAttemptUpdateOne) ClearRecipientID() *ContactAttemptUpdateOne {
	_u.mutation.ClearRecipientID()
	return _u
}

// SetLeadID sets the "lead_id" field.
func (_u *ContactAttemptUpdateOne) SetLeadID(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetLeadID(v)
	return _u
}

// SetNillableLeadID sets the "lead_id" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableLeadID(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetLeadID(*v)
	}
	return _u
}

// ClearLeadID clears the value of the "lead_id" field.
func (_u *ContactAttemptUpdateOne) ClearLeadID() *ContactAttemptUpdateOne {
	_u.mutation.ClearLeadID()
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *ContactAttemptUpdateOne) SetContactID(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableContactID(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// ClearContactID clears the value of the "contact_id" field.
func (_u *ContactAttemptUpdateOne) ClearContactID() *ContactAttemptUpdateOne {
	_u.mutation.ClearContactID()
	return _u
}

// SetProspectID sets the "prospect_id" field.
func (_u *ContactAttemptUpdateOne) SetProspectID(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetProspectID(v)
	return _u
}

// SetNillableProspectID sets the "prospect_id" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableProspectID(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetProspectID(*v)
	}
	return _u
}

// ClearProspectID clears the value of the "prospect_id" field.
func (_u *ContactAttemptUpdateOne) ClearProspectID() *ContactAttemptUpdateOne {
	_u.mutation.ClearProspectID()
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *ContactAttemptUpdateOne) SetConversationID(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableConversationID(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// ClearConversationID clears the value of the "conversation_id" field.
func (_u *ContactAttemptUpdateOne) ClearConversationID() *ContactAttemptUpdateOne {
	_u.mutation.ClearConversationID()
	return _u
}

// SetChannelKind sets the "channel_kind" field.
func (_u *ContactAttemptUpdateOne) SetChannelKind(v contactattempt.ChannelKind) *ContactAttemptUpdateOne {
	_u.mutation.SetChannelKind(v)
	return _u
}

// SetNillableChannelKind sets the "channel_kind" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableChannelKind(v *contactattempt.ChannelKind) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetChannelKind(*v)
	}
	return _u
}

// SetDirection sets the "direction" field.
func (_u *ContactAttemptUpdateOne) SetDirection(v contactattempt.Direction) *ContactAttemptUpdateOne {
	_u.mutation.SetDirection(v)
	return _u
}

// SetNillableDirection sets the "direction" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableDirection(v *contactattempt.Direction) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetDirection(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactAttemptUpdateOne) SetStatus(v contactattempt.Status) *ContactAttemptUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableStatus(v *contactattempt.Status) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSubject sets the "subject" field.
func (_u *ContactAttemptUpdateOne) SetSubject(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetSubject(v)
	return _u
}

// SetNillableSubject sets the "subject" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableSubject(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetSubject(*v)
	}
	return _u
}

// ClearSubject clears the value of the "subject" field.
func (_u *ContactAttemptUpdateOne) ClearSubject() *ContactAttemptUpdateOne {
	_u.mutation.ClearSubject()
	return _u
}

// SetBody sets the "body" field.
func (_u *ContactAttemptUpdateOne) SetBody(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableBody(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetExternalID sets the "external_id" field.
func (_u *ContactAttemptUpdateOne) SetExternalID(v string) *ContactAttemptUpdateOne {
	_u.mutation.SetExternalID(v)
	return _u
}

// SetNillableExternalID sets the "external_id" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableExternalID(v *string) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetExternalID(*v)
	}
	return _u
}

// ClearExternalID clears the value of the "external_id" field.
func (_u *ContactAttemptUpdateOne) ClearExternalID() *ContactAttemptUpdateOne {
	_u.mutation.ClearExternalID()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *ContactAttemptUpdateOne) SetSentAt(v time.Time) *ContactAttemptUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableSentAt(v *time.Time) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *ContactAttemptUpdateOne) ClearSentAt() *ContactAttemptUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// SetDeliveredAt sets the "delivered_at" field.
func (_u *ContactAttemptUpdateOne) SetDeliveredAt(v time.Time) *ContactAttemptUpdateOne {
	_u.mutation.SetDeliveredAt(v)
	return _u
}

// SetNillableDeliveredAt sets the "delivered_at" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableDeliveredAt(v *time.Time) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetDeliveredAt(*v)
	}
	return _u
}

// ClearDeliveredAt clears the value of the "delivered_at" field.
func (_u *ContactAttemptUpdateOne) ClearDeliveredAt() *ContactAttemptUpdateOne {
	_u.mutation.ClearDeliveredAt()
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *ContactAttemptUpdateOne) SetOpenedAt(v time.Time) *ContactAttemptUpdateOne {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableOpenedAt(v *time.Time) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *ContactAttemptUpdateOne) ClearOpenedAt() *ContactAttemptUpdateOne {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetClickedAt sets the "clicked_at" field.
func (_u *ContactAttemptUpdateOne) SetClickedAt(v time.Time) *ContactAttemptUpdateOne {
	_u.mutation.SetClickedAt(v)
	return _u
}

// SetNillableClickedAt sets the "clicked_at" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableClickedAt(v *time.Time) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetClickedAt(*v)
	}
	return _u
}

// ClearClickedAt clears the value of the "clicked_at" field.
func (_u *ContactAttemptUpdateOne) ClearClickedAt() *ContactAttemptUpdateOne {
	_u.mutation.ClearClickedAt()
	return _u
}

// SetRepliedAt sets the "replied_at" field.
func (_u *ContactAttemptUpdateOne) SetRepliedAt(v time.Time) *ContactAttemptUpdateOne {
	_u.mutation.SetRepliedAt(v)
	return _u
}

// SetNillableRepliedAt sets the "replied_at" field if the given value is not nil.
func (_u *ContactAttemptUpdateOne) SetNillableRepliedAt(v *time.Time) *ContactAttemptUpdateOne {
	if v != nil {
		_u.SetRepliedAt(*v)
	}
	return _u
}

// ClearRepliedAt clears the value of the "replied_at" field.
func (_u *ContactAttemptUpdateOne) ClearRepliedAt() *ContactAttemptUpdateOne {
	_u.mutation.ClearRepliedAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ContactAttemptUpdateOne) SetMetadata(v map[string]interface{}) *ContactAttemptUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ContactAttemptUpdateOne) ClearMetadata() *ContactAttemptUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// Mutation returns the ContactAttemptMutation object of the builder.
func (_u *ContactAttemptUpdateOne) Mutation() *ContactAttemptMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContactAttemptUpdate builder.
func (_u *ContactAttemptUpdateOne) Where(ps ...predicate.ContactAttempt) *ContactAttemptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactAttemptUpdateOne) Select(field string, fields ...string) *ContactAttemptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContactAttempt entity.
func (_u *ContactAttemptUpdateOne) Save(ctx context.Context) (*ContactAttempt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactAttemptUpdateOne) SaveX(ctx context.Context) *ContactAttempt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactAttemptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactAttemptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactAttemptUpdateOne) check() error {
	if v, ok := _u.mutation.ChannelKind(); ok {
		if err := contactattempt.ChannelKindValidator(v); err != nil {
			return &ValidationError{Name: "channel_kind", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.channel_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direction(); ok {
		if err := contactattempt.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.direction": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contactattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ContactAttempt.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactAttemptUpdateOne) sqlSave(ctx context.Context) (_node *ContactAttempt, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contactattempt.Table, contactattempt.Columns, sqlgraph.NewFieldSpec(contactattempt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContactAttempt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contactattempt.FieldID)
		for _, f := range fields {
			if !contactattempt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contactattempt.FieldID {
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
	if value, ok := _u.mutation.CampaignID(); ok {
		_spec.SetField(contactattempt.FieldCampaignID, field.TypeString, value)
	}
	if _u.mutation.CampaignIDCleared() {
		_spec.ClearField(contactattempt.FieldCampaignID, field.TypeString)
	}
	if value, ok := _u.mutation.CampaignStepID(); ok {
		_spec.SetField(contactattempt.FieldCampaignStepID, field.TypeString, value)
	}
	if _u.mutation.CampaignStepIDCleared() {
		_spec.ClearField(contactattempt.FieldCampaignStepID, field.TypeString)
	}
	if value, ok := _u.mutation.RecipientID(); ok {
		_spec.SetField(contactattempt.FieldRecipientID, field.TypeString, value)
	}
	if _u.mutation.RecipientIDCleared() {
		_spec.ClearField(contactattempt.FieldRecipientID, field.TypeString)
	}
	if value, ok := _u.mutation.LeadID(); ok {
		_spec.SetField(contactattempt.FieldLeadID, field.TypeString, value)
	}
	if _u.mutation.LeadIDCleared() {
		_spec.ClearField(contactattempt.FieldLeadID, field.TypeString)
	}
	if value, ok := _u.mutation.ContactID(); ok {
		_spec.SetField(contactattempt.FieldContactID, field.TypeString, value)
	}
	if _u.mutation.ContactIDCleared() {
		_spec.ClearField(contactattempt.FieldContactID, field.TypeString)
	}
	if value, ok := _u.mutation.ProspectID(); ok {
		_spec.SetField(contactattempt.FieldProspectID, field.TypeString, value)
	}
	if _u.mutation.ProspectIDCleared() {
		_spec.ClearField(contactattempt.FieldProspectID, field.TypeString)
	}
	if value, ok := _u.mutation.ConversationID(); ok {
		_spec.SetField(contactattempt.FieldConversationID, field.TypeString, value)
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(contactattempt.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.ChannelKind(); ok {
		_spec.SetField(contactattempt.FieldChannelKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Direction(); ok {
		_spec.SetField(contactattempt.FieldDirection, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contactattempt.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Subject(); ok {
		_spec.SetField(contactattempt.FieldSubject, field.TypeString, value)
	}
	if _u.mutation.SubjectCleared() {
		_spec.ClearField(contactattempt.FieldSubject, field.TypeString)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(contactattempt.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalID(); ok {
		_spec.SetField(contactattempt.FieldExternalID, field.TypeString, value)
	}
	if _u.mutation.ExternalIDCleared() {
		_spec.ClearField(contactattempt.FieldExternalID, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(contactattempt.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(contactattempt.FieldSentAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeliveredAt(); ok {
		_spec.SetField(contactattempt.FieldDeliveredAt, field.TypeTime, value)
	}
	if _u.mutation.DeliveredAtCleared() {
		_spec.ClearField(contactattempt.FieldDeliveredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(contactattempt.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(contactattempt.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ClickedAt(); ok {
		_spec.SetField(contactattempt.FieldClickedAt, field.TypeTime, value)
	}
	if _u.mutation.ClickedAtCleared() {
		_spec.ClearField(contactattempt.FieldClickedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RepliedAt(); ok {
		_spec.SetField(contactattempt.FieldRepliedAt, field.TypeTime, value)
	}
	if _u.mutation.RepliedAtCleared() {
		_spec.ClearField(contactattempt.FieldRepliedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(contactattempt.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(contactattempt.FieldMetadata, field.TypeJSON)
	}
	_node = &ContactAttempt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contactattempt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
