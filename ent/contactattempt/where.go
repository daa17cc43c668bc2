// Code generated by ent, DO NOT EDIT.

package contactattempt

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldTenantID, v))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignStepID applies equality check predicate on the "campaign_step_id" field. It's identical to CampaignStepIDEQ.
func CampaignStepID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldCampaignStepID, v))
}

// RecipientID applies equality check predicate on the "recipient_id" field. It's identical to RecipientIDEQ.
func RecipientID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldRecipientID, v))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldLeadID, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldContactID, v))
}

// ProspectID applies equality check predicate on the "prospect_id" field. It's identical to ProspectIDEQ.
func ProspectID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldProspectID, v))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldConversationID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldSubject, v))
}

// Body applies equality check predicate on the "body" field. It's identical to BodyEQ.
func Body(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldBody, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldExternalID, v))
}

// SentAt applies equality check predicate on the "sent_at" field. It's identical to SentAtEQ.
func SentAt(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldSentAt, v))
}

// DeliveredAt applies equality check predicate on the "delivered_at" field. It's identical to DeliveredAtEQ.
func DeliveredAt(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldDeliveredAt, v))
}

// OpenedAt applies equality check predicate on the "opened_at" field. It's identical to OpenedAtEQ.
func OpenedAt(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldOpenedAt, v))
}

// ClickedAt applies equality check predicate on the "clicked_at" field. It's identical to ClickedAtEQ.
func ClickedAt(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldClickedAt, v))
}

// RepliedAt applies equality check predicate on the "replied_at" field. It's identical to RepliedAtEQ.
func RepliedAt(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldRepliedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldTenantID, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDIsNil applies the IsNil predicate on the "campaign_id" field.
func CampaignIDIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldCampaignID))
}

// CampaignIDNotNil applies the NotNil predicate on the "campaign_id" field.
func CampaignIDNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldCampaignID))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldCampaignID, v))
}

// CampaignStepIDEQ applies the EQ predicate on the "campaign_step_id" field.
func CampaignStepIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldCampaignStepID, v))
}

// CampaignStepIDNEQ applies the NEQ predicate on the "campaign_step_id" field.
func CampaignStepIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldCampaignStepID, v))
}

// CampaignStepIDIn applies the In predicate on the "campaign_step_id" field.
func CampaignStepIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldCampaignStepID, vs...))
}

// CampaignStepIDNotIn applies the NotIn predicate on the "campaign_step_id" field.
func CampaignStepIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldCampaignStepID, vs...))
}

// CampaignStepIDGT applies the GT predicate on the "campaign_step_id" field.
func CampaignStepIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldCampaignStepID, v))
}

// CampaignStepIDGTE applies the GTE predicate on the "campaign_step_id" field.
func CampaignStepIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldCampaignStepID, v))
}

// CampaignStepIDLT applies the LT predicate on the "campaign_step_id" field.
func CampaignStepIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldCampaignStepID, v))
}

// CampaignStepIDLTE applies the LTE predicate on the "campaign_step_id" field.
func CampaignStepIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldCampaignStepID, v))
}

// CampaignStepIDContains applies the Contains predicate on the "campaign_step_id" field.
func CampaignStepIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldCampaignStepID, v))
}

// CampaignStepIDHasPrefix applies the HasPrefix predicate on the "campaign_step_id" field.
func CampaignStepIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldCampaignStepID, v))
}

// CampaignStepIDHasSuffix applies the HasSuffix predicate on the "campaign_step_id" field.
func CampaignStepIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldCampaignStepID, v))
}

// CampaignStepIDIsNil applies the IsNil predicate on the "campaign_step_id" field.
func CampaignStepIDIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldCampaignStepID))
}

// CampaignStepIDNotNil applies the NotNil predicate on the "campaign_step_id" field.
func CampaignStepIDNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldCampaignStepID))
}

// CampaignStepIDEqualFold applies the EqualFold predicate on the "campaign_step_id" field.
func CampaignStepIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldCampaignStepID, v))
}

// CampaignStepIDContainsFold applies the ContainsFold predicate on the "campaign_step_id" field.
func CampaignStepIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldCampaignStepID, v))
}

// RecipientIDEQ applies the EQ predicate on the "recipient_id" field.
func RecipientIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldRecipientID, v))
}

// RecipientIDNEQ applies the NEQ predicate on the "recipient_id" field.
func RecipientIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldRecipientID, v))
}

// RecipientIDIn applies the In predicate on the "recipient_id" field.
func RecipientIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldRecipientID, vs...))
}

// RecipientIDNotIn applies the NotIn predicate on the "recipient_id" field.
func RecipientIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldRecipientID, vs...))
}

// RecipientIDGT applies the GT predicate on the "recipient_id" field.
func RecipientIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldRecipientID, v))
}

// RecipientIDGTE applies the GTE predicate on the "recipient_id" field.
func RecipientIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldRecipientID, v))
}

// RecipientIDLT applies the LT predicate on the "recipient_id" field.
func RecipientIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldRecipientID, v))
}

// RecipientIDLTE applies the LTE predicate on the "recipient_id" field.
func RecipientIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldRecipientID, v))
}

// RecipientIDContains applies the Contains predicate on the "recipient_id" field.
func RecipientIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldRecipientID, v))
}

// RecipientIDHasPrefix applies the HasPrefix predicate on the "recipient_id" field.
func RecipientIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldRecipientID, v))
}

// RecipientIDHasSuffix applies the HasSuffix predicate on the "recipient_id" field.
func RecipientIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldRecipientID, v))
}

// RecipientIDIsNil applies the IsNil predicate on the "recipient_id" field.
func RecipientIDIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldRecipientID))
}

// RecipientIDNotNil applies the NotNil predicate on the "recipient_id" field.
func RecipientIDNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldRecipientID))
}

// RecipientIDEqualFold applies the EqualFold predicate on the "recipient_id" field.
func RecipientIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldRecipientID, v))
}

// RecipientIDContainsFold applies the ContainsFold predicate on the "recipient_id" field.
func RecipientIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldRecipientID, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldLeadID, v))
}

// LeadIDContains applies the Contains predicate on the "lead_id" field.
func LeadIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldLeadID, v))
}

// LeadIDHasPrefix applies the HasPrefix predicate on the "lead_id" field.
func LeadIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldLeadID, v))
}

// LeadIDHasSuffix applies the HasSuffix predicate on the "lead_id" field.
func LeadIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldLeadID, v))
}

// LeadIDIsNil applies the IsNil predicate on the "lead_id" field.
func LeadIDIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldLeadID))
}

// LeadIDNotNil applies the NotNil predicate on the "lead_id" field.
func LeadIDNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldLeadID))
}

// LeadIDEqualFold applies the EqualFold predicate on the "lead_id" field.
func LeadIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldLeadID, v))
}

// LeadIDContainsFold applies the ContainsFold predicate on the "lead_id" field.
func LeadIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldLeadID, v))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDGT applies the GT predicate on the "contact_id" field.
func ContactIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldContactID, v))
}

// ContactIDGTE applies the GTE predicate on the "contact_id" field.
func ContactIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldContactID, v))
}

// ContactIDLT applies the LT predicate on the "contact_id" field.
func ContactIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldContactID, v))
}

// ContactIDLTE applies the LTE predicate on the "contact_id" field.
func ContactIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldContactID, v))
}

// ContactIDContains applies the Contains predicate on the "contact_id" field.
func ContactIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldContactID, v))
}

// ContactIDHasPrefix applies the HasPrefix predicate on the "contact_id" field.
func ContactIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldContactID, v))
}

// ContactIDHasSuffix applies the HasSuffix predicate on the "contact_id" field.
func ContactIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldContactID, v))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldContactID))
}

// ContactIDEqualFold applies the EqualFold predicate on the "contact_id" field.
func ContactIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldContactID, v))
}

// ContactIDContainsFold applies the ContainsFold predicate on the "contact_id" field.
func ContactIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldContactID, v))
}

// ProspectIDEQ applies the EQ predicate on the "prospect_id" field.
func ProspectIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldProspectID, v))
}

// ProspectIDNEQ applies the NEQ predicate on the "prospect_id" field.
func ProspectIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldProspectID, v))
}

// ProspectIDIn applies the In predicate on the "prospect_id" field.
func ProspectIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldProspectID, vs...))
}

// ProspectIDNotIn applies the NotIn predicate on the "prospect_id" field.
func ProspectIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldProspectID, vs...))
}

// ProspectIDGT applies the GT predicate on the "prospect_id" field.
func ProspectIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldProspectID, v))
}

// ProspectIDGTE applies the GTE predicate on the "prospect_id" field.
func ProspectIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldProspectID, v))
}

// ProspectIDLT applies the LT predicate on the "prospect_id" field.
func ProspectIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldProspectID, v))
}

// ProspectIDLTE applies the LTE predicate on the "prospect_id" field.
func ProspectIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldProspectID, v))
}

// ProspectIDContains applies the Contains predicate on the "prospect_id" field.
func ProspectIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldProspectID, v))
}

// ProspectIDHasPrefix applies the HasPrefix predicate on the "prospect_id" field.
func ProspectIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldProspectID, v))
}

// ProspectIDHasSuffix applies the HasSuffix predicate on the "prospect_id" field.
func ProspectIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldProspectID, v))
}

// ProspectIDIsNil applies the IsNil predicate on the "prospect_id" field.
func ProspectIDIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldProspectID))
}

// ProspectIDNotNil applies the NotNil predicate on the "prospect_id" field.
func ProspectIDNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldProspectID))
}

// ProspectIDEqualFold applies the EqualFold predicate on the "prospect_id" field.
func ProspectIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldProspectID, v))
}

// ProspectIDContainsFold applies the ContainsFold predicate on the "prospect_id" field.
func ProspectIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldProspectID, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDIsNil applies the IsNil predicate on the "conversation_id" field.
func ConversationIDIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldConversationID))
}

// ConversationIDNotNil applies the NotNil predicate on the "conversation_id" field.
func ConversationIDNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldConversationID))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldConversationID, v))
}

// ChannelKindEQ applies the EQ predicate on the "channel_kind" field.
func ChannelKindEQ(v ChannelKind) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldChannelKind, v))
}

// ChannelKindNEQ applies the NEQ predicate on the "channel_kind" field.
func ChannelKindNEQ(v ChannelKind) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldChannelKind, v))
}

// ChannelKindIn applies the In predicate on the "channel_kind" field.
func ChannelKindIn(vs ...ChannelKind) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldChannelKind, vs...))
}

// ChannelKindNotIn applies the NotIn predicate on the "channel_kind" field.
func ChannelKindNotIn(vs ...ChannelKind) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldChannelKind, vs...))
}

// DirectionEQ applies the EQ predicate on the "direction" field.
func DirectionEQ(v Direction) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldDirection, v))
}

// DirectionNEQ applies the NEQ predicate on the "direction" field.
func DirectionNEQ(v Direction) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldDirection, v))
}

// DirectionIn applies the In predicate on the "direction" field.
func DirectionIn(vs ...Direction) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldDirection, vs...))
}

// DirectionNotIn applies the NotIn predicate on the "direction" field.
func DirectionNotIn(vs ...Direction) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldDirection, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldStatus, vs...))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectIsNil applies the IsNil predicate on the "subject" field.
func SubjectIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldSubject))
}

// SubjectNotNil applies the NotNil predicate on the "subject" field.
func SubjectNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldSubject))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldSubject, v))
}

// BodyEQ applies the EQ predicate on the "body" field.
func BodyEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldBody, v))
}

// BodyNEQ applies the NEQ predicate on the "body" field.
func BodyNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldBody, v))
}

// BodyIn applies the In predicate on the "body" field.
func BodyIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldBody, vs...))
}

// BodyNotIn applies the NotIn predicate on the "body" field.
func BodyNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldBody, vs...))
}

// BodyGT applies the GT predicate on the "body" field.
func BodyGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldBody, v))
}

// BodyGTE applies the GTE predicate on the "body" field.
func BodyGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldBody, v))
}

// BodyLT applies the LT predicate on the "body" field.
func BodyLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldBody, v))
}

// BodyLTE applies the LTE predicate on the "body" field.
func BodyLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldBody, v))
}

// BodyContains applies the Contains predicate on the "body" field.
func BodyContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldBody, v))
}

// BodyHasPrefix applies the HasPrefix predicate on the "body" field.
func BodyHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldBody, v))
}

// BodyHasSuffix applies the HasSuffix predicate on the "body" field.
func BodyHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldBody, v))
}

// BodyEqualFold applies the EqualFold predicate on the "body" field.
func BodyEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldBody, v))
}

// BodyContainsFold applies the ContainsFold predicate on the "body" field.
func BodyContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldBody, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDIsNil applies the IsNil predicate on the "external_id" field.
func ExternalIDIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldExternalID))
}

// ExternalIDNotNil applies the NotNil predicate on the "external_id" field.
func ExternalIDNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldExternalID))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldContainsFold(FieldExternalID, v))
}

// SentAtEQ applies the EQ predicate on the "sent_at" field.
func SentAtEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldSentAt, v))
}

// SentAtNEQ applies the NEQ predicate on the "sent_at" field.
func SentAtNEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldSentAt, v))
}

// SentAtIn applies the In predicate on the "sent_at" field.
func SentAtIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldSentAt, vs...))
}

// SentAtNotIn applies the NotIn predicate on the "sent_at" field.
func SentAtNotIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldSentAt, vs...))
}

// SentAtGT applies the GT predicate on the "sent_at" field.
func SentAtGT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldSentAt, v))
}

// SentAtGTE applies the GTE predicate on the "sent_at" field.
func SentAtGTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldSentAt, v))
}

// SentAtLT applies the LT predicate on the "sent_at" field.
func SentAtLT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldSentAt, v))
}

// SentAtLTE applies the LTE predicate on the "sent_at" field.
func SentAtLTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldSentAt, v))
}

// SentAtIsNil applies the IsNil predicate on the "sent_at" field.
func SentAtIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldSentAt))
}

// SentAtNotNil applies the NotNil predicate on the "sent_at" field.
func SentAtNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldSentAt))
}

// DeliveredAtEQ applies the EQ predicate on the "delivered_at" field.
func DeliveredAtEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldDeliveredAt, v))
}

// DeliveredAtNEQ applies the NEQ predicate on the "delivered_at" field.
func DeliveredAtNEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldDeliveredAt, v))
}

// DeliveredAtIn applies the In predicate on the "delivered_at" field.
func DeliveredAtIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldDeliveredAt, vs...))
}

// DeliveredAtNotIn applies the NotIn predicate on the "delivered_at" field.
func DeliveredAtNotIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldDeliveredAt, vs...))
}

// DeliveredAtGT applies the GT predicate on the "delivered_at" field.
func DeliveredAtGT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldDeliveredAt, v))
}

// DeliveredAtGTE applies the GTE predicate on the "delivered_at" field.
func DeliveredAtGTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldDeliveredAt, v))
}

// DeliveredAtLT applies the LT predicate on the "delivered_at" field.
func DeliveredAtLT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldDeliveredAt, v))
}

// DeliveredAtLTE applies the LTE predicate on the "delivered_at" field.
func DeliveredAtLTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldDeliveredAt, v))
}

// DeliveredAtIsNil applies the IsNil predicate on the "delivered_at" field.
func DeliveredAtIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldDeliveredAt))
}

// DeliveredAtNotNil applies the NotNil predicate on the "delivered_at" field.
func DeliveredAtNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldDeliveredAt))
}

// OpenedAtEQ applies the EQ predicate on the "opened_at" field.
func OpenedAtEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldOpenedAt, v))
}

// OpenedAtNEQ applies the NEQ predicate on the "opened_at" field.
func OpenedAtNEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldOpenedAt, v))
}

// OpenedAtIn applies the In predicate on the "opened_at" field.
func OpenedAtIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldOpenedAt, vs...))
}

// OpenedAtNotIn applies the NotIn predicate on the "opened_at" field.
func OpenedAtNotIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldOpenedAt, vs...))
}

// OpenedAtGT applies the GT predicate on the "opened_at" field.
func OpenedAtGT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldOpenedAt, v))
}

// OpenedAtGTE applies the GTE predicate on the "opened_at" field.
func OpenedAtGTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldOpenedAt, v))
}

// OpenedAtLT applies the LT predicate on the "opened_at" field.
func OpenedAtLT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldOpenedAt, v))
}

// OpenedAtLTE applies the LTE predicate on the "opened_at" field.
func OpenedAtLTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldOpenedAt, v))
}

// OpenedAtIsNil applies the IsNil predicate on the "opened_at" field.
func OpenedAtIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldOpenedAt))
}

// OpenedAtNotNil applies the NotNil predicate on the "opened_at" field.
func OpenedAtNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldOpenedAt))
}

// ClickedAtEQ applies the EQ predicate on the "clicked_at" field.
func ClickedAtEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldClickedAt, v))
}

// ClickedAtNEQ applies the NEQ predicate on the "clicked_at" field.
func ClickedAtNEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldClickedAt, v))
}

// ClickedAtIn applies the In predicate on the "clicked_at" field.
func ClickedAtIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldClickedAt, vs...))
}

// ClickedAtNotIn applies the NotIn predicate on the "clicked_at" field.
func ClickedAtNotIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldClickedAt, vs...))
}

// ClickedAtGT applies the GT predicate on the "clicked_at" field.
func ClickedAtGT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldClickedAt, v))
}

// ClickedAtGTE applies the GTE predicate on the "clicked_at" field.
func ClickedAtGTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldClickedAt, v))
}

// ClickedAtLT applies the LT predicate on the "clicked_at" field.
func ClickedAtLT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldClickedAt, v))
}

// ClickedAtLTE applies the LTE predicate on the "clicked_at" field.
func ClickedAtLTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldClickedAt, v))
}

// ClickedAtIsNil applies the IsNil predicate on the "clicked_at" field.
func ClickedAtIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldClickedAt))
}

// ClickedAtNotNil applies the NotNil predicate on the "clicked_at" field.
func ClickedAtNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldClickedAt))
}

// RepliedAtEQ applies the EQ predicate on the "replied_at" field.
func RepliedAtEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldRepliedAt, v))
}

// RepliedAtNEQ applies the NEQ predicate on the "replied_at" field.
func RepliedAtNEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldRepliedAt, v))
}

// RepliedAtIn applies the In predicate on the "replied_at" field.
func RepliedAtIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldRepliedAt, vs...))
}

// RepliedAtNotIn applies the NotIn predicate on the "replied_at" field.
func RepliedAtNotIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldRepliedAt, vs...))
}

// RepliedAtGT applies the GT predicate on the "replied_at" field.
func RepliedAtGT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldRepliedAt, v))
}

// RepliedAtGTE applies the GTE predicate on the "replied_at" field.
func RepliedAtGTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldRepliedAt, v))
}

// RepliedAtLT applies the LT predicate on the "replied_at" field.
func RepliedAtLT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldRepliedAt, v))
}

// RepliedAtLTE applies the LTE predicate on the "replied_at" field.
func RepliedAtLTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldRepliedAt, v))
}

// RepliedAtIsNil applies the IsNil predicate on the "replied_at" field.
func RepliedAtIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldRepliedAt))
}

// RepliedAtNotNil applies the NotNil predicate on the "replied_at" field.
func RepliedAtNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldRepliedAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ContactAttempt) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ContactAttempt) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ContactAttempt) predicate.ContactAttempt {
	return predicate.ContactAttempt(sql.NotPredicates(p))
}
