// Code generated by ent, DO NOT EDIT.

package recipient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldTenantID, v))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldCampaignID, v))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldLeadID, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldContactID, v))
}

// ProspectID applies equality check predicate on the "prospect_id" field. It's identical to ProspectIDEQ.
func ProspectID(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldProspectID, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v int) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldCurrentStep, v))
}

// NextActionAt applies equality check predicate on the "next_action_at" field. It's identical to NextActionAtEQ.
func NextActionAt(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldNextActionAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldTenantID, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldCampaignID, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldLeadID, v))
}

// LeadIDContains applies the Contains predicate on the "lead_id" field.
func LeadIDContains(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContains(FieldLeadID, v))
}

// LeadIDHasPrefix applies the HasPrefix predicate on the "lead_id" field.
func LeadIDHasPrefix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasPrefix(FieldLeadID, v))
}

// LeadIDHasSuffix applies the HasSuffix predicate on the "lead_id" field.
func LeadIDHasSuffix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasSuffix(FieldLeadID, v))
}

// LeadIDIsNil applies the IsNil predicate on the "lead_id" field.
func LeadIDIsNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldIsNull(FieldLeadID))
}

// LeadIDNotNil applies the NotNil predicate on the "lead_id" field.
func LeadIDNotNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldNotNull(FieldLeadID))
}

// LeadIDEqualFold applies the EqualFold predicate on the "lead_id" field.
func LeadIDEqualFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldLeadID, v))
}

// LeadIDContainsFold applies the ContainsFold predicate on the "lead_id" field.
func LeadIDContainsFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldLeadID, v))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDGT applies the GT predicate on the "contact_id" field.
func ContactIDGT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldContactID, v))
}

// ContactIDGTE applies the GTE predicate on the "contact_id" field.
func ContactIDGTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldContactID, v))
}

// ContactIDLT applies the LT predicate on the "contact_id" field.
func ContactIDLT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldContactID, v))
}

// ContactIDLTE applies the LTE predicate on the "contact_id" field.
func ContactIDLTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldContactID, v))
}

// ContactIDContains applies the Contains predicate on the "contact_id" field.
func ContactIDContains(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContains(FieldContactID, v))
}

// ContactIDHasPrefix applies the HasPrefix predicate on the "contact_id" field.
func ContactIDHasPrefix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasPrefix(FieldContactID, v))
}

// ContactIDHasSuffix applies the HasSuffix predicate on the "contact_id" field.
func ContactIDHasSuffix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasSuffix(FieldContactID, v))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldNotNull(FieldContactID))
}

// ContactIDEqualFold applies the EqualFold predicate on the "contact_id" field.
func ContactIDEqualFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldContactID, v))
}

// ContactIDContainsFold applies the ContainsFold predicate on the "contact_id" field.
func ContactIDContainsFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldContactID, v))
}

// ProspectIDEQ applies the EQ predicate on the "prospect_id" field.
func ProspectIDEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldProspectID, v))
}

// ProspectIDNEQ applies the NEQ predicate on the "prospect_id" field.
func ProspectIDNEQ(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldProspectID, v))
}

// ProspectIDIn applies the In predicate on the "prospect_id" field.
func ProspectIDIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldProspectID, vs...))
}

// ProspectIDNotIn applies the NotIn predicate on the "prospect_id" field.
func ProspectIDNotIn(vs ...string) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldProspectID, vs...))
}

// ProspectIDGT applies the GT predicate on the "prospect_id" field.
func ProspectIDGT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldProspectID, v))
}

// ProspectIDGTE applies the GTE predicate on the "prospect_id" field.
func ProspectIDGTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldProspectID, v))
}

// ProspectIDLT applies the LT predicate on the "prospect_id" field.
func ProspectIDLT(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldProspectID, v))
}

// ProspectIDLTE applies the LTE predicate on the "prospect_id" field.
func ProspectIDLTE(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldProspectID, v))
}

// ProspectIDContains applies the Contains predicate on the "prospect_id" field.
func ProspectIDContains(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContains(FieldProspectID, v))
}

// ProspectIDHasPrefix applies the HasPrefix predicate on the "prospect_id" field.
func ProspectIDHasPrefix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasPrefix(FieldProspectID, v))
}

// ProspectIDHasSuffix applies the HasSuffix predicate on the "prospect_id" field.
func ProspectIDHasSuffix(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldHasSuffix(FieldProspectID, v))
}

// ProspectIDIsNil applies the IsNil predicate on the "prospect_id" field.
func ProspectIDIsNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldIsNull(FieldProspectID))
}

// ProspectIDNotNil applies the NotNil predicate on the "prospect_id" field.
func ProspectIDNotNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldNotNull(FieldProspectID))
}

// ProspectIDEqualFold applies the EqualFold predicate on the "prospect_id" field.
func ProspectIDEqualFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldEqualFold(FieldProspectID, v))
}

// ProspectIDContainsFold applies the ContainsFold predicate on the "prospect_id" field.
func ProspectIDContainsFold(v string) predicate.Recipient {
	return predicate.Recipient(sql.FieldContainsFold(FieldProspectID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v int) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v int) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...int) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...int) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v int) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v int) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v int) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v int) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldCurrentStep, v))
}

// NextActionAtEQ applies the EQ predicate on the "next_action_at" field.
func NextActionAtEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldNextActionAt, v))
}

// NextActionAtNEQ applies the NEQ predicate on the "next_action_at" field.
func NextActionAtNEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldNextActionAt, v))
}

// NextActionAtIn applies the In predicate on the "next_action_at" field.
func NextActionAtIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldNextActionAt, vs...))
}

// NextActionAtNotIn applies the NotIn predicate on the "next_action_at" field.
func NextActionAtNotIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldNextActionAt, vs...))
}

// NextActionAtGT applies the GT predicate on the "next_action_at" field.
func NextActionAtGT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldNextActionAt, v))
}

// NextActionAtGTE applies the GTE predicate on the "next_action_at" field.
func NextActionAtGTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldNextActionAt, v))
}

// NextActionAtLT applies the LT predicate on the "next_action_at" field.
func NextActionAtLT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldNextActionAt, v))
}

// NextActionAtLTE applies the LTE predicate on the "next_action_at" field.
func NextActionAtLTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldNextActionAt, v))
}

// NextActionAtIsNil applies the IsNil predicate on the "next_action_at" field.
func NextActionAtIsNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldIsNull(FieldNextActionAt))
}

// NextActionAtNotNil applies the NotNil predicate on the "next_action_at" field.
func NextActionAtNotNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldNotNull(FieldNextActionAt))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.Recipient {
	return predicate.Recipient(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Recipient {
	return predicate.Recipient(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recipient) predicate.Recipient {
	return predicate.Recipient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recipient) predicate.Recipient {
	return predicate.Recipient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recipient) predicate.Recipient {
	return predicate.Recipient(sql.NotPredicates(p))
}
