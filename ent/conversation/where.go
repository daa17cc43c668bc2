// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTenantID, v))
}

// ChannelConfigID applies equality check predicate on the "channel_config_id" field. It's identical to ChannelConfigIDEQ.
func ChannelConfigID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldChannelConfigID, v))
}

// ContactID applies equality check predicate on the "contact_id" field. It's identical to ContactIDEQ.
func ContactID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldContactID, v))
}

// ProspectID applies equality check predicate on the "prospect_id" field. It's identical to ProspectIDEQ.
func ProspectID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldProspectID, v))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLeadID, v))
}

// LastWatermark applies equality check predicate on the "last_watermark" field. It's identical to LastWatermarkEQ.
func LastWatermark(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastWatermark, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldTenantID, v))
}

// ChannelKindEQ applies the EQ predicate on the "channel_kind" field.
func ChannelKindEQ(v ChannelKind) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldChannelKind, v))
}

// ChannelKindNEQ applies the NEQ predicate on the "channel_kind" field.
func ChannelKindNEQ(v ChannelKind) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldChannelKind, v))
}

// ChannelKindIn applies the In predicate on the "channel_kind" field.
func ChannelKindIn(vs ...ChannelKind) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldChannelKind, vs...))
}

// ChannelKindNotIn applies the NotIn predicate on the "channel_kind" field.
func ChannelKindNotIn(vs ...ChannelKind) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldChannelKind, vs...))
}

// ChannelConfigIDEQ applies the EQ predicate on the "channel_config_id" field.
func ChannelConfigIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldChannelConfigID, v))
}

// ChannelConfigIDNEQ applies the NEQ predicate on the "channel_config_id" field.
func ChannelConfigIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldChannelConfigID, v))
}

// ChannelConfigIDIn applies the In predicate on the "channel_config_id" field.
func ChannelConfigIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldChannelConfigID, vs...))
}

// ChannelConfigIDNotIn applies the NotIn predicate on the "channel_config_id" field.
func ChannelConfigIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldChannelConfigID, vs...))
}

// ChannelConfigIDGT applies the GT predicate on the "channel_config_id" field.
func ChannelConfigIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldChannelConfigID, v))
}

// ChannelConfigIDGTE applies the GTE predicate on the "channel_config_id" field.
func ChannelConfigIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldChannelConfigID, v))
}

// ChannelConfigIDLT applies the LT predicate on the "channel_config_id" field.
func ChannelConfigIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldChannelConfigID, v))
}

// ChannelConfigIDLTE applies the LTE predicate on the "channel_config_id" field.
func ChannelConfigIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldChannelConfigID, v))
}

// ChannelConfigIDContains applies the Contains predicate on the "channel_config_id" field.
func ChannelConfigIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldChannelConfigID, v))
}

// ChannelConfigIDHasPrefix applies the HasPrefix predicate on the "channel_config_id" field.
func ChannelConfigIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldChannelConfigID, v))
}

// ChannelConfigIDHasSuffix applies the HasSuffix predicate on the "channel_config_id" field.
func ChannelConfigIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldChannelConfigID, v))
}

// ChannelConfigIDEqualFold applies the EqualFold predicate on the "channel_config_id" field.
func ChannelConfigIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldChannelConfigID, v))
}

// ChannelConfigIDContainsFold applies the ContainsFold predicate on the "channel_config_id" field.
func ChannelConfigIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldChannelConfigID, v))
}

// ContactIDEQ applies the EQ predicate on the "contact_id" field.
func ContactIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldContactID, v))
}

// ContactIDNEQ applies the NEQ predicate on the "contact_id" field.
func ContactIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldContactID, v))
}

// ContactIDIn applies the In predicate on the "contact_id" field.
func ContactIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldContactID, vs...))
}

// ContactIDNotIn applies the NotIn predicate on the "contact_id" field.
func ContactIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldContactID, vs...))
}

// ContactIDGT applies the GT predicate on the "contact_id" field.
func ContactIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldContactID, v))
}

// ContactIDGTE applies the GTE predicate on the "contact_id" field.
func ContactIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldContactID, v))
}

// ContactIDLT applies the LT predicate on the "contact_id" field.
func ContactIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldContactID, v))
}

// ContactIDLTE applies the LTE predicate on the "contact_id" field.
func ContactIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldContactID, v))
}

// ContactIDContains applies the Contains predicate on the "contact_id" field.
func ContactIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldContactID, v))
}

// ContactIDHasPrefix applies the HasPrefix predicate on the "contact_id" field.
func ContactIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldContactID, v))
}

// ContactIDHasSuffix applies the HasSuffix predicate on the "contact_id" field.
func ContactIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldContactID, v))
}

// ContactIDIsNil applies the IsNil predicate on the "contact_id" field.
func ContactIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldContactID))
}

// ContactIDNotNil applies the NotNil predicate on the "contact_id" field.
func ContactIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldContactID))
}

// ContactIDEqualFold applies the EqualFold predicate on the "contact_id" field.
func ContactIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldContactID, v))
}

// ContactIDContainsFold applies the ContainsFold predicate on the "contact_id" field.
func ContactIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldContactID, v))
}

// ProspectIDEQ applies the EQ predicate on the "prospect_id" field.
func ProspectIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldProspectID, v))
}

// ProspectIDNEQ applies the NEQ predicate on the "prospect_id" field.
func ProspectIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldProspectID, v))
}

// ProspectIDIn applies the In predicate on the "prospect_id" field.
func ProspectIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldProspectID, vs...))
}

// ProspectIDNotIn applies the NotIn predicate on the "prospect_id" field.
func ProspectIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldProspectID, vs...))
}

// ProspectIDGT applies the GT predicate on the "prospect_id" field.
func ProspectIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldProspectID, v))
}

// ProspectIDGTE applies the GTE predicate on the "prospect_id" field.
func ProspectIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldProspectID, v))
}

// ProspectIDLT applies the LT predicate on the "prospect_id" field.
func ProspectIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldProspectID, v))
}

// ProspectIDLTE applies the LTE predicate on the "prospect_id" field.
func ProspectIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldProspectID, v))
}

// ProspectIDContains applies the Contains predicate on the "prospect_id" field.
func ProspectIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldProspectID, v))
}

// ProspectIDHasPrefix applies the HasPrefix predicate on the "prospect_id" field.
func ProspectIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldProspectID, v))
}

// ProspectIDHasSuffix applies the HasSuffix predicate on the "prospect_id" field.
func ProspectIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldProspectID, v))
}

// ProspectIDIsNil applies the IsNil predicate on the "prospect_id" field.
func ProspectIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldProspectID))
}

// ProspectIDNotNil applies the NotNil predicate on the "prospect_id" field.
func ProspectIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldProspectID))
}

// ProspectIDEqualFold applies the EqualFold predicate on the "prospect_id" field.
func ProspectIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldProspectID, v))
}

// ProspectIDContainsFold applies the ContainsFold predicate on the "prospect_id" field.
func ProspectIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldProspectID, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLeadID, v))
}

// LeadIDContains applies the Contains predicate on the "lead_id" field.
func LeadIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldLeadID, v))
}

// LeadIDHasPrefix applies the HasPrefix predicate on the "lead_id" field.
func LeadIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldLeadID, v))
}

// LeadIDHasSuffix applies the HasSuffix predicate on the "lead_id" field.
func LeadIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldLeadID, v))
}

// LeadIDIsNil applies the IsNil predicate on the "lead_id" field.
func LeadIDIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLeadID))
}

// LeadIDNotNil applies the NotNil predicate on the "lead_id" field.
func LeadIDNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLeadID))
}

// LeadIDEqualFold applies the EqualFold predicate on the "lead_id" field.
func LeadIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldLeadID, v))
}

// LeadIDContainsFold applies the ContainsFold predicate on the "lead_id" field.
func LeadIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldLeadID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldStatus, vs...))
}

// LastWatermarkEQ applies the EQ predicate on the "last_watermark" field.
func LastWatermarkEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastWatermark, v))
}

// LastWatermarkNEQ applies the NEQ predicate on the "last_watermark" field.
func LastWatermarkNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastWatermark, v))
}

// LastWatermarkIn applies the In predicate on the "last_watermark" field.
func LastWatermarkIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastWatermark, vs...))
}

// LastWatermarkNotIn applies the NotIn predicate on the "last_watermark" field.
func LastWatermarkNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastWatermark, vs...))
}

// LastWatermarkGT applies the GT predicate on the "last_watermark" field.
func LastWatermarkGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastWatermark, v))
}

// LastWatermarkGTE applies the GTE predicate on the "last_watermark" field.
func LastWatermarkGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastWatermark, v))
}

// LastWatermarkLT applies the LT predicate on the "last_watermark" field.
func LastWatermarkLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastWatermark, v))
}

// LastWatermarkLTE applies the LTE predicate on the "last_watermark" field.
func LastWatermarkLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastWatermark, v))
}

// LastWatermarkContains applies the Contains predicate on the "last_watermark" field.
func LastWatermarkContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldLastWatermark, v))
}

// LastWatermarkHasPrefix applies the HasPrefix predicate on the "last_watermark" field.
func LastWatermarkHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldLastWatermark, v))
}

// LastWatermarkHasSuffix applies the HasSuffix predicate on the "last_watermark" field.
func LastWatermarkHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldLastWatermark, v))
}

// LastWatermarkIsNil applies the IsNil predicate on the "last_watermark" field.
func LastWatermarkIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastWatermark))
}

// LastWatermarkNotNil applies the NotNil predicate on the "last_watermark" field.
func LastWatermarkNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastWatermark))
}

// LastWatermarkEqualFold applies the EqualFold predicate on the "last_watermark" field.
func LastWatermarkEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldLastWatermark, v))
}

// LastWatermarkContainsFold applies the ContainsFold predicate on the "last_watermark" field.
func LastWatermarkContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldLastWatermark, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
