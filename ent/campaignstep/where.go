// Code generated by ent, DO NOT EDIT.

package campaignstep

import (
	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldTenantID, v))
}

// CampaignID applies equality check predicate on the "campaign_id" field. It's identical to CampaignIDEQ.
func CampaignID(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldCampaignID, v))
}

// StepOrder applies equality check predicate on the "step_order" field. It's identical to StepOrderEQ.
func StepOrder(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldStepOrder, v))
}

// ChannelConfigID applies equality check predicate on the "channel_config_id" field. It's identical to ChannelConfigIDEQ.
func ChannelConfigID(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldChannelConfigID, v))
}

// TemplateID applies equality check predicate on the "template_id" field. It's identical to TemplateIDEQ.
func TemplateID(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldTemplateID, v))
}

// DelayDays applies equality check predicate on the "delay_days" field. It's identical to DelayDaysEQ.
func DelayDays(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldDelayDays, v))
}

// DelayHours applies equality check predicate on the "delay_hours" field. It's identical to DelayHoursEQ.
func DelayHours(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldDelayHours, v))
}

// DelayMinutes applies equality check predicate on the "delay_minutes" field. It's identical to DelayMinutesEQ.
func DelayMinutes(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldDelayMinutes, v))
}

// SendTimeStart applies equality check predicate on the "send_time_start" field. It's identical to SendTimeStartEQ.
func SendTimeStart(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldSendTimeStart, v))
}

// SendTimeEnd applies equality check predicate on the "send_time_end" field. It's identical to SendTimeEndEQ.
func SendTimeEnd(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldSendTimeEnd, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContainsFold(FieldTenantID, v))
}

// CampaignIDEQ applies the EQ predicate on the "campaign_id" field.
func CampaignIDEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldCampaignID, v))
}

// CampaignIDNEQ applies the NEQ predicate on the "campaign_id" field.
func CampaignIDNEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldCampaignID, v))
}

// CampaignIDIn applies the In predicate on the "campaign_id" field.
func CampaignIDIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldCampaignID, vs...))
}

// CampaignIDNotIn applies the NotIn predicate on the "campaign_id" field.
func CampaignIDNotIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldCampaignID, vs...))
}

// CampaignIDGT applies the GT predicate on the "campaign_id" field.
func CampaignIDGT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldCampaignID, v))
}

// CampaignIDGTE applies the GTE predicate on the "campaign_id" field.
func CampaignIDGTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldCampaignID, v))
}

// CampaignIDLT applies the LT predicate on the "campaign_id" field.
func CampaignIDLT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldCampaignID, v))
}

// CampaignIDLTE applies the LTE predicate on the "campaign_id" field.
func CampaignIDLTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldCampaignID, v))
}

// CampaignIDContains applies the Contains predicate on the "campaign_id" field.
func CampaignIDContains(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContains(FieldCampaignID, v))
}

// CampaignIDHasPrefix applies the HasPrefix predicate on the "campaign_id" field.
func CampaignIDHasPrefix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasPrefix(FieldCampaignID, v))
}

// CampaignIDHasSuffix applies the HasSuffix predicate on the "campaign_id" field.
func CampaignIDHasSuffix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasSuffix(FieldCampaignID, v))
}

// CampaignIDEqualFold applies the EqualFold predicate on the "campaign_id" field.
func CampaignIDEqualFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEqualFold(FieldCampaignID, v))
}

// CampaignIDContainsFold applies the ContainsFold predicate on the "campaign_id" field.
func CampaignIDContainsFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContainsFold(FieldCampaignID, v))
}

// StepOrderEQ applies the EQ predicate on the "step_order" field.
func StepOrderEQ(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldStepOrder, v))
}

// StepOrderNEQ applies the NEQ predicate on the "step_order" field.
func StepOrderNEQ(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldStepOrder, v))
}

// StepOrderIn applies the In predicate on the "step_order" field.
func StepOrderIn(vs ...int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldStepOrder, vs...))
}

// StepOrderNotIn applies the NotIn predicate on the "step_order" field.
func StepOrderNotIn(vs ...int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldStepOrder, vs...))
}

// StepOrderGT applies the GT predicate on the "step_order" field.
func StepOrderGT(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldStepOrder, v))
}

// StepOrderGTE applies the GTE predicate on the "step_order" field.
func StepOrderGTE(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldStepOrder, v))
}

// StepOrderLT applies the LT predicate on the "step_order" field.
func StepOrderLT(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldStepOrder, v))
}

// StepOrderLTE applies the LTE predicate on the "step_order" field.
func StepOrderLTE(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldStepOrder, v))
}

// ChannelKindEQ applies the EQ predicate on the "channel_kind" field.
func ChannelKindEQ(v ChannelKind) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldChannelKind, v))
}

// ChannelKindNEQ applies the NEQ predicate on the "channel_kind" field.
func ChannelKindNEQ(v ChannelKind) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldChannelKind, v))
}

// ChannelKindIn applies the In predicate on the "channel_kind" field.
func ChannelKindIn(vs ...ChannelKind) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldChannelKind, vs...))
}

// ChannelKindNotIn applies the NotIn predicate on the "channel_kind" field.
func ChannelKindNotIn(vs ...ChannelKind) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldChannelKind, vs...))
}

// ChannelConfigIDEQ applies the EQ predicate on the "channel_config_id" field.
func ChannelConfigIDEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldChannelConfigID, v))
}

// ChannelConfigIDNEQ applies the NEQ predicate on the "channel_config_id" field.
func ChannelConfigIDNEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldChannelConfigID, v))
}

// ChannelConfigIDIn applies the In predicate on the "channel_config_id" field.
func ChannelConfigIDIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldChannelConfigID, vs...))
}

// ChannelConfigIDNotIn applies the NotIn predicate on the "channel_config_id" field.
func ChannelConfigIDNotIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldChannelConfigID, vs...))
}

// ChannelConfigIDGT applies the GT predicate on the "channel_config_id" field.
func ChannelConfigIDGT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldChannelConfigID, v))
}

// ChannelConfigIDGTE applies the GTE predicate on the "channel_config_id" field.
func ChannelConfigIDGTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldChannelConfigID, v))
}

// ChannelConfigIDLT applies the LT predicate on the "channel_config_id" field.
func ChannelConfigIDLT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldChannelConfigID, v))
}

// ChannelConfigIDLTE applies the LTE predicate on the "channel_config_id" field.
func ChannelConfigIDLTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldChannelConfigID, v))
}

// ChannelConfigIDContains applies the Contains predicate on the "channel_config_id" field.
func ChannelConfigIDContains(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContains(FieldChannelConfigID, v))
}

// ChannelConfigIDHasPrefix applies the HasPrefix predicate on the "channel_config_id" field.
func ChannelConfigIDHasPrefix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasPrefix(FieldChannelConfigID, v))
}

// ChannelConfigIDHasSuffix applies the HasSuffix predicate on the "channel_config_id" field.
func ChannelConfigIDHasSuffix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasSuffix(FieldChannelConfigID, v))
}

// ChannelConfigIDEqualFold applies the EqualFold predicate on the "channel_config_id" field.
func ChannelConfigIDEqualFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEqualFold(FieldChannelConfigID, v))
}

// ChannelConfigIDContainsFold applies the ContainsFold predicate on the "channel_config_id" field.
func ChannelConfigIDContainsFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContainsFold(FieldChannelConfigID, v))
}

// TemplateIDEQ applies the EQ predicate on the "template_id" field.
func TemplateIDEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldTemplateID, v))
}

// TemplateIDNEQ applies the NEQ predicate on the "template_id" field.
func TemplateIDNEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldTemplateID, v))
}

// TemplateIDIn applies the In predicate on the "template_id" field.
func TemplateIDIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldTemplateID, vs...))
}

// TemplateIDNotIn applies the NotIn predicate on the "template_id" field.
func TemplateIDNotIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldTemplateID, vs...))
}

// TemplateIDGT applies the GT predicate on the "template_id" field.
func TemplateIDGT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldTemplateID, v))
}

// TemplateIDGTE applies the GTE predicate on the "template_id" field.
func TemplateIDGTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldTemplateID, v))
}

// TemplateIDLT applies the LT predicate on the "template_id" field.
func TemplateIDLT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldTemplateID, v))
}

// TemplateIDLTE applies the LTE predicate on the "template_id" field.
func TemplateIDLTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldTemplateID, v))
}

// TemplateIDContains applies the Contains predicate on the "template_id" field.
func TemplateIDContains(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContains(FieldTemplateID, v))
}

// TemplateIDHasPrefix applies the HasPrefix predicate on the "template_id" field.
func TemplateIDHasPrefix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasPrefix(FieldTemplateID, v))
}

// TemplateIDHasSuffix applies the HasSuffix predicate on the "template_id" field.
func TemplateIDHasSuffix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasSuffix(FieldTemplateID, v))
}

// TemplateIDEqualFold applies the EqualFold predicate on the "template_id" field.
func TemplateIDEqualFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEqualFold(FieldTemplateID, v))
}

// TemplateIDContainsFold applies the ContainsFold predicate on the "template_id" field.
func TemplateIDContainsFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContainsFold(FieldTemplateID, v))
}

// DelayDaysEQ applies the EQ predicate on the "delay_days" field.
func DelayDaysEQ(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldDelayDays, v))
}

// DelayDaysNEQ applies the NEQ predicate on the "delay_days" field.
func DelayDaysNEQ(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldDelayDays, v))
}

// DelayDaysIn applies the In predicate on the "delay_days" field.
func DelayDaysIn(vs ...int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldDelayDays, vs...))
}

// DelayDaysNotIn applies the NotIn predicate on the "delay_days" field.
func DelayDaysNotIn(vs ...int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldDelayDays, vs...))
}

// DelayDaysGT applies the GT predicate on the "delay_days" field.
func DelayDaysGT(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldDelayDays, v))
}

// DelayDaysGTE applies the GTE predicate on the "delay_days" field.
func DelayDaysGTE(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldDelayDays, v))
}

// DelayDaysLT applies the LT predicate on the "delay_days" field.
func DelayDaysLT(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldDelayDays, v))
}

// DelayDaysLTE applies the LTE predicate on the "delay_days" field.
func DelayDaysLTE(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldDelayDays, v))
}

// DelayHoursEQ applies the EQ predicate on the "delay_hours" field.
func DelayHoursEQ(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldDelayHours, v))
}

// DelayHoursNEQ applies the NEQ predicate on the "delay_hours" field.
func DelayHoursNEQ(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldDelayHours, v))
}

// DelayHoursIn applies the In predicate on the "delay_hours" field.
func DelayHoursIn(vs ...int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldDelayHours, vs...))
}

// DelayHoursNotIn applies the NotIn predicate on the "delay_hours" field.
func DelayHoursNotIn(vs ...int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldDelayHours, vs...))
}

// DelayHoursGT applies the GT predicate on the "delay_hours" field.
func DelayHoursGT(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldDelayHours, v))
}

// DelayHoursGTE applies the GTE predicate on the "delay_hours" field.
func DelayHoursGTE(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldDelayHours, v))
}

// DelayHoursLT applies the LT predicate on the "delay_hours" field.
func DelayHoursLT(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldDelayHours, v))
}

// DelayHoursLTE applies the LTE predicate on the "delay_hours" field.
func DelayHoursLTE(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldDelayHours, v))
}

// DelayMinutesEQ applies the EQ predicate on the "delay_minutes" field.
func DelayMinutesEQ(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldDelayMinutes, v))
}

// DelayMinutesNEQ applies the NEQ predicate on the "delay_minutes" field.
func DelayMinutesNEQ(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldDelayMinutes, v))
}

// DelayMinutesIn applies the In predicate on the "delay_minutes" field.
func DelayMinutesIn(vs ...int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldDelayMinutes, vs...))
}

// DelayMinutesNotIn applies the NotIn predicate on the "delay_minutes" field.
func DelayMinutesNotIn(vs ...int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldDelayMinutes, vs...))
}

// DelayMinutesGT applies the GT predicate on the "delay_minutes" field.
func DelayMinutesGT(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldDelayMinutes, v))
}

// DelayMinutesGTE applies the GTE predicate on the "delay_minutes" field.
func DelayMinutesGTE(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldDelayMinutes, v))
}

// DelayMinutesLT applies the LT predicate on the "delay_minutes" field.
func DelayMinutesLT(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldDelayMinutes, v))
}

// DelayMinutesLTE applies the LTE predicate on the "delay_minutes" field.
func DelayMinutesLTE(v int) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldDelayMinutes, v))
}

// SendTimeStartEQ applies the EQ predicate on the "send_time_start" field.
func SendTimeStartEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldSendTimeStart, v))
}

// SendTimeStartNEQ applies the NEQ predicate on the "send_time_start" field.
func SendTimeStartNEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldSendTimeStart, v))
}

// SendTimeStartIn applies the In predicate on the "send_time_start" field.
func SendTimeStartIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldSendTimeStart, vs...))
}

// SendTimeStartNotIn applies the NotIn predicate on the "send_time_start" field.
func SendTimeStartNotIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldSendTimeStart, vs...))
}

// SendTimeStartGT applies the GT predicate on the "send_time_start" field.
func SendTimeStartGT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldSendTimeStart, v))
}

// SendTimeStartGTE applies the GTE predicate on the "send_time_start" field.
func SendTimeStartGTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldSendTimeStart, v))
}

// SendTimeStartLT applies the LT predicate on the "send_time_start" field.
func SendTimeStartLT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldSendTimeStart, v))
}

// SendTimeStartLTE applies the LTE predicate on the "send_time_start" field.
func SendTimeStartLTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldSendTimeStart, v))
}

// SendTimeStartContains applies the Contains predicate on the "send_time_start" field.
func SendTimeStartContains(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContains(FieldSendTimeStart, v))
}

// SendTimeStartHasPrefix applies the HasPrefix predicate on the "send_time_start" field.
func SendTimeStartHasPrefix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasPrefix(FieldSendTimeStart, v))
}

// SendTimeStartHasSuffix applies the HasSuffix predicate on the "send_time_start" field.
func SendTimeStartHasSuffix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasSuffix(FieldSendTimeStart, v))
}

// SendTimeStartIsNil applies the IsNil predicate on the "send_time_start" field.
func SendTimeStartIsNil() predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIsNull(FieldSendTimeStart))
}

// SendTimeStartNotNil applies the NotNil predicate on the "send_time_start" field.
func SendTimeStartNotNil() predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotNull(FieldSendTimeStart))
}

// SendTimeStartEqualFold applies the EqualFold predicate on the "send_time_start" field.
func SendTimeStartEqualFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEqualFold(FieldSendTimeStart, v))
}

// SendTimeStartContainsFold applies the ContainsFold predicate on the "send_time_start" field.
func SendTimeStartContainsFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContainsFold(FieldSendTimeStart, v))
}

// SendTimeEndEQ applies the EQ predicate on the "send_time_end" field.
func SendTimeEndEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEQ(FieldSendTimeEnd, v))
}

// SendTimeEndNEQ applies the NEQ predicate on the "send_time_end" field.
func SendTimeEndNEQ(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNEQ(FieldSendTimeEnd, v))
}

// SendTimeEndIn applies the In predicate on the "send_time_end" field.
func SendTimeEndIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIn(FieldSendTimeEnd, vs...))
}

// SendTimeEndNotIn applies the NotIn predicate on the "send_time_end" field.
func SendTimeEndNotIn(vs ...string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotIn(FieldSendTimeEnd, vs...))
}

// SendTimeEndGT applies the GT predicate on the "send_time_end" field.
func SendTimeEndGT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGT(FieldSendTimeEnd, v))
}

// SendTimeEndGTE applies the GTE predicate on the "send_time_end" field.
func SendTimeEndGTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldGTE(FieldSendTimeEnd, v))
}

// SendTimeEndLT applies the LT predicate on the "send_time_end" field.
func SendTimeEndLT(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLT(FieldSendTimeEnd, v))
}

// SendTimeEndLTE applies the LTE predicate on the "send_time_end" field.
func SendTimeEndLTE(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldLTE(FieldSendTimeEnd, v))
}

// SendTimeEndContains applies the Contains predicate on the "send_time_end" field.
func SendTimeEndContains(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContains(FieldSendTimeEnd, v))
}

// SendTimeEndHasPrefix applies the HasPrefix predicate on the "send_time_end" field.
func SendTimeEndHasPrefix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasPrefix(FieldSendTimeEnd, v))
}

// SendTimeEndHasSuffix applies the HasSuffix predicate on the "send_time_end" field.
func SendTimeEndHasSuffix(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldHasSuffix(FieldSendTimeEnd, v))
}

// SendTimeEndIsNil applies the IsNil predicate on the "send_time_end" field.
func SendTimeEndIsNil() predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldIsNull(FieldSendTimeEnd))
}

// SendTimeEndNotNil applies the NotNil predicate on the "send_time_end" field.
func SendTimeEndNotNil() predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldNotNull(FieldSendTimeEnd))
}

// SendTimeEndEqualFold applies the EqualFold predicate on the "send_time_end" field.
func SendTimeEndEqualFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldEqualFold(FieldSendTimeEnd, v))
}

// SendTimeEndContainsFold applies the ContainsFold predicate on the "send_time_end" field.
func SendTimeEndContainsFold(v string) predicate.CampaignStep {
	return predicate.CampaignStep(sql.FieldContainsFold(FieldSendTimeEnd, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CampaignStep) predicate.CampaignStep {
	return predicate.CampaignStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CampaignStep) predicate.CampaignStep {
	return predicate.CampaignStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CampaignStep) predicate.CampaignStep {
	return predicate.CampaignStep(sql.NotPredicates(p))
}
