// Code generated by ent, DO NOT EDIT.

package prospect

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldTenantID, v))
}

// GroupID applies equality check predicate on the "group_id" field. It's identical to GroupIDEQ.
func GroupID(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldGroupID, v))
}

// ChannelConfigID applies equality check predicate on the "channel_config_id" field. It's identical to ChannelConfigIDEQ.
func ChannelConfigID(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldChannelConfigID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldDisplayName, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldUsername, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPhone, v))
}

// TelegramUserID applies equality check predicate on the "telegram_user_id" field. It's identical to TelegramUserIDEQ.
func TelegramUserID(v int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldTelegramUserID, v))
}

// LastMessagedAt applies equality check predicate on the "last_messaged_at" field. It's identical to LastMessagedAtEQ.
func LastMessagedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLastMessagedAt, v))
}

// LastRepliedAt applies equality check predicate on the "last_replied_at" field. It's identical to LastRepliedAtEQ.
func LastRepliedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLastRepliedAt, v))
}

// LastExternalID applies equality check predicate on the "last_external_id" field. It's identical to LastExternalIDEQ.
func LastExternalID(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLastExternalID, v))
}

// ConvertedLeadID applies equality check predicate on the "converted_lead_id" field. It's identical to ConvertedLeadIDEQ.
func ConvertedLeadID(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldConvertedLeadID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldUpdatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldTenantID, v))
}

// GroupIDEQ applies the EQ predicate on the "group_id" field.
func GroupIDEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldGroupID, v))
}

// GroupIDNEQ applies the NEQ predicate on the "group_id" field.
func GroupIDNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldGroupID, v))
}

// GroupIDIn applies the In predicate on the "group_id" field.
func GroupIDIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldGroupID, vs...))
}

// GroupIDNotIn applies the NotIn predicate on the "group_id" field.
func GroupIDNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldGroupID, vs...))
}

// GroupIDGT applies the GT predicate on the "group_id" field.
func GroupIDGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldGroupID, v))
}

// GroupIDGTE applies the GTE predicate on the "group_id" field.
func GroupIDGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldGroupID, v))
}

// GroupIDLT applies the LT predicate on the "group_id" field.
func GroupIDLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldGroupID, v))
}

// GroupIDLTE applies the LTE predicate on the "group_id" field.
func GroupIDLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldGroupID, v))
}

// GroupIDContains applies the Contains predicate on the "group_id" field.
func GroupIDContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldGroupID, v))
}

// GroupIDHasPrefix applies the HasPrefix predicate on the "group_id" field.
func GroupIDHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldGroupID, v))
}

// GroupIDHasSuffix applies the HasSuffix predicate on the "group_id" field.
func GroupIDHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldGroupID, v))
}

// GroupIDIsNil applies the IsNil predicate on the "group_id" field.
func GroupIDIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldGroupID))
}

// GroupIDNotNil applies the NotNil predicate on the "group_id" field.
func GroupIDNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldGroupID))
}

// GroupIDEqualFold applies the EqualFold predicate on the "group_id" field.
func GroupIDEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldGroupID, v))
}

// GroupIDContainsFold applies the ContainsFold predicate on the "group_id" field.
func GroupIDContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldGroupID, v))
}

// ChannelConfigIDEQ applies the EQ predicate on the "channel_config_id" field.
func ChannelConfigIDEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldChannelConfigID, v))
}

// ChannelConfigIDNEQ applies the NEQ predicate on the "channel_config_id" field.
func ChannelConfigIDNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldChannelConfigID, v))
}

// ChannelConfigIDIn applies the In predicate on the "channel_config_id" field.
func ChannelConfigIDIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldChannelConfigID, vs...))
}

// ChannelConfigIDNotIn applies the NotIn predicate on the "channel_config_id" field.
func ChannelConfigIDNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldChannelConfigID, vs...))
}

// ChannelConfigIDGT applies the GT predicate on the "channel_config_id" field.
func ChannelConfigIDGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldChannelConfigID, v))
}

// ChannelConfigIDGTE applies the GTE predicate on the "channel_config_id" field.
func ChannelConfigIDGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldChannelConfigID, v))
}

// ChannelConfigIDLT applies the LT predicate on the "channel_config_id" field.
func ChannelConfigIDLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldChannelConfigID, v))
}

// ChannelConfigIDLTE applies the LTE predicate on the "channel_config_id" field.
func ChannelConfigIDLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldChannelConfigID, v))
}

// ChannelConfigIDContains applies the Contains predicate on the "channel_config_id" field.
func ChannelConfigIDContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldChannelConfigID, v))
}

// ChannelConfigIDHasPrefix applies the HasPrefix predicate on the "channel_config_id" field.
func ChannelConfigIDHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldChannelConfigID, v))
}

// ChannelConfigIDHasSuffix applies the HasSuffix predicate on the "channel_config_id" field.
func ChannelConfigIDHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldChannelConfigID, v))
}

// ChannelConfigIDEqualFold applies the EqualFold predicate on the "channel_config_id" field.
func ChannelConfigIDEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldChannelConfigID, v))
}

// ChannelConfigIDContainsFold applies the ContainsFold predicate on the "channel_config_id" field.
func ChannelConfigIDContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldChannelConfigID, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldDisplayName, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameIsNil applies the IsNil predicate on the "username" field.
func UsernameIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldUsername))
}

// UsernameNotNil applies the NotNil predicate on the "username" field.
func UsernameNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldUsername))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldUsername, v))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldPhone, v))
}

// TelegramUserIDEQ applies the EQ predicate on the "telegram_user_id" field.
func TelegramUserIDEQ(v int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldTelegramUserID, v))
}

// TelegramUserIDNEQ applies the NEQ predicate on the "telegram_user_id" field.
func TelegramUserIDNEQ(v int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldTelegramUserID, v))
}

// TelegramUserIDIn applies the In predicate on the "telegram_user_id" field.
func TelegramUserIDIn(vs ...int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldTelegramUserID, vs...))
}

// TelegramUserIDNotIn applies the NotIn predicate on the "telegram_user_id" field.
func TelegramUserIDNotIn(vs ...int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldTelegramUserID, vs...))
}

// TelegramUserIDGT applies the GT predicate on the "telegram_user_id" field.
func TelegramUserIDGT(v int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldTelegramUserID, v))
}

// TelegramUserIDGTE applies the GTE predicate on the "telegram_user_id" field.
func TelegramUserIDGTE(v int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldTelegramUserID, v))
}

// TelegramUserIDLT applies the LT predicate on the "telegram_user_id" field.
func TelegramUserIDLT(v int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldTelegramUserID, v))
}

// TelegramUserIDLTE applies the LTE predicate on the "telegram_user_id" field.
func TelegramUserIDLTE(v int64) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldTelegramUserID, v))
}

// TelegramUserIDIsNil applies the IsNil predicate on the "telegram_user_id" field.
func TelegramUserIDIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldTelegramUserID))
}

// TelegramUserIDNotNil applies the NotNil predicate on the "telegram_user_id" field.
func TelegramUserIDNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldTelegramUserID))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldStatus, vs...))
}

// LastMessagedAtEQ applies the EQ predicate on the "last_messaged_at" field.
func LastMessagedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLastMessagedAt, v))
}

// LastMessagedAtNEQ applies the NEQ predicate on the "last_messaged_at" field.
func LastMessagedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldLastMessagedAt, v))
}

// LastMessagedAtIn applies the In predicate on the "last_messaged_at" field.
func LastMessagedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldLastMessagedAt, vs...))
}

// LastMessagedAtNotIn applies the NotIn predicate on the "last_messaged_at" field.
func LastMessagedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldLastMessagedAt, vs...))
}

// LastMessagedAtGT applies the GT predicate on the "last_messaged_at" field.
func LastMessagedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldLastMessagedAt, v))
}

// LastMessagedAtGTE applies the GTE predicate on the "last_messaged_at" field.
func LastMessagedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldLastMessagedAt, v))
}

// LastMessagedAtLT applies the LT predicate on the "last_messaged_at" field.
func LastMessagedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldLastMessagedAt, v))
}

// LastMessagedAtLTE applies the LTE predicate on the "last_messaged_at" field.
func LastMessagedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldLastMessagedAt, v))
}

// LastMessagedAtIsNil applies the IsNil predicate on the "last_messaged_at" field.
func LastMessagedAtIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldLastMessagedAt))
}

// LastMessagedAtNotNil applies the NotNil predicate on the "last_messaged_at" field.
func LastMessagedAtNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldLastMessagedAt))
}

// LastRepliedAtEQ applies the EQ predicate on the "last_replied_at" field.
func LastRepliedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLastRepliedAt, v))
}

// LastRepliedAtNEQ applies the NEQ predicate on the "last_replied_at" field.
func LastRepliedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldLastRepliedAt, v))
}

// LastRepliedAtIn applies the In predicate on the "last_replied_at" field.
func LastRepliedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldLastRepliedAt, vs...))
}

// LastRepliedAtNotIn applies the NotIn predicate on the "last_replied_at" field.
func LastRepliedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldLastRepliedAt, vs...))
}

// LastRepliedAtGT applies the GT predicate on the "last_replied_at" field.
func LastRepliedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldLastRepliedAt, v))
}

// LastRepliedAtGTE applies the GTE predicate on the "last_replied_at" field.
func LastRepliedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldLastRepliedAt, v))
}

// LastRepliedAtLT applies the LT predicate on the "last_replied_at" field.
func LastRepliedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldLastRepliedAt, v))
}

// LastRepliedAtLTE applies the LTE predicate on the "last_replied_at" field.
func LastRepliedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldLastRepliedAt, v))
}

// LastRepliedAtIsNil applies the IsNil predicate on the "last_replied_at" field.
func LastRepliedAtIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldLastRepliedAt))
}

// LastRepliedAtNotNil applies the NotNil predicate on the "last_replied_at" field.
func LastRepliedAtNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldLastRepliedAt))
}

// LastExternalIDEQ applies the EQ predicate on the "last_external_id" field.
func LastExternalIDEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldLastExternalID, v))
}

// LastExternalIDNEQ applies the NEQ predicate on the "last_external_id" field.
func LastExternalIDNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldLastExternalID, v))
}

// LastExternalIDIn applies the In predicate on the "last_external_id" field.
func LastExternalIDIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldLastExternalID, vs...))
}

// LastExternalIDNotIn applies the NotIn predicate on the "last_external_id" field.
func LastExternalIDNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldLastExternalID, vs...))
}

// LastExternalIDGT applies the GT predicate on the "last_external_id" field.
func LastExternalIDGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldLastExternalID, v))
}

// LastExternalIDGTE applies the GTE predicate on the "last_external_id" field.
func LastExternalIDGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldLastExternalID, v))
}

// LastExternalIDLT applies the LT predicate on the "last_external_id" field.
func LastExternalIDLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldLastExternalID, v))
}

// LastExternalIDLTE applies the LTE predicate on the "last_external_id" field.
func LastExternalIDLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldLastExternalID, v))
}

// LastExternalIDContains applies the Contains predicate on the "last_external_id" field.
func LastExternalIDContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldLastExternalID, v))
}

// LastExternalIDHasPrefix applies the HasPrefix predicate on the "last_external_id" field.
func LastExternalIDHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldLastExternalID, v))
}

// LastExternalIDHasSuffix applies the HasSuffix predicate on the "last_external_id" field.
func LastExternalIDHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldLastExternalID, v))
}

// LastExternalIDIsNil applies the IsNil predicate on the "last_external_id" field.
func LastExternalIDIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldLastExternalID))
}

// LastExternalIDNotNil applies the NotNil predicate on the "last_external_id" field.
func LastExternalIDNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldLastExternalID))
}

// LastExternalIDEqualFold applies the EqualFold predicate on the "last_external_id" field.
func LastExternalIDEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldLastExternalID, v))
}

// LastExternalIDContainsFold applies the ContainsFold predicate on the "last_external_id" field.
func LastExternalIDContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldLastExternalID, v))
}

// ConvertedLeadIDEQ applies the EQ predicate on the "converted_lead_id" field.
func ConvertedLeadIDEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldConvertedLeadID, v))
}

// ConvertedLeadIDNEQ applies the NEQ predicate on the "converted_lead_id" field.
func ConvertedLeadIDNEQ(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldConvertedLeadID, v))
}

// ConvertedLeadIDIn applies the In predicate on the "converted_lead_id" field.
func ConvertedLeadIDIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldConvertedLeadID, vs...))
}

// ConvertedLeadIDNotIn applies the NotIn predicate on the "converted_lead_id" field.
func ConvertedLeadIDNotIn(vs ...string) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldConvertedLeadID, vs...))
}

// ConvertedLeadIDGT applies the GT predicate on the "converted_lead_id" field.
func ConvertedLeadIDGT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldConvertedLeadID, v))
}

// ConvertedLeadIDGTE applies the GTE predicate on the "converted_lead_id" field.
func ConvertedLeadIDGTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldConvertedLeadID, v))
}

// ConvertedLeadIDLT applies the LT predicate on the "converted_lead_id" field.
func ConvertedLeadIDLT(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldConvertedLeadID, v))
}

// ConvertedLeadIDLTE applies the LTE predicate on the "converted_lead_id" field.
func ConvertedLeadIDLTE(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldConvertedLeadID, v))
}

// ConvertedLeadIDContains applies the Contains predicate on the "converted_lead_id" field.
func ConvertedLeadIDContains(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContains(FieldConvertedLeadID, v))
}

// ConvertedLeadIDHasPrefix applies the HasPrefix predicate on the "converted_lead_id" field.
func ConvertedLeadIDHasPrefix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasPrefix(FieldConvertedLeadID, v))
}

// ConvertedLeadIDHasSuffix applies the HasSuffix predicate on the "converted_lead_id" field.
func ConvertedLeadIDHasSuffix(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldHasSuffix(FieldConvertedLeadID, v))
}

// ConvertedLeadIDIsNil applies the IsNil predicate on the "converted_lead_id" field.
func ConvertedLeadIDIsNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldIsNull(FieldConvertedLeadID))
}

// ConvertedLeadIDNotNil applies the NotNil predicate on the "converted_lead_id" field.
func ConvertedLeadIDNotNil() predicate.Prospect {
	return predicate.Prospect(sql.FieldNotNull(FieldConvertedLeadID))
}

// ConvertedLeadIDEqualFold applies the EqualFold predicate on the "converted_lead_id" field.
func ConvertedLeadIDEqualFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldEqualFold(FieldConvertedLeadID, v))
}

// ConvertedLeadIDContainsFold applies the ContainsFold predicate on the "converted_lead_id" field.
func ConvertedLeadIDContainsFold(v string) predicate.Prospect {
	return predicate.Prospect(sql.FieldContainsFold(FieldConvertedLeadID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Prospect {
	return predicate.Prospect(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Prospect) predicate.Prospect {
	return predicate.Prospect(sql.NotPredicates(p))
}
