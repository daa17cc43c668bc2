// Code generated by ent, DO NOT EDIT.

package campaignstep

import (
	"fmt"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the campaignstep type in the database.
	Label = "campaign_step"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldStepOrder holds the string denoting the step_order field in the database.
	FieldStepOrder = "step_order"
	// FieldChannelKind holds the string denoting the channel_kind field in the database.
	FieldChannelKind = "channel_kind"
	// FieldChannelConfigID holds the string denoting the channel_config_id field in the database.
	FieldChannelConfigID = "channel_config_id"
	// FieldTemplateID holds the string denoting the template_id field in the database.
	FieldTemplateID = "template_id"
	// FieldDelayDays holds the string denoting the delay_days field in the database.
	FieldDelayDays = "delay_days"
	// FieldDelayHours holds the string denoting the delay_hours field in the database.
	FieldDelayHours = "delay_hours"
	// FieldDelayMinutes holds the string denoting the delay_minutes field in the database.
	FieldDelayMinutes = "delay_minutes"
	// FieldSendTimeStart holds the string denoting the send_time_start field in the database.
	FieldSendTimeStart = "send_time_start"
	// FieldSendTimeEnd holds the string denoting the send_time_end field in the database.
	FieldSendTimeEnd = "send_time_end"
	// Table holds the table name of the campaignstep in the database.
	Table = "campaign_steps"
)

// Columns holds all SQL columns for campaignstep fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCampaignID,
	FieldStepOrder,
	FieldChannelKind,
	FieldChannelConfigID,
	FieldTemplateID,
	FieldDelayDays,
	FieldDelayHours,
	FieldDelayMinutes,
	FieldSendTimeStart,
	FieldSendTimeEnd,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StepOrderValidator is a validator for the "step_order" field. It is called by the builders before save.
	StepOrderValidator func(int) error
	// DefaultDelayDays holds the default value on creation for the "delay_days" field.
	DefaultDelayDays int
	// DefaultDelayHours holds the default value on creation for the "delay_hours" field.
	DefaultDelayHours int
	// DefaultDelayMinutes holds the default value on creation for the "delay_minutes" field.
	DefaultDelayMinutes int
)

// ChannelKind defines the type for the "channel_kind" enum field.
type ChannelKind string

// ChannelKind values.
const (
	ChannelKindEmailSMTP        ChannelKind = "email_smtp"
	ChannelKindEmailAPI         ChannelKind = "email_api"
	ChannelKindSms              ChannelKind = "sms"
	ChannelKindWhatsappWeb      ChannelKind = "whatsapp_web"
	ChannelKindWhatsappBusiness ChannelKind = "whatsapp_business"
	ChannelKindTelegram         ChannelKind = "telegram"
	ChannelKindVoice            ChannelKind = "voice"
)

func (ck ChannelKind) String() string {
	return string(ck)
}

// ChannelKindValidator is a validator for the "channel_kind" field enum values. It is called by the builders before save.
func ChannelKindValidator(ck ChannelKind) error {
	switch ck {
	case ChannelKindEmailSMTP, ChannelKindEmailAPI, ChannelKindSms, ChannelKindWhatsappWeb, ChannelKindWhatsappBusiness, ChannelKindTelegram, ChannelKindVoice:
		return nil
	default:
		return fmt.Errorf("campaignstep: invalid enum value for channel_kind field: %q", ck)
	}
}

// OrderOption defines the ordering options for the CampaignStep queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByCampaignID orders the results by the campaign_id field.
func ByCampaignID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignID, opts...).ToFunc()
}

// ByStepOrder orders the results by the step_order field.
func ByStepOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepOrder, opts...).ToFunc()
}

// ByChannelKind orders the results by the channel_kind field.
func ByChannelKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelKind, opts...).ToFunc()
}

// ByChannelConfigID orders the results by the channel_config_id field.
func ByChannelConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelConfigID, opts...).ToFunc()
}

// ByTemplateID orders the results by the template_id field.
func ByTemplateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemplateID, opts...).ToFunc()
}

// ByDelayDays orders the results by the delay_days field.
func ByDelayDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayDays, opts...).ToFunc()
}

// ByDelayHours orders the results by the delay_hours field.
func ByDelayHours(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayHours, opts...).ToFunc()
}

// ByDelayMinutes orders the results by the delay_minutes field.
func ByDelayMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDelayMinutes, opts...).ToFunc()
}

// BySendTimeStart orders the results by the send_time_start field.
func BySendTimeStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSendTimeStart, opts...).ToFunc()
}

// BySendTimeEnd orders the results by the send_time_end field.
func BySendTimeEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSendTimeEnd, opts...).ToFunc()
}
