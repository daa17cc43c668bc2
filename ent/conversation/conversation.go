// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldChannelKind holds the string denoting the channel_kind field in the database.
	FieldChannelKind = "channel_kind"
	// FieldChannelConfigID holds the string denoting the channel_config_id field in the database.
	FieldChannelConfigID = "channel_config_id"
	// FieldContactID holds the string denoting the contact_id field in the database.
	FieldContactID = "contact_id"
	// FieldProspectID holds the string denoting the prospect_id field in the database.
	FieldProspectID = "prospect_id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastWatermark holds the string denoting the last_watermark field in the database.
	FieldLastWatermark = "last_watermark"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldChannelKind,
	FieldChannelConfigID,
	FieldContactID,
	FieldProspectID,
	FieldLeadID,
	FieldStatus,
	FieldLastWatermark,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
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
		return fmt.Errorf("conversation: invalid enum value for channel_kind field: %q", ck)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusClosed:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByChannelKind orders the results by the channel_kind field.
func ByChannelKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelKind, opts...).ToFunc()
}

// ByChannelConfigID orders the results by the channel_config_id field.
func ByChannelConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelConfigID, opts...).ToFunc()
}

// ByContactID orders the results by the contact_id field.
func ByContactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactID, opts...).ToFunc()
}

// ByProspectID orders the results by the prospect_id field.
func ByProspectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProspectID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastWatermark orders the results by the last_watermark field.
func ByLastWatermark(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastWatermark, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
