// Code generated by ent, DO NOT EDIT.

package contactattempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the contactattempt type in the database.
	Label = "contact_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldCampaignID holds the string denoting the campaign_id field in the database.
	FieldCampaignID = "campaign_id"
	// FieldCampaignStepID holds the string denoting the campaign_step_id field in the database.
	FieldCampaignStepID = "campaign_step_id"
	// FieldRecipientID holds the string denoting the recipient_id field in the database.
	FieldRecipientID = "recipient_id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldContactID holds the string denoting the contact_id field in the database.
	FieldContactID = "contact_id"
	// FieldProspectID holds the string denoting the prospect_id field in the database.
	FieldProspectID = "prospect_id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldChannelKind holds the string denoting the channel_kind field in the database.
	FieldChannelKind = "channel_kind"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldSentAt holds the string denoting the sent_at field in the database.
	FieldSentAt = "sent_at"
	// FieldDeliveredAt holds the string denoting the delivered_at field in the database.
	FieldDeliveredAt = "delivered_at"
	// FieldOpenedAt holds the string denoting the opened_at field in the database.
	FieldOpenedAt = "opened_at"
	// FieldClickedAt holds the string denoting the clicked_at field in the database.
	FieldClickedAt = "clicked_at"
	// FieldRepliedAt holds the string denoting the replied_at field in the database.
	FieldRepliedAt = "replied_at"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the contactattempt in the database.
	Table = "contact_attempts"
)

// Columns holds all SQL columns for contactattempt fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldCampaignID,
	FieldCampaignStepID,
	FieldRecipientID,
	FieldLeadID,
	FieldContactID,
	FieldProspectID,
	FieldConversationID,
	FieldChannelKind,
	FieldDirection,
	FieldStatus,
	FieldSubject,
	FieldBody,
	FieldExternalID,
	FieldSentAt,
	FieldDeliveredAt,
	FieldOpenedAt,
	FieldClickedAt,
	FieldRepliedAt,
	FieldMetadata,
	FieldCreatedAt,
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
		return fmt.Errorf("contactattempt: invalid enum value for channel_kind field: %q", ck)
	}
}

// Direction defines the type for the "direction" enum field.
type Direction string

// Direction values.
const (
	DirectionOutbound Direction = "outbound"
	DirectionInbound  Direction = "inbound"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionOutbound, DirectionInbound:
		return nil
	default:
		return fmt.Errorf("contactattempt: invalid enum value for direction field: %q", d)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusQueued    Status = "queued"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
	StatusBounced   Status = "bounced"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusQueued, StatusSent, StatusDelivered, StatusFailed, StatusBounced:
		return nil
	default:
		return fmt.Errorf("contactattempt: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ContactAttempt queries.
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

// ByCampaignStepID orders the results by the campaign_step_id field.
func ByCampaignStepID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampaignStepID, opts...).ToFunc()
}

// ByRecipientID orders the results by the recipient_id field.
func ByRecipientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipientID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByContactID orders the results by the contact_id field.
func ByContactID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContactID, opts...).ToFunc()
}

// ByProspectID orders the results by the prospect_id field.
func ByProspectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProspectID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByChannelKind orders the results by the channel_kind field.
func ByChannelKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelKind, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// BySentAt orders the results by the sent_at field.
func BySentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSentAt, opts...).ToFunc()
}

// ByDeliveredAt orders the results by the delivered_at field.
func ByDeliveredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveredAt, opts...).ToFunc()
}

// ByOpenedAt orders the results by the opened_at field.
func ByOpenedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOpenedAt, opts...).ToFunc()
}

// ByClickedAt orders the results by the clicked_at field.
func ByClickedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickedAt, opts...).ToFunc()
}

// ByRepliedAt orders the results by the replied_at field.
func ByRepliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepliedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
