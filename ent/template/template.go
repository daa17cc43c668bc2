// Code generated by ent, DO NOT EDIT.

package template

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the template type in the database.
	Label = "template"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldChannelKind holds the string denoting the channel_kind field in the database.
	FieldChannelKind = "channel_kind"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldUseAi holds the string denoting the use_ai field in the database.
	FieldUseAi = "use_ai"
	// FieldVariations holds the string denoting the variations field in the database.
	FieldVariations = "variations"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the template in the database.
	Table = "templates"
)

// Columns holds all SQL columns for template fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldChannelKind,
	FieldName,
	FieldSubject,
	FieldBody,
	FieldUseAi,
	FieldVariations,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultUseAi holds the default value on creation for the "use_ai" field.
	DefaultUseAi bool
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
		return fmt.Errorf("template: invalid enum value for channel_kind field: %q", ck)
	}
}

// OrderOption defines the ordering options for the Template queries.
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

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByUseAi orders the results by the use_ai field.
func ByUseAi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUseAi, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
