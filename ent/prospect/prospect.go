// Code generated by ent, DO NOT EDIT.

package prospect

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the prospect type in the database.
	Label = "prospect"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldGroupID holds the string denoting the group_id field in the database.
	FieldGroupID = "group_id"
	// FieldChannelConfigID holds the string denoting the channel_config_id field in the database.
	FieldChannelConfigID = "channel_config_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldTelegramUserID holds the string denoting the telegram_user_id field in the database.
	FieldTelegramUserID = "telegram_user_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastMessagedAt holds the string denoting the last_messaged_at field in the database.
	FieldLastMessagedAt = "last_messaged_at"
	// FieldLastRepliedAt holds the string denoting the last_replied_at field in the database.
	FieldLastRepliedAt = "last_replied_at"
	// FieldLastExternalID holds the string denoting the last_external_id field in the database.
	FieldLastExternalID = "last_external_id"
	// FieldConvertedLeadID holds the string denoting the converted_lead_id field in the database.
	FieldConvertedLeadID = "converted_lead_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the prospect in the database.
	Table = "prospects"
)

// Columns holds all SQL columns for prospect fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldGroupID,
	FieldChannelConfigID,
	FieldDisplayName,
	FieldUsername,
	FieldPhone,
	FieldTelegramUserID,
	FieldStatus,
	FieldLastMessagedAt,
	FieldLastRepliedAt,
	FieldLastExternalID,
	FieldConvertedLeadID,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusMessaged  Status = "messaged"
	StatusReplied   Status = "replied"
	StatusConverted Status = "converted"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusMessaged, StatusReplied, StatusConverted:
		return nil
	default:
		return fmt.Errorf("prospect: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Prospect queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByGroupID orders the results by the group_id field.
func ByGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupID, opts...).ToFunc()
}

// ByChannelConfigID orders the results by the channel_config_id field.
func ByChannelConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannelConfigID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByTelegramUserID orders the results by the telegram_user_id field.
func ByTelegramUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelegramUserID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastMessagedAt orders the results by the last_messaged_at field.
func ByLastMessagedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessagedAt, opts...).ToFunc()
}

// ByLastRepliedAt orders the results by the last_replied_at field.
func ByLastRepliedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastRepliedAt, opts...).ToFunc()
}

// ByLastExternalID orders the results by the last_external_id field.
func ByLastExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastExternalID, opts...).ToFunc()
}

// ByConvertedLeadID orders the results by the converted_lead_id field.
func ByConvertedLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConvertedLeadID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
