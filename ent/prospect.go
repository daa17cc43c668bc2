// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/prospect"
)

// Prospect is the model entity for the Prospect schema.
type Prospect struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// GroupID holds the value of the "group_id" field.
	GroupID *string `json:"group_id,omitempty"`
	// ChannelConfigID holds the value of the "channel_config_id" field.
	ChannelConfigID string `json:"channel_config_id,omitempty"`
	// DisplayName holds the value of the "display_name" field.
	DisplayName string `json:"display_name,omitempty"`
	// Username holds the value of the "username" field.
	Username *string `json:"username,omitempty"`
	// E.164-like digit string; empty members are not sendable
	Phone *string `json:"phone,omitempty"`
	// TelegramUserID holds the value of the "telegram_user_id" field.
	TelegramUserID *int64 `json:"telegram_user_id,omitempty"`
	// Status holds the value of the "status" field.
	Status prospect.Status `json:"status,omitempty"`
	// LastMessagedAt holds the value of the "last_messaged_at" field.
	LastMessagedAt *time.Time `json:"last_messaged_at,omitempty"`
	// LastRepliedAt holds the value of the "last_replied_at" field.
	LastRepliedAt *time.Time `json:"last_replied_at,omitempty"`
	// Inbound watermark; monotonically advancing
	LastExternalID *string `json:"last_external_id,omitempty"`
	// ConvertedLeadID holds the value of the "converted_lead_id" field.
	ConvertedLeadID *string `json:"converted_lead_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Prospect) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case prospect.FieldTelegramUserID:
			values[i] = new(sql.NullInt64)
		case prospect.FieldID, prospect.FieldTenantID, prospect.FieldGroupID, prospect.FieldChannelConfigID, prospect.FieldDisplayName, prospect.FieldUsername, prospect.FieldPhone, prospect.FieldStatus, prospect.FieldLastExternalID, prospect.FieldConvertedLeadID:
			values[i] = new(sql.NullString)
		case prospect.FieldLastMessagedAt, prospect.FieldLastRepliedAt, prospect.FieldCreatedAt, prospect.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Prospect fields.
func (_m *Prospect) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case prospect.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case prospect.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case prospect.FieldGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_id", values[i])
			} else if value.Valid {
				_m.GroupID = new(string)
				*_m.GroupID = value.String
			}
		case prospect.FieldChannelConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_config_id", values[i])
			} else if value.Valid {
				_m.ChannelConfigID = value.String
			}
		case prospect.FieldDisplayName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field display_name", values[i])
			} else if value.Valid {
				_m.DisplayName = value.String
			}
		case prospect.FieldUsername:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field username", values[i])
			} else if value.Valid {
				_m.Username = new(string)
				*_m.Username = value.String
			}
		case prospect.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = new(string)
				*_m.Phone = value.String
			}
		case prospect.FieldTelegramUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field telegram_user_id", values[i])
			} else if value.Valid {
				_m.TelegramUserID = new(int64)
				*_m.TelegramUserID = value.Int64
			}
		case prospect.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = prospect.Status(value.String)
			}
		case prospect.FieldLastMessagedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_messaged_at", values[i])
			} else if value.Valid {
				_m.LastMessagedAt = new(time.Time)
				*_m.LastMessagedAt = value.Time
			}
		case prospect.FieldLastRepliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_replied_at", values[i])
			} else if value.Valid {
				_m.LastRepliedAt = new(time.Time)
				*_m.LastRepliedAt = value.Time
			}
		case prospect.FieldLastExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_external_id", values[i])
			} else if value.Valid {
				_m.LastExternalID = new(string)
				*_m.LastExternalID = value.String
			}
		case prospect.FieldConvertedLeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field converted_lead_id", values[i])
			} else if value.Valid {
				_m.ConvertedLeadID = new(string)
				*_m.ConvertedLeadID = value.String
			}
		case prospect.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case prospect.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Prospect.
// This includes values selected through modifiers, order, etc.
func (_m *Prospect) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Prospect.
// Note that you need to call Prospect.Unwrap() before calling this method if this Prospect
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Prospect) Update() *ProspectUpdateOne {
	return NewProspectClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Prospect entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Prospect) Unwrap() *Prospect {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Prospect is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Prospect) String() string {
	var builder strings.Builder
	builder.WriteString("Prospect(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	if v := _m.GroupID; v != nil {
		builder.WriteString("group_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("channel_config_id=")
	builder.WriteString(_m.ChannelConfigID)
	builder.WriteString(", ")
	builder.WriteString("display_name=")
	builder.WriteString(_m.DisplayName)
	builder.WriteString(", ")
	if v := _m.Username; v != nil {
		builder.WriteString("username=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Phone; v != nil {
		builder.WriteString("phone=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TelegramUserID; v != nil {
		builder.WriteString("telegram_user_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.LastMessagedAt; v != nil {
		builder.WriteString("last_messaged_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastRepliedAt; v != nil {
		builder.WriteString("last_replied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastExternalID; v != nil {
		builder.WriteString("last_external_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConvertedLeadID; v != nil {
		builder.WriteString("converted_lead_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Prospects is a parsable slice of Prospect.
type Prospects []*Prospect
