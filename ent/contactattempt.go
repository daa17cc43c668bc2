// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/contactattempt"
)

// ContactAttempt is the model entity for the ContactAttempt schema.
type ContactAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID *string `json:"campaign_id,omitempty"`
	// CampaignStepID holds the value of the "campaign_step_id" field.
	CampaignStepID *string `json:"campaign_step_id,omitempty"`
	// RecipientID holds the value of the "recipient_id" field.
	RecipientID *string `json:"recipient_id,omitempty"`
	// LeadID holds the value of the "lead_id" field.
	LeadID *string `json:"lead_id,omitempty"`
	// ContactID holds the value of the "contact_id" field.
	ContactID *string `json:"contact_id,omitempty"`
	// ProspectID holds the value of the "prospect_id" field.
	ProspectID *string `json:"prospect_id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID *string `json:"conversation_id,omitempty"`
	// ChannelKind holds the value of the "channel_kind" field.
	ChannelKind contactattempt.ChannelKind `json:"channel_kind,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction contactattempt.Direction `json:"direction,omitempty"`
	// Status holds the value of the "status" field.
	Status contactattempt.Status `json:"status,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject *string `json:"subject,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Provider message id
	ExternalID *string `json:"external_id,omitempty"`
	// SentAt holds the value of the "sent_at" field.
	SentAt *time.Time `json:"sent_at,omitempty"`
	// DeliveredAt holds the value of the "delivered_at" field.
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	// OpenedAt holds the value of the "opened_at" field.
	OpenedAt *time.Time `json:"opened_at,omitempty"`
	// ClickedAt holds the value of the "clicked_at" field.
	ClickedAt *time.Time `json:"clicked_at,omitempty"`
	// RepliedAt holds the value of the "replied_at" field.
	RepliedAt *time.Time `json:"replied_at,omitempty"`
	// Provider payload, error kind and reason
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContactAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contactattempt.FieldMetadata:
			values[i] = new([]byte)
		case contactattempt.FieldID, contactattempt.FieldTenantID, contactattempt.FieldCampaignID, contactattempt.FieldCampaignStepID, contactattempt.FieldRecipientID, contactattempt.FieldLeadID, contactattempt.FieldContactID, contactattempt.FieldProspectID, contactattempt.FieldConversationID, contactattempt.FieldChannelKind, contactattempt.FieldDirection, contactattempt.FieldStatus, contactattempt.FieldSubject, contactattempt.FieldBody, contactattempt.FieldExternalID:
			values[i] = new(sql.NullString)
		case contactattempt.FieldSentAt, contactattempt.FieldDeliveredAt, contactattempt.FieldOpenedAt, contactattempt.FieldClickedAt, contactattempt.FieldRepliedAt, contactattempt.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContactAttempt fields.
func (_m *ContactAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contactattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contactattempt.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case contactattempt.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = new(string)
				*_m.CampaignID = value.String
			}
		case contactattempt.FieldCampaignStepID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_step_id", values[i])
			} else if value.Valid {
				_m.CampaignStepID = new(string)
				*_m.CampaignStepID = value.String
			}
		case contactattempt.FieldRecipientID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field recipient_id", values[i])
			} else if value.Valid {
				_m.RecipientID = new(string)
				*_m.RecipientID = value.String
			}
		case contactattempt.FieldLeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = new(string)
				*_m.LeadID = value.String
			}
		case contactattempt.FieldContactID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = new(string)
				*_m.ContactID = value.String
			}
		case contactattempt.FieldProspectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prospect_id", values[i])
			} else if value.Valid {
				_m.ProspectID = new(string)
				*_m.ProspectID = value.String
			}
		case contactattempt.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = new(string)
				*_m.ConversationID = value.String
			}
		case contactattempt.FieldChannelKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_kind", values[i])
			} else if value.Valid {
				_m.ChannelKind = contactattempt.ChannelKind(value.String)
			}
		case contactattempt.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = contactattempt.Direction(value.String)
			}
		case contactattempt.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = contactattempt.Status(value.String)
			}
		case contactattempt.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = new(string)
				*_m.Subject = value.String
			}
		case contactattempt.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case contactattempt.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = new(string)
				*_m.ExternalID = value.String
			}
		case contactattempt.FieldSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field sent_at", values[i])
			} else if value.Valid {
				_m.SentAt = new(time.Time)
				*_m.SentAt = value.Time
			}
		case contactattempt.FieldDeliveredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field delivered_at", values[i])
			} else if value.Valid {
				_m.DeliveredAt = new(time.Time)
				*_m.DeliveredAt = value.Time
			}
		case contactattempt.FieldOpenedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened_at", values[i])
			} else if value.Valid {
				_m.OpenedAt = new(time.Time)
				*_m.OpenedAt = value.Time
			}
		case contactattempt.FieldClickedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field clicked_at", values[i])
			} else if value.Valid {
				_m.ClickedAt = new(time.Time)
				*_m.ClickedAt = value.Time
			}
		case contactattempt.FieldRepliedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field replied_at", values[i])
			} else if value.Valid {
				_m.RepliedAt = new(time.Time)
				*_m.RepliedAt = value.Time
			}
		case contactattempt.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case contactattempt.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContactAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *ContactAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContactAttempt.
// Note that you need to call ContactAttempt.Unwrap() before calling this method if this ContactAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContactAttempt) Update() *ContactAttemptUpdateOne {
	return NewContactAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContactAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContactAttempt) Unwrap() *ContactAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContactAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContactAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("ContactAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	if v := _m.CampaignID; v != nil {
		builder.WriteString("campaign_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.CampaignStepID; v != nil {
		builder.WriteString("campaign_step_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RecipientID; v != nil {
		builder.WriteString("recipient_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeadID; v != nil {
		builder.WriteString("lead_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ContactID; v != nil {
		builder.WriteString("contact_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ProspectID; v != nil {
		builder.WriteString("prospect_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ConversationID; v != nil {
		builder.WriteString("conversation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("channel_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChannelKind))
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Direction))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.Subject; v != nil {
		builder.WriteString("subject=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	if v := _m.ExternalID; v != nil {
		builder.WriteString("external_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SentAt; v != nil {
		builder.WriteString("sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DeliveredAt; v != nil {
		builder.WriteString("delivered_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.OpenedAt; v != nil {
		builder.WriteString("opened_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ClickedAt; v != nil {
		builder.WriteString("clicked_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.RepliedAt; v != nil {
		builder.WriteString("replied_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContactAttempts is a parsable slice of ContactAttempt.
type ContactAttempts []*ContactAttempt
