// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/outflowhq/outflow/ent/campaignstep"
)

// CampaignStep is the model entity for the CampaignStep schema.
type CampaignStep struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// CampaignID holds the value of the "campaign_id" field.
	CampaignID string `json:"campaign_id,omitempty"`
	// StepOrder holds the value of the "step_order" field.
	StepOrder int `json:"step_order,omitempty"`
	// ChannelKind holds the value of the "channel_kind" field.
	ChannelKind campaignstep.ChannelKind `json:"channel_kind,omitempty"`
	// ChannelConfigID holds the value of the "channel_config_id" field.
	ChannelConfigID string `json:"channel_config_id,omitempty"`
	// TemplateID holds the value of the "template_id" field.
	TemplateID string `json:"template_id,omitempty"`
	// DelayDays holds the value of the "delay_days" field.
	DelayDays int `json:"delay_days,omitempty"`
	// DelayHours holds the value of the "delay_hours" field.
	DelayHours int `json:"delay_hours,omitempty"`
	// DelayMinutes holds the value of the "delay_minutes" field.
	DelayMinutes int `json:"delay_minutes,omitempty"`
	// Time-of-day window opening, "HH:MM" tenant-local
	SendTimeStart *string `json:"send_time_start,omitempty"`
	// SendTimeEnd holds the value of the "send_time_end" field.
	SendTimeEnd  *string `json:"send_time_end,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CampaignStep) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campaignstep.FieldStepOrder, campaignstep.FieldDelayDays, campaignstep.FieldDelayHours, campaignstep.FieldDelayMinutes:
			values[i] = new(sql.NullInt64)
		case campaignstep.FieldID, campaignstep.FieldTenantID, campaignstep.FieldCampaignID, campaignstep.FieldChannelKind, campaignstep.FieldChannelConfigID, campaignstep.FieldTemplateID, campaignstep.FieldSendTimeStart, campaignstep.FieldSendTimeEnd:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CampaignStep fields.
func (_m *CampaignStep) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campaignstep.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case campaignstep.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case campaignstep.FieldCampaignID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campaign_id", values[i])
			} else if value.Valid {
				_m.CampaignID = value.String
			}
		case campaignstep.FieldStepOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field step_order", values[i])
			} else if value.Valid {
				_m.StepOrder = int(value.Int64)
			}
		case campaignstep.FieldChannelKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_kind", values[i])
			} else if value.Valid {
				_m.ChannelKind = campaignstep.ChannelKind(value.String)
			}
		case campaignstep.FieldChannelConfigID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel_config_id", values[i])
			} else if value.Valid {
				_m.ChannelConfigID = value.String
			}
		case campaignstep.FieldTemplateID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template_id", values[i])
			} else if value.Valid {
				_m.TemplateID = value.String
			}
		case campaignstep.FieldDelayDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delay_days", values[i])
			} else if value.Valid {
				_m.DelayDays = int(value.Int64)
			}
		case campaignstep.FieldDelayHours:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delay_hours", values[i])
			} else if value.Valid {
				_m.DelayHours = int(value.Int64)
			}
		case campaignstep.FieldDelayMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field delay_minutes", values[i])
			} else if value.Valid {
				_m.DelayMinutes = int(value.Int64)
			}
		case campaignstep.FieldSendTimeStart:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field send_time_start", values[i])
			} else if value.Valid {
				_m.SendTimeStart = new(string)
				*_m.SendTimeStart = value.String
			}
		case campaignstep.FieldSendTimeEnd:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field send_time_end", values[i])
			} else if value.Valid {
				_m.SendTimeEnd = new(string)
				*_m.SendTimeEnd = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CampaignStep.
// This includes values selected through modifiers, order, etc.
func (_m *CampaignStep) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CampaignStep.
// Note that you need to call CampaignStep.Unwrap() before calling this method if this CampaignStep
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CampaignStep) Update() *CampaignStepUpdateOne {
	return NewCampaignStepClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CampaignStep entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CampaignStep) Unwrap() *CampaignStep {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CampaignStep is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CampaignStep) String() string {
	var builder strings.Builder
	builder.WriteString("CampaignStep(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("campaign_id=")
	builder.WriteString(_m.CampaignID)
	builder.WriteString(", ")
	builder.WriteString("step_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.StepOrder))
	builder.WriteString(", ")
	builder.WriteString("channel_kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChannelKind))
	builder.WriteString(", ")
	builder.WriteString("channel_config_id=")
	builder.WriteString(_m.ChannelConfigID)
	builder.WriteString(", ")
	builder.WriteString("template_id=")
	builder.WriteString(_m.TemplateID)
	builder.WriteString(", ")
	builder.WriteString("delay_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.DelayDays))
	builder.WriteString(", ")
	builder.WriteString("delay_hours=")
	builder.WriteString(fmt.Sprintf("%v", _m.DelayHours))
	builder.WriteString(", ")
	builder.WriteString("delay_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DelayMinutes))
	builder.WriteString(", ")
	if v := _m.SendTimeStart; v != nil {
		builder.WriteString("send_time_start=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SendTimeEnd; v != nil {
		builder.WriteString("send_time_end=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CampaignSteps is a parsable slice of CampaignStep.
type CampaignSteps []*CampaignStep
