package models

import (
	"encoding/json"
	"fmt"
)

// Job payloads. Jobs store an opaque JSON document; these are the documented
// shapes per kind.

// CampaignStepPayload drives one recipient's current step.
type CampaignStepPayload struct {
	RecipientID string `json:"recipient_id"`
	CampaignID  string `json:"campaign_id"`
}

// PollRepliesPayload drives one reply-poll cycle for a channel config.
type PollRepliesPayload struct {
	ChannelConfigID string `json:"channel_config_id"`
}

// CleanupPayload drives retention cleanup of terminal jobs.
type CleanupPayload struct {
	OlderThanHours int `json:"older_than_hours,omitempty"`
}

// EncodePayload converts a payload struct into the JSON document stored on
// the job row.
func EncodePayload(p any) (map[string]interface{}, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode job payload: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("encode job payload: %w", err)
	}
	return out, nil
}

// DecodePayload converts a stored job payload document into out.
func DecodePayload(stored map[string]interface{}, out any) error {
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("decode job payload: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode job payload: %w", err)
	}
	return nil
}
