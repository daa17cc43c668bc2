package models

import (
	"encoding/json"
	"fmt"
)

// ReplyPollingSettings controls periodic inbound ingestion for session-based
// channels.
type ReplyPollingSettings struct {
	Enabled         bool `json:"enabled"`
	IntervalMinutes int  `json:"interval_minutes"`
}

// AutoConvertSettings controls prospect → lead auto-conversion on first reply.
type AutoConvertSettings struct {
	Enabled bool `json:"enabled"`
}

// ChannelSettings is the structured options document stored on ChannelConfig.
type ChannelSettings struct {
	DailyLimit   int                  `json:"daily_limit,omitempty"`
	FromName     string               `json:"from_name,omitempty"`
	FromEmail    string               `json:"from_email,omitempty"`
	FromPhone    string               `json:"from_phone,omitempty"`
	Timezone     string               `json:"timezone,omitempty"`
	ReplyPolling ReplyPollingSettings `json:"reply_polling"`
	AutoConvert  AutoConvertSettings  `json:"auto_convert"`
}

// DefaultReplyPollIntervalMinutes applies when polling is enabled without an
// explicit interval.
const DefaultReplyPollIntervalMinutes = 5

// ParseChannelSettings decodes the stored settings document, applying
// defaults. A nil document yields zero-value settings.
func ParseChannelSettings(stored map[string]interface{}) (ChannelSettings, error) {
	var s ChannelSettings
	if stored == nil {
		return s, nil
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return s, fmt.Errorf("marshal channel settings: %w", err)
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("decode channel settings: %w", err)
	}
	if s.ReplyPolling.Enabled && s.ReplyPolling.IntervalMinutes <= 0 {
		s.ReplyPolling.IntervalMinutes = DefaultReplyPollIntervalMinutes
	}
	return s, nil
}
