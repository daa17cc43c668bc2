// Package models holds shared domain types exchanged between the engine's
// components: channel kinds, channel settings, credential layouts, job
// payloads, and admin API request/response shapes.
package models

// ChannelKind identifies a delivery channel implementation.
type ChannelKind string

// Channel kinds.
const (
	ChannelEmailSMTP        ChannelKind = "email_smtp"
	ChannelEmailAPI         ChannelKind = "email_api"
	ChannelSMS              ChannelKind = "sms"
	ChannelWhatsAppWeb      ChannelKind = "whatsapp_web"
	ChannelWhatsAppBusiness ChannelKind = "whatsapp_business"
	ChannelTelegram         ChannelKind = "telegram"
	ChannelVoice            ChannelKind = "voice"
)

// IsSessionKind reports whether the kind requires a long-lived session
// managed by the session registry.
func (k ChannelKind) IsSessionKind() bool {
	return k == ChannelWhatsAppWeb || k == ChannelTelegram
}

// Valid reports whether k is a known channel kind.
func (k ChannelKind) Valid() bool {
	switch k {
	case ChannelEmailSMTP, ChannelEmailAPI, ChannelSMS,
		ChannelWhatsAppWeb, ChannelWhatsAppBusiness, ChannelTelegram, ChannelVoice:
		return true
	}
	return false
}
