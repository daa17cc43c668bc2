package models

// Credential layouts stored (encrypted) on ChannelConfig, one per kind.
// The vault seals these into {"encrypted": <blob>}; legacy rows may still
// carry them as plain JSON.

// SMTPCredentials configures an EMAIL_SMTP channel.
type SMTPCredentials struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Secure    bool   `json:"secure"`
	User      string `json:"user"`
	Pass      string `json:"pass"`
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
}

// EmailAPICredentials configures an EMAIL_API channel.
type EmailAPICredentials struct {
	Provider  string `json:"provider"`
	APIKey    string `json:"api_key"`
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
}

// TwilioCredentials configures SMS and VOICE channels.
type TwilioCredentials struct {
	AccountSID string `json:"account_sid"`
	AuthToken  string `json:"auth_token"`
	FromNumber string `json:"from_number"`
}

// WhatsAppWebCredentials configures a WHATSAPP_WEB channel. The real session
// lives on the filesystem under the session path; the credential only names it.
type WhatsAppWebCredentials struct {
	SessionPath string `json:"session_path"`
}

// WhatsAppBusinessCredentials configures a WHATSAPP_BUSINESS cloud API channel.
type WhatsAppBusinessCredentials struct {
	AccessToken        string `json:"access_token"`
	PhoneNumberID      string `json:"phone_number_id"`
	WebhookVerifyToken string `json:"webhook_verify_token"`
}

// TelegramCredentials configures a TELEGRAM channel. SessionString is the
// opaque printable token persisted after interactive auth; when present,
// reconnects skip the code prompt.
type TelegramCredentials struct {
	APIID         int    `json:"api_id"`
	APIHash       string `json:"api_hash"`
	PhoneNumber   string `json:"phone_number"`
	SessionString string `json:"session_string,omitempty"`
}
