package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/outflowhq/outflow/pkg/models"
)

const sendgridSendURL = "https://api.sendgrid.com/v3/mail/send"

// EmailAPIAdapter sends email through a transactional email HTTP API.
// Currently the SendGrid v3 payload shape; other providers hide behind the
// same provider field.
type EmailAPIAdapter struct {
	httpClient *http.Client
}

// NewEmailAPIAdapter creates an email API adapter.
func NewEmailAPIAdapter() *EmailAPIAdapter {
	return &EmailAPIAdapter{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type sendgridPayload struct {
	Personalizations []struct {
		To []sendgridAddress `json:"to"`
	} `json:"personalizations"`
	From    sendgridAddress   `json:"from"`
	Subject string            `json:"subject"`
	Content []sendgridContent `json:"content"`
}

type sendgridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendgridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send performs one HTTPS POST per message and returns the provider message
// id.
func (a *EmailAPIAdapter) Send(ctx context.Context, creds models.EmailAPICredentials, settings models.ChannelSettings, to models.Address, msg models.RenderedMessage) (string, error) {
	if to.Email == "" {
		return "", Errorf(KindRecipientInvalid, "recipient has no email address")
	}

	fromName := settings.FromName
	if fromName == "" {
		fromName = creds.FromName
	}
	fromEmail := settings.FromEmail
	if fromEmail == "" {
		fromEmail = creds.FromEmail
	}

	contentType := "text/plain"
	if msg.HTML {
		contentType = "text/html"
	}

	payload := sendgridPayload{
		From:    sendgridAddress{Email: fromEmail, Name: fromName},
		Subject: msg.Subject,
		Content: []sendgridContent{{Type: contentType, Value: msg.Body}},
	}
	payload.Personalizations = append(payload.Personalizations, struct {
		To []sendgridAddress `json:"to"`
	}{To: []sendgridAddress{{Email: to.Email, Name: to.DisplayName}}})

	body, err := json.Marshal(payload)
	if err != nil {
		return "", Errorf(KindRenderError, "marshal email payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendgridSendURL, bytes.NewReader(body))
	if err != nil {
		return "", NewError(KindTransientNetwork, err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", NewError(KindTransientNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.Header.Get("X-Message-Id"), nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return "", classifyHTTPStatus(resp.StatusCode, fmt.Errorf("email api returned %d: %s", resp.StatusCode, respBody))
}

// classifyHTTPStatus maps provider HTTP status codes onto the error taxonomy.
func classifyHTTPStatus(status int, err error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return NewError(KindAuthFailed, err)
	case status == http.StatusTooManyRequests:
		return NewError(KindQuotaExceeded, err)
	case status >= 400 && status < 500:
		return NewError(KindRecipientInvalid, err)
	default:
		return NewError(KindTransientNetwork, err)
	}
}
