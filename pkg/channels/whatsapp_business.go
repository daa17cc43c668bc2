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

const graphAPIBase = "https://graph.facebook.com/v19.0"

// WhatsAppBusinessAdapter sends through the WhatsApp Business Cloud API.
// Unlike WHATSAPP_WEB this is stateless: a bearer token per request, no
// session to babysit. Delivery receipts and replies arrive via webhook,
// outside this adapter.
type WhatsAppBusinessAdapter struct {
	httpClient *http.Client
	baseURL    string
}

// NewWhatsAppBusinessAdapter creates a Cloud API adapter.
func NewWhatsAppBusinessAdapter() *WhatsAppBusinessAdapter {
	return &WhatsAppBusinessAdapter{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    graphAPIBase,
	}
}

type cloudAPISendRequest struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             cloudAPITextBody `json:"text"`
}

type cloudAPITextBody struct {
	Body string `json:"body"`
}

type cloudAPISendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Send posts one text message and returns the provider message id.
func (a *WhatsAppBusinessAdapter) Send(ctx context.Context, creds models.WhatsAppBusinessCredentials, to models.Address, msg models.RenderedMessage) (string, error) {
	if to.Phone == "" {
		return "", Errorf(KindRecipientInvalid, "recipient has no phone number")
	}

	body, err := json.Marshal(cloudAPISendRequest{
		MessagingProduct: "whatsapp",
		To:               to.Phone,
		Type:             "text",
		Text:             cloudAPITextBody{Body: msg.Body},
	})
	if err != nil {
		return "", Errorf(KindRenderError, "marshal cloud api payload: %v", err)
	}

	url := fmt.Sprintf("%s/%s/messages", a.baseURL, creds.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", NewError(KindTransientNetwork, err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", NewError(KindTransientNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var decoded cloudAPISendResponse
	_ = json.Unmarshal(respBody, &decoded)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if len(decoded.Messages) == 0 {
			return "", Errorf(KindTransientNetwork, "cloud api returned no message id")
		}
		return decoded.Messages[0].ID, nil
	}

	apiErr := fmt.Errorf("cloud api returned %d: %s", resp.StatusCode, respBody)
	// 131026: recipient cannot receive messages (not on WhatsApp, bad number).
	if decoded.Error != nil && decoded.Error.Code == 131026 {
		return "", NewError(KindRecipientInvalid, apiErr)
	}
	return "", classifyHTTPStatus(resp.StatusCode, apiErr)
}
