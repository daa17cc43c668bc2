package channels

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/outflowhq/outflow/pkg/models"
	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioAdapter sends SMS and places voice calls through the Twilio REST API.
// One adapter serves all configs; credentials travel per call.
type TwilioAdapter struct{}

// NewTwilioAdapter creates a Twilio adapter.
func NewTwilioAdapter() *TwilioAdapter {
	return &TwilioAdapter{}
}

// SendSMS sends one text message and returns the provider message SID.
func (a *TwilioAdapter) SendSMS(ctx context.Context, creds models.TwilioCredentials, to models.Address, msg models.RenderedMessage) (string, error) {
	if to.Phone == "" {
		return "", Errorf(KindRecipientInvalid, "recipient has no phone number")
	}

	client := a.restClient(creds)
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to.Phone)
	params.SetFrom(creds.FromNumber)
	params.SetBody(msg.Body)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		return "", classifyTwilioError(err)
	}
	if resp.Sid == nil {
		return "", Errorf(KindTransientNetwork, "twilio returned no message sid")
	}
	return *resp.Sid, nil
}

// PlaceCall dials the recipient. A non-empty body is spoken via TTS;
// otherwise the call just rings through.
func (a *TwilioAdapter) PlaceCall(ctx context.Context, creds models.TwilioCredentials, to models.Address, msg models.RenderedMessage) (string, error) {
	if to.Phone == "" {
		return "", Errorf(KindRecipientInvalid, "recipient has no phone number")
	}

	client := a.restClient(creds)
	params := &twilioapi.CreateCallParams{}
	params.SetTo(to.Phone)
	params.SetFrom(creds.FromNumber)

	twiml := "<Response><Pause length=\"1\"/></Response>"
	if msg.Body != "" {
		twiml = fmt.Sprintf("<Response><Say>%s</Say></Response>", html.EscapeString(msg.Body))
	}
	params.SetTwiml(twiml)

	resp, err := client.Api.CreateCall(params)
	if err != nil {
		return "", classifyTwilioError(err)
	}
	if resp.Sid == nil {
		return "", Errorf(KindTransientNetwork, "twilio returned no call sid")
	}
	return *resp.Sid, nil
}

func (a *TwilioAdapter) restClient(creds models.TwilioCredentials) *twilio.RestClient {
	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: creds.AccountSID,
		Password: creds.AuthToken,
	})
}

// classifyTwilioError maps Twilio REST errors onto the error taxonomy.
func classifyTwilioError(err error) error {
	var restErr *twilioclient.TwilioRestError
	if !errors.As(err, &restErr) {
		return NewError(KindTransientNetwork, err)
	}

	switch {
	case restErr.Status == http.StatusUnauthorized || restErr.Status == http.StatusForbidden:
		return NewError(KindAuthFailed, err)
	case restErr.Status == http.StatusTooManyRequests:
		return NewError(KindQuotaExceeded, err)
	// 21211: invalid 'To' number. 21614: not a mobile number.
	case restErr.Code == 21211 || restErr.Code == 21614:
		return NewError(KindRecipientInvalid, err)
	case restErr.Status >= 400 && restErr.Status < 500:
		return NewError(KindRecipientInvalid, err)
	default:
		return NewError(KindTransientNetwork, err)
	}
}
