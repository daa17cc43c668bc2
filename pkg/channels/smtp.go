package channels

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"github.com/outflowhq/outflow/pkg/models"
	"github.com/wneessen/go-mail"
)

// SMTPAdapter sends email over SMTP. Clients are cached per channel config
// so repeated sends reuse the provider connection settings.
type SMTPAdapter struct {
	mu      sync.Mutex
	clients map[string]*mail.Client
}

// NewSMTPAdapter creates an SMTP adapter.
func NewSMTPAdapter() *SMTPAdapter {
	return &SMTPAdapter{clients: make(map[string]*mail.Client)}
}

// Send delivers one message and returns the generated Message-ID.
func (a *SMTPAdapter) Send(ctx context.Context, configID string, creds models.SMTPCredentials, settings models.ChannelSettings, to models.Address, msg models.RenderedMessage) (string, error) {
	if to.Email == "" {
		return "", Errorf(KindRecipientInvalid, "recipient has no email address")
	}

	client, err := a.clientFor(configID, creds)
	if err != nil {
		return "", err
	}

	fromName := settings.FromName
	if fromName == "" {
		fromName = creds.FromName
	}
	fromEmail := settings.FromEmail
	if fromEmail == "" {
		fromEmail = creds.FromEmail
	}

	m := mail.NewMsg()
	if err := m.FromFormat(fromName, fromEmail); err != nil {
		return "", Errorf(KindAuthFailed, "invalid from address %q: %v", fromEmail, err)
	}
	if err := m.To(to.Email); err != nil {
		return "", Errorf(KindRecipientInvalid, "invalid recipient address %q: %v", to.Email, err)
	}
	m.Subject(msg.Subject)
	if msg.HTML {
		m.SetBodyString(mail.TypeTextHTML, msg.Body)
	} else {
		m.SetBodyString(mail.TypeTextPlain, msg.Body)
	}
	m.SetMessageID()

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", classifySMTPError(err)
	}

	return m.GetMessageID(), nil
}

// clientFor returns the cached client for a config, building one on first use.
func (a *SMTPAdapter) clientFor(configID string, creds models.SMTPCredentials) (*mail.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c, ok := a.clients[configID]; ok {
		return c, nil
	}

	opts := []mail.Option{
		mail.WithPort(creds.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(creds.User),
		mail.WithPassword(creds.Pass),
	}
	if creds.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	c, err := mail.NewClient(creds.Host, opts...)
	if err != nil {
		return nil, Errorf(KindAuthFailed, "smtp client for %s: %v", creds.Host, err)
	}

	a.clients[configID] = c
	return c, nil
}

// Invalidate drops the cached client for a config after its credentials
// change.
func (a *SMTPAdapter) Invalidate(configID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.clients, configID)
}

// classifySMTPError maps SMTP failures onto the error taxonomy.
func classifySMTPError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return NewError(KindTransientNetwork, err)
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "535") || strings.Contains(msg, "authentication"):
		return NewError(KindAuthFailed, err)
	case strings.Contains(msg, "550") || strings.Contains(msg, "553") || strings.Contains(msg, "recipient"):
		return NewError(KindRecipientInvalid, err)
	case strings.Contains(msg, "452") || strings.Contains(msg, "rate") || strings.Contains(msg, "quota"):
		return NewError(KindQuotaExceeded, err)
	case strings.Contains(msg, "421") || strings.Contains(msg, "timeout") || strings.Contains(msg, "connection"):
		return NewError(KindTransientNetwork, err)
	}
	return NewError(KindTransientNetwork, fmt.Errorf("smtp send: %w", err))
}
