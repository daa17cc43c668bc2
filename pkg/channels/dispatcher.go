package channels

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/vault"
)

// SessionSender is the slice of the session registry the dispatcher needs:
// serialised text sends for session-backed channels. Implemented by
// sessions.Registry.
type SessionSender interface {
	SendText(ctx context.Context, tenantID, channelConfigID string, to models.Address, body string) (string, error)
}

// Dispatcher routes one rendered message to the adapter for its channel
// kind. It holds no campaign state: attempts and recipient transitions are
// the engine's duty.
type Dispatcher struct {
	client   *ent.Client
	vault    *vault.Vault
	sessions SessionSender

	smtp     *SMTPAdapter
	emailAPI *EmailAPIAdapter
	twilio   *TwilioAdapter
	waba     *WhatsAppBusinessAdapter

	// Per-config daily send counters, process-local. Provider-side quota
	// errors are still classified independently of this.
	mu       sync.Mutex
	sentDay  string
	sentByID map[string]int
}

// NewDispatcher creates a dispatcher over the given store, vault, and
// session registry.
func NewDispatcher(client *ent.Client, v *vault.Vault, sessions SessionSender) *Dispatcher {
	return &Dispatcher{
		client:   client,
		vault:    v,
		sessions: sessions,
		smtp:     NewSMTPAdapter(),
		emailAPI: NewEmailAPIAdapter(),
		twilio:   NewTwilioAdapter(),
		waba:     NewWhatsAppBusinessAdapter(),
		sentByID: make(map[string]int),
	}
}

// Dispatch sends msg to the address over the channel config's provider and
// classifies the result. All failures, including config load problems, come
// back as failure outcomes so the engine has a single branch point.
func (d *Dispatcher) Dispatch(ctx context.Context, tenantID, channelConfigID string, to models.Address, msg models.RenderedMessage) Outcome {
	cfg, err := d.client.ChannelConfig.Query().
		Where(
			channelconfig.IDEQ(channelConfigID),
			channelconfig.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Failure(Errorf(KindUnknownChannel, "channel config %s not found", channelConfigID))
		}
		return Failure(NewError(KindTransientNetwork, err))
	}
	if !cfg.Active {
		return Failure(Errorf(KindUnknownChannel, "channel config %s is inactive", channelConfigID))
	}

	settings, err := models.ParseChannelSettings(cfg.Settings)
	if err != nil {
		return Failure(NewError(KindUnknownChannel, err))
	}

	if over := d.overDailyLimit(cfg.ID, settings.DailyLimit); over {
		return Failure(Errorf(KindQuotaExceeded, "daily limit of %d reached for channel %s", settings.DailyLimit, cfg.ID))
	}

	externalID, sendErr := d.send(ctx, cfg, settings, to, msg)
	if sendErr != nil {
		out := Failure(sendErr)
		slog.Warn("Dispatch failed",
			"channel_config_id", cfg.ID, "kind", cfg.Kind, "error_kind", out.Kind, "error", sendErr)
		return out
	}

	d.countSend(cfg.ID)
	return Sent(externalID)
}

// send decrypts credentials and routes to the adapter for the config's kind.
func (d *Dispatcher) send(ctx context.Context, cfg *ent.ChannelConfig, settings models.ChannelSettings, to models.Address, msg models.RenderedMessage) (string, error) {
	switch models.ChannelKind(cfg.Kind) {
	case models.ChannelWhatsAppWeb, models.ChannelTelegram:
		return d.sessions.SendText(ctx, cfg.TenantID, cfg.ID, to, msg.Body)

	case models.ChannelEmailSMTP:
		var creds models.SMTPCredentials
		if err := d.openCredentials(cfg, &creds); err != nil {
			return "", err
		}
		return d.smtp.Send(ctx, cfg.ID, creds, settings, to, msg)

	case models.ChannelEmailAPI:
		var creds models.EmailAPICredentials
		if err := d.openCredentials(cfg, &creds); err != nil {
			return "", err
		}
		return d.emailAPI.Send(ctx, creds, settings, to, msg)

	case models.ChannelSMS:
		var creds models.TwilioCredentials
		if err := d.openCredentials(cfg, &creds); err != nil {
			return "", err
		}
		return d.twilio.SendSMS(ctx, creds, to, msg)

	case models.ChannelVoice:
		var creds models.TwilioCredentials
		if err := d.openCredentials(cfg, &creds); err != nil {
			return "", err
		}
		return d.twilio.PlaceCall(ctx, creds, to, msg)

	case models.ChannelWhatsAppBusiness:
		var creds models.WhatsAppBusinessCredentials
		if err := d.openCredentials(cfg, &creds); err != nil {
			return "", err
		}
		return d.waba.Send(ctx, creds, to, msg)

	default:
		return "", Errorf(KindUnknownChannel, "unknown channel kind %q", cfg.Kind)
	}
}

// openCredentials decrypts the config's credential document into out.
func (d *Dispatcher) openCredentials(cfg *ent.ChannelConfig, out any) error {
	if len(cfg.Credentials) == 0 {
		return Errorf(KindAuthFailed, "channel config %s has no credentials", cfg.ID)
	}
	if _, err := d.vault.OpenCredentials(cfg.Credentials, out); err != nil {
		if errors.Is(err, vault.ErrCryptoCorrupted) {
			return NewError(KindCryptoCorrupted, err)
		}
		return NewError(KindAuthFailed, fmt.Errorf("failed to open credentials: %w", err))
	}
	return nil
}

// overDailyLimit checks the process-local daily counter. A limit of 0 means
// unlimited.
func (d *Dispatcher) overDailyLimit(configID string, limit int) bool {
	if limit <= 0 {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rollDayLocked()
	return d.sentByID[configID] >= limit
}

// countSend increments the daily counter for a config.
func (d *Dispatcher) countSend(configID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rollDayLocked()
	d.sentByID[configID]++
}

// rollDayLocked resets counters at the UTC day boundary. Caller holds d.mu.
func (d *Dispatcher) rollDayLocked() {
	day := time.Now().UTC().Format("2006-01-02")
	if day != d.sentDay {
		d.sentDay = day
		d.sentByID = make(map[string]int)
	}
}
