package sessions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/vault"
)

// minSendGap is the enforced pause between consecutive sends on one session.
const minSendGap = 2 * time.Second

// Registry owns all live channel sessions, keyed by
// (tenant_id, channel_config_id). Sessions are process-local; nothing else
// mutates them.
type Registry struct {
	client      *ent.Client
	vault       *vault.Vault
	storageRoot string

	mu       sync.Mutex
	sessions map[string]*managedSession
}

type managedSession struct {
	impl  channelSession
	queue *sendQueue
}

// NewRegistry creates a session registry. storageRoot holds per-session
// filesystem state (WhatsApp Web device stores).
func NewRegistry(client *ent.Client, v *vault.Vault, storageRoot string) *Registry {
	return &Registry{
		client:      client,
		vault:       v,
		storageRoot: storageRoot,
		sessions:    make(map[string]*managedSession),
	}
}

func sessionKey(tenantID, configID string) string {
	return tenantID + "/" + configID
}

// StatusInfo is the admin-facing session status.
type StatusInfo struct {
	Status         Status `json:"status"`
	HasCredentials bool   `json:"hasCredentials"`
	HasSession     bool   `json:"hasSession"`
	Profile        string `json:"profile,omitempty"`
}

// EnsureReady verifies or reconstructs the session for a config. Idempotent;
// fails with a not_connected error when no usable session material exists.
func (r *Registry) EnsureReady(ctx context.Context, tenantID, configID string) error {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return err
	}
	return ms.impl.EnsureReady(ctx)
}

// Status reports the session state for the admin surface.
func (r *Registry) Status(ctx context.Context, tenantID, configID string) (StatusInfo, error) {
	cfg, err := r.loadConfig(ctx, tenantID, configID)
	if err != nil {
		return StatusInfo{}, err
	}

	info := StatusInfo{
		Status:         StatusDisconnected,
		HasCredentials: len(cfg.Credentials) > 0,
	}

	r.mu.Lock()
	ms, live := r.sessions[sessionKey(tenantID, configID)]
	r.mu.Unlock()
	if live {
		info.Status = ms.impl.Status()
		info.Profile = ms.impl.Profile()
		info.HasSession = info.Status == StatusConnected
	}

	// A persisted session blob counts as a session even before reconnect.
	if !info.HasSession {
		info.HasSession = r.hasPersistedSession(cfg)
	}

	return info, nil
}

// SendText sends body through the session's serialised queue, enforcing the
// per-session FIFO order and minimum inter-send gap.
func (r *Registry) SendText(ctx context.Context, tenantID, configID string, to models.Address, body string) (string, error) {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return "", err
	}
	if err := ms.impl.EnsureReady(ctx); err != nil {
		return "", err
	}
	return ms.queue.Do(ctx, func(ctx context.Context) (string, error) {
		return ms.impl.SendText(ctx, to, body)
	})
}

// BeginLink starts WhatsApp Web linking: either an immediate reconnect from
// persisted material, or a fresh QR pairing window.
func (r *Registry) BeginLink(ctx context.Context, tenantID, configID string) (LinkState, error) {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return LinkState{}, err
	}
	wa, ok := ms.impl.(*whatsAppSession)
	if !ok {
		return LinkState{}, channels.Errorf(channels.KindUnknownChannel, "begin_link requires a whatsapp_web channel")
	}
	return wa.BeginLink(ctx)
}

// LinkState returns the current linking state (QR refresh polling).
func (r *Registry) LinkState(ctx context.Context, tenantID, configID string) (LinkState, error) {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return LinkState{}, err
	}
	if wa, ok := ms.impl.(*whatsAppSession); ok {
		return wa.LinkState(), nil
	}
	return LinkState{Status: ms.impl.Status(), Profile: ms.impl.Profile()}, nil
}

// StartAuth begins Telegram interactive auth for the config's phone number.
func (r *Registry) StartAuth(ctx context.Context, tenantID, configID string) (LinkState, error) {
	tg, err := r.telegramSession(ctx, tenantID, configID)
	if err != nil {
		return LinkState{}, err
	}
	return tg.StartAuth(ctx)
}

// VerifyCode submits the login code for an in-flight Telegram auth.
func (r *Registry) VerifyCode(ctx context.Context, tenantID, configID, authKey, code string) (LinkState, error) {
	tg, err := r.telegramSession(ctx, tenantID, configID)
	if err != nil {
		return LinkState{}, err
	}
	return tg.VerifyCode(ctx, authKey, code)
}

// VerifyPassword submits the 2FA password for an in-flight Telegram auth.
func (r *Registry) VerifyPassword(ctx context.Context, tenantID, configID, authKey, password string) (LinkState, error) {
	tg, err := r.telegramSession(ctx, tenantID, configID)
	if err != nil {
		return LinkState{}, err
	}
	return tg.VerifyPassword(ctx, authKey, password)
}

// ListGroups lists channel-native groups visible to the session.
func (r *Registry) ListGroups(ctx context.Context, tenantID, configID string) ([]Group, error) {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return nil, err
	}
	if err := ms.impl.EnsureReady(ctx); err != nil {
		return nil, err
	}
	return ms.impl.ListGroups(ctx)
}

// ListGroupMembers lists the participants of one group, honouring the
// platform's visibility rules.
func (r *Registry) ListGroupMembers(ctx context.Context, tenantID, configID, groupID string) ([]GroupMember, error) {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return nil, err
	}
	if err := ms.impl.EnsureReady(ctx); err != nil {
		return nil, err
	}
	return ms.impl.ListGroupMembers(ctx, groupID)
}

// FetchInbound returns a peer's inbound messages with external id strictly
// greater than the watermark, ascending.
func (r *Registry) FetchInbound(ctx context.Context, tenantID, configID string, peer models.Address, sinceExternalID string) ([]InboundMessage, error) {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return nil, err
	}
	if err := ms.impl.EnsureReady(ctx); err != nil {
		return nil, err
	}
	return ms.impl.FetchInbound(ctx, peer, sinceExternalID)
}

// Disconnect closes a session's live resources but keeps persisted material.
func (r *Registry) Disconnect(tenantID, configID string) {
	r.mu.Lock()
	ms, ok := r.sessions[sessionKey(tenantID, configID)]
	if ok {
		delete(r.sessions, sessionKey(tenantID, configID))
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	ms.queue.Close()
	ms.impl.Disconnect()
}

// DeleteSession disconnects and destroys persisted session material,
// including a best-effort remote logout where the protocol supports it.
func (r *Registry) DeleteSession(ctx context.Context, tenantID, configID string) error {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.sessions, sessionKey(tenantID, configID))
	r.mu.Unlock()

	ms.queue.Close()
	return ms.impl.Wipe(ctx)
}

// BootReconnect enumerates active session-kind configs and attempts
// EnsureReady for each with persisted material, in the background. Failures
// are logged, never fatal.
func (r *Registry) BootReconnect(ctx context.Context) {
	configs, err := r.client.ChannelConfig.Query().
		Where(
			channelconfig.ActiveEQ(true),
			channelconfig.KindIn(
				channelconfig.Kind(models.ChannelWhatsAppWeb),
				channelconfig.Kind(models.ChannelTelegram),
			),
		).
		All(ctx)
	if err != nil {
		slog.Error("Boot reconnect: failed to enumerate session configs", "error", err)
		return
	}

	for _, cfg := range configs {
		if !r.hasPersistedSession(cfg) {
			continue
		}
		go func(cfg *ent.ChannelConfig) {
			log := slog.With("tenant_id", cfg.TenantID, "channel_config_id", cfg.ID, "kind", cfg.Kind)
			if err := r.EnsureReady(ctx, cfg.TenantID, cfg.ID); err != nil {
				log.Warn("Boot reconnect failed", "error", err)
				return
			}
			log.Info("Session reconnected on boot")
		}(cfg)
	}
}

// Shutdown disconnects every live session.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*managedSession)
	r.mu.Unlock()

	for _, ms := range sessions {
		ms.queue.Close()
		ms.impl.Disconnect()
	}
}

// getOrCreate returns the managed session for a config, constructing it from
// the stored credentials on first use.
func (r *Registry) getOrCreate(ctx context.Context, tenantID, configID string) (*managedSession, error) {
	key := sessionKey(tenantID, configID)

	r.mu.Lock()
	if ms, ok := r.sessions[key]; ok {
		r.mu.Unlock()
		return ms, nil
	}
	r.mu.Unlock()

	cfg, err := r.loadConfig(ctx, tenantID, configID)
	if err != nil {
		return nil, err
	}

	impl, err := r.buildSession(cfg)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another caller may have won the race; prefer theirs.
	if ms, ok := r.sessions[key]; ok {
		impl.Disconnect()
		return ms, nil
	}
	ms := &managedSession{
		impl:  impl,
		queue: newSendQueue(minSendGap),
	}
	r.sessions[key] = ms
	return ms, nil
}

func (r *Registry) buildSession(cfg *ent.ChannelConfig) (channelSession, error) {
	switch models.ChannelKind(cfg.Kind) {
	case models.ChannelWhatsAppWeb:
		return newWhatsAppSession(cfg.TenantID, cfg.ID, r.storageRoot), nil
	case models.ChannelTelegram:
		var creds models.TelegramCredentials
		if len(cfg.Credentials) > 0 {
			if _, err := r.vault.OpenCredentials(cfg.Credentials, &creds); err != nil {
				if errors.Is(err, vault.ErrCryptoCorrupted) {
					return nil, channels.NewError(channels.KindCryptoCorrupted, err)
				}
				return nil, channels.NewError(channels.KindAuthFailed, err)
			}
		}
		return newTelegramSession(cfg.TenantID, cfg.ID, creds, r.persistTelegramSession), nil
	default:
		return nil, channels.Errorf(channels.KindUnknownChannel, "channel kind %q has no session", cfg.Kind)
	}
}

func (r *Registry) telegramSession(ctx context.Context, tenantID, configID string) (*telegramSession, error) {
	ms, err := r.getOrCreate(ctx, tenantID, configID)
	if err != nil {
		return nil, err
	}
	tg, ok := ms.impl.(*telegramSession)
	if !ok {
		return nil, channels.Errorf(channels.KindUnknownChannel, "interactive auth requires a telegram channel")
	}
	return tg, nil
}

func (r *Registry) loadConfig(ctx context.Context, tenantID, configID string) (*ent.ChannelConfig, error) {
	cfg, err := r.client.ChannelConfig.Query().
		Where(
			channelconfig.IDEQ(configID),
			channelconfig.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, channels.Errorf(channels.KindUnknownChannel, "channel config %s not found", configID)
		}
		return nil, fmt.Errorf("load channel config: %w", err)
	}
	return cfg, nil
}

// hasPersistedSession reports whether the config has stored session material:
// a Telegram session string inside the credentials, or an on-disk WhatsApp
// device store.
func (r *Registry) hasPersistedSession(cfg *ent.ChannelConfig) bool {
	switch models.ChannelKind(cfg.Kind) {
	case models.ChannelTelegram:
		var creds models.TelegramCredentials
		if len(cfg.Credentials) == 0 {
			return false
		}
		if _, err := r.vault.OpenCredentials(cfg.Credentials, &creds); err != nil {
			return false
		}
		return creds.SessionString != ""
	case models.ChannelWhatsAppWeb:
		return whatsAppStoreExists(r.storageRoot, cfg.TenantID, cfg.ID)
	}
	return false
}

// persistTelegramSession writes an updated session string back into the
// config's encrypted credentials (migrate-on-read also happens here: the
// write is always encrypted).
func (r *Registry) persistTelegramSession(ctx context.Context, tenantID, configID, sessionString string) error {
	cfg, err := r.loadConfig(ctx, tenantID, configID)
	if err != nil {
		return err
	}

	var creds models.TelegramCredentials
	if len(cfg.Credentials) > 0 {
		if _, err := r.vault.OpenCredentials(cfg.Credentials, &creds); err != nil {
			return fmt.Errorf("open telegram credentials: %w", err)
		}
	}
	creds.SessionString = sessionString

	sealed, err := r.vault.SealCredentials(creds)
	if err != nil {
		return fmt.Errorf("seal telegram credentials: %w", err)
	}

	if err := r.client.ChannelConfig.UpdateOneID(cfg.ID).
		SetCredentials(sealed).
		Exec(ctx); err != nil {
		return fmt.Errorf("persist telegram session: %w", err)
	}
	return nil
}
