package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/outflowhq/outflow/ent"
	"github.com/outflowhq/outflow/ent/channelconfig"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/outflowhq/outflow/pkg/queue"
	"github.com/outflowhq/outflow/pkg/replies"
	"github.com/outflowhq/outflow/pkg/vault"
)

// ChannelConfigService owns channel configuration writes. Credentials are
// sealed on every write; legacy plaintext rows are re-encrypted the first
// time they pass through here (migrate-on-read). Config changes reconcile
// reply polling so eligible session channels always have a poll job.
type ChannelConfigService struct {
	client *ent.Client
	vault  *vault.Vault
	queue  *queue.Service
}

// NewChannelConfigService creates the channel configuration service.
func NewChannelConfigService(client *ent.Client, v *vault.Vault, q *queue.Service) *ChannelConfigService {
	return &ChannelConfigService{client: client, vault: v, queue: q}
}

// ChannelConfigInput is the admin payload for creating or updating a channel
// configuration. Nil Credentials/Settings on update means "keep current".
type ChannelConfigInput struct {
	Kind        models.ChannelKind     `json:"kind"`
	Name        string                 `json:"name"`
	Active      *bool                  `json:"active,omitempty"`
	IsDefault   *bool                  `json:"is_default,omitempty"`
	Credentials map[string]interface{} `json:"credentials,omitempty"`
	Settings    map[string]interface{} `json:"settings,omitempty"`
}

// Create validates and stores a new channel configuration with sealed
// credentials.
func (s *ChannelConfigService) Create(ctx context.Context, tenantID string, in ChannelConfigInput) (*ent.ChannelConfig, error) {
	if !in.Kind.Valid() {
		return nil, NewValidationError("unknown channel kind %q", in.Kind)
	}
	if in.Name == "" {
		return nil, NewValidationError("channel name is required")
	}
	if err := validateCredentials(in.Kind, in.Credentials); err != nil {
		return nil, err
	}
	if _, err := models.ParseChannelSettings(in.Settings); err != nil {
		return nil, NewValidationError("invalid settings: %v", err)
	}

	create := s.client.ChannelConfig.Create().
		SetID(uuid.NewString()).
		SetTenantID(tenantID).
		SetKind(channelconfig.Kind(in.Kind)).
		SetName(in.Name)
	if in.Active != nil {
		create = create.SetActive(*in.Active)
	}
	if in.Settings != nil {
		create = create.SetSettings(in.Settings)
	}
	if len(in.Credentials) > 0 {
		sealed, err := s.vault.SealCredentials(in.Credentials)
		if err != nil {
			return nil, err
		}
		create = create.SetCredentials(sealed)
	}

	cfg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create channel config: %w", err)
	}

	if in.IsDefault != nil && *in.IsDefault {
		if err := s.makeDefault(ctx, cfg); err != nil {
			return nil, err
		}
	}

	s.reconcilePolling(ctx, tenantID, cfg.ID)
	slog.Info("Channel config created", "tenant_id", tenantID, "channel_config_id", cfg.ID, "kind", cfg.Kind)
	return cfg, nil
}

// Update applies a partial update. Supplying credentials replaces them (and
// clears any surfaced channel error, since the admin is presumably fixing it).
func (s *ChannelConfigService) Update(ctx context.Context, tenantID, configID string, in ChannelConfigInput) (*ent.ChannelConfig, error) {
	cfg, err := s.load(ctx, tenantID, configID)
	if err != nil {
		return nil, err
	}

	update := cfg.Update()
	if in.Name != "" {
		update = update.SetName(in.Name)
	}
	if in.Active != nil {
		update = update.SetActive(*in.Active)
	}
	if in.Settings != nil {
		if _, err := models.ParseChannelSettings(in.Settings); err != nil {
			return nil, NewValidationError("invalid settings: %v", err)
		}
		update = update.SetSettings(in.Settings)
	}
	if in.Credentials != nil {
		if err := validateCredentials(models.ChannelKind(cfg.Kind), in.Credentials); err != nil {
			return nil, err
		}
		sealed, err := s.vault.SealCredentials(in.Credentials)
		if err != nil {
			return nil, err
		}
		update = update.SetCredentials(sealed).ClearLastError()
	}

	cfg, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update channel config: %w", err)
	}

	if in.IsDefault != nil && *in.IsDefault {
		if err := s.makeDefault(ctx, cfg); err != nil {
			return nil, err
		}
	}

	s.reconcilePolling(ctx, tenantID, cfg.ID)
	return cfg, nil
}

// Get returns one channel configuration, tenant-scoped.
func (s *ChannelConfigService) Get(ctx context.Context, tenantID, configID string) (*ent.ChannelConfig, error) {
	return s.load(ctx, tenantID, configID)
}

// List returns the tenant's channel configurations.
func (s *ChannelConfigService) List(ctx context.Context, tenantID string) ([]*ent.ChannelConfig, error) {
	configs, err := s.client.ChannelConfig.Query().
		Where(channelconfig.TenantIDEQ(tenantID)).
		Order(ent.Asc(channelconfig.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list channel configs: %w", err)
	}
	return configs, nil
}

// MigrateLegacyCredentials re-encrypts any config still holding plaintext
// credentials. Run at boot; safe to repeat.
func (s *ChannelConfigService) MigrateLegacyCredentials(ctx context.Context) error {
	configs, err := s.client.ChannelConfig.Query().All(ctx)
	if err != nil {
		return fmt.Errorf("enumerate channel configs: %w", err)
	}
	migrated := 0
	for _, cfg := range configs {
		if len(cfg.Credentials) == 0 {
			continue
		}
		var creds map[string]interface{}
		wasEncrypted, err := s.vault.OpenCredentials(cfg.Credentials, &creds)
		if err != nil {
			slog.Warn("Skipping unreadable credentials during migration",
				"channel_config_id", cfg.ID, "error", err)
			continue
		}
		if wasEncrypted {
			continue
		}
		sealed, err := s.vault.SealCredentials(creds)
		if err != nil {
			return err
		}
		if err := s.client.ChannelConfig.UpdateOneID(cfg.ID).
			SetCredentials(sealed).
			Exec(ctx); err != nil {
			return fmt.Errorf("migrate credentials for %s: %w", cfg.ID, err)
		}
		migrated++
	}
	if migrated > 0 {
		slog.Info("Legacy credentials re-encrypted", "count", migrated)
	}
	return nil
}

// makeDefault flags cfg as the default for its kind and clears the flag on
// its siblings.
func (s *ChannelConfigService) makeDefault(ctx context.Context, cfg *ent.ChannelConfig) error {
	if _, err := s.client.ChannelConfig.Update().
		Where(
			channelconfig.TenantIDEQ(cfg.TenantID),
			channelconfig.KindEQ(cfg.Kind),
			channelconfig.IDNEQ(cfg.ID),
		).
		SetIsDefault(false).
		Save(ctx); err != nil {
		return fmt.Errorf("clear default siblings: %w", err)
	}
	if err := s.client.ChannelConfig.UpdateOneID(cfg.ID).
		SetIsDefault(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("set default config: %w", err)
	}
	return nil
}

// reconcilePolling keeps the reply-poll job population in sync after a config
// change. Failures are logged; the boot-time reconcile will catch up.
func (s *ChannelConfigService) reconcilePolling(ctx context.Context, tenantID, configID string) {
	if err := replies.Reconcile(ctx, s.client, s.queue); err != nil {
		slog.Error("Reply-poll reconciliation failed",
			"tenant_id", tenantID, "channel_config_id", configID, "error", err)
	}
}

func (s *ChannelConfigService) load(ctx context.Context, tenantID, configID string) (*ent.ChannelConfig, error) {
	cfg, err := s.client.ChannelConfig.Query().
		Where(
			channelconfig.IDEQ(configID),
			channelconfig.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load channel config: %w", err)
	}
	return cfg, nil
}

// validateCredentials checks the kind-specific required fields. Session kinds
// acquire their material interactively, so credentials may be partial there.
func validateCredentials(kind models.ChannelKind, creds map[string]interface{}) error {
	if len(creds) == 0 {
		return nil
	}
	switch kind {
	case models.ChannelEmailSMTP:
		var c models.SMTPCredentials
		if err := models.DecodePayload(creds, &c); err != nil {
			return NewValidationError("invalid smtp credentials: %v", err)
		}
		if c.Host == "" || c.User == "" {
			return NewValidationError("smtp credentials require host and user")
		}
	case models.ChannelEmailAPI:
		var c models.EmailAPICredentials
		if err := models.DecodePayload(creds, &c); err != nil {
			return NewValidationError("invalid email api credentials: %v", err)
		}
		if c.APIKey == "" {
			return NewValidationError("email api credentials require api_key")
		}
	case models.ChannelSMS, models.ChannelVoice:
		var c models.TwilioCredentials
		if err := models.DecodePayload(creds, &c); err != nil {
			return NewValidationError("invalid twilio credentials: %v", err)
		}
		if c.AccountSID == "" || c.AuthToken == "" {
			return NewValidationError("twilio credentials require account_sid and auth_token")
		}
	case models.ChannelWhatsAppBusiness:
		var c models.WhatsAppBusinessCredentials
		if err := models.DecodePayload(creds, &c); err != nil {
			return NewValidationError("invalid whatsapp business credentials: %v", err)
		}
		if c.AccessToken == "" || c.PhoneNumberID == "" {
			return NewValidationError("whatsapp business credentials require access_token and phone_number_id")
		}
	case models.ChannelTelegram:
		var c models.TelegramCredentials
		if err := models.DecodePayload(creds, &c); err != nil {
			return NewValidationError("invalid telegram credentials: %v", err)
		}
		if c.APIID == 0 || c.APIHash == "" {
			return NewValidationError("telegram credentials require api_id and api_hash")
		}
	}
	return nil
}
