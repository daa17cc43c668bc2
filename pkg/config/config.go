// Package config loads engine configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config is the top-level engine configuration, populated from OUTFLOW_*
// environment variables (an optional .env file is loaded by main).
type Config struct {
	// VaultKey is the base64-encoded 32-byte AES key for credentials at rest.
	VaultKey string `envconfig:"VAULT_KEY" required:"true"`

	// StorageRoot is the directory holding per-session state
	// (whatsapp_sessions/<tenant>_<channel>).
	StorageRoot string `envconfig:"STORAGE_ROOT" default:"./storage"`

	// HTTPPort is the admin API listen port.
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	Queue  QueueConfig  `envconfig:"QUEUE"`
	Engine EngineConfig `envconfig:"ENGINE"`
}

// EngineConfig contains campaign engine tunables.
type EngineConfig struct {
	// PausedRetrySeconds is the soft-pause re-enqueue delay when a leased
	// step job finds its campaign not ACTIVE.
	PausedRetrySeconds int `envconfig:"PAUSED_RETRY_SECONDS" default:"30"`

	// EnrollChunkSize caps recipients created per transaction.
	EnrollChunkSize int `envconfig:"ENROLL_CHUNK_SIZE" default:"1000"`

	// ReplyPollPeerCap caps peers fetched per poll cycle.
	ReplyPollPeerCap int `envconfig:"REPLY_POLL_PEER_CAP" default:"100"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("OUTFLOW", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Queue.WorkerCount <= 0 {
		cfg.Queue = *DefaultQueueConfig()
	}
	return &cfg, nil
}
