// Package sessions manages long-lived channel sessions (WhatsApp Web,
// Telegram) keyed by tenant and channel config, including interactive
// linking, serialised sends, and inbound fetching for reply polling.
package sessions

import (
	"context"
	"time"

	"github.com/outflowhq/outflow/pkg/models"
)

// Status is the lifecycle state of one session.
type Status string

// Session statuses.
const (
	StatusChecking         Status = "checking"
	StatusDisconnected     Status = "disconnected"
	StatusAwaitingScan     Status = "awaiting_scan"
	StatusAwaitingCode     Status = "awaiting_code"
	StatusAwaitingPassword Status = "awaiting_password"
	StatusConnected        Status = "connected"
)

// LinkState is the result of begin_link or an auth step, shaped for the
// admin surface.
type LinkState struct {
	Status Status
	// QRImage is a base64-encoded PNG, present while Status is awaiting_scan.
	QRImage string
	// SessionKey identifies an in-flight Telegram auth, present while Status
	// is awaiting_code or awaiting_password.
	SessionKey string
	// Profile is the linked account's display identity once connected.
	Profile string
}

// InboundMessage is one message received from a peer, ordered by ExternalID.
type InboundMessage struct {
	ExternalID string
	Body       string
	ReceivedAt time.Time
}

// Group is a channel-native group visible to the session.
type Group struct {
	ExternalID  string `json:"externalId"`
	Name        string `json:"name"`
	MemberCount int    `json:"memberCount"`
}

// GroupMember is one participant of a group. Phone may be empty when the
// platform hides it; such members are not sendable.
type GroupMember struct {
	DisplayName    string `json:"displayName"`
	Username       string `json:"username,omitempty"`
	Phone          string `json:"phone,omitempty"`
	TelegramUserID int64  `json:"telegramUserId,omitempty"`
}

// channelSession is the behaviour every session kind implements. The
// registry owns instances; callers never touch them directly.
type channelSession interface {
	// EnsureReady verifies a live connection or reconstructs one from
	// persisted material. Fails with a not_connected error otherwise.
	EnsureReady(ctx context.Context) error
	Status() Status
	SendText(ctx context.Context, to models.Address, body string) (string, error)
	ListGroups(ctx context.Context) ([]Group, error)
	ListGroupMembers(ctx context.Context, groupID string) ([]GroupMember, error)
	FetchInbound(ctx context.Context, peer models.Address, sinceExternalID string) ([]InboundMessage, error)
	// Disconnect closes live resources but keeps persisted session material.
	Disconnect()
	// Wipe disconnects and destroys persisted material (remote logout where
	// the protocol supports it, best-effort).
	Wipe(ctx context.Context) error
	// Profile returns the linked account identity, empty if unknown.
	Profile() string
}
