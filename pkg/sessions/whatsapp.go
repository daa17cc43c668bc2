package sessions

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/models"
	"github.com/skip2/go-qrcode"

	_ "modernc.org/sqlite" // sqlite driver for the whatsmeow device store

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"google.golang.org/protobuf/proto"
)

// scanWindow is how long a pairing QR stays valid before the session falls
// back to disconnected.
const scanWindow = 2 * time.Minute

// connectWait bounds how long EnsureReady waits for the socket after a
// reconnect from persisted material.
const connectWait = 30 * time.Second

// whatsAppSession drives one WhatsApp Web device link. The device store is a
// sqlite database under <storage_root>/whatsapp_sessions/<tenant>_<config>/.
type whatsAppSession struct {
	tenantID string
	configID string
	dir      string

	mu        sync.Mutex
	status    Status
	container *sqlstore.Container
	client    *whatsmeow.Client
	qrPNG     string
	linkErr   error
	profile   string

	// In-memory inbox per peer phone, fed by the event handler. External ids
	// are zero-padded receive timestamps, so watermark comparison is
	// lexicographic.
	inboxMu sync.Mutex
	inbox   map[string][]InboundMessage
}

func newWhatsAppSession(tenantID, configID, storageRoot string) *whatsAppSession {
	return &whatsAppSession{
		tenantID: tenantID,
		configID: configID,
		dir:      whatsAppStoreDir(storageRoot, tenantID, configID),
		status:   StatusDisconnected,
		inbox:    make(map[string][]InboundMessage),
	}
}

func whatsAppStoreDir(storageRoot, tenantID, configID string) string {
	return filepath.Join(storageRoot, "whatsapp_sessions", tenantID+"_"+configID)
}

func whatsAppStoreExists(storageRoot, tenantID, configID string) bool {
	_, err := os.Stat(filepath.Join(whatsAppStoreDir(storageRoot, tenantID, configID), "session.db"))
	return err == nil
}

// EnsureReady reconnects from the persisted device store. It never starts a
// QR pairing; that is BeginLink's job.
func (s *whatsAppSession) EnsureReady(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil && s.client.IsConnected() && s.status == StatusConnected {
		return nil
	}

	if err := s.openClientLocked(ctx); err != nil {
		return err
	}

	if s.client.Store.ID == nil {
		s.status = StatusDisconnected
		return channels.Errorf(channels.KindNotConnected, "whatsapp session %s/%s is not paired", s.tenantID, s.configID)
	}

	if !s.client.IsConnected() {
		if err := s.client.Connect(); err != nil {
			s.status = StatusDisconnected
			return channels.NewError(channels.KindNotConnected, err)
		}
	}
	if err := s.awaitConnectedLocked(ctx); err != nil {
		return err
	}

	s.status = StatusConnected
	s.profile = s.client.Store.ID.User
	return nil
}

// openClientLocked builds the sqlstore container and client if needed.
// Caller holds s.mu.
func (s *whatsAppSession) openClientLocked(ctx context.Context) error {
	if s.client != nil {
		return nil
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return channels.Errorf(channels.KindNotConnected, "create session dir: %v", err)
	}

	dbPath := filepath.Join(s.dir, "session.db")
	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	container, err := sqlstore.New(ctx, "sqlite", dsn, waLog.Noop)
	if err != nil {
		return channels.Errorf(channels.KindNotConnected, "open device store: %v", err)
	}

	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		_ = container.Close()
		return channels.Errorf(channels.KindNotConnected, "load device: %v", err)
	}

	s.container = container
	s.client = whatsmeow.NewClient(device, waLog.Noop)
	s.client.AddEventHandler(s.handleEvent)
	return nil
}

// awaitConnectedLocked waits for the socket to come up. Caller holds s.mu.
func (s *whatsAppSession) awaitConnectedLocked(ctx context.Context) error {
	deadline := time.Now().Add(connectWait)
	for !s.client.IsConnected() {
		if time.Now().After(deadline) {
			s.status = StatusDisconnected
			return channels.Errorf(channels.KindNotConnected, "whatsapp connect timed out after %s", connectWait)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
		}
	}
	return nil
}

// BeginLink either restores the persisted session (immediate connected) or
// opens a QR pairing window.
func (s *whatsAppSession) BeginLink(ctx context.Context) (LinkState, error) {
	if err := s.EnsureReady(ctx); err == nil {
		return LinkState{Status: StatusConnected, Profile: s.Profile()}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusAwaitingScan {
		return LinkState{Status: StatusAwaitingScan, QRImage: s.qrPNG}, nil
	}

	if err := s.openClientLocked(ctx); err != nil {
		return LinkState{}, err
	}
	if s.client.Store.ID != nil {
		// Paired but unreachable: nothing a QR can fix right now.
		return LinkState{}, channels.Errorf(channels.KindNotConnected, "paired session unreachable")
	}

	// GetQRChannel must be called before Connect on an unpaired client.
	qrChan, err := s.client.GetQRChannel(context.Background())
	if err != nil {
		return LinkState{}, channels.NewError(channels.KindNotConnected, err)
	}
	if err := s.client.Connect(); err != nil {
		return LinkState{}, channels.NewError(channels.KindNotConnected, err)
	}

	s.status = StatusAwaitingScan
	s.linkErr = nil
	s.qrPNG = ""
	go s.consumeQRChannel(qrChan)

	// Wait briefly for the first code so the caller gets an image.
	firstQR := time.Now().Add(10 * time.Second)
	for s.qrPNG == "" && s.status == StatusAwaitingScan && time.Now().Before(firstQR) {
		s.mu.Unlock()
		time.Sleep(100 * time.Millisecond)
		s.mu.Lock()
	}

	if s.status == StatusConnected {
		return LinkState{Status: StatusConnected, Profile: s.profile}, nil
	}
	return LinkState{Status: StatusAwaitingScan, QRImage: s.qrPNG}, nil
}

// consumeQRChannel renders each refreshed code to a PNG and resolves the
// pairing outcome. The scan window is bounded; expiry returns the session to
// disconnected with a scan_expired error.
func (s *whatsAppSession) consumeQRChannel(qrChan <-chan whatsmeow.QRChannelItem) {
	expire := time.After(scanWindow)
	log := slog.With("tenant_id", s.tenantID, "channel_config_id", s.configID)

	for {
		select {
		case <-expire:
			s.mu.Lock()
			if s.status == StatusAwaitingScan {
				s.status = StatusDisconnected
				s.qrPNG = ""
				s.linkErr = channels.Errorf(channels.KindScanExpired, "QR not scanned within %s", scanWindow)
				s.client.Disconnect()
			}
			s.mu.Unlock()
			log.Warn("WhatsApp QR scan window expired")
			return

		case evt, ok := <-qrChan:
			if !ok {
				return
			}
			switch evt.Event {
			case "code":
				png, err := qrcode.Encode(evt.Code, qrcode.Medium, 512)
				if err != nil {
					log.Error("Failed to render QR code", "error", err)
					continue
				}
				s.mu.Lock()
				s.qrPNG = base64.StdEncoding.EncodeToString(png)
				s.mu.Unlock()
			case "success":
				s.mu.Lock()
				s.status = StatusConnected
				s.qrPNG = ""
				s.linkErr = nil
				if s.client.Store.ID != nil {
					s.profile = s.client.Store.ID.User
				}
				s.mu.Unlock()
				log.Info("WhatsApp session paired")
				return
			case "timeout":
				s.mu.Lock()
				s.status = StatusDisconnected
				s.qrPNG = ""
				s.linkErr = channels.Errorf(channels.KindScanExpired, "pairing timed out")
				s.mu.Unlock()
				log.Warn("WhatsApp pairing timed out")
				return
			default:
				log.Info("WhatsApp pairing event", "event", evt.Event)
			}
		}
	}
}

// LinkState reports the current pairing state, refreshing the QR image.
func (s *whatsAppSession) LinkState() LinkState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return LinkState{Status: s.status, QRImage: s.qrPNG, Profile: s.profile}
}

func (s *whatsAppSession) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *whatsAppSession) Profile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// SendText verifies the number is on WhatsApp and sends one text message.
// Callers reach this through the registry's per-session queue, so sends are
// already serialised.
func (s *whatsAppSession) SendText(ctx context.Context, to models.Address, body string) (string, error) {
	if to.Phone == "" {
		return "", channels.Errorf(channels.KindRecipientInvalid, "recipient has no phone number")
	}

	s.mu.Lock()
	client := s.client
	s.mu.Unlock()
	if client == nil || !client.IsConnected() {
		return "", channels.Errorf(channels.KindNotConnected, "whatsapp session not connected")
	}

	resp, err := client.IsOnWhatsApp(ctx, []string{"+" + to.Phone})
	if err != nil {
		return "", channels.NewError(channels.KindTransientNetwork, err)
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return "", channels.Errorf(channels.KindRecipientInvalid, "number %s is not on whatsapp", to.Phone)
	}
	jid := resp[0].JID

	sent, err := client.SendMessage(ctx, jid, &waE2E.Message{
		Conversation: proto.String(body),
	})
	if err != nil {
		return "", channels.NewError(channels.KindTransientNetwork, err)
	}
	return string(sent.ID), nil
}

// handleEvent feeds the in-memory inbox and tracks connection state.
func (s *whatsAppSession) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Message:
		if v.Info.IsFromMe || v.Info.IsGroup {
			return
		}
		body := v.Message.GetConversation()
		if body == "" {
			body = v.Message.GetExtendedTextMessage().GetText()
		}
		if body == "" {
			return
		}
		s.appendInbound(v.Info.Sender.User, InboundMessage{
			ExternalID: inboundExternalID(v.Info.Timestamp),
			Body:       body,
			ReceivedAt: v.Info.Timestamp,
		})

	case *events.Connected:
		s.mu.Lock()
		if s.status != StatusAwaitingScan {
			s.status = StatusConnected
		}
		s.mu.Unlock()

	case *events.Disconnected:
		s.mu.Lock()
		if s.status == StatusConnected {
			s.status = StatusDisconnected
		}
		s.mu.Unlock()

	case *events.LoggedOut:
		s.mu.Lock()
		s.status = StatusDisconnected
		s.profile = ""
		s.mu.Unlock()
		slog.Warn("WhatsApp session logged out remotely",
			"tenant_id", s.tenantID, "channel_config_id", s.configID)
	}
}

// inboundExternalID builds a lexicographically ordered external id from the
// receive timestamp.
func inboundExternalID(ts time.Time) string {
	return fmt.Sprintf("%020d", ts.UnixNano())
}

func (s *whatsAppSession) appendInbound(peerPhone string, msg InboundMessage) {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()
	box := append(s.inbox[peerPhone], msg)
	sort.Slice(box, func(i, j int) bool { return box[i].ExternalID < box[j].ExternalID })
	// Bound per-peer memory; old entries are below any live watermark anyway.
	if len(box) > 500 {
		box = box[len(box)-500:]
	}
	s.inbox[peerPhone] = box
}

// FetchInbound returns the peer's messages past the watermark, ascending.
func (s *whatsAppSession) FetchInbound(ctx context.Context, peer models.Address, sinceExternalID string) ([]InboundMessage, error) {
	s.inboxMu.Lock()
	defer s.inboxMu.Unlock()

	var out []InboundMessage
	for _, m := range s.inbox[peer.Phone] {
		if m.ExternalID > sinceExternalID {
			out = append(out, m)
		}
	}
	return out, nil
}

// ListGroups returns the groups this device participates in.
func (s *whatsAppSession) ListGroups(ctx context.Context) ([]Group, error) {
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()
	if client == nil {
		return nil, channels.Errorf(channels.KindNotConnected, "whatsapp session not connected")
	}

	infos, err := client.GetJoinedGroups(ctx)
	if err != nil {
		return nil, channels.NewError(channels.KindTransientNetwork, err)
	}

	groups := make([]Group, 0, len(infos))
	for _, info := range infos {
		groups = append(groups, Group{
			ExternalID:  info.JID.String(),
			Name:        info.Name,
			MemberCount: len(info.Participants),
		})
	}
	return groups, nil
}

// ListGroupMembers returns a group's participants. LID-form participants have
// no visible phone and come back with Phone empty; they are not sendable.
func (s *whatsAppSession) ListGroupMembers(ctx context.Context, groupID string) ([]GroupMember, error) {
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()
	if client == nil {
		return nil, channels.Errorf(channels.KindNotConnected, "whatsapp session not connected")
	}

	jid, err := types.ParseJID(groupID)
	if err != nil {
		return nil, channels.Errorf(channels.KindRecipientInvalid, "invalid group id %q: %v", groupID, err)
	}

	info, err := client.GetGroupInfo(ctx, jid)
	if err != nil {
		return nil, channels.NewError(channels.KindTransientNetwork, err)
	}

	members := make([]GroupMember, 0, len(info.Participants))
	for _, p := range info.Participants {
		member := GroupMember{DisplayName: p.JID.User}
		if p.JID.Server == types.DefaultUserServer {
			member.Phone = p.JID.User
		}
		members = append(members, member)
	}
	return members, nil
}

// Disconnect closes the socket and device store but keeps the on-disk
// session material.
func (s *whatsAppSession) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Disconnect()
		s.client = nil
	}
	if s.container != nil {
		_ = s.container.Close()
		s.container = nil
	}
	s.status = StatusDisconnected
}

// Wipe logs out remotely (best-effort), disconnects, and deletes the device
// store directory.
func (s *whatsAppSession) Wipe(ctx context.Context) error {
	s.mu.Lock()
	if s.client != nil && s.client.Store.ID != nil {
		if err := s.client.Logout(ctx); err != nil {
			slog.Warn("WhatsApp remote logout failed",
				"tenant_id", s.tenantID, "channel_config_id", s.configID, "error", err)
		}
	}
	s.mu.Unlock()

	s.Disconnect()

	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("remove session dir: %w", err)
	}
	return nil
}
