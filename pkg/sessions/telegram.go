package sessions

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"github.com/outflowhq/outflow/pkg/channels"
	"github.com/outflowhq/outflow/pkg/models"
)

// telegramPersistFunc writes an updated session string back into the config's
// encrypted credentials.
type telegramPersistFunc func(ctx context.Context, tenantID, configID, sessionString string) error

// telegramSession drives one Telegram user session over MTProto. The session
// material lives as an opaque string inside the encrypted credentials; the
// storage adapter below persists every refresh through persistFn.
type telegramSession struct {
	tenantID  string
	configID  string
	creds     models.TelegramCredentials
	persistFn telegramPersistFunc

	mu      sync.Mutex
	status  Status
	client  *telegram.Client
	stop    context.CancelFunc
	runDone chan error
	profile string

	// In-flight interactive auths keyed by the session key handed to the
	// caller after start_auth.
	pending map[string]*pendingAuth
}

type pendingAuth struct {
	phone    string
	codeHash string
}

func newTelegramSession(tenantID, configID string, creds models.TelegramCredentials, persistFn telegramPersistFunc) *telegramSession {
	return &telegramSession{
		tenantID:  tenantID,
		configID:  configID,
		creds:     creds,
		persistFn: persistFn,
		status:    StatusDisconnected,
		pending:   make(map[string]*pendingAuth),
	}
}

// credentialStorage bridges the MTProto session store to the encrypted
// credentials row. Loads come from the decrypted session string; stores fan
// out through persistFn so a restart can resume without re-auth.
type credentialStorage struct {
	mu      sync.Mutex
	data    []byte
	persist func(data []byte)
}

func (s *credentialStorage) LoadSession(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data) == 0 {
		return nil, session.ErrNotFound
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *credentialStorage) StoreSession(_ context.Context, data []byte) error {
	s.mu.Lock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	s.mu.Unlock()
	s.persist(data)
	return nil
}

// connect starts the MTProto client in the background and waits for the
// socket. It does not require the account to be authorized yet.
func (s *telegramSession) connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.connectLocked(ctx)
}

func (s *telegramSession) connectLocked(ctx context.Context) error {
	if s.client != nil {
		return nil
	}
	if s.creds.APIID == 0 || s.creds.APIHash == "" {
		return channels.Errorf(channels.KindAuthFailed, "telegram credentials missing api_id/api_hash")
	}

	storage := &credentialStorage{persist: s.persistSession}
	if s.creds.SessionString != "" {
		data, err := base64.StdEncoding.DecodeString(s.creds.SessionString)
		if err != nil {
			return channels.Errorf(channels.KindAuthFailed, "stored telegram session is not decodable: %v", err)
		}
		storage.data = data
	}

	client := telegram.NewClient(s.creds.APIID, s.creds.APIHash, telegram.Options{
		SessionStorage: storage,
		Device: telegram.DeviceConfig{
			DeviceModel:   "Outflow",
			SystemVersion: "server",
			AppVersion:    "1.0",
		},
	})

	runCtx, cancel := context.WithCancel(context.Background())
	ready := make(chan struct{})
	runDone := make(chan error, 1)
	go func() {
		runDone <- client.Run(runCtx, func(ctx context.Context) error {
			close(ready)
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	select {
	case <-ready:
	case err := <-runDone:
		cancel()
		return channels.NewError(channels.KindTransientNetwork, fmt.Errorf("telegram connect: %w", err))
	case <-time.After(connectWait):
		cancel()
		return channels.Errorf(channels.KindTransientNetwork, "telegram connect timed out after %s", connectWait)
	case <-ctx.Done():
		cancel()
		return ctx.Err()
	}

	s.client = client
	s.stop = cancel
	s.runDone = runDone
	return nil
}

// persistSession is the storage callback. It runs on gotd's goroutines, so it
// uses a detached context and only logs failures.
func (s *telegramSession) persistSession(data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.persistFn(ctx, s.tenantID, s.configID, encoded); err != nil {
		slog.Error("Failed to persist telegram session",
			"tenant_id", s.tenantID, "channel_config_id", s.configID, "error", err)
	}
}

// EnsureReady connects and verifies the account is authorized. An unauthorized
// account needs the interactive start_auth flow and fails with not_connected.
func (s *telegramSession) EnsureReady(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil && s.status == StatusConnected {
		return nil
	}
	if err := s.connectLocked(ctx); err != nil {
		return err
	}

	authStatus, err := s.client.Auth().Status(ctx)
	if err != nil {
		return channels.NewError(channels.KindTransientNetwork, fmt.Errorf("telegram auth status: %w", err))
	}
	if !authStatus.Authorized {
		s.status = StatusDisconnected
		return channels.Errorf(channels.KindNotConnected, "telegram session %s/%s is not authorized", s.tenantID, s.configID)
	}

	s.status = StatusConnected
	s.profile = profileOf(authStatus.User)
	return nil
}

func profileOf(user *tg.User) string {
	if user == nil {
		return ""
	}
	if username, ok := user.GetUsername(); ok && username != "" {
		return "@" + username
	}
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name != "" {
		return name
	}
	return user.Phone
}

func (s *telegramSession) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *telegramSession) Profile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// StartAuth begins interactive login for the configured phone number. When
// the stored session already authorizes, it short-circuits to connected.
func (s *telegramSession) StartAuth(ctx context.Context) (LinkState, error) {
	if err := s.EnsureReady(ctx); err == nil {
		return LinkState{Status: StatusConnected, Profile: s.Profile()}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds.PhoneNumber == "" {
		return LinkState{}, channels.Errorf(channels.KindAuthFailed, "telegram credentials missing phone_number")
	}
	if err := s.connectLocked(ctx); err != nil {
		return LinkState{}, err
	}

	sent, err := s.client.Auth().SendCode(ctx, s.creds.PhoneNumber, auth.SendCodeOptions{})
	if err != nil {
		return LinkState{}, classifyTelegramError(err)
	}
	code, ok := sent.(*tg.AuthSentCode)
	if !ok {
		return LinkState{}, channels.Errorf(channels.KindAuthFailed, "unexpected send code response %T", sent)
	}

	key := uuid.NewString()
	s.pending[key] = &pendingAuth{
		phone:    s.creds.PhoneNumber,
		codeHash: code.PhoneCodeHash,
	}
	s.status = StatusAwaitingCode

	return LinkState{Status: StatusAwaitingCode, SessionKey: key}, nil
}

// VerifyCode submits the login code received by the account. A 2FA-protected
// account moves to awaiting_password instead of connected.
func (s *telegramSession) VerifyCode(ctx context.Context, authKey, code string) (LinkState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pend, ok := s.pending[authKey]
	if !ok {
		return LinkState{}, channels.Errorf(channels.KindCodeExpired, "no auth in flight for this key")
	}
	if s.client == nil {
		return LinkState{}, channels.Errorf(channels.KindNotConnected, "telegram session not connected")
	}

	authz, err := s.client.Auth().SignIn(ctx, pend.phone, code, pend.codeHash)
	if errors.Is(err, auth.ErrPasswordAuthNeeded) {
		s.status = StatusAwaitingPassword
		return LinkState{Status: StatusAwaitingPassword, SessionKey: authKey}, nil
	}
	if err != nil {
		if tgerr.Is(err, "PHONE_CODE_EXPIRED") || tgerr.Is(err, "PHONE_CODE_INVALID") {
			return LinkState{}, channels.NewError(channels.KindCodeExpired, err)
		}
		return LinkState{}, classifyTelegramError(err)
	}

	delete(s.pending, authKey)
	s.status = StatusConnected
	if user, ok := authz.User.(*tg.User); ok {
		s.profile = profileOf(user)
	}
	return LinkState{Status: StatusConnected, Profile: s.profile}, nil
}

// VerifyPassword finishes a 2FA login.
func (s *telegramSession) VerifyPassword(ctx context.Context, authKey, password string) (LinkState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[authKey]; !ok {
		return LinkState{}, channels.Errorf(channels.KindCodeExpired, "no auth in flight for this key")
	}
	if s.client == nil {
		return LinkState{}, channels.Errorf(channels.KindNotConnected, "telegram session not connected")
	}

	authz, err := s.client.Auth().Password(ctx, password)
	if err != nil {
		return LinkState{}, channels.NewError(channels.KindAuthFailed, err)
	}

	delete(s.pending, authKey)
	s.status = StatusConnected
	if user, ok := authz.User.(*tg.User); ok {
		s.profile = profileOf(user)
	}
	return LinkState{Status: StatusConnected, Profile: s.profile}, nil
}

// SendText resolves the recipient and sends one text message. The returned
// external id is the zero-padded Telegram message id, which is monotonically
// increasing for the sending account.
func (s *telegramSession) SendText(ctx context.Context, to models.Address, body string) (string, error) {
	api, err := s.api()
	if err != nil {
		return "", err
	}

	peer, err := s.resolvePeer(ctx, api, to)
	if err != nil {
		return "", err
	}

	updates, err := api.MessagesSendMessage(ctx, &tg.MessagesSendMessageRequest{
		Peer:     peer,
		Message:  body,
		RandomID: rand.Int64(),
	})
	if err != nil {
		return "", classifyTelegramError(err)
	}

	id := sentMessageID(updates)
	if id == 0 {
		return "", channels.Errorf(channels.KindTransientNetwork, "send succeeded but no message id in response")
	}
	return telegramExternalID(id), nil
}

func (s *telegramSession) api() (*tg.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil || s.status != StatusConnected {
		return nil, channels.Errorf(channels.KindNotConnected, "telegram session not connected")
	}
	return s.client.API(), nil
}

// resolvePeer prefers username over phone; phone resolution only works for
// contacts or accounts with discoverable numbers.
func (s *telegramSession) resolvePeer(ctx context.Context, api *tg.Client, to models.Address) (tg.InputPeerClass, error) {
	var (
		resolved *tg.ContactsResolvedPeer
		err      error
	)
	switch {
	case to.Username != "":
		resolved, err = api.ContactsResolveUsername(ctx, strings.TrimPrefix(to.Username, "@"))
	case to.Phone != "":
		resolved, err = api.ContactsResolvePhone(ctx, "+"+strings.TrimPrefix(to.Phone, "+"))
	default:
		return nil, channels.Errorf(channels.KindRecipientInvalid, "recipient has no telegram username or phone")
	}
	if err != nil {
		if tgerr.Is(err, "USERNAME_NOT_OCCUPIED") || tgerr.Is(err, "USERNAME_INVALID") || tgerr.Is(err, "PHONE_NOT_OCCUPIED") {
			return nil, channels.NewError(channels.KindRecipientInvalid, err)
		}
		return nil, classifyTelegramError(err)
	}

	for _, u := range resolved.Users {
		if user, ok := u.(*tg.User); ok {
			return &tg.InputPeerUser{UserID: user.ID, AccessHash: user.AccessHash}, nil
		}
	}
	return nil, channels.Errorf(channels.KindRecipientInvalid, "recipient did not resolve to a user")
}

func telegramExternalID(id int) string {
	return fmt.Sprintf("%012d", id)
}

// sentMessageID digs the new message id out of the updates response.
func sentMessageID(updates tg.UpdatesClass) int {
	switch u := updates.(type) {
	case *tg.UpdateShortSentMessage:
		return u.ID
	case *tg.Updates:
		for _, upd := range u.Updates {
			if m, ok := upd.(*tg.UpdateMessageID); ok {
				return m.ID
			}
		}
	}
	return 0
}

// FetchInbound pages the peer's history above the watermark and returns the
// peer's own messages ascending by id.
func (s *telegramSession) FetchInbound(ctx context.Context, peer models.Address, sinceExternalID string) ([]InboundMessage, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}

	inputPeer, err := s.resolvePeer(ctx, api, peer)
	if err != nil {
		return nil, err
	}

	minID := 0
	if sinceExternalID != "" {
		if parsed, perr := strconv.Atoi(strings.TrimLeft(sinceExternalID, "0")); perr == nil {
			minID = parsed
		}
	}

	history, err := api.MessagesGetHistory(ctx, &tg.MessagesGetHistoryRequest{
		Peer:  inputPeer,
		MinID: minID,
		Limit: 100,
	})
	if err != nil {
		return nil, classifyTelegramError(err)
	}

	var raw []tg.MessageClass
	switch h := history.(type) {
	case *tg.MessagesMessages:
		raw = h.Messages
	case *tg.MessagesMessagesSlice:
		raw = h.Messages
	case *tg.MessagesChannelMessages:
		raw = h.Messages
	}

	// History comes newest-first; collect inbound and reverse to ascending.
	var out []InboundMessage
	for i := len(raw) - 1; i >= 0; i-- {
		msg, ok := raw[i].(*tg.Message)
		if !ok || msg.Out || msg.Message == "" || msg.ID <= minID {
			continue
		}
		out = append(out, InboundMessage{
			ExternalID: telegramExternalID(msg.ID),
			Body:       msg.Message,
			ReceivedAt: time.Unix(int64(msg.Date), 0).UTC(),
		})
	}
	return out, nil
}

// ListGroups returns the basic groups and megagroups this account is in.
func (s *telegramSession) ListGroups(ctx context.Context) ([]Group, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}

	chats, err := api.MessagesGetAllChats(ctx, []int64{})
	if err != nil {
		return nil, classifyTelegramError(err)
	}

	var groups []Group
	for _, c := range chats.GetChats() {
		switch chat := c.(type) {
		case *tg.Chat:
			if chat.Deactivated {
				continue
			}
			groups = append(groups, Group{
				ExternalID:  fmt.Sprintf("chat:%d", chat.ID),
				Name:        chat.Title,
				MemberCount: chat.ParticipantsCount,
			})
		case *tg.Channel:
			if !chat.Megagroup {
				continue
			}
			count, _ := chat.GetParticipantsCount()
			groups = append(groups, Group{
				ExternalID:  fmt.Sprintf("channel:%d:%d", chat.ID, chat.AccessHash),
				Name:        chat.Title,
				MemberCount: count,
			})
		}
	}
	return groups, nil
}

// ListGroupMembers lists one group's participants. Megagroups that restrict
// the member list to admins fail with an admin_required error.
func (s *telegramSession) ListGroupMembers(ctx context.Context, groupID string) ([]GroupMember, error) {
	api, err := s.api()
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasPrefix(groupID, "chat:"):
		id, perr := strconv.ParseInt(strings.TrimPrefix(groupID, "chat:"), 10, 64)
		if perr != nil {
			return nil, channels.Errorf(channels.KindRecipientInvalid, "invalid group id %q", groupID)
		}
		return s.chatMembers(ctx, api, id)

	case strings.HasPrefix(groupID, "channel:"):
		parts := strings.Split(strings.TrimPrefix(groupID, "channel:"), ":")
		if len(parts) != 2 {
			return nil, channels.Errorf(channels.KindRecipientInvalid, "invalid group id %q", groupID)
		}
		id, err1 := strconv.ParseInt(parts[0], 10, 64)
		hash, err2 := strconv.ParseInt(parts[1], 10, 64)
		if err1 != nil || err2 != nil {
			return nil, channels.Errorf(channels.KindRecipientInvalid, "invalid group id %q", groupID)
		}
		return s.channelMembers(ctx, api, id, hash)

	default:
		return nil, channels.Errorf(channels.KindRecipientInvalid, "invalid group id %q", groupID)
	}
}

func (s *telegramSession) chatMembers(ctx context.Context, api *tg.Client, chatID int64) ([]GroupMember, error) {
	full, err := api.MessagesGetFullChat(ctx, chatID)
	if err != nil {
		return nil, classifyTelegramError(err)
	}

	users := make(map[int64]*tg.User)
	for _, u := range full.Users {
		if user, ok := u.(*tg.User); ok {
			users[user.ID] = user
		}
	}

	chatFull, ok := full.FullChat.(*tg.ChatFull)
	if !ok {
		return nil, channels.Errorf(channels.KindTransientNetwork, "unexpected chat full response %T", full.FullChat)
	}
	participants, ok := chatFull.Participants.(*tg.ChatParticipants)
	if !ok {
		return nil, channels.Errorf(channels.KindAdminRequired, "chat participants are hidden")
	}

	members := make([]GroupMember, 0, len(participants.Participants))
	for _, p := range participants.Participants {
		if user, ok := users[p.GetUserID()]; ok {
			members = append(members, groupMemberOf(user))
		}
	}
	return members, nil
}

func (s *telegramSession) channelMembers(ctx context.Context, api *tg.Client, channelID, accessHash int64) ([]GroupMember, error) {
	resp, err := api.ChannelsGetParticipants(ctx, &tg.ChannelsGetParticipantsRequest{
		Channel: &tg.InputChannel{ChannelID: channelID, AccessHash: accessHash},
		Filter:  &tg.ChannelParticipantsRecent{},
		Limit:   200,
	})
	if err != nil {
		if tgerr.Is(err, "CHAT_ADMIN_REQUIRED") {
			return nil, channels.NewError(channels.KindAdminRequired, err)
		}
		return nil, classifyTelegramError(err)
	}

	participants, ok := resp.(*tg.ChannelsChannelParticipants)
	if !ok {
		return nil, channels.Errorf(channels.KindTransientNetwork, "unexpected participants response %T", resp)
	}

	members := make([]GroupMember, 0, len(participants.Users))
	for _, u := range participants.Users {
		if user, ok := u.(*tg.User); ok {
			members = append(members, groupMemberOf(user))
		}
	}
	return members, nil
}

func groupMemberOf(user *tg.User) GroupMember {
	m := GroupMember{
		DisplayName:    strings.TrimSpace(user.FirstName + " " + user.LastName),
		TelegramUserID: user.ID,
	}
	if username, ok := user.GetUsername(); ok {
		m.Username = username
	}
	if phone, ok := user.GetPhone(); ok {
		m.Phone = phone
	}
	if m.DisplayName == "" {
		m.DisplayName = m.Username
	}
	return m
}

// Disconnect stops the MTProto client. The persisted session string survives.
func (s *telegramSession) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnectLocked()
}

func (s *telegramSession) disconnectLocked() {
	if s.stop != nil {
		s.stop()
		if s.runDone != nil {
			select {
			case <-s.runDone:
			case <-time.After(5 * time.Second):
			}
		}
	}
	s.client = nil
	s.stop = nil
	s.runDone = nil
	s.status = StatusDisconnected
}

// Wipe logs out remotely (best-effort), stops the client, and clears the
// persisted session string.
func (s *telegramSession) Wipe(ctx context.Context) error {
	s.mu.Lock()
	if s.client != nil && s.status == StatusConnected {
		if _, err := s.client.API().AuthLogOut(ctx); err != nil {
			slog.Warn("Telegram remote logout failed",
				"tenant_id", s.tenantID, "channel_config_id", s.configID, "error", err)
		}
	}
	s.disconnectLocked()
	s.mu.Unlock()

	if err := s.persistFn(ctx, s.tenantID, s.configID, ""); err != nil {
		return fmt.Errorf("clear telegram session: %w", err)
	}
	s.creds.SessionString = ""
	return nil
}

// classifyTelegramError maps MTProto RPC errors to channel error kinds.
func classifyTelegramError(err error) error {
	switch {
	case tgerr.Is(err, "AUTH_KEY_UNREGISTERED"), tgerr.Is(err, "SESSION_REVOKED"), tgerr.Is(err, "SESSION_EXPIRED"), tgerr.Is(err, "USER_DEACTIVATED"):
		return channels.NewError(channels.KindAuthFailed, err)
	case tgerr.Is(err, "PHONE_NUMBER_INVALID"), tgerr.Is(err, "PEER_ID_INVALID"), tgerr.Is(err, "USER_IS_BLOCKED"), tgerr.Is(err, "INPUT_USER_DEACTIVATED"):
		return channels.NewError(channels.KindRecipientInvalid, err)
	case tgerr.Is(err, "PHONE_NUMBER_BANNED"), tgerr.Is(err, "PHONE_PASSWORD_FLOOD"):
		return channels.NewError(channels.KindAuthFailed, err)
	}
	if _, ok := tgerr.AsFloodWait(err); ok {
		return channels.NewError(channels.KindQuotaExceeded, err)
	}
	return channels.NewError(channels.KindTransientNetwork, err)
}
